/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.FallbackHTTP)
	assert.Equal(t, int(codes.Internal), cfg.FallbackGRPC)
	assert.Empty(t, cfg.HTTPPrefixes)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("REPLY_MAPPER_HTTP_DEFAULTS", "error:422")
	t.Setenv("REPLY_MAPPER_GRPC_OVERRIDES", "exception:14")
	t.Setenv("REPLY_MAPPER_HTTP_PREFIXES", "error@order.total:409,exception@storage:503")
	t.Setenv("REPLY_MAPPER_FALLBACK_HTTP", "599")

	m, err := FromEnv(WithHTTPOverride(msg.Info, 203))
	require.NoError(t, err)

	assert.Equal(t, 422, m.HTTPStatus(msg.Error, reason.MustParse("customer.email")))
	assert.Equal(t, 409, m.HTTPStatus(msg.Error, reason.MustParse("order.total.negative")))
	assert.Equal(t, 503, m.HTTPStatus(msg.Exception, reason.MustParse("storage.pg")))
	assert.Equal(t, codes.Unavailable, m.GRPCStatus(msg.Exception, reason.Empty))
	assert.Equal(t, 599, m.HTTPStatus(msg.Unspecified, reason.Empty))
	assert.Equal(t, 203, m.HTTPStatus(msg.Info, reason.Empty))
}

func TestFromEnv_BadValue(t *testing.T) {
	t.Setenv("REPLY_MAPPER_FALLBACK_HTTP", "not-a-number")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestConfig_Options_Invalid(t *testing.T) {
	cases := map[string]Config{
		"unknown severity":    {HTTPOverrides: map[string]int{"fatal": 500}},
		"prefix without sep":  {HTTPPrefixes: map[string]int{"order.total": 409}},
		"prefix bad severity": {GRPCPrefixes: map[string]int{"nope@order": 9}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := cfg.Options()
			assert.True(t, errors.Is(err, ErrInvalidRule), "got %v", err)
		})
	}
}

func TestConfig_ZeroKeepsLibraryFallback(t *testing.T) {
	cases := map[string]struct {
		cfg      Config
		wantHTTP int
		wantGRPC codes.Code
	}{
		"zero":      {Config{}, 500, codes.Internal},
		"http only": {Config{FallbackHTTP: 503}, 503, codes.Internal},
		"grpc only": {Config{FallbackGRPC: int(codes.Unavailable)}, 500, codes.Unavailable},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := tc.cfg.New()
			require.NoError(t, err)
			assert.Equal(t, tc.wantHTTP, m.HTTPStatus(msg.Unspecified, reason.Empty))
			assert.Equal(t, tc.wantGRPC, m.GRPCStatus(msg.Unspecified, reason.Empty))
		})
	}
}

func TestConfig_DuplicateKeysRejected(t *testing.T) {
	cases := map[string]Config{
		"severity alias":  {HTTPDefaults: map[string]int{"warn": 299, "warning": 202}},
		"severity case":   {GRPCOverrides: map[string]int{"error": 9, "ERROR": 10}},
		"prefix severity": {HTTPPrefixes: map[string]int{"error@order.total": 409, "ERROR@order.total": 422}},
		"prefix spelling": {GRPCPrefixes: map[string]int{"error@order.total": 9, "error@ORDER/TOTAL": 10}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				_, err := cfg.New()
				require.True(t, errors.Is(err, ErrInvalidRule), "got %v", err)
			}
		})
	}
}

func TestConfig_OptionsDeterministic(t *testing.T) {
	cfg := Config{
		HTTPDefaults: map[string]int{"warning": 202, "error": 422, "info": 203},
		HTTPPrefixes: map[string]int{"error@order": 409, "error@order.total": 412, "exception@storage": 503},
	}
	first, err := cfg.New()
	require.NoError(t, err)
	cases := []struct {
		s msg.Severity
		r reason.Reason
	}{
		{msg.Warning, reason.Empty},
		{msg.Error, reason.MustParse("order.total.negative")},
		{msg.Error, reason.MustParse("order.currency")},
		{msg.Exception, reason.MustParse("storage.pg")},
	}
	for i := 0; i < 50; i++ {
		m, err := cfg.New()
		require.NoError(t, err)
		for _, p := range cases {
			assert.Equal(t, first.Explain(p.s, p.r), m.Explain(p.s, p.r))
		}
	}
}

func TestConfig_GRPCCodeOutOfRange(t *testing.T) {
	for name, cfg := range map[string]Config{
		"default":  {GRPCDefaults: map[string]int{"error": 99}},
		"override": {GRPCOverrides: map[string]int{"exception": -1}},
		"prefix":   {GRPCPrefixes: map[string]int{"error@order": 17}},
		"fallback": {FallbackGRPC: 42},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cfg.New()
			assert.True(t, errors.Is(err, ErrInvalidRule), "got %v", err)
		})
	}
}

func TestConfig_FromFiles(t *testing.T) {
	const y = `
fallback_http: 500
fallback_grpc: 13
http_prefixes:
  error@order.total: 409
grpc_defaults:
  warn: 0
`
	const tm = `
fallback_http = 500
fallback_grpc = 13

[http_prefixes]
"error@order.total" = 409

[grpc_defaults]
warn = 0
`
	var fromYAML, fromTOML Config
	require.NoError(t, yaml.Unmarshal([]byte(y), &fromYAML))
	require.NoError(t, toml.Unmarshal([]byte(tm), &fromTOML))
	assert.Equal(t, fromYAML, fromTOML)

	m, err := fromYAML.New()
	require.NoError(t, err)
	assert.Equal(t, 409, m.HTTPStatus(msg.Error, reason.MustParse("order.total.negative")))
	assert.Equal(t, codes.OK, m.GRPCStatus(msg.Warning, reason.Empty))
}
