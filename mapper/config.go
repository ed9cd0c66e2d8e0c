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
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"google.golang.org/grpc/codes"

	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

// Config is the declarative form of the mapper options. It can be read from
// the environment with LoadConfig or decoded from YAML/TOML.
//
// Map keys name a severity ("error", "WARN", ...). Prefix keys are written
// as "<severity>@<reason prefix>", e.g.
//
//	REPLY_MAPPER_HTTP_PREFIXES=error@order.total:409,exception@storage:503
type Config struct {
	FallbackHTTP int `env:"REPLY_MAPPER_FALLBACK_HTTP" envDefault:"500" yaml:"fallback_http" toml:"fallback_http"`
	FallbackGRPC int `env:"REPLY_MAPPER_FALLBACK_GRPC" envDefault:"13" yaml:"fallback_grpc" toml:"fallback_grpc"`

	HTTPDefaults  map[string]int `env:"REPLY_MAPPER_HTTP_DEFAULTS" yaml:"http_defaults" toml:"http_defaults"`
	GRPCDefaults  map[string]int `env:"REPLY_MAPPER_GRPC_DEFAULTS" yaml:"grpc_defaults" toml:"grpc_defaults"`
	HTTPOverrides map[string]int `env:"REPLY_MAPPER_HTTP_OVERRIDES" yaml:"http_overrides" toml:"http_overrides"`
	GRPCOverrides map[string]int `env:"REPLY_MAPPER_GRPC_OVERRIDES" yaml:"grpc_overrides" toml:"grpc_overrides"`
	HTTPPrefixes  map[string]int `env:"REPLY_MAPPER_HTTP_PREFIXES" yaml:"http_prefixes" toml:"http_prefixes"`
	GRPCPrefixes  map[string]int `env:"REPLY_MAPPER_GRPC_PREFIXES" yaml:"grpc_prefixes" toml:"grpc_prefixes"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "mapper: load config")
	}
	return cfg, nil
}

// FromEnv builds a mapper from LoadConfig. Extra options are applied after
// the environment ones and therefore win.
func FromEnv(opts ...Option) (apis.Mapper, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.New(opts...)
}

// New builds a mapper from c followed by opts.
func (c Config) New(opts ...Option) (apis.Mapper, error) {
	cfgOpts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(append(cfgOpts, opts...)...)
}

// Options converts c into mapper options. A zero fallback keeps the
// library fallback for that transport. Keys that name the same rule after
// normalization ("warn" and "WARNING") are rejected with ErrInvalidRule.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.FallbackHTTP != 0 || c.FallbackGRPC != 0 {
		fallbackHTTP, fallbackGRPC := c.FallbackHTTP, codes.Code(c.FallbackGRPC)
		if fallbackHTTP == 0 {
			fallbackHTTP = http.StatusInternalServerError
		}
		if fallbackGRPC == codes.OK {
			fallbackGRPC = codes.Internal
		}
		opts = append(opts, WithFallback(fallbackHTTP, fallbackGRPC))
	}

	perSeverity := []struct {
		name  string
		rules map[string]int
		opt   func(msg.Severity, int) Option
	}{
		{"http_defaults", c.HTTPDefaults, WithHTTPDefault},
		{"grpc_defaults", c.GRPCDefaults, func(s msg.Severity, v int) Option { return WithGRPCDefault(s, codes.Code(v)) }},
		{"http_overrides", c.HTTPOverrides, WithHTTPOverride},
		{"grpc_overrides", c.GRPCOverrides, func(s msg.Severity, v int) Option { return WithGRPCOverride(s, codes.Code(v)) }},
	}
	for _, ps := range perSeverity {
		seen := make(map[msg.Severity]string, len(ps.rules))
		for _, key := range slices.Sorted(maps.Keys(ps.rules)) {
			s, err := msg.ParseSeverity(key)
			if err != nil {
				return nil, errors.Mark(errors.Wrapf(err, "mapper: config %s", ps.name), ErrInvalidRule)
			}
			if prev, dup := seen[s]; dup {
				return nil, errors.Mark(errors.Newf("mapper: config %s: %q and %q name the same severity", ps.name, prev, key), ErrInvalidRule)
			}
			seen[s] = key
			opts = append(opts, ps.opt(s, ps.rules[key]))
		}
	}

	perPrefix := []struct {
		name  string
		rules map[string]int
		opt   func(msg.Severity, string, int) Option
	}{
		{"http_prefixes", c.HTTPPrefixes, WithHTTPPrefix},
		{"grpc_prefixes", c.GRPCPrefixes, func(s msg.Severity, p string, v int) Option { return WithGRPCPrefix(s, p, codes.Code(v)) }},
	}
	type prefixKey struct {
		severity msg.Severity
		prefix   string
	}
	for _, pp := range perPrefix {
		seen := make(map[prefixKey]string, len(pp.rules))
		for _, key := range slices.Sorted(maps.Keys(pp.rules)) {
			sevName, prefix, ok := strings.Cut(key, "@")
			if !ok {
				return nil, errors.Mark(errors.Newf("mapper: config %s: key %q is not <severity>@<prefix>", pp.name, key), ErrInvalidRule)
			}
			s, err := msg.ParseSeverity(sevName)
			if err != nil {
				return nil, errors.Mark(errors.Wrapf(err, "mapper: config %s", pp.name), ErrInvalidRule)
			}
			k := prefixKey{s, reason.Normalize(prefix)}
			if prev, dup := seen[k]; dup {
				return nil, errors.Mark(errors.Newf("mapper: config %s: %q and %q name the same rule", pp.name, prev, key), ErrInvalidRule)
			}
			seen[k] = key
			opts = append(opts, pp.opt(s, prefix, pp.rules[key]))
		}
	}
	return opts, nil
}
