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
	"fmt"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc/codes"

	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/mapper/internal/segmenttrie"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

// ErrInvalidRule is returned by New when an option names an invalid
// severity or reason prefix.
var ErrInvalidRule = errors.New("mapper: invalid rule")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options.
//  3. Validate severities and normalize reason prefixes.
//  4. Build per-severity segment tries for prefix rules.
//  5. Freeze everything into fresh maps owned by the mapper.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for s, v := range defaultHTTP {
		b.httpDefaults[s] = v
	}
	for s, v := range defaultGRPC {
		b.grpcDefaults[s] = v
	}

	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	httpTrie, err := buildTries(b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, errors.Wrap(err, "http")
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, errors.Wrap(err, "grpc")
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on an invalid rule.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper combines per-severity defaults, exact overrides and reason-prefix
// tries. It is safe for concurrent use once constructed.
type mapper struct {
	httpDefault map[msg.Severity]int
	grpcDefault map[msg.Severity]codes.Code

	httpOverride map[msg.Severity]int
	grpcOverride map[msg.Severity]codes.Code

	httpTrie map[msg.Severity]*segmenttrie.Trie[int]
	grpcTrie map[msg.Severity]*segmenttrie.Trie[codes.Code]

	// used for severities without any rule, including Unspecified
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// source names the tier a status was resolved from.
type source string

const (
	fromOverride source = "override"
	fromPrefix   source = "prefix"
	fromDefault  source = "default"
	fromFallback source = "fallback"
)

// HTTPStatus resolves an HTTP status for the given severity and reason.
//
// Resolution order (highest to lowest):
//  1. exact per-severity override;
//  2. per-severity longest-prefix-match rule on the reason;
//  3. per-severity default;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(s msg.Severity, r reason.Reason) int {
	v, _, _ := resolve(s, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC code with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(s msg.Severity, r reason.Reason) codes.Code {
	v, _, _ := resolve(s, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both transports from the same inputs.
func (m *mapper) Status(s msg.Severity, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(s, r),
		GRPC: m.GRPCStatus(s, r),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a (severity, reason) pair:
//
//	severity="ERROR" reason="order.total.negative"
//	http: source=prefix pattern="order.total" -> 409
//	grpc: source=default -> InvalidArgument(3)
//
// The format is for humans; do not parse it.
func (m *mapper) Explain(s msg.Severity, r reason.Reason) string {
	hv, hsrc, hpat := resolve(s, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	gv, gsrc, gpat := resolve(s, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)

	return fmt.Sprintf("severity=%q reason=%q\n%s\n%s",
		s.String(), string(r),
		explainLine("http", hsrc, hpat, fmt.Sprintf("%d", hv)),
		explainLine("grpc", gsrc, gpat, fmt.Sprintf("%s(%d)", gv.String(), int(gv))),
	)
}

func explainLine(transport string, src source, pattern, value string) string {
	if src == fromPrefix {
		return fmt.Sprintf("%s: source=%s pattern=%q -> %s", transport, src, pattern, value)
	}
	return fmt.Sprintf("%s: source=%s -> %s", transport, src, value)
}

func resolve[V any](
	s msg.Severity,
	r reason.Reason,
	override map[msg.Severity]V,
	tries map[msg.Severity]*segmenttrie.Trie[V],
	defaults map[msg.Severity]V,
	fallback V,
) (V, source, string) {
	if v, ok := override[s]; ok {
		return v, fromOverride, ""
	}
	if t := tries[s]; t != nil && r != reason.Empty {
		if m, ok := t.Lookup(string(r)); ok {
			return m.Value, fromPrefix, m.Pattern
		}
	}
	if v, ok := defaults[s]; ok {
		return v, fromDefault, ""
	}
	return fallback, fromFallback, ""
}

func buildTries[V any](rules map[msg.Severity][]prefixRule, conv func(int) V) (map[msg.Severity]*segmenttrie.Trie[V], error) {
	out := make(map[msg.Severity]*segmenttrie.Trie[V], len(rules))
	for s, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p := reason.Normalize(r.prefix)
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, errors.Mark(
					errors.Wrapf(err, "prefix %q for severity %s", r.prefix, s),
					ErrInvalidRule,
				)
			}
		}
		out[s] = t
	}
	return out, nil
}

func freeze[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
