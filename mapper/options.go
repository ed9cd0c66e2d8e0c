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
	"google.golang.org/grpc/codes"

	"dirpx.dev/reply/msg"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status for a severity.
func WithHTTPDefault(s msg.Severity, http int) Option {
	return func(b *builder) { b.httpDefaults[s] = http }
}

// WithGRPCDefault replaces the default gRPC code for a severity.
func WithGRPCDefault(s msg.Severity, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[s] = grpc }
}

// WithHTTPOverride pins the HTTP status for a severity regardless of reason.
// Overrides win over prefix rules and defaults.
func WithHTTPOverride(s msg.Severity, http int) Option {
	return func(b *builder) { b.httpOverride[s] = http }
}

// WithGRPCOverride pins the gRPC code for a severity regardless of reason.
func WithGRPCOverride(s msg.Severity, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[s] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for the severity.
// The prefix is matched against the message reason on segment boundaries;
// "*" matches exactly one segment.
func WithHTTPPrefix(s msg.Severity, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[s] = append(b.httpPrefixes[s], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for the severity.
func WithGRPCPrefix(s msg.Severity, prefix string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes[s] = append(b.grpcPrefixes[s], prefixRule{prefix, int(grpc)}) }
}

// WithFallback sets the statuses used for severities that have no rule at
// all, such as msg.Unspecified.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
