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

// Package mapper provides deterministic, immutable mappings from the
// severity of a diagnostic message (dirpx.dev/reply/msg) and its optional
// reason (dirpx.dev/reply/reason) to transport-level statuses for HTTP
// and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the severity;
//  2. per-severity longest-prefix-match (LPM) on the reason;
//  3. per-severity default;
//  4. fallback (500 / codes.Internal unless configured).
//
// Prefix rules are segment-aware: reasons are "."-separated segments and
// "*" matches exactly one segment. The more specific prefix wins:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(msg.Error, "order", 422),
//	    mapper.WithHTTPPrefix(msg.Error, "order.*.conflict", 409),
//	)
//
//	st := m.Status(msg.Error, reason.MustParse("order.total.conflict"))
//	// st.HTTP == 409, st.GRPC == codes.InvalidArgument
//
// # Library defaults
//
// INFO and WARNING map to 200 / OK since they never prevent a value.
// ERROR maps to 400 / InvalidArgument and EXCEPTION to 500 / Internal.
//
// # Configuration
//
// Config mirrors the options and can be read from REPLY_MAPPER_* environment
// variables with LoadConfig, or decoded from YAML or TOML.
//
// # Diagnostics
//
// Explain returns a human-readable trace of which tier matched and, for
// prefixes, which pattern was used.
//
// # Immutability
//
// All inputs are copied during New. A Mapper can be shared across goroutines.
package mapper
