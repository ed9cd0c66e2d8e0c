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

package apis

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

// Mapper is an immutable, concurrency-safe view of the status mapping rules.
// It resolves a message severity (and optionally its reason) into transport
// statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given severity and reason.
	// Without a reason-specific rule the mapper falls back to the severity rule.
	HTTPStatus(s msg.Severity, r reason.Reason) int

	// GRPCStatus returns the gRPC code for the given severity and reason.
	GRPCStatus(s msg.Severity, r reason.Reason) codes.Code

	// Status resolves both in one call using the same matching logic.
	Status(s msg.Severity, r reason.Reason) Status

	// Explain describes which rule matched. Meant for humans and tests.
	Explain(s msg.Severity, r reason.Reason) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http compatible status code.
	GRPC codes.Code // gRPC status code.
}

// OK reports whether the status describes success on both transports.
func (s Status) OK() bool {
	return s.GRPC == codes.OK && s.HTTP >= 200 && s.HTTP < 300
}
