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
	"net/http"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc/codes"

	"dirpx.dev/reply/msg"
)

type prefixRule struct {
	// prefix is the raw, dot-separated reason prefix (may contain "*").
	// It is normalized when the trie is built.
	prefix string
	// val is the status to apply when the prefix matches. gRPC codes are
	// stored as ints and converted when the trie is built.
	val int
}

type builder struct {
	httpDefaults map[msg.Severity]int
	grpcDefaults map[msg.Severity]codes.Code

	httpOverride map[msg.Severity]int
	grpcOverride map[msg.Severity]codes.Code

	httpPrefixes map[msg.Severity][]prefixRule
	grpcPrefixes map[msg.Severity][]prefixRule

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[msg.Severity]int, len(defaultHTTP)),
		grpcDefaults: make(map[msg.Severity]codes.Code, len(defaultGRPC)),

		httpOverride: make(map[msg.Severity]int),
		grpcOverride: make(map[msg.Severity]codes.Code),
		httpPrefixes: make(map[msg.Severity][]prefixRule),
		grpcPrefixes: make(map[msg.Severity][]prefixRule),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// validate rejects rules keyed by an unknown severity, HTTP statuses
// outside 100..599 and gRPC codes above codes.Unauthenticated.
func (b *builder) validate() error {
	checkSeverity := func(s msg.Severity) error {
		if err := s.Validate(); err != nil {
			return errors.Mark(errors.Wrapf(err, "rule for severity %d", uint8(s)), ErrInvalidRule)
		}
		return nil
	}
	checkHTTP := func(v int) error {
		if v < 100 || v > 599 {
			return errors.Mark(errors.Newf("http status %d out of range", v), ErrInvalidRule)
		}
		return nil
	}
	checkGRPC := func(c codes.Code) error {
		if c > codes.Unauthenticated {
			return errors.Mark(errors.Newf("grpc code %d out of range", uint32(c)), ErrInvalidRule)
		}
		return nil
	}

	for _, m := range []map[msg.Severity]int{b.httpDefaults, b.httpOverride} {
		for s, v := range m {
			if err := checkSeverity(s); err != nil {
				return err
			}
			if err := checkHTTP(v); err != nil {
				return err
			}
		}
	}
	for _, m := range []map[msg.Severity]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for s, c := range m {
			if err := checkSeverity(s); err != nil {
				return err
			}
			if err := checkGRPC(c); err != nil {
				return err
			}
		}
	}
	for s, rs := range b.httpPrefixes {
		if err := checkSeverity(s); err != nil {
			return err
		}
		for _, r := range rs {
			if err := checkHTTP(r.val); err != nil {
				return err
			}
		}
	}
	for s, rs := range b.grpcPrefixes {
		if err := checkSeverity(s); err != nil {
			return err
		}
		for _, r := range rs {
			if err := checkGRPC(codes.Code(r.val)); err != nil {
				return err
			}
		}
	}
	if err := checkGRPC(b.fallbackGRPC); err != nil {
		return err
	}
	return checkHTTP(b.fallbackHTTP)
}
