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

package reason

import (
	"bytes"
	"encoding"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Reason is the canonical, validated marker of a diagnostic message.
type Reason string

const (
	// MinLength is the minimum length of a non-empty reason.
	MinLength = 3
	// MaxLength is the maximum length of a reason.
	MaxLength = 128
	// MaxSegments is the maximum number of dot-separated segments.
	MaxSegments = 4
)

// reasonFmt accepts 1..MaxSegments segments of [a-z][a-z0-9_]*.
// Keep the {0,3} quantifier in sync with MaxSegments.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrInvalidFormat is returned when a reason does not match the segment grammar.
	ErrInvalidFormat = errors.New("reason: invalid format")
	// ErrInvalidLength is returned when a reason is too short or too long.
	ErrInvalidLength = errors.New("reason: invalid length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason provided".
var Empty Reason = ""

// Normalize trims, lower-cases, turns "/" into "." and "-" into "_".
// It does not validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, errors.Wrapf(err, "%q", s)
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string, which is almost always a typo in a reason constant.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic(errors.AssertionFailedf("reason: empty reason in MustParse"))
	}
	return r
}

// Validate reports whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits r into its dot-separated segments.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix reports whether p is a segment-wise prefix of r:
// "order.total" is a prefix of "order.total.negative" but "order.tot" is not.
func (r Reason) HasPrefix(p Reason) bool {
	if p == Empty {
		return true
	}
	if !strings.HasPrefix(string(r), string(p)) {
		return false
	}
	return len(r) == len(p) || r[len(p)] == '.'
}

// String returns the reason as a string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Whitespace-only input produces Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
