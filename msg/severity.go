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

package msg

import (
	"bytes"
	"encoding"
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity classifies a diagnostic message.
//
// The zero value is Unspecified and is NOT a valid severity for a message
// produced by this module; it only exists so that an uninitialized Severity
// can be detected.
type Severity uint8

const (
	// Unspecified is the zero value. Validate rejects it.
	Unspecified Severity = iota
	// Info is an informational note. It never prevents a value from being produced.
	Info
	// Warning is a recommended but non-blocking issue.
	Warning
	// Error is a domain or validation failure.
	Error
	// Exception reports an unexpected failure of an operation, such as an
	// error returned by a collaborator.
	Exception
)

var (
	// ErrSeverityInvalid is returned when a value cannot be parsed or validated
	// as a Severity.
	ErrSeverityInvalid = errors.New("msg: invalid severity")
)

var (
	_ encoding.TextMarshaler   = (*Severity)(nil)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

var severityNames = [...]string{
	Unspecified: "UNSPECIFIED",
	Info:        "INFO",
	Warning:     "WARNING",
	Error:       "ERROR",
	Exception:   "EXCEPTION",
}

// Severities lists every valid severity in ascending order.
func Severities() []Severity {
	return []Severity{Info, Warning, Error, Exception}
}

// Normalize brings user input closer to the canonical severity name.
// It trims spaces and upper-cases; it does not validate.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseSeverity normalizes s and returns the matching Severity.
// "WARN" is accepted as an alias for WARNING.
func ParseSeverity(s string) (Severity, error) {
	switch Normalize(s) {
	case "INFO":
		return Info, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "EXCEPTION":
		return Exception, nil
	}
	return Unspecified, errors.Wrapf(ErrSeverityInvalid, "%q", s)
}

// MustParseSeverity is the panic-on-error variant of ParseSeverity.
func MustParseSeverity(s string) Severity {
	sev, err := ParseSeverity(s)
	if err != nil {
		panic(err)
	}
	return sev
}

// Validate reports whether s is one of Info, Warning, Error or Exception.
func (s Severity) Validate() error {
	if s < Info || s > Exception {
		return ErrSeverityInvalid
	}
	return nil
}

// Blocking reports whether the severity describes a failure (Error or
// Exception) as opposed to a note attached to a usable value.
func (s Severity) Blocking() bool {
	return s >= Error
}

// String returns the canonical upper-case name.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
