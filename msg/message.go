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
	"strings"

	"dirpx.dev/reply/reason"
)

// DefaultText is the text of the message used when something is absent and
// nobody said why.
const DefaultText = "There is no object"

// Message is a single diagnostic.
//
// Message is a comparable value type: two messages are equal when all of their
// fields are equal, so == and map keys work as expected. The WithX helpers
// return modified copies.
type Message struct {
	// Severity is the impact of the message. Required.
	Severity Severity `json:"severity" yaml:"severity" toml:"severity"`

	// Text is the human-readable description.
	Text string `json:"text" yaml:"text" toml:"text"`

	// Reason is an optional machine-readable marker such as
	// "order.total.negative". Transport mappers match on it.
	Reason reason.Reason `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`

	// Field is an optional path to the offending field, e.g. "customer.email".
	Field string `json:"field,omitempty" yaml:"field,omitempty" toml:"field,omitempty"`
}

// New builds a message from a severity and a text.
func New(sev Severity, text string) Message {
	return Message{Severity: sev, Text: text}
}

// Default returns the ERROR message used for an unexplained absence.
func Default() Message {
	return Message{Severity: Error, Text: DefaultText}
}

// WithReason returns a copy of m with Reason set.
func (m Message) WithReason(r reason.Reason) Message {
	m.Reason = r
	return m
}

// WithField returns a copy of m with Field set.
func (m Message) WithField(field string) Message {
	m.Field = field
	return m
}

// Validate checks that the severity is valid and the reason canonical.
func (m Message) Validate() error {
	if err := m.Severity.Validate(); err != nil {
		return err
	}
	return reason.Validate(m.Reason)
}

// String formats the message as
//
//	SEVERITY[ reason][ field]: text
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Severity.String())
	if m.Reason != reason.Empty {
		b.WriteString(" ")
		b.WriteString(string(m.Reason))
	}
	if m.Field != "" {
		b.WriteString(" ")
		b.WriteString(m.Field)
	}
	b.WriteString(": ")
	b.WriteString(m.Text)
	return b.String()
}

// Highest returns the most severe message in msgs. When several messages
// share that severity the first one wins. ok is false for an empty list.
func Highest(msgs []Message) (m Message, ok bool) {
	for _, cur := range msgs {
		if !ok || cur.Severity > m.Severity {
			m, ok = cur, true
		}
	}
	return m, ok
}

// Texts returns the texts of msgs in order.
func Texts(msgs []Message) []string {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

// Blocking reports whether any message in msgs has a blocking severity.
func Blocking(msgs []Message) bool {
	for _, m := range msgs {
		if m.Severity.Blocking() {
			return true
		}
	}
	return false
}
