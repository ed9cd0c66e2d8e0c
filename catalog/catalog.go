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

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
	"dirpx.dev/reply/validator"
)

var (
	// ErrUnknownFormat is returned by Load for a file extension other than
	// .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("catalog: unknown file format")
	// ErrInvalidEntry is returned when an entry has an invalid reason,
	// severity or an empty text.
	ErrInvalidEntry = errors.New("catalog: invalid entry")
)

// entry is the document form of one message.
type entry struct {
	Severity msg.Severity `yaml:"severity" toml:"severity"`
	Text     string       `yaml:"text" toml:"text"`
	Field    string       `yaml:"field" toml:"field"`
}

type document struct {
	Messages map[string]entry `yaml:"messages" toml:"messages"`
}

// Catalog is an immutable set of messages keyed by reason.
type Catalog struct {
	messages map[reason.Reason]msg.Message
}

// ParseYAML decodes a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "catalog: decode yaml")
	}
	return fromDocument(doc)
}

// ParseTOML decodes a TOML catalog.
func ParseTOML(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "catalog: decode toml")
	}
	return fromDocument(doc)
}

// Load reads a catalog file, picking the decoder by extension.
func Load(path string) (*Catalog, error) {
	var parse func([]byte) (*Catalog, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: read %s", path)
	}
	c, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

func fromDocument(doc document) (*Catalog, error) {
	c := &Catalog{messages: make(map[reason.Reason]msg.Message, len(doc.Messages))}
	for key, e := range doc.Messages {
		r, err := reason.Parse(key)
		if err != nil || r == reason.Empty {
			return nil, errors.Wrapf(ErrInvalidEntry, "reason %q", key)
		}
		if _, dup := c.messages[r]; dup {
			return nil, errors.Wrapf(ErrInvalidEntry, "reason %q listed twice", r)
		}
		if strings.TrimSpace(e.Text) == "" {
			return nil, errors.Wrapf(ErrInvalidEntry, "entry %q has no text", r)
		}
		m := msg.Message{Severity: e.Severity, Text: e.Text, Reason: r, Field: e.Field}
		if err := m.Validate(); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "catalog: entry %q", r), ErrInvalidEntry)
		}
		c.messages[r] = m
	}
	return c, nil
}

// Len returns the number of messages.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Reasons returns the reasons in lexical order.
func (c *Catalog) Reasons() []reason.Reason {
	out := make([]reason.Reason, 0, len(c.messages))
	for r := range c.messages {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Message returns the message for r.
func (c *Catalog) Message(r reason.Reason) (msg.Message, bool) {
	m, ok := c.messages[r]
	return m, ok
}

// MustMessage returns the message for r and panics when there is none.
func (c *Catalog) MustMessage(r reason.Reason) msg.Message {
	m, ok := c.messages[r]
	if !ok {
		panic(errors.AssertionFailedf("catalog: no message for reason %q", r))
	}
	return m
}

// Messagef returns the message for r with its text used as a fmt format
// for args. Without args the text is returned verbatim.
func (c *Catalog) Messagef(r reason.Reason, args ...any) (msg.Message, bool) {
	m, ok := c.messages[r]
	if !ok {
		return msg.Message{}, false
	}
	if len(args) > 0 {
		m.Text = fmt.Sprintf(m.Text, args...)
	}
	return m, true
}

// Rule builds a validator rule reporting the catalog message for r. It
// panics when r is not in the catalog.
func Rule[T any](c *Catalog, r reason.Reason, pred func(T) bool) validator.Rule[T] {
	return validator.NewRule(pred, c.MustMessage(r))
}
