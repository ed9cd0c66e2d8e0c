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

// Package report renders diagnostic messages for people (colored text) and
// for tools (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"dirpx.dev/reply/adapter"
	"dirpx.dev/reply/msg"
)

// Format specifies the output format of a report.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter writes diagnostics to out.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes msgs in the reporter's format.
func (r *Reporter) Report(msgs []msg.Message) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(msgs)
	default:
		return r.reportText(msgs)
	}
}

func (r *Reporter) reportJSON(msgs []msg.Message) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(adapter.MessageViews(msgs)), "encoding JSON report")
}

// sections lists severities from the most to the least severe.
var sections = []struct {
	severity msg.Severity
	title    string
	noun     string
	color    color.Attribute
}{
	{msg.Exception, "Exceptions:", "exception(s)", color.FgMagenta},
	{msg.Error, "Errors:", "error(s)", color.FgRed},
	{msg.Warning, "Warnings:", "warning(s)", color.FgYellow},
	{msg.Info, "Info:", "info", color.FgCyan},
}

func (r *Reporter) reportText(msgs []msg.Message) error {
	if len(msgs) == 0 {
		_, err := fmt.Fprintln(r.out, color.GreenString("✓ No diagnostics"))
		return errors.Wrap(err, "writing text report")
	}

	bySeverity := make(map[msg.Severity][]msg.Message, len(sections))
	for _, m := range msgs {
		bySeverity[m.Severity] = append(bySeverity[m.Severity], m)
	}

	var summary []string
	for _, s := range sections {
		if n := len(bySeverity[s.severity]); n > 0 {
			summary = append(summary, color.New(s.color).Sprintf("%d %s", n, s.noun))
		}
	}

	var sb strings.Builder
	if msg.Blocking(msgs) {
		sb.WriteString("Failed: ")
	} else {
		sb.WriteString("Passed with notes: ")
	}
	sb.WriteString(strings.Join(summary, ", "))
	sb.WriteString("\n\n")

	for _, s := range sections {
		group := bySeverity[s.severity]
		if len(group) == 0 {
			continue
		}
		sb.WriteString(s.title)
		sb.WriteString("\n")
		for _, m := range group {
			writeMessage(&sb, m, s.color)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(r.out, sb.String())
	return errors.Wrap(err, "writing text report")
}

// writeMessage formats one line:  • field: text (reason)
func writeMessage(sb *strings.Builder, m msg.Message, c color.Attribute) {
	sb.WriteString("  • ")
	if m.Field != "" {
		sb.WriteString(color.New(c).Sprint(m.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(m.Text)
	if m.Reason != "" {
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", m.Reason))
	}
	sb.WriteString("\n")
}
