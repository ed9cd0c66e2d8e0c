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

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/reply/apis"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func sample() []msg.Message {
	return []msg.Message{
		msg.NewWarning("address is unverified").WithField("address"),
		msg.NewError("total must be positive").
			WithReason(reason.MustParse("order.total.negative")).
			WithField("total"),
		msg.NewError("email is missing"),
	}
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(sample()))

	want := "Failed: 2 error(s), 1 warning(s)\n\n" +
		"Errors:\n" +
		"  • total: total must be positive (order.total.negative)\n" +
		"  • email is missing\n" +
		"\n" +
		"Warnings:\n" +
		"  • address: address is unverified\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_TextNonBlocking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(msg.Infos("served from cache")))
	assert.Contains(t, buf.String(), "Passed with notes: 1 info")
	assert.Contains(t, buf.String(), "Info:\n  • served from cache\n")
}

func TestReporter_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(nil))
	assert.Contains(t, buf.String(), "No diagnostics")
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(sample()))

	var got []apis.MessageView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, apis.MessageView{
		Severity: "ERROR",
		Text:     "total must be positive",
		Reason:   "order.total.negative",
		Field:    "total",
	}, got[1])

	buf.Reset()
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(nil))
	assert.JSONEq(t, `[]`, buf.String())
}
