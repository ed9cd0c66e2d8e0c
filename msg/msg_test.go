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
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"INFO", Info},
		{" info ", Info},
		{"warning", Warning},
		{"warn", Warning},
		{"Error", Error},
		{"EXCEPTION", Exception},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSeverity("fatal")
	assert.True(t, errors.Is(err, ErrSeverityInvalid))
	assert.Panics(t, func() { MustParseSeverity("") })
}

func TestSeverity_Order(t *testing.T) {
	all := Severities()
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Less(t, int(all[i-1]), int(all[i]))
	}
	assert.False(t, Warning.Blocking())
	assert.True(t, Error.Blocking())
	assert.True(t, Exception.Blocking())
}

func TestSeverity_Validate(t *testing.T) {
	for _, s := range Severities() {
		assert.NoError(t, s.Validate(), s.String())
	}
	assert.Error(t, Unspecified.Validate())
	assert.Error(t, Severity(42).Validate())
	assert.Equal(t, "UNKNOWN", Severity(42).String())
}

func TestSeverity_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		S Severity `json:"s"`
	}{S: Warning})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"WARNING"}`, string(b))

	var out struct {
		S Severity `json:"s"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":"exception"}`), &out))
	assert.Equal(t, Exception, out.S)

	_, err = json.Marshal(struct{ S Severity }{})
	assert.Error(t, err, "unspecified severity must not marshal")
}

func TestMessage_Equality(t *testing.T) {
	a := NewError("must be even")
	b := New(Error, "must be even")
	assert.True(t, a == b)
	assert.False(t, a == NewWarning("must be even"))
	assert.False(t, a == a.WithField("n"))
}

func TestMessage_CopyOnWrite(t *testing.T) {
	base := NewError("bad total")
	tagged := base.WithReason("order.total.negative").WithField("total")

	assert.Empty(t, base.Reason)
	assert.Empty(t, base.Field)
	assert.Equal(t, "ERROR order.total.negative total: bad total", tagged.String())
	assert.Equal(t, "WARNING: careful", NewWarning("careful").String())
}

func TestMessage_Validate(t *testing.T) {
	assert.NoError(t, NewInfo("ok").Validate())
	assert.Error(t, Message{Text: "no severity"}.Validate())
	assert.Error(t, NewError("x").WithReason("Bad Reason").Validate())
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, Error, d.Severity)
	assert.Equal(t, DefaultText, d.Text)
	assert.Equal(t, "There is no object", d.Text)
}

func TestFactories(t *testing.T) {
	assert.Equal(t, Info, NewInfo("x").Severity)
	assert.Equal(t, Warning, NewWarning("x").Severity)
	assert.Equal(t, Error, NewError("x").Severity)
	assert.Equal(t, Exception, NewException("x").Severity)

	assert.Equal(t, []Message{NewInfo("i")}, Infos("i"))
	assert.Equal(t, []Message{NewWarning("w")}, Warnings("w"))
	assert.Equal(t, []Message{NewError("e")}, Errors("e"))
	assert.Equal(t, []Message{NewException("x")}, Exceptions("x"))
}

func TestHighest(t *testing.T) {
	_, ok := Highest(nil)
	assert.False(t, ok)

	msgs := []Message{
		NewWarning("w"),
		NewError("first error"),
		NewInfo("i"),
		NewError("second error"),
	}
	got, ok := Highest(msgs)
	require.True(t, ok)
	assert.Equal(t, "first error", got.Text)

	got, _ = Highest(append(msgs, NewException("boom")))
	assert.Equal(t, Exception, got.Severity)
}

func TestTextsAndBlocking(t *testing.T) {
	assert.Nil(t, Texts(nil))
	msgs := []Message{NewInfo("a"), NewWarning("b")}
	assert.Equal(t, []string{"a", "b"}, Texts(msgs))
	assert.False(t, Blocking(msgs))
	assert.True(t, Blocking(append(msgs, NewError("c"))))
}
