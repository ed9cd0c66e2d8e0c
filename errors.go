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

package reply

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"

	"dirpx.dev/reply/msg"
)

var (
	// ErrNoValue is returned when the value of an empty Reply is requested.
	ErrNoValue = errors.New("reply: no value present")

	// ErrNoMessages is returned when the messages of a present Reply are requested.
	ErrNoMessages = errors.New("reply: no messages present")
)

// Failure is the error projection of an empty Reply. It is produced by
// Reply.Err for transports that only speak error and exposes the
// diagnostics through Diagnostics.
type Failure struct {
	messages []msg.Message
}

// Error joins the message texts with "; ".
func (f *Failure) Error() string {
	if f == nil || len(f.messages) == 0 {
		return "reply: failure"
	}
	return "reply: " + strings.Join(msg.Texts(f.messages), "; ")
}

// Diagnostics returns a copy of the messages that explain the failure.
func (f *Failure) Diagnostics() []msg.Message {
	if f == nil {
		return nil
	}
	return cloneMessages(f.messages)
}

// IsAbsent reports whether v counts as "no value": a nil interface, or a nil
// pointer, map, slice, channel or func. Non-nillable kinds are never absent.
func IsAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// mustFunc panics with an assertion failure when fn is nil.
func mustFunc(fn any, op string) {
	if IsAbsent(fn) {
		panic(errors.AssertionFailedf("reply: %s called with a nil function", op))
	}
}

func cloneMessages(msgs []msg.Message) []msg.Message {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]msg.Message, len(msgs))
	copy(out, msgs)
	return out
}
