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

package service

import (
	"github.com/cockroachdb/errors"

	"dirpx.dev/reply"
	"dirpx.dev/reply/msg"
)

// Package is an immutable (value, diagnostics) pair. Value is never absent.
type Package[T any] struct {
	value    T
	messages []msg.Message
}

// Of wraps a known-good value together with optional diagnostics, typically
// warnings or notes produced alongside it. It panics when v is absent.
func Of[T any](v T, msgs ...msg.Message) Package[T] {
	mustPresent(v, "Of")
	return Package[T]{value: v, messages: clone(msgs)}
}

// OfReply takes the value of r, or fallback when r is empty, and the
// messages of r when it is empty. It panics when fallback is absent.
func OfReply[T any](r reply.Reply[T], fallback T) Package[T] {
	mustPresent(fallback, "OfReply")
	return Package[T]{
		value:    r.OrElse(fallback),
		messages: r.MessagesOrElse(nil),
	}
}

// OfOptional is OfReply for a Reply of an optional (pointer) value: an empty
// Reply, or a present Reply holding nil, both produce fallback.
func OfOptional[T any](r reply.Reply[*T], fallback T) Package[T] {
	mustPresent(fallback, "OfOptional")
	v := fallback
	if p := r.OrElse(nil); p != nil && !reply.IsAbsent(*p) {
		v = *p
	}
	return Package[T]{value: v, messages: r.MessagesOrElse(nil)}
}

// Value returns the packaged value.
func (p Package[T]) Value() T {
	return p.value
}

// Messages returns a copy of the diagnostics. It may be empty.
func (p Package[T]) Messages() []msg.Message {
	return clone(p.messages)
}

// HasMessages reports whether any diagnostic was collected.
func (p Package[T]) HasMessages() bool {
	return len(p.messages) > 0
}

// Severity returns the most severe diagnostic level. ok is false when there
// are no diagnostics.
func (p Package[T]) Severity() (s msg.Severity, ok bool) {
	m, ok := msg.Highest(p.messages)
	return m.Severity, ok
}

func mustPresent[T any](v T, op string) {
	if reply.IsAbsent(v) {
		panic(errors.AssertionFailedf("service: %s called with an absent %T", op, v))
	}
}

func clone(msgs []msg.Message) []msg.Message {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]msg.Message, len(msgs))
	copy(out, msgs)
	return out
}
