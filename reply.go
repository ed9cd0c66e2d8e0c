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
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"

	"dirpx.dev/reply/msg"
)

// Reply holds either one present value or a non-empty list of messages
// explaining why there is none.
//
// The zero Reply is empty and carries the default message.
type Reply[T any] struct {
	value    T
	present  bool
	messages []msg.Message
}

// Of returns a present Reply holding v. It panics when v is absent.
func Of[T any](v T) Reply[T] {
	if IsAbsent(v) {
		panic(errors.AssertionFailedf("reply: Of called with an absent %T", v))
	}
	return Reply[T]{value: v, present: true}
}

// OfNullable returns a present Reply when v is not absent, otherwise an empty
// Reply carrying the default message.
func OfNullable[T any](v T) Reply[T] {
	if IsAbsent(v) {
		return Empty[T]()
	}
	return Reply[T]{value: v, present: true}
}

// Empty returns a Reply without a value. With no msgs the default message
// (msg.Default) is used. msgs is copied.
func Empty[T any](msgs ...msg.Message) Reply[T] {
	if len(msgs) == 0 {
		return Reply[T]{messages: []msg.Message{msg.Default()}}
	}
	return Reply[T]{messages: cloneMessages(msgs)}
}

// OfOptional converts the (v, ok) idiom: a present Reply when ok is true and v
// is not absent, otherwise an empty Reply with msgs (or the default message).
func OfOptional[T any](v T, ok bool, msgs ...msg.Message) Reply[T] {
	if !ok || IsAbsent(v) {
		return Empty[T](msgs...)
	}
	return Reply[T]{value: v, present: true}
}

// OfPointer dereferences p. A nil p yields an empty Reply with msgs (or the
// default message).
func OfPointer[T any](p *T, msgs ...msg.Message) Reply[T] {
	if p == nil {
		return Empty[T](msgs...)
	}
	return OfOptional(*p, true, msgs...)
}

// FromResult converts a (value, error) pair. A non-nil err yields an empty
// Reply with msgs, or a single EXCEPTION message holding err's text when no
// msgs are given. With a nil err it behaves like OfNullable.
func FromResult[T any](v T, err error, msgs ...msg.Message) Reply[T] {
	if err != nil {
		if len(msgs) == 0 {
			return Empty[T](msg.NewException(err.Error()))
		}
		return Empty[T](msgs...)
	}
	return OfNullable(v)
}

// IsPresent reports whether r holds a value.
func (r Reply[T]) IsPresent() bool {
	return r.present
}

// Get returns the value, or ErrNoValue when r is empty.
func (r Reply[T]) Get() (T, error) {
	if !r.present {
		var zero T
		return zero, ErrNoValue
	}
	return r.value, nil
}

// MustGet returns the value and panics with ErrNoValue when r is empty.
func (r Reply[T]) MustGet() T {
	if !r.present {
		panic(errors.Wrap(ErrNoValue, "reply: MustGet"))
	}
	return r.value
}

// OrElse returns the value if present, otherwise fallback.
func (r Reply[T]) OrElse(fallback T) T {
	if r.present {
		return r.value
	}
	return fallback
}

// OrElseGet returns the value if present, otherwise the result of supplier.
// supplier is only invoked for an empty Reply.
func (r Reply[T]) OrElseGet(supplier func() T) T {
	mustFunc(supplier, "OrElseGet")
	if r.present {
		return r.value
	}
	return supplier()
}

// Messages returns a copy of the messages, or ErrNoMessages when r holds a value.
func (r Reply[T]) Messages() ([]msg.Message, error) {
	if r.present {
		return nil, ErrNoMessages
	}
	return cloneMessages(r.msgs()), nil
}

// MessagesOrElse returns a copy of the messages of an empty Reply, or
// fallback when r holds a value.
func (r Reply[T]) MessagesOrElse(fallback []msg.Message) []msg.Message {
	if r.present {
		return fallback
	}
	return cloneMessages(r.msgs())
}

// MessagesOrElseGet is MessagesOrElse with a lazily computed fallback.
func (r Reply[T]) MessagesOrElseGet(supplier func() []msg.Message) []msg.Message {
	mustFunc(supplier, "MessagesOrElseGet")
	if r.present {
		return supplier()
	}
	return cloneMessages(r.msgs())
}

// IfPresent runs action with the value when r holds one.
func (r Reply[T]) IfPresent(action func(T)) {
	mustFunc(action, "IfPresent")
	if r.present {
		action(r.value)
	}
}

// All returns a sequence yielding the value once when present and nothing
// otherwise. Each call starts over from r.
func (r Reply[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.present {
			yield(r.value)
		}
	}
}

// Err returns nil for a present Reply and a *Failure carrying the messages
// otherwise.
func (r Reply[T]) Err() error {
	if r.present {
		return nil
	}
	return &Failure{messages: cloneMessages(r.msgs())}
}

// String formats r for debugging.
func (r Reply[T]) String() string {
	if r.present {
		return fmt.Sprintf("Reply[%v]", r.value)
	}
	parts := make([]string, 0, len(r.msgs()))
	for _, m := range r.msgs() {
		parts = append(parts, m.String())
	}
	return "Reply.empty[" + strings.Join(parts, "; ") + "]"
}

// msgs returns the stored messages, substituting the default message for the
// zero Reply.
func (r Reply[T]) msgs() []msg.Message {
	if !r.present && len(r.messages) == 0 {
		return []msg.Message{msg.Default()}
	}
	return r.messages
}
