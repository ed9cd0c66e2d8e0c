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
	"github.com/cockroachdb/errors"

	"dirpx.dev/reply/msg"
)

// Filter keeps a present value that satisfies pred. A present value that
// fails pred becomes an empty Reply with msgs (or the default message). An
// empty Reply is returned unchanged, keeping its messages.
func (r Reply[T]) Filter(pred func(T) bool, msgs ...msg.Message) Reply[T] {
	mustFunc(pred, "Filter")
	if !r.present || pred(r.value) {
		return r
	}
	return Empty[T](msgs...)
}

// Or returns r when present, otherwise the Reply produced by supplier.
func (r Reply[T]) Or(supplier func() Reply[T]) Reply[T] {
	mustFunc(supplier, "Or")
	if r.present {
		return r
	}
	return supplier()
}

// OrValue returns r when present, otherwise a present Reply of fallback.
// It panics when fallback is absent.
func (r Reply[T]) OrValue(fallback T) Reply[T] {
	if IsAbsent(fallback) {
		panic(errors.AssertionFailedf("reply: OrValue called with an absent %T", fallback))
	}
	if r.present {
		return r
	}
	return Reply[T]{value: fallback, present: true}
}

// Map applies f to a present value and wraps the result like OfNullable: an
// absent result yields an empty Reply with the default message. An empty
// Reply propagates its messages.
func Map[T, U any](r Reply[T], f func(T) U) Reply[U] {
	mustFunc(f, "Map")
	if !r.present {
		return Reply[U]{messages: cloneMessages(r.msgs())}
	}
	return OfNullable(f(r.value))
}

// FlatMap returns f applied to a present value. An empty Reply propagates
// its messages.
func FlatMap[T, U any](r Reply[T], f func(T) Reply[U]) Reply[U] {
	mustFunc(f, "FlatMap")
	if !r.present {
		return Reply[U]{messages: cloneMessages(r.msgs())}
	}
	return f(r.value)
}

// Sequence turns a list of replies into a reply of a list. The result is
// present only when every input is present; otherwise it carries the
// messages of every empty input, in order. An empty input list yields a
// present, empty slice.
func Sequence[T any](rs []Reply[T]) Reply[[]T] {
	values := make([]T, 0, len(rs))
	var failed []msg.Message
	for _, r := range rs {
		if r.present {
			values = append(values, r.value)
			continue
		}
		failed = append(failed, r.msgs()...)
	}
	if len(failed) > 0 {
		return Reply[[]T]{messages: failed}
	}
	return Reply[[]T]{value: values, present: true}
}
