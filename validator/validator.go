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

package validator

import (
	"github.com/cockroachdb/errors"

	"dirpx.dev/reply"
	"dirpx.dev/reply/msg"
	"dirpx.dev/reply/reason"
)

// AbsentReason marks the message returned for an absent candidate.
const AbsentReason reason.Reason = "validation.candidate.absent"

// absentCandidate is the message returned when Validate is handed an absent
// value.
var absentCandidate = msg.NewError("candidate is absent").WithReason(AbsentReason)

// AbsentCandidate returns the message reported for an absent candidate.
func AbsentCandidate() msg.Message {
	return absentCandidate
}

// Rule pairs a predicate with the message reported when it does not hold.
// Predicates must be pure: Validate may call them from many goroutines.
type Rule[T any] struct {
	Predicate func(T) bool
	Message   msg.Message
}

// NewRule returns a Rule. It panics when pred is nil.
func NewRule[T any](pred func(T) bool, m msg.Message) Rule[T] {
	if pred == nil {
		panic(errors.AssertionFailedf("validator: nil predicate for %q", m.Text))
	}
	return Rule[T]{Predicate: pred, Message: m}
}

// Validator is an immutable, ordered list of rules.
type Validator[T any] struct {
	rules []Rule[T]
}

// Validate evaluates every rule against candidate. The result is present
// (holding candidate) when all rules hold, and otherwise empty with one
// message per failing rule in insertion order.
func (v *Validator[T]) Validate(candidate T) reply.Reply[T] {
	if failed := v.Check(candidate); len(failed) > 0 {
		return reply.Empty[T](failed...)
	}
	return reply.Of(candidate)
}

// ValidateReply validates the value of a present Reply and passes an empty
// one through with its messages untouched.
func (v *Validator[T]) ValidateReply(r reply.Reply[T]) reply.Reply[T] {
	return reply.FlatMap(r, v.Validate)
}

// Check returns the messages of the failing rules, or nil when candidate
// passes. An absent candidate yields AbsentCandidate() alone.
func (v *Validator[T]) Check(candidate T) []msg.Message {
	if reply.IsAbsent(candidate) {
		return []msg.Message{absentCandidate}
	}
	var failed []msg.Message
	for _, r := range v.rules {
		if !r.Predicate(candidate) {
			failed = append(failed, r.Message)
		}
	}
	return failed
}

// Rules returns a copy of the rules in insertion order.
func (v *Validator[T]) Rules() []Rule[T] {
	out := make([]Rule[T], len(v.rules))
	copy(out, v.rules)
	return out
}

// Len returns the number of rules.
func (v *Validator[T]) Len() int {
	return len(v.rules)
}
