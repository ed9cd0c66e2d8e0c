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

// Package reply provides Reply, an immutable "maybe a value, and if not,
// why not" container.
//
// A Reply holds either exactly one present value or a non-empty, ordered list
// of diagnostic messages (see package msg), never both. It replaces the
// (value, error) pair in code that has to report domain-rule violations as
// data rather than as control flow:
//
//	total := reply.OfNullable(order).
//	    Filter(func(o *Order) bool { return o.Total >= 0 }, msg.NewError("total must not be negative"))
//	cents := reply.Map(total, func(o *Order) int64 { return o.Total })
//
// Go methods cannot introduce type parameters, so the type-changing
// transformations (Map, FlatMap, Sequence) are package functions while the
// type-preserving ones (Filter, Or, OrValue) are methods.
//
// # Absence
//
// A value of T is absent when it is a nil pointer, interface, map, slice,
// channel or func (see IsAbsent). Of panics on an absent value; OfNullable
// turns it into an empty Reply carrying the default message
// ("There is no object").
//
// # Contract violations
//
// Passing nil functions or absent values where a value is mandated is a
// programming error and panics with a cockroachdb/errors assertion failure.
// Asking an empty Reply for its value (or a present Reply for its messages)
// returns ErrNoValue (ErrNoMessages).
//
// Replies are values and are safe to share between goroutines.
package reply
