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

// Package validator composes independent predicate rules over a value and
// reports every rule that failed.
//
// A Validator is assembled once through a Builder and is immutable
// afterwards:
//
//	orders := validator.NewBuilder[Order]().
//	    Add(func(o Order) bool { return o.Total >= 0 }, msg.NewError("total must not be negative")).
//	    Add(func(o Order) bool { return o.Currency != "" }, msg.NewError("currency is required")).
//	    Build()
//
//	r := orders.Validate(order) // reply.Reply[Order]
//
// Validate always evaluates every rule (accumulation, not short-circuit) and
// returns an empty Reply with one message per failing rule, in rule
// insertion order. A candidate that passes every rule comes back as a present
// Reply of itself.
//
// An absent candidate (nil pointer, map, ...) short-circuits: no predicate is
// invoked and the result carries the single AbsentCandidate() message. Rules
// can therefore dereference their argument without nil checks.
//
// A built Validator is safe for concurrent use. A Builder is not and must not
// be shared until Build has returned.
package validator
