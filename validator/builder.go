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

import "dirpx.dev/reply/msg"

// Builder accumulates rules for a Validator. The zero Builder is ready to use.
type Builder[T any] struct {
	rules []Rule[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends a rule built from pred and m. It panics when pred is nil.
func (b *Builder[T]) Add(pred func(T) bool, m msg.Message) *Builder[T] {
	b.rules = append(b.rules, NewRule(pred, m))
	return b
}

// AddRule appends r. It panics when r has no predicate.
func (b *Builder[T]) AddRule(r Rule[T]) *Builder[T] {
	b.rules = append(b.rules, NewRule(r.Predicate, r.Message))
	return b
}

// AddRules appends rs in order.
func (b *Builder[T]) AddRules(rs ...Rule[T]) *Builder[T] {
	for _, r := range rs {
		b.AddRule(r)
	}
	return b
}

// AddValidator appends every rule of v, reusing an existing validator as a
// building block. A nil v adds nothing.
func (b *Builder[T]) AddValidator(v *Validator[T]) *Builder[T] {
	if v == nil {
		return b
	}
	b.rules = append(b.rules, v.rules...)
	return b
}

// Build freezes the accumulated rules into a Validator. The Builder may keep
// being used; later additions do not affect validators already built.
func (b *Builder[T]) Build() *Validator[T] {
	rules := make([]Rule[T], len(b.rules))
	copy(rules, b.rules)
	return &Validator[T]{rules: rules}
}
