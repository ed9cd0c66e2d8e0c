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
)

// Field lifts the rules of a validator for F onto T through getter. Each
// lifted message gets name prepended to its Field path, so
//
//	validator.Field("customer", func(o Order) Customer { return o.Customer }, customers)
//
// reports a failing "email" rule of customers as "customer.email".
//
// An absent field value fails every lifted rule instead of invoking its
// predicate.
func Field[T, F any](name string, getter func(T) F, v *Validator[F]) []Rule[T] {
	if getter == nil {
		panic(errors.AssertionFailedf("validator: nil getter for field %q", name))
	}
	if v == nil {
		return nil
	}
	out := make([]Rule[T], 0, len(v.rules))
	for _, r := range v.rules {
		pred := r.Predicate
		out = append(out, Rule[T]{
			Predicate: func(t T) bool {
				f := getter(t)
				if reply.IsAbsent(f) {
					return false
				}
				return pred(f)
			},
			Message: r.Message.WithField(joinPath(name, r.Message.Field)),
		})
	}
	return out
}

func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	default:
		return parent + "." + child
	}
}
