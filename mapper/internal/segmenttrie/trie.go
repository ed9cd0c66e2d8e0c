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

// Package segmenttrie indexes dot-separated reason prefixes for
// longest-prefix matching on segment boundaries.
package segmenttrie

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned for an empty prefix, an empty or malformed
// segment, or a prefix made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps reason prefixes such as "order.total" or "order.*.negative" to
// values. A deeper match wins; at equal depth an exact segment wins over a
// wildcard. A Trie is not safe for concurrent Insert, but concurrent lookups
// on a Trie that is no longer modified are fine.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	pattern  string
}

// Match is the result of a lookup.
type Match[T any] struct {
	Value   T
	Pattern string // the prefix as inserted
	Depth   int    // number of matched segments
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, replacing any previous value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !ValidSegment(s) {
			return errors.Wrapf(ErrInvalidPrefix, "segment %q of %q", s, prefix)
		}
		concrete = true
	}
	if !concrete {
		return errors.Wrapf(ErrInvalidPrefix, "%q has no concrete segment", prefix)
	}

	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.hasVal, cur.val, cur.pattern = true, val, prefix
	return nil
}

// Lookup finds the deepest rule matching reason. A malformed reason matches
// whatever its well-formed leading segments match.
func (t *Trie[T]) Lookup(reason string) (Match[T], bool) {
	best := Match[T]{Depth: -1}
	if t == nil {
		return best, false
	}
	segs := leadingSegments(reason)
	t.walk(segs, 0, &best)
	return best, best.Depth >= 0
}

func (t *Trie[T]) walk(segs []string, depth int, best *Match[T]) {
	// strictly greater keeps the first (exact) branch on ties
	if t.hasVal && depth > best.Depth {
		*best = Match[T]{Value: t.val, Pattern: t.pattern, Depth: depth}
	}
	if depth == len(segs) {
		return
	}
	if next, ok := t.children[segs[depth]]; ok {
		next.walk(segs, depth+1, best)
	}
	if next, ok := t.children[Wildcard]; ok {
		next.walk(segs, depth+1, best)
	}
}

// leadingSegments returns the well-formed segments of reason up to the first
// malformed one.
func leadingSegments(reason string) []string {
	if reason == "" {
		return nil
	}
	segs := strings.Split(reason, ".")
	for i, s := range segs {
		if !ValidSegment(s) {
			return segs[:i]
		}
	}
	return segs
}

// ValidSegment reports whether s matches [a-z][a-z0-9_]*.
func ValidSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
