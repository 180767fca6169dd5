// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import (
	"iter"
	"reflect"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[T any] interface {
	Equal(other T) bool
}

// equal compares two values of type T for equality.
// If T implements Equaler[T], that custom equality method is used.
// Otherwise, [reflect.DeepEqual] is used as a fallback.
func equal[T any](v1, v2 T) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[T]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Equal reports whether both sequences hold equal elements in the same
// order, element equality per the [Equaler] contract. The comparison
// is on logical content only, the internal tree shapes may differ.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	if s.tree == other.tree {
		return true
	}
	if s.Len() != other.Len() {
		return false
	}
	it1 := s.Iter()
	it2 := other.Iter()
	for {
		v1, ok := it1.Next()
		if !ok {
			return true
		}
		v2, _ := it2.Next()
		if !equal(v1, v2) {
			return false
		}
	}
}

// EqualFunc is like [Sequence.Equal] with an explicit element
// equality predicate.
func (s Sequence[T]) EqualFunc(other Sequence[T], eq func(T, T) bool) bool {
	if s.Len() != other.Len() {
		return false
	}
	it1 := s.Iter()
	it2 := other.Iter()
	for {
		v1, ok := it1.Next()
		if !ok {
			return true
		}
		v2, _ := it2.Next()
		if !eq(v1, v2) {
			return false
		}
	}
}

// EqualSeq reports whether the sequence and an arbitrary iterator hold
// equal elements in the same order. The peer needs no size, both sides
// are walked in lock-step.
func (s Sequence[T]) EqualSeq(other iter.Seq[T]) bool {
	next, stop := iter.Pull(other)
	defer stop()

	it := s.Iter()
	for {
		v1, ok1 := it.Next()
		v2, ok2 := next()
		if !ok1 || !ok2 {
			return ok1 == ok2
		}
		if !equal(v1, v2) {
			return false
		}
	}
}

// Compare orders two sequences lexicographically with cmp, which must
// return a negative number when a < b, zero when a == b and a positive
// number when a > b. A prefix compares less than the longer sequence.
func (s Sequence[T]) Compare(other Sequence[T], cmp func(T, T) int) int {
	it1 := s.Iter()
	it2 := other.Iter()
	for {
		v1, ok1 := it1.Next()
		v2, ok2 := it2.Next()
		switch {
		case !ok1 && !ok2:
			return 0
		case !ok1:
			return -1
		case !ok2:
			return +1
		}
		if c := cmp(v1, v2); c != 0 {
			return c
		}
	}
}

// CompareSeq is like [Sequence.Compare] against an arbitrary iterator.
func (s Sequence[T]) CompareSeq(other iter.Seq[T], cmp func(T, T) int) int {
	next, stop := iter.Pull(other)
	defer stop()

	it := s.Iter()
	for {
		v1, ok1 := it.Next()
		v2, ok2 := next()
		switch {
		case !ok1 && !ok2:
			return 0
		case !ok1:
			return -1
		case !ok2:
			return +1
		}
		if c := cmp(v1, v2); c != 0 {
			return c
		}
	}
}
