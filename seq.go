// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import "iter"

// Sequence is a persistent indexed sequence with payload type T.
// The zero value is the empty sequence and is ready to use.
//
// All methods leave the receiver untouched and return new sequences
// that share unchanged subtrees with the receiver. A Sequence value
// may be copied and read concurrently without synchronization.
//
// Where an operation documents negative index support, an index i < 0
// addresses position Len()+i, as in Go slices counted from the end.
type Sequence[T any] struct {
	tree *tree[T]
}

// New returns the empty sequence, equivalent to the zero value.
func New[T any]() Sequence[T] {
	return Sequence[T]{}
}

// From builds a sequence from the given elements.
func From[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// FromSlice builds a sequence from a slice in O(n) with a perfectly
// balanced bulk build. The slice is not retained.
func FromSlice[T any](values []T) Sequence[T] {
	i := 0
	next := func() T {
		v := values[i]
		i++
		return v
	}
	return Sequence[T]{tree: treeFrom(len(values), 0, next)}
}

// FromSeq builds a sequence from an iterator by successive appends.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	var t *tree[T]
	for v := range seq {
		t = t.pushBack(newLeaf(v))
	}
	return Sequence[T]{tree: t}
}

// Len returns the number of elements, O(1).
func (s Sequence[T]) Len() int {
	return s.tree.length()
}

// IsEmpty reports whether the sequence has no elements.
func (s Sequence[T]) IsEmpty() bool {
	return s.tree == nil
}

// Front returns the first element, ok is false on the empty sequence.
func (s Sequence[T]) Front() (value T, ok bool) {
	switch {
	case s.tree == nil:
		return value, false
	case s.tree.root != nil:
		return s.tree.root.value, true
	}
	n := s.tree.left.items[0]
	for !n.isLeaf() {
		n = n.items[0]
	}
	return n.value, true
}

// Back returns the last element, ok is false on the empty sequence.
func (s Sequence[T]) Back() (value T, ok bool) {
	switch {
	case s.tree == nil:
		return value, false
	case s.tree.root != nil:
		return s.tree.root.value, true
	}
	n := s.tree.right.back()
	for !n.isLeaf() {
		if n.items[2] != nil {
			n = n.items[2]
			continue
		}
		n = n.items[1]
	}
	return n.value, true
}

// Get returns the element at position i, negative indices permitted.
// ok is false when i is out of range.
func (s Sequence[T]) Get(i int) (value T, ok bool) {
	i, ok = adjustIndex(s.Len(), i)
	if !ok {
		return value, false
	}
	return s.tree.get(i), true
}

// PushFront returns a new sequence with value prepended, amortized O(1).
func (s Sequence[T]) PushFront(value T) Sequence[T] {
	return Sequence[T]{tree: s.tree.pushFront(newLeaf(value))}
}

// PushBack returns a new sequence with value appended, amortized O(1).
func (s Sequence[T]) PushBack(value T) Sequence[T] {
	return Sequence[T]{tree: s.tree.pushBack(newLeaf(value))}
}

// ViewFront splits off the first element, ok is false on the empty
// sequence.
func (s Sequence[T]) ViewFront() (value T, rest Sequence[T], ok bool) {
	if s.tree == nil {
		return value, rest, false
	}
	head, tail := s.tree.viewFront()
	return head.value, Sequence[T]{tree: tail}, true
}

// ViewBack splits off the last element, ok is false on the empty
// sequence.
func (s Sequence[T]) ViewBack() (rest Sequence[T], value T, ok bool) {
	if s.tree == nil {
		return rest, value, false
	}
	init, last := s.tree.viewBack()
	return Sequence[T]{tree: init}, last.value, true
}

// Set returns a new sequence with position i replaced by value,
// negative indices permitted. ok is false when i is out of range.
func (s Sequence[T]) Set(i int, value T) (Sequence[T], bool) {
	i, ok := adjustIndex(s.Len(), i)
	if !ok {
		return s, false
	}
	return Sequence[T]{tree: s.tree.set(i, value)}, true
}

// IndexValue pairs a position with a replacement element for MSet.
type IndexValue[T any] struct {
	Index int
	Value T
}

// MSet replaces multiple positions at once, negative indices
// permitted. ok is false and the receiver is returned unchanged when
// any index is out of range.
func (s Sequence[T]) MSet(pairs ...IndexValue[T]) (Sequence[T], bool) {
	t := s.tree
	size := s.Len()
	for _, p := range pairs {
		i, ok := adjustIndex(size, p.Index)
		if !ok {
			return s, false
		}
		t = t.set(i, p.Value)
	}
	return Sequence[T]{tree: t}, true
}

// Insert returns a new sequence with value inserted before position i.
// Negative indices are permitted; out-of-range indices clip, so a very
// small i prepends and a very large i appends.
func (s Sequence[T]) Insert(i int, value T) Sequence[T] {
	if i < 0 {
		i += s.Len()
	}
	if i < 0 {
		return s.PushFront(value)
	}
	if i >= s.Len() {
		return s.PushBack(value)
	}
	return Sequence[T]{tree: s.tree.insert(i, value)}
}

// Delete returns a new sequence with position i removed, negative
// indices permitted. ok is false when i is out of range.
func (s Sequence[T]) Delete(i int) (Sequence[T], bool) {
	i, ok := adjustIndex(s.Len(), i)
	if !ok {
		return s, false
	}
	full, t := s.tree.erase(i)
	if !full {
		return Sequence[T]{}, true
	}
	return Sequence[T]{tree: t}, true
}

// Concat concatenates two sequences in O(log(min(n, k))).
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return Sequence[T]{tree: s.tree.append(other.tree)}
}

// ConcatSeq appends all elements of an iterator, O(log n + k).
func (s Sequence[T]) ConcatSeq(seq iter.Seq[T]) Sequence[T] {
	t := s.tree
	for v := range seq {
		t = t.pushBack(newLeaf(v))
	}
	return Sequence[T]{tree: t}
}

// Repeat returns the sequence repeated k times, built by squaring on
// Concat in O(log k) appends. k <= 0 yields the empty sequence.
func (s Sequence[T]) Repeat(k int) Sequence[T] {
	if k <= 0 || s.tree == nil {
		return Sequence[T]{}
	}
	var result *tree[T]
	t := s.tree
	for {
		if k&1 == 1 {
			result = t.append(result)
		}
		k >>= 1
		if k == 0 {
			break
		}
		t = t.append(t)
	}
	return Sequence[T]{tree: result}
}

// Reverse returns the reversed sequence, O(n).
func (s Sequence[T]) Reverse() Sequence[T] {
	return Sequence[T]{tree: s.tree.reverse()}
}

// Split divides the sequence at position i into the elements before i,
// the element at i and the elements after i. Negative indices
// permitted, ok is false when i is out of range.
func (s Sequence[T]) Split(i int) (left Sequence[T], value T, right Sequence[T], ok bool) {
	i, ok = adjustIndex(s.Len(), i)
	if !ok {
		return s, value, right, false
	}
	lt, n, rt := s.tree.split(i)
	return Sequence[T]{tree: lt}, n.value, Sequence[T]{tree: rt}, true
}

// SplitAt divides the sequence into prefix and suffix at position i.
// Equivalent to (TakeFront(i), DropFront(i)); out-of-range indices
// clip, negative indices count from the end.
func (s Sequence[T]) SplitAt(i int) (Sequence[T], Sequence[T]) {
	if i < 0 {
		i += s.Len()
	}
	switch {
	case i <= 0:
		return Sequence[T]{}, s
	case i >= s.Len():
		return s, Sequence[T]{}
	}
	lt, n, rt := s.tree.split(i)
	return Sequence[T]{tree: lt}, Sequence[T]{tree: rt.pushFront(n)}
}

// View splits the sequence around the given positions, which must
// normalize to strictly ascending indices. The result interleaves the
// k+1 segments between the positions with the k elements at them:
// segments[0], elems[0], segments[1], elems[1], ..., segments[k].
// Returns ErrOutOfRange for a bad or non-ascending index.
func (s Sequence[T]) View(indices ...int) (segments []Sequence[T], elems []T, err error) {
	size := s.Len()
	rest := s
	last := -1
	for _, raw := range indices {
		i, ok := adjustIndex(size, raw)
		if !ok || i <= last {
			return nil, nil, ErrOutOfRange
		}
		left, v, right, _ := rest.Split(i - last - 1)
		segments = append(segments, left)
		elems = append(elems, v)
		rest = right
		last = i
	}
	segments = append(segments, rest)
	return segments, elems, nil
}

// TakeFront returns the first k elements; k clips to [0, Len].
func (s Sequence[T]) TakeFront(k int) Sequence[T] {
	switch {
	case k <= 0:
		return Sequence[T]{}
	case k >= s.Len():
		return s
	}
	t, _ := s.tree.takeFront(k)
	return Sequence[T]{tree: t}
}

// TakeBack returns the last k elements; k clips to [0, Len].
func (s Sequence[T]) TakeBack(k int) Sequence[T] {
	switch {
	case k <= 0:
		return Sequence[T]{}
	case k >= s.Len():
		return s
	}
	_, t := s.tree.takeBack(k)
	return Sequence[T]{tree: t}
}

// DropFront returns the sequence without its first k elements.
func (s Sequence[T]) DropFront(k int) Sequence[T] {
	return s.TakeBack(s.Len() - min(s.Len(), max(k, 0)))
}

// DropBack returns the sequence without its last k elements.
func (s Sequence[T]) DropBack(k int) Sequence[T] {
	return s.TakeFront(s.Len() - min(s.Len(), max(k, 0)))
}

// Chunks splits the sequence into consecutive chunks of k elements,
// the last chunk may be shorter. k <= 0 yields nil.
func (s Sequence[T]) Chunks(k int) []Sequence[T] {
	if k <= 0 {
		return nil
	}
	var chunks []Sequence[T]
	rest := s
	for rest.Len() > k {
		left, v, right, _ := rest.Split(k - 1)
		chunks = append(chunks, left.PushBack(v))
		rest = right
	}
	if !rest.IsEmpty() {
		chunks = append(chunks, rest)
	}
	return chunks
}

// Contains reports whether value occurs in the sequence, using the
// [Equaler] contract, O(n).
func (s Sequence[T]) Contains(value T) bool {
	_, ok := s.IndexOf(value)
	return ok
}

// Count returns the number of occurrences of value, O(n).
func (s Sequence[T]) Count(value T) int {
	count := 0
	for v := range s.All() {
		if equal(v, value) {
			count++
		}
	}
	return count
}

// IndexOf returns the position of the first occurrence of value,
// ok is false when the value is absent.
func (s Sequence[T]) IndexOf(value T) (int, bool) {
	return s.IndexOfRange(value, 0, s.Len())
}

// IndexOfRange returns the position of the first occurrence of value
// within [start, stop). The bounds clip and may be negative, counting
// from the end; the returned position is relative to the whole
// sequence.
func (s Sequence[T]) IndexOfRange(value T, start, stop int) (int, bool) {
	size := s.Len()
	start = clipBound(size, start)
	stop = clipBound(size, stop)
	i := start
	for v := range s.DropFront(start).TakeFront(stop - start).All() {
		if equal(v, value) {
			return i, true
		}
		i++
	}
	return 0, false
}

// Remove deletes the first occurrence of value, returning
// ErrValueAbsent when the value does not occur.
func (s Sequence[T]) Remove(value T) (Sequence[T], error) {
	i, ok := s.IndexOf(value)
	if !ok {
		return s, ErrValueAbsent
	}
	rest, _ := s.Delete(i)
	return rest, nil
}

// ToSlice returns the elements as a fresh slice, O(n).
func (s Sequence[T]) ToSlice() []T {
	values := make([]T, 0, s.Len())
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// Map returns a new sequence with every element mapped through f.
// The tree shape is preserved exactly, so the result shares no work
// with but mirrors the structure of the input, O(n).
func Map[T, R any](s Sequence[T], f func(T) R) Sequence[R] {
	return Sequence[R]{tree: treeMap(s.tree, f)}
}
