// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

// adjustIndex normalizes a possibly negative element index against
// length. ok is false when the index falls outside [-length, length).
func adjustIndex(length, i int) (int, bool) {
	if i < 0 {
		i += length
		if i < 0 {
			return 0, false
		}
		return i, true
	}
	if i >= length {
		return 0, false
	}
	return i, true
}

// clipBound normalizes a slice bound: negative bounds count from the
// end, everything clips into [0, length].
func clipBound(length, i int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
		return i
	}
	if i > length {
		return length
	}
	return i
}

// adjustSlice normalizes a (start, stop, step) triple against length
// into an ascending selection: the returned start is the lowest
// selected position, step is positive and count is the number of
// selected positions. For a negative input step the selection order
// was descending; callers that care reverse their result. A zero step
// is reported as ErrOutOfRange.
func adjustSlice(length, start, stop, step int) (first, count, stride int, err error) {
	if step == 0 {
		return 0, 0, 0, ErrOutOfRange
	}
	if start < 0 {
		start += length
		if start < 0 {
			if step < 0 {
				start = -1
			} else {
				start = 0
			}
		}
	} else if start >= length {
		if step < 0 {
			start = length - 1
		} else {
			start = length
		}
	}
	if stop < 0 {
		stop += length
		if stop < 0 {
			if step < 0 {
				stop = -1
			} else {
				stop = 0
			}
		}
	} else if stop >= length {
		if step < 0 {
			stop = length - 1
		} else {
			stop = length
		}
	}
	if step < 0 {
		if stop < start {
			count = (start-stop-1)/(-step) + 1
		}
		start += (count - 1) * step
		step = -step
	} else if start < stop {
		count = (stop-start-1)/step + 1
	}
	return start, count, step, nil
}

// Slice returns the subsequence [l, r), O(log n). The bounds
// clip and may be negative, counting from the end; an empty window
// yields the empty sequence, never an error.
func (s Sequence[T]) Slice(l, r int) Sequence[T] {
	size := s.Len()
	l = clipBound(size, l)
	r = clipBound(size, r)
	switch {
	case l >= r:
		return Sequence[T]{}
	case l == 0:
		return s.TakeFront(r)
	case r >= size:
		return s.DropFront(l)
	}
	return s.TakeFront(r).DropFront(l)
}

// SliceStep returns every step-th element of [l, r), with Go slice
// style clipping and negative bounds. A negative step selects in
// descending order with end-inclusive adjustment, mirroring Python
// slicing. A zero step returns ErrOutOfRange.
func (s Sequence[T]) SliceStep(l, r, step int) (Sequence[T], error) {
	first, count, stride, err := adjustSlice(s.Len(), l, r, step)
	if err != nil {
		return s, err
	}
	if count == 0 {
		return Sequence[T]{}, nil
	}
	if stride == 1 && step > 0 {
		return s.Slice(first, first+count), nil
	}
	it := s.Iter()
	it.Skip(first)
	next := func() T {
		v, _ := it.Next()
		it.Skip(stride - 1)
		return v
	}
	t := treeFrom(count, 0, next)
	if step < 0 {
		t = t.reverse()
	}
	return Sequence[T]{tree: t}, nil
}

// SetRange replaces the subsequence [l, r) with values, with the same
// clipping rules as Slice. The replacement may have any length.
func (s Sequence[T]) SetRange(l, r int, values Sequence[T]) Sequence[T] {
	size := s.Len()
	l = clipBound(size, l)
	r = clipBound(size, r)
	if r < l {
		r = l
	}
	return s.TakeFront(l).Concat(values).Concat(s.DropFront(r))
}

// SetRangeStep replaces every step-th element of [l, r) with the
// corresponding element of values. The number of values must equal the
// number of selected positions, otherwise ErrShapeMismatch is
// returned. A negative step assigns in descending position order, a
// zero step returns ErrOutOfRange.
func (s Sequence[T]) SetRangeStep(l, r, step int, values Sequence[T]) (Sequence[T], error) {
	first, count, stride, err := adjustSlice(s.Len(), l, r, step)
	if err != nil {
		return s, err
	}
	if values.Len() != count {
		return s, ErrShapeMismatch
	}
	if count == 0 {
		return s, nil
	}
	if step < 0 {
		// selection was descending, assign ascending against the
		// reversed replacements
		values = values.Reverse()
	}
	if stride == 1 {
		return s.SetRange(first, first+count, values), nil
	}
	keep, _, rest := s.tree.split(first)
	v, vrest, _ := values.ViewFront()
	keep = keep.pushBack(newLeaf(v))
	for range count - 1 {
		chunk, _, rest1 := rest.split(stride - 1)
		v, vrest, _ = vrest.ViewFront()
		keep = keep.append(chunk).pushBack(newLeaf(v))
		rest = rest1
	}
	return Sequence[T]{tree: keep.append(rest)}, nil
}

// DeleteRange removes the subsequence [l, r), with the same clipping
// rules as Slice, O(log n).
func (s Sequence[T]) DeleteRange(l, r int) Sequence[T] {
	size := s.Len()
	l = clipBound(size, l)
	r = clipBound(size, r)
	switch {
	case l >= r:
		return s
	case l == 0:
		return s.DropFront(r)
	case r >= size:
		return s.TakeFront(l)
	}
	return s.TakeFront(l).Concat(s.DropFront(r))
}

// DeleteRangeStep removes every step-th element of [l, r). A zero
// step returns ErrOutOfRange; the sign of step only changes which
// positions are selected, not the result order.
func (s Sequence[T]) DeleteRangeStep(l, r, step int) (Sequence[T], error) {
	first, count, stride, err := adjustSlice(s.Len(), l, r, step)
	if err != nil {
		return s, err
	}
	if count == 0 {
		return s, nil
	}
	if stride == 1 {
		return s.DeleteRange(first, first+count), nil
	}
	keep, _, rest := s.tree.split(first)
	for range count - 1 {
		chunk, _, rest1 := rest.split(stride - 1)
		keep = keep.append(chunk)
		rest = rest1
	}
	return Sequence[T]{tree: keep.append(rest)}, nil
}
