// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

// node is the building block of the finger tree. A node is either a
// leaf carrying one element (items[0] == nil) or a 2-3 branch whose
// children all have the same depth (items[2] == nil for a 2-branch).
// The leaf count of the subtree is cached in size.
type node[T any] struct {
	size  int
	value T
	items [3]*node[T]
}

func newLeaf[T any](value T) *node[T] {
	return &node[T]{size: 1, value: value}
}

// newBranch builds a branch with a precomputed size, n2 may be nil.
func newBranch[T any](size int, n0, n1, n2 *node[T]) *node[T] {
	return &node[T]{size: size, items: [3]*node[T]{n0, n1, n2}}
}

func newBranch2[T any](n0, n1 *node[T]) *node[T] {
	return &node[T]{size: n0.size + n1.size, items: [3]*node[T]{n0, n1, nil}}
}

func newBranch3[T any](n0, n1, n2 *node[T]) *node[T] {
	return &node[T]{size: n0.size + n1.size + n2.size, items: [3]*node[T]{n0, n1, n2}}
}

func (n *node[T]) isLeaf() bool {
	return n.items[0] == nil
}

// depth is 0 for a leaf and one more than the children's depth for a
// branch, computed by walking down the first child in O(depth). Only
// used in tests, the operations themselves keep the depth relation
// implicit in the recursion.
func (n *node[T]) depth() int {
	if n.isLeaf() {
		return 0
	}
	return n.items[0].depth() + 1
}

// checkIndex reports whether *i falls into the next size positions and
// otherwise skips them by decrementing *i. The little helper keeps all
// the prefix-sum scans over children, digit members and tree segments
// in one shape.
func checkIndex(i *int, size int) bool {
	if *i < size {
		return true
	}
	*i -= size
	return false
}

// get returns the element at position i, 0 <= i < n.size.
func (n *node[T]) get(i int) T {
	if n.isLeaf() {
		return n.value
	}
	if checkIndex(&i, n.items[0].size) {
		return n.items[0].get(i)
	}
	if checkIndex(&i, n.items[1].size) {
		return n.items[1].get(i)
	}
	return n.items[2].get(i)
}

// set replaces the element at position i, copying the path from this
// node down to the leaf.
func (n *node[T]) set(i int, value T) *node[T] {
	if n.isLeaf() {
		return newLeaf(value)
	}
	if checkIndex(&i, n.items[0].size) {
		return newBranch(n.size, n.items[0].set(i, value), n.items[1], n.items[2])
	}
	if checkIndex(&i, n.items[1].size) {
		return newBranch(n.size, n.items[0], n.items[1].set(i, value), n.items[2])
	}
	return newBranch(n.size, n.items[0], n.items[1], n.items[2].set(i, value))
}

// insert adds value before position i and returns the rebuilt node
// plus an extra same-depth sibling if the node had to split. A leaf
// always splits; a branch absorbs a split child by growing from
// 2-branch to 3-branch and splits into two 2-branches otherwise.
func (n *node[T]) insert(i int, value T) (*node[T], *node[T]) {
	if n.isLeaf() {
		return newLeaf(value), n
	}
	if checkIndex(&i, n.items[0].size) {
		kid, extra := n.items[0].insert(i, value)
		if extra == nil {
			return newBranch(n.size+1, kid, n.items[1], n.items[2]), nil
		}
		if n.items[2] == nil {
			return newBranch(n.size+1, kid, extra, n.items[1]), nil
		}
		return newBranch(n.items[0].size+1, kid, extra, nil),
			newBranch2(n.items[1], n.items[2])
	}
	if checkIndex(&i, n.items[1].size) {
		kid, extra := n.items[1].insert(i, value)
		if extra == nil {
			return newBranch(n.size+1, n.items[0], kid, n.items[2]), nil
		}
		if n.items[2] == nil {
			return newBranch(n.size+1, n.items[0], kid, extra), nil
		}
		return newBranch2(n.items[0], kid),
			newBranch2(extra, n.items[2])
	}
	kid, extra := n.items[2].insert(i, value)
	if extra == nil {
		return newBranch(n.size+1, n.items[0], n.items[1], kid), nil
	}
	return newBranch2(n.items[0], n.items[1]),
		newBranch2(kid, extra)
}

// mergeLeft prepends a node of one lower depth into the children of n.
// Overflow to 4 children regroups into two branches. A nil left is a
// no-op, the pair contract is (merged, extra) with extra == nil when
// no overflow happened.
func mergeLeft[T any](left, n *node[T]) (*node[T], *node[T]) {
	if left == nil {
		return n, nil
	}
	if n.items[2] == nil {
		return newBranch(left.size+n.size, left, n.items[0], n.items[1]), nil
	}
	return newBranch2(left, n.items[0]),
		newBranch2(n.items[1], n.items[2])
}

// mergeRight is the mirror image of mergeLeft.
func mergeRight[T any](n, right *node[T]) (*node[T], *node[T]) {
	if right == nil {
		return n, nil
	}
	if n.items[2] == nil {
		return newBranch(right.size+n.size, n.items[0], n.items[1], right), nil
	}
	return newBranch2(n.items[0], n.items[1]),
		newBranch2(n.items[2], right)
}

// meldLeft combines a merge result with an optional left sibling at
// the same depth. The bool follows the erase contract: true means the
// result is a proper branch, false means a bare node that must be
// absorbed one level further up.
func meldLeft[T any](sib, merged, extra *node[T]) (bool, *node[T]) {
	if extra != nil {
		if sib == nil {
			return true, newBranch2(merged, extra)
		}
		return true, newBranch3(sib, merged, extra)
	}
	if sib == nil {
		return false, merged
	}
	return true, newBranch2(sib, merged)
}

// meldRight is the mirror image of meldLeft.
func meldRight[T any](merged, extra, sib *node[T]) (bool, *node[T]) {
	if extra != nil {
		if sib == nil {
			return true, newBranch2(merged, extra)
		}
		return true, newBranch3(merged, extra, sib)
	}
	if sib == nil {
		return false, merged
	}
	return true, newBranch2(merged, sib)
}

// erase removes the element at position i. The bool reports whether
// the result still is a full branch; false comes with a node of one
// lower depth (or nil for a consumed leaf) that the caller has to
// merge with a sibling.
func (n *node[T]) erase(i int) (bool, *node[T]) {
	if n.isLeaf() {
		return false, nil
	}
	if checkIndex(&i, n.items[0].size) {
		full, kid := n.items[0].erase(i)
		if full {
			return true, newBranch(n.size-1, kid, n.items[1], n.items[2])
		}
		merged, extra := mergeLeft(kid, n.items[1])
		return meldRight(merged, extra, n.items[2])
	}
	if checkIndex(&i, n.items[1].size) {
		full, kid := n.items[1].erase(i)
		if full {
			return true, newBranch(n.size-1, n.items[0], kid, n.items[2])
		}
		merged, extra := mergeRight(n.items[0], kid)
		return meldRight(merged, extra, n.items[2])
	}
	full, kid := n.items[2].erase(i)
	if full {
		return true, newBranch(n.size-1, n.items[0], n.items[1], kid)
	}
	merged, extra := mergeRight(n.items[1], kid)
	return meldLeft(n.items[0], merged, extra)
}

// reverse mirrors the child order on every level.
func (n *node[T]) reverse() *node[T] {
	if n.isLeaf() {
		return n
	}
	if n.items[2] != nil {
		return newBranch(n.size,
			n.items[2].reverse(), n.items[1].reverse(), n.items[0].reverse())
	}
	return newBranch(n.size,
		n.items[1].reverse(), n.items[0].reverse(), nil)
}

// nodeFrom consumes 3^depth successive elements and builds a perfect
// branch tree, the workhorse of the sized bulk constructors.
func nodeFrom[T any](depth int, next func() T) *node[T] {
	if depth == 0 {
		return newLeaf(next())
	}
	x := nodeFrom(depth-1, next)
	y := nodeFrom(depth-1, next)
	z := nodeFrom(depth-1, next)
	return newBranch(3*x.size, x, y, z)
}

// nodeMap maps every leaf through f, preserving the shape exactly.
func nodeMap[T, R any](n *node[T], f func(T) R) *node[R] {
	if n.isLeaf() {
		return newLeaf(f(n.value))
	}
	var n2 *node[R]
	if n.items[2] != nil {
		n2 = nodeMap(n.items[2], f)
	}
	return newBranch(n.size, nodeMap(n.items[0], f), nodeMap(n.items[1], f), n2)
}

// allRec yields all elements under n in order, respects early exit.
func (n *node[T]) allRec(yield func(T) bool) bool {
	if n.isLeaf() {
		return yield(n.value)
	}
	if !n.items[0].allRec(yield) || !n.items[1].allRec(yield) {
		return false
	}
	return n.items[2] == nil || n.items[2].allRec(yield)
}

// backwardRec yields all elements under n in reverse order.
func (n *node[T]) backwardRec(yield func(T) bool) bool {
	if n.isLeaf() {
		return yield(n.value)
	}
	if n.items[2] != nil && !n.items[2].backwardRec(yield) {
		return false
	}
	return n.items[1].backwardRec(yield) && n.items[0].backwardRec(yield)
}
