// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

// tree is a finger tree level. A nil *tree is the empty tree, a tree
// with root set holds a single node, otherwise it is deep: a left
// digit, a middle tree whose nodes are one level deeper, and a right
// digit. The total leaf count is cached in size.
type tree[T any] struct {
	size   int
	root   *node[T]
	left   *digit[T]
	middle *tree[T]
	right  *digit[T]
}

func single[T any](n *node[T]) *tree[T] {
	return &tree[T]{size: n.size, root: n}
}

// deep builds a deep tree with a precomputed size, middle may be nil.
func deep[T any](size int, left *digit[T], middle *tree[T], right *digit[T]) *tree[T] {
	return &tree[T]{size: size, left: left, middle: middle, right: right}
}

// deepOf builds a deep tree, summing the segment sizes.
func deepOf[T any](left *digit[T], middle *tree[T], right *digit[T]) *tree[T] {
	return &tree[T]{
		size:   left.size + middle.length() + right.size,
		left:   left,
		middle: middle,
		right:  right,
	}
}

func (t *tree[T]) length() int {
	if t == nil {
		return 0
	}
	return t.size
}

// treeFromDigit flattens a digit into a tree of the same depth.
func treeFromDigit[T any](d *digit[T]) *tree[T] {
	switch d.order {
	case 1:
		return single(d.items[0])
	case 2:
		return deep(d.size, digit1(d.items[0]), nil, digit1(d.items[1]))
	case 3:
		return deep(d.size, digit2(d.items[0], d.items[1]), nil, digit1(d.items[2]))
	case 4:
		return deep(d.size, digit2(d.items[0], d.items[1]), nil,
			digit2(d.items[2], d.items[3]))
	}
	panic("logic error, bad digit order")
}

// treeFromNodes builds a tree from 0-4 nodes of equal depth, used when
// split peels leading or trailing digit members off a deep tree.
func treeFromNodes[T any](nodes ...*node[T]) *tree[T] {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return single(nodes[0])
	case 2:
		return deepOf(digit1(nodes[0]), nil, digit1(nodes[1]))
	case 3:
		return deepOf(digit1(nodes[0]), nil, digit2(nodes[1], nodes[2]))
	case 4:
		return deepOf(digit2(nodes[0], nodes[1]), nil, digit2(nodes[2], nodes[3]))
	}
	panic("logic error, bad node count")
}

// treeFromMerge wraps a (merged, extra) pair into a tree.
func treeFromMerge[T any](merged, extra *node[T]) *tree[T] {
	if extra == nil {
		return single(merged)
	}
	return deep(merged.size+extra.size, digit1(merged), nil, digit1(extra))
}

// treeFrom consumes count*3^depth elements and builds a tree of
// count depth-deep nodes. Up to eight nodes are laid out directly,
// larger counts fill a 3-digit, recurse into the middle with 3-branch
// bundles and put the remainder into the right digit.
func treeFrom[T any](count, depth int, next func() T) *tree[T] {
	if count == 0 {
		return nil
	}
	if count <= 8 {
		var ns [8]*node[T]
		for j := range count {
			ns[j] = nodeFrom(depth, next)
		}
		switch count {
		case 1:
			return single(ns[0])
		case 2:
			return deepOf(digit1(ns[0]), nil, digit1(ns[1]))
		case 3:
			return deepOf(digit1(ns[0]), nil, digit2(ns[1], ns[2]))
		case 4:
			return deepOf(digit2(ns[0], ns[1]), nil, digit2(ns[2], ns[3]))
		case 5:
			return deepOf(digit2(ns[0], ns[1]), nil, digit3(ns[2], ns[3], ns[4]))
		case 6:
			return deepOf(digit3(ns[0], ns[1], ns[2]), nil, digit3(ns[3], ns[4], ns[5]))
		case 7:
			return deepOf(digit3(ns[0], ns[1], ns[2]), nil,
				digit4(ns[3], ns[4], ns[5], ns[6]))
		}
		return deepOf(digit4(ns[0], ns[1], ns[2], ns[3]), nil,
			digit4(ns[4], ns[5], ns[6], ns[7]))
	}
	left := digit3(nodeFrom(depth, next), nodeFrom(depth, next), nodeFrom(depth, next))
	middle := treeFrom((count+2)/3-2, depth+1, next)
	rem := count % 3
	if rem == 0 {
		rem = 3
	}
	var right *digit[T]
	switch rem {
	case 1:
		right = digit1(nodeFrom(depth, next))
	case 2:
		right = digit2(nodeFrom(depth, next), nodeFrom(depth, next))
	case 3:
		right = digit3(nodeFrom(depth, next), nodeFrom(depth, next), nodeFrom(depth, next))
	}
	return deepOf(left, middle, right)
}

// pushFront prepends a node. A full left digit overflows by bundling
// its three trailing members into a 3-branch pushed into the middle.
func (t *tree[T]) pushFront(x *node[T]) *tree[T] {
	switch {
	case t == nil:
		return single(x)
	case t.root != nil:
		return deep(t.size+x.size, digit1(x), nil, digit1(t.root))
	case t.left.order < 4:
		return deep(t.size+x.size, t.left.pushFront(x), t.middle, t.right)
	}
	items := t.left.items
	return deep(t.size+x.size,
		digit2(x, items[0]),
		t.middle.pushFront(newBranch(t.left.size-items[0].size,
			items[1], items[2], items[3])),
		t.right)
}

// pushBack is the mirror image of pushFront.
func (t *tree[T]) pushBack(x *node[T]) *tree[T] {
	switch {
	case t == nil:
		return single(x)
	case t.root != nil:
		return deep(t.size+x.size, digit1(t.root), nil, digit1(x))
	case t.right.order < 4:
		return deep(t.size+x.size, t.left, t.middle, t.right.pushBack(x))
	}
	items := t.right.items
	return deep(t.size+x.size,
		t.left,
		t.middle.pushBack(newBranch(t.right.size-items[3].size,
			items[0], items[1], items[2])),
		digit2(items[3], x))
}

// viewFront splits off the first node, the caller guards non-empty.
func (t *tree[T]) viewFront() (*node[T], *tree[T]) {
	switch {
	case t == nil:
		panic("logic error, view of empty tree")
	case t.root != nil:
		return t.root, nil
	case t.left.order == 1:
		return t.left.items[0], t.middle.pullLeft(t.right)
	}
	head, left := t.left.viewFront()
	return head, deep(t.size-head.size, left, t.middle, t.right)
}

// pullLeft rebuilds a deep tree that lost its left digit: the middle
// supplies a new one by unpacking its first branch, an empty middle
// flattens the remaining right digit.
func (t *tree[T]) pullLeft(right *digit[T]) *tree[T] {
	if t == nil {
		return treeFromDigit(right)
	}
	n, rest := t.viewFront()
	return deep(t.size+right.size, digitFromBranch(n), rest, right)
}

// viewBack splits off the last node, the caller guards non-empty.
func (t *tree[T]) viewBack() (*tree[T], *node[T]) {
	switch {
	case t == nil:
		panic("logic error, view of empty tree")
	case t.root != nil:
		return nil, t.root
	case t.right.order == 1:
		return t.middle.pullRight(t.left), t.right.items[0]
	}
	right, last := t.right.viewBack()
	return deep(t.size-last.size, t.left, t.middle, right), last
}

// pullRight is the mirror image of pullLeft.
func (t *tree[T]) pullRight(left *digit[T]) *tree[T] {
	if t == nil {
		return treeFromDigit(left)
	}
	rest, n := t.viewBack()
	return deep(t.size+left.size, left, rest, digitFromBranch(n))
}

// get returns the element at position i, 0 <= i < t.size.
func (t *tree[T]) get(i int) T {
	if t.root != nil {
		return t.root.get(i)
	}
	if checkIndex(&i, t.left.size) {
		return t.left.get(i)
	}
	if checkIndex(&i, t.middle.length()) {
		return t.middle.get(i)
	}
	return t.right.get(i)
}

// set replaces the element at position i.
func (t *tree[T]) set(i int, value T) *tree[T] {
	if t.root != nil {
		return single(t.root.set(i, value))
	}
	if checkIndex(&i, t.left.size) {
		return deep(t.size, t.left.set(i, value), t.middle, t.right)
	}
	if checkIndex(&i, t.middle.length()) {
		return deep(t.size, t.left, t.middle.set(i, value), t.right)
	}
	return deep(t.size, t.left, t.middle, t.right.set(i, value))
}

// append concatenates two trees of the same depth. The facing digits
// (2-8 nodes) are regrouped into 2-3 branches pushed onto the front of
// the joined middle, innermost last, so recursion only descends while
// both sides stay deep.
func (t *tree[T]) append(o *tree[T]) *tree[T] {
	switch {
	case t == nil:
		return o
	case t.root != nil:
		return o.pushFront(t.root)
	case o == nil:
		return t
	case o.root != nil:
		return t.pushBack(o.root)
	}
	var mid [8]*node[T]
	count := 0
	for j := range t.right.order {
		mid[count] = t.right.items[j]
		count++
	}
	for j := range o.left.order {
		mid[count] = o.left.items[j]
		count++
	}
	rtree := o.middle
	switch count {
	case 8:
		rtree = rtree.pushFront(newBranch3(mid[5], mid[6], mid[7]))
		fallthrough
	case 5:
		rtree = rtree.pushFront(newBranch3(mid[2], mid[3], mid[4]))
		fallthrough
	case 2:
		rtree = rtree.pushFront(newBranch2(mid[0], mid[1]))
	case 6:
		rtree = rtree.pushFront(newBranch3(mid[3], mid[4], mid[5]))
		fallthrough
	case 3:
		rtree = rtree.pushFront(newBranch3(mid[0], mid[1], mid[2]))
	case 7:
		rtree = rtree.pushFront(newBranch3(mid[4], mid[5], mid[6]))
		fallthrough
	case 4:
		rtree = rtree.pushFront(newBranch2(mid[2], mid[3]))
		rtree = rtree.pushFront(newBranch2(mid[0], mid[1]))
	default:
		panic("logic error, bad mid count")
	}
	return deep(t.size+o.size, t.left, t.middle.append(rtree), o.right)
}

// insert adds value before position i, 0 <= i < t.size.
func (t *tree[T]) insert(i int, value T) *tree[T] {
	if t == nil {
		panic("logic error, insert into empty tree")
	}
	if t.root != nil {
		n, extra := t.root.insert(i, value)
		if extra == nil {
			return single(n)
		}
		return deep(t.size+1, digit1(n), nil, digit1(extra))
	}
	if checkIndex(&i, t.left.size) {
		d, extra := t.left.insert(i, value, true)
		middle := t.middle
		if extra != nil {
			middle = middle.pushFront(extra)
		}
		return deep(t.size+1, d, middle, t.right)
	}
	if checkIndex(&i, t.middle.length()) {
		return deep(t.size+1, t.left, t.middle.insert(i, value), t.right)
	}
	d, extra := t.right.insert(i, value, false)
	middle := t.middle
	if extra != nil {
		middle = middle.pushBack(extra)
	}
	return deep(t.size+1, t.left, middle, d)
}

// erase removes the element at position i. The bool mirrors the node
// erase contract: false means the tree collapsed below the minimum
// shape, which at the outermost level only happens when the last
// element of a single-leaf tree is removed.
func (t *tree[T]) erase(i int) (bool, *tree[T]) {
	if t == nil {
		panic("logic error, erase from empty tree")
	}
	if t.root != nil {
		full, n := t.root.erase(i)
		if n == nil {
			return false, nil
		}
		return full, single(n)
	}
	if checkIndex(&i, t.left.size) {
		d, bare := t.left.erase(i)
		if d != nil {
			return true, deep(t.size-1, d, t.middle, t.right)
		}
		// left digit collapsed to a bare node (or vanished)
		if t.middle != nil {
			head, tail := t.middle.viewFront()
			return true, deep(t.size-1, digitMergeLeft(bare, head), tail, t.right)
		}
		merged, extra := mergeLeft(bare, t.right.items[0])
		if t.right.order == 1 {
			return true, treeFromMerge(merged, extra)
		}
		_, rrest := t.right.viewFront()
		return true, deep(t.size-1, digitFromMerge(merged, extra), nil, rrest)
	}
	if checkIndex(&i, t.middle.length()) {
		full, mid := t.middle.erase(i)
		if full {
			return true, deep(t.size-1, t.left, mid, t.right)
		}
		// middle collapsed to a single orphan node one depth down
		orphan := mid.root
		if t.left.order == 4 {
			return true, deep(t.size-1,
				digit2(t.left.items[0], t.left.items[1]),
				single(newBranch3(t.left.items[2], t.left.items[3], orphan)),
				t.right)
		}
		nodes := make([]*node[T], 0, 4)
		nodes = append(nodes, t.left.items[:t.left.order]...)
		nodes = append(nodes, orphan)
		return true, deep(t.size-1, digitFromNodes(nodes...), nil, t.right)
	}
	d, bare := t.right.erase(i)
	if d != nil {
		return true, deep(t.size-1, t.left, t.middle, d)
	}
	if t.middle != nil {
		init, last := t.middle.viewBack()
		return true, deep(t.size-1, t.left, init, digitMergeRight(last, bare))
	}
	merged, extra := mergeRight(t.left.back(), bare)
	if t.left.order == 1 {
		return true, treeFromMerge(merged, extra)
	}
	lrest, _ := t.left.viewBack()
	return true, deep(t.size-1, lrest, nil, digitFromMerge(merged, extra))
}

// split divides the tree at position i into the part before, the node
// covering i and the part after. At the outermost level the covering
// node is the leaf at position i; at deeper recursion levels it is a
// branch the caller decomposes further.
func (t *tree[T]) split(i int) (*tree[T], *node[T], *tree[T]) {
	if t == nil {
		panic("logic error, split of empty tree")
	}
	if t.root != nil {
		return nil, t.root, nil
	}
	if checkIndex(&i, t.left.size) {
		j := 0
		for !checkIndex(&i, t.left.items[j].size) {
			j++
		}
		var right *tree[T]
		if j+1 == t.left.order {
			right = t.middle.pullLeft(t.right)
		} else {
			right = deepOf(digitFromNodes(t.left.items[j+1:t.left.order]...),
				t.middle, t.right)
		}
		return treeFromNodes(t.left.items[:j]...), t.left.items[j], right
	}
	if checkIndex(&i, t.middle.length()) {
		ltree, n, rtree := t.middle.split(i)
		items := n.items
		i -= ltree.length()
		if checkIndex(&i, items[0].size) {
			var right *tree[T]
			if items[2] == nil {
				right = deepOf(digit1(items[1]), rtree, t.right)
			} else {
				right = deepOf(digit2(items[1], items[2]), rtree, t.right)
			}
			return ltree.pullRight(t.left), items[0], right
		}
		if checkIndex(&i, items[1].size) {
			left := deepOf(t.left, ltree, digit1(items[0]))
			var right *tree[T]
			if items[2] == nil {
				right = rtree.pullLeft(t.right)
			} else {
				right = deepOf(digit1(items[2]), rtree, t.right)
			}
			return left, items[1], right
		}
		return deepOf(t.left, ltree, digit2(items[0], items[1])),
			items[2], rtree.pullLeft(t.right)
	}
	j := 0
	for !checkIndex(&i, t.right.items[j].size) {
		j++
	}
	var left *tree[T]
	if j == 0 {
		left = t.middle.pullRight(t.left)
	} else {
		left = deepOf(t.left, t.middle, digitFromNodes(t.right.items[:j]...))
	}
	return left, t.right.items[j], treeFromNodes(t.right.items[j+1:t.right.order]...)
}

// takeFront returns the tree of the first i elements and the node
// covering position i, never materializing the suffix.
func (t *tree[T]) takeFront(i int) (*tree[T], *node[T]) {
	if t == nil {
		panic("logic error, take from empty tree")
	}
	if t.root != nil {
		return nil, t.root
	}
	if checkIndex(&i, t.left.size) {
		j := 0
		for !checkIndex(&i, t.left.items[j].size) {
			j++
		}
		return treeFromNodes(t.left.items[:j]...), t.left.items[j]
	}
	if checkIndex(&i, t.middle.length()) {
		tr, n := t.middle.takeFront(i)
		i -= tr.length()
		if checkIndex(&i, n.items[0].size) {
			return tr.pullRight(t.left), n.items[0]
		}
		if checkIndex(&i, n.items[1].size) {
			return deepOf(t.left, tr, digit1(n.items[0])), n.items[1]
		}
		return deepOf(t.left, tr, digit2(n.items[0], n.items[1])), n.items[2]
	}
	j := 0
	for !checkIndex(&i, t.right.items[j].size) {
		j++
	}
	if j == 0 {
		return t.middle.pullRight(t.left), t.right.items[0]
	}
	return deepOf(t.left, t.middle, digitFromNodes(t.right.items[:j]...)),
		t.right.items[j]
}

// takeBack returns the node covering the element just before the last
// i elements and the tree of those i elements, i counted from the
// right end.
func (t *tree[T]) takeBack(i int) (*node[T], *tree[T]) {
	if t == nil {
		panic("logic error, take from empty tree")
	}
	if t.root != nil {
		return t.root, nil
	}
	if checkIndex(&i, t.right.size) {
		j := t.right.order - 1
		for !checkIndex(&i, t.right.items[j].size) {
			j--
		}
		return t.right.items[j],
			treeFromNodes(t.right.items[j+1 : t.right.order]...)
	}
	if checkIndex(&i, t.middle.length()) {
		n, tr := t.middle.takeBack(i)
		i -= tr.length()
		if n.items[2] != nil && checkIndex(&i, n.items[2].size) {
			return n.items[2], tr.pullLeft(t.right)
		}
		if checkIndex(&i, n.items[1].size) {
			if n.items[2] == nil {
				return n.items[1], tr.pullLeft(t.right)
			}
			return n.items[1], deepOf(digit1(n.items[2]), tr, t.right)
		}
		if n.items[2] == nil {
			return n.items[0], deepOf(digit1(n.items[1]), tr, t.right)
		}
		return n.items[0], deepOf(digit2(n.items[1], n.items[2]), tr, t.right)
	}
	j := t.left.order - 1
	for !checkIndex(&i, t.left.items[j].size) {
		j--
	}
	if j+1 == t.left.order {
		return t.left.items[j], t.middle.pullLeft(t.right)
	}
	return t.left.items[j],
		deepOf(digitFromNodes(t.left.items[j+1:t.left.order]...), t.middle, t.right)
}

// reverse mirrors every level, swapping the digits.
func (t *tree[T]) reverse() *tree[T] {
	switch {
	case t == nil:
		return nil
	case t.root != nil:
		return single(t.root.reverse())
	}
	return deep(t.size, t.right.reverse(), t.middle.reverse(), t.left.reverse())
}

// treeMap maps every leaf through f, preserving the shape exactly.
func treeMap[T, R any](t *tree[T], f func(T) R) *tree[R] {
	switch {
	case t == nil:
		return nil
	case t.root != nil:
		return single(nodeMap(t.root, f))
	}
	return deep(t.size, digitMap(t.left, f), treeMap(t.middle, f),
		digitMap(t.right, f))
}

// allRec yields all elements in order, respects early exit.
func (t *tree[T]) allRec(yield func(T) bool) bool {
	switch {
	case t == nil:
		return true
	case t.root != nil:
		return t.root.allRec(yield)
	}
	return t.left.allRec(yield) && t.middle.allRec(yield) && t.right.allRec(yield)
}

// backwardRec yields all elements in reverse order.
func (t *tree[T]) backwardRec(yield func(T) bool) bool {
	switch {
	case t == nil:
		return true
	case t.root != nil:
		return t.root.backwardRec(yield)
	}
	return t.right.backwardRec(yield) && t.middle.backwardRec(yield) &&
		t.left.backwardRec(yield)
}
