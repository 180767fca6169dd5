// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import "math/rand/v2"

// randomSeq builds a sequence of n sequential elements through a
// random mix of the incremental and bulk constructors.
func randomSeq(prng *rand.Rand, n int) (Sequence[int], []int) {
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}

	switch prng.IntN(3) {
	case 0:
		return FromSlice(want), want
	case 1:
		s := New[int]()
		for _, v := range want {
			s = s.PushBack(v)
		}
		return s, want
	}
	s := New[int]()
	for i := n - 1; i >= 0; i-- {
		s = s.PushFront(want[i])
	}
	return s, want
}

// randomTree generates an arbitrary valid sequence directly as a tree,
// choosing branch shapes, digit arities and recursive middles at
// random. This reaches low-probability shapes the constructors never
// produce.
func randomTree(prng *rand.Rand) (Sequence[int], []int) {
	next := 0
	var elems []int

	var genNode func(depth int) *node[int]
	genNode = func(depth int) *node[int] {
		if depth == 0 {
			n := newLeaf(next)
			elems = append(elems, next)
			next++
			return n
		}
		if prng.IntN(2) == 0 {
			return newBranch2(genNode(depth-1), genNode(depth-1))
		}
		return newBranch3(genNode(depth-1), genNode(depth-1), genNode(depth-1))
	}

	genDigit := func(depth int) *digit[int] {
		order := 1 + prng.IntN(4)
		nodes := make([]*node[int], order)
		for j := range nodes {
			nodes[j] = genNode(depth)
		}
		return digitFromNodes(nodes...)
	}

	var genTree func(depth, budget int) *tree[int]
	genTree = func(depth, budget int) *tree[int] {
		choice := prng.IntN(10)
		switch {
		case choice == 0:
			return nil
		case choice <= 3 || budget == 0:
			return single(genNode(depth))
		}
		left := genDigit(depth)
		middle := genTree(depth+1, budget-1)
		right := genDigit(depth)
		return deepOf(left, middle, right)
	}

	// segments are generated strictly left digit, middle, right digit,
	// so the counter hands out elements in iteration order
	t := genTree(0, 3)
	return Sequence[int]{tree: t}, elems
}
