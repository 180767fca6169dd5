// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq_test

import (
	"fmt"

	"github.com/gaissmai/pseq"
)

func ExampleFrom() {
	seq1 := pseq.From(1, 2, 3)
	seq2 := seq1.PushBack(4)
	seq3 := seq1.Concat(seq2)

	fmt.Println(seq1)
	fmt.Println(seq2)
	fmt.Println(seq3)

	// Output:
	// pseq([1, 2, 3])
	// pseq([1, 2, 3, 4])
	// pseq([1, 2, 3, 1, 2, 3, 4])
}

func ExampleSequence_Split() {
	left, v, right, ok := pseq.From(1, 2, 3, 4).Split(2)

	fmt.Println(left, v, right, ok)
	fmt.Println(left.PushBack(v).Concat(right))

	// Output:
	// pseq([1, 2]) 3 pseq([4]) true
	// pseq([1, 2, 3, 4])
}

func ExampleSequence_Slice() {
	seq := pseq.From(1, 2, 3, 4, 5)

	fmt.Println(seq.Slice(1, 4))
	fmt.Println(seq.Slice(-4, -1))

	stepped, _ := seq.SliceStep(1, 5, 2)
	fmt.Println(stepped)

	// Output:
	// pseq([2, 3, 4])
	// pseq([2, 3, 4])
	// pseq([2, 4])
}

func ExampleSequence_Chunks() {
	for _, chunk := range pseq.From(1, 2, 3, 4, 5, 6, 7, 8).Chunks(3) {
		fmt.Println(chunk)
	}

	// Output:
	// pseq([1, 2, 3])
	// pseq([4, 5, 6])
	// pseq([7, 8])
}

func ExampleSequence_All() {
	seq := pseq.From("a", "b", "c")

	for v := range seq.All() {
		fmt.Println(v)
	}
	for v := range seq.Backward() {
		fmt.Println(v)
	}

	// Output:
	// a
	// b
	// c
	// c
	// b
	// a
}

func ExampleSequence_persistence() {
	base := pseq.From(1, 2, 3, 4, 5)

	// every update returns a new value, the base is never modified
	updated, _ := base.Set(1, 22)
	extended := updated.PushBack(6)

	fmt.Println(base)
	fmt.Println(updated)
	fmt.Println(extended)

	// Output:
	// pseq([1, 2, 3, 4, 5])
	// pseq([1, 22, 3, 4, 5])
	// pseq([1, 22, 3, 4, 5, 6])
}
