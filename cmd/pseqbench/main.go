// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command pseqbench exercises the pseq hot paths with a fixed random
// workload, intended for profiling with pprof.
package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/gaissmai/pseq"
)

var prng = rand.New(rand.NewPCG(42, 42))

func main() {
	seq := pseq.New[int]()
	for i := range 100_000 {
		if prng.IntN(2) == 1 {
			seq = seq.PushBack(i)
		} else {
			seq = seq.PushFront(i)
		}
	}

	probes := make([]int, 16)
	for i := range probes {
		probes[i] = prng.IntN(seq.Len())
	}

	sum := 0
	for i := range 10_000_000 {
		v, _ := seq.Get(probes[i&15])
		sum += v
	}

	for i := range 100_000 {
		left, right := seq.SplitAt(probes[i&15])
		seq = right.Concat(left)
	}

	fmt.Println(sum, seq.Len())
}
