// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package pseq provides a persistent (immutable, structurally shared)
// indexed sequence built on 2-3 finger trees.
//
// A [Sequence] behaves like an immutable slice with cheap updates:
//
//   - push or pop at either end: amortized O(1)
//   - random access, insert, delete: O(log n)
//   - concatenation and splitting: O(log n)
//   - repeating k times: O(log k * log n)
//
// Every operation returns a new Sequence and leaves the receiver
// untouched; unchanged subtrees are shared between versions. Because
// shared parts are never mutated, any number of goroutines may read
// any number of sequences concurrently without locking.
//
// The implementation follows Hinze and Paterson,
// "Finger trees: a simple general-purpose data structure",
// Journal of Functional Programming 16:2 (2006).
package pseq
