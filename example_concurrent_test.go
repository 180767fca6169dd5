// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq_test

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gaissmai/pseq"
)

// SyncSequence demonstrates how to share a [pseq.Sequence] between
// concurrent readers and writers.
//
// Readers load the current version through an atomic pointer and are
// always lock-free; every version is immutable, so a loaded sequence
// stays consistent no matter what the writers do. Writers serialize
// among themselves with a mutex and publish new versions atomically.
// This pattern is useful when reads are frequent and writes are rare
// or slow in comparison.
type SyncSequence[T any] struct {
	// Atomic pointer to the current sequence version.
	// Enables lock-free, concurrent reads by multiple goroutines.
	atomicPtr atomic.Pointer[pseq.Sequence[T]]

	// Mutex for synchronizing concurrent writers.
	// Writers must acquire the lock before publishing a new version.
	mutex sync.Mutex
}

// NewSyncSequence creates and initializes a new SyncSequence.
func NewSyncSequence[T any]() *SyncSequence[T] {
	lf := new(SyncSequence[T])
	seq := pseq.New[T]()
	lf.atomicPtr.Store(&seq)
	return lf
}

// Get is a sync adapter for [pseq.Sequence.Get].
func (lf *SyncSequence[T]) Get(i int) (T, bool) {
	seq := lf.atomicPtr.Load() // lock-free read of the current version
	return seq.Get(i)
}

// Len is a sync adapter for [pseq.Sequence.Len].
func (lf *SyncSequence[T]) Len() int {
	return lf.atomicPtr.Load().Len()
}

// PushBack is a sync adapter for [pseq.Sequence.PushBack].
// It creates a new persistent version and atomically publishes it;
// concurrent readers keep seeing a consistent snapshot.
func (lf *SyncSequence[T]) PushBack(v T) {
	lf.mutex.Lock() // acquire writer lock to exclude other writers
	defer lf.mutex.Unlock()

	oldPtr := lf.atomicPtr.Load()
	newSeq := oldPtr.PushBack(v) // new persistent version

	lf.atomicPtr.Store(&newSeq) // atomically publish for readers
}

// Delete is a sync adapter for [pseq.Sequence.Delete].
func (lf *SyncSequence[T]) Delete(i int) bool {
	lf.mutex.Lock()
	defer lf.mutex.Unlock()

	oldPtr := lf.atomicPtr.Load()
	newSeq, ok := oldPtr.Delete(i)
	if !ok {
		return false
	}

	lf.atomicPtr.Store(&newSeq)
	return true
}

func ExampleSequence_concurrent() {
	shared := NewSyncSequence[int]()

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				shared.PushBack(w*100 + i)

				// concurrent lock-free reads of whatever
				// version is current
				shared.Get(i)
				shared.Len()
			}
		}()
	}
	wg.Wait()

	fmt.Println(shared.Len())

	// Output:
	// 400
}
