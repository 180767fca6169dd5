// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/pseq/internal/golden"
)

func TestSliceVsGold(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))

	for _, n := range []int{0, 1, 2, 5, 13, 64, 257} {
		s, want := randomSeq(prng, n)
		gold := golden.From(want...)

		bounds := []int{-n - 2, -n, -1, 0, 1, n / 3, n / 2, n - 1, n, n + 2}
		for _, l := range bounds {
			for _, r := range bounds {
				checkSeq(t, s.Slice(l, r), gold.Slice(l, r))
				checkSeq(t, s.DeleteRange(l, r), gold.DeleteRange(l, r))

				values, _ := randomSeq(prng, 3)
				checkSeq(t, s.SetRange(l, r, values),
					gold.SetRange(l, r, golden.From(values.ToSlice()...)))
			}
		}
	}
}

func TestSliceStepVsGold(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))

	for _, n := range []int{0, 1, 2, 7, 30, 121} {
		s, want := randomSeq(prng, n)
		gold := golden.From(want...)

		bounds := []int{-n - 2, -n, -1, 0, 1, n / 2, n - 1, n, n + 2}
		steps := []int{-3, -2, -1, 1, 2, 3, n + 1}

		for _, l := range bounds {
			for _, r := range bounds {
				for _, step := range steps {
					got, err := s.SliceStep(l, r, step)
					if err != nil {
						t.Fatalf("SliceStep(%d, %d, %d) err = %v", l, r, step, err)
					}
					checkSeq(t, got, gold.SliceStep(l, r, step))

					del, err := s.DeleteRangeStep(l, r, step)
					if err != nil {
						t.Fatalf("DeleteRangeStep(%d, %d, %d) err = %v", l, r, step, err)
					}
					checkSeq(t, del, gold.DeleteRangeStep(l, r, step))
				}
			}
		}
	}
}

func TestSetRangeStepVsGold(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))

	for _, n := range []int{0, 1, 2, 7, 30, 121} {
		s, want := randomSeq(prng, n)
		gold := golden.From(want...)

		bounds := []int{-n - 2, -1, 0, 1, n / 2, n - 1, n}
		steps := []int{-2, -1, 1, 2, 5}

		for _, l := range bounds {
			for _, r := range bounds {
				for _, step := range steps {
					count := len(gold.StepIndices(l, r, step))

					values := make([]int, count)
					for i := range values {
						values[i] = -1 - i
					}

					got, err := s.SetRangeStep(l, r, step, FromSlice(values))
					if err != nil {
						t.Fatalf("SetRangeStep(%d, %d, %d) err = %v", l, r, step, err)
					}
					goldGot, ok := gold.SetRangeStep(l, r, step, values)
					if !ok {
						t.Fatalf("gold SetRangeStep(%d, %d, %d) rejected", l, r, step)
					}
					checkSeq(t, got, goldGot)

					// wrong number of replacements
					if _, err := s.SetRangeStep(l, r, step,
						FromSlice(append(values, 0))); !errors.Is(err, ErrShapeMismatch) {
						t.Fatalf("SetRangeStep(%d, %d, %d) extra value err = %v",
							l, r, step, err)
					}
				}
			}
		}
	}
}

func TestZeroStep(t *testing.T) {
	t.Parallel()

	s := From(1, 2, 3)

	if _, err := s.SliceStep(0, 3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SliceStep step 0 err = %v", err)
	}
	if _, err := s.DeleteRangeStep(0, 3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DeleteRangeStep step 0 err = %v", err)
	}
	if _, err := s.SetRangeStep(0, 3, 0, New[int]()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetRangeStep step 0 err = %v", err)
	}
}

func TestNegativeStepOrder(t *testing.T) {
	t.Parallel()

	s := From(1, 2, 3, 4, 5)

	// descending selection yields descending elements
	got, err := s.SliceStep(4, -6, -1)
	if err != nil || !got.Equal(From(5, 4, 3, 2, 1)) {
		t.Errorf("SliceStep(4, -6, -1) = %v, %v", got, err)
	}

	got, err = s.SliceStep(4, -6, -2)
	if err != nil || !got.Equal(From(5, 3, 1)) {
		t.Errorf("SliceStep(4, -6, -2) = %v, %v", got, err)
	}

	// descending assignment consumes values in selection order
	got, err = s.SetRangeStep(4, -6, -2, From(-1, -2, -3))
	if err != nil || !got.Equal(From(-3, 2, -2, 4, -1)) {
		t.Errorf("SetRangeStep(4, -6, -2) = %v, %v", got, err)
	}
}
