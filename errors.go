// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import "errors"

var (
	// ErrOutOfRange is returned for an index or slice parameter
	// outside the valid range where the operation requires an
	// element, and for a zero slice step.
	ErrOutOfRange = errors.New("index out of range")

	// ErrValueAbsent is returned when a value searched by equality
	// does not occur in the sequence.
	ErrValueAbsent = errors.New("value not in sequence")

	// ErrShapeMismatch is returned by stepped replacement when the
	// number of values does not equal the number of selected
	// positions.
	ErrShapeMismatch = errors.New("values do not match selected positions")
)
