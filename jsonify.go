// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import "encoding/json"

// MarshalJSON implements the [json.Marshaler] interface. A sequence
// marshals as a flat array of its elements in order; the internal
// tree shape is not part of the representation.
func (s Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSlice())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface,
// rebuilding the sequence from a flat array with the balanced bulk
// constructor.
func (s *Sequence[T]) UnmarshalJSON(buf []byte) error {
	var values []T
	if err := json.Unmarshal(buf, &values); err != nil {
		return err
	}

	*s = FromSlice(values)
	return nil
}
