// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Sequence.Fprint].
func (s Sequence[T]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := s.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the elements in order as a flat listing, just a
// wrapper for [Sequence.Fprint]. If Fprint returns an error, String
// panics.
func (s Sequence[T]) String() string {
	w := new(strings.Builder)
	if err := s.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes the elements in order to w, formatted like
//
//	pseq([1, 2, 3])
//
// with the default format of the payload type. If w is nil, Fprint
// panics.
func (s Sequence[T]) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, "pseq(["); err != nil {
		return err
	}

	sep := ""
	for v := range s.All() {
		if _, err := fmt.Fprintf(w, "%s%v", sep, v); err != nil {
			return err
		}
		sep = ", "
	}

	if _, err := io.WriteString(w, "])"); err != nil {
		return err
	}
	return nil
}
