// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pseq

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, want := range [][]int{nil, {1}, {1, 2, 3}, make([]int, 100)} {
		s := FromSlice(want)

		buf, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}

		var got Sequence[int]
		if err := json.Unmarshal(buf, &got); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}

		checkSeq(t, got, want)
	}
}

func TestJSONFlat(t *testing.T) {
	t.Parallel()

	buf, err := json.Marshal(From(1, 2, 3))
	if err != nil || string(buf) != "[1,2,3]" {
		t.Errorf("Marshal = %s, %v", buf, err)
	}

	var s Sequence[string]
	if err := json.Unmarshal([]byte(`["a","b"]`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !s.Equal(From("a", "b")) {
		t.Errorf("Unmarshal = %v", s)
	}
}
