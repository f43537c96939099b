// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func shrinkOf(t *testing.T, value any) []any {
	t.Helper()
	v, err := seededChecker().Env().Call("shrink", value)
	if err != nil {
		t.Fatalf("shrink(%v): %v", value, err)
	}
	out, _ := v.([]any)
	return out
}

func TestShrinkNumberHalvesTowardZero(t *testing.T) {
	got := shrinkOf(t, 8.0)
	want := []any{4.0, 2.0, 1.0, 0.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shrink(8) (-want +got):\n%s", diff)
	}

	if got := shrinkOf(t, 0.0); len(got) != 0 {
		t.Fatalf("shrink(0) = %v, want no candidates", got)
	}
}

func TestShrinkNegativeNumberOffersNegation(t *testing.T) {
	got := shrinkOf(t, -8.0)
	if len(got) == 0 || got[0] != 8.0 {
		t.Fatalf("shrink(-8) = %v, want the negation first", got)
	}
	if got[len(got)-1].(float64) != 0 {
		t.Fatalf("shrink(-8) = %v, want candidates ending at zero", got)
	}
}

func TestShrinkStringDropsTrailingHalves(t *testing.T) {
	got := shrinkOf(t, "abcdefgh")
	want := []any{"abcd", "ab", "a", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shrink(abcdefgh) (-want +got):\n%s", diff)
	}

	if got := shrinkOf(t, ""); len(got) != 0 {
		t.Fatalf("shrink(empty string) = %v, want no candidates", got)
	}
}

func TestShrinkSliceDropsTrailingHalves(t *testing.T) {
	got := shrinkOf(t, []any{1.0, 2.0, 3.0, 4.0})
	want := []any{
		[]any{1.0, 2.0},
		[]any{1.0},
		[]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shrink(slice) (-want +got):\n%s", diff)
	}
}

func TestShrinkBool(t *testing.T) {
	got := shrinkOf(t, true)
	if diff := cmp.Diff([]any{false}, got); diff != "" {
		t.Fatalf("shrink(true) (-want +got):\n%s", diff)
	}
	if got := shrinkOf(t, false); len(got) != 0 {
		t.Fatalf("shrink(false) = %v, want no candidates", got)
	}
}

func TestShrinkFallbackHasNoCandidates(t *testing.T) {
	if got := shrinkOf(t, map[string]any{"k": 1.0}); len(got) != 0 {
		t.Fatalf("shrink(map) = %v, want no candidates", got)
	}
}
