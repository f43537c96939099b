// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/adhoc"
)

func TestObjectLensRoundTrip(t *testing.T) {
	l := adhoc.ObjectLens("k")
	o := map[string]any{"k": 1.0, "other": "kept"}

	// Get-then-set is identity.
	store := l.Run(o)
	back := store.Set(store.Get())
	if diff := cmp.Diff(o, back); diff != "" {
		t.Fatalf("set(get) round trip (-want +got):\n%s", diff)
	}

	// Set-then-get returns what was set.
	updated := l.Run(o).Set(9.0)
	if got := l.Run(updated).Get(); got != 9.0 {
		t.Fatalf("get(set(9)) = %v, want 9", got)
	}
}

func TestObjectLensStructuralSharing(t *testing.T) {
	l := adhoc.ObjectLens("k")
	o := map[string]any{"k": 1.0, "other": "kept"}

	updated := l.Run(o).Set(2.0).(map[string]any)
	if o["k"] != 1.0 {
		t.Fatal("setter mutated the original map")
	}
	if updated["k"] != 2.0 || updated["other"] != "kept" {
		t.Fatalf("updated = %v, want k rebound and other keys kept", updated)
	}
}

// TestLensComposeDirection: receiver.Compose(inner) drills from inner's
// target further into the receiver's target.
func TestLensComposeDirection(t *testing.T) {
	o := map[string]any{
		"outer": map[string]any{"inner": 1.0, "sibling": true},
		"top":   "kept",
	}
	deep := adhoc.ObjectLens("inner").Compose(adhoc.ObjectLens("outer"))

	if got := deep.Run(o).Get(); got != 1.0 {
		t.Fatalf("composed get = %v, want 1", got)
	}

	updated := deep.Run(o).Set(5.0).(map[string]any)
	want := map[string]any{
		"outer": map[string]any{"inner": 5.0, "sibling": true},
		"top":   "kept",
	}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("composed set (-want +got):\n%s", diff)
	}
	if o["outer"].(map[string]any)["inner"] != 1.0 {
		t.Fatal("composed setter mutated the original")
	}
}

func TestLensComposeAssociativity(t *testing.T) {
	o := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": 1.0}},
	}
	a, b, c := adhoc.ObjectLens("a"), adhoc.ObjectLens("b"), adhoc.ObjectLens("c")

	leftAssoc := c.Compose(b).Compose(a)
	rightAssoc := c.Compose(b.Compose(a))

	if lv, rv := leftAssoc.Run(o).Get(), rightAssoc.Run(o).Get(); lv != rv || lv != 1.0 {
		t.Fatalf("gets disagree: %v vs %v, want 1", lv, rv)
	}
	ls := leftAssoc.Run(o).Set(2.0)
	rs := rightAssoc.Run(o).Set(2.0)
	if diff := cmp.Diff(ls, rs); diff != "" {
		t.Fatalf("sets disagree (-left +right):\n%s", diff)
	}
}

func TestStoreMap(t *testing.T) {
	s := adhoc.NewStore(func(part any) any {
		return map[string]any{"k": part}
	}, 1.0)

	mapped := s.Map(func(whole any) any {
		m := whole.(map[string]any)
		m["stamped"] = true
		return m
	})

	if mapped.Get() != 1.0 {
		t.Fatalf("Map changed the focus: %v", mapped.Get())
	}
	got := mapped.Set(3.0).(map[string]any)
	if got["k"] != 3.0 || got["stamped"] != true {
		t.Fatalf("post-composed setter = %v, want k=3 and stamped", got)
	}
}
