// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/adhoc"
)

func TestRecordConstruction(t *testing.T) {
	point := adhoc.NewRecord("Point", "x", "y")
	p := point.New(1.0, 2.0)

	if x, ok := p.Get("x"); !ok || x != 1.0 {
		t.Fatalf("x = %v (%v), want 1", x, ok)
	}
	if y, ok := p.Get("y"); !ok || y != 2.0 {
		t.Fatalf("y = %v (%v), want 2", y, ok)
	}
	if _, ok := p.Get("z"); ok {
		t.Fatal("unknown field resolved")
	}
	if diff := cmp.Diff([]any{1.0, 2.0}, p.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordArityMismatch(t *testing.T) {
	point := adhoc.NewRecord("Point", "x", "y")

	rec := catchPanic(func() { point.New(1.0) })
	arity, ok := rec.(*adhoc.ArityMismatchError)
	if !ok {
		t.Fatalf("recovered %v, want *ArityMismatchError", rec)
	}
	if arity.Record != "Point" || arity.Want != 2 || arity.Got != 1 {
		t.Fatalf("error carries (%s, %d, %d), want (Point, 2, 1)", arity.Record, arity.Want, arity.Got)
	}

	if rec := catchPanic(func() { point.New(1.0, 2.0, 3.0) }); rec == nil {
		t.Fatal("too many field values did not panic")
	}
}

func TestSumCata(t *testing.T) {
	tree := adhoc.NewSum("Tree", map[string][]string{
		"Leaf": {"value"},
		"Node": {"left", "right"},
	})

	leaf := tree.New("Leaf", 7.0)
	got := leaf.Cata(adhoc.CataTable{
		"Leaf": func(args ...any) any { return args[0] },
		"Node": func(args ...any) any { return "node" },
	})
	if got != 7.0 {
		t.Fatalf("cata(leaf) = %v, want 7", got)
	}

	node := tree.New("Node", "l", "r")
	got = node.Cata(adhoc.CataTable{
		"Leaf": func(args ...any) any { return nil },
		"Node": func(args ...any) any { return args[0].(string) + args[1].(string) },
	})
	if got != "lr" {
		t.Fatalf("cata(node) = %v, want lr (field order preserved)", got)
	}
}

// TestCataExhaustiveness: a table missing a variant and a table naming an
// unknown variant both fail eagerly, before any handler runs.
func TestCataExhaustiveness(t *testing.T) {
	sum := adhoc.NewSum("AB", map[string][]string{"A": {}, "B": {}})
	a := sum.New("A")

	ran := false
	rec := catchPanic(func() {
		a.Cata(adhoc.CataTable{
			"A": func(...any) any { ran = true; return nil },
		})
	})
	exh, ok := rec.(*adhoc.ExhaustivenessError)
	if !ok {
		t.Fatalf("missing variant: recovered %v, want *ExhaustivenessError", rec)
	}
	if diff := cmp.Diff([]string{"B"}, exh.Missing); diff != "" {
		t.Fatalf("missing set (-want +got):\n%s", diff)
	}
	if ran {
		t.Fatal("handler ran despite the non-exhaustive table")
	}

	rec = catchPanic(func() {
		a.Cata(adhoc.CataTable{
			"A": func(...any) any { return nil },
			"B": func(...any) any { return nil },
			"C": func(...any) any { return nil },
		})
	})
	exh, ok = rec.(*adhoc.ExhaustivenessError)
	if !ok {
		t.Fatalf("extra variant: recovered %v, want *ExhaustivenessError", rec)
	}
	if diff := cmp.Diff([]string{"C"}, exh.Extra); diff != "" {
		t.Fatalf("extra set (-want +got):\n%s", diff)
	}
}

func TestSumUnknownVariant(t *testing.T) {
	sum := adhoc.NewSum("AB", map[string][]string{"A": {}, "B": {}})
	rec := catchPanic(func() { sum.New("C") })
	if _, ok := rec.(*adhoc.ExhaustivenessError); !ok {
		t.Fatalf("recovered %v, want *ExhaustivenessError", rec)
	}
}

func TestSumVariantAccessors(t *testing.T) {
	sum := adhoc.NewSum("Shape", map[string][]string{
		"Circle": {"radius"},
		"Rect":   {"w", "h"},
	})
	c := sum.New("Circle", 2.0)

	if c.Name() != "Circle" {
		t.Fatalf("variant = %q, want Circle", c.Name())
	}
	if c.Sum() != sum {
		t.Fatal("value does not point back at its sum type")
	}
	if r, ok := c.Get("radius"); !ok || r != 2.0 {
		t.Fatalf("radius = %v (%v), want 2", r, ok)
	}
	if diff := cmp.Diff([]string{"Circle", "Rect"}, sum.Variants()); diff != "" {
		t.Fatalf("variants (-want +got):\n%s", diff)
	}
}
