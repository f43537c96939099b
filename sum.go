// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"slices"

	"github.com/samber/lo"
)

// CataTable maps variant names to elimination handlers. Each handler
// receives its variant's field values positionally in declared order.
type CataTable map[string]func(args ...any) any

// SumType describes a disjoint sum of record-shaped variants. Each value of
// the sum carries exactly one variant tag and supports total elimination via
// [Variant.Cata].
type SumType struct {
	name     string
	variants map[string]*RecordType
	order    []string
}

// NewSum declares a sum type from a mapping of variant name to field names.
func NewSum(name string, variants map[string][]string) *SumType {
	order := lo.Keys(variants)
	slices.Sort(order)
	t := &SumType{
		name:     name,
		variants: make(map[string]*RecordType, len(variants)),
		order:    order,
	}
	for _, vn := range order {
		t.variants[vn] = NewRecord(name+"."+vn, variants[vn]...)
	}
	return t
}

// Name returns the declared sum name.
func (t *SumType) Name() string { return t.name }

// Variants returns the variant names in stable (sorted) order.
func (t *SumType) Variants() []string { return slices.Clone(t.order) }

// New constructs a value tagged with the given variant. Panics with
// [*ExhaustivenessError] on an unknown variant name and with
// [*ArityMismatchError] on a wrong field count.
func (t *SumType) New(variant string, values ...any) Variant {
	rt, ok := t.variants[variant]
	if !ok {
		panic(&ExhaustivenessError{Sum: t.name, Extra: []string{variant}})
	}
	return Variant{sum: t, name: variant, rec: rt.New(values...)}
}

// checkTable verifies that a dispatch table covers every variant and names
// nothing else. Both violations panic with [*ExhaustivenessError] before any
// handler runs.
func (t *SumType) checkTable(table CataTable) {
	missing := lo.Filter(t.order, func(vn string, _ int) bool {
		_, ok := table[vn]
		return !ok
	})
	extra := lo.Filter(lo.Keys(table), func(vn string, _ int) bool {
		_, ok := t.variants[vn]
		return !ok
	})
	slices.Sort(extra)
	if len(missing) > 0 || len(extra) > 0 {
		panic(&ExhaustivenessError{Sum: t.name, Missing: missing, Extra: extra})
	}
}

// Variant is a value of a tagged sum: one variant tag plus that variant's
// record of field values.
type Variant struct {
	sum  *SumType
	name string
	rec  Record
}

// Sum returns the sum type this value belongs to.
func (v Variant) Sum() *SumType { return v.sum }

// Name returns the variant tag.
func (v Variant) Name() string { return v.name }

// Get returns the value of the named field of this variant.
func (v Variant) Get(field string) (any, bool) { return v.rec.Get(field) }

// Values returns the variant's field values in declared order.
func (v Variant) Values() []any { return v.rec.Values() }

// Cata eliminates the value through a dispatch table. The table is checked
// eagerly against the full variant set, then the entry matching this value's
// tag is invoked with the field values in declared order.
func (v Variant) Cata(table CataTable) any {
	v.sum.checkTable(table)
	return table[v.name](v.rec.values...)
}
