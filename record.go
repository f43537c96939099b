// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import "slices"

// RecordType describes a fixed-shape product of named fields. Values are
// constructed positionally in declared field order.
type RecordType struct {
	name   string
	fields []string
}

// NewRecord declares a record type with the given field names.
func NewRecord(name string, fields ...string) *RecordType {
	return &RecordType{name: name, fields: slices.Clone(fields)}
}

// Name returns the declared type name.
func (t *RecordType) Name() string { return t.name }

// Fields returns the declared field names in order.
func (t *RecordType) Fields() []string { return slices.Clone(t.fields) }

// New constructs a record value from positional field values. Panics with
// [*ArityMismatchError] unless exactly one value per declared field is
// supplied.
func (t *RecordType) New(values ...any) Record {
	if len(values) != len(t.fields) {
		panic(&ArityMismatchError{Record: t.name, Want: len(t.fields), Got: len(values)})
	}
	return Record{typ: t, values: slices.Clone(values)}
}

// Record is an immutable product value. Identity is by construction; value
// equality is only what an explicit "equal" registration defines.
type Record struct {
	typ    *RecordType
	values []any
}

// Type returns the record's type.
func (r Record) Type() *RecordType { return r.typ }

// Get returns the value of the named field.
func (r Record) Get(field string) (any, bool) {
	i := slices.Index(r.typ.fields, field)
	if i < 0 {
		return nil, false
	}
	return r.values[i], true
}

// Values returns the field values in declared order.
func (r Record) Values() []any { return slices.Clone(r.values) }
