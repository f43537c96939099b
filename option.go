// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

var optionSum = NewSum("Option", map[string][]string{
	"Some": {"value"},
	"None": {},
})

// Option represents an optional value: Some carries a payload, None carries
// nothing. The zero value is None.
type Option struct {
	v Variant
}

// Some wraps a present value.
func Some(value any) Option {
	return Option{v: optionSum.New("Some", value)}
}

// None is the absent value.
func None() Option {
	return Option{v: optionSum.New("None")}
}

// IsSome returns true if a value is present.
func (o Option) IsSome() bool { return o.v.name == "Some" }

// IsNone returns true if no value is present.
func (o Option) IsNone() bool { return !o.IsSome() }

// Get returns the wrapped value and true, or nil and false.
func (o Option) Get() (any, bool) {
	if !o.IsSome() {
		return nil, false
	}
	value, _ := o.v.Get("value")
	return value, true
}

// GetOrElse returns the wrapped value, or alt when None.
func (o Option) GetOrElse(alt any) any {
	if value, ok := o.Get(); ok {
		return value
	}
	return alt
}

// Map applies f to the wrapped value; None maps to None.
func (o Option) Map(f func(any) any) Option {
	if value, ok := o.Get(); ok {
		return Some(f(value))
	}
	return None()
}

// FlatMap applies f, which itself returns an Option; None maps to None.
func (o Option) FlatMap(f func(any) Option) Option {
	if value, ok := o.Get(); ok {
		return f(value)
	}
	return None()
}

// Ap applies the wrapped func(any) any to other's value. Either side being
// None short-circuits to None. Panics if the receiver wraps anything other
// than a func(any) any.
func (o Option) Ap(other Option) Option {
	fv, ok := o.Get()
	if !ok {
		return None()
	}
	x, ok := other.Get()
	if !ok {
		return None()
	}
	f, ok := fv.(func(any) any)
	if !ok {
		panic("adhoc: Option.Ap requires the receiver to wrap a func(any) any")
	}
	return Some(f(x))
}

// Fold eliminates the Option: onSome for a present value, onNone otherwise.
func (o Option) Fold(onSome func(any) any, onNone func() any) any {
	if value, ok := o.Get(); ok {
		return onSome(value)
	}
	return onNone()
}

// Cata eliminates through a dispatch table with entries "Some" and "None",
// checked for exhaustiveness like any sum elimination.
func (o Option) Cata(table CataTable) any {
	return o.variant().Cata(table)
}

// variant normalizes the zero value to a constructed None.
func (o Option) variant() Variant {
	if o.v.sum == nil {
		return optionSum.New("None")
	}
	return o.v
}
