// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

var validationSum = NewSum("Validation", map[string][]string{
	"Success": {"value"},
	"Failure": {"errors"},
})

// Validation represents a checked value: Success carries the value, Failure
// carries an accumulating error collection (any semigroup). Unlike [Either],
// applicative composition of two Failures combines both error collections
// instead of short-circuiting on the first. Validation has no monad
// instance. The zero value is Failure(nil).
type Validation struct {
	v Variant
}

// Success wraps a validated value.
func Success(value any) Validation {
	return Validation{v: validationSum.New("Success", value)}
}

// Failure wraps an error collection.
func Failure(errs any) Validation {
	return Validation{v: validationSum.New("Failure", errs)}
}

// IsSuccess returns true for the success case.
func (va Validation) IsSuccess() bool { return va.v.name == "Success" }

// IsFailure returns true for the failure case.
func (va Validation) IsFailure() bool { return !va.IsSuccess() }

// Get returns the success value and true, or nil and false.
func (va Validation) Get() (any, bool) {
	if !va.IsSuccess() {
		return nil, false
	}
	value, _ := va.v.Get("value")
	return value, true
}

// Errors returns the failure's error collection and true, or nil and false.
func (va Validation) Errors() (any, bool) {
	if va.IsSuccess() {
		return nil, false
	}
	errs, _ := va.variant().Get("errors")
	return errs, true
}

// Map applies f to the success value; Failure passes through untouched.
func (va Validation) Map(f func(any) any) Validation {
	if value, ok := va.Get(); ok {
		return Success(f(value))
	}
	return va.normalized()
}

// Ap applies the success-wrapped func(any) any to other's success value.
// When both sides are Failures, their error collections are combined with
// combine (receiver's errors first) rather than short-circuiting; a single
// Failure passes through.
func (va Validation) Ap(other Validation, combine func(a, b any) any) Validation {
	if ea, aFailed := va.Errors(); aFailed {
		if eb, bFailed := other.Errors(); bFailed {
			return Failure(combine(ea, eb))
		}
		return Failure(ea)
	}
	fv, _ := va.Get()
	eb, bFailed := other.Errors()
	if bFailed {
		return Failure(eb)
	}
	f, ok := fv.(func(any) any)
	if !ok {
		panic("adhoc: Validation.Ap requires the receiver to wrap a func(any) any")
	}
	x, _ := other.Get()
	return Success(f(x))
}

// FromEither converts Right to Success and Left to Failure.
func FromEither(e Either) Validation {
	if value, ok := e.GetRight(); ok {
		return Success(value)
	}
	value, _ := e.GetLeft()
	return Failure(value)
}

// Cata eliminates through a dispatch table with entries "Success" and
// "Failure".
func (va Validation) Cata(table CataTable) any {
	return va.variant().Cata(table)
}

func (va Validation) variant() Variant {
	if va.v.sum == nil {
		return validationSum.New("Failure", nil)
	}
	return va.v
}

func (va Validation) normalized() Validation {
	return Validation{v: va.variant()}
}
