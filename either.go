// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

var eitherSum = NewSum("Either", map[string][]string{
	"Left":  {"value"},
	"Right": {"value"},
})

// Either represents one of two cases: Left (conventionally failure) or
// Right (conventionally success). Functor and monad operations are
// right-biased. The zero value is Left(nil).
type Either struct {
	v Variant
}

// Left wraps a value in the left case.
func Left(value any) Either {
	return Either{v: eitherSum.New("Left", value)}
}

// Right wraps a value in the right case.
func Right(value any) Either {
	return Either{v: eitherSum.New("Right", value)}
}

// IsRight returns true for the right case.
func (e Either) IsRight() bool { return e.v.name == "Right" }

// IsLeft returns true for the left case.
func (e Either) IsLeft() bool { return !e.IsRight() }

// GetRight returns the right value and true, or nil and false.
func (e Either) GetRight() (any, bool) {
	if !e.IsRight() {
		return nil, false
	}
	value, _ := e.v.Get("value")
	return value, true
}

// GetLeft returns the left value and true, or nil and false.
func (e Either) GetLeft() (any, bool) {
	if e.IsRight() {
		return nil, false
	}
	value, _ := e.variant().Get("value")
	return value, true
}

// Map applies f to the right value; Left passes through untouched.
func (e Either) Map(f func(any) any) Either {
	if value, ok := e.GetRight(); ok {
		return Right(f(value))
	}
	return e.normalized()
}

// FlatMap applies f, which itself returns an Either; Left passes through.
func (e Either) FlatMap(f func(any) Either) Either {
	if value, ok := e.GetRight(); ok {
		return f(value)
	}
	return e.normalized()
}

// Ap applies the right-wrapped func(any) any to other's right value; a Left
// on either side passes through, the receiver's Left taking precedence.
func (e Either) Ap(other Either) Either {
	fv, ok := e.GetRight()
	if !ok {
		return e.normalized()
	}
	x, ok := other.GetRight()
	if !ok {
		return other.normalized()
	}
	f, ok := fv.(func(any) any)
	if !ok {
		panic("adhoc: Either.Ap requires the receiver to wrap a func(any) any")
	}
	return Right(f(x))
}

// Fold eliminates the Either with one handler per case.
func (e Either) Fold(onLeft, onRight func(any) any) any {
	if value, ok := e.GetRight(); ok {
		return onRight(value)
	}
	value, _ := e.GetLeft()
	return onLeft(value)
}

// Swap exchanges the cases.
func (e Either) Swap() Either {
	if value, ok := e.GetRight(); ok {
		return Left(value)
	}
	value, _ := e.GetLeft()
	return Right(value)
}

// Cata eliminates through a dispatch table with entries "Left" and "Right".
func (e Either) Cata(table CataTable) any {
	return e.variant().Cata(table)
}

func (e Either) variant() Variant {
	if e.v.sum == nil {
		return eitherSum.New("Left", nil)
	}
	return e.v
}

func (e Either) normalized() Either {
	return Either{v: e.variant()}
}
