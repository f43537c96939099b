// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"maps"
	"math"
	"math/rand/v2"
)

// Shape is a primitive generation token. The "arb" multimethod dispatches
// on shape tokens to select a generation rule, so user environments can
// register their own tokens alongside these.
type Shape struct {
	name string
}

func (s Shape) String() string { return s.name }

var (
	// BooleanShape generates a random bool.
	BooleanShape = Shape{name: "Boolean"}
	// NumberShape generates a whole-valued float64 whose magnitude widens
	// exponentially as the size parameter approaches the trial goal.
	NumberShape = Shape{name: "Number"}
	// StringShape generates a printable ASCII string of length at most size.
	StringShape = Shape{name: "String"}
	// CharShape generates a one-character printable ASCII string.
	CharShape = Shape{name: "Char"}
	// AnyValShape generates one of bool, number, or string, chosen at random.
	AnyValShape = Shape{name: "AnyVal"}
	// ArrayShape generates a []any of AnyVal elements.
	ArrayShape = Shape{name: "Array"}
	// ObjectShape generates a map[string]any with random keys and AnyVal values.
	ObjectShape = Shape{name: "Object"}
)

// ArrayOfShape generates a []any with every element drawn from Elem.
type ArrayOfShape struct {
	Elem any
}

// ArrayOf declares an array shape over an element shape.
func ArrayOf(elem any) ArrayOfShape { return ArrayOfShape{Elem: elem} }

// ObjectLikeShape generates a map[string]any with a fixed key set, each
// value drawn from that key's declared shape.
type ObjectLikeShape struct {
	fields map[string]any
}

// ObjectLike declares an object shape from a key-to-shape mapping.
func ObjectLike(fields map[string]any) ObjectLikeShape {
	return ObjectLikeShape{fields: maps.Clone(fields)}
}

// generator carries the explicit randomness source and trial goal for the
// arb registrations. env is set to the checker's fully composed environment
// after construction so compound shapes recurse through user registrations
// as well as the builtins.
type generator struct {
	rng  *rand.Rand
	goal int
	env  Env
}

// genEnv registers the "arb" multimethod: arb(shape, size) generates one
// value. Compound shapes recurse with a size budget decreased by one per
// level, so generation terminates.
func genEnv(g *generator) Env {
	exact := func(want Shape) Predicate {
		return func(args ...any) bool {
			s, ok := args[0].(Shape)
			return ok && s == want
		}
	}

	e := New()
	e = e.Method("arb", exact(BooleanShape), func(_ Shape, _ int) bool {
		return g.rng.IntN(2) == 0
	})
	e = e.Method("arb", exact(NumberShape), func(_ Shape, size int) float64 {
		return g.number(size)
	})
	e = e.Method("arb", exact(StringShape), func(_ Shape, size int) string {
		return g.str(size)
	})
	e = e.Method("arb", exact(CharShape), func(_ Shape, _ int) string {
		return string(rune(g.char()))
	})
	e = e.Method("arb", exact(AnyValShape), func(_ Shape, size int) any {
		return g.anyVal(size)
	})
	e = e.Method("arb", exact(ArrayShape), func(_ Shape, size int) []any {
		out := make([]any, g.length(size))
		for i := range out {
			out[i] = g.anyVal(size - 1)
		}
		return out
	})
	e = e.Method("arb", exact(ObjectShape), func(_ Shape, size int) map[string]any {
		n := g.length(size)
		out := make(map[string]any, n)
		for range n {
			out[g.str(size)] = g.anyVal(size - 1)
		}
		return out
	})
	e = e.Method("arb", isA[ArrayOfShape], func(s ArrayOfShape, size int) []any {
		out := make([]any, g.length(size))
		for i := range out {
			out[i] = g.env.MustCall("arb", s.Elem, max(size-1, 0))
		}
		return out
	})
	e = e.Method("arb", isA[ObjectLikeShape], func(s ObjectLikeShape, size int) map[string]any {
		out := make(map[string]any, len(s.fields))
		for k, shape := range s.fields {
			out[k] = g.env.MustCall("arb", shape, max(size-1, 0))
		}
		return out
	})
	return e
}

// number draws from ±2^(32·size/goal), truncated to a whole value. The
// bound doubles roughly every goal/32 trials, widening the numeric range
// across a run.
func (g *generator) number(size int) float64 {
	bound := math.Pow(2, 32*float64(max(size, 0))/float64(g.goal))
	return math.Trunc(g.rng.Float64()*2*bound - bound)
}

func (g *generator) str(size int) string {
	b := make([]byte, g.length(size))
	for i := range b {
		b[i] = g.char()
	}
	return string(b)
}

// char returns a printable ASCII byte.
func (g *generator) char() byte {
	return byte(g.rng.IntN(95) + 32)
}

func (g *generator) anyVal(size int) any {
	switch g.rng.IntN(3) {
	case 0:
		return g.rng.IntN(2) == 0
	case 1:
		return g.number(size)
	default:
		return g.str(size)
	}
}

// length bounds container and string sizes by the size parameter.
func (g *generator) length(size int) int {
	return g.rng.IntN(max(size, 0) + 1)
}
