// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"slices"

	"github.com/samber/lo"
)

// Reference semigroup/functor/monad instances over []any, registered as
// multimethods by [Builtins].

func mapSlice(xs []any, f func(any) any) []any {
	return lo.Map(xs, func(x any, _ int) any { return f(x) })
}

func flatMapSlice(xs []any, f func(any) []any) []any {
	return lo.FlatMap(xs, func(x any, _ int) []any { return f(x) })
}

// apSlice applies each function to each value, outer loop over functions,
// inner loop over values.
func apSlice(fns, xs []any) []any {
	return lo.FlatMap(fns, func(fv any, _ int) []any {
		f, ok := fv.(func(any) any)
		if !ok {
			panic("adhoc: slice ap requires func(any) any elements")
		}
		return lo.Map(xs, func(x any, _ int) any { return f(x) })
	})
}

func appendSlice(a, b []any) []any {
	out := slices.Clone(a)
	return append(out, b...)
}

func foldSlice(xs []any, seed any, combine func(acc, x any) any) any {
	return lo.Reduce(xs, func(acc any, x any, _ int) any { return combine(acc, x) }, seed)
}
