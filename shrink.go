// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"math"
	"slices"
)

// shrinkEnv registers the "shrink" multimethod: shrink(value) yields a
// sequence of strictly smaller candidates under a type-specific "smaller"
// relation. An empty sequence means the value is already minimal. The final
// registration is a catch-all producing no candidates, so unknown types end
// the search rather than failing dispatch.
func shrinkEnv() Env {
	e := New()
	e = e.Method("shrink", isA[bool], func(b bool) []any {
		if b {
			return []any{false}
		}
		return nil
	})
	e = e.Method("shrink", isA[float64], shrinkNumber)
	e = e.Method("shrink", isA[string], shrinkString)
	e = e.Method("shrink", isA[[]any], shrinkSlice)
	e = e.Method("shrink", anyArgs, func(any) []any { return nil })
	return e
}

// shrinkNumber halves toward zero. Negative inputs offer their negation
// first; each following candidate truncates half the previous magnitude,
// ending at zero.
func shrinkNumber(n float64) []any {
	if n == 0 {
		return nil
	}
	var out []any
	if n < 0 {
		out = append(out, -n)
	}
	for x := n / 2; ; x /= 2 {
		t := math.Trunc(x)
		out = append(out, t)
		if t == 0 {
			break
		}
	}
	return out
}

// shrinkString drops a trailing half repeatedly: prefixes of length n/2,
// n/4, ..., 1, then the empty string.
func shrinkString(s string) []any {
	if len(s) == 0 {
		return nil
	}
	var out []any
	for n := len(s) / 2; n > 0; n /= 2 {
		out = append(out, s[:n])
	}
	return append(out, "")
}

// shrinkSlice mirrors shrinkString over []any.
func shrinkSlice(xs []any) []any {
	if len(xs) == 0 {
		return nil
	}
	var out []any
	for n := len(xs) / 2; n > 0; n /= 2 {
		out = append(out, slices.Clone(xs[:n]))
	}
	return append(out, []any{})
}
