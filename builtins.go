// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

// isA reports whether the first argument has dynamic type T.
// Instantiations serve as structural dispatch predicates.
func isA[T any](args ...any) bool {
	if len(args) == 0 {
		return false
	}
	_, ok := args[0].(T)
	return ok
}

// anyArgs accepts every argument list. Registered last under a method name,
// it serves as the catch-all fallback.
func anyArgs(...any) bool { return true }

// Builtins returns the base environment with the canonical structure
// operations registered as multimethods: map, flatMap, ap, append, fold,
// perform, and equal, each dispatched by a structural predicate over the
// first argument. Foreign types participate by appending their own
// registrations; per the [Env.Append] bias, registrations already present in
// a base environment take priority over these.
//
// Operations that recurse through dispatch (append delegation inside Option
// and Either, Validation's error accumulation, pairwise array equality)
// resolve within this builtin generation: extending the returned environment
// does not change what the builtin implementations themselves see.
func Builtins() Env {
	self := new(Env)
	appendVia := func(a, b any) any { return self.MustCall("append", a, b) }

	e := New()

	e = e.Method("map", isA[Option], func(o Option, f func(any) any) Option { return o.Map(f) })
	e = e.Method("map", isA[Either], func(x Either, f func(any) any) Either { return x.Map(f) })
	e = e.Method("map", isA[Validation], func(va Validation, f func(any) any) Validation { return va.Map(f) })
	e = e.Method("map", isA[IO], func(m IO, f func(any) any) IO { return m.Map(f) })
	e = e.Method("map", isA[[]any], func(xs []any, f func(any) any) []any { return mapSlice(xs, f) })

	e = e.Method("flatMap", isA[Option], func(o Option, f func(any) Option) Option { return o.FlatMap(f) })
	e = e.Method("flatMap", isA[Either], func(x Either, f func(any) Either) Either { return x.FlatMap(f) })
	e = e.Method("flatMap", isA[IO], func(m IO, f func(any) IO) IO { return m.FlatMap(f) })
	e = e.Method("flatMap", isA[[]any], func(xs []any, f func(any) []any) []any { return flatMapSlice(xs, f) })

	e = e.Method("ap", isA[Option], func(o, other Option) Option { return o.Ap(other) })
	e = e.Method("ap", isA[Either], func(x, other Either) Either { return x.Ap(other) })
	e = e.Method("ap", isA[Validation], func(va, other Validation) Validation {
		return va.Ap(other, appendVia)
	})
	e = e.Method("ap", isA[[]any], func(fns, xs []any) []any { return apSlice(fns, xs) })

	e = e.Method("append", isA[Option], func(a, b Option) Option {
		av, ok := a.Get()
		if !ok {
			return None()
		}
		bv, ok := b.Get()
		if !ok {
			return None()
		}
		return Some(appendVia(av, bv))
	})
	e = e.Method("append", isA[Either], func(a, b Either) Either {
		ra, aRight := a.GetRight()
		rb, bRight := b.GetRight()
		switch {
		case aRight && bRight:
			return Right(appendVia(ra, rb))
		case aRight:
			return a
		case bRight:
			return b
		}
		la, _ := a.GetLeft()
		lb, _ := b.GetLeft()
		return Left(appendVia(la, lb))
	})
	e = e.Method("append", isA[[]any], func(a, b []any) []any { return appendSlice(a, b) })
	e = e.Method("append", isA[string], func(a, b string) string { return a + b })

	e = e.Method("fold", isA[Option], func(o Option, onSome func(any) any, onNone func() any) any {
		return o.Fold(onSome, onNone)
	})
	e = e.Method("fold", isA[Either], func(x Either, onLeft, onRight func(any) any) any {
		return x.Fold(onLeft, onRight)
	})
	e = e.Method("fold", isA[[]any], func(xs []any, seed any, combine func(acc, x any) any) any {
		return foldSlice(xs, seed, combine)
	})

	e = e.Method("perform", isA[IO], func(m IO) any { return m.Perform() })

	e = e.Method("equal", isA[bool], func(a bool, b any) bool {
		bb, ok := b.(bool)
		return ok && a == bb
	})
	e = e.Method("equal", isA[float64], func(a float64, b any) bool {
		bb, ok := b.(float64)
		return ok && a == bb
	})
	e = e.Method("equal", isA[string], func(a string, b any) bool {
		bb, ok := b.(string)
		return ok && a == bb
	})
	e = e.Method("equal", isA[[]any], func(a []any, b any) bool {
		bs, ok := b.([]any)
		if !ok {
			return false
		}
		// Pairwise comparison runs up to the shorter length only: trailing
		// elements of the longer slice are never inspected, so unequal-length
		// slices sharing a prefix compare equal.
		n := min(len(a), len(bs))
		for i := range n {
			if !self.MustCall("equal", a[i], bs[i]).(bool) {
				return false
			}
		}
		return true
	})

	*self = e
	return e
}
