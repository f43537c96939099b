// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package adhoc provides an extensible, immutable dispatch environment for
// ad-hoc polymorphism over closed algebraic data types, a set of canonical
// algebraic structures defined in terms of that dispatch mechanism, and a
// property-based testing engine built on top of both.
//
// The core type [Env] is an immutable registry of named multi-implementation
// operations (multimethods) and named constants (properties). A call is
// resolved by scanning the method's registrations in append order and
// invoking the first implementation whose predicate accepts the arguments.
// Extending an environment never mutates it: prior references keep their old
// resolution behavior, so no locking is needed between readers of distinct
// generations.
//
// # Environment and Dispatch
//
//   - [New]: Create an empty environment
//   - [Env.Method]: Append a (predicate, implementation) registration
//   - [Env.Property]: Bind a named constant
//   - [Env.Call], [Env.MustCall]: First-match dispatch, curried below arity
//   - [Env.Append], [Env.Concat]: Merge environments — properties are
//     right-biased, method registrations of the merged-in environment are
//     tried after the receiver's own
//   - [Builtins]: Base environment carrying the canonical structure
//     operations (map, flatMap, ap, append, fold, perform, equal)
//
// Dispatch failures are returned as [*NoImplementationError]; misuse at
// registration or construction time (duplicate name kinds, wrong record
// arity, non-exhaustive elimination) panics with the corresponding typed
// error.
//
// # Algebraic Data Types
//
//   - [NewRecord], [RecordType.New]: Fixed-shape products of named fields
//   - [NewSum], [SumType.New]: Disjoint sums of record-shaped variants
//   - [Variant.Cata]: Total elimination through a [CataTable]; the table
//     must cover every variant and name nothing else, checked eagerly
//
// # Canonical Structures
//
// Concrete sums built on the ADT facility, each with direct methods and a
// multimethod registration in [Builtins]:
//
//   - [Option]: [Some] | [None]; Map, FlatMap, Ap, Fold, GetOrElse
//   - [Either]: [Left] | [Right], right-biased; Map, FlatMap, Ap, Fold, Swap
//   - [Validation]: [Success] | [Failure]; applicative composition
//     accumulates Failure errors through their own append instead of
//     short-circuiting; no monad instance
//   - [IO]: deferred side-effecting thunk; composition never performs early,
//     [IO.Perform] runs the composed action exactly once
//   - [Lens] / [Store]: functional references; [Lens.Compose] drills the
//     receiver's focus inside the argument's focus, [ObjectLens] focuses one
//     key of a map with structural sharing
//
// # Trampoline
//
//   - [Done], [Continue]: The two states of a suspended computation
//   - [Run]: Iterative driver; arbitrarily long Continue chains complete
//     without growing the call stack
//
// # Property-Based Testing
//
//   - [NewChecker]: Compose an environment with generation and shrinking
//     builtins; tunables are the trial goal ([WithGoal], default
//     [DefaultGoal]) and the randomness source ([WithRand])
//   - [Checker.ForAll]: Run up to goal trials, generating one input per
//     declared shape with size equal to the trial index; on falsification,
//     shrink to a locally minimal counterexample and return
//     Some([*FailureReport]), otherwise None
//   - Shapes: [BooleanShape], [NumberShape], [StringShape], [CharShape],
//     [AnyValShape], [ArrayShape], [ObjectShape], [ArrayOf], [ObjectLike]
//   - [Checker.Arbitrary]: Direct access to generation
//
// Generation ("arb") and shrinking ("shrink") are themselves multimethods,
// so user environments can register rules for their own shape tokens and
// value types; registrations in the base environment take priority over the
// builtins.
//
// # Example
//
//	env := adhoc.Builtins()
//	check := adhoc.NewChecker(env)
//	report := check.ForAll(func(xs []any) bool {
//		rev := reverse(reverse(xs))
//		return env.MustCall("equal", xs, rev).(bool)
//	}, adhoc.ArrayOf(adhoc.NumberShape))
//	// report.IsNone() on success
package adhoc
