// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

// Trampoline is a suspended self-referential computation in one of two
// states: completed with a result ([Done]) or pending behind a thunk
// ([Continue]). Expressing a non-tail-recursive chain as a Trampoline lets
// [Run] drive it iteratively, so arbitrarily long chains do not grow the
// call stack.
type Trampoline[A any] struct {
	done   bool
	result A
	next   func() Trampoline[A]
}

// Done completes a computation with a result.
func Done[A any](result A) Trampoline[A] {
	return Trampoline[A]{done: true, result: result}
}

// Continue suspends a computation behind a thunk producing the next state.
func Continue[A any](next func() Trampoline[A]) Trampoline[A] {
	return Trampoline[A]{next: next}
}

// Run drives a computation to completion and returns its result. The loop
// is iterative, never recursive: each pending state is forced in turn until
// a [Done] is reached. Run provides no cancellation; the caller must ensure
// the chain of thunks eventually terminates.
func Run[A any](t Trampoline[A]) A {
	for !t.done {
		t = t.next()
	}
	return t.result
}
