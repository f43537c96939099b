// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

// IO wraps a zero-argument side-effecting thunk. The thunk runs only when
// [IO.Perform] is called; Map and FlatMap build a new thunk without
// performing any nested thunk early, so composed actions run exactly once,
// in composition order, at perform time.
type IO struct {
	unsafePerform func() any
}

// NewIO wraps a thunk without running it.
func NewIO(thunk func() any) IO {
	return IO{unsafePerform: thunk}
}

// Map post-composes f with the thunk.
func (m IO) Map(f func(any) any) IO {
	return NewIO(func() any {
		return f(m.unsafePerform())
	})
}

// FlatMap sequences m before the action f produces from m's result.
func (m IO) FlatMap(f func(any) IO) IO {
	return NewIO(func() any {
		return f(m.unsafePerform()).Perform()
	})
}

// Perform runs the thunk and returns its result.
func (m IO) Perform() any {
	return m.unsafePerform()
}
