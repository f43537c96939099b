// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import "maps"

// Store pairs a setter, which rebuilds the whole from a replacement part,
// with the currently focused part.
type Store struct {
	set func(part any) any
	get any
}

// NewStore builds a Store from a setter and the focused part.
func NewStore(set func(part any) any, get any) Store {
	return Store{set: set, get: get}
}

// Set rebuilds the whole with part in focus position.
func (s Store) Set(part any) any { return s.set(part) }

// Get returns the focused part.
func (s Store) Get() any { return s.get }

// Map returns a Store whose setter post-composes f over the original
// setter; the focus is unchanged.
func (s Store) Map(f func(any) any) Store {
	return NewStore(func(part any) any {
		return f(s.set(part))
	}, s.get)
}

// Lens focuses on a part of a whole value: running it on a whole yields a
// [Store] over that whole.
type Lens struct {
	run func(whole any) Store
}

// NewLens builds a Lens from its run function.
func NewLens(run func(whole any) Store) Lens {
	return Lens{run: run}
}

// Run focuses the lens on a whole value.
func (l Lens) Run(whole any) Store { return l.run(whole) }

// Compose drills the receiver's focus inside inner's focus: the composed
// lens runs inner on the whole, then the receiver on inner's focus, and its
// setter routes the inner setter's result back through the outer setter.
// Composition is associative; the direction is the reverse of left-to-right
// function composition.
func (l Lens) Compose(inner Lens) Lens {
	return NewLens(func(whole any) Store {
		outerStore := inner.run(whole)
		innerStore := l.run(outerStore.get)
		return NewStore(func(part any) any {
			return outerStore.set(innerStore.set(part))
		}, innerStore.get)
	})
}

// ObjectLens is a total lens over one key of a map[string]any. Its setter
// produces a fresh map with the key rebound; all other keys are shared
// structurally and the original map is untouched.
func ObjectLens(key string) Lens {
	return NewLens(func(whole any) Store {
		m, _ := whole.(map[string]any)
		return NewStore(func(part any) any {
			next := maps.Clone(m)
			if next == nil {
				next = make(map[string]any, 1)
			}
			next[key] = part
			return next
		}, m[key])
	})
}
