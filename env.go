// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"maps"
	"reflect"
	"slices"
)

// Predicate reports whether a registration applies to the given arguments.
// Dispatch evaluates predicates in registration order and picks the first
// that returns true.
type Predicate func(args ...any) bool

// Callable is a partially applied dispatch call returned by [Env.Call] when
// fewer arguments than the method's arity are supplied. Calling it with the
// remainder completes (or further curries) the dispatch.
type Callable func(args ...any) (any, error)

// registration is one (predicate, implementation) pair of a multimethod.
// Ordering within a method's registration list is append order.
type registration struct {
	pred     Predicate
	impl     reflect.Value
	arity    int
	variadic bool
}

// Env is an immutable dispatch environment: a mapping from method name to an
// ordered list of (predicate, implementation) registrations, and from
// property name to a constant value. A name denotes at most one of the two
// kinds.
//
// Every extension ([Env.Method], [Env.Property], [Env.Append]) returns a new
// environment sharing the unaffected entries; the receiver is never mutated,
// so prior references keep their old resolution behavior. The zero value is
// an empty environment.
type Env struct {
	methods map[string][]registration
	props   map[string]any
}

// New returns an empty environment.
func New() Env { return Env{} }

// Method returns a new environment with (pred, impl) appended to name's
// registration list. impl must be a func; its declared parameter count fixes
// the multimethod's arity when it is the first registration under name.
// Appended registrations lose ties to earlier ones, so a general fallback
// must be registered before the cases it falls back from.
//
// Panics with [*DuplicateRegistrationError] if name already denotes a
// property.
func (e Env) Method(name string, pred Predicate, impl any) Env {
	if _, ok := e.props[name]; ok {
		panic(&DuplicateRegistrationError{Name: name, Existing: "property"})
	}
	v := reflect.ValueOf(impl)
	if v.Kind() != reflect.Func {
		panic("adhoc: method implementation must be a func")
	}
	reg := registration{
		pred:     pred,
		impl:     v,
		arity:    v.Type().NumIn(),
		variadic: v.Type().IsVariadic(),
	}
	methods := maps.Clone(e.methods)
	if methods == nil {
		methods = make(map[string][]registration, 1)
	}
	methods[name] = append(slices.Clone(methods[name]), reg)
	return Env{methods: methods, props: e.props}
}

// Property returns a new environment with name bound to value. Rebinding an
// existing property replaces its value.
//
// Panics with [*DuplicateRegistrationError] if name already denotes a method.
func (e Env) Property(name string, value any) Env {
	if _, ok := e.methods[name]; ok {
		panic(&DuplicateRegistrationError{Name: name, Existing: "method"})
	}
	props := maps.Clone(e.props)
	if props == nil {
		props = make(map[string]any, 1)
	}
	props[name] = value
	return Env{methods: e.methods, props: props}
}

// Prop returns the value bound to a property name.
func (e Env) Prop(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// Arity returns the declared arity of a multimethod, taken from its first
// registration's implementation.
func (e Env) Arity(name string) (int, bool) {
	regs := e.methods[name]
	if len(regs) == 0 {
		return 0, false
	}
	return regs[0].arity, true
}

// Call dispatches a method call. The registration list for name is scanned
// in order and the first registration whose predicate accepts args is
// invoked. If no registration matches, Call returns a
// [*NoImplementationError].
//
// Calls are curried: supplying fewer arguments than the method's arity
// returns a [Callable] holding the supplied prefix. Supplying more than the
// arity invokes the implementation; arguments beyond a non-variadic
// implementation's parameter list are dropped.
func (e Env) Call(name string, args ...any) (any, error) {
	regs := e.methods[name]
	if len(regs) == 0 {
		return nil, &NoImplementationError{Method: name, NumArgs: len(args)}
	}
	if len(args) < regs[0].arity {
		held := slices.Clone(args)
		return Callable(func(more ...any) (any, error) {
			return e.Call(name, append(slices.Clone(held), more...)...)
		}), nil
	}
	for _, reg := range regs {
		if reg.pred(args...) {
			return invoke(reg.impl, args), nil
		}
	}
	return nil, &NoImplementationError{Method: name, NumArgs: len(args)}
}

// MustCall is Call, panicking on dispatch failure.
func (e Env) MustCall(name string, args ...any) any {
	v, err := e.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// Append merges extra into e. Method registration lists are concatenated
// with extra's registrations placed after e's own, so e's specializations
// keep priority and extra acts as a fallback set. Properties are
// right-biased: where both bind the same name, extra's value wins. The two
// biases are deliberately asymmetric.
//
// Panics with [*DuplicateRegistrationError] when a name is a method on one
// side and a property on the other.
func (e Env) Append(extra Env) Env {
	methods := maps.Clone(e.methods)
	if methods == nil && len(extra.methods) > 0 {
		methods = make(map[string][]registration, len(extra.methods))
	}
	for name, regs := range extra.methods {
		if _, ok := e.props[name]; ok {
			panic(&DuplicateRegistrationError{Name: name, Existing: "property"})
		}
		methods[name] = append(slices.Clone(methods[name]), regs...)
	}
	props := maps.Clone(e.props)
	if props == nil && len(extra.props) > 0 {
		props = make(map[string]any, len(extra.props))
	}
	for name, v := range extra.props {
		if _, ok := methods[name]; ok {
			panic(&DuplicateRegistrationError{Name: name, Existing: "method"})
		}
		props[name] = v
	}
	return Env{methods: methods, props: props}
}

// Concat folds Append over extras, left to right.
func (e Env) Concat(extras ...Env) Env {
	for _, x := range extras {
		e = e.Append(x)
	}
	return e
}

// invoke applies a reflected func to untyped arguments. The caller's
// predicate is expected to have guarded the implementation's parameter
// types; a mismatch panics via reflect.
func invoke(fn reflect.Value, args []any) any {
	t := fn.Type()
	if !t.IsVariadic() && len(args) > t.NumIn() {
		args = args[:t.NumIn()]
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(paramType(t, i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := fn.Call(in)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
