// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"fmt"
	"strings"
)

// NoImplementationError reports a dispatch call for which no registration's
// predicate matched the arguments. It is returned (not panicked) by [Env.Call]:
// the caller either registers a matching implementation or avoids the call
// shape. It is never retried automatically.
type NoImplementationError struct {
	Method  string
	NumArgs int
}

func (e *NoImplementationError) Error() string {
	return fmt.Sprintf("adhoc: no implementation of method %q matches %d argument(s)", e.Method, e.NumArgs)
}

// DuplicateRegistrationError reports an attempt to register a name that
// already denotes the other kind of binding (method vs. property).
// Raised as a panic at registration time.
type DuplicateRegistrationError struct {
	Name string
	// Existing is the kind already bound: "method" or "property".
	Existing string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("adhoc: name %q is already registered as a %s", e.Name, e.Existing)
}

// ArityMismatchError reports a record constructed with the wrong number of
// field values. Raised as a panic: the mismatch is a bug at the call site.
type ArityMismatchError struct {
	Record string
	Want   int
	Got    int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("adhoc: record %s takes %d field value(s), got %d", e.Record, e.Want, e.Got)
}

// ExhaustivenessError reports a catamorphism dispatch table that does not
// cover the sum's variants exactly. Raised as a panic before any table entry
// runs.
type ExhaustivenessError struct {
	Sum     string
	Missing []string
	Extra   []string
}

func (e *ExhaustivenessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "adhoc: non-exhaustive elimination of sum %s", e.Sum)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": missing variant(s) %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		if len(e.Missing) > 0 {
			b.WriteString(";")
		} else {
			b.WriteString(":")
		}
		fmt.Fprintf(&b, " unknown variant(s) %s", strings.Join(e.Extra, ", "))
	}
	return b.String()
}
