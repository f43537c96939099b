// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adhoc

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/sanity-io/litter"
)

// DefaultGoal is the default number of trials a [Checker] runs per ForAll.
const DefaultGoal = 100

// FailureReport describes a falsified property: the locally minimal inputs
// found by shrinking, and the index of the trial that first failed.
type FailureReport struct {
	Inputs []any
	Tries  int
}

func (r *FailureReport) String() string {
	return fmt.Sprintf("falsified at trial %d with inputs %s", r.Tries, litter.Sdump(r.Inputs))
}

// Checker runs property-based checks against a dispatch environment. Each
// Checker owns its randomness source; independent checkers can run
// concurrently as long as they do not share one.
type Checker struct {
	env  Env
	goal int
	rng  *rand.Rand
}

// CheckerOption configures a [Checker].
type CheckerOption func(*Checker)

// WithGoal sets the number of trials per ForAll. goal must be positive.
func WithGoal(goal int) CheckerOption {
	return func(c *Checker) {
		if goal <= 0 {
			panic("adhoc: checker goal must be positive")
		}
		c.goal = goal
	}
}

// WithRand sets the randomness source, making runs reproducible.
func WithRand(rng *rand.Rand) CheckerOption {
	return func(c *Checker) { c.rng = rng }
}

// NewChecker composes base with the generation and shrinking builtins.
// "arb" and "shrink" registrations already present in base take priority
// over the builtins through the [Env.Append] method bias, so custom shapes
// and shrink rules are registered on base before construction.
func NewChecker(base Env, opts ...CheckerOption) *Checker {
	c := &Checker{goal: DefaultGoal}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &generator{rng: c.rng, goal: c.goal}
	c.env = base.Append(genEnv(g)).Append(shrinkEnv())
	g.env = c.env
	return c
}

// Env returns the checker's composed environment.
func (c *Checker) Env() Env { return c.env }

// Arbitrary generates one value for a shape at the given size.
func (c *Checker) Arbitrary(shape any, size int) (any, error) {
	return c.env.Call("arb", shape, size)
}

// ForAll checks a property against generated inputs, one value per shape,
// for up to the configured goal of trials. The trial index doubles as the
// generation size, so inputs grow across a run. On the first falsifying
// trial, ForAll shrinks the inputs and returns Some(*FailureReport); if
// every trial passes it returns None.
//
// property must be a func with one parameter per shape, returning bool. It
// must be a pure predicate: a panic escaping it aborts ForAll, it is never
// interpreted as "property failed". Unknown shapes panic with
// [*NoImplementationError].
func (c *Checker) ForAll(property any, shapes ...any) Option {
	fn := reflect.ValueOf(property)
	if fn.Kind() != reflect.Func {
		panic("adhoc: property must be a func returning bool")
	}
	for i := range c.goal {
		args := make([]any, len(shapes))
		for j, shape := range shapes {
			v, err := c.Arbitrary(shape, i)
			if err != nil {
				panic(err)
			}
			args[j] = v
		}
		if !c.holds(fn, args) {
			return Some(&FailureReport{Inputs: c.shrink(fn, args), Tries: i})
		}
	}
	return None()
}

func (c *Checker) holds(fn reflect.Value, args []any) bool {
	out := invoke(fn, args)
	b, ok := out.(bool)
	if !ok {
		panic("adhoc: property must return bool")
	}
	return b
}

// shrink searches for a locally minimal falsifying input: a single
// left-to-right pass over the argument positions. For each position it
// walks that value's shrink candidates in order, keeping every candidate
// that still falsifies the property while holding the other positions at
// their current best. Earlier positions are not revisited and candidates
// are not re-derived from improved values; the result is locally, not
// globally, minimal.
func (c *Checker) shrink(fn reflect.Value, args []any) []any {
	best := slices.Clone(args)
	for pos := range best {
		candidates, err := c.env.Call("shrink", best[pos])
		if err != nil {
			continue
		}
		list, _ := candidates.([]any)
		Run(c.walk(fn, best, pos, list, 0))
	}
	return best
}

// walk visits the candidates for one argument position as a trampolined
// chain, so long candidate sequences cannot grow the call stack.
func (c *Checker) walk(fn reflect.Value, best []any, pos int, candidates []any, i int) Trampoline[struct{}] {
	if i >= len(candidates) {
		return Done(struct{}{})
	}
	trial := slices.Clone(best)
	trial[pos] = candidates[i]
	if !c.holds(fn, trial) {
		best[pos] = candidates[i]
	}
	return Continue(func() Trampoline[struct{}] {
		return c.walk(fn, best, pos, candidates, i+1)
	})
}
