// Package abduce ranks the interpretations of a weighted rule set. Every
// interpretation is scored by its karma, the negated sum of the penalties of
// the rules it violates: karma 0 means the interpretation is a model of the
// rules, and the closer to 0, the better the explanation.
//
// The exhaustive path enumerates all 2^n interpretations of the
// rule-relevant propositions and is therefore only valid for small n; beyond
// MaxBruteForceVars the engine reduces the rules to weighted MAX-SAT and
// delegates to a sat.WeightedSolver.
package abduce

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/hammale2003/satcore/cnf"
	"github.com/hammale2003/satcore/sat"
)

// MaxBruteForceVars bounds the exhaustive enumeration: 2^20 interpretations
// is the most the brute-force path will walk.
const MaxBruteForceVars = 20

// ErrTooManyVariables is returned when the rule set references more
// propositions than the brute-force path can enumerate and no weighted
// solver was provided.
var ErrTooManyVariables = errors.New("too many variables for exhaustive enumeration")

// An Explanation is an interpretation of the rule-relevant propositions
// together with its karma.
type Explanation struct {
	Assignment cnf.Assignment
	Karma      int
}

// rule is a compiled Rule: both atoms resolved to literals of the engine's
// registry.
type rule struct {
	ifLit   cnf.Lit
	thenLit cnf.Lit
	penalty int
}

// violated reports whether the assignment makes the antecedent true and the
// consequent false.
func (r rule) violated(a cnf.Assignment) bool {
	return a.Satisfies(r.ifLit) && !a.Satisfies(r.thenLit)
}

// Engine evaluates and ranks interpretations of one rule set. It owns the
// registry of the rule-relevant propositions, interned in order of first
// appearance, and never mutates the rules it was built from.
type Engine struct {
	reg   *cnf.Registry
	rules []rule

	// Workers shards the enumeration across that many goroutines when > 1.
	// The result is identical to the sequential enumeration.
	Workers int
	// Weighted, when set, handles rule sets too large to enumerate.
	Weighted sat.WeightedSolver
}

// New compiles the rule set into an engine.
func New(rules []cnf.Rule) *Engine {
	e := &Engine{reg: cnf.NewRegistry()}
	for _, r := range rules {
		e.rules = append(e.rules, rule{
			ifLit:   atomLit(e.reg, r.If),
			thenLit: atomLit(e.reg, r.Then),
			penalty: r.Penalty,
		})
	}
	return e
}

func atomLit(reg *cnf.Registry, a cnf.Atom) cnf.Lit {
	l := reg.Lit(a.Prop)
	if a.Negated {
		return l.Negation()
	}
	return l
}

// Registry exposes the engine's registry, for building interpretations and
// reading back results.
func (e *Engine) Registry() *cnf.Registry {
	return e.reg
}

// NbVars returns the number of rule-relevant propositions.
func (e *Engine) NbVars() int {
	return e.reg.Len()
}

// Interpret builds a total assignment from per-proposition values. Every
// rule-relevant proposition must be given a value; propositions outside the
// rule set are rejected.
func (e *Engine) Interpret(values map[cnf.Proposition]bool) (cnf.Assignment, error) {
	assign := make(cnf.Assignment, e.reg.Len())
	seen := 0
	for p, val := range values {
		v, ok := e.reg.Lookup(p)
		if !ok {
			return nil, errors.Errorf("proposition %q does not appear in any rule", p)
		}
		assign[v-1] = val
		seen++
	}
	if seen != e.reg.Len() {
		return nil, errors.Errorf("interpretation binds %d of %d propositions", seen, e.reg.Len())
	}
	return assign, nil
}

// Karma returns the negated sum of the penalties of the rules the assignment
// violates. It is always ≤ 0 and equals 0 iff every rule holds as a material
// implication.
func (e *Engine) Karma(assign cnf.Assignment) int {
	karma := 0
	for _, r := range e.rules {
		if r.violated(assign) {
			karma -= r.penalty
		}
	}
	return karma
}

// AnonymousKarma is Karma with every penalty fixed at 1: the negated count of
// violated rules.
func (e *Engine) AnonymousKarma(assign cnf.Assignment) int {
	karma := 0
	for _, r := range e.rules {
		if r.violated(assign) {
			karma--
		}
	}
	return karma
}

// BestExplanations returns the k interpretations of the rule-relevant
// propositions that are compatible with the observations and have the
// highest karma, best first. Ties keep enumeration order, so the output is
// deterministic. Fewer than k compatible interpretations yield all of them;
// observations compatible with nothing yield an empty list, not an error.
//
// Observations about propositions that appear in no rule constrain nothing
// and are ignored.
func (e *Engine) BestExplanations(ctx context.Context, obs cnf.Observations, k int) ([]Explanation, error) {
	if k <= 0 {
		return nil, nil
	}
	if e.reg.Len() > MaxBruteForceVars {
		if e.Weighted == nil {
			return nil, errors.Wrapf(ErrTooManyVariables, "%d propositions, limit %d", e.reg.Len(), MaxBruteForceVars)
		}
		return e.bestViaWeighted(ctx, obs, k)
	}

	fixed := e.observationMask(obs)
	all, err := e.enumerate(ctx, fixed)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Karma > all[j].Karma
	})
	if len(all) > k {
		all = all[:k]
	}
	return all, nil
}

// observation is a variable pinned to a value.
type observation struct {
	v   cnf.Var
	val bool
}

func (e *Engine) observationMask(obs cnf.Observations) []observation {
	var fixed []observation
	for p, val := range obs {
		if v, ok := e.reg.Lookup(p); ok {
			fixed = append(fixed, observation{v: v, val: val})
		}
	}
	return fixed
}
