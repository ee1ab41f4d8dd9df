package abduce

import (
	"context"

	"github.com/hammale2003/satcore/cnf"
	"github.com/hammale2003/satcore/sat"
)

// bestViaWeighted reduces the rule set to weighted MAX-SAT and asks the
// weighted solver for successive optima: each rule becomes a soft clause
// (¬antecedent ∨ consequent) priced at its penalty, observations become hard
// units, and after every optimum a hard blocking clause excludes the found
// interpretation before re-solving. Karma is the negated optimal cost.
//
// Interpretations of equal karma come back in whatever order the solver
// prefers; only the karma ordering is guaranteed on this path.
func (e *Engine) bestViaWeighted(ctx context.Context, obs cnf.Observations, k int) ([]Explanation, error) {
	n := e.reg.Len()
	clauses := make([]sat.WeightedClause, 0, len(e.rules)+len(obs)+k)
	for _, r := range e.rules {
		if r.penalty == 0 {
			// Free to break; it cannot change any karma.
			continue
		}
		clauses = append(clauses, sat.Soft(r.penalty, r.ifLit.Negation(), r.thenLit))
	}
	for _, o := range e.observationMask(obs) {
		lit := o.v.Pos()
		if !o.val {
			lit = o.v.Neg()
		}
		clauses = append(clauses, sat.Hard(lit))
	}

	var found []Explanation
	for len(found) < k {
		res, err := e.Weighted.SolveWeighted(ctx, clauses, n)
		if err != nil {
			return nil, err
		}
		if res.Status != sat.Sat {
			break
		}
		found = append(found, Explanation{Assignment: res.Assignment, Karma: -res.Cost})

		blocking := make([]cnf.Lit, n)
		for v := cnf.Var(1); int(v) <= n; v++ {
			if res.Assignment.Value(v) {
				blocking[v-1] = v.Neg()
			} else {
				blocking[v-1] = v.Pos()
			}
		}
		clauses = append(clauses, sat.Hard(blocking...))
	}
	return found, nil
}
