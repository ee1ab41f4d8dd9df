package sat

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/hammale2003/satcore/cnf"
)

// A WeightedClause is a clause with a violation price. Weight 0 marks a hard
// clause that every solution must satisfy; a positive weight marks a soft
// clause whose violation costs that much.
type WeightedClause struct {
	Lits   []cnf.Lit
	Weight int
}

// Hard returns a clause every solution must satisfy.
func Hard(lits ...cnf.Lit) WeightedClause {
	return WeightedClause{Lits: lits}
}

// Soft returns a clause whose violation costs weight.
func Soft(weight int, lits ...cnf.Lit) WeightedClause {
	return WeightedClause{Lits: lits, Weight: weight}
}

// A WeightedResult carries, for satisfiable instances, an assignment of
// minimal total violated weight and that minimal cost.
type WeightedResult struct {
	Status     Status
	Assignment cnf.Assignment
	Cost       int
}

// WeightedSolver minimizes the total weight of violated soft clauses subject
// to the hard clauses: the weighted MAX-SAT companion of Solver. Unsat means
// the hard clauses alone are unsatisfiable.
type WeightedSolver interface {
	SolveWeighted(ctx context.Context, clauses []WeightedClause, nbVars int) (WeightedResult, error)
}

// GiniWeighted minimizes with gini: each soft clause gets a relaxation
// literal, the relaxation literals are replicated by weight into a sorting
// network, and the cost bound is raised until the instance becomes
// satisfiable.
type GiniWeighted struct{}

// SolveWeighted implements WeightedSolver.
func (GiniWeighted) SolveWeighted(ctx context.Context, clauses []WeightedClause, nbVars int) (WeightedResult, error) {
	g := gini.New()
	c := logic.NewCCap(2 * (nbVars + len(clauses)))

	// Problem variables live in the circuit so that relaxation literals and
	// sorting-network nodes share one numbering with the solver.
	inputs := make([]z.Lit, nbVars+1)
	for v := 1; v <= nbVars; v++ {
		inputs[v] = c.Lit()
	}
	lit := func(l cnf.Lit) z.Lit {
		m := inputs[l.Var()]
		if !l.IsPositive() {
			m = m.Not()
		}
		return m
	}

	var relax []z.Lit
	for _, clause := range clauses {
		for _, l := range clause.Lits {
			g.Add(lit(l))
		}
		if clause.Weight > 0 {
			r := c.Lit()
			g.Add(r)
			for i := 0; i < clause.Weight; i++ {
				relax = append(relax, r)
			}
		}
		g.Add(z.LitNull)
	}
	c.ToCnf(g)

	extract := func() cnf.Assignment {
		assign := make(cnf.Assignment, nbVars)
		for v := 1; v <= nbVars; v++ {
			assign[v-1] = g.Value(inputs[v])
		}
		return assign
	}

	if len(relax) == 0 {
		switch g.Solve() {
		case 1:
			return WeightedResult{Status: Sat, Assignment: extract()}, nil
		case -1:
			return WeightedResult{Status: Unsat}, nil
		default:
			return WeightedResult{}, failuref("", "weighted solve gave no verdict")
		}
	}

	// Nodes emitted by ToCnf are marked so that only the sorting network is
	// translated below.
	clen := c.Len()
	cs := c.CardSort(relax)
	marks := make([]int8, clen, c.Len())
	for i := range marks {
		marks[i] = 1
	}
	for w := 0; w <= cs.N(); w++ {
		marks, _ = c.CnfSince(g, marks, cs.Leq(w))
	}

	for w := 0; w <= cs.N(); w++ {
		if err := ctx.Err(); err != nil {
			return WeightedResult{}, failuref("", "weighted solve interrupted: %v", err)
		}
		g.Assume(cs.Leq(w))
		switch g.Solve() {
		case 1:
			return WeightedResult{Status: Sat, Assignment: extract(), Cost: w}, nil
		case -1:
			// Cost bound too tight; raise it.
		default:
			return WeightedResult{}, failuref("", "weighted solve gave no verdict")
		}
	}
	return WeightedResult{Status: Unsat}, nil
}
