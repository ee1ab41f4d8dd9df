package sat

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/hammale2003/satcore/cnf"
)

// Gini runs the gini solver in-process behind the same contract as Process.
// It is the default decision procedure when no external binary is configured.
type Gini struct{}

// Solve implements Solver.
func (Gini) Solve(ctx context.Context, clauses []cnf.Clause, nbVars int) (Result, error) {
	g := gini.NewV(nbVars)
	for _, clause := range clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}

	var outcome int
	if deadline, ok := ctx.Deadline(); ok {
		outcome = g.Try(time.Until(deadline))
	} else {
		outcome = g.Solve()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, failuref("", "in-process solve interrupted: %v", err)
	}
	switch outcome {
	case 1:
		assign := make(cnf.Assignment, nbVars)
		for v := 1; v <= nbVars; v++ {
			assign[v-1] = g.Value(z.Var(v).Pos())
		}
		if bad := Verify(clauses, assign); bad >= 0 {
			return Result{}, failuref("", "in-process assignment fails validation on clause %d", bad)
		}
		return Result{Status: Sat, Assignment: assign}, nil
	case -1:
		return Result{Status: Unsat}, nil
	default:
		return Result{}, failuref("", "in-process solve gave no verdict")
	}
}
