// Package sat invokes a decision procedure over a clause set and reports a
// verified verdict. The procedure is a capability injected behind the Solver
// interface: Process shells out to an external DIMACS solver binary, Gini
// runs one in-process. Both are treated as untrusted; any satisfying
// assignment they return is checked against every input clause before being
// reported.
package sat

import (
	"context"
	"fmt"

	"github.com/hammale2003/satcore/cnf"
)

// Status is the verdict of a solve call.
type Status byte

const (
	// Indet means no verdict was reached.
	Indet Status = iota
	// Sat means a satisfying assignment was found and verified.
	Sat
	// Unsat means the clause set was proven unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		return "INDETERMINATE"
	}
}

// A Result is a verdict plus, when Status is Sat, a total assignment over
// variables 1..nbVars.
type Result struct {
	Status     Status
	Assignment cnf.Assignment
}

// Solver is the contract every decision procedure adapter satisfies.
// A trivially satisfiable problem (zero clauses) yields Sat with the all-false
// assignment. Failures of the procedure itself (timeout, crash, output that
// does not verify) are returned as *Error, never as an Unsat result.
type Solver interface {
	Solve(ctx context.Context, clauses []cnf.Clause, nbVars int) (Result, error)
}

// Error reports a failure of the decision procedure, with its diagnostic
// output when available.
type Error struct {
	Reason string
	Output string
}

func (e *Error) Error() string {
	if e.Output == "" {
		return "solver failure: " + e.Reason
	}
	return fmt.Sprintf("solver failure: %s: %s", e.Reason, e.Output)
}

func failuref(output, format string, args ...interface{}) *Error {
	return &Error{Reason: fmt.Sprintf(format, args...), Output: output}
}
