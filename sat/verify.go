package sat

import "github.com/hammale2003/satcore/cnf"

// Verify checks that the assignment satisfies every clause. It returns the
// index of the first unsatisfied clause, or -1 when all are satisfied.
// Decision procedures are not trusted: every Sat verdict goes through here
// before being reported.
func Verify(clauses []cnf.Clause, assign cnf.Assignment) int {
	for i, clause := range clauses {
		satisfied := false
		for _, lit := range clause {
			if int(lit.Var()) > len(assign) {
				continue
			}
			if assign.Satisfies(lit) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return i
		}
	}
	return -1
}
