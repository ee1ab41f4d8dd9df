package cnf

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Proposition is an atomic domain fact, such as "vertex A holds color r",
// "cell (3,4) holds digit 7" or a plain named boolean like "it rained".
// Two propositions are the same fact iff they compare equal.
type Proposition string

// A Var identifies a proposition inside one encoding session.
// Vars are dense and start at 1, the way DIMACS expects them.
type Var int

// Pos returns the positive literal for v.
func (v Var) Pos() Lit {
	return Lit(v)
}

// Neg returns the negative literal for v.
func (v Var) Neg() Lit {
	return Lit(-v)
}

// A Lit is a variable with a polarity, encoded as a signed integer: the CNF
// literal -3 is simply Lit(-3). The zero value is not a valid literal.
type Lit int

// Var returns the variable of l.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPositive is true iff l affirms its variable.
func (l Lit) IsPositive() bool {
	return l > 0
}

// Negation returns -l.
func (l Lit) Negation() Lit {
	return -l
}

func (l Lit) String() string {
	return strconv.Itoa(int(l))
}

// A Clause is a disjunction of literals. Order is irrelevant.
type Clause []Lit

// ErrEmptyClause is returned when an empty clause is added to a clause set.
// An empty clause encodes an unconditionally unsatisfiable constraint and is
// always an encoding bug, never a legitimate input.
var ErrEmptyClause = errors.New("empty clause")

// A ClauseSet is a conjunction of clauses. The zero value is ready to use and
// represents the trivially satisfiable empty conjunction.
type ClauseSet struct {
	clauses []Clause
	maxVar  Var
}

// Add appends the clause made of the given literals.
// It rejects empty clauses with ErrEmptyClause.
func (cs *ClauseSet) Add(lits ...Lit) error {
	if len(lits) == 0 {
		return ErrEmptyClause
	}
	clause := make(Clause, len(lits))
	copy(clause, lits)
	for _, l := range clause {
		if v := l.Var(); v > cs.maxVar {
			cs.maxVar = v
		}
	}
	cs.clauses = append(cs.clauses, clause)
	return nil
}

// Clauses returns the clauses added so far. The returned slice is owned by
// the set and must not be mutated.
func (cs *ClauseSet) Clauses() []Clause {
	return cs.clauses
}

// Len returns the number of clauses.
func (cs *ClauseSet) Len() int {
	return len(cs.clauses)
}

// MaxVar returns the highest variable referenced by any clause, or 0 when the
// set is empty.
func (cs *ClauseSet) MaxVar() Var {
	return cs.maxVar
}

// An Assignment is a total binding of variables 1..len(a); index i-1 holds
// the value of variable i.
type Assignment []bool

// Value returns the binding of v.
func (a Assignment) Value(v Var) bool {
	return a[v-1]
}

// Satisfies tells whether the literal holds under a.
func (a Assignment) Satisfies(l Lit) bool {
	return a.Value(l.Var()) == l.IsPositive()
}

// Observations is a partial assignment over propositions. An interpretation
// is compatible with an observation set iff it agrees with it on every
// observed proposition.
type Observations map[Proposition]bool
