package encode

import (
	"github.com/pkg/errors"

	"github.com/hammale2003/satcore/cnf"
)

// RuleSet compiles rules to plain satisfiability, one implication clause
// (¬antecedent ∨ consequent) per rule. Penalties are ignored here: this
// encoding serves deduction and consistency checks, not weighted reasoning.
//
// A rule whose antecedent and consequent are the same proposition with
// opposite polarity collapses to a degenerate repeated-literal unit; such a
// rule is rejected with ErrContradictoryRule before any solver runs.
func RuleSet(rules []cnf.Rule) (*Encoding, error) {
	reg := cnf.NewRegistry()
	var cs cnf.ClauseSet
	for _, r := range rules {
		ifLit := atomLit(reg, r.If)
		thenLit := atomLit(reg, r.Then)
		if r.If.Prop == r.Then.Prop && r.If.Negated != r.Then.Negated {
			return nil, errors.Wrapf(ErrContradictoryRule, "rule %s", r)
		}
		if err := cs.Add(ifLit.Negation(), thenLit); err != nil {
			return nil, err
		}
	}
	return &Encoding{Family: FamilyRules, Registry: reg, Clauses: &cs}, nil
}

// atomLit interns the atom's proposition and returns the literal the atom
// denotes.
func atomLit(reg *cnf.Registry, a cnf.Atom) cnf.Lit {
	l := reg.Lit(a.Prop)
	if a.Negated {
		return l.Negation()
	}
	return l
}
