package cnf

// An Atom is a proposition or its negation, before any variable has been
// allocated for it.
type Atom struct {
	Prop    Proposition
	Negated bool
}

// Pos returns the atom affirming p.
func Pos(p Proposition) Atom {
	return Atom{Prop: p}
}

// Neg returns the atom denying p.
func Neg(p Proposition) Atom {
	return Atom{Prop: p, Negated: true}
}

// Negation returns the logical negation of a.
func (a Atom) Negation() Atom {
	return Atom{Prop: a.Prop, Negated: !a.Negated}
}

// Holds tells whether the atom is true when its proposition has the given
// value.
func (a Atom) Holds(value bool) bool {
	return value != a.Negated
}

func (a Atom) String() string {
	if a.Negated {
		return "¬" + string(a.Prop)
	}
	return string(a.Prop)
}

// A Rule is a material implication with a price: an interpretation violates
// it iff the antecedent is true and the consequent false, and then pays
// Penalty. Penalty must be non-negative; a rule of penalty 0 is free to break.
type Rule struct {
	If      Atom
	Then    Atom
	Penalty int
}

func (r Rule) String() string {
	return r.If.String() + " → " + r.Then.String()
}
