package cnf

import "github.com/pkg/errors"

// ErrUnknownVariable is returned by Resolve for a variable that was never
// interned in this registry. It signals an internal inconsistency between an
// encoder and a decoder, not a bad input.
var ErrUnknownVariable = errors.New("unknown variable")

// A Registry owns the bidirectional mapping between propositions and
// variables for one encoding session. It is append-only: variables never
// repoint to a different proposition.
type Registry struct {
	index map[Proposition]Var
	props []Proposition
}

// NewRegistry returns an empty registry. The first interned proposition gets
// variable 1.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Proposition]Var)}
}

// Intern returns the variable bound to p, allocating the next unused one if p
// was never seen. Interning the same proposition twice yields the same
// variable.
func (r *Registry) Intern(p Proposition) Var {
	if v, ok := r.index[p]; ok {
		return v
	}
	r.props = append(r.props, p)
	v := Var(len(r.props))
	r.index[p] = v
	return v
}

// Lit interns p and returns its positive literal.
func (r *Registry) Lit(p Proposition) Lit {
	return r.Intern(p).Pos()
}

// Lookup returns the variable bound to p without interning it.
func (r *Registry) Lookup(p Proposition) (Var, bool) {
	v, ok := r.index[p]
	return v, ok
}

// Resolve maps a variable back to its proposition.
func (r *Registry) Resolve(v Var) (Proposition, error) {
	if v < 1 || int(v) > len(r.props) {
		return "", errors.Wrapf(ErrUnknownVariable, "variable %d", v)
	}
	return r.props[v-1], nil
}

// Len returns the number of interned propositions, which is also the highest
// allocated variable.
func (r *Registry) Len() int {
	return len(r.props)
}

// Propositions returns every interned proposition in allocation order.
// The returned slice is owned by the registry.
func (r *Registry) Propositions() []Proposition {
	return r.props
}
