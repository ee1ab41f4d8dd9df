package cnf

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsIdempotent(t *testing.T) {
	r := NewRegistry()
	v1 := r.Intern("A=r")
	v2 := r.Intern("A=v")
	assert.Equal(t, Var(1), v1)
	assert.Equal(t, Var(2), v2)
	assert.Equal(t, v1, r.Intern("A=r"))
	assert.Equal(t, 2, r.Len())
}

func TestResolve(t *testing.T) {
	r := NewRegistry()
	r.Intern("rain")
	p, err := r.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, Proposition("rain"), p)

	_, err = r.Resolve(2)
	assert.True(t, errors.Is(err, ErrUnknownVariable))
	_, err = r.Resolve(0)
	assert.True(t, errors.Is(err, ErrUnknownVariable))
}

func TestClauseSetRejectsEmptyClause(t *testing.T) {
	var cs ClauseSet
	assert.ErrorIs(t, cs.Add(), ErrEmptyClause)
	require.NoError(t, cs.Add(1, -2))
	assert.Equal(t, 1, cs.Len())
	assert.Equal(t, Var(2), cs.MaxVar())
}

func TestLiterals(t *testing.T) {
	l := Var(3).Neg()
	assert.Equal(t, Var(3), l.Var())
	assert.False(t, l.IsPositive())
	assert.Equal(t, Var(3).Pos(), l.Negation())

	a := Assignment{true, false, true}
	assert.True(t, a.Satisfies(Var(1).Pos()))
	assert.True(t, a.Satisfies(Var(2).Neg()))
	assert.False(t, a.Satisfies(l))
}
