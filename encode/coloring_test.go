package encode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammale2003/satcore/cnf"
	"github.com/hammale2003/satcore/sat"
)

func TestGraphColoringClauseShape(t *testing.T) {
	vertices := []string{"A", "B", "C"}
	edges := [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}
	palette := []string{"r", "g", "b"}

	enc, err := GraphColoring(vertices, edges, palette)
	require.NoError(t, err)

	assert.Equal(t, FamilyColoring, enc.Family)
	assert.Equal(t, 9, enc.NbVars())
	// 3 at-least-one, 3*3 per-vertex exclusions, 3*3 edge conflicts.
	assert.Equal(t, 21, enc.Clauses.Len())
}

func TestGraphColoringRejectsBadInput(t *testing.T) {
	_, err := GraphColoring(nil, nil, []string{"r"})
	assert.ErrorIs(t, err, ErrEmptyDomain)

	_, err = GraphColoring([]string{"A"}, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDomain)

	_, err = GraphColoring([]string{"A"}, [][2]string{{"A", "Z"}}, []string{"r"})
	assert.ErrorIs(t, err, ErrUnknownVertex)
}

func TestGraphColoringSolveAndDecode(t *testing.T) {
	vertices := []string{"A", "B", "C", "D"}
	edges := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}}
	palette := []string{"r", "g", "b"}

	enc, err := GraphColoring(vertices, edges, palette)
	require.NoError(t, err)

	res, err := sat.Gini{}.Solve(context.Background(), enc.Clauses.Clauses(), enc.NbVars())
	require.NoError(t, err)
	require.Equal(t, sat.Sat, res.Status)

	phi, err := DecodeColoring(res.Assignment, enc.Registry, vertices, palette)
	require.NoError(t, err)
	require.Len(t, phi, len(vertices))
	for _, e := range edges {
		assert.NotEqual(t, phi[e[0]], phi[e[1]], "edge (%s,%s) shares a color", e[0], e[1])
	}
}

func TestGraphColoringUnsat(t *testing.T) {
	// A triangle needs three colors.
	vertices := []string{"A", "B", "C"}
	edges := [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}

	enc, err := GraphColoring(vertices, edges, []string{"r", "g"})
	require.NoError(t, err)

	res, err := sat.Gini{}.Solve(context.Background(), enc.Clauses.Clauses(), enc.NbVars())
	require.NoError(t, err)
	assert.Equal(t, sat.Unsat, res.Status)
}

func TestDecodeColoringIncomplete(t *testing.T) {
	enc, err := GraphColoring([]string{"A"}, nil, []string{"r", "g"})
	require.NoError(t, err)

	// Neither color holds: the assignment cannot be decoded.
	assign := make(cnf.Assignment, enc.NbVars())
	_, err = DecodeColoring(assign, enc.Registry, []string{"A"}, []string{"r", "g"})
	assert.ErrorIs(t, err, ErrIncompleteAssignment)
}
