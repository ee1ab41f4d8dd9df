package sat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammale2003/satcore/cnf"
)

func TestWriteDimacs(t *testing.T) {
	clauses := []cnf.Clause{{1, -2, 3}, {-1}, {2, 3}}
	var buf bytes.Buffer
	require.NoError(t, WriteDimacs(&buf, clauses, 3))
	assert.Equal(t, "p cnf 3 3\n1 -2 3 0\n-1 0\n2 3 0\n", buf.String())
}

func TestWriteMapping(t *testing.T) {
	reg := cnf.NewRegistry()
	reg.Intern("A=r")
	reg.Intern("A=g")
	var buf bytes.Buffer
	require.NoError(t, WriteMapping(&buf, reg))
	assert.Equal(t, "c 1 = A=r\nc 2 = A=g\n", buf.String())
}

func TestParseDimacs(t *testing.T) {
	in := `c a comment
p cnf 5 3
1 -2 3 0
-1
0
2 3 0
%
`
	clauses, nbVars, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 5, nbVars)
	require.Len(t, clauses, 3)
	assert.Equal(t, cnf.Clause{1, -2, 3}, clauses[0])
	assert.Equal(t, cnf.Clause{-1}, clauses[1])
	assert.Equal(t, cnf.Clause{2, 3}, clauses[2])
}

func TestParseDimacsWithoutProblemLine(t *testing.T) {
	clauses, nbVars, err := ParseDimacs(strings.NewReader("1 -4 0\n2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, nbVars)
	assert.Len(t, clauses, 2)
}

func TestParseDimacsErrors(t *testing.T) {
	_, _, err := ParseDimacs(strings.NewReader("p cnf two 3\n"))
	assert.Error(t, err)

	_, _, err = ParseDimacs(strings.NewReader("p cnf 2 1\n1 x 0\n"))
	assert.Error(t, err)

	_, _, err = ParseDimacs(strings.NewReader("p cnf 2 1\n0\n"))
	assert.ErrorIs(t, err, cnf.ErrEmptyClause)
}

func TestParseOutputSat(t *testing.T) {
	out := "c solved\ns SATISFIABLE\nv 1 -2 0\nv 3 0\n"
	status, assign, err := parseOutput(out, 3)
	require.NoError(t, err)
	assert.Equal(t, Sat, status)
	assert.Equal(t, cnf.Assignment{true, false, true}, assign)
}

func TestParseOutputUnsat(t *testing.T) {
	status, assign, err := parseOutput("s UNSATISFIABLE\n", 3)
	require.NoError(t, err)
	assert.Equal(t, Unsat, status)
	assert.Nil(t, assign)
}

func TestParseOutputGarbage(t *testing.T) {
	status, _, err := parseOutput("segmentation fault\n", 3)
	require.NoError(t, err)
	assert.Equal(t, Indet, status)

	_, _, err = parseOutput("s SATISFIABLE\nv 1 9 0\n", 3)
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	clauses := []cnf.Clause{{1, 2}, {-1, 2}}
	assert.Equal(t, -1, Verify(clauses, cnf.Assignment{false, true}))
	assert.Equal(t, 1, Verify(clauses, cnf.Assignment{true, false}))
}
