package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammale2003/satcore/cnf"
)

func TestRuleSetEmitsImplicationClauses(t *testing.T) {
	rules := []cnf.Rule{
		{If: cnf.Pos("pluie"), Then: cnf.Pos("mouillé"), Penalty: 13},
		{If: cnf.Neg("pluie"), Then: cnf.Neg("mouillé"), Penalty: 5},
	}
	enc, err := RuleSet(rules)
	require.NoError(t, err)

	assert.Equal(t, FamilyRules, enc.Family)
	assert.Equal(t, 2, enc.NbVars())
	require.Equal(t, 2, enc.Clauses.Len())

	clauses := enc.Clauses.Clauses()
	// pluie=1, mouillé=2, in order of first appearance.
	assert.Equal(t, cnf.Clause{-1, 2}, clauses[0])
	assert.Equal(t, cnf.Clause{1, -2}, clauses[1])
}

func TestRuleSetRejectsContradiction(t *testing.T) {
	rules := []cnf.Rule{
		{If: cnf.Pos("p"), Then: cnf.Neg("p"), Penalty: 1},
	}
	_, err := RuleSet(rules)
	assert.ErrorIs(t, err, ErrContradictoryRule)

	rules = []cnf.Rule{
		{If: cnf.Neg("p"), Then: cnf.Pos("p"), Penalty: 1},
	}
	_, err = RuleSet(rules)
	assert.ErrorIs(t, err, ErrContradictoryRule)
}

func TestRuleSetSelfImplicationIsLegal(t *testing.T) {
	// p → p is a tautology, not a contradiction.
	enc, err := RuleSet([]cnf.Rule{{If: cnf.Pos("p"), Then: cnf.Pos("p")}})
	require.NoError(t, err)
	assert.Equal(t, 1, enc.Clauses.Len())
}

func TestRuleSetEmpty(t *testing.T) {
	enc, err := RuleSet(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, enc.NbVars())
	assert.Equal(t, 0, enc.Clauses.Len())
}
