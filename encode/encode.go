// Package encode translates structured problem descriptions into CNF clause
// sets over a fresh registry, and maps satisfying assignments back to domain
// results. One encoder/decoder pair exists per problem family.
package encode

import (
	"github.com/pkg/errors"

	"github.com/hammale2003/satcore/cnf"
)

// Family tags the problem family an encoding belongs to. Callers dispatch on
// it to pick the matching decoder.
type Family byte

const (
	// FamilyColoring is the graph coloring family.
	FamilyColoring Family = iota
	// FamilySudoku is the n×n grid family.
	FamilySudoku
	// FamilyRules is the generic implication rule set family.
	FamilyRules
)

func (f Family) String() string {
	switch f {
	case FamilyColoring:
		return "coloring"
	case FamilySudoku:
		return "sudoku"
	case FamilyRules:
		return "rules"
	default:
		return "unknown"
	}
}

// An Encoding is the output of one encoder: the clause set plus the registry
// populated with every proposition the problem mentions. Both are owned by
// the request that produced them and are discarded after decoding.
type Encoding struct {
	Family   Family
	Registry *cnf.Registry
	Clauses  *cnf.ClauseSet
}

// NbVars returns the number of variables the encoding allocated. This can
// exceed Clauses.MaxVar when some interned propositions appear in no clause.
func (e *Encoding) NbVars() int {
	return e.Registry.Len()
}

// Errors of the encoding class: the problem description itself is malformed.
// They are detected before any solver is invoked and are recoverable by
// fixing the input.
var (
	ErrEmptyDomain       = errors.New("empty vertex or color set")
	ErrUnknownVertex     = errors.New("unknown vertex")
	ErrMalformedGrid     = errors.New("malformed grid")
	ErrOutOfRange        = errors.New("value out of range")
	ErrContradictoryRule = errors.New("rule contradicts itself")
)

// ErrIncompleteAssignment is returned by decoders when a proposition required
// by the output shape was never interned. It indicates an encoder bug, not a
// runtime condition.
var ErrIncompleteAssignment = errors.New("incomplete assignment")
