// Package cnf defines the propositional building blocks shared by the rest of
// the module: propositions, variables, literals, clauses and weighted rules,
// plus the registry that maps domain propositions to the dense integer
// variables a CNF representation needs.
//
// A Registry is created per encoding request and handed explicitly through
// the pipeline; nothing in this package keeps process-wide state.
package cnf
