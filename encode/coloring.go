package encode

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hammale2003/satcore/cnf"
)

// ColorProp is the proposition "vertex holds color".
func ColorProp(vertex, color string) cnf.Proposition {
	return cnf.Proposition(vertex + "=" + color)
}

// GraphColoring encodes the k-coloring of the graph (vertices, edges) with
// the given palette:
//
//   - every vertex holds at least one color;
//   - no vertex holds two colors at once;
//   - no edge joins two vertices of the same color.
//
// Edge endpoints must be declared vertices.
func GraphColoring(vertices []string, edges [][2]string, palette []string) (*Encoding, error) {
	if len(vertices) == 0 {
		return nil, errors.Wrap(ErrEmptyDomain, "no vertices")
	}
	if len(palette) == 0 {
		return nil, errors.Wrap(ErrEmptyDomain, "no colors")
	}
	declared := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		declared[v] = true
	}
	for _, e := range edges {
		for _, end := range e {
			if !declared[end] {
				return nil, errors.Wrapf(ErrUnknownVertex, "edge (%s,%s) references %q", e[0], e[1], end)
			}
		}
	}

	reg := cnf.NewRegistry()
	var cs cnf.ClauseSet

	// At least one color per vertex.
	for _, v := range vertices {
		clause := make([]cnf.Lit, len(palette))
		for i, k := range palette {
			clause[i] = reg.Lit(ColorProp(v, k))
		}
		if err := cs.Add(clause...); err != nil {
			return nil, err
		}
	}
	// At most one color per vertex, pairwise.
	for _, v := range vertices {
		for i := 0; i < len(palette)-1; i++ {
			for j := i + 1; j < len(palette); j++ {
				l1 := reg.Lit(ColorProp(v, palette[i]))
				l2 := reg.Lit(ColorProp(v, palette[j]))
				if err := cs.Add(l1.Negation(), l2.Negation()); err != nil {
					return nil, err
				}
			}
		}
	}
	// Adjacent vertices never share a color.
	for _, e := range edges {
		for _, k := range palette {
			lu := reg.Lit(ColorProp(e[0], k))
			lv := reg.Lit(ColorProp(e[1], k))
			if err := cs.Add(lu.Negation(), lv.Negation()); err != nil {
				return nil, err
			}
		}
	}

	return &Encoding{Family: FamilyColoring, Registry: reg, Clauses: &cs}, nil
}

// DecodeColoring maps a satisfying assignment back to a vertex→color map.
func DecodeColoring(assign cnf.Assignment, reg *cnf.Registry, vertices, palette []string) (map[string]string, error) {
	phi := make(map[string]string, len(vertices))
	for _, v := range vertices {
		for _, k := range palette {
			id, ok := reg.Lookup(ColorProp(v, k))
			if !ok {
				return nil, errors.Wrapf(ErrIncompleteAssignment, "proposition %s never interned", ColorProp(v, k))
			}
			if assign.Value(id) {
				phi[v] = k
				break
			}
		}
		if _, ok := phi[v]; !ok {
			return nil, errors.Wrap(ErrIncompleteAssignment, fmt.Sprintf("vertex %s holds no color", v))
		}
	}
	return phi, nil
}
