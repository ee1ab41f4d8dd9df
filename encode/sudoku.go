package encode

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/hammale2003/satcore/cnf"
)

// CellProp is the proposition "cell (row,col) holds digit". Rows, columns and
// digits are 1-based.
func CellProp(row, col, digit int) cnf.Proposition {
	return cnf.Proposition(fmt.Sprintf("r%dc%d=%d", row, col, digit))
}

// Sudoku encodes a partially filled n×n grid, n a perfect square, 0 denoting
// a blank cell:
//
//   - every cell holds exactly one digit (at least one, plus pairwise
//     exclusion);
//   - every row, column and √n×√n block holds each digit at least once and at
//     most once (pairwise exclusion per group per digit);
//   - every pre-filled cell is forced by a unit clause.
func Sudoku(grid [][]int) (*Encoding, error) {
	n := len(grid)
	if n == 0 {
		return nil, errors.Wrap(ErrMalformedGrid, "empty grid")
	}
	root := int(math.Sqrt(float64(n)))
	if root*root != n {
		return nil, errors.Wrapf(ErrMalformedGrid, "size %d is not a perfect square", n)
	}
	for i, row := range grid {
		if len(row) != n {
			return nil, errors.Wrapf(ErrMalformedGrid, "row %d has %d cells, want %d", i+1, len(row), n)
		}
		for j, val := range row {
			if val < 0 || val > n {
				return nil, errors.Wrapf(ErrOutOfRange, "cell (%d,%d) holds %d, want 0..%d", i+1, j+1, val, n)
			}
		}
	}

	reg := cnf.NewRegistry()
	var cs cnf.ClauseSet
	lit := func(row, col, digit int) cnf.Lit {
		return reg.Lit(CellProp(row, col, digit))
	}

	// Exactly one digit per cell.
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			clause := make([]cnf.Lit, n)
			for d := 1; d <= n; d++ {
				clause[d-1] = lit(r, c, d)
			}
			if err := cs.Add(clause...); err != nil {
				return nil, err
			}
			for d1 := 1; d1 < n; d1++ {
				for d2 := d1 + 1; d2 <= n; d2++ {
					if err := cs.Add(lit(r, c, d1).Negation(), lit(r, c, d2).Negation()); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// groups collects the cells of every row, column and block.
	var groups [][][2]int
	for r := 1; r <= n; r++ {
		row := make([][2]int, 0, n)
		for c := 1; c <= n; c++ {
			row = append(row, [2]int{r, c})
		}
		groups = append(groups, row)
	}
	for c := 1; c <= n; c++ {
		col := make([][2]int, 0, n)
		for r := 1; r <= n; r++ {
			col = append(col, [2]int{r, c})
		}
		groups = append(groups, col)
	}
	for br := 0; br < root; br++ {
		for bc := 0; bc < root; bc++ {
			block := make([][2]int, 0, n)
			for r := 1; r <= root; r++ {
				for c := 1; c <= root; c++ {
					block = append(block, [2]int{br*root + r, bc*root + c})
				}
			}
			groups = append(groups, block)
		}
	}

	// Each digit appears exactly once per group.
	for _, cells := range groups {
		for d := 1; d <= n; d++ {
			clause := make([]cnf.Lit, len(cells))
			for i, cell := range cells {
				clause[i] = lit(cell[0], cell[1], d)
			}
			if err := cs.Add(clause...); err != nil {
				return nil, err
			}
			for i := 0; i < len(cells)-1; i++ {
				for j := i + 1; j < len(cells); j++ {
					l1 := lit(cells[i][0], cells[i][1], d)
					l2 := lit(cells[j][0], cells[j][1], d)
					if err := cs.Add(l1.Negation(), l2.Negation()); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// Pre-filled cells.
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			if d := grid[r-1][c-1]; d != 0 {
				if err := cs.Add(lit(r, c, d)); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Encoding{Family: FamilySudoku, Registry: reg, Clauses: &cs}, nil
}

// DecodeSudoku maps a satisfying assignment back to a filled n×n grid.
func DecodeSudoku(assign cnf.Assignment, reg *cnf.Registry, n int) ([][]int, error) {
	grid := make([][]int, n)
	for r := 1; r <= n; r++ {
		grid[r-1] = make([]int, n)
		for c := 1; c <= n; c++ {
			for d := 1; d <= n; d++ {
				id, ok := reg.Lookup(CellProp(r, c, d))
				if !ok {
					return nil, errors.Wrapf(ErrIncompleteAssignment, "proposition %s never interned", CellProp(r, c, d))
				}
				if assign.Value(id) {
					grid[r-1][c-1] = d
					break
				}
			}
			if grid[r-1][c-1] == 0 {
				return nil, errors.Wrapf(ErrIncompleteAssignment, "cell (%d,%d) holds no digit", r, c)
			}
		}
	}
	return grid, nil
}
