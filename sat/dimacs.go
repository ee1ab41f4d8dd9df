package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hammale2003/satcore/cnf"
)

// WriteDimacs writes the clause set in DIMACS CNF format: the problem line,
// then one line per clause listing signed literals terminated by 0.
func WriteDimacs(w io.Writer, clauses []cnf.Clause, nbVars int) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", nbVars, len(clauses)); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	for _, clause := range clauses {
		strClause := make([]string, len(clause)+1)
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(int(lit))
		}
		strClause[len(clause)] = "0"
		if _, err := io.WriteString(w, strings.Join(strClause, " ")+"\n"); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	return nil
}

// WriteMapping writes one DIMACS comment line per interned proposition, e.g.
// "c 1 = A=r", so a human can read the generated file. Comments must precede
// the problem line.
func WriteMapping(w io.Writer, reg *cnf.Registry) error {
	for i, p := range reg.Propositions() {
		if _, err := fmt.Fprintf(w, "c %d = %s\n", i+1, p); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	return nil
}

// ParseDimacs reads a DIMACS CNF problem: comment lines, an optional problem
// line, and clauses of signed literals terminated by 0. A clause may span
// several lines. The declared variable count is honored when it exceeds the
// highest literal seen.
func ParseDimacs(r io.Reader) ([]cnf.Clause, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var (
		clauses []cnf.Clause
		current cnf.Clause
		nbVars  int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, 0, errors.Errorf("line %d: invalid problem line %q", lineNo, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, 0, errors.Errorf("line %d: invalid variable count %q", lineNo, fields[2])
			}
			nbVars = n
			continue
		}
		for _, tok := range strings.Fields(line) {
			val, err := strconv.Atoi(tok)
			if err != nil {
				return nil, 0, errors.Errorf("line %d: invalid literal %q", lineNo, tok)
			}
			if val == 0 {
				if len(current) == 0 {
					return nil, 0, errors.Wrapf(cnf.ErrEmptyClause, "line %d", lineNo)
				}
				clauses = append(clauses, current)
				current = nil
				continue
			}
			current = append(current, cnf.Lit(val))
			if v := int(cnf.Lit(val).Var()); v > nbVars {
				nbVars = v
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "could not read DIMACS input")
	}
	if len(current) != 0 {
		clauses = append(clauses, current)
	}
	return clauses, nbVars, nil
}

// parseOutput interprets the textual output of an external solver: a status
// line "s SATISFIABLE"/"s UNSATISFIABLE" and, for satisfiable instances,
// "v" lines listing signed literals terminated by 0. Anything else yields an
// Indet status, which the caller reports as a failure.
func parseOutput(out string, nbVars int) (Status, cnf.Assignment, error) {
	status := Indet
	var lits []int
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "s "):
			switch strings.TrimSpace(line[2:]) {
			case "SATISFIABLE":
				status = Sat
			case "UNSATISFIABLE":
				status = Unsat
			}
		case strings.HasPrefix(line, "v "):
			for _, tok := range strings.Fields(line[2:]) {
				val, err := strconv.Atoi(tok)
				if err != nil {
					return Indet, nil, errors.Errorf("invalid literal %q in solver output", tok)
				}
				if val != 0 {
					lits = append(lits, val)
				}
			}
		}
	}
	if status != Sat {
		return status, nil, nil
	}
	assign := make(cnf.Assignment, nbVars)
	for _, val := range lits {
		v := cnf.Lit(val).Var()
		if int(v) > nbVars {
			return Indet, nil, errors.Errorf("solver output references variable %d, problem has %d", v, nbVars)
		}
		assign[v-1] = val > 0
	}
	return Sat, assign, nil
}
