// Command satcore encodes discrete constraint problems (graph coloring,
// Sudoku, weighted rule sets) as CNF, hands them to a SAT solver and prints
// the decoded result. The solver is either an external DIMACS binary
// (--solver) or the in-process one.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hammale2003/satcore/abduce"
	"github.com/hammale2003/satcore/cnf"
	"github.com/hammale2003/satcore/encode"
	"github.com/hammale2003/satcore/sat"
)

var (
	solverPath string
	timeout    time.Duration
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:          "satcore",
		Short:        "constraint encoding and weighted abduction over a SAT solver",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&solverPath, "solver", "", "path to an external DIMACS solver binary (default: in-process)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "solver time budget")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(solveCmd(), colorCmd(), sudokuCmd(), explainCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSolver() sat.Solver {
	if solverPath != "" {
		return sat.NewProcess(solverPath)
	}
	return sat.Gini{}
}

func solveContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve file.cnf",
		Short: "solve a raw DIMACS CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			clauses, nbVars, err := sat.ParseDimacs(f)
			if err != nil {
				return err
			}
			ctx, cancel := solveContext()
			defer cancel()
			res, err := newSolver().Solve(ctx, clauses, nbVars)
			if err != nil {
				return err
			}
			fmt.Printf("s %s\n", res.Status)
			if res.Status == sat.Sat {
				lits := make([]string, 0, nbVars+1)
				for v := cnf.Var(1); int(v) <= nbVars; v++ {
					if res.Assignment.Value(v) {
						lits = append(lits, v.Pos().String())
					} else {
						lits = append(lits, v.Neg().String())
					}
				}
				lits = append(lits, "0")
				fmt.Printf("v %s\n", strings.Join(lits, " "))
			}
			return nil
		},
	}
}

// dumpDimacs writes the encoding as a readable CNF file: one comment line per
// proposition, then the clauses.
func dumpDimacs(path string, enc *encode.Encoding) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := sat.WriteMapping(f, enc.Registry); err != nil {
		return err
	}
	return sat.WriteDimacs(f, enc.Clauses.Clauses(), enc.NbVars())
}

func colorCmd() *cobra.Command {
	var file, dimacs string
	cmd := &cobra.Command{
		Use:   "color",
		Short: "color a graph described in a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pb coloringFile
			if err := loadYAML(file, &pb); err != nil {
				return err
			}
			edges, err := pb.edges()
			if err != nil {
				return err
			}
			enc, err := encode.GraphColoring(pb.Vertices, edges, pb.Colors)
			if err != nil {
				return err
			}
			if dimacs != "" {
				if err := dumpDimacs(dimacs, enc); err != nil {
					return err
				}
			}
			ctx, cancel := solveContext()
			defer cancel()
			res, err := newSolver().Solve(ctx, enc.Clauses.Clauses(), enc.NbVars())
			if err != nil {
				return err
			}
			if res.Status != sat.Sat {
				fmt.Println("UNSATISFIABLE")
				return nil
			}
			phi, err := encode.DecodeColoring(res.Assignment, enc.Registry, pb.Vertices, pb.Colors)
			if err != nil {
				return err
			}
			for _, v := range pb.Vertices {
				fmt.Printf("%s: %s\n", v, phi[v])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "problem description (YAML)")
	cmd.Flags().StringVar(&dimacs, "dimacs", "", "also write the generated CNF to this file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func sudokuCmd() *cobra.Command {
	var file, dimacs string
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "solve a Sudoku grid described in a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pb sudokuFile
			if err := loadYAML(file, &pb); err != nil {
				return err
			}
			enc, err := encode.Sudoku(pb.Grid)
			if err != nil {
				return err
			}
			if dimacs != "" {
				if err := dumpDimacs(dimacs, enc); err != nil {
					return err
				}
			}
			ctx, cancel := solveContext()
			defer cancel()
			res, err := newSolver().Solve(ctx, enc.Clauses.Clauses(), enc.NbVars())
			if err != nil {
				return err
			}
			if res.Status != sat.Sat {
				fmt.Println("UNSATISFIABLE")
				return nil
			}
			grid, err := encode.DecodeSudoku(res.Assignment, enc.Registry, len(pb.Grid))
			if err != nil {
				return err
			}
			for _, row := range grid {
				cells := make([]string, len(row))
				for i, d := range row {
					cells[i] = fmt.Sprintf("%d", d)
				}
				fmt.Println(strings.Join(cells, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "grid description (YAML)")
	cmd.Flags().StringVar(&dimacs, "dimacs", "", "also write the generated CNF to this file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func explainCmd() *cobra.Command {
	var (
		file    string
		k       int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "rank the best explanations of observations under a weighted rule set",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pb rulesFile
			if err := loadYAML(file, &pb); err != nil {
				return err
			}
			rules, err := pb.rules()
			if err != nil {
				return err
			}
			if k == 0 {
				k = pb.K
			}
			if k <= 0 {
				k = 1
			}
			engine := abduce.New(rules)
			engine.Workers = workers
			engine.Weighted = sat.GiniWeighted{}
			ctx, cancel := solveContext()
			defer cancel()
			best, err := engine.BestExplanations(ctx, pb.observations(), k)
			if err != nil {
				return err
			}
			props := engine.Registry().Propositions()
			for rank, ex := range best {
				bindings := make([]string, len(props))
				for i, p := range props {
					bindings[i] = fmt.Sprintf("%s=%t", p, ex.Assignment[i])
				}
				sort.Strings(bindings)
				fmt.Printf("%d. karma %d: %s\n", rank+1, ex.Karma, strings.Join(bindings, " "))
			}
			if len(best) == 0 {
				fmt.Println("no compatible interpretation")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "rule set description (YAML)")
	cmd.Flags().IntVarP(&k, "best", "k", 0, "number of explanations to return")
	cmd.Flags().IntVar(&workers, "workers", 1, "enumeration goroutines")
	cmd.MarkFlagRequired("file")
	return cmd
}
