package sat

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hammale2003/satcore/cnf"
)

// Process invokes an external DIMACS solver binary. The clause set is
// serialized to a temporary .cnf file passed as the last argument; the
// binary's standard output is parsed for the usual "s"/"v" lines.
//
// The process runs under the caller's context: on cancellation or timeout it
// is killed, never left running, and the call reports a failure rather than
// an Unsat verdict.
type Process struct {
	Path   string
	Args   []string
	Logger logrus.FieldLogger
}

// NewProcess returns an adapter for the solver binary at path.
func NewProcess(path string, args ...string) *Process {
	return &Process{Path: path, Args: args, Logger: logrus.StandardLogger()}
}

// Solve implements Solver.
func (p *Process) Solve(ctx context.Context, clauses []cnf.Clause, nbVars int) (Result, error) {
	tmp, err := os.CreateTemp("", "satcore-*.cnf")
	if err != nil {
		return Result{}, failuref("", "could not create problem file: %v", err)
	}
	defer os.Remove(tmp.Name())
	werr := WriteDimacs(tmp, clauses, nbVars)
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return Result{}, failuref("", "could not write problem file: %v", werr)
	}

	cmd := exec.CommandContext(ctx, p.Path, append(append([]string{}, p.Args...), tmp.Name())...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	if ctx.Err() != nil {
		return Result{}, failuref(stderr.String(), "solver %s interrupted: %v", p.Path, ctx.Err())
	}

	status, assign, perr := parseOutput(stdout.String(), nbVars)
	if perr != nil {
		return Result{}, failuref(stderr.String(), "could not parse output of %s: %v", p.Path, perr)
	}
	if status == Indet {
		// No verdict. A run error explains it better than the raw output.
		if runErr != nil {
			return Result{}, failuref(stderr.String(), "solver %s: %v", p.Path, runErr)
		}
		return Result{}, failuref(stderr.String(), "solver %s produced no verdict", p.Path)
	}
	if status == Sat {
		if bad := Verify(clauses, assign); bad >= 0 {
			return Result{}, failuref("", "assignment from %s fails validation on clause %d", p.Path, bad)
		}
	}
	p.logger().WithFields(logrus.Fields{
		"solver":   p.Path,
		"vars":     nbVars,
		"clauses":  len(clauses),
		"status":   status.String(),
		"duration": time.Since(start),
	}).Debug("external solve finished")
	if status == Sat {
		return Result{Status: Sat, Assignment: assign}, nil
	}
	return Result{Status: Unsat}, nil
}

func (p *Process) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return logrus.StandardLogger()
}
