package sat

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammale2003/satcore/cnf"
)

// stubSolver writes a shell script that ignores its input and prints the
// given output.
func stubSolver(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "solver")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestProcessSat(t *testing.T) {
	path := stubSolver(t, `printf 's SATISFIABLE\nv 1 -2 0\n'`)
	clauses := []cnf.Clause{{1, -2}, {1, 2}}

	res, err := NewProcess(path).Solve(context.Background(), clauses, 2)
	require.NoError(t, err)
	assert.Equal(t, Sat, res.Status)
	assert.Equal(t, cnf.Assignment{true, false}, res.Assignment)
}

func TestProcessUnsat(t *testing.T) {
	path := stubSolver(t, `printf 's UNSATISFIABLE\n'; exit 20`)
	clauses := []cnf.Clause{{1}, {-1}}

	res, err := NewProcess(path).Solve(context.Background(), clauses, 1)
	require.NoError(t, err)
	assert.Equal(t, Unsat, res.Status)
}

func TestProcessRejectsLyingSolver(t *testing.T) {
	// The claimed assignment falsifies the clause (1 2).
	path := stubSolver(t, `printf 's SATISFIABLE\nv -1 -2 0\n'`)
	clauses := []cnf.Clause{{1, 2}}

	_, err := NewProcess(path).Solve(context.Background(), clauses, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestProcessGarbageOutput(t *testing.T) {
	path := stubSolver(t, `echo 'boom' >&2; exit 1`)

	_, err := NewProcess(path).Solve(context.Background(), []cnf.Clause{{1}}, 1)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Output, "boom")
}

func TestProcessMissingBinary(t *testing.T) {
	_, err := NewProcess(filepath.Join(t.TempDir(), "nope")).Solve(context.Background(), []cnf.Clause{{1}}, 1)
	assert.Error(t, err)
}

func TestProcessTimeout(t *testing.T) {
	path := stubSolver(t, `sleep 10`)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewProcess(path).Solve(ctx, []cnf.Clause{{1}}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
}

func TestProcessPassesExtraArgs(t *testing.T) {
	// The stub echoes a verdict only when called with the expected flag.
	path := stubSolver(t, `[ "$1" = "--model" ] || exit 1
printf 's SATISFIABLE\nv 1 0\n'`)

	res, err := NewProcess(path, "--model").Solve(context.Background(), []cnf.Clause{{1}}, 1)
	require.NoError(t, err)
	assert.Equal(t, Sat, res.Status)
}
