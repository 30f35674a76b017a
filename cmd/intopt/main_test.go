package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempProgram(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.ilp")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRunPrintsNamedSolution(t *testing.T) {
	path := writeTempProgram(t, "maximize 1x + 2y + 3z subject to x = 5; y = 6; z = 5")
	var buf bytes.Buffer
	code := run([]string{path}, &buf)
	require.Equal(t, exitOK, code)
	require.Equal(t, "x = 5\ny = 6\nz = 5\n", buf.String())
}

func TestRunDiscrepancyEngineSelectedByFlag(t *testing.T) {
	path := writeTempProgram(t, "maximize 1x subject to x = 4")
	var buf bytes.Buffer
	code := run([]string{"-a", "jr", path}, &buf)
	require.Equal(t, exitOK, code)
	require.Equal(t, "x = 4\n", buf.String())
}

func TestRunReportsNoSolution(t *testing.T) {
	path := writeTempProgram(t, "maximize 1x subject to 2x = 1")
	var buf bytes.Buffer
	code := run([]string{path}, &buf)
	require.Equal(t, exitOK, code)
	require.Equal(t, "The ILP has no solution.\n", buf.String())
}

func TestRunFailsOnMissingFile(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.ilp")}, &buf)
	require.Equal(t, exitFailure, code)
	require.Empty(t, buf.String())
}

func TestRunFailsOnUnknownAlgorithm(t *testing.T) {
	path := writeTempProgram(t, "maximize 1x subject to x = 4")
	var buf bytes.Buffer
	code := run([]string{"-a", "bogus", path}, &buf)
	require.Equal(t, exitBadUsage, code)
}

func TestRunRejectsWrongArgumentCount(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{}, &buf)
	require.Equal(t, exitBadUsage, code)
}
