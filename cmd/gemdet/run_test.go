package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runArgs executes the command and captures its output.
func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeMatrix(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunDirectInput(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-m", "1 0/0 1"}, "1\n"},
		{[]string{"-m", "0", "1/1", "0"}, "-1\n"},
		{[]string{"-s", "-m", "2 0/0 3"}, "6\n"},
		{[]string{"-t", "2", "-m", "1 2/2 4"}, "0\n"},
		{[]string{"-m", "-1 0/0 2"}, "-2\n"},
		{[]string{"-barrier", "spin", "-t", "2", "-m", "2 1 1/4 3 3/8 7 9"}, "4\n"},
		{[]string{"-digits", "3", "-m", "1 0/0 3.14159"}, "3.14\n"},
		{[]string{"-delimiter", ";", "-m", "1 2;3 4"}, "-2\n"},
		{[]string{"-m", "0.000000001 0/0 0.000000001"}, "1e-18\n"},
		{[]string{"-s", "-m", "0.000000001 0/0 0.000000001"}, "1e-18\n"},
		{[]string{"-precision", "3", "-m", "1 0/0 3"}, "3\n"},
	}
	for _, tc := range cases {
		code, stdout, stderr := runArgs(t, tc.args...)
		require.Equal(t, exitOK, code, "%v: %s", tc.args, stderr)
		require.Equal(t, tc.want, stdout, "%v", tc.args)
	}
}

func TestRunFileInput(t *testing.T) {
	path := writeMatrix(t, "2.5 3/\n1 2\n")
	code, stdout, _ := runArgs(t, path)
	require.Equal(t, exitOK, code)
	require.Equal(t, "2\n", stdout)

	code, _, stderr := runArgs(t, filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, exitProcessing, code)
	require.Contains(t, stderr, "cannot open")
}

func TestRunErrors(t *testing.T) {
	code, _, stderr := runArgs(t, "-m", "1 2 3/4 5 6")
	require.Equal(t, exitCompute, code)
	require.Contains(t, stderr, "input matrix has 3 columns and 2 rows")

	code, _, stderr = runArgs(t)
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, usageHint)

	code, _, _ = runArgs(t, "-q", "x")
	require.Equal(t, exitUsage, code)

	code, _, _ = runArgs(t, "-m", "1 - 2")
	require.Equal(t, exitProcessing, code)
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"-h", "-help"} {
		code, stdout, _ := runArgs(t, arg, "ignored")
		require.Equal(t, exitOK, code)
		require.Contains(t, stdout, "Usage:  gemdet [OPTIONS] INPUT")
	}
	code, stdout, _ := runArgs(t, "-f")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "Expected matrix format")
}

func TestRunInvalidThreadsWarns(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-t", "0", "-m", "2 0/0 3")
	require.Equal(t, exitOK, code)
	require.Equal(t, "6\n", stdout)
	require.Contains(t, stderr, "invalid number of threads")
}

func TestRunPrintStats(t *testing.T) {
	code, stdout, _ := runArgs(t, "-p", "-s", "-m", "2 0/0 3")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "Singlethread gauss elimination time:")
	require.Contains(t, stdout, "\nDeterminant: 6\n")

	code, stdout, _ = runArgs(t, "-p", "-t", "2", "-verify", "-m", "2 0/0 3")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "Time spent synchronizing:")
	require.Contains(t, stdout, "Threads used: 2\n")
	require.Contains(t, stdout, "Float64 check: ")
}

func TestRunMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gemdet.prom")
	code, _, stderr := runArgs(t, "-metrics-file", path, "-t", "2", "-m", "0 1/1 0")
	require.Equal(t, exitOK, code, stderr)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `gemdet_runs_total{mode="parallel",result="ok"} 1`)
	require.Contains(t, string(raw), `gemdet_row_swaps_total{mode="parallel"} 1`)

	code, _, _ = runArgs(t, "-metrics-file", filepath.Join(t.TempDir(), "no", "such", "x.prom"), "-m", "1")
	require.Equal(t, exitProcessing, code)
}

func TestRunDebugLogs(t *testing.T) {
	code, _, stderr := runArgs(t, "-log-level", "debug", "-t", "2", "-m", "1 2/3 4")
	require.Equal(t, exitOK, code)
	require.Contains(t, stderr, "parallel elimination done")
	require.Contains(t, stderr, "run_id")
}
