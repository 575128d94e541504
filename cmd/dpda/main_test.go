package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parens = `1 ()
0 ( $ 0 X$
0 ( X 0 XX
0 ) X 0 .
-1
0 -1
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func definition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parens.dpda")
	require.NoError(t, os.WriteFile(path, []byte(parens), 0o644))
	return path
}

func TestCheckCommand(t *testing.T) {
	path := definition(t)

	out, err := execute(t, "", "check", path, "(())", "(()", "())")
	require.NoError(t, err)
	assert.Equal(t, "(())\t0:$\tString accepted.\n"+
		"(()\t0:X$\tString accepted.\n"+
		"())\ttrapped\tString rejected.\n", out)

	out, err = execute(t, "()\n)\n", "check", path)
	require.NoError(t, err)
	assert.Equal(t, "()\t0:$\tString accepted.\n)\ttrapped\tString rejected.\n", out)

	_, err = execute(t, "", "check", "--strict", path, ")")
	assert.Error(t, err)
	require.NoError(t, checkCmd.Flags().Set("strict", "false"))
}

func TestRunCommand_FromFile(t *testing.T) {
	out, err := execute(t, "(\n)\n.\n", "run", definition(t))
	require.NoError(t, err)
	assert.Equal(t, "String accepted.\n", out)
}

func TestRunCommand_Interactive(t *testing.T) {
	out, err := execute(t, parens+")\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "String rejected.\n", out)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "", "validate", definition(t))
	require.NoError(t, err)
	assert.Contains(t, out, "1 states, 3 transitions")

	bad := filepath.Join(t.TempDir(), "bad.dpda")
	require.NoError(t, os.WriteFile(bad, []byte("1 ()\n0 ( $ 0 X$\n0 ( . 0 X\n-1\n-1\n"), 0o644))
	_, err = execute(t, "", "validate", bad)
	assert.Error(t, err)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "", "graph", definition(t), "((")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, "class q0 current;")
}

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, "", "describe", "--markdown", definition(t))
	require.NoError(t, err)
	assert.Contains(t, out, "| q0 | `(` | `$` | q0 | `X$` |")
	require.NoError(t, describeCmd.Flags().Set("markdown", "false"))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dpda version "))
}
