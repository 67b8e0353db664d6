package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	runExpression, runPrint = false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunExpressions(t *testing.T) {
	out, err := execute(t, "run", "-p", "-e", "(def x 2) (* x 3)", "(list x true)")
	require.NoError(t, err)
	assert.Equal(t, "x\n6\n(2,true)\n", out)

	out, err = execute(t, "run", "-e", "(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, err = execute(t, "run", "-e", "(+ 1 2)", "(car (list))")
	assert.EqualError(t, err, "expression 2: empty list")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.risp")
	src := "; squares\n(def sq (fn (n) (* n n)))\n(repeat sq (num 3))\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := execute(t, "run", "-p", path)
	require.NoError(t, err)
	assert.Equal(t, "sq\n(0,1,4)\n", out)

	_, err = execute(t, "run", filepath.Join(dir, "missing.risp"))
	assert.Error(t, err)
}
