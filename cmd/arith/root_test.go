package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(configEnv, "")
	var out, errs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errs.String(), err
}

func TestRootSession(t *testing.T) {
	cfg := writeConfig(t, "[repl]\ngreeting = false\ncolor = false\n")
	out, _, err := execute(t, "(2+3)*4\n", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "The computed number is 20\n\n", out)
}

func TestRootGreets(t *testing.T) {
	out, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello! Welcome to Arithmetic expression evaluator.")
	assert.Contains(t, out, "Enter your arithmetic expression below:")
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "2+2")
	require.Error(t, err)
}

func TestRootBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootDebugLogging(t *testing.T) {
	_, errs, err := execute(t, "1/0\n", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errs, "evaluation failed")
}

func TestEvalCmd(t *testing.T) {
	out, errs, err := execute(t, "", "eval", "2 + 3 * 4", "(2)(3)", "--", "-2^2")
	require.NoError(t, err)
	assert.Equal(t, "14\n6\n4\n", out)
	assert.Empty(t, errs)
}

func TestEvalCmdFailures(t *testing.T) {
	out, errs, err := execute(t, "", "eval", "1/0", "1+1", "2..3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 expressions failed")
	assert.Equal(t, "2\n", out)
	assert.Contains(t, errs, "1/0: division by zero")
	assert.Contains(t, errs, "2..3: 3: expected operator or end of input")
}
