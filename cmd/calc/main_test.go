package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cli.Program = "let r = 2; r * r * x"
	cli.Set = map[string]float64{"x": 3}
	cli.AST = true
	defer func() { cli.Program, cli.Set, cli.AST = "", nil, false }()

	stdout := &bytes.Buffer{}
	err := run(strings.NewReader(""), stdout, &bytes.Buffer{})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "calc.Program{")
	require.True(t, strings.HasSuffix(stdout.String(), "12\n"))
}

func TestRunStdin(t *testing.T) {
	stdout := &bytes.Buffer{}
	err := run(strings.NewReader("1 +"), stdout, &bytes.Buffer{})
	require.EqualError(t, err, `<stdin>:1:3: unexpected token "+" (expected end of input)`)
}
