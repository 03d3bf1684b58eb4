package stateful_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/descent/stateful"
)

func TestTrace(t *testing.T) {
	w := &bytes.Buffer{}
	ctx := &symbols{}
	p := stateful.Trace(w, "decl", declaration[symbols]())
	_, _, err := p.Parse([]string{"var", "v", ";"}, 0, ctx)
	require.NoError(t, err)
	require.Equal(t, "decl @0 \"var\"\ndecl ok @3 \"v\"\n", w.String())
}

func TestTraceAtEOF(t *testing.T) {
	w := &bytes.Buffer{}
	_, _, err := stateful.Trace(w, "decl", declaration[symbols]()).Parse([]string{}, 0, &symbols{})
	require.Error(t, err)
	require.Equal(t, "decl @0 \"<EOF>\"\ndecl fail: pos 0: expected var\n", w.String())
}
