package loader_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/cflreach/internal/loader"
	"github.com/stretchr/testify/require"
)

func TestLoadGrammar_Arities(t *testing.T) {
	idx, err := loader.LoadGrammar(strings.NewReader("S\nT a\nS S S\n"))
	require.NoError(t, err)

	s, ok := idx.Lookup("S")
	require.True(t, ok)
	require.True(t, idx.HasEpsilon(s))
	require.Equal(t, 3, idx.NumSymbols())
}

func TestLoadGrammar_BlankLinesAndWhitespaceTolerated(t *testing.T) {
	idx, err := loader.LoadGrammar(strings.NewReader("\n  S a  \n\n   \n"))
	require.NoError(t, err)
	require.Equal(t, 2, idx.NumSymbols())
}

func TestLoadGrammar_MalformedArity(t *testing.T) {
	_, err := loader.LoadGrammar(strings.NewReader("A B C D\n"))
	require.Error(t, err)
}

func TestLoadGraph_ParsesAndFiltersUnknownLabels(t *testing.T) {
	idx, err := loader.LoadGrammar(strings.NewReader("S a\n"))
	require.NoError(t, err)

	edges, n, err := loader.LoadGraph(strings.NewReader("0 1 a\n1 2 x\n"), idx)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, 0, edges[0].From)
	require.Equal(t, 1, edges[0].To)
	// Vertex "2" is touched only by the dropped "1 2 x" edge, so it doesn't
	// count — matches original_source's Graph.cpp loader.
	require.Equal(t, 2, n)
}

func TestLoadGraph_MalformedLine(t *testing.T) {
	idx, err := loader.LoadGrammar(strings.NewReader("S a\n"))
	require.NoError(t, err)

	_, _, err = loader.LoadGraph(strings.NewReader("0 -1 a\n"), idx)
	require.True(t, errors.Is(err, loader.ErrMalformedGraphLine))

	_, _, err = loader.LoadGraph(strings.NewReader("0 1\n"), idx)
	require.True(t, errors.Is(err, loader.ErrMalformedGraphLine))
}
