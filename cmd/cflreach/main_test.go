package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_EndToEnd_TransitiveClosure(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "gram.txt")
	graphPath := filepath.Join(dir, "graph.txt")

	require.NoError(t, os.WriteFile(grammarPath, []byte("S S S\nS a\n"), 0o644))
	require.NoError(t, os.WriteFile(graphPath, []byte("0 1 a\n1 2 a\n2 3 a\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--graph=" + graphPath,
		"--grammar=" + grammarPath,
	})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_MissingRequiredFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}
