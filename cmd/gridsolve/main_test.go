package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
)

func init() {
	log.SetOutput(io.Discard)
}

func writeGrid(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRun(t *testing.T) {
	path := writeGrid(t, "S . . . .\nX X . X .\n. P P . .\n. X . . D\n. . . X .\n")

	for _, strategy := range []string{"heap", "scan"} {
		var out bytes.Buffer
		require.NoError(t, run(&out, path, strategy, false))
		require.Equal(t, "Path found! Cost: 6.5 (7 steps)\n"+
			"S * * . .\n"+
			"X X * X .\n"+
			". P * * *\n"+
			". X . . D\n"+
			". . . X .\n", out.String())
	}
}

func TestRun_Symmetric(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, writeGrid(t, "D S\n"), "heap", true))
	require.Equal(t, "Path found! Cost: 1 (1 steps)\nD S\n", out.String())
}

func TestRun_NoPath(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, writeGrid(t, "S X D\n"), "heap", false))
	require.Equal(t, "No path found.\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	require.ErrorIs(t, run(&out, writeGrid(t, ". . D\n"), "heap", false), dijkstra.ErrMissingEndpoint)
	require.Error(t, run(&out, writeGrid(t, "S D\n"), "astar", false))
	require.Error(t, run(&out, filepath.Join(t.TempDir(), "missing.txt"), "heap", false))
}
