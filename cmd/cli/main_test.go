package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/componentui/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL string with a syntax error fails the loading phase inside app.NewApp().
	invalidHCL := `
		component "components.Color" {
		// Missing closing brace here
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600), "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "application startup failed")
	assert.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EditEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	data := `
log "/points" {
  component "components.Color" {
    values = [
      { r = 1, g = 2, b = 3, a = 4 },
      { r = 5, g = 6, b = 7, a = 8 },
    ]
  }
}
`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.hcl"), []byte(data), 0o600))
	db := filepath.Join(dir, "store.db")
	out := &bytes.Buffer{}
	args := []string{
		"-db", db,
		"-entity", "/points[1]",
		"-layout", "list",
		"-edit", "components.Color",
		"-input", "Color=#ffffffff",
		"-write-path", "/blueprint/points",
		dir,
	}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "/points[1]\n"+
		"  1 component (including 0 indicator components)\n"+
		"edit /points[1]\n"+
		"  Color: [Color] #ffffffff *\n"+
		"/blueprint/points[1]\n"+
		"  1 component (including 0 indicator components)\n", out.String())

	out.Reset()
	require.NoError(t, run(context.Background(), out, &bytes.Buffer{}, []string{"-db", db, "-entity", "/blueprint/points"}))
	assert.Equal(t, "/blueprint/points\n  Color: #ffffffff\n", out.String(), "the edit is persisted")
}
