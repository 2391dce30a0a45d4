package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test"), 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// Arrange
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "nested", "b.hcl"))
	writeFile(t, filepath.Join(root, "nested", "c.txt"))

	// Act
	files, err := FindFilesByExtension(root, ".hcl")

	// Assert
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
	}, files)
}

func TestFindFiles_MixesFilesAndDirectories(t *testing.T) {
	t.Parallel()

	// Arrange
	root := t.TempDir()
	a := filepath.Join(root, "dir", "a.hcl")
	b := filepath.Join(root, "b.hcl")
	writeFile(t, a)
	writeFile(t, b)
	writeFile(t, filepath.Join(root, "ignored.txt"))

	// Act
	files, err := FindFiles([]string{
		filepath.Join(root, "dir"),
		b,
		a, // listed twice
		filepath.Join(root, "does-not-exist"),
		filepath.Join(root, "ignored.txt"),
	}, ".hcl")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, files, "sorted by path")
}
