// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// Fixture returns the path of a file under fixtures/, relative to the
// working directory.  Relative paths keep schema origins recorded in model
// documents stable across checkouts.
func Fixture(t *testing.T, parts ...string) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	target := filepath.Join(append([]string{RepoRoot(t), "fixtures"}, parts...)...)
	rel, err := filepath.Rel(dir, target)
	require.NoError(t, err)
	return rel
}
