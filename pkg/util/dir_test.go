package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkDirAllInheritPerm(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0750))

	path := filepath.Join(root, "a", "b", "log")
	err := MkDirAllInheritPerm(path)
	require.NoError(t, err)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
	assert.Equal(t, os.FileMode(0750), stat.Mode().Perm())

	// existing directories are fine
	assert.NoError(t, MkDirAllInheritPerm(path))
}
