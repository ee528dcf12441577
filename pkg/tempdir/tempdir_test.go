package tempdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDir(t *testing.T) {
	dir, err := CreateTempDir("test")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(dir), "compose_test_"))

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	require.NoError(t, RemoveAllCreatedTempDirectories())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, tempDirectories)
}
