//go:build linux || darwin

package platform

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDirectory_SkipsNamedPipes(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "sub")
	touch(t, dir, "a.txt")
	require.NoError(t, syscall.Mkfifo(filepath.Join(dir, "pipe"), 0o644))

	listing, err := ReadDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub"}, listing.Folders)
	assert.Equal(t, []string{"a.txt"}, listing.Files)
}
