package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenReadClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("mapped contents"), 0o644))

	f, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, "mapped contents", string(f.Data))

	p := make([]byte, 6)
	n, err := f.ReadAt(p, 7)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "conten", string(p))

	require.NoError(t, f.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent"))
	assert.True(t, os.IsNotExist(err))
}
