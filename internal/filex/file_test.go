package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "nested", "site.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_NoDirComponent(t *testing.T) {
	require.NoError(t, EnsureParentDir(":memory:"))
	require.NoError(t, EnsureParentDir("site.db"))
}

func TestReadLimited(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	got, err := ReadLimited(path, 10)
	require.NoError(t, err)
	require.Equal(t, []byte("0123456789"), got)

	_, err = ReadLimited(path, 9)
	require.Error(t, err)
	require.Contains(t, err.Error(), "too large")
}
