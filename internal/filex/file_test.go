package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePrivate_CreatesParentsAndFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "backups", "2025", "vault.json")

	require.NoError(t, WritePrivate(path, []byte("data")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "data", string(got))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

		di, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o700), di.Mode().Perm()&0o700)
	}
}

func TestWritePrivate_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")

	require.NoError(t, WritePrivate(path, []byte("first")))
	require.NoError(t, WritePrivate(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWritePrivate_FailsIfParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := WritePrivate(filepath.Join(blocker, "vault.json"), []byte("data"))
	require.Error(t, err)
}
