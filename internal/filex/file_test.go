package filex

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "console.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "console.db")
	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path))
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "data"), []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(tmp, "data", "console.db"))
	require.Error(t, err)
}

func TestOpenRegular(t *testing.T) {
	tmp := t.TempDir()
	img := filepath.Join(tmp, "icon.png")
	require.NoError(t, os.WriteFile(img, []byte("pixels"), 0o600))

	f, err := OpenRegular(img, 1024)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, "pixels", string(data))

	_, err = OpenRegular(img, 3)
	require.ErrorContains(t, err, "limit is 3")

	_, err = OpenRegular(tmp, 0)
	require.ErrorContains(t, err, "not a regular file")

	_, err = OpenRegular(filepath.Join(tmp, "missing.png"), 0)
	require.ErrorIs(t, err, os.ErrNotExist)
}
