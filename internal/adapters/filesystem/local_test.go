package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/ports"
)

func TestWriteAndReadTextFile(t *testing.T) {
	fsys := NewLocalFileSystem()
	path := filepath.Join(t.TempDir(), "sub", "state.json")

	require.NoError(t, fsys.WriteTextFile(path, "a much longer first version"))
	require.NoError(t, fsys.WriteTextFile(path, "short"))

	content, err := fsys.ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", content)
}

func TestFileExists(t *testing.T) {
	fsys := NewLocalFileSystem()
	dir := t.TempDir()
	path := filepath.Join(dir, "x.CSV")

	exists, err := fsys.FileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	exists, err = fsys.FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListImageFiles(t *testing.T) {
	fsys := NewLocalFileSystem()
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.PNG", "c.jpeg", "notes.txt", "state.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.jpg"), 0755))

	images, err := fsys.ListImageFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.PNG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpeg"),
	}, images)
}

func TestListImageFiles_MissingDirectory(t *testing.T) {
	_, err := NewLocalFileSystem().ListImageFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	fsys := NewLocalFileSystem()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "out", "a.jpg")
	require.NoError(t, os.WriteFile(src, []byte("pixels"), 0644))

	require.NoError(t, fsys.CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}

func TestWriteTextFile_PermissionDeniedIsLockError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "readonly.CSV")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0444))

	err := NewLocalFileSystem().WriteTextFile(path, "y")

	assert.ErrorIs(t, err, ports.ErrFileLocked)
}
