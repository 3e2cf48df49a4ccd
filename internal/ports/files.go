package ports

import "errors"

// ErrFileLocked marks a write that failed because another process holds
// the file or the path is not writable.
var ErrFileLocked = errors.New("file is locked or not writable")

// FileSystem is the host file access used by persistence
type FileSystem interface {
	CopyFile(src, dst string) error
	FileExists(path string) (bool, error)
	// ListImageFiles returns full paths of reviewable images in dir, sorted
	ListImageFiles(dir string) ([]string, error)
	ReadTextFile(path string) (string, error)
	// WriteTextFile replaces the file contents, creating parent directories.
	// Lock and permission failures wrap ErrFileLocked.
	WriteTextFile(path, content string) error
}
