package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/ports"
)

// LocalFileSystem implements ports.FileSystem on the host file system
type LocalFileSystem struct{}

// Verify interface compliance at compile time
var _ ports.FileSystem = (*LocalFileSystem)(nil)

// NewLocalFileSystem creates a new LocalFileSystem
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// ReadTextFile implements FileSystem.ReadTextFile
func (l *LocalFileSystem) ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteTextFile implements FileSystem.WriteTextFile. The file is locked
// for the duration of the write so a concurrent writer fails fast instead
// of interleaving.
func (l *LocalFileSystem) WriteTextFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return classify(fmt.Errorf("failed to create directory for %s: %w", path, err))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return classify(fmt.Errorf("failed to open %s: %w", path, err))
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return classify(fmt.Errorf("failed to lock %s: %w", path, err))
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return classify(fmt.Errorf("failed to truncate %s: %w", path, err))
	}
	if _, err := io.WriteString(file, content); err != nil {
		return classify(fmt.Errorf("failed to write %s: %w", path, err))
	}
	if err := file.Sync(); err != nil {
		return classify(fmt.Errorf("failed to sync %s: %w", path, err))
	}
	return nil
}

// FileExists implements FileSystem.FileExists
func (l *LocalFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// ListImageFiles implements FileSystem.ListImageFiles. Only the top level
// of dir is scanned.
func (l *LocalFileSystem) ListImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsImageFile(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(images)
	return images, nil
}

// CopyFile implements FileSystem.CopyFile, creating dst's directory
func (l *LocalFileSystem) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return classify(fmt.Errorf("failed to create %s: %w", dst, err))
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// classify tags lock and permission failures with ports.ErrFileLocked
func classify(err error) error {
	if isLockError(err) {
		return fmt.Errorf("%w: %w", ports.ErrFileLocked, err)
	}
	return err
}
