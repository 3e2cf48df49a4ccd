//go:build !unix && !windows

package filesystem

import (
	"errors"
	"io/fs"
	"os"
)

func lockFile(file *os.File) error { return nil }

func unlockFile(file *os.File) error { return nil }

func isLockError(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
