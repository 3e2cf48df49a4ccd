package viewer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// Opener implements ports.ImageViewer
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.ImageViewer = (*Opener)(nil)

// NewOpener creates a new image viewer opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the image in a viewer without waiting for it to exit.
// Priority: cliViewer → $QCREVIEW_VIEWER → platform defaults
func (o *Opener) Open(path string, cliViewer string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	viewer, args := findViewer(path, cliViewer)
	if viewer == "" {
		return fmt.Errorf("no suitable image viewer found. Set --viewer flag or $QCREVIEW_VIEWER")
	}

	logging.Logger.Info("Opening viewer", "viewer", viewer, "path", path)

	cmd := exec.Command(viewer, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start viewer: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Viewer exited with error", "error", err, "viewer", viewer)
		}
	}()

	return nil
}

func findViewer(path string, cliViewer string) (string, []string) {
	// 1. CLI flag takes precedence
	if cliViewer != "" {
		return cliViewer, []string{path}
	}

	// 2. Check QCREVIEW_VIEWER
	if viewer := os.Getenv("QCREVIEW_VIEWER"); viewer != "" {
		return viewer, []string{path}
	}

	// 3. Platform-specific defaults
	return findPlatformViewer(path)
}
