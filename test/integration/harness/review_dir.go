package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/domain"
)

// ReviewDir is a directory of images with an optional saved review.
type ReviewDir struct {
	Path string
	tb   testing.TB
}

// NewReviewDir creates a directory holding an empty file per image name.
func NewReviewDir(tb testing.TB, images ...string) *ReviewDir {
	tb.Helper()

	dir := filepath.Join(tb.TempDir(), "batch_0314")
	if err := os.MkdirAll(dir, 0755); err != nil {
		tb.Fatalf("Failed to create review dir: %v", err)
	}
	for _, name := range images {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("jpeg"), 0644); err != nil {
			tb.Fatalf("Failed to create image %s: %v", name, err)
		}
	}
	return &ReviewDir{Path: dir, tb: tb}
}

// SaveState writes the JSON state file a review leaves behind.
func (d *ReviewDir) SaveState(reviewer string, records ...domain.QCRecord) {
	d.tb.Helper()

	state := domain.SavedState{
		CSVFilename: reviewer + "_2025-03-14_09_30.CSV",
		QCName:      reviewer,
		Results:     make(map[string]domain.QCRecord, len(records)),
	}
	for _, record := range records {
		state.ImageList = append(state.ImageList, filepath.Join(d.Path, record.Filename))
		state.Results[record.Filename] = record
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		d.tb.Fatalf("Failed to marshal state: %v", err)
	}
	if err := os.WriteFile(domain.StateFilePath(d.Path), data, 0644); err != nil {
		d.tb.Fatalf("Failed to write state: %v", err)
	}
}

// Subdirs lists the directories created inside the review directory.
func (d *ReviewDir) Subdirs() []string {
	d.tb.Helper()
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		d.tb.Fatalf("Failed to list %s: %v", d.Path, err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(d.Path, entry.Name()))
		}
	}
	return dirs
}
