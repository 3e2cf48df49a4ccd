package services

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/domain"
)

func organizerRecords() map[string]domain.QCRecord {
	return map[string]domain.QCRecord{
		"a.jpg": {Filename: "a.jpg", QCDecision: domain.DecisionRight, NextAction: domain.NextActionRetouch},
		"b.jpg": {Filename: "b.jpg", QCDecision: domain.DecisionRight, NextAction: domain.NextActionBlunder},
		"c.jpg": {Filename: "c.jpg", QCDecision: domain.DecisionRight, NextAction: domain.NextActionRetake},
		"d.jpg": {Filename: "d.jpg", QCDecision: domain.DecisionWrong, NextAction: domain.NextActionRetake},
		"e.jpg": {Filename: "e.jpg", QCDecision: domain.DecisionRight, NextAction: domain.NextActionIgnore},
		"f.jpg": {Filename: "f.jpg"},
	}
}

func newTestOrganizer(fs *memFS) *OrganizerService {
	clock := newFixedClock()
	return NewOrganizerService(fs, NewPersistenceService(fs, clock), clock, 2)
}

func TestOrganizerService_Organize(t *testing.T) {
	fs := newMemFS()
	images := fs.addImages(testDir, "a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.jpg")

	result, err := newTestOrganizer(fs).Organize(context.Background(), OrganizeParams{
		Directory: testDir,
		ImageList: images,
		Records:   organizerRecords(),
		Reviewer:  "Alice",
	})

	require.NoError(t, err)
	folder := filepath.Join(testDir, "Alice_2025-03-14_09_30")
	assert.Equal(t, folder, result.OutputFolder)
	assert.Equal(t, 2, result.Retouch)
	assert.Equal(t, 2, result.Retake)
	assert.Equal(t, 1, result.Wrong)
	assert.Equal(t, 4, result.Copied)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"Alice_2025-03-14_09_30.CSV", "a.jpg", "b.jpg", "c.jpg", "d.jpg"}, listDir(fs, folder))
	assert.Equal(t, "jpeg:d.jpg", fs.content(filepath.Join(folder, "d.jpg")))
	assert.Equal(t, "Files organized successfully: 4 files copied (2 Retouch, 2 Retake, 1 Wrong)", result.Message())

	require.NotNil(t, result.CSV)
	assert.Equal(t, 4, result.CSV.Rows)
	csv := fs.content(filepath.Join(folder, "Alice_2025-03-14_09_30.CSV"))
	assert.Contains(t, csv, "d.jpg")
	assert.NotContains(t, csv, "e.jpg")
}

func TestOrganizerService_NothingToOrganize(t *testing.T) {
	fs := newMemFS()
	images := fs.addImages(testDir, "e.jpg", "f.jpg")
	records := organizerRecords()

	result, err := newTestOrganizer(fs).Organize(context.Background(), OrganizeParams{
		Directory: testDir,
		ImageList: images,
		Records: map[string]domain.QCRecord{
			"e.jpg": records["e.jpg"],
			"f.jpg": records["f.jpg"],
		},
		Reviewer: "Alice",
	})

	require.NoError(t, err)
	assert.Empty(t, result.OutputFolder)
	assert.Nil(t, result.CSV)
	assert.Equal(t, `No files to organize (all files have "Ignore" action or no action selected)`, result.Message())
}

func TestOrganizerService_CopyFailuresAreCollected(t *testing.T) {
	fs := newMemFS()
	images := fs.addImages(testDir, "a.jpg", "b.jpg", "c.jpg", "d.jpg")
	fs.failing[images[1]] = errDiskFull
	records := organizerRecords()
	delete(records, "e.jpg")
	delete(records, "f.jpg")

	result, err := newTestOrganizer(fs).Organize(context.Background(), OrganizeParams{
		Directory: testDir,
		ImageList: images,
		Records:   records,
		Reviewer:  "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Copied)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Failed to copy b.jpg: no space left on device", result.Errors[0])
}

func TestOrganizerService_MissingSourceFallsBackToDirectory(t *testing.T) {
	fs := newMemFS()
	fs.addImages(testDir, "a.jpg")

	result, err := newTestOrganizer(fs).Organize(context.Background(), OrganizeParams{
		Directory: testDir,
		Records: map[string]domain.QCRecord{
			"a.jpg": {Filename: "a.jpg", QCDecision: domain.DecisionWrong},
		},
		Reviewer: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Copied)
	assert.Equal(t, 1, result.Wrong)
}

func TestOrganizerService_CanceledContext(t *testing.T) {
	fs := newMemFS()
	images := fs.addImages(testDir, "a.jpg")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestOrganizer(fs).Organize(ctx, OrganizeParams{
		Directory: testDir,
		ImageList: images,
		Records:   map[string]domain.QCRecord{"a.jpg": organizerRecords()["a.jpg"]},
		Reviewer:  "Alice",
	})

	require.NoError(t, err)
	assert.Zero(t, result.Copied)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "context canceled")
}

// listDir returns the base names of files directly under dir
func listDir(fs *memFS, dir string) []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var out []string
	for path := range fs.files {
		if filepath.Dir(path) == dir {
			out = append(out, filepath.Base(path))
		}
	}
	slices.Sort(out)
	return out
}
