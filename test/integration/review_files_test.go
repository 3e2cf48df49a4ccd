package integration_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/test/integration/harness"
)

const (
	frontImage = "IMG-ABC-20250301-acme-front.jpg"
	sideImage  = "IMG-ABC-20250301-acme-side.jpg"
	backImage  = "IMG-ABC-20250301-acme-back.jpg"
)

func savedBatch(t *testing.T) *harness.ReviewDir {
	t.Helper()
	dir := harness.NewReviewDir(t, frontImage, sideImage, backImage)
	dir.SaveState("Alice",
		domain.QCRecord{Filename: frontImage, QCDecision: domain.DecisionRight, QCName: "Alice", NextAction: domain.NextActionIgnore},
		domain.QCRecord{Filename: sideImage, QCDecision: domain.DecisionWrong, QCName: "Alice", QCObservations: "Crop;Comment"},
		domain.QCRecord{Filename: backImage, QCName: "Alice"},
	)
	return dir
}

func TestExport(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dir := savedBatch(t)

	result := harness.RunCommand(t, env, "export", dir.Path)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Saved 2 rows to ")
	harness.AssertStdoutContains(t, result, "1 undecided records were skipped")

	export := harness.ReadCSVExport(t, filepath.Join(dir.Path, "Alice_2025-03-14_09_30.CSV"))
	if export.Header[0] != "Week Number" || len(export.Header) != len(domain.BaseColumns) {
		t.Errorf("Unexpected header %v", export.Header)
	}
	if got := export.Filenames(); !slices.Equal(got, []string{frontImage, sideImage}) {
		t.Errorf("Expected decided rows ordered by filename, got %v", got)
	}
	export.AssertCell(t, sideImage, domain.FieldQCDecision, domain.DecisionWrong)
	export.AssertCell(t, sideImage, domain.FieldQCObservations, "Crop")
	export.AssertCell(t, frontImage, domain.FieldNextAction, domain.NextActionIgnore)

	state := harness.ReadState(t, dir.Path)
	if len(state.Results) != 3 {
		t.Errorf("Expected export to leave the state untouched, got %d results", len(state.Results))
	}
}

func TestExportToOutput(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dir := savedBatch(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	result := harness.RunCommand(t, env, "export", dir.Path, "-o", output)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, output)

	export := harness.ReadCSVExport(t, output)
	if len(export.Rows) != 2 {
		t.Errorf("Expected 2 rows in %s, got %d", output, len(export.Rows))
	}
}

func TestOrganize(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dir := savedBatch(t)

	result := harness.RunCommand(t, env, "organize", dir.Path)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "1 files copied (0 Retouch, 0 Retake, 1 Wrong)")

	subdirs := dir.Subdirs()
	if len(subdirs) != 1 {
		t.Fatalf("Expected one output folder, got %v", subdirs)
	}
	if !strings.HasPrefix(filepath.Base(subdirs[0]), "Alice_") {
		t.Errorf("Unexpected output folder %s", subdirs[0])
	}
	if _, err := os.Stat(filepath.Join(subdirs[0], sideImage)); err != nil {
		t.Errorf("Expected %s copied: %v", sideImage, err)
	}
	if _, err := os.Stat(filepath.Join(subdirs[0], frontImage)); !os.IsNotExist(err) {
		t.Errorf("Expected %s not copied", frontImage)
	}

	csvFiles, _ := filepath.Glob(filepath.Join(subdirs[0], "*.CSV"))
	if len(csvFiles) != 1 {
		t.Fatalf("Expected one CSV in %s, got %v", subdirs[0], csvFiles)
	}
	export := harness.ReadCSVExport(t, csvFiles[0])
	if got := export.Filenames(); !slices.Equal(got, []string{sideImage}) {
		t.Errorf("Expected only the flagged image in the organized CSV, got %v", got)
	}
}

func TestReviewFilesWithoutState(t *testing.T) {
	for _, command := range []string{"export", "organize"} {
		t.Run(command, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			dir := harness.NewReviewDir(t, frontImage)

			result := harness.RunCommand(t, env, command, dir.Path)
			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, "no saved review")
		})
	}
}
