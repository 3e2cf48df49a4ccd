package services

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// DefaultCopyWorkers bounds concurrent copies when none is configured
const DefaultCopyWorkers = 8

// OrganizeParams contains parameters for organizing reviewed images
type OrganizeParams struct {
	CustomCards []domain.CustomCard
	Directory   string
	ImageList   []string
	Records     map[string]domain.QCRecord
	Reviewer    string
}

// OrganizeResult contains the result of an organize run
type OrganizeResult struct {
	Copied       int
	CSV          *CSVSaveResult
	Errors       []string
	OutputFolder string
	Retake       int
	Retouch      int
	Wrong        int
}

// Message summarizes the run for the reviewer
func (r *OrganizeResult) Message() string {
	if r.Retouch == 0 && r.Retake == 0 && r.Wrong == 0 {
		return `No files to organize (all files have "Ignore" action or no action selected)`
	}
	return fmt.Sprintf("Files organized successfully: %d files copied (%d Retouch, %d Retake, %d Wrong)",
		r.Copied, r.Retouch, r.Retake, r.Wrong)
}

// OrganizerService copies images that need follow-up into one output folder
type OrganizerService struct {
	clock       ports.Clock
	fs          ports.FileSystem
	persistence *PersistenceService
	workers     int
}

// NewOrganizerService creates a new OrganizerService
func NewOrganizerService(fs ports.FileSystem, persistence *PersistenceService, clock ports.Clock, workers int) *OrganizerService {
	if workers < 1 {
		workers = DefaultCopyWorkers
	}
	return &OrganizerService{
		clock:       clock,
		fs:          fs,
		persistence: persistence,
		workers:     workers,
	}
}

// Organize copies every image marked Retouch, Blunder or Retake, or decided
// Wrong, flat into {dir}/{reviewer}_{timestamp}/, next to a CSV of those
// records. Copy failures are collected per file and do not stop the run.
func (s *OrganizerService) Organize(ctx context.Context, params OrganizeParams) (*OrganizeResult, error) {
	paths := make(map[string]string, len(params.ImageList))
	for _, path := range params.ImageList {
		paths[domain.BaseFilename(path)] = path
	}

	result := &OrganizeResult{}
	var sources []string
	seen := make(map[string]bool)
	add := func(filename string) {
		if seen[filename] {
			return
		}
		seen[filename] = true
		source, ok := paths[filename]
		if !ok {
			source = filepath.Join(params.Directory, filename)
		}
		sources = append(sources, source)
	}

	for _, filename := range slices.Sorted(maps.Keys(params.Records)) {
		record := params.Records[filename]
		switch record.NextAction {
		case domain.NextActionRetouch, domain.NextActionBlunder:
			result.Retouch++
			add(filename)
		case domain.NextActionRetake:
			result.Retake++
			add(filename)
		}
		if record.QCDecision == domain.DecisionWrong {
			result.Wrong++
			add(filename)
		}
	}

	if len(sources) == 0 {
		logging.Logger.Info("No files to organize")
		return result, nil
	}

	folder := domain.GenerateOutputFolderName(params.Reviewer, s.clock.Now())
	result.OutputFolder = filepath.Join(params.Directory, folder)
	logging.Logger.Info("Organizing files",
		"output", result.OutputFolder,
		"files", len(sources),
		"retouch", result.Retouch,
		"retake", result.Retake,
		"wrong", result.Wrong)

	copyErrs := make([]error, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				copyErrs[i] = err
				return nil
			}
			dst := filepath.Join(result.OutputFolder, domain.BaseFilename(source))
			if err := s.fs.CopyFile(source, dst); err != nil {
				copyErrs[i] = err
				return nil
			}
			logging.Logger.Debug("Copied", "src", source, "dst", dst)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	for i, err := range copyErrs {
		if err != nil {
			msg := fmt.Sprintf("Failed to copy %s: %v", domain.BaseFilename(sources[i]), err)
			logging.Logger.Error(msg)
			result.Errors = append(result.Errors, msg)
			continue
		}
		result.Copied++
	}

	csvPath := filepath.Join(result.OutputFolder, folder+".CSV")
	csv, err := s.persistence.ExportFilteredCSV(csvPath, params.Records, sources, params.CustomCards)
	if err != nil {
		logging.Logger.Error("Failed to export organized CSV", "path", csvPath, "error", err)
		result.Errors = append(result.Errors, err.Error())
	}
	result.CSV = csv

	logging.Logger.Info(result.Message(), "errors", len(result.Errors))
	return result, nil
}
