package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/adapters/csvfile"
	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// StartupSource names where the records of a resumed review came from
type StartupSource string

const (
	StartupFresh     StartupSource = "fresh"
	StartupFromCSV   StartupSource = "csv"
	StartupFromState StartupSource = "state"
)

// StartupResult is the outcome of reconciling a working directory
type StartupResult struct {
	CSVFilename  string
	CurrentIndex int
	CustomCards  []domain.CustomCard
	ImageList    []string
	QCName       string
	Records      map[string]domain.QCRecord
	Source       StartupSource
}

// CSVSaveResult describes a successful CSV write
type CSVSaveResult struct {
	Path    string
	Rows    int
	Warning string
}

// CSVSaveError is returned when the CSV export could not be written at all
type CSVSaveError struct {
	Err  error
	Path string
}

func (e *CSVSaveError) Error() string {
	return fmt.Sprintf("failed to write CSV %s: %v", e.Path, e.Err)
}

func (e *CSVSaveError) Unwrap() error {
	return e.Err
}

// Hint is the user-facing guidance shown with the error
func (e *CSVSaveError) Hint() string {
	return "Please ensure:\n• You have write permissions\n• File is not open elsewhere\n• Sufficient disk space"
}

// SaveParams is everything written on a full save
type SaveParams struct {
	CSVFilename  string
	CurrentIndex int
	CustomCards  []domain.CustomCard
	Directory    string
	ImageList    []string
	QCName       string
	Records      map[string]domain.QCRecord
}

// PersistenceService reads and writes the CSV export and the JSON session
// state of a working directory
type PersistenceService struct {
	clock ports.Clock
	fs    ports.FileSystem
}

// NewPersistenceService creates a new PersistenceService
func NewPersistenceService(fs ports.FileSystem, clock ports.Clock) *PersistenceService {
	return &PersistenceService{
		clock: clock,
		fs:    fs,
	}
}

// Reconcile decides what populates a review of dir. A state file wins when
// present; otherwise a fresh CSV filename is generated and any CSV already at
// that path seeds the records.
func (s *PersistenceService) Reconcile(dir, reviewer string) (*StartupResult, error) {
	logging.Logger.Info("Reconciling working directory", "dir", dir, "reviewer", reviewer)

	state, err := s.LoadState(dir)
	if err != nil {
		return nil, err
	}
	if state != nil {
		result := startupFromState(state)
		logging.Logger.Info("Resuming from state file",
			"records", len(result.Records),
			"currentIndex", result.CurrentIndex,
			"csvFilename", result.CSVFilename)
		return result, nil
	}

	csvFilename := domain.GenerateCSVFilename(reviewer, s.clock.Now())
	records, err := s.LoadCSV(filepath.Join(dir, csvFilename))
	if err != nil {
		return nil, err
	}

	source := StartupFresh
	if len(records) > 0 {
		source = StartupFromCSV
	}
	logging.Logger.Info("Starting review", "source", source, "csvFilename", csvFilename, "records", len(records))

	return &StartupResult{
		CSVFilename: csvFilename,
		QCName:      reviewer,
		Records:     records,
		Source:      source,
	}, nil
}

// LoadSaved returns the review saved in dir's state file, or
// domain.ErrNoSavedReview when there is none
func (s *PersistenceService) LoadSaved(dir string) (*StartupResult, error) {
	state, err := s.LoadState(dir)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoSavedReview, dir)
	}
	return startupFromState(state), nil
}

// startupFromState keys the saved records by bare filename
func startupFromState(state *domain.SavedState) *StartupResult {
	records := make(map[string]domain.QCRecord, len(state.Results))
	for key, record := range state.Results {
		normalized := domain.BaseFilename(key)
		record.Filename = normalized
		records[normalized] = record
	}
	return &StartupResult{
		CSVFilename:  state.CSVFilename,
		CurrentIndex: state.CurrentIndex,
		CustomCards:  state.CustomCards,
		ImageList:    state.ImageList,
		QCName:       state.QCName,
		Records:      records,
		Source:       StartupFromState,
	}
}

// LoadState reads the session state of dir. A missing or unparsable file
// yields nil.
func (s *PersistenceService) LoadState(dir string) (*domain.SavedState, error) {
	path := domain.StateFilePath(dir)

	exists, err := s.fs.FileExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check state file: %w", err)
	}
	if !exists {
		return nil, nil
	}

	content, err := s.fs.ReadTextFile(path)
	if err != nil {
		logging.Logger.Error("Failed to read state file", "path", path, "error", err)
		return nil, nil
	}

	var state domain.SavedState
	if err := json.Unmarshal([]byte(content), &state); err != nil {
		logging.Logger.Error("Failed to parse state file", "path", path, "error", err)
		return nil, nil
	}
	return &state, nil
}

// SaveState overwrites the session state of params.Directory. Failures are
// logged and not returned.
func (s *PersistenceService) SaveState(params SaveParams) {
	path := domain.StateFilePath(params.Directory)

	state := domain.SavedState{
		CSVFilename:  params.CSVFilename,
		CurrentIndex: params.CurrentIndex,
		CustomCards:  params.CustomCards,
		ImageList:    params.ImageList,
		QCName:       params.QCName,
		Results:      params.Records,
	}
	if state.CustomCards == nil {
		state.CustomCards = []domain.CustomCard{}
	}
	if state.ImageList == nil {
		state.ImageList = []string{}
	}
	if state.Results == nil {
		state.Results = map[string]domain.QCRecord{}
	}

	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		logging.Logger.Error("Failed to encode state", "path", path, "error", err)
		return
	}
	if err := s.fs.WriteTextFile(path, string(content)); err != nil {
		logging.Logger.Error("Failed to save state", "path", path, "error", err)
		return
	}
	logging.Logger.Debug("State saved", "path", path, "records", len(state.Results))
}

// LoadCSV reads a CSV export. A missing or unreadable file yields no records.
func (s *PersistenceService) LoadCSV(path string) (map[string]domain.QCRecord, error) {
	exists, err := s.fs.FileExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check CSV file: %w", err)
	}
	if !exists {
		return map[string]domain.QCRecord{}, nil
	}

	content, err := s.fs.ReadTextFile(path)
	if err != nil {
		logging.Logger.Error("Failed to read CSV", "path", path, "error", err)
		return map[string]domain.QCRecord{}, nil
	}

	records, err := csvfile.Decode(content)
	if err != nil {
		logging.Logger.Error("Failed to parse CSV", "path", path, "error", err)
		return map[string]domain.QCRecord{}, nil
	}
	logging.Logger.Info("CSV loaded", "path", path, "records", len(records))
	return records, nil
}

// SaveCSV writes the CSV export. When the target is locked it retries once
// at the _temp path and reports a warning; any other failure is a
// *CSVSaveError.
func (s *PersistenceService) SaveCSV(path string, records map[string]domain.QCRecord, cards []domain.CustomCard) (*CSVSaveResult, error) {
	content, rows, err := csvfile.Encode(records, cards)
	if err != nil {
		return nil, &CSVSaveError{Err: err, Path: path}
	}

	err = s.fs.WriteTextFile(path, content)
	if err == nil {
		logging.Logger.Debug("CSV saved", "path", path, "rows", rows)
		return &CSVSaveResult{Path: path, Rows: rows}, nil
	}

	if !errors.Is(err, ports.ErrFileLocked) {
		logging.Logger.Error("Failed to write CSV", "path", path, "error", err)
		return nil, &CSVSaveError{Err: err, Path: path}
	}

	retryPath := TempCSVPath(path)
	logging.Logger.Warn("CSV file locked, retrying with alternate filename", "path", path, "retryPath", retryPath, "error", err)

	if retryErr := s.fs.WriteTextFile(retryPath, content); retryErr != nil {
		logging.Logger.Error("CSV retry failed", "retryPath", retryPath, "error", retryErr)
		return nil, &CSVSaveError{Err: fmt.Errorf("retry at %s also failed: %w", retryPath, retryErr), Path: path}
	}

	return &CSVSaveResult{
		Path:    retryPath,
		Rows:    rows,
		Warning: fmt.Sprintf("Original CSV file was locked. Data saved to: %s. Please close any programs using the CSV file.", retryPath),
	}, nil
}

// ExportFilteredCSV writes only the named records that carry a QC decision
func (s *PersistenceService) ExportFilteredCSV(path string, records map[string]domain.QCRecord, filenames []string, cards []domain.CustomCard) (*CSVSaveResult, error) {
	filtered := make(map[string]domain.QCRecord, len(filenames))
	for _, name := range filenames {
		key := domain.BaseFilename(name)
		if record, ok := records[key]; ok && record.QCDecision != "" {
			filtered[key] = record
		}
	}
	return s.SaveCSV(path, filtered, cards)
}

// Save writes the CSV export then the session state. The state is written
// even when the CSV fails so the review can still be resumed.
func (s *PersistenceService) Save(params SaveParams) (*CSVSaveResult, error) {
	result, err := s.SaveCSV(filepath.Join(params.Directory, params.CSVFilename), params.Records, params.CustomCards)
	s.SaveState(params)
	return result, err
}

// TempCSVPath inserts _temp before the extension of path
func TempCSVPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_temp" + ext
}
