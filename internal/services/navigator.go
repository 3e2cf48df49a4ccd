package services

import (
	"context"
	"slices"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
)

// NavigationResult is the outcome of a move. Missing lists the mandatory
// fields that blocked a forward move.
type NavigationResult struct {
	CSV     *CSVSaveResult
	Missing []string
	Moved   bool
}

// NavigatorParams configures a Navigator
type NavigatorParams struct {
	CSVFilename    string
	CurrentIndex   int
	CustomCards    []domain.CustomCard
	Directory      string
	ImageList      []string
	IncompleteOnly bool
	Persistence    *PersistenceService
	Reviewer       string
	Store          *RecordStore
	Timer          *SessionTimer
}

// Navigator moves through the images of a working directory. Forward moves
// are gated on the current record being complete; every move persists first.
type Navigator struct {
	cards          []domain.CustomCard
	csvFilename    string
	dir            string
	filtered       []string
	imageList      []string
	incompleteOnly bool
	index          int
	persistence    *PersistenceService
	reviewer       string
	store          *RecordStore
	timer          *SessionTimer
}

// NewNavigator creates a Navigator positioned at params.CurrentIndex
func NewNavigator(params NavigatorParams) *Navigator {
	n := &Navigator{
		cards:          slices.Clone(params.CustomCards),
		csvFilename:    params.CSVFilename,
		dir:            params.Directory,
		imageList:      slices.Clone(params.ImageList),
		incompleteOnly: params.IncompleteOnly,
		persistence:    params.Persistence,
		reviewer:       params.Reviewer,
		store:          params.Store,
		timer:          params.Timer,
	}
	n.refilter()
	n.index = n.clamp(params.CurrentIndex)
	return n
}

// Current returns the path of the current image
func (n *Navigator) Current() (string, bool) {
	if len(n.filtered) == 0 {
		return "", false
	}
	return n.filtered[n.index], true
}

// CurrentRecord returns the record of the current image
func (n *Navigator) CurrentRecord() (domain.QCRecord, bool) {
	path, ok := n.Current()
	if !ok {
		return domain.QCRecord{}, false
	}
	return n.store.Get(path)
}

// Index returns the position in the visible list
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the size of the visible list
func (n *Navigator) Len() int {
	return len(n.filtered)
}

// Images returns the visible list
func (n *Navigator) Images() []string {
	return slices.Clone(n.filtered)
}

// AllImages returns every image of the working directory
func (n *Navigator) AllImages() []string {
	return slices.Clone(n.imageList)
}

// IncompleteOnly reports whether only incomplete images are shown
func (n *Navigator) IncompleteOnly() bool {
	return n.incompleteOnly
}

// CustomCards returns the cards in use
func (n *Navigator) CustomCards() []domain.CustomCard {
	return slices.Clone(n.cards)
}

// CSVFilename returns the CSV export filename
func (n *Navigator) CSVFilename() string {
	return n.csvFilename
}

// Directory returns the working directory
func (n *Navigator) Directory() string {
	return n.dir
}

// Reviewer returns the reviewer name written to new records
func (n *Navigator) Reviewer() string {
	return n.reviewer
}

// Missing lists the mandatory fields the current record lacks
func (n *Navigator) Missing() []string {
	record, ok := n.CurrentRecord()
	if !ok {
		return nil
	}
	return domain.MissingFields(record, n.cards)
}

// Statistics counts outcomes over every image
func (n *Navigator) Statistics() domain.Statistics {
	return domain.ComputeStatistics(n.imageList, n.store.Snapshot(), n.cards)
}

// Visit makes sure the current image has a record. A newly created record
// is flushed to disk at once so a blank visit is never lost.
func (n *Navigator) Visit() (*CSVSaveResult, error) {
	path, ok := n.Current()
	if !ok {
		return nil, nil
	}
	if _, created := n.store.EnsureRecord(path, n.reviewer); created {
		return n.Save()
	}
	n.persistence.SaveState(n.saveParams())
	return nil, nil
}

// Save writes the CSV export and the session state
func (n *Navigator) Save() (*CSVSaveResult, error) {
	return n.persistence.Save(n.saveParams())
}

// Next moves forward when the current record is complete. At the last image
// it is a no-op.
func (n *Navigator) Next(ctx context.Context) (*NavigationResult, error) {
	record, ok := n.CurrentRecord()
	if !ok {
		return &NavigationResult{}, nil
	}
	if missing := domain.MissingFields(record, n.cards); len(missing) > 0 {
		logging.Logger.Info("Navigation blocked by missing fields", "filename", record.Filename, "missing", missing)
		return &NavigationResult{Missing: missing}, nil
	}
	if n.index >= len(n.filtered)-1 {
		return &NavigationResult{}, nil
	}

	csv, err := n.Save()
	if err != nil {
		return nil, err
	}
	n.timer.Leave(ctx, record, n.cards)
	return n.moveTo(n.index+1, csv)
}

// Previous moves back one image regardless of completeness
func (n *Navigator) Previous() (*NavigationResult, error) {
	if n.index == 0 || len(n.filtered) == 0 {
		return &NavigationResult{}, nil
	}
	return n.saveAndMove(n.index - 1)
}

// First jumps to the first image regardless of completeness
func (n *Navigator) First() (*NavigationResult, error) {
	if n.index == 0 || len(n.filtered) == 0 {
		return &NavigationResult{}, nil
	}
	return n.saveAndMove(0)
}

// Last jumps to the last image regardless of completeness
func (n *Navigator) Last() (*NavigationResult, error) {
	if n.index >= len(n.filtered)-1 {
		return &NavigationResult{}, nil
	}
	return n.saveAndMove(len(n.filtered) - 1)
}

func (n *Navigator) saveAndMove(index int) (*NavigationResult, error) {
	csv, err := n.Save()
	if err != nil {
		return nil, err
	}
	return n.moveTo(index, csv)
}

func (n *Navigator) moveTo(index int, csv *CSVSaveResult) (*NavigationResult, error) {
	n.index = index
	logging.Logger.Debug("Moved to image", "index", index, "of", len(n.filtered))

	visitCSV, err := n.Visit()
	if visitCSV != nil {
		csv = visitCSV
	}
	return &NavigationResult{CSV: csv, Moved: true}, err
}

// SetIncompleteOnly switches between all images and only incomplete ones.
// The visible list is rebuilt and the position resets to the start.
func (n *Navigator) SetIncompleteOnly(enabled bool) (*CSVSaveResult, error) {
	n.incompleteOnly = enabled
	n.refilter()
	n.index = 0
	logging.Logger.Info("Incomplete filter changed", "enabled", enabled, "visible", len(n.filtered))
	return n.Visit()
}

func (n *Navigator) refilter() {
	if !n.incompleteOnly {
		n.filtered = slices.Clone(n.imageList)
		return
	}

	n.filtered = nil
	for _, path := range n.imageList {
		record, ok := n.store.Get(path)
		if !ok || !domain.IsComplete(record, n.cards) {
			n.filtered = append(n.filtered, path)
		}
	}
}

func (n *Navigator) clamp(index int) int {
	if index < 0 || len(n.filtered) == 0 {
		return 0
	}
	if index >= len(n.filtered) {
		return len(n.filtered) - 1
	}
	return index
}

// AddImage appends an image that appeared in the working directory. It
// reports false when the image is already known.
func (n *Navigator) AddImage(path string) bool {
	key := domain.BaseFilename(path)
	if slices.ContainsFunc(n.imageList, func(p string) bool { return domain.BaseFilename(p) == key }) {
		return false
	}

	n.imageList = append(n.imageList, path)
	if !n.incompleteOnly {
		n.filtered = append(n.filtered, path)
	} else if record, ok := n.store.Get(path); !ok || !domain.IsComplete(record, n.cards) {
		n.filtered = append(n.filtered, path)
	}
	logging.Logger.Info("Image added", "path", path, "total", len(n.imageList))
	n.persistence.SaveState(n.saveParams())
	return true
}

// ApplyPreviousTags copies the annotations of the previous visible image onto
// the current one. It reports false at the first image or when the previous
// image has no record.
func (n *Navigator) ApplyPreviousTags() (domain.QCRecord, bool) {
	current, ok := n.Current()
	if !ok || n.index == 0 {
		return domain.QCRecord{}, false
	}
	previous, ok := n.store.Get(n.filtered[n.index-1])
	if !ok {
		logging.Logger.Info("No record for previous image", "filename", domain.BaseFilename(n.filtered[n.index-1]))
		return domain.QCRecord{}, false
	}
	record := n.store.ApplyTags(current, previous)
	logging.Logger.Info("Applied previous tags", "from", previous.Filename, "to", record.Filename)
	return record, true
}

// SetCustomCards replaces the cards and saves the session state
func (n *Navigator) SetCustomCards(cards []domain.CustomCard) {
	n.cards = slices.Clone(cards)
	n.persistence.SaveState(n.saveParams())
}

// Finish logs the time spent on the current image and saves everything
func (n *Navigator) Finish(ctx context.Context) (*CSVSaveResult, error) {
	if record, ok := n.CurrentRecord(); ok {
		n.timer.Leave(ctx, record, n.cards)
	}
	return n.Save()
}

func (n *Navigator) saveParams() SaveParams {
	return SaveParams{
		CSVFilename:  n.csvFilename,
		CurrentIndex: n.index,
		CustomCards:  n.cards,
		Directory:    n.dir,
		ImageList:    n.imageList,
		QCName:       n.reviewer,
		Records:      n.store.Snapshot(),
	}
}
