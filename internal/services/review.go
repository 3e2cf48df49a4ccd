package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// OpenParams contains parameters for opening a review
type OpenParams struct {
	Directory      string
	IncompleteOnly bool
	Reviewer       string
}

// Review is an open review of one working directory
type Review struct {
	Navigator *Navigator
	// SaveErr is set when the first save of the opened image failed
	SaveErr   error
	SessionID int64
	Settings  AppSettings
	Source    StartupSource
	Store     *RecordStore
}

// FinishResult is the outcome of closing a review
type FinishResult struct {
	CSV      *CSVSaveResult
	Organize *OrganizeResult
}

// ReviewService opens and closes reviews, tying persistence, the audit log
// and settings together
type ReviewService struct {
	clock         ports.Clock
	fs            ports.FileSystem
	logWriter     ports.ReviewLogWriter
	notifications *NotificationService
	organizer     *OrganizerService
	persistence   *PersistenceService
	settings      *SettingsService
}

// ReviewServiceParams contains the dependencies of a ReviewService
type ReviewServiceParams struct {
	Clock         ports.Clock
	FileSystem    ports.FileSystem
	LogWriter     ports.ReviewLogWriter
	Notifications *NotificationService
	Organizer     *OrganizerService
	Persistence   *PersistenceService
	Settings      *SettingsService
}

// NewReviewService creates a new ReviewService
func NewReviewService(params ReviewServiceParams) *ReviewService {
	return &ReviewService{
		clock:         params.Clock,
		fs:            params.FileSystem,
		logWriter:     params.LogWriter,
		notifications: params.Notifications,
		organizer:     params.Organizer,
		persistence:   params.Persistence,
		settings:      params.Settings,
	}
}

// Open starts a review of params.Directory. The state file, when present,
// resumes the previous review; cards saved in settings take precedence over
// those in the state file.
func (s *ReviewService) Open(ctx context.Context, params OpenParams) (*Review, error) {
	reviewer := strings.TrimSpace(params.Reviewer)
	if reviewer == "" {
		return nil, domain.ErrNoReviewer
	}

	logging.Logger.Info("Opening review", "dir", params.Directory, "reviewer", reviewer)

	settings, err := s.settings.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Using default app settings", "error", err)
	}

	images, err := s.fs.ListImageFiles(params.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoImages, params.Directory)
	}

	var timerLog ports.ReviewLogWriter
	sessionID, err := s.logWriter.CreateSession(ctx, reviewer, params.Directory)
	if err != nil {
		logging.Logger.Error("Failed to create review session, timing disabled", "error", err)
	} else {
		timerLog = s.logWriter
	}

	startup, err := s.persistence.Reconcile(params.Directory, reviewer)
	if err != nil {
		return nil, err
	}

	store := NewRecordStore(s.clock, settings.ObservationOptions())
	store.Replace(startup.Records)

	cards := startup.CustomCards
	if settings.CustomCards != nil {
		cards = settings.CustomCards
	}

	nav := NewNavigator(NavigatorParams{
		CSVFilename:    startup.CSVFilename,
		CurrentIndex:   startup.CurrentIndex,
		CustomCards:    cards,
		Directory:      params.Directory,
		ImageList:      images,
		IncompleteOnly: params.IncompleteOnly,
		Persistence:    s.persistence,
		Reviewer:       reviewer,
		Store:          store,
		Timer:          NewSessionTimer(timerLog, sessionID, s.clock),
	})

	review := &Review{
		Navigator: nav,
		SessionID: sessionID,
		Settings:  settings,
		Source:    startup.Source,
		Store:     store,
	}

	csv, err := nav.Visit()
	if err != nil {
		logging.Logger.Error("Initial save failed", "error", err)
		review.SaveErr = err
	}
	s.notifyCSV(csv)

	logging.Logger.Info("Review opened",
		"images", len(images),
		"records", store.Len(),
		"source", startup.Source,
		"sessionID", sessionID)
	return review, nil
}

// Close saves the review and ends its audit session without organizing
// any files
func (s *ReviewService) Close(ctx context.Context, review *Review) (*CSVSaveResult, error) {
	csv, err := review.Navigator.Finish(ctx)
	if err != nil {
		return nil, err
	}
	s.notifyCSV(csv)

	if review.SessionID != 0 {
		if err := s.logWriter.EndSession(ctx, review.SessionID); err != nil {
			logging.Logger.Error("Failed to end review session", "sessionID", review.SessionID, "error", err)
		}
	}
	return csv, nil
}

// Finish closes the review and organizes images needing follow-up. A CSV
// failure stops before anything else happens.
func (s *ReviewService) Finish(ctx context.Context, review *Review) (*FinishResult, error) {
	csv, err := s.Close(ctx, review)
	if err != nil {
		return nil, err
	}

	nav := review.Navigator
	organized, err := s.organizer.Organize(ctx, OrganizeParams{
		CustomCards: nav.CustomCards(),
		Directory:   nav.Directory(),
		ImageList:   nav.AllImages(),
		Records:     review.Store.Snapshot(),
		Reviewer:    nav.Reviewer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to organize files: %w", err)
	}

	s.notify(EventReviewFinished)
	return &FinishResult{CSV: csv, Organize: organized}, nil
}

// AddCustomCard validates card, stores the new card list in settings and
// applies it to the review
func (s *ReviewService) AddCustomCard(ctx context.Context, review *Review, card domain.CustomCard) ([]domain.CustomCard, error) {
	cards, err := domain.AddCard(review.Navigator.CustomCards(), card)
	if err != nil {
		return nil, err
	}
	return cards, s.applyCards(ctx, review, cards)
}

// RemoveCustomCard drops the card with id from settings and the review
func (s *ReviewService) RemoveCustomCard(ctx context.Context, review *Review, id string) ([]domain.CustomCard, error) {
	cards, err := domain.RemoveCard(review.Navigator.CustomCards(), id)
	if err != nil {
		return nil, err
	}
	return cards, s.applyCards(ctx, review, cards)
}

func (s *ReviewService) applyCards(ctx context.Context, review *Review, cards []domain.CustomCard) error {
	if err := s.settings.SaveCustomCards(ctx, cards); err != nil {
		return fmt.Errorf("failed to save custom cards: %w", err)
	}
	review.Settings.CustomCards = cards
	review.Navigator.SetCustomCards(cards)
	s.notify(EventCardSaved)
	logging.Logger.Info("Custom cards updated", "count", len(cards))
	return nil
}

// HandleNavigation announces the outcome of a move
func (s *ReviewService) HandleNavigation(result *NavigationResult, err error) {
	var saveErr *CSVSaveError
	switch {
	case errors.As(err, &saveErr):
		s.notify(EventNextBlocked)
	case result == nil:
	case len(result.Missing) > 0:
		s.notify(EventNextBlocked)
	default:
		s.notifyCSV(result.CSV)
		if result.Moved {
			s.notify(EventNavigation)
		}
	}
}

func (s *ReviewService) notifyCSV(csv *CSVSaveResult) {
	if csv != nil && csv.Warning != "" {
		s.notify(EventCSVFallback)
	}
}

func (s *ReviewService) notify(event string) {
	if s.notifications != nil {
		s.notifications.Notify(event)
	}
}
