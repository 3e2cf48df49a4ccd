package cmd

import (
	adapterclock "github.com/imagecheck/qcreview/internal/adapters/clock"
	adapterfs "github.com/imagecheck/qcreview/internal/adapters/filesystem"
	adaptersound "github.com/imagecheck/qcreview/internal/adapters/sound"
	adapterstorage "github.com/imagecheck/qcreview/internal/adapters/storage"
	adapterviewer "github.com/imagecheck/qcreview/internal/adapters/viewer"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
	"github.com/imagecheck/qcreview/internal/services"
)

// ContainerParams configures the wiring of a Container
type ContainerParams struct {
	CopyWorkers int
	DBPath      string
	Sound       bool
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	AnalyticsService    *services.AnalyticsService
	NotificationService *services.NotificationService
	OrganizerService    *services.OrganizerService
	PersistenceService  *services.PersistenceService
	ReviewService       *services.ReviewService
	SettingsService     *services.SettingsService

	// Adapters used directly by commands
	FileSystem ports.FileSystem
	Viewer     ports.ImageViewer

	clock ports.Clock

	// Internal - for cleanup only
	repo ports.Repository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(params ContainerParams) (*Container, error) {
	// Create adapters
	repo, err := adapterstorage.NewSQLiteRepository(params.DBPath)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Analytics database opened", "path", params.DBPath)

	clock := adapterclock.NewSystem()
	fs := adapterfs.NewLocalFileSystem()
	soundPlayer := adaptersound.NewPlayer()

	// Create services
	analyticsService := services.NewAnalyticsService(repo)
	notificationService := services.NewNotificationService(soundPlayer, params.Sound)
	persistenceService := services.NewPersistenceService(fs, clock)
	organizerService := services.NewOrganizerService(fs, persistenceService, clock, params.CopyWorkers)
	settingsService := services.NewSettingsService(repo)
	reviewService := services.NewReviewService(services.ReviewServiceParams{
		Clock:         clock,
		FileSystem:    fs,
		LogWriter:     repo,
		Notifications: notificationService,
		Organizer:     organizerService,
		Persistence:   persistenceService,
		Settings:      settingsService,
	})

	return &Container{
		AnalyticsService:    analyticsService,
		NotificationService: notificationService,
		OrganizerService:    organizerService,
		PersistenceService:  persistenceService,
		ReviewService:       reviewService,
		SettingsService:     settingsService,
		FileSystem:          fs,
		Viewer:              adapterviewer.NewOpener(),
		clock:               clock,
		repo:                repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
