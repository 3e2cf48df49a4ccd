package ports

import (
	"context"
	"time"

	"github.com/imagecheck/qcreview/internal/domain"
)

// ReviewLogEntry is one row of the append-only review audit log
type ReviewLogEntry struct {
	CustomFields     map[string]string
	ImageEnd         time.Time
	ImageStart       time.Time
	Record           domain.QCRecord
	SessionID        int64
	TimeSpentSeconds float64
}

// ReviewSession describes one run of the tool against a directory
type ReviewSession struct {
	CreatedAt    time.Time
	FolderPath   string
	ID           int64
	QCName       string
	SessionEnd   *time.Time
	SessionStart time.Time
}

// AnalyticsSummary aggregates a reviewer's logged rows
type AnalyticsSummary struct {
	AverageTimeSeconds *float64
	TotalImages        int64
	TotalRight         int64
	TotalWrong         int64
}

// AnalyticsRecord is the slice of a logged row used for charts
type AnalyticsRecord struct {
	Filename         string
	NextAction       string
	QCDate           string
	QCDecision       string
	QCObservations   string
	TimeSpentSeconds float64
}

// ReviewLogWriter appends sessions and per-image rows
type ReviewLogWriter interface {
	CreateSession(ctx context.Context, reviewer, folderPath string) (int64, error)
	EndSession(ctx context.Context, sessionID int64) error
	SaveRecord(ctx context.Context, entry ReviewLogEntry) error
}

// ReviewLogReader runs the analytics queries. Only rows with a measured
// time of at most MaxCountedSeconds are counted.
type ReviewLogReader interface {
	GetAnalyticsSummary(ctx context.Context, reviewer string) (*AnalyticsSummary, error)
	ListAnalyticsRecords(ctx context.Context, reviewer string) ([]AnalyticsRecord, error)
	ListSessions(ctx context.Context, reviewer string) ([]ReviewSession, error)
}

// MaxCountedSeconds excludes idle time from analytics
const MaxCountedSeconds = 8.0

// Repository is the composite interface backed by the local database
type Repository interface {
	SettingsRepository
	ReviewLogWriter
	ReviewLogReader
	Close() error
}
