package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// DatabaseFileName is the analytics database created inside the app home
const DatabaseFileName = "qc_analytics.sqlite"

// SQLiteRepository implements ports.Repository using GORM
type SQLiteRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Verify interface compliance at compile time
var _ ports.Repository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the application logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if logging.DebugEnabled() {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the stats command read while a review is running
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ReviewSessionModel{}, &QCRecordModel{}, &AppSettingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// NewSQLiteRepositoryForPath opens the database inside an app home directory
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, DatabaseFileName))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveSetting implements SettingsRepository.SaveSetting
func (r *SQLiteRepository) SaveSetting(ctx context.Context, key, value string) error {
	return withRetry(ctx, func() error {
		model := AppSettingModel{Key: key, Value: value}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
		return nil
	})
}

// LoadAllSettings implements SettingsRepository.LoadAllSettings
func (r *SQLiteRepository) LoadAllSettings(ctx context.Context) (map[string]string, error) {
	var models []AppSettingModel
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := make(map[string]string, len(models))
	for _, m := range models {
		settings[m.Key] = m.Value
	}
	return settings, nil
}

// CreateSession implements ReviewLogWriter.CreateSession
func (r *SQLiteRepository) CreateSession(ctx context.Context, reviewer, folderPath string) (int64, error) {
	model := ReviewSessionModel{
		FolderPath:   folderPath,
		QCName:       reviewer,
		SessionStart: r.now().UTC(),
	}
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}

	logging.Logger.Debug("Review session created", "id", model.ID, "reviewer", reviewer, "folder", folderPath)
	return model.ID, nil
}

// EndSession implements ReviewLogWriter.EndSession
func (r *SQLiteRepository) EndSession(ctx context.Context, sessionID int64) error {
	return withRetry(ctx, func() error {
		result := r.db.WithContext(ctx).Model(&ReviewSessionModel{}).
			Where("id = ?", sessionID).
			Update("session_end", r.now().UTC())
		if result.Error != nil {
			return fmt.Errorf("failed to end session %d: %w", sessionID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %d not found", sessionID)
		}
		return nil
	})
}

// SaveRecord implements ReviewLogWriter.SaveRecord. Rows are appended,
// never updated.
func (r *SQLiteRepository) SaveRecord(ctx context.Context, entry ports.ReviewLogEntry) error {
	model, err := entryToRecordModel(entry)
	if err != nil {
		return err
	}

	return withRetry(ctx, func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save record %s: %w", entry.Record.Filename, err)
		}
		return nil
	})
}

// countedRows scopes a query to a reviewer's rows with a plausible time
func countedRows(db *gorm.DB, reviewer string) *gorm.DB {
	return db.Where("qc_name = ? AND time_spent_seconds IS NOT NULL AND time_spent_seconds <= ?",
		reviewer, ports.MaxCountedSeconds)
}

// GetAnalyticsSummary implements ReviewLogReader.GetAnalyticsSummary
func (r *SQLiteRepository) GetAnalyticsSummary(ctx context.Context, reviewer string) (*ports.AnalyticsSummary, error) {
	var row struct {
		AverageTime *float64 `gorm:"column:average_time"`
		RightCount  int64    `gorm:"column:right_count"`
		Total       int64    `gorm:"column:total"`
		WrongCount  int64    `gorm:"column:wrong_count"`
	}

	err := withRetry(ctx, func() error {
		return countedRows(r.db.WithContext(ctx).Model(&QCRecordModel{}), reviewer).
			Select(`COUNT(*) AS total,
				COALESCE(SUM(CASE WHEN qc_decision = 'Right' THEN 1 ELSE 0 END), 0) AS right_count,
				COALESCE(SUM(CASE WHEN qc_decision = 'Wrong' THEN 1 ELSE 0 END), 0) AS wrong_count,
				AVG(time_spent_seconds) AS average_time`).
			Scan(&row).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics summary: %w", err)
	}

	return &ports.AnalyticsSummary{
		AverageTimeSeconds: row.AverageTime,
		TotalImages:        row.Total,
		TotalRight:         row.RightCount,
		TotalWrong:         row.WrongCount,
	}, nil
}

// ListAnalyticsRecords implements ReviewLogReader.ListAnalyticsRecords
func (r *SQLiteRepository) ListAnalyticsRecords(ctx context.Context, reviewer string) ([]ports.AnalyticsRecord, error) {
	var models []QCRecordModel
	err := withRetry(ctx, func() error {
		return countedRows(r.db.WithContext(ctx), reviewer).
			Order("qc_date").
			Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics records: %w", err)
	}

	records := make([]ports.AnalyticsRecord, 0, len(models))
	for _, m := range models {
		records = append(records, recordModelToAnalytics(m))
	}
	return records, nil
}

// ListSessions implements ReviewLogReader.ListSessions, newest first
func (r *SQLiteRepository) ListSessions(ctx context.Context, reviewer string) ([]ports.ReviewSession, error) {
	var models []ReviewSessionModel
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("qc_name = ?", reviewer).
			Order("session_start DESC").
			Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query session history: %w", err)
	}

	sessions := make([]ports.ReviewSession, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, sessionModelToPorts(m))
	}
	return sessions, nil
}

// withRetry retries operations on SQLITE_BUSY/SQLITE_LOCKED with linear backoff
func withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(3),
		retry.LastErrorOnly(true),
		retry.RetryIf(isBusy),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return time.Millisecond * time.Duration(50*(n+1))
		}),
	)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
