package harness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/imagecheck/qcreview/internal/adapters/storage"
	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/ports"
)

// TestEnvironment provides an isolated test environment with its own QCREVIEW_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp QCREVIEW_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out QCREVIEW_* variables and sets:
//   - QCREVIEW_HOME to the temp directory
//   - QCREVIEW_DEBUG to empty string (disables debug logging)
//   - QCREVIEW_NO_SOUND to "true"
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing QCREVIEW_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "QCREVIEW_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"QCREVIEW_HOME="+e.Home,
		"QCREVIEW_DEBUG=",
		"QCREVIEW_NO_SOUND=true",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "qc_analytics.sqlite")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes a raw settings.json for the test.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// SeedReviewLog writes one finished session with the given records to the
// test database, each timed at seconds.
func (e *TestEnvironment) SeedReviewLog(reviewer, folder string, seconds float64, records ...domain.QCRecord) {
	e.tb.Helper()

	repo, err := storage.NewSQLiteRepository(e.DBPath())
	if err != nil {
		e.tb.Fatalf("Failed to open test database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	sessionID, err := repo.CreateSession(ctx, reviewer, folder)
	if err != nil {
		e.tb.Fatalf("Failed to create session: %v", err)
	}

	start := time.Now().Add(-time.Minute)
	for _, record := range records {
		entry := ports.ReviewLogEntry{
			CustomFields:     record.Custom,
			ImageEnd:         start.Add(time.Duration(seconds * float64(time.Second))),
			ImageStart:       start,
			Record:           record,
			SessionID:        sessionID,
			TimeSpentSeconds: seconds,
		}
		if err := repo.SaveRecord(ctx, entry); err != nil {
			e.tb.Fatalf("Failed to save record %s: %v", record.Filename, err)
		}
	}

	if err := repo.EndSession(ctx, sessionID); err != nil {
		e.tb.Fatalf("Failed to end session: %v", err)
	}
}
