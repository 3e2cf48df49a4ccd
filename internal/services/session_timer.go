package services

import (
	"context"
	"time"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// SessionTimer measures time spent per image and appends one audit log row
// each time the reviewer leaves an image. The end of one timing is the start
// of the next.
type SessionTimer struct {
	clock     ports.Clock
	log       ports.ReviewLogWriter
	sessionID int64
	start     time.Time
}

// NewSessionTimer creates a timer logging under sessionID. A nil log
// disables the audit rows but keeps the clock running.
func NewSessionTimer(log ports.ReviewLogWriter, sessionID int64, clock ports.Clock) *SessionTimer {
	return &SessionTimer{
		clock:     clock,
		log:       log,
		sessionID: sessionID,
	}
}

// Started reports whether a start time has been recorded
func (t *SessionTimer) Started() bool {
	return !t.start.IsZero()
}

// Leave records the time spent on record. The first call only starts the
// clock. It returns the elapsed seconds, or 0 when nothing was logged. Log
// write failures are logged and not returned.
func (t *SessionTimer) Leave(ctx context.Context, record domain.QCRecord, cards []domain.CustomCard) float64 {
	now := t.clock.Now()
	if t.start.IsZero() {
		t.start = now
		return 0
	}

	start := t.start
	t.start = now
	elapsed := now.Sub(start).Seconds()

	if t.log == nil {
		return elapsed
	}

	entry := ports.ReviewLogEntry{
		CustomFields:     customFieldValues(record, cards),
		ImageEnd:         now,
		ImageStart:       start,
		Record:           record.Clone(),
		SessionID:        t.sessionID,
		TimeSpentSeconds: elapsed,
	}
	if err := t.log.SaveRecord(ctx, entry); err != nil {
		logging.Logger.Error("Failed to save review log row", "filename", record.Filename, "error", err)
		return elapsed
	}
	logging.Logger.Debug("Review log row saved", "filename", record.Filename, "seconds", elapsed)
	return elapsed
}

// customFieldValues collects the card-contributed fields of record
func customFieldValues(record domain.QCRecord, cards []domain.CustomCard) map[string]string {
	out := make(map[string]string)
	for _, card := range cards {
		for _, col := range card.Columns() {
			out[col] = record.Field(col)
		}
	}
	for key, value := range record.Custom {
		if _, ok := out[key]; !ok {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
