package storage

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/ports"
)

// entryToRecordModel converts a log entry to a QCRecordModel (GORM).
// Custom fields are stored as a single JSON object, or NULL when empty.
func entryToRecordModel(e ports.ReviewLogEntry) (QCRecordModel, error) {
	r := e.Record
	m := QCRecordModel{
		Filename:            r.Filename,
		Namespace:           r.Namespace,
		NextAction:          r.NextAction,
		NextActionComment:   r.NextActionComment,
		QCDate:              r.QCDate,
		QCDecision:          r.QCDecision,
		QCName:              r.QCName,
		QCObservations:      r.QCObservations,
		ReceivedDate:        r.ReceivedDate,
		RetouchObservations: r.RetouchObservations,
		RetouchQuality:      r.RetouchQuality,
		SessionID:           e.SessionID,
		WeekNumber:          r.WeekNumber,
	}

	if !e.ImageStart.IsZero() {
		start := e.ImageStart.UTC()
		m.ImageStartTime = &start
	}
	if !e.ImageEnd.IsZero() {
		end := e.ImageEnd.UTC()
		m.ImageEndTime = &end
	}
	if !e.ImageStart.IsZero() && !e.ImageEnd.IsZero() {
		spent := e.TimeSpentSeconds
		m.TimeSpentSeconds = &spent
	}

	if len(e.CustomFields) > 0 {
		data, err := json.Marshal(e.CustomFields)
		if err != nil {
			return QCRecordModel{}, fmt.Errorf("failed to encode custom fields: %w", err)
		}
		s := string(data)
		m.CustomFieldsJSON = &s
	}

	return m, nil
}

// recordModelToAnalytics converts a QCRecordModel to ports.AnalyticsRecord
func recordModelToAnalytics(m QCRecordModel) ports.AnalyticsRecord {
	rec := ports.AnalyticsRecord{
		Filename:       m.Filename,
		NextAction:     m.NextAction,
		QCDate:         m.QCDate,
		QCDecision:     m.QCDecision,
		QCObservations: m.QCObservations,
	}
	if m.TimeSpentSeconds != nil {
		rec.TimeSpentSeconds = *m.TimeSpentSeconds
	}
	return rec
}

// sessionModelToPorts converts a ReviewSessionModel to ports.ReviewSession
func sessionModelToPorts(m ReviewSessionModel) ports.ReviewSession {
	return ports.ReviewSession{
		CreatedAt:    m.CreatedAt,
		FolderPath:   m.FolderPath,
		ID:           m.ID,
		QCName:       m.QCName,
		SessionEnd:   m.SessionEnd,
		SessionStart: m.SessionStart,
	}
}
