package domain

import (
	"regexp"
	"time"
)

const (
	qcDateLayout       = "02/01/2006 15:04:05"
	csvTimestampLayout = "2006-01-02_15_04"
)

var reviewerStrip = regexp.MustCompile(`[^a-zA-Z0-9\s_-]`)

// ISOWeek returns the ISO 8601 week number of t.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// FormatQCDate formats t as DD/MM/YYYY HH:MM:SS.
func FormatQCDate(t time.Time) string {
	return t.Format(qcDateLayout)
}

// ParseQCDate parses a QC Date value in the local time zone.
func ParseQCDate(s string) (time.Time, error) {
	return time.ParseInLocation(qcDateLayout, s, time.Local)
}

// FormatCSVTimestamp formats t as YYYY-MM-DD_HH_MM.
func FormatCSVTimestamp(t time.Time) string {
	return t.Format(csvTimestampLayout)
}

// SanitizeReviewerName keeps letters, digits, spaces, underscores and
// hyphens, then collapses whitespace runs to an underscore.
func SanitizeReviewerName(name string) string {
	return whitespaceRun.ReplaceAllString(reviewerStrip.ReplaceAllString(name, ""), "_")
}

// GenerateCSVFilename returns {reviewer}_{YYYY-MM-DD_HH_MM}.CSV.
func GenerateCSVFilename(reviewer string, now time.Time) string {
	return GenerateOutputFolderName(reviewer, now) + ".CSV"
}

// GenerateOutputFolderName returns {reviewer}_{YYYY-MM-DD_HH_MM}.
func GenerateOutputFolderName(reviewer string, now time.Time) string {
	return SanitizeReviewerName(reviewer) + "_" + FormatCSVTimestamp(now)
}
