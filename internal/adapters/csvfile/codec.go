// Package csvfile reads and writes the review CSV export.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
)

const bom = "\ufeff"

// Columns returns the header row: the base columns followed by each card's
// fields in card order.
func Columns(cards []domain.CustomCard) []string {
	return append(slices.Clone(domain.BaseColumns), domain.CustomColumns(cards)...)
}

// Encode renders records as CSV. Only records with a QC decision are
// written, ordered by filename. Missing cells are empty and the bare
// "Comment" flag is removed from observation cells. It returns the content
// and the number of data rows.
func Encode(records map[string]domain.QCRecord, cards []domain.CustomCard) (string, int, error) {
	columns := Columns(cards)

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(columns); err != nil {
		return "", 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	keys := make([]string, 0, len(records))
	for key, record := range records {
		if record.QCDecision != "" {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	row := make([]string, len(columns))
	for _, key := range keys {
		record := records[key]
		for i, col := range columns {
			value := record.Field(col)
			switch col {
			case domain.FieldFilename:
				value = domain.BaseFilename(key)
			case domain.FieldQCObservations, domain.FieldRetouchObservations:
				value = domain.StripCommentFlag(value)
			}
			row[i] = value
		}
		if err := w.Write(row); err != nil {
			return "", 0, fmt.Errorf("failed to write CSV row for %s: %w", key, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), len(keys), nil
}

// Decode parses CSV content with a header row into records keyed by base
// filename. Rows without a Filename cell and malformed rows are skipped.
func Decode(content string) (map[string]domain.QCRecord, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, bom)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return map[string]domain.QCRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make(map[string]domain.QCRecord)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logging.Logger.Warn("Skipping malformed CSV row", "line", parseErr.Line, "error", err)
				continue
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		var record domain.QCRecord
		for i, col := range header {
			if col == "" || i >= len(row) {
				continue
			}
			record.SetField(col, row[i])
		}

		filename := domain.BaseFilename(strings.TrimSpace(record.Filename))
		if filename == "" {
			continue
		}
		record.Filename = filename
		records[filename] = record
	}

	return records, nil
}
