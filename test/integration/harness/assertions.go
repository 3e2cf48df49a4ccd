package harness

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/domain"
)

const utf8BOM = "\ufeff"

// AssertSuccess fails the test unless the command exited with 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "expected success\n%s", result)
}

// AssertFailure fails the test if the command exited with 0.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected a failure\n%s", result)
}

// AssertStdoutContains checks stdout for expected.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "%s", result)
}

// AssertStdoutNotContains checks that stdout lacks unexpected.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "%s", result)
}

// AssertStderrContains checks stderr for expected. Command errors and CSV
// save hints are printed there.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "%s", result)
}

// DecodeJSON unmarshals the --format json output of a command into target.
func DecodeJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "expected JSON output\n%s", result)
}

// AssertJSONField checks one top level key of a JSON object on stdout.
func AssertJSONField(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	DecodeJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q", key)
}

// CSVExport is a parsed review CSV.
type CSVExport struct {
	Header []string
	Rows   [][]string
}

// ReadCSVExport parses the CSV at path. The file must start with the UTF-8
// BOM spreadsheet tools expect.
func ReadCSVExport(tb testing.TB, path string) CSVExport {
	tb.Helper()

	data, err := os.ReadFile(path)
	require.NoError(tb, err, "failed to read CSV")
	content := string(data)
	require.True(tb, strings.HasPrefix(content, utf8BOM), "CSV %s has no BOM", path)

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, utf8BOM))).ReadAll()
	require.NoError(tb, err, "failed to parse CSV %s", path)
	require.NotEmpty(tb, records, "CSV %s has no header", path)

	return CSVExport{Header: records[0], Rows: records[1:]}
}

// Filenames returns the Filename column in row order.
func (e CSVExport) Filenames() []string {
	col := e.column(domain.FieldFilename)
	names := make([]string, 0, len(e.Rows))
	for _, row := range e.Rows {
		names = append(names, row[col])
	}
	return names
}

// AssertCell checks the value of column in the row for filename.
func (e CSVExport) AssertCell(tb testing.TB, filename, column, expected string) {
	tb.Helper()

	col := e.column(column)
	require.GreaterOrEqual(tb, col, 0, "CSV has no %q column: %v", column, e.Header)
	for _, row := range e.Rows {
		if row[e.column(domain.FieldFilename)] == filename {
			assert.Equal(tb, expected, row[col], "%s %s", filename, column)
			return
		}
	}
	tb.Errorf("CSV has no row for %s: %v", filename, e.Filenames())
}

func (e CSVExport) column(name string) int {
	for i, h := range e.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// ReadState loads the JSON session state kept in dir.
func ReadState(tb testing.TB, dir string) domain.SavedState {
	tb.Helper()

	data, err := os.ReadFile(domain.StateFilePath(dir))
	require.NoError(tb, err, "failed to read state file")
	var state domain.SavedState
	require.NoError(tb, json.Unmarshal(data, &state), "state file is not valid JSON")
	return state
}
