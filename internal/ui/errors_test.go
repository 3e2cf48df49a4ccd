package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imagecheck/qcreview/internal/services"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil error", err: nil, width: 80, expected: ""},
		{name: "short error", err: errors.New("boom"), width: 80, expected: "Error: boom"},
		{name: "wraps to second line", err: errors.New("one two three four"), width: 16, expected: "Error: one two\nthree four"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_Truncates(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 60))

	got := formatErrorForDisplay(err, 40)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(got, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
}

func TestFormatErrorForDisplay_AppendsHint(t *testing.T) {
	err := &services.CSVSaveError{Err: errors.New("disk full"), Path: "/qc/out.csv"}

	got := formatErrorForDisplay(err, 400)

	assert.Contains(t, got, "disk full")
	assert.Contains(t, got, "write permissions")
}

func TestErrorManager(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	assert.False(t, em.HasError())

	em.SetError(errors.New("failed"))
	assert.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "failed")
	assert.NotNil(t, em.ClearAfterDelay())

	em.ClearError()
	assert.False(t, em.HasError())
}
