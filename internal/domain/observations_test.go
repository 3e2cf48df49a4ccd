package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitObservations(t *testing.T) {
	assert.Nil(t, SplitObservations(""))
	assert.Nil(t, SplitObservations(" ; ;"))
	assert.Equal(t, []string{"Outline", "Shadow"}, SplitObservations(" Outline ;;Shadow "))
}

func TestJoinObservations(t *testing.T) {
	assert.Equal(t, "", JoinObservations(nil))
	assert.Equal(t, "Outline;Shadow", JoinObservations([]string{"Outline", " ", " Shadow"}))
}

func TestStripCommentFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Comment", ""},
		{"Outline;Comment", "Outline"},
		{"Outline;Comment;needs rework", "Outline;needs rework"},
		{"Commentary", "Commentary"},
		{"Outline; Shadow", "Outline; Shadow"},
		{"Outline; Comment; Shadow", "Outline; Shadow"},
		{" Comment ;dark edge", "dark edge"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCommentFlag(tt.input))
		})
	}
}

func TestToggleObservation(t *testing.T) {
	opts := DefaultObservations()

	tests := []struct {
		name     string
		current  string
		label    string
		expected string
	}{
		{"add to empty", "", "Outline", "Outline"},
		{"add second", "Outline", "Shadow", "Outline;Shadow"},
		{"remove", "Outline;Shadow", "Outline", "Shadow"},
		{"add comment flag", "Outline", "Comment", "Outline;Comment"},
		{"label goes before free text", "Outline;Comment;needs work", "Shadow", "Outline;Comment;Shadow;needs work"},
		{"removing comment drops free text", "Outline;Comment;needs work", "Comment", "Outline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToggleObservation(tt.current, tt.label, opts))
		})
	}
}

func TestToggleObservation_SingleCommentLabel(t *testing.T) {
	opts := append(DefaultObservations(), Option{ID: "client", Label: "Client comment", Shortcut: "7"})

	result := ToggleObservation("Outline;Comment", "Client comment", opts)

	assert.Equal(t, "Outline;Client comment", result)
}

func TestObservationComment(t *testing.T) {
	opts := DefaultObservations()

	assert.Equal(t, "", ObservationComment("Outline;Comment", opts))
	assert.Equal(t, "needs work", ObservationComment("Outline;Comment;needs work", opts))
}

func TestSetObservationComment(t *testing.T) {
	opts := DefaultObservations()

	t.Run("stored while comment selected", func(t *testing.T) {
		result := SetObservationComment("Outline;Comment", "edge halo", opts)
		assert.Equal(t, "Outline;Comment;edge halo", result)
	})

	t.Run("replaces previous text", func(t *testing.T) {
		result := SetObservationComment("Outline;Comment;old", "new", opts)
		assert.Equal(t, "Outline;Comment;new", result)
	})

	t.Run("semicolons are not token separators", func(t *testing.T) {
		result := SetObservationComment("Comment", "a;b", opts)
		assert.Equal(t, "Comment;a,b", result)
	})

	t.Run("ignored without comment flag", func(t *testing.T) {
		result := SetObservationComment("Outline", "ignored", opts)
		assert.Equal(t, "Outline", result)
	})
}

func TestIsCommentLabel(t *testing.T) {
	assert.True(t, IsCommentLabel("Comment"))
	assert.True(t, IsCommentLabel("client COMMENTS"))
	assert.False(t, IsCommentLabel("Outline"))
}

func TestFindByShortcut(t *testing.T) {
	opt, ok := FindByShortcut(DefaultNextActions(), "s")
	assert.True(t, ok)
	assert.Equal(t, NextActionRetouch, opt.Label)

	_, ok = FindByShortcut(DefaultNextActions(), "z")
	assert.False(t, ok)
}
