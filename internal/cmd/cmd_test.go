package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/config"
	"github.com/imagecheck/qcreview/internal/ports"
)

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"right", "l"}, parseKeyValues(" right, ,l "))
	assert.Empty(t, parseKeyValues(" , "))
}

func TestShadowedOptions(t *testing.T) {
	shadowed := shadowedOptions([]string{"r", "ctrl+r", "1"})

	require.Len(t, shadowed, 2)
	assert.Equal(t, "Right", shadowed[0].Label)
	assert.Equal(t, "Outline", shadowed[1].Label)
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for n, want := range tests {
		assert.Equal(t, want, formatNumber(n))
	}
}

func TestNewHistoryEntry(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Second)

	open := newHistoryEntry(ports.ReviewSession{ID: 1, FolderPath: "/shots", QCName: "Alice", SessionStart: start})
	assert.Empty(t, open.Duration)
	assert.Nil(t, open.End)

	closed := newHistoryEntry(ports.ReviewSession{ID: 2, SessionStart: start, SessionEnd: &end})
	assert.Equal(t, "1m35s", closed.Duration)
}

func TestTrimAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, trimAll([]string{" a", "", "b "}))
}

func newTestCLI(t *testing.T, settings *config.Settings, args ...string) *CLI {
	t.Helper()
	t.Setenv("QCREVIEW_HOME", t.TempDir())

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli, kong.Name("qcreview"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	_, err = parser.Parse(args)
	require.NoError(t, err)
	t.Cleanup(func() { cli.Close() })
	return &cli
}

func TestCLI_AfterApplyWiresContainer(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{}, "stats", "--reviewer", "Alice")

	require.NotNil(t, cli.Container)
	assert.Equal(t, filepath.Join(config.GetHome(), "qc_analytics.sqlite"), cli.DB)
	assert.Equal(t, "Alice", cli.Stats.Reviewer)
}

func TestCLI_SettingsFillDefaults(t *testing.T) {
	sound := false
	settings := &config.Settings{Reviewer: "Bob", Sound: &sound}

	cli := newTestCLI(t, settings, "history")

	assert.True(t, cli.NoSound)
	assert.Equal(t, "Bob", cli.reviewerOr(""))
	assert.Equal(t, "Carol", cli.reviewerOr("Carol"))
}

func TestCLI_InvalidKeyBindingsRejected(t *testing.T) {
	t.Setenv("QCREVIEW_HOME", t.TempDir())
	settings := &config.Settings{Keys: config.KeyBindingsConfig{"archive": {"a"}}}

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli, kong.Name("qcreview"))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"history", "--reviewer", "Alice"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive")
	assert.Nil(t, cli.Container)
}
