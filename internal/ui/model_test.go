package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/adapters/clock"
	"github.com/imagecheck/qcreview/internal/adapters/filesystem"
	"github.com/imagecheck/qcreview/internal/domain"
	portsmocks "github.com/imagecheck/qcreview/internal/ports/mocks"
	"github.com/imagecheck/qcreview/internal/services"
)

var modelTestImages = []string{
	"IMG-ABC-20250301-acme-front.jpg",
	"IMG-ABC-20250301-acme-side.jpg",
}

type modelFixture struct {
	dir   string
	model *Model
}

func newModelFixture(t *testing.T) *modelFixture {
	t.Helper()

	dir := t.TempDir()
	for _, name := range modelTestImages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpeg"), 0644))
	}

	logWriter := portsmocks.NewMockReviewLogWriter(t)
	logWriter.EXPECT().CreateSession(mock.Anything, "Alice", dir).Return(1, nil).Once()
	logWriter.EXPECT().SaveRecord(mock.Anything, mock.Anything).Return(nil).Maybe()
	logWriter.EXPECT().EndSession(mock.Anything, int64(1)).Return(nil).Maybe()

	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().LoadAllSettings(mock.Anything).Return(map[string]string{}, nil).Maybe()
	repo.EXPECT().SaveSetting(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	fs := filesystem.NewLocalFileSystem()
	clk := clock.NewSystem()
	persistence := services.NewPersistenceService(fs, clk)
	svc := services.NewReviewService(services.ReviewServiceParams{
		Clock:       clk,
		FileSystem:  fs,
		LogWriter:   logWriter,
		Organizer:   services.NewOrganizerService(fs, persistence, clk, 2),
		Persistence: persistence,
		Settings:    services.NewSettingsService(repo),
	})

	review, err := svc.Open(context.Background(), services.OpenParams{Directory: dir, Reviewer: "Alice"})
	require.NoError(t, err)

	model := NewModel(ModelParams{
		ErrorClearDelay: time.Minute,
		Review:          review,
		ReviewService:   svc,
	})
	model.Update(tea.WindowSizeMsg{Width: 160, Height: 50})

	return &modelFixture{dir: dir, model: model}
}

func (f *modelFixture) press(keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = f.model.Update(k)
	}
	return cmd
}

func (f *modelFixture) record(t *testing.T) domain.QCRecord {
	t.Helper()
	current, ok := f.model.review.Navigator.Current()
	require.True(t, ok)
	record, _ := f.model.review.Store.Get(current)
	return record
}

func (f *modelFixture) current() string {
	current, _ := f.model.review.Navigator.Current()
	return domain.BaseFilename(current)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_ShortcutsEditRecord(t *testing.T) {
	f := newModelFixture(t)

	f.press(runeKey('r'), runeKey('1'), tea.KeyMsg{Type: tea.KeyDown}, runeKey('b'), runeKey('s'))

	record := f.record(t)
	assert.Equal(t, domain.DecisionRight, record.QCDecision)
	assert.Equal(t, "Outline", record.QCObservations)
	assert.Equal(t, domain.QualityBad, record.RetouchQuality)
	assert.Equal(t, domain.NextActionRetouch, record.NextAction)
	assert.Equal(t, PanelRetouch, f.model.focus)
}

func TestModel_NextBlockedUntilComplete(t *testing.T) {
	f := newModelFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, modelTestImages[0], f.current())
	require.True(t, f.model.errorManager.HasError())
	assert.ErrorIs(t, f.model.errorManager.GetError(), domain.ErrIncomplete)
}

func TestModel_CSVFailureBlocksUntilDismissed(t *testing.T) {
	f := newModelFixture(t)
	csvPath := filepath.Join(f.dir, f.model.review.Navigator.CSVFilename())
	require.NoError(t, os.RemoveAll(csvPath))
	require.NoError(t, os.Mkdir(csvPath, 0755))

	f.press(runeKey('r'))

	require.Equal(t, stateSaveError, f.model.state)
	assert.False(t, f.model.errorManager.HasError(), "save failures are not shown in the status line")
	view := f.model.View()
	assert.Contains(t, view, "failed to write CSV")
	assert.Contains(t, view, "You have write permissions")

	f.press(runeKey('w'), runeKey('1'), tea.KeyMsg{Type: tea.KeyRight}, runeKey('q'))

	assert.Equal(t, stateSaveError, f.model.state)
	assert.Equal(t, domain.DecisionRight, f.record(t).QCDecision)
	assert.Empty(t, f.record(t).QCObservations)
	assert.Equal(t, modelTestImages[0], f.current())

	f.model.Update(autoAdvanceMsg{Path: filepath.Join(f.dir, modelTestImages[0])})
	assert.Equal(t, stateSaveError, f.model.state, "timers do not dismiss the dialog")

	f.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateReview, f.model.state)

	require.NoError(t, os.Remove(csvPath))
	f.press(runeKey('w'))

	assert.Equal(t, stateReview, f.model.state)
	assert.Equal(t, domain.DecisionWrong, f.record(t).QCDecision)
	assert.FileExists(t, csvPath)
}

func TestModel_AutoAdvanceAfterRetouchQuality(t *testing.T) {
	f := newModelFixture(t)
	first, _ := f.model.review.Navigator.Current()

	cmd := f.press(runeKey('r'), runeKey('1'), tea.KeyMsg{Type: tea.KeyDown}, runeKey('g'))
	require.NotNil(t, cmd)
	assert.Equal(t, domain.NextActionIgnore, f.record(t).NextAction)
	assert.Equal(t, modelTestImages[0], f.current(), "advance waits for the tick")

	f.model.Update(autoAdvanceMsg{Path: first})

	assert.Equal(t, modelTestImages[1], f.current())
	assert.False(t, f.model.errorManager.HasError())
}

func TestModel_StaleAutoAdvanceIgnored(t *testing.T) {
	f := newModelFixture(t)

	f.model.Update(autoAdvanceMsg{Path: filepath.Join(f.dir, modelTestImages[1])})

	assert.Equal(t, modelTestImages[0], f.current())
	assert.False(t, f.model.errorManager.HasError())
}

func TestModel_OtherPanelDecisionShowsNotice(t *testing.T) {
	f := newModelFixture(t)

	f.press(runeKey('g'))

	assert.Empty(t, f.record(t).RetouchQuality)
	assert.Contains(t, f.model.notice, "retouch")
}

func TestModel_CommentObservationOpensComment(t *testing.T) {
	f := newModelFixture(t)

	f.press(runeKey('r'), runeKey('6'))

	assert.Equal(t, stateComment, f.model.state)
	require.NotNil(t, f.model.commentForm)

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateReview, f.model.state)
	assert.Equal(t, "Comment", f.record(t).QCObservations)
}

func TestModel_ImageAdded(t *testing.T) {
	f := newModelFixture(t)
	added := filepath.Join(f.dir, "IMG-ABC-20250302-acme-back.jpg")

	f.model.Update(imageAddedMsg{Path: added})

	assert.Equal(t, 3, f.model.review.Navigator.Len())
	assert.Contains(t, f.model.notice, "IMG-ABC-20250302-acme-back.jpg")

	f.model.Update(imageAddedMsg{Path: added})
	assert.Equal(t, 3, f.model.review.Navigator.Len())
}

func TestModel_ForceQuitSkipsOrganize(t *testing.T) {
	f := newModelFixture(t)
	f.press(runeKey('w'))

	cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	outcome := f.model.Outcome()
	assert.True(t, outcome.Forced)
	assert.NoError(t, outcome.Err)
	assert.Nil(t, outcome.Finish)

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, entry.IsDir(), "no output folder expected, found %s", entry.Name())
	}
}

func TestModel_QuitFinishesAndOrganizes(t *testing.T) {
	f := newModelFixture(t)
	f.press(runeKey('w'))

	cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.NotNil(t, cmd)
	outcome := f.model.Outcome()
	require.NotNil(t, outcome.Finish)
	assert.False(t, outcome.Forced)

	organized := outcome.Finish.Organize
	require.NotNil(t, organized)
	assert.Equal(t, 1, organized.Wrong)
	assert.Equal(t, 1, organized.Copied)
	assert.FileExists(t, filepath.Join(organized.OutputFolder, modelTestImages[0]))
}

func TestModel_ToggleIncompleteOnly(t *testing.T) {
	f := newModelFixture(t)

	f.press(tea.KeyMsg{Type: tea.KeyCtrlF})

	assert.True(t, f.model.review.Navigator.IncompleteOnly())
	assert.Equal(t, "Showing 2 incomplete images", f.model.notice)
}

func TestModel_FillCardsWithoutCards(t *testing.T) {
	f := newModelFixture(t)

	f.press(runeKey('k'))

	assert.Equal(t, stateReview, f.model.state)
	require.True(t, f.model.errorManager.HasError())
	assert.Contains(t, f.model.errorManager.GetError().Error(), "no custom cards defined")
}

func TestModel_View(t *testing.T) {
	f := newModelFixture(t)

	view := f.model.View()

	assert.Contains(t, view, modelTestImages[0])
	assert.True(t, strings.Contains(view, "Missing:"))
}
