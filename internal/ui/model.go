package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imagecheck/qcreview/internal/config"
	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/theme"
)

const (
	autoAdvanceDelay = 300 * time.Millisecond
	noticeDelay      = 3 * time.Second
)

// reviewKeyNames are the keys checked after option shortcuts
var reviewKeyNames = []string{"apply_previous", "comment", "custom_cards", "next_action_comment", "open_viewer"}

type uiState int

const (
	stateReview uiState = iota
	stateCardManager
	stateCards
	stateCommandPalette
	stateComment
	stateHelp
	stateSaveError
)

// Outcome is how the review ended
type Outcome struct {
	CSV    *services.CSVSaveResult
	Err    error
	Finish *services.FinishResult
	Forced bool
}

// ModelParams contains the dependencies of the review TUI
type ModelParams struct {
	Analytics       *services.AnalyticsService
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Review          *services.Review
	ReviewService   *services.ReviewService
	ShowTrendChart  bool
	Viewer          ports.ImageViewer
	ViewerCmd       string
	Watcher         ports.ImageWatcher
}

type Model struct {
	cardForm       *Dialog         // Custom card fill dialog
	cardManager    *Dialog         // Add/remove card dialog
	commandPalette *CommandPalette // Command palette overlay
	commentForm    *Dialog         // Comment dialog
	devMode        bool            // Development mode (shows version info in dialogs)
	errorManager   *ErrorManager   // Error display and auto-clearing
	focus          Panel           // Panel receiving observation and decision shortcuts
	height         int
	help           help.Model              // Short help line
	helpScreen     *Dialog                 // Help screen dialog
	keys           KeyMap                  // Keyboard shortcuts
	notice         string                  // Transient success or warning line
	outcome        Outcome                 // Set when the program quits
	review         *services.Review        // The open review
	reviewService  *services.ReviewService // Review lifecycle service
	saveError      *Dialog                 // Blocking CSV failure dialog
	state          uiState
	trendChart     *TrendChart // Validation trend chart component
	viewer         ports.ImageViewer
	viewerCmd      string
	watcher        ports.ImageWatcher // Nil when directory watching is off
	width          int
}

func NewModel(params ModelParams) *Model {
	trendChart := NewTrendChart(params.Analytics, params.Review.Navigator.Reviewer())
	if params.ShowTrendChart {
		trendChart.SetVisible(true)
	}

	m := &Model{
		devMode:       params.DevMode,
		errorManager:  NewErrorManager(params.ErrorClearDelay),
		focus:         PanelQC,
		help:          help.New(),
		keys:          NewKeyMap(params.Keys),
		review:        params.Review,
		reviewService: params.ReviewService,
		state:         stateReview,
		trendChart:    trendChart,
		viewer:        params.Viewer,
		viewerCmd:     params.ViewerCmd,
		watcher:       params.Watcher,
	}
	if params.Review.SaveErr != nil {
		m.showError(params.Review.SaveErr)
	}
	return m
}

// Outcome returns how the review ended. Valid after the program exits.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForImage(m.watcher)}
	if m.errorManager.HasError() {
		cmds = append(cmds, m.errorManager.ClearAfterDelay())
	}
	return tea.Batch(cmds...)
}

// waitForImage delivers the next watcher event as a message
func waitForImage(w ports.ImageWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events():
			if !ok {
				return watcherClosedMsg{}
			}
			return imageAddedMsg{Path: path}
		case err, ok := <-w.Errors():
			if !ok {
				return watcherClosedMsg{}
			}
			return watcherErrorMsg{Err: err}
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case imageAddedMsg:
		var cmd tea.Cmd
		if m.review.Navigator.AddImage(msg.Path) {
			cmd = m.showNotice(fmt.Sprintf("New image: %s", domain.BaseFilename(msg.Path)))
		}
		return m, tea.Batch(cmd, waitForImage(m.watcher))

	case watcherErrorMsg:
		logging.Logger.Warn("Directory watcher error", "error", msg.Err)
		return m, tea.Batch(m.showError(fmt.Errorf("directory watcher: %w", msg.Err)), waitForImage(m.watcher))

	case watcherClosedMsg:
		logging.Logger.Info("Directory watcher stopped")
		return m, nil

	case autoAdvanceMsg:
		if m.state != stateReview {
			return m, nil
		}
		if current, ok := m.review.Navigator.Current(); !ok || current != msg.Path {
			return m, nil
		}
		return m.navigate(func() (*services.NavigationResult, error) {
			return m.review.Navigator.Next(context.Background())
		})
	}

	switch m.state {
	case stateReview:
		return m.updateReview(msg)
	case stateCardManager:
		return m.updateCardManager(msg)
	case stateCards:
		return m.updateCards(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateComment:
		return m.updateComment(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateSaveError:
		return m.updateSaveError(msg)
	}
	return m, nil
}

func (m *Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	nav := m.review.Navigator

	switch msg := msg.(type) {
	case QuitMsg:
		return m.finish()

	case ShowHelpMsg:
		contentForm := NewHelpScreen(&m.keys, m.optionSets())
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case ShowCommandPaletteMsg:
		current, _ := nav.Current()
		m.commandPalette = NewCommandPalette(domain.BaseFilename(current), m.keys)
		m.state = stateCommandPalette
		initCmd := m.commandPalette.Init()
		_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case ToggleIncompleteOnlyMsg:
		csv, err := nav.SetIncompleteOnly(!nav.IncompleteOnly())
		cmd := m.handleSave(csv, err)
		if nav.IncompleteOnly() {
			return m, tea.Batch(cmd, m.showNotice(fmt.Sprintf("Showing %d incomplete images", nav.Len())))
		}
		return m, tea.Batch(cmd, m.showNotice("Showing all images"))

	case ToggleTrendChartMsg:
		m.trendChart.Toggle()
		return m, nil

	case ManageCardsMsg:
		contentForm := NewCardManagerForm(m.reviewService, m.review)
		m.cardManager = NewDialog("Custom Cards", contentForm, m.devMode)
		m.state = stateCardManager
		return m, m.cardManager.Init()

	case NextImageMsg:
		return m.navigate(func() (*services.NavigationResult, error) {
			return nav.Next(context.Background())
		})

	case PreviousImageMsg:
		return m.navigate(nav.Previous)

	case FirstImageMsg:
		return m.navigate(nav.First)

	case LastImageMsg:
		return m.navigate(nav.Last)

	case FocusPanelMsg:
		m.focus = msg.Panel
		return m, nil

	case ApplyPreviousMsg:
		if _, ok := nav.ApplyPreviousTags(); !ok {
			return m, m.showError(errors.New("no tags to apply from the previous image"))
		}
		return m, tea.Batch(m.save(), m.showNotice("Applied tags from the previous image"))

	case EditCommentMsg:
		return m.openComment(msg.Path, msg.Target)

	case FillCardsMsg:
		cards := nav.CustomCards()
		if len(cards) == 0 {
			return m, m.showError(fmt.Errorf("no custom cards defined, press %s to add one", m.keys.Application.ManageCards.Binding.Help().Key))
		}
		contentForm := NewCardForm(m.review.Store, domain.BaseFilename(msg.Path), cards)
		m.cardForm = NewDialog("Custom Cards: "+domain.BaseFilename(msg.Path), contentForm, m.devMode)
		m.state = stateCards
		return m, m.cardForm.Init()

	case OpenViewerMsg:
		if m.viewer == nil {
			return m, nil
		}
		if err := m.viewer.Open(msg.Path, m.viewerCmd); err != nil {
			return m, m.showError(fmt.Errorf("failed to open viewer: %w", err))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey resolves application and navigation keys first, then option
// shortcuts, then review keys
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app, navKeys := m.keys.Application, m.keys.Navigation

	switch {
	case key.Matches(msg, app.ForceQuit.Binding):
		return m.forceQuit()
	case key.Matches(msg, app.Quit.Binding):
		return m.updateReview(QuitMsg{})
	case key.Matches(msg, app.CommandPalette.Binding):
		return m.updateReview(ShowCommandPaletteMsg{})
	case key.Matches(msg, app.Help.Binding):
		return m.updateReview(ShowHelpMsg{})
	case key.Matches(msg, app.IncompleteOnly.Binding):
		return m.updateReview(ToggleIncompleteOnlyMsg{})
	case key.Matches(msg, app.ManageCards.Binding):
		return m.updateReview(ManageCardsMsg{})
	case key.Matches(msg, app.TrendChart.Binding):
		return m.updateReview(ToggleTrendChartMsg{})

	case key.Matches(msg, navKeys.Next.Binding):
		return m.updateReview(NextImageMsg{})
	case key.Matches(msg, navKeys.Previous.Binding):
		return m.updateReview(PreviousImageMsg{})
	case key.Matches(msg, navKeys.First.Binding):
		return m.updateReview(FirstImageMsg{})
	case key.Matches(msg, navKeys.Last.Binding):
		return m.updateReview(LastImageMsg{})
	case key.Matches(msg, navKeys.FocusQC.Binding):
		return m.updateReview(FocusPanelMsg{Panel: PanelQC})
	case key.Matches(msg, navKeys.FocusRetouch.Binding):
		return m.updateReview(FocusPanelMsg{Panel: PanelRetouch})
	}

	if sc, ok := resolveShortcut(msg.String(), m.focus, m.review.Settings); ok {
		return m.applyShortcut(sc)
	}

	current, _ := m.review.Navigator.Current()
	dispatcher := NewActionDispatcher(current)
	for _, name := range reviewKeyNames {
		binding, ok := m.keys.Binding(name)
		if !ok || !key.Matches(msg, binding) {
			continue
		}
		if def := GetKeyDefinition(name); def != nil {
			if actionMsg := dispatcher.Dispatch(*def); actionMsg != nil {
				return m.updateReview(actionMsg)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) applyShortcut(sc shortcut) (tea.Model, tea.Cmd) {
	path, ok := m.review.Navigator.Current()
	if !ok {
		return m, nil
	}

	if sc.kind == shortcutConsumed {
		other := PanelQC
		if m.focus == PanelQC {
			other = PanelRetouch
		}
		return m, m.showNotice(fmt.Sprintf("%s belongs to the %s panel, focus it first", sc.option.Label, other))
	}

	out, err := applyShortcut(m.review.Store, path, sc)
	if err != nil {
		return m, m.showError(err)
	}
	logging.Logger.Debug("Shortcut applied", "filename", out.Record.Filename, "option", sc.option.Label, "panel", m.focus)

	saveCmd := m.save()
	if m.state == stateSaveError {
		return m, saveCmd
	}
	if out.OpenComment {
		model, cmd := m.openComment(path, out.Comment)
		return model, tea.Batch(saveCmd, cmd)
	}

	if sc.kind == shortcutRetouchQuality && m.focus == PanelRetouch &&
		domain.IsComplete(out.Record, m.review.Navigator.CustomCards()) {
		return m, tea.Batch(saveCmd, tea.Tick(autoAdvanceDelay, func(time.Time) tea.Msg {
			return autoAdvanceMsg{Path: path}
		}))
	}
	return m, saveCmd
}

func (m *Model) openComment(path string, target CommentTarget) (tea.Model, tea.Cmd) {
	if target == CommentFocused {
		target = CommentQC
		if m.focus == PanelRetouch {
			target = CommentRetouch
		}
	}

	if target == CommentQC {
		if record, ok := m.review.Store.Get(path); ok && record.QCDecision == domain.DecisionWrong {
			return m, m.showError(fmt.Errorf("QC observations are disabled while the decision is %s", domain.DecisionWrong))
		}
	}

	contentForm := NewCommentForm(m.review.Store, domain.BaseFilename(path), target)
	m.commentForm = NewDialog(commentTitle(target), contentForm, m.devMode)
	m.state = stateComment
	return m, m.commentForm.Init()
}

// navigate runs a move and reports its outcome
func (m *Model) navigate(move func() (*services.NavigationResult, error)) (tea.Model, tea.Cmd) {
	result, err := move()
	m.reviewService.HandleNavigation(result, err)

	if err != nil {
		return m, m.showError(err)
	}
	if len(result.Missing) > 0 {
		return m, m.showError(fmt.Errorf("%w: %s", domain.ErrIncomplete, strings.Join(result.Missing, ", ")))
	}
	if result.Moved && m.trendChart.IsVisible() {
		m.trendChart.Refresh(context.Background())
	}
	if result.CSV != nil && result.CSV.Warning != "" {
		return m, m.showNotice(result.CSV.Warning)
	}
	return m, nil
}

// save flushes the review after an edit
func (m *Model) save() tea.Cmd {
	csv, err := m.review.Navigator.Save()
	return m.handleSave(csv, err)
}

func (m *Model) handleSave(csv *services.CSVSaveResult, err error) tea.Cmd {
	if err != nil {
		logging.Logger.Error("Save failed", "error", err)
		return m.showError(err)
	}
	if csv != nil && csv.Warning != "" {
		return m.showNotice(csv.Warning)
	}
	return nil
}

// finish saves, organizes files and quits. A CSV failure keeps the review
// open.
func (m *Model) finish() (tea.Model, tea.Cmd) {
	result, err := m.reviewService.Finish(context.Background(), m.review)
	if err != nil {
		logging.Logger.Error("Failed to finish review", "error", err)
		return m, m.showError(err)
	}
	m.closeWatcher()
	m.outcome = Outcome{CSV: result.CSV, Finish: result}
	return m, tea.Quit
}

// forceQuit saves and quits without organizing files
func (m *Model) forceQuit() (tea.Model, tea.Cmd) {
	csv, err := m.reviewService.Close(context.Background(), m.review)
	if err != nil {
		logging.Logger.Error("Failed to save on exit", "error", err)
	}
	m.closeWatcher()
	m.outcome = Outcome{CSV: csv, Err: err, Forced: true}
	return m, tea.Quit
}

func (m *Model) closeWatcher() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		logging.Logger.Warn("Failed to close directory watcher", "error", err)
	}
}

// showError displays err in the status area until it clears itself. A CSV
// save failure instead opens a dialog that must be dismissed.
func (m *Model) showError(err error) tea.Cmd {
	var saveErr *services.CSVSaveError
	if errors.As(err, &saveErr) {
		m.openSaveError(saveErr)
		return nil
	}
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) openSaveError(err *services.CSVSaveError) {
	m.saveError = NewDialog("Unable to Save CSV", NewSaveErrorScreen(err), m.devMode)
	m.saveError.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.state = stateSaveError
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	return tea.Tick(noticeDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m *Model) optionSets() OptionSets {
	settings := m.review.Settings
	return OptionSets{
		NextActions:         settings.NextActionOptions,
		QCDecisions:         settings.QCDecisionOptions,
		QCObservations:      settings.QCObservations,
		RetouchDecisions:    settings.RetouchDecisionOptions,
		RetouchObservations: settings.RetouchObservations,
	}
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if m.commandPalette.Completed {
		result := m.commandPalette.Result
		m.state = stateReview
		m.commandPalette = nil

		if result.Cancelled || result.Action == nil {
			return m, nil
		}

		current, _ := m.review.Navigator.Current()
		dispatcher := NewActionDispatcher(current)
		if actionMsg := dispatcher.Dispatch(*result.Action); actionMsg != nil {
			return m.updateReview(actionMsg)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateComment(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commentForm.Update(msg)
	m.commentForm = updated.(*Dialog)

	if content, ok := m.commentForm.Content().(*CommentForm); ok && content.Completed {
		result := content.Result()
		m.state = stateReview
		m.commentForm = nil

		if result.Error != nil {
			return m, m.showError(result.Error)
		}
		if result.Cancelled {
			return m, nil
		}
		return m, m.save()
	}

	return m, cmd
}

func (m *Model) updateCards(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.cardForm.Update(msg)
	m.cardForm = updated.(*Dialog)

	if content, ok := m.cardForm.Content().(*CardForm); ok && content.Completed {
		result := content.Result()
		m.state = stateReview
		m.cardForm = nil

		if result.Cancelled {
			return m, nil
		}
		return m, m.save()
	}

	return m, cmd
}

func (m *Model) updateCardManager(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.cardManager.Update(msg)
	m.cardManager = updated.(*Dialog)

	if content, ok := m.cardManager.Content().(*CardManagerForm); ok && content.Completed {
		result := content.Result()
		m.state = stateReview
		m.cardManager = nil

		if result.Error != nil {
			return m, m.showError(fmt.Errorf("failed to update custom cards: %w", result.Error))
		}
		if result.Cancelled {
			return m, nil
		}
		return m, tea.Batch(m.save(), m.showNotice(result.Message))
	}

	return m, cmd
}

func (m *Model) updateSaveError(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.saveError.Update(msg)
	m.saveError = updated.(*Dialog)

	if content, ok := m.saveError.Content().(*SaveErrorScreen); ok && content.Completed {
		m.state = stateReview
		m.saveError = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateReview
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateReview:
		return m.reviewScreen()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.reviewScreen(), m.commandPalette.View(), m.width, m.height, m.commandPalette.Height())
		}
	case stateCardManager:
		if m.cardManager != nil {
			return m.cardManager.View()
		}
	case stateCards:
		if m.cardForm != nil {
			return m.cardForm.View()
		}
	case stateComment:
		if m.commentForm != nil {
			return m.commentForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateSaveError:
		if m.saveError != nil {
			return m.saveError.View()
		}
	}
	return ""
}

func (m *Model) reviewScreen() string {
	nav := m.review.Navigator

	view := reviewView{
		focus:  m.focus,
		notice: m.notice,
		review: m.review,
		width:  m.width,
	}
	// Error takes priority over the notice and the tip
	if m.errorManager.HasError() {
		view.errText = formatErrorForDisplay(m.errorManager.GetError(), m.width)
	}
	if tip, ok := tipFor(nav.Index()); ok {
		view.tip = RenderTip(tip)
	}

	var sb strings.Builder
	sb.WriteString(renderHeader(m.devMode, domain.FolderName(nav.Directory())))
	sb.WriteString(view.render())

	if m.trendChart.IsVisible() {
		sb.WriteString("\n\n" + m.trendChart.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(theme.HelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return sb.String()
}
