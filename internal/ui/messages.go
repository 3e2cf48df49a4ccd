package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ImageAwareMsg is implemented by messages that act on the current image.
// Messages without image requirements don't need to implement this.
type ImageAwareMsg interface {
	WithImage(path string) tea.Msg
}

// Panel identifies the panel that receives observation shortcuts
type Panel int

const (
	PanelQC Panel = iota
	PanelRetouch
)

func (p Panel) String() string {
	if p == PanelRetouch {
		return "retouch"
	}
	return "qc"
}

// CommentTarget identifies which free-text comment is being edited
type CommentTarget int

const (
	// CommentFocused edits the observation comment of the focused panel
	CommentFocused CommentTarget = iota
	CommentQC
	CommentRetouch
	CommentNextAction
)

// Application messages

// QuitMsg requests saving, organizing files and exiting
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// ToggleIncompleteOnlyMsg requests switching the incomplete-only filter
type ToggleIncompleteOnlyMsg struct{}

// ToggleTrendChartMsg requests toggling the validation trend chart
type ToggleTrendChartMsg struct{}

// ManageCardsMsg requests the custom card manager
type ManageCardsMsg struct{}

// Navigation messages

// NextImageMsg requests moving to the next image
type NextImageMsg struct{}

// PreviousImageMsg requests moving to the previous image
type PreviousImageMsg struct{}

// FirstImageMsg requests jumping to the first image
type FirstImageMsg struct{}

// LastImageMsg requests jumping to the last image
type LastImageMsg struct{}

// FocusPanelMsg requests moving observation shortcuts to a panel
type FocusPanelMsg struct {
	Panel Panel
}

// Review messages

// ApplyPreviousMsg requests copying the previous image's tags
type ApplyPreviousMsg struct {
	Path string
}

func (m ApplyPreviousMsg) WithImage(path string) tea.Msg {
	return ApplyPreviousMsg{Path: path}
}

// EditCommentMsg requests the comment dialog
type EditCommentMsg struct {
	Path   string
	Target CommentTarget
}

func (m EditCommentMsg) WithImage(path string) tea.Msg {
	return EditCommentMsg{Path: path, Target: m.Target}
}

// FillCardsMsg requests the custom card form for an image
type FillCardsMsg struct {
	Path string
}

func (m FillCardsMsg) WithImage(path string) tea.Msg {
	return FillCardsMsg{Path: path}
}

// OpenViewerMsg requests opening an image in the external viewer
type OpenViewerMsg struct {
	Path string
}

func (m OpenViewerMsg) WithImage(path string) tea.Msg {
	return OpenViewerMsg{Path: path}
}

// Internal messages

// clearErrorMsg is sent after the error clear delay
type clearErrorMsg struct{}

// clearNoticeMsg is sent after the notice clear delay
type clearNoticeMsg struct{}

// autoAdvanceMsg moves on once the record of Path is complete
type autoAdvanceMsg struct {
	Path string
}

// imageAddedMsg reports an image that appeared in the working directory
type imageAddedMsg struct {
	Path string
}

// watcherErrorMsg reports a directory watcher failure
type watcherErrorMsg struct {
	Err error
}

// watcherClosedMsg reports that the watcher stopped delivering events
type watcherClosedMsg struct{}
