package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/theme"
)

// SaveErrorScreen reports a CSV save failure and holds the review until the
// reviewer acknowledges it
type SaveErrorScreen struct {
	Completed bool
	err       *services.CSVSaveError
	width     int
}

// NewSaveErrorScreen creates the acknowledgement screen for err
func NewSaveErrorScreen(err *services.CSVSaveError) *SaveErrorScreen {
	return &SaveErrorScreen{err: err}
}

// Init implements tea.Model
func (s *SaveErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Only enter and esc are accepted.
func (s *SaveErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			s.Completed = true
		}
	}
	return s, nil
}

// View implements tea.Model
func (s *SaveErrorScreen) View() string {
	body := lipgloss.NewStyle()
	if s.width > 4 {
		body = body.Width(s.width - 4)
	}

	var sb strings.Builder
	sb.WriteString(theme.ErrorStyle.Render(body.Render(s.err.Error())))
	sb.WriteString("\n\n")
	sb.WriteString(body.Render(s.err.Hint()))
	sb.WriteString("\n\n")
	sb.WriteString(theme.HelpStyle.Render("Your changes are kept in the session state. Press enter to continue."))
	return sb.String()
}
