package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/theme"
)

// OptionSets are the configured options whose shortcuts the help screen lists
type OptionSets struct {
	NextActions         []domain.Option
	QCDecisions         []domain.Option
	QCObservations      []domain.Option
	RetouchDecisions    []domain.Option
	RetouchObservations []domain.Option
}

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	height      int
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
	width       int
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderOptionShortcuts lists the options of a set that have a shortcut
func renderOptionShortcuts(options []domain.Option, describe func(domain.Option) string) string {
	var b strings.Builder
	for _, o := range options {
		if o.Shortcut == "" {
			continue
		}
		b.WriteString(renderShortcut(strings.ToLower(o.Shortcut), describe(o)))
	}
	return b.String()
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap, options OptionSets) string {
	var content string

	content += theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderBinding(keys.Navigation.Next.Binding)
	content += renderBinding(keys.Navigation.Previous.Binding)
	content += renderBinding(keys.Navigation.First.Binding)
	content += renderBinding(keys.Navigation.Last.Binding)
	content += renderBinding(keys.Navigation.FocusQC.Binding)
	content += renderBinding(keys.Navigation.FocusRetouch.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("QC Panel (focused)") + "\n"
	content += renderOptionShortcuts(options.QCDecisions, func(o domain.Option) string { return "decision: " + o.Label })
	content += renderOptionShortcuts(options.QCObservations, func(o domain.Option) string { return "observation: " + o.Label })

	content += "\n" + theme.HelpGroupStyle.Render("Retouch Panel (focused)") + "\n"
	content += renderOptionShortcuts(options.RetouchDecisions, func(o domain.Option) string { return "quality: " + o.Label })
	content += renderOptionShortcuts(options.RetouchObservations, func(o domain.Option) string { return "observation: " + o.Label })

	content += "\n" + theme.HelpGroupStyle.Render("Next Action") + "\n"
	content += renderOptionShortcuts(options.NextActions, func(o domain.Option) string { return "toggle " + o.Label })

	content += "\n" + theme.HelpGroupStyle.Render("Review") + "\n"
	content += renderBinding(keys.Review.ApplyPrevious.Binding)
	content += renderBinding(keys.Review.Comment.Binding)
	content += renderBinding(keys.Review.NextActionComment.Binding)
	content += renderBinding(keys.Review.CustomCards.Binding)
	content += renderBinding(keys.Review.OpenViewer.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.CommandPalette.Binding)
	content += renderBinding(keys.Application.IncompleteOnly.Binding)
	content += renderBinding(keys.Application.ManageCards.Binding)
	content += renderBinding(keys.Application.TrendChart.Binding)
	content += renderBinding(keys.Application.Help.Binding)
	content += renderBinding(keys.Application.Quit.Binding)
	content += renderBinding(keys.Application.ForceQuit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Indicators (read-only)") + "\n"
	content += renderShortcut("✓", "all mandatory fields are set")
	content += renderShortcut("●", "option selected")
	content += renderShortcut("*", "mandatory custom card")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, options OptionSets) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, options),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" || key.Matches(msg, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
