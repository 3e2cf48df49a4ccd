package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/theme"
)

// maxVisibleItems is the maximum number of items to show at once.
const maxVisibleItems = 6

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition // All actions available for the context
	Completed     bool
	filterInput   textinput.Model
	height        int
	imageName     string // Display name for header
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a new command palette. imageName is shown in the
// header; when it is empty, actions that need an image are hidden.
func NewCommandPalette(imageName string, keys KeyMap) *CommandPalette {
	actions := paletteActionsFor(imageName != "")

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		imageName:   imageName,
		keys:        keys,
	}
}

// paletteActionsFor keeps the palette actions whose domain action is valid
// with or without a current image
func paletteActionsFor(hasImage bool) []KeyDefinition {
	allowed := make(map[string]bool)
	for _, a := range domain.GetActionsForContext(hasImage) {
		allowed[a.Name] = true
	}

	var actions []KeyDefinition
	for _, def := range GetPaletteActions() {
		if allowed[def.Name] {
			actions = append(actions, def)
		}
	}
	return actions
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		cp.height = msg.Height
		return cp, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc ||
			key.Matches(msg, cp.keys.Application.ForceQuit.Binding, cp.keys.Application.CommandPalette.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if len(cp.actions) > 0 && cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the command palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	width := cp.paletteWidth()

	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.imageName != "" {
		header += " " + theme.DimmedStyle.Render("(image: "+cp.imageName+")")
	}

	var items []string
	maxHelpLen := cp.maxHelpLen()
	start, end := cp.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(cp.actions)

	for i := start; i < end; i++ {
		def := cp.actions[i]
		helpText := padRight(capitalizeFirst(def.Help), maxHelpLen)

		var prefix string
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		default:
			prefix = "  "
		}

		line := prefix +
			theme.PaletteItemStyle.Render(helpText) +
			theme.PaletteShortcutStyle.Render("  "+cp.shortcutFor(def))
		items = append(items, line)
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}

	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	innerContent := header + "\n" +
		"\n" +
		cp.filterInput.View() + "\n" +
		"\n" +
		strings.Join(items, "\n")

	return theme.PaletteBorderStyle.Width(width - 2).Render(innerContent)
}

// Height returns the number of lines the palette occupies
func (cp *CommandPalette) Height() int {
	// header, blank, filter, blank, items, top and bottom border
	return 4 + maxVisibleItems + 2
}

// shortcutFor returns the first key bound to def, honoring custom bindings
func (cp *CommandPalette) shortcutFor(def KeyDefinition) string {
	if binding, ok := cp.keys.Binding(def.Name); ok && len(binding.Keys()) > 0 {
		return binding.Keys()[0]
	}
	if len(def.Defaults) > 0 {
		return def.Defaults[0]
	}
	return ""
}

// filterActions filters the action list based on the current input.
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())

	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query

	if query == "" {
		cp.actions = cp.allActions
		cp.selectedIndex = 0
		return
	}

	var filtered []KeyDefinition
	for _, def := range cp.allActions {
		if fuzzyMatch(query, def.Help) {
			filtered = append(filtered, def)
		}
	}

	cp.actions = filtered

	if cp.selectedIndex >= len(cp.actions) {
		cp.selectedIndex = 0
	}
}

// fuzzyMatch checks if all characters in query appear in order in target.
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// maxHelpLen returns the maximum help text length for alignment.
// Uses allActions to keep alignment stable during filtering.
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

// paletteWidth returns the full terminal width.
func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange returns the start and end indices for visible items.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

// padRight pads a string to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// capitalizeFirst returns the string with the first letter uppercased.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
