package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// Option shortcuts (decisions, observations, next actions) are not listed
// here; they come from the app settings.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"ctrl+p"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "save and exit without organizing files"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "incomplete_only", Defaults: []string{"ctrl+f"}, Help: "toggle incomplete images only", IsPaletteAction: true, Msg: ToggleIncompleteOnlyMsg{}, TipFormat: "press %s to show only images still missing fields"},
	{Name: "manage_cards", Defaults: []string{"ctrl+k"}, Help: "add or remove custom cards", IsPaletteAction: true, Msg: ManageCardsMsg{}, TipFormat: "press %s to add your own annotation cards"},
	{Name: "quit", Defaults: []string{"ctrl+s"}, Help: "save, organize files and exit", IsPaletteAction: true, Msg: QuitMsg{}, TipFormat: "press %s to save and copy flagged images to a new folder"},
	{Name: "trend_chart", Defaults: []string{"ctrl+t"}, Help: "toggle validation trend chart", IsPaletteAction: true, Msg: ToggleTrendChartMsg{}, TipFormat: "press %s to chart your daily retouch rate"},

	// Navigation keys
	{Name: "first", Defaults: []string{"home"}, Help: "jump to first image", IsPaletteAction: true, Msg: FirstImageMsg{}},
	{Name: "focus_qc", Defaults: []string{"up"}, Help: "focus QC panel", IsPaletteAction: true, Msg: FocusPanelMsg{Panel: PanelQC}, TipFormat: "press %s to send number keys to the QC observations"},
	{Name: "focus_retouch", Defaults: []string{"down"}, Help: "focus retouch panel", IsPaletteAction: true, Msg: FocusPanelMsg{Panel: PanelRetouch}, TipFormat: "press %s to send number keys to the retouch observations"},
	{Name: "last", Defaults: []string{"end"}, Help: "jump to last image", IsPaletteAction: true, Msg: LastImageMsg{}},
	{Name: "next", Defaults: []string{"right", "tab"}, Help: "save and go to next image", IsPaletteAction: true, Msg: NextImageMsg{}},
	{Name: "previous", Defaults: []string{"left", "shift+tab"}, Help: "save and go to previous image", IsPaletteAction: true, Msg: PreviousImageMsg{}},

	// Review keys
	{Name: "apply_previous", Defaults: []string{"e"}, Help: "copy tags from previous image", IsPaletteAction: true, Msg: ApplyPreviousMsg{}, TipFormat: "press %s to reuse the previous image's tags"},
	{Name: "comment", Defaults: []string{"c"}, Help: "edit observation comment", IsPaletteAction: true, Msg: EditCommentMsg{}, TipFormat: "press %s to write a free-text observation"},
	{Name: "custom_cards", Defaults: []string{"k"}, Help: "fill custom card fields", IsPaletteAction: true, Msg: FillCardsMsg{}},
	{Name: "next_action_comment", Defaults: []string{"n"}, Help: "edit next action comment", IsPaletteAction: true, Msg: EditCommentMsg{Target: CommentNextAction}},
	{Name: "open_viewer", Defaults: []string{"o"}, Help: "open image in viewer", IsPaletteAction: true, Msg: OpenViewerMsg{}, TipFormat: "press %s to open the image in your image viewer"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
