package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paletteNames(defs []KeyDefinition) []string {
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return names
}

func TestPaletteActionsFor(t *testing.T) {
	withImage := paletteNames(paletteActionsFor(true))
	withoutImage := paletteNames(paletteActionsFor(false))

	assert.Contains(t, withImage, "apply_previous")
	assert.Contains(t, withImage, "open_viewer")
	assert.Contains(t, withImage, "quit")

	assert.NotContains(t, withoutImage, "apply_previous")
	assert.NotContains(t, withoutImage, "next")
	assert.Contains(t, withoutImage, "help")
	assert.Contains(t, withoutImage, "incomplete_only")

	assert.NotContains(t, withImage, "command_palette")
	assert.NotContains(t, withImage, "force_quit")
}

func TestCommandPalette_FilterAndSelect(t *testing.T) {
	cp := NewCommandPalette("IMG-1.jpg", NewKeyMap(nil))
	cp.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	for _, r := range "viewer" {
		cp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.Equal(t, []string{"open_viewer"}, paletteNames(cp.actions))

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, cp.Completed)
	require.NotNil(t, cp.Result.Action)
	assert.Equal(t, "open_viewer", cp.Result.Action.Name)
	assert.False(t, cp.Result.Cancelled)
}

func TestCommandPalette_EscCancels(t *testing.T) {
	cp := NewCommandPalette("", NewKeyMap(nil))

	cp.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, cp.Completed)
	assert.True(t, cp.Result.Cancelled)
	assert.Nil(t, cp.Result.Action)
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, fuzzyMatch("nxt", "save and go to next image"))
	assert.True(t, fuzzyMatch("", "anything"))
	assert.False(t, fuzzyMatch("zz", "save and go to next image"))
}

func TestActionDispatcher(t *testing.T) {
	fill := *GetKeyDefinition("custom_cards")
	help := *GetKeyDefinition("help")
	palette := *GetKeyDefinition("command_palette")

	withImage := NewActionDispatcher("/qc/IMG-1.jpg")
	assert.Equal(t, FillCardsMsg{Path: "/qc/IMG-1.jpg"}, withImage.Dispatch(fill))
	assert.Equal(t, ShowHelpMsg{}, withImage.Dispatch(help))
	assert.Nil(t, withImage.Dispatch(palette))

	noImage := NewActionDispatcher("")
	assert.Nil(t, noImage.Dispatch(fill))
	assert.Equal(t, ShowHelpMsg{}, noImage.Dispatch(help))

	comment := *GetKeyDefinition("next_action_comment")
	assert.Equal(t, EditCommentMsg{Path: "/qc/IMG-1.jpg", Target: CommentNextAction}, withImage.Dispatch(comment))
}
