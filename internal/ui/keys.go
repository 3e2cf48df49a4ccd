package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/imagecheck/qcreview/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Review      ReviewKeys

	byName map[string]KeyWithTip
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
// Pass nil for keysConfig to use default bindings
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	km := KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		Review:      newReviewKeys(defaults, keysConfig),
		byName:      make(map[string]KeyWithTip, len(AllKeyDefinitions)),
	}
	for _, def := range AllKeyDefinitions {
		km.byName[def.Name] = buildBinding(def.Name, defaults, keysConfig)
	}
	return km
}

// Binding returns the effective binding for a key definition name
func (k KeyMap) Binding(name string) (key.Binding, bool) {
	b, ok := k.byName[name]
	return b.Binding, ok
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Next.Binding,
		k.Navigation.Previous.Binding,
		k.Navigation.FocusQC.Binding,
		k.Navigation.FocusRetouch.Binding,
		k.Review.ApplyPrevious.Binding,
		k.Review.Comment.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}
