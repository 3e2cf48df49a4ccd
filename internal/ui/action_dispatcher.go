package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct {
	image string
}

// NewActionDispatcher creates a new action dispatcher.
// image is the current image path, or "" when there is none.
func NewActionDispatcher(image string) *ActionDispatcher {
	return &ActionDispatcher{image: image}
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if imageMsg, ok := def.Msg.(ImageAwareMsg); ok {
		if d.image == "" {
			return nil
		}
		return imageMsg.WithImage(d.image)
	}

	return def.Msg
}
