package ui

import (
	"github.com/imagecheck/qcreview/internal/config"
)

// NavigationKeys defines key bindings for moving between images and panels
type NavigationKeys struct {
	First        KeyWithTip
	FocusQC      KeyWithTip
	FocusRetouch KeyWithTip
	Last         KeyWithTip
	Next         KeyWithTip
	Previous     KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		First:        buildBinding("first", defaults, customKeys),
		FocusQC:      buildBinding("focus_qc", defaults, customKeys),
		FocusRetouch: buildBinding("focus_retouch", defaults, customKeys),
		Last:         buildBinding("last", defaults, customKeys),
		Next:         buildBinding("next", defaults, customKeys),
		Previous:     buildBinding("previous", defaults, customKeys),
	}
}
