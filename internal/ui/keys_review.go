package ui

import (
	"github.com/imagecheck/qcreview/internal/config"
)

// ReviewKeys defines key bindings for annotating the current image
type ReviewKeys struct {
	ApplyPrevious     KeyWithTip
	Comment           KeyWithTip
	CustomCards       KeyWithTip
	NextActionComment KeyWithTip
	OpenViewer        KeyWithTip
}

// newReviewKeys creates review key bindings
func newReviewKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ReviewKeys {
	return ReviewKeys{
		ApplyPrevious:     buildBinding("apply_previous", defaults, customKeys),
		Comment:           buildBinding("comment", defaults, customKeys),
		CustomCards:       buildBinding("custom_cards", defaults, customKeys),
		NextActionComment: buildBinding("next_action_comment", defaults, customKeys),
		OpenViewer:        buildBinding("open_viewer", defaults, customKeys),
	}
}
