package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/imagecheck/qcreview/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is the private collection of all tips, populated by newTip()
var tips []Tip

// newTip registers a tip with format string and keys to highlight
// Format uses %s placeholders for keys, e.g. newTip("press %s to filter", "/")
// Registering the same format again replaces its keys.
func newTip(format string, keys ...string) string {
	tip := Tip{Format: format, Keys: keys}
	if i := slices.IndexFunc(tips, func(t Tip) bool { return t.Format == format }); i >= 0 {
		tips[i] = tip
	} else {
		tips = append(tips, tip)
	}
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	return tips
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var result strings.Builder
	result.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		result.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			result.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return result.String()
}

// tipFor picks a tip for the image at index so tips rotate as the reviewer
// moves through the directory
func tipFor(index int) (Tip, bool) {
	if len(tips) == 0 {
		return Tip{}, false
	}
	if index < 0 {
		index = -index
	}
	return tips[index%len(tips)], true
}

// KeyWithTip wraps a key.Binding with an optional tip for the tips line.
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
