package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrPromptCancelled is returned when the reviewer aborts a prompt
var ErrPromptCancelled = errors.New("cancelled")

// PromptReviewer asks for the reviewer name before a review opens. names
// are offered as suggestions.
func PromptReviewer(names []string) (string, error) {
	var name string
	if len(names) > 0 {
		name = names[0]
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reviewer name").
				Description("Written to the QC Name column of new records").
				Suggestions(names).
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("reviewer name required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrPromptCancelled
		}
		return "", err
	}
	return strings.TrimSpace(name), nil
}
