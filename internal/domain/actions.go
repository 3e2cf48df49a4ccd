package domain

// Action represents a reviewer-invocable action.
type Action struct {
	Description   string
	Name          string
	RequiresImage bool
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "apply_previous", Description: "Copy tags from the previous image", RequiresImage: true},
	{Name: "comment", Description: "Edit the focused panel's observation comment", RequiresImage: true},
	{Name: "custom_cards", Description: "Fill custom card fields", RequiresImage: true},
	{Name: "first", Description: "Jump to the first image", RequiresImage: true},
	{Name: "focus_qc", Description: "Send observation shortcuts to the QC panel", RequiresImage: true},
	{Name: "focus_retouch", Description: "Send observation shortcuts to the retouch panel", RequiresImage: true},
	{Name: "help", Description: "Show keyboard shortcuts", RequiresImage: false},
	{Name: "incomplete_only", Description: "Toggle showing only incomplete images", RequiresImage: false},
	{Name: "last", Description: "Jump to the last image", RequiresImage: true},
	{Name: "manage_cards", Description: "Add or remove custom cards", RequiresImage: false},
	{Name: "next", Description: "Save and go to the next image", RequiresImage: true},
	{Name: "next_action_comment", Description: "Edit the next action comment", RequiresImage: true},
	{Name: "open_viewer", Description: "Open image in the external viewer", RequiresImage: true},
	{Name: "previous", Description: "Save and go to the previous image", RequiresImage: true},
	{Name: "quit", Description: "Save, organize files and exit", RequiresImage: false},
	{Name: "trend_chart", Description: "Toggle the validation trend chart", RequiresImage: false},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetActionsForContext returns actions filtered by context.
// If hasImage is false, actions that require an image are excluded.
func GetActionsForContext(hasImage bool) []Action {
	if hasImage {
		return Actions
	}

	var filtered []Action
	for _, a := range Actions {
		if !a.RequiresImage {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
