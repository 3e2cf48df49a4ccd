package domain

import "strings"

// Option is a selectable label with an optional single-key shortcut. Used
// for decisions, observations and next actions.
type Option struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Shortcut string `json:"shortcut"`
}

// IsCommentLabel reports whether label is the free-text comment sentinel.
func IsCommentLabel(label string) bool {
	return strings.Contains(strings.ToLower(label), "comment")
}

// FindByShortcut returns the option bound to key, case-insensitively.
func FindByShortcut(options []Option, key string) (Option, bool) {
	for _, o := range options {
		if o.Shortcut != "" && strings.EqualFold(o.Shortcut, key) {
			return o, true
		}
	}
	return Option{}, false
}

// DefaultObservations is the built-in observation set, shared by the QC and
// retouch panels.
func DefaultObservations() []Option {
	return []Option{
		{ID: "outline", Label: "Outline", Shortcut: "1"},
		{ID: "shadow", Label: "Shadow", Shortcut: "2"},
		{ID: "perspective", Label: "Perspective", Shortcut: "3"},
		{ID: "license_plate", Label: "License Plate", Shortcut: "4"},
		{ID: "background", Label: "Background", Shortcut: "5"},
		{ID: "comment", Label: "Comment", Shortcut: "6"},
	}
}

func DefaultNextActions() []Option {
	return []Option{
		{ID: "retake", Label: NextActionRetake, Shortcut: "A"},
		{ID: "retouch", Label: NextActionRetouch, Shortcut: "S"},
		{ID: "ignore", Label: NextActionIgnore, Shortcut: "D"},
		{ID: "blunder", Label: NextActionBlunder, Shortcut: "F"},
	}
}

func DefaultQCDecisions() []Option {
	return []Option{
		{ID: "right", Label: DecisionRight, Shortcut: "R"},
		{ID: "wrong", Label: DecisionWrong, Shortcut: "W"},
	}
}

func DefaultRetouchDecisions() []Option {
	return []Option{
		{ID: "good", Label: QualityGood, Shortcut: "G"},
		{ID: "bad", Label: QualityBad, Shortcut: "B"},
	}
}

// ColorSettings is the persisted theme.
type ColorSettings struct {
	ActiveColor     string  `json:"activeColor"`
	BackgroundColor string  `json:"backgroundColor"`
	CardRadius      int     `json:"cardRadius"`
	GlassColor      string  `json:"glassColor"`
	PrimaryColor    string  `json:"primaryColor"`
	ShadowAngle     int     `json:"shadowAngle"`
	ShadowBlur      int     `json:"shadowBlur"`
	ShadowOpacity   float64 `json:"shadowOpacity"`
}

func DefaultColorSettings() ColorSettings {
	return ColorSettings{
		PrimaryColor:    "#667eea",
		ActiveColor:     "#ffae0c",
		BackgroundColor: "#ece9e9",
		GlassColor:      "#8e8e8e",
		CardRadius:      16,
		ShadowOpacity:   0.15,
		ShadowBlur:      12,
		ShadowAngle:     0,
	}
}

// Wallpaper is the persisted background image setting.
type Wallpaper struct {
	Fit    string  `json:"fit"`
	Mode   string  `json:"mode"`
	Scale  float64 `json:"scale"`
	Source string  `json:"source"`
}

// LayoutItem is one panel's saved position in a grid layout.
type LayoutItem struct {
	H    int    `json:"h"`
	I    string `json:"i"`
	MinH int    `json:"minH,omitempty"`
	MinW int    `json:"minW,omitempty"`
	W    int    `json:"w"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}
