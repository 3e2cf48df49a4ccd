package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Review panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	OptionDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorDimmed).
				Strikethrough(true)

	ShortcutStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	CommentStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)

	MissingStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	MandatoryStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Statistics styles
var (
	CompletedStyle = lipgloss.NewStyle().
			Foreground(ColorCompleted)

	IncompleteStyle = lipgloss.NewStyle().
			Foreground(ColorIncomplete)

	RetakeStyle = lipgloss.NewStyle().
			Foreground(ColorRetake)

	RetouchStyle = lipgloss.NewStyle().
			Foreground(ColorRetouch)

	WrongStyle = lipgloss.NewStyle().
			Foreground(ColorWrong)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// WarningStyle marks non-fatal problems such as a CSV fallback
var WarningStyle = lipgloss.NewStyle().
	Foreground(ColorWarning)

// SuccessStyle marks completed operations
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorCompleted)

// HexStyle returns a foreground style for a color from the app settings,
// falling back when the value is empty
func HexStyle(hex string, fallback Color) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(fallback)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Trend chart styles
var (
	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ChartBaseStyle = lipgloss.NewStyle().
			Foreground(ColorChartBase)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ChartLegendStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	ChartRetouchStyle = lipgloss.NewStyle().
				Foreground(ColorChartRetouch)
)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorCursor)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
