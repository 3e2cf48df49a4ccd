package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Review outcome colors
const (
	ColorCompleted  Color = "2"   // Green - all mandatory fields set
	ColorIncomplete Color = "3"   // Yellow - still missing fields
	ColorRetake     Color = "214" // Orange
	ColorRetouch    Color = "33"  // Blue - retouch and blunder
	ColorWrong      Color = "1"   // Red
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - fallbacks
)

// Accent colors
const (
	ColorCursor          Color = "205" // Pink
	ColorDimmed          Color = "238"
	ColorHelpGroup       Color = "141" // Purple
	ColorHintKey         Color = "226" // Yellow - shortcut keys
	ColorPaletteSelected Color = "237"
	ColorScrollIndicator Color = "141"
)

// Chart colors
const (
	ColorChartBase    Color = "2"  // Green - validated without rework
	ColorChartRetouch Color = "33" // Blue - sent to retouch
)

// DefaultActiveColor highlights selected options when no color settings are saved
const DefaultActiveColor Color = "#ffae0c"
