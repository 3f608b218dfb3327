package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Run gate colors
const (
	ColorGateOpen     Color = "2" // Green - no run required or run logged
	ColorGatePending  Color = "1" // Red - run still owed
	ColorGateOptional Color = "8" // Gray - rest days
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorSuggestion Color = "226" // Yellow - next-weight hints
	ColorDone       Color = "2"   // Green - completed habits and synced rows
	ColorSpinner    Color = "205" // Pink
	ColorTimer      Color = "214" // Orange - rest timer countdown
)

// Chart colors
const (
	ColorChartPace   Color = "33"  // Blue - run pace bars
	ColorChartWeight Color = "141" // Purple - strength bars
)
