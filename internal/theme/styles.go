package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Tab bar styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)
)

// Run gate styles
var (
	GateOpenStyle = lipgloss.NewStyle().
			Foreground(ColorGateOpen).
			Bold(true)

	GatePendingStyle = lipgloss.NewStyle().
				Foreground(ColorGatePending).
				Bold(true)

	GateOptionalStyle = lipgloss.NewStyle().
				Foreground(ColorGateOptional)
)

// Set grid styles
var (
	ExerciseStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	SetFilledStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SetEmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SetSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorSuggestion)
)

// Habit and status styles
var (
	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Bold(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorTimer).
			Bold(true)
)

// Chart styles
var (
	ChartPaceStyle = lipgloss.NewStyle().
			Foreground(ColorChartPace)

	ChartWeightStyle = lipgloss.NewStyle().
				Foreground(ColorChartWeight)

	ChartLegendStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
