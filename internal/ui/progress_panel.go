package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/ferro/internal/services"
	"github.com/renato0307/ferro/internal/theme"
)

const (
	progressChartHeight = 8
	progressChartWidth  = 72
	progressBarWidth    = 3
	progressBarGap      = 1
	progressMaxPoints   = 14 // most recent points kept per chart
)

type progressMode int

const (
	modeStrength progressMode = iota
	modeRunPace
)

// ProgressPanel charts average weight per session for an exercise, or run
// pace over time. Left/right cycles exercises, space flips to the pace view.
type ProgressPanel struct {
	progress *services.ProgressService
	keys     KeyMap

	mode      progressMode
	exercises []string
	exCursor  int

	strength []services.StrengthPoint
	pace     []services.RunPacePoint
}

// NewProgressPanel creates a new ProgressPanel
func NewProgressPanel(progress *services.ProgressService, keys KeyMap) *ProgressPanel {
	return &ProgressPanel{
		progress:  progress,
		keys:      keys,
		exercises: progress.ExerciseNames(),
	}
}

// Reload re-reads both series from the history logs.
func (p *ProgressPanel) Reload() error {
	ctx := context.Background()

	pace, err := p.progress.RunPaceSeries(ctx)
	if err != nil {
		return err
	}
	p.pace = pace

	return p.reloadStrength(ctx)
}

func (p *ProgressPanel) reloadStrength(ctx context.Context) error {
	if len(p.exercises) == 0 {
		p.strength = nil
		return nil
	}
	series, err := p.progress.StrengthSeries(ctx, p.exercises[p.exCursor])
	if err != nil {
		return err
	}
	p.strength = series
	return nil
}

// Update handles panel key input.
func (p *ProgressPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Toggle):
		if p.mode == modeStrength {
			p.mode = modeRunPace
		} else {
			p.mode = modeStrength
		}
	case key.Matches(keyMsg, p.keys.Left):
		if p.mode == modeStrength && len(p.exercises) > 0 {
			p.exCursor = (p.exCursor + len(p.exercises) - 1) % len(p.exercises)
			return p.reloadStrengthCmd()
		}
	case key.Matches(keyMsg, p.keys.Right):
		if p.mode == modeStrength && len(p.exercises) > 0 {
			p.exCursor = (p.exCursor + 1) % len(p.exercises)
			return p.reloadStrengthCmd()
		}
	}
	return nil
}

func (p *ProgressPanel) reloadStrengthCmd() tea.Cmd {
	if err := p.reloadStrength(context.Background()); err != nil {
		return func() tea.Msg { return syncErrMsg{err: err} }
	}
	return nil
}

// View renders the progress panel.
func (p *ProgressPanel) View() string {
	var sb strings.Builder

	if p.mode == modeRunPace {
		sb.WriteString(theme.TitleStyle.Render("Progress · Run pace"))
		sb.WriteString("\n")
		sb.WriteString(renderPaceChart(p.pace))
	} else {
		name := "no exercises"
		if len(p.exercises) > 0 {
			name = p.exercises[p.exCursor]
		}
		sb.WriteString(theme.TitleStyle.Render("Progress · " + name))
		sb.WriteString("\n")
		sb.WriteString(renderStrengthChart(p.strength))
	}

	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render("←/→ exercise · space pace/strength"))
	return sb.String()
}

// renderStrengthChart draws average weight per date as a bar chart.
func renderStrengthChart(points []services.StrengthPoint) string {
	if len(points) == 0 {
		return theme.LabelStyle.Render("No synced sets yet for this exercise.")
	}
	if len(points) > progressMaxPoints {
		points = points[len(points)-progressMaxPoints:]
	}

	var maxVal float64
	for _, pt := range points {
		if pt.AvgWeight > maxVal {
			maxVal = pt.AvgWeight
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var sb strings.Builder
	last := points[len(points)-1]
	legend := theme.ChartLegendStyle.Render("avg kg per session, latest: ") +
		theme.ChartWeightStyle.Render(fmt.Sprintf("%.1f kg", last.AvgWeight)) +
		theme.ChartLegendStyle.Render(" on "+last.Date)
	sb.WriteString(legend)
	sb.WriteString("\n\n")

	axisStyle := lipgloss.NewStyle().Foreground(theme.ColorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	chart := barchart.New(progressChartWidth, progressChartHeight,
		barchart.WithStyles(axisStyle, labelStyle),
	)
	chart.SetBarWidth(progressBarWidth)
	chart.SetBarGap(progressBarGap)
	chart.SetMax(maxVal)

	barStyle := lipgloss.NewStyle().Foreground(theme.ColorChartWeight)
	for _, pt := range points {
		chart.Push(barchart.BarData{
			Label: dayLabel(pt.Date),
			Values: []barchart.BarValue{
				{Name: "kg", Value: pt.AvgWeight, Style: barStyle},
			},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())
	return sb.String()
}

// renderPaceChart draws min/km per run as a bar chart. Lower is better, so
// the legend calls out the fastest run.
func renderPaceChart(points []services.RunPacePoint) string {
	if len(points) == 0 {
		return theme.LabelStyle.Render("No synced runs yet.")
	}
	if len(points) > progressMaxPoints {
		points = points[len(points)-progressMaxPoints:]
	}

	var maxVal float64
	best := points[0]
	for _, pt := range points {
		if pt.MinPerKm > maxVal {
			maxVal = pt.MinPerKm
		}
		if pt.MinPerKm < best.MinPerKm {
			best = pt
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var sb strings.Builder
	legend := theme.ChartLegendStyle.Render("min/km per run, best: ") +
		theme.ChartPaceStyle.Render(formatPace(best.MinPerKm)) +
		theme.ChartLegendStyle.Render(" on "+best.Date)
	sb.WriteString(legend)
	sb.WriteString("\n\n")

	axisStyle := lipgloss.NewStyle().Foreground(theme.ColorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	chart := barchart.New(progressChartWidth, progressChartHeight,
		barchart.WithStyles(axisStyle, labelStyle),
	)
	chart.SetBarWidth(progressBarWidth)
	chart.SetBarGap(progressBarGap)
	chart.SetMax(maxVal)

	barStyle := lipgloss.NewStyle().Foreground(theme.ColorChartPace)
	for _, pt := range points {
		chart.Push(barchart.BarData{
			Label: dayLabel(pt.Date),
			Values: []barchart.BarValue{
				{Name: "pace", Value: pt.MinPerKm, Style: barStyle},
			},
		})
	}

	chart.Draw()
	sb.WriteString(chart.View())
	return sb.String()
}

// dayLabel shortens a YYYY-MM-DD date to MM-DD for bar labels.
func dayLabel(date string) string {
	if len(date) == 10 {
		return date[5:]
	}
	return date
}

// formatPace renders fractional minutes per km as m:ss.
func formatPace(minPerKm float64) string {
	mins := int(minPerKm)
	secs := int((minPerKm - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d /km", mins, secs)
}
