package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/services"
	"github.com/renato0307/ferro/internal/theme"
)

// RunPanel shows the run draft for the active date, with the day's
// prescription when one exists. Editing opens a huh form over the draft.
type RunPanel struct {
	drafts  *services.DraftService
	workout *services.WorkoutService
	keys    KeyMap

	date         string
	draft        services.RunDraft
	prescription domain.RunPrescription
	runDay       bool
	done         bool

	form      *huh.Form
	fDistance string
	fTime     string
	fEffort   string
	fNotes    string
	editing   bool
}

// NewRunPanel creates a new RunPanel
func NewRunPanel(drafts *services.DraftService, workout *services.WorkoutService, keys KeyMap) *RunPanel {
	return &RunPanel{drafts: drafts, workout: workout, keys: keys}
}

// Reload re-reads the active date, draft, done marker and prescription.
func (p *RunPanel) Reload() error {
	ctx := context.Background()

	date, err := p.drafts.ActiveRunDate(ctx)
	if err != nil {
		return err
	}
	p.date = date

	draft, err := p.drafts.RunDraftFor(ctx, date)
	if err != nil {
		return err
	}
	p.draft = draft

	done, err := p.drafts.IsRunDone(ctx, date)
	if err != nil {
		return err
	}
	p.done = done

	_, day, err := p.workout.CurrentDay(ctx)
	if err != nil {
		return err
	}
	p.runDay = domain.RequiresRun(day)
	p.prescription = domain.PrescriptionFor(day.Name)
	return nil
}

func (p *RunPanel) newForm() *huh.Form {
	p.fDistance = p.draft.Distance
	if p.fDistance == "" && p.runDay {
		p.fDistance = p.prescription.DefaultDistance
	}
	p.fTime = p.draft.Time
	p.fEffort = p.draft.Effort
	p.fNotes = p.draft.Notes

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Distance (km)").
				Value(&p.fDistance),
			huh.NewInput().
				Title("Time (mm:ss or minutes)").
				Value(&p.fTime),
			huh.NewInput().
				Title("Effort (RPE)").
				Value(&p.fEffort),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&p.fNotes),
		),
	)
}

// Update handles panel key input and form progression.
func (p *RunPanel) Update(msg tea.Msg) tea.Cmd {
	if p.editing {
		return p.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, p.keys.Edit) {
		p.form = p.newForm()
		p.editing = true
		return p.form.Init()
	}
	return nil
}

func (p *RunPanel) updateForm(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, p.keys.Cancel) {
		p.editing = false
		p.form = nil
		return nil
	}

	updated, cmd := p.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		p.form = form
	}

	if p.form.State == huh.StateCompleted {
		ctx := context.Background()
		fields := map[string]string{
			"distance": strings.TrimSpace(p.fDistance),
			"time":     strings.TrimSpace(p.fTime),
			"effort":   strings.TrimSpace(p.fEffort),
			"notes":    p.fNotes,
		}
		for name, value := range fields {
			if err := p.drafts.SaveRunField(ctx, p.date, name, value); err != nil {
				logging.Logger.Error("Failed to save run field", "field", name, "error", err)
			}
		}
		p.editing = false
		p.form = nil
		if err := p.Reload(); err != nil {
			logging.Logger.Warn("Failed to reload run draft", "error", err)
		}
	}
	return cmd
}

// Editing reports whether the huh form is open.
func (p *RunPanel) Editing() bool {
	return p.editing
}

// View renders the run panel.
func (p *RunPanel) View() string {
	if p.editing && p.form != nil {
		return p.form.View()
	}

	var sb strings.Builder
	sb.WriteString(theme.TitleStyle.Render("Run · " + p.date))
	sb.WriteString("\n")

	if p.done {
		sb.WriteString(theme.DoneStyle.Render("✓ Run logged for this date"))
	} else {
		sb.WriteString(theme.PendingStyle.Render("○ Not yet logged"))
	}
	sb.WriteString("\n\n")

	if p.runDay {
		sb.WriteString(theme.ExerciseStyle.Render(p.prescription.Title))
		sb.WriteString("\n")
		for _, d := range p.prescription.Details {
			sb.WriteString(theme.LabelStyle.Render("  · " + d))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Distance", withUnit(p.draft.Distance, " km")},
		{"Time", p.draft.Time},
		{"Effort", p.draft.Effort},
		{"Notes", p.draft.Notes},
	}
	for _, r := range rows {
		sb.WriteString(theme.LabelStyle.Render(fmt.Sprintf("%-10s", r.label)))
		sb.WriteString(theme.NormalStyle.Render(orDash(r.value)))
		sb.WriteString("\n")
	}

	if pace := domain.Pace(p.draft.Distance, p.draft.Time); pace != "" {
		sb.WriteString(theme.LabelStyle.Render(fmt.Sprintf("%-10s", "Pace")))
		sb.WriteString(theme.SuggestionStyle.Render(pace))
		sb.WriteString("\n")
	}

	sb.WriteString(theme.HelpStyle.Render("enter edit · s sync run"))
	return sb.String()
}

func withUnit(value, unit string) string {
	if value == "" {
		return ""
	}
	return value + unit
}
