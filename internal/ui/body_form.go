package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/services"
	"github.com/renato0307/ferro/internal/theme"
)

// BodyPanel shows the weekly check-in draft for the active body date.
type BodyPanel struct {
	drafts *services.DraftService
	keys   KeyMap

	date  string
	draft services.BodyDraft

	form    *huh.Form
	fWeight string
	fWaist  string
	fHips   string
	fNotes  string
	editing bool
}

// NewBodyPanel creates a new BodyPanel
func NewBodyPanel(drafts *services.DraftService, keys KeyMap) *BodyPanel {
	return &BodyPanel{drafts: drafts, keys: keys}
}

// Reload re-reads the active date and draft.
func (p *BodyPanel) Reload() error {
	ctx := context.Background()

	date, err := p.drafts.ActiveBodyDate(ctx)
	if err != nil {
		return err
	}
	p.date = date

	draft, err := p.drafts.BodyDraftFor(ctx, date)
	if err != nil {
		return err
	}
	p.draft = draft
	return nil
}

func (p *BodyPanel) newForm() *huh.Form {
	p.fWeight = p.draft.Weight
	p.fWaist = p.draft.Waist
	p.fHips = p.draft.Hips
	p.fNotes = p.draft.Notes

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Value(&p.fWeight),
			huh.NewInput().
				Title("Waist (cm)").
				Value(&p.fWaist),
			huh.NewInput().
				Title("Hips (cm)").
				Value(&p.fHips),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&p.fNotes),
		),
	)
}

// Update handles panel key input and form progression.
func (p *BodyPanel) Update(msg tea.Msg) tea.Cmd {
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

func (p *BodyPanel) updateForm(msg tea.Msg) tea.Cmd {
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
			"weight": strings.TrimSpace(p.fWeight),
			"waist":  strings.TrimSpace(p.fWaist),
			"hips":   strings.TrimSpace(p.fHips),
			"notes":  p.fNotes,
		}
		for name, value := range fields {
			if err := p.drafts.SaveBodyField(ctx, p.date, name, value); err != nil {
				logging.Logger.Error("Failed to save body field", "field", name, "error", err)
			}
		}
		p.editing = false
		p.form = nil
		if err := p.Reload(); err != nil {
			logging.Logger.Warn("Failed to reload body draft", "error", err)
		}
	}
	return cmd
}

// Editing reports whether the huh form is open.
func (p *BodyPanel) Editing() bool {
	return p.editing
}

// View renders the body panel.
func (p *BodyPanel) View() string {
	if p.editing && p.form != nil {
		return p.form.View()
	}

	var sb strings.Builder
	sb.WriteString(theme.TitleStyle.Render("Body · " + p.date))
	sb.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Weight", withUnit(p.draft.Weight, " kg")},
		{"Waist", withUnit(p.draft.Waist, " cm")},
		{"Hips", withUnit(p.draft.Hips, " cm")},
		{"Notes", p.draft.Notes},
	}
	for _, r := range rows {
		sb.WriteString(theme.LabelStyle.Render(fmt.Sprintf("%-10s", r.label)))
		sb.WriteString(theme.NormalStyle.Render(orDash(r.value)))
		sb.WriteString("\n")
	}

	sb.WriteString(theme.HelpStyle.Render("enter edit · s sync body"))
	return sb.String()
}
