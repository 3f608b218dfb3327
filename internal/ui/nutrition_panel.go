package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ferro/internal/config"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/services"
	"github.com/renato0307/ferro/internal/theme"
)

type nutritionItem struct {
	field string
	label string
	habit bool
}

// NutritionPanel shows the daily habit checklist and free-form fields for
// the active nutrition date. Habits toggle with space; text fields open an
// inline input.
type NutritionPanel struct {
	drafts  *services.DraftService
	targets config.NutritionTargets
	keys    KeyMap

	date   string
	items  []nutritionItem
	values map[string]string
	cursor int

	editing bool
	input   textinput.Model
}

// NewNutritionPanel creates a new NutritionPanel
func NewNutritionPanel(drafts *services.DraftService, targets config.NutritionTargets, keys KeyMap) *NutritionPanel {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 24

	return &NutritionPanel{
		drafts:  drafts,
		targets: targets,
		keys:    keys,
		items: []nutritionItem{
			{field: "protein", label: fmt.Sprintf("Protein %dg+", targets.ProteinGrams), habit: true},
			{field: "water", label: fmt.Sprintf("Water %.1f-%.1fL", targets.WaterLitersMin, targets.WaterLitersMax), habit: true},
			{field: "veg", label: fmt.Sprintf("%d veg/fruit serves", targets.VegServes), habit: true},
			{field: "steps", label: fmt.Sprintf("%d steps", targets.Steps), habit: true},
			{field: "stepsCount", label: "Step count", habit: false},
			{field: "energy", label: "Energy (1-5)", habit: false},
			{field: "notes", label: "Notes", habit: false},
		},
		input: input,
	}
}

// Reload re-reads the active date and draft values.
func (p *NutritionPanel) Reload() error {
	ctx := context.Background()

	date, err := p.drafts.ActiveNutritionDate(ctx)
	if err != nil {
		return err
	}
	p.date = date

	draft, err := p.drafts.NutritionDraftFor(ctx, date)
	if err != nil {
		return err
	}
	p.values = map[string]string{
		"protein":    draft.Protein,
		"water":      draft.Water,
		"veg":        draft.Veg,
		"steps":      draft.Steps,
		"stepsCount": draft.StepsCount,
		"energy":     draft.Energy,
		"notes":      draft.Notes,
	}
	return nil
}

// Update handles panel key input.
func (p *NutritionPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if p.editing {
		return p.updateEditing(keyMsg)
	}

	item := p.items[p.cursor]
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keys.Toggle):
		if item.habit {
			if err := p.drafts.ToggleNutritionFlag(context.Background(), p.date, item.field); err != nil {
				logging.Logger.Error("Failed to toggle habit", "field", item.field, "error", err)
				return nil
			}
			if p.values[item.field] == "Yes" {
				p.values[item.field] = "No"
			} else {
				p.values[item.field] = "Yes"
			}
		}
	case key.Matches(keyMsg, p.keys.Edit):
		if item.habit {
			break
		}
		p.editing = true
		p.input.SetValue(p.values[item.field])
		p.input.CursorEnd()
		p.input.Focus()
	}
	return nil
}

func (p *NutritionPanel) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.editing = false
		p.input.Blur()
		return nil
	case "enter":
		item := p.items[p.cursor]
		value := strings.TrimSpace(p.input.Value())
		if err := p.drafts.SaveNutritionField(context.Background(), p.date, item.field, value); err != nil {
			logging.Logger.Error("Failed to save nutrition field", "field", item.field, "error", err)
		}
		p.values[item.field] = value
		p.editing = false
		p.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Editing reports whether an inline edit is in progress.
func (p *NutritionPanel) Editing() bool {
	return p.editing
}

// View renders the nutrition panel.
func (p *NutritionPanel) View() string {
	var sb strings.Builder
	sb.WriteString(theme.TitleStyle.Render("Nutrition · " + p.date))
	sb.WriteString("\n")

	for i, item := range p.items {
		prefix := "  "
		if i == p.cursor {
			prefix = "▸ "
		}

		var line string
		if item.habit {
			mark := theme.PendingStyle.Render("[ ]")
			if p.values[item.field] == "Yes" {
				mark = theme.DoneStyle.Render("[✓]")
			}
			line = prefix + mark + " " + item.label
		} else if p.editing && i == p.cursor {
			line = prefix + item.label + ": " + p.input.View()
		} else {
			line = prefix + item.label + ": " + orDash(p.values[item.field])
		}

		if i == p.cursor && !p.editing {
			sb.WriteString(theme.SetSelectedStyle.Render(line))
		} else {
			sb.WriteString(theme.NormalStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.HelpStyle.Render("space toggle habit · enter edit field · s sync nutrition"))
	return sb.String()
}
