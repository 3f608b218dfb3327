package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/services"
	"github.com/renato0307/ferro/internal/theme"
)

const restSeconds = 60

type setCell struct {
	weight string
	reps   string
}

// TodayPanel shows the current training day: every exercise with its set
// grid, next-weight suggestions, the run gate status, and a rest timer.
type TodayPanel struct {
	drafts  *services.DraftService
	workout *services.WorkoutService
	keys    KeyMap

	dayIndex int
	day      domain.TrainingDay
	gate     domain.RunGateState

	exCursor  int
	setCursor int // 1-based set number

	cells       map[[2]int]setCell
	suggestions map[int]string

	editing   bool
	editField string
	input     textinput.Model

	restRemaining int
}

// NewTodayPanel creates a new TodayPanel
func NewTodayPanel(drafts *services.DraftService, workout *services.WorkoutService, keys KeyMap) *TodayPanel {
	input := textinput.New()
	input.CharLimit = 8
	input.Width = 8
	return &TodayPanel{
		drafts:    drafts,
		workout:   workout,
		keys:      keys,
		setCursor: 1,
		input:     input,
	}
}

// Reload re-reads the day, draft values, suggestions and gate state.
func (p *TodayPanel) Reload() error {
	ctx := context.Background()

	idx, day, err := p.workout.CurrentDay(ctx)
	if err != nil {
		return err
	}
	p.dayIndex = idx
	p.day = day

	gate, err := p.workout.RunGate(ctx)
	if err != nil {
		return err
	}
	p.gate = gate

	p.cells = make(map[[2]int]setCell)
	p.suggestions = make(map[int]string)
	for e, ex := range day.Exercises {
		if ex.IsRunPlaceholder {
			continue
		}
		for s := 1; s <= ex.Sets; s++ {
			w, r, err := p.drafts.SetEntry(ctx, idx, e, s)
			if err != nil {
				return err
			}
			p.cells[[2]int{e, s}] = setCell{weight: w, reps: r}
		}
		suggestion, err := p.workout.Suggest(ctx, idx, e)
		if err != nil {
			logging.Logger.Warn("Failed to compute suggestion", "exercise", ex.Name, "error", err)
			continue
		}
		if suggestion != "" {
			p.suggestions[e] = suggestion
		}
	}

	p.clampCursor()
	return nil
}

// Update handles panel key input and rest timer ticks.
func (p *TodayPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case restTickMsg:
		if p.restRemaining > 0 {
			p.restRemaining--
			if p.restRemaining > 0 {
				return restTick()
			}
		}
		return nil

	case tea.KeyMsg:
		if p.editing {
			return p.updateEditing(msg)
		}
		return p.updateNavigation(msg)
	}
	return nil
}

func (p *TodayPanel) updateNavigation(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.exCursor > 0 {
			p.exCursor--
			p.clampCursor()
		}
	case key.Matches(msg, p.keys.Down):
		if p.exCursor < len(p.day.Exercises)-1 {
			p.exCursor++
			p.clampCursor()
		}
	case key.Matches(msg, p.keys.Left):
		if p.setCursor > 1 {
			p.setCursor--
		}
	case key.Matches(msg, p.keys.Right):
		if ex := p.currentExercise(); ex != nil && p.setCursor < ex.Sets {
			p.setCursor++
		}
	case key.Matches(msg, p.keys.Edit):
		if ex := p.currentExercise(); ex != nil && !ex.IsRunPlaceholder {
			p.beginEdit(domain.FieldWeight)
		}
	case key.Matches(msg, p.keys.RestTimer):
		p.restRemaining = restSeconds
		return restTick()
	}
	return nil
}

func (p *TodayPanel) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.editing = false
		p.input.Blur()
		return nil
	case "enter", "tab":
		value := strings.TrimSpace(p.input.Value())
		field := p.editField
		if err := p.drafts.SaveSetField(context.Background(), p.dayIndex, p.exCursor, p.setCursor, field, value); err != nil {
			logging.Logger.Error("Failed to save set field", "field", field, "error", err)
		}
		cell := p.cells[[2]int{p.exCursor, p.setCursor}]
		if field == domain.FieldWeight {
			cell.weight = value
		} else {
			cell.reps = value
		}
		p.cells[[2]int{p.exCursor, p.setCursor}] = cell

		// Weight then reps; after reps the edit is done.
		if field == domain.FieldWeight {
			p.beginEdit(domain.FieldReps)
			return nil
		}
		p.editing = false
		p.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *TodayPanel) beginEdit(field string) {
	cell := p.cells[[2]int{p.exCursor, p.setCursor}]
	current := cell.weight
	if field == domain.FieldReps {
		current = cell.reps
	}
	p.editing = true
	p.editField = field
	p.input.SetValue(current)
	p.input.CursorEnd()
	p.input.Focus()
}

func (p *TodayPanel) currentExercise() *domain.Exercise {
	if p.exCursor < 0 || p.exCursor >= len(p.day.Exercises) {
		return nil
	}
	return &p.day.Exercises[p.exCursor]
}

func (p *TodayPanel) clampCursor() {
	if len(p.day.Exercises) == 0 {
		p.exCursor = 0
		p.setCursor = 1
		return
	}
	if p.exCursor >= len(p.day.Exercises) {
		p.exCursor = len(p.day.Exercises) - 1
	}
	ex := p.day.Exercises[p.exCursor]
	if ex.IsRunPlaceholder || ex.Sets < 1 {
		p.setCursor = 1
		return
	}
	if p.setCursor > ex.Sets {
		p.setCursor = ex.Sets
	}
	if p.setCursor < 1 {
		p.setCursor = 1
	}
}

// Editing reports whether an inline cell edit is in progress. The model
// keeps tab switching off while a cell is open.
func (p *TodayPanel) Editing() bool {
	return p.editing
}

// View renders the day panel.
func (p *TodayPanel) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("Day %d · %s", p.dayIndex+1, p.day.Name)
	sb.WriteString(theme.TitleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(p.renderGate())
	sb.WriteString("\n\n")

	for e, ex := range p.day.Exercises {
		selected := e == p.exCursor
		sb.WriteString(p.renderExercise(e, ex, selected))
		sb.WriteString("\n")
	}

	if p.restRemaining > 0 {
		sb.WriteString("\n")
		sb.WriteString(theme.TimerStyle.Render(fmt.Sprintf("Rest: %d:%02d", p.restRemaining/60, p.restRemaining%60)))
		sb.WriteString("\n")
	}

	sb.WriteString(theme.HelpStyle.Render("enter edit · ←/→ set · s sync sets · f finish day · r rest timer"))
	return sb.String()
}

func (p *TodayPanel) renderGate() string {
	switch p.gate {
	case domain.GatePending:
		return theme.GatePendingStyle.Render("● Run pending: log the run before finishing this day")
	case domain.GateSatisfied:
		return theme.GateOpenStyle.Render("● Run logged")
	default:
		return theme.GateOptionalStyle.Render("○ No run required today")
	}
}

func (p *TodayPanel) renderExercise(index int, ex domain.Exercise, selected bool) string {
	var sb strings.Builder

	name := ex.Name
	if selected {
		name = "▸ " + name
	} else {
		name = "  " + name
	}
	sb.WriteString(theme.ExerciseStyle.Render(name))

	if ex.IsRunPlaceholder {
		sb.WriteString(theme.LabelStyle.Render("  (log on the Run tab)"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(theme.LabelStyle.Render(fmt.Sprintf("  %d×%d", ex.Sets, ex.Reps)))
	if s, ok := p.suggestions[index]; ok {
		sb.WriteString(theme.SuggestionStyle.Render("  next: " + s + " kg"))
	}
	sb.WriteString("\n")

	sb.WriteString("    ")
	for set := 1; set <= ex.Sets; set++ {
		sb.WriteString(p.renderCell(index, set, selected && set == p.setCursor))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (p *TodayPanel) renderCell(exercise, set int, selected bool) string {
	if selected && p.editing {
		label := "w"
		if p.editField == domain.FieldReps {
			label = "r"
		}
		return theme.SetSelectedStyle.Render(fmt.Sprintf("[%s: %s]", label, p.input.View()))
	}

	cell := p.cells[[2]int{exercise, set}]
	text := "—"
	style := theme.SetEmptyStyle
	if cell.weight != "" || cell.reps != "" {
		text = fmt.Sprintf("%s×%s", orDash(cell.weight), orDash(cell.reps))
		style = theme.SetFilledStyle
	}
	if selected {
		style = theme.SetSelectedStyle
	}
	return style.Render(fmt.Sprintf("[%s]", text))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
