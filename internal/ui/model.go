package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ferro/internal/config"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/services"
	"github.com/renato0307/ferro/internal/theme"
)

const statusClearDelay = 4 * time.Second

type tabID int

const (
	tabToday tabID = iota
	tabRun
	tabNutrition
	tabBody
	tabProgress
)

var tabNames = []string{"Today", "Run", "Nutrition", "Body", "Progress"}

// Model is the root TUI model. One tab per screen; the active tab owns the
// keyboard except for tab switching, sync, finish and quit.
type Model struct {
	width  int
	height int

	activeTab tabID
	keys      KeyMap

	today     *TodayPanel
	run       *RunPanel
	nutrition *NutritionPanel
	body      *BodyPanel
	progress  *ProgressPanel

	workout *services.WorkoutService
	sync    *services.SyncService

	status    string
	statusErr bool
}

// NewModel creates the root model and loads every tab's state.
func NewModel(
	drafts *services.DraftService,
	workout *services.WorkoutService,
	syncService *services.SyncService,
	progress *services.ProgressService,
	targets config.NutritionTargets,
) *Model {
	keys := DefaultKeyMap()

	m := &Model{
		keys:      keys,
		today:     NewTodayPanel(drafts, workout, keys),
		run:       NewRunPanel(drafts, workout, keys),
		nutrition: NewNutritionPanel(drafts, targets, keys),
		body:      NewBodyPanel(drafts, keys),
		progress:  NewProgressPanel(progress, keys),
		workout:   workout,
		sync:      syncService,
	}
	m.reloadAll()
	return m
}

func (m *Model) reloadAll() {
	reloads := []struct {
		name string
		fn   func() error
	}{
		{"today", m.today.Reload},
		{"run", m.run.Reload},
		{"nutrition", m.nutrition.Reload},
		{"body", m.body.Reload},
		{"progress", m.progress.Reload},
	}
	for _, r := range reloads {
		if err := r.fn(); err != nil {
			logging.Logger.Error("Failed to load tab", "tab", r.name, "error", err)
			m.setError(err)
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case syncDoneMsg:
		m.status = fmt.Sprintf("Synced %d %s row(s)", msg.result.RowCount, msg.result.Domain)
		m.statusErr = false
		m.reloadAll()
		return m, clearStatusAfter(statusClearDelay)

	case syncErrMsg:
		m.setError(msg.err)
		return m, clearStatusAfter(statusClearDelay)

	case dayFinishedMsg:
		m.status = fmt.Sprintf("Day complete. Next up: day %d", msg.nextDay+1)
		m.statusErr = false
		m.reloadAll()
		return m, clearStatusAfter(statusClearDelay)

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case restTickMsg:
		return m, m.today.Update(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.activePanelEditing() {
			if cmd, handled := m.handleGlobalKey(msg); handled {
				return m, cmd
			}
		}
	}

	return m, m.updateActivePanel(msg)
}

// handleGlobalKey covers keys that work on any tab while no form or inline
// edit is open.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabID(len(tabNames))
		return nil, true
	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab + tabID(len(tabNames)) - 1) % tabID(len(tabNames))
		return nil, true
	case key.Matches(msg, m.keys.Sync):
		return m.syncActiveTab(), true
	case key.Matches(msg, m.keys.FinishDay):
		if m.activeTab == tabToday {
			return m.finishDay(), true
		}
	}
	return nil, false
}

func (m *Model) activePanelEditing() bool {
	switch m.activeTab {
	case tabToday:
		return m.today.Editing()
	case tabRun:
		return m.run.Editing()
	case tabNutrition:
		return m.nutrition.Editing()
	case tabBody:
		return m.body.Editing()
	}
	return false
}

func (m *Model) updateActivePanel(msg tea.Msg) tea.Cmd {
	switch m.activeTab {
	case tabToday:
		return m.today.Update(msg)
	case tabRun:
		return m.run.Update(msg)
	case tabNutrition:
		return m.nutrition.Update(msg)
	case tabBody:
		return m.body.Update(msg)
	case tabProgress:
		return m.progress.Update(msg)
	}
	return nil
}

// syncActiveTab pushes the active tab's draft to the coach sheet.
func (m *Model) syncActiveTab() tea.Cmd {
	var run func(context.Context) (services.SyncResult, error)
	switch m.activeTab {
	case tabToday:
		run = m.sync.SyncSets
	case tabRun:
		run = m.sync.SyncRun
	case tabNutrition:
		run = m.sync.SyncNutrition
	case tabBody:
		run = m.sync.SyncBody
	default:
		return nil
	}

	return func() tea.Msg {
		result, err := run(context.Background())
		if err != nil {
			return syncErrMsg{err: err}
		}
		return syncDoneMsg{result: result}
	}
}

func (m *Model) finishDay() tea.Cmd {
	return func() tea.Msg {
		next, err := m.workout.FinishDay(context.Background())
		if err != nil {
			return syncErrMsg{err: err}
		}
		return dayFinishedMsg{nextDay: next}
	}
}

func (m *Model) setError(err error) {
	m.status = formatErrorForDisplay(err, m.width)
	m.statusErr = true
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderTabBar())
	sb.WriteString("\n")

	switch m.activeTab {
	case tabToday:
		sb.WriteString(m.today.View())
	case tabRun:
		sb.WriteString(m.run.View())
	case tabNutrition:
		sb.WriteString(m.nutrition.View())
	case tabBody:
		sb.WriteString(m.body.View())
	case tabProgress:
		sb.WriteString(m.progress.View())
	}

	sb.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			sb.WriteString(theme.ErrorStyle.Render(m.status))
		} else {
			sb.WriteString(theme.DoneStyle.Render(m.status))
		}
	}

	return sb.String()
}

func (m *Model) renderTabBar() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tabID(i) == m.activeTab {
			parts = append(parts, theme.TabActiveStyle.Render(name))
		} else {
			parts = append(parts, theme.TabInactiveStyle.Render(name))
		}
	}
	return strings.Join(parts, "")
}
