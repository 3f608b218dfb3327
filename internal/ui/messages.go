package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ferro/internal/services"
)

// syncDoneMsg reports a completed sync dispatch.
type syncDoneMsg struct {
	result services.SyncResult
}

// syncErrMsg reports a failed sync dispatch or a blocked day finish.
type syncErrMsg struct {
	err error
}

// dayFinishedMsg reports a successful day advance.
type dayFinishedMsg struct {
	nextDay int
}

// clearStatusMsg clears the status line after a delay.
type clearStatusMsg struct{}

// restTickMsg drives the rest timer countdown.
type restTickMsg time.Time

func restTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return restTickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
