package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wifisim/connection"
	"wifisim/netsource"
)

// =============================================================================
// Messages
// =============================================================================

type scanResultMsg struct {
	result netsource.Result
}

type connectionTimerMsg struct {
	token uint64
}

// =============================================================================
// Commands
// =============================================================================

func scanCmd(ctx context.Context, s *netsource.Scanner, req netsource.Request) tea.Cmd {
	return func() tea.Msg {
		l().Debugw("scanning", "id", req.ID)
		return scanResultMsg{result: s.Run(ctx, req)}
	}
}

func connectionTimerCmd(t connection.Timer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return connectionTimerMsg{token: t.Token}
	})
}
