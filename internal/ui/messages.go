package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires once a second to advance the countdown
type tickMsg time.Time

// tickCmd schedules the next countdown tick
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
