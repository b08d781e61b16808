package tui

import tea "github.com/charmbracelet/bubbletea"

// Init fetches the start day's schedule.
func (b *statefulBubble) Init() tea.Cmd {
	return b.fetchSchedule()
}
