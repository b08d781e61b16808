// Package ui holds the transient notification line shown under the viewer.
package ui

import (
	"time"

	"github.com/anitable/anitable/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// NotifyMsg sets the notification text.
type NotifyMsg struct {
	Text  string
	Error bool
}

// ClearNotificationMsg clears the notification set by the matching NotifyMsg.
type ClearNotificationMsg struct {
	seq int
}

// Model is the notifier state.
type Model struct {
	text  string
	error bool
	seq   int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: text} }
}

// NotifyError returns a command that shows err in the error color.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: err.Error(), Error: true} }
}

// Update reacts to NotifyMsg and ClearNotificationMsg. A clear scheduled for an
// older notification leaves a newer one in place.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.seq++
		m.text = msg.Text
		m.error = msg.Error
		seq := m.seq
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{seq: seq}
		})
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.text = ""
			m.error = false
		}
	}
	return nil
}

// Text returns the current notification, empty when none.
func (m *Model) Text() string {
	return m.text
}

// View renders the notification line.
func (m *Model) View() string {
	if m.text == "" {
		return ""
	}
	if m.error {
		return style.Fg(style.ErrorColor)(m.text)
	}
	return style.Faint(m.text)
}
