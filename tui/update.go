package tui

import (
	"errors"
	"fmt"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/internal/ui"
	"github.com/anitable/anitable/log"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case scheduleFetchedMsg:
		if !b.current(scheduleState, msg.day, 0) {
			log.WithFields(logrus.Fields{"day": msg.day.String()}).Debug("dropping stale schedule")
			return b, nil
		}
		if b.state == scheduleState {
			b.stopLoading()
		}
		b.handleScheduleFetched(msg)
		return b, nil
	case captionsFetchedMsg:
		if !b.current(captionsState, 0, msg.animeID) {
			return b, nil
		}
		b.stopLoading()
		b.handleCaptionsFetched(msg)
		return b, nil
	case fetchFailedMsg:
		return b.updateFailure(msg)
	case linkOpenedMsg:
		if msg.err != nil {
			log.Warnf("open %s: %v", msg.url, msg.err)
			return b, ui.NotifyError(fmt.Errorf("링크를 열 수 없습니다: %w", msg.err))
		}
		return b, ui.Notify("열기: " + msg.url)
	case tea.KeyMsg:
		return b.updateKey(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateFailure(msg fetchFailedMsg) (tea.Model, tea.Cmd) {
	if !b.current(msg.state, msg.day, msg.animeID) {
		return b, nil
	}
	if msg.state == b.state {
		b.stopLoading()
	}

	log.WithFields(logrus.Fields{
		"day":   msg.day.String(),
		"anime": msg.animeID,
	}).Error(msg.err)

	if b.options.ExitOnError {
		b.fatal = msg.err
		return b, tea.Quit
	}

	b.lastError = msg.err
	return b, ui.NotifyError(errors.New(b.failureText(msg)))
}

func (b *statefulBubble) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return b, nil
	case key.Matches(msg, b.keymap.up):
		b.moveCursor(-1)
		return b, nil
	case key.Matches(msg, b.keymap.down):
		b.moveCursor(1)
		return b, nil
	case key.Matches(msg, b.keymap.top):
		b.activeTable().GotoTop()
		return b, nil
	case key.Matches(msg, b.keymap.bottom):
		b.activeTable().GotoBottom()
		return b, nil
	case key.Matches(msg, b.keymap.openURL):
		return b, b.openLink(b.selectedLink())
	}

	switch b.state {
	case scheduleState:
		return b.updateSchedule(msg)
	case captionsState:
		return b.updateCaptions(msg)
	}
	return b, nil
}

func (b *statefulBubble) updateSchedule(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keymap.left):
		b.day = b.day.Prev()
		return b, b.fetchSchedule()
	case key.Matches(msg, b.keymap.right):
		b.day = b.day.Next()
		return b, b.fetchSchedule()
	case key.Matches(msg, b.keymap.refresh):
		return b, b.fetchSchedule()
	case key.Matches(msg, b.keymap.confirm):
		anime, ok := b.selectedScheduleAnime()
		if !ok {
			return b, nil
		}
		b.selectedAnime = anime
		b.captions = nil
		b.captionsC.SetRows(nil)
		b.newState(captionsState)
		return b, b.fetchCaptions()
	}
	return b, nil
}

func (b *statefulBubble) updateCaptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keymap.back):
		b.stopLoading()
		b.previousState()
		return b, nil
	case key.Matches(msg, b.keymap.refresh):
		return b, b.fetchCaptions()
	}
	return b, nil
}

// moveCursor steps the cursor by delta, wrapping at both ends.
func (b *statefulBubble) moveCursor(delta int) {
	t := b.activeTable()
	n := len(t.Rows())
	if n == 0 {
		return
	}
	t.SetCursor(((t.Cursor()+delta)%n + n) % n)
}

func (b *statefulBubble) selectedScheduleAnime() (anime anitime.Anime, ok bool) {
	i := b.scheduleC.Cursor()
	if i < 0 || i >= len(b.shown) {
		return anime, false
	}
	return b.shown[i], true
}

func (b *statefulBubble) selectedLink() string {
	if b.state == captionsState {
		i := b.captionsC.Cursor()
		if i < 0 || i >= len(b.captions) {
			return ""
		}
		return b.captions[i].Link
	}

	anime, ok := b.selectedScheduleAnime()
	if !ok {
		return ""
	}
	return anime.Link
}
