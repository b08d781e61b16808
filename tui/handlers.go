package tui

import (
	"fmt"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/log"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type scheduleFetchedMsg struct {
	day    anitime.Day
	animes []anitime.Anime
}

type captionsFetchedMsg struct {
	animeID  int
	captions []anitime.Caption
}

type fetchFailedMsg struct {
	state   state
	day     anitime.Day
	animeID int
	err     error
}

type linkOpenedMsg struct {
	url string
	err error
}

// startLoading begins a spinner chain unless one is already running.
func (b *statefulBubble) startLoading() tea.Cmd {
	if b.loading {
		return nil
	}
	b.loading = true
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
}

func (b *statefulBubble) fetchSchedule() tea.Cmd {
	client, ctx, day := b.client, b.ctx, b.day
	log.WithFields(logrus.Fields{"day": day.String()}).Debug("fetching schedule")

	return tea.Batch(b.startLoading(), func() tea.Msg {
		animes, err := client.Schedule(ctx, day)
		if err != nil {
			return fetchFailedMsg{state: scheduleState, day: day, err: err}
		}
		return scheduleFetchedMsg{day: day, animes: animes}
	})
}

func (b *statefulBubble) fetchCaptions() tea.Cmd {
	client, ctx, id := b.client, b.ctx, b.selectedAnime.ID
	log.WithFields(logrus.Fields{"anime": id}).Debug("fetching captions")

	return tea.Batch(b.startLoading(), func() tea.Msg {
		captions, err := client.Captions(ctx, id)
		if err != nil {
			return fetchFailedMsg{state: captionsState, animeID: id, err: err}
		}
		return captionsFetchedMsg{animeID: id, captions: captions}
	})
}

func (b *statefulBubble) openLink(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	opener := b.openURL
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: opener(url)}
	}
}

// current reports whether a response still matches what is on screen.
func (b *statefulBubble) current(s state, day anitime.Day, animeID int) bool {
	switch s {
	case scheduleState:
		return day == b.day
	case captionsState:
		return b.state == captionsState && animeID == b.selectedAnime.ID
	default:
		return false
	}
}

func (b *statefulBubble) handleScheduleFetched(msg scheduleFetchedMsg) {
	b.animes = msg.animes
	b.shown = visible(msg.animes, b.options.ShowEnded)

	rows := make([]table.Row, len(b.shown))
	for i, a := range b.shown {
		rows[i] = animeRow(a)
	}
	b.scheduleC.SetRows(rows)
	// A list that lands behind the captions view keeps the row the user left.
	if b.state == scheduleState {
		b.scheduleC.SetCursor(0)
	} else {
		b.scheduleC.SetCursor(b.scheduleC.Cursor())
	}
	b.lastError = nil
}

func (b *statefulBubble) handleCaptionsFetched(msg captionsFetchedMsg) {
	b.captions = msg.captions

	rows := make([]table.Row, len(msg.captions))
	for i, c := range msg.captions {
		rows[i] = captionRow(c)
	}
	b.captionsC.SetRows(rows)
	b.captionsC.SetCursor(0)
	b.lastError = nil
}

func (b *statefulBubble) failureText(msg fetchFailedMsg) string {
	if msg.state == captionsState {
		return fmt.Sprintf("자막 목록을 불러오지 못했습니다: %v", msg.err)
	}
	return fmt.Sprintf("%s 편성표를 불러오지 못했습니다: %v", msg.day.Label(), msg.err)
}
