package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeClient struct {
	schedules map[anitime.Day][]anitime.Anime
	captions  map[int][]anitime.Caption
	err       error
	calls     []anitime.Day
}

func (f *fakeClient) Schedule(_ context.Context, day anitime.Day) ([]anitime.Anime, error) {
	f.calls = append(f.calls, day)
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules[day], nil
}

func (f *fakeClient) Captions(_ context.Context, animeID int) ([]anitime.Caption, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.captions[animeID], nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes cmd and feeds every resulting message back into b,
// skipping spinner ticks and notifier timers.
func drain(b *statefulBubble, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(b, c)
		}
	case scheduleFetchedMsg, captionsFetchedMsg, fetchFailedMsg, ui.NotifyMsg:
		_, next := b.Update(msg)
		if _, isNotify := msg.(ui.NotifyMsg); !isNotify {
			drain(b, next)
		}
	}
}

func press(b *statefulBubble, msg tea.KeyMsg) tea.Cmd {
	_, cmd := b.Update(msg)
	return cmd
}

func weekSchedule() map[anitime.Day][]anitime.Anime {
	return map[anitime.Day][]anitime.Anime{
		anitime.Monday: {
			{ID: 1, Subject: "A", Time: "2300", Alive: true, Link: "https://a.example"},
			{ID: 2, Subject: "B", Time: "2330", Alive: true},
			{ID: 3, Subject: "C", Time: "2400", Alive: false},
		},
		anitime.Tuesday: {
			{ID: 4, Subject: "D", Time: "0100", Alive: true},
		},
	}
}

func newTestBubble(client *fakeClient, options *Options) *statefulBubble {
	options.Client = client
	if options.Day == 0 {
		options.Day = anitime.Monday
	}
	b := newBubble(context.Background(), options)
	b.openURL = func(string) error { return nil }
	return b
}

func TestViewerNavigation(t *testing.T) {
	Convey("Given a viewer started on Monday", t, func() {
		client := &fakeClient{schedules: weekSchedule()}
		b := newTestBubble(client, &Options{ShowEnded: true})
		drain(b, b.Init())

		So(b.animes, ShouldHaveLength, 3)
		So(b.scheduleC.Cursor(), ShouldEqual, 0)
		So(b.loading, ShouldBeFalse)

		Convey("Down wraps from the last row to the first", func() {
			press(b, tea.KeyMsg{Type: tea.KeyDown})
			press(b, runes("j"))
			So(b.scheduleC.Cursor(), ShouldEqual, 2)
			press(b, tea.KeyMsg{Type: tea.KeyDown})
			So(b.scheduleC.Cursor(), ShouldEqual, 0)
		})

		Convey("Up wraps from the first row to the last", func() {
			press(b, runes("k"))
			So(b.scheduleC.Cursor(), ShouldEqual, 2)
		})

		Convey("G and g jump to the ends", func() {
			press(b, runes("G"))
			So(b.scheduleC.Cursor(), ShouldEqual, 2)
			press(b, runes("g"))
			So(b.scheduleC.Cursor(), ShouldEqual, 0)
		})

		Convey("Right selects the next day, fetches it and resets the cursor", func() {
			press(b, tea.KeyMsg{Type: tea.KeyDown})
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyRight}))

			So(b.day, ShouldEqual, anitime.Tuesday)
			So(client.calls, ShouldResemble, []anitime.Day{anitime.Monday, anitime.Tuesday})
			So(b.animes, ShouldHaveLength, 1)
			So(b.scheduleC.Cursor(), ShouldEqual, 0)
		})

		Convey("Left from Sunday wraps to the new-series tab", func() {
			b.day = anitime.Sunday
			press(b, tea.KeyMsg{Type: tea.KeyLeft})
			So(b.day, ShouldEqual, anitime.NewSeries)
		})

		Convey("Tab and shift+tab move between days", func() {
			press(b, tea.KeyMsg{Type: tea.KeyTab})
			So(b.day, ShouldEqual, anitime.Tuesday)
			press(b, tea.KeyMsg{Type: tea.KeyShiftTab})
			So(b.day, ShouldEqual, anitime.Monday)
		})

		Convey("Refresh fetches the same day again", func() {
			drain(b, press(b, runes("r")))
			So(client.calls, ShouldResemble, []anitime.Day{anitime.Monday, anitime.Monday})
		})

		Convey("q quits", func() {
			cmd := press(b, runes("q"))
			So(cmd, ShouldNotBeNil)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestViewerResponses(t *testing.T) {
	Convey("Given a viewer showing Monday", t, func() {
		client := &fakeClient{schedules: weekSchedule()}
		b := newTestBubble(client, &Options{ShowEnded: true})
		drain(b, b.Init())
		press(b, tea.KeyMsg{Type: tea.KeyDown})

		Convey("A response for a day no longer selected is discarded", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRight})
			b.Update(scheduleFetchedMsg{day: anitime.Monday, animes: []anitime.Anime{{ID: 99}}})

			So(b.day, ShouldEqual, anitime.Tuesday)
			So(b.animes, ShouldHaveLength, 3)
			So(b.loading, ShouldBeTrue)
		})

		Convey("A failure keeps the previous list and cursor", func() {
			client.err = &anitime.RequestError{Op: "list", StatusCode: 500}
			drain(b, press(b, runes("r")))

			So(b.animes, ShouldHaveLength, 3)
			So(b.scheduleC.Cursor(), ShouldEqual, 1)
			So(b.loading, ShouldBeFalse)
			So(b.fatal, ShouldBeNil)
			So(b.notifier.Text(), ShouldNotBeEmpty)

			var reqErr *anitime.RequestError
			So(errors.As(b.lastError, &reqErr), ShouldBeTrue)
		})

		Convey("A stale failure is ignored", func() {
			press(b, tea.KeyMsg{Type: tea.KeyRight})
			b.Update(fetchFailedMsg{state: scheduleState, day: anitime.Monday, err: errors.New("late")})
			So(b.lastError, ShouldBeNil)
		})

		Convey("An empty schedule replaces the list", func() {
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyLeft}))
			So(b.day, ShouldEqual, anitime.Sunday)
			So(b.animes, ShouldBeEmpty)
			So(b.View(), ShouldContainSubstring, "방송 정보가 없습니다")
		})
	})

	Convey("Given a viewer configured to exit on error", t, func() {
		client := &fakeClient{err: &anitime.DecodeError{Op: "list", Err: errors.New("bad json")}}
		b := newTestBubble(client, &Options{ExitOnError: true})

		_, cmd := b.Update(fetchFailedMsg{state: scheduleState, day: anitime.Monday, err: client.err})

		Convey("The failure quits and is kept for Run", func() {
			So(cmd, ShouldNotBeNil)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)

			var decodeErr *anitime.DecodeError
			So(errors.As(b.fatal, &decodeErr), ShouldBeTrue)
		})
	})
}

func TestViewerEndedShows(t *testing.T) {
	Convey("Given ended shows are hidden", t, func() {
		client := &fakeClient{schedules: weekSchedule()}
		b := newTestBubble(client, &Options{ShowEnded: false})
		drain(b, b.Init())

		Convey("The raw list is kept but only airing shows are rows", func() {
			So(b.animes, ShouldHaveLength, 3)
			So(b.shown, ShouldHaveLength, 2)
			So(b.scheduleC.Rows(), ShouldHaveLength, 2)
		})
	})
}

func TestViewerCaptions(t *testing.T) {
	Convey("Given a viewer with a loaded schedule", t, func() {
		client := &fakeClient{
			schedules: weekSchedule(),
			captions: map[int][]anitime.Caption{
				2: {
					{Episode: "1", Author: "x", Link: "https://x.example/1"},
					{Episode: "2", Author: "y", Link: "https://y.example/2"},
				},
			},
		}
		b := newTestBubble(client, &Options{ShowEnded: true})
		drain(b, b.Init())
		press(b, tea.KeyMsg{Type: tea.KeyDown})

		var opened string
		b.openURL = func(u string) error {
			opened = u
			return nil
		}

		Convey("Enter opens the captions of the selected anime", func() {
			drain(b, press(b, tea.KeyMsg{Type: tea.KeyEnter}))

			So(b.state, ShouldEqual, captionsState)
			So(b.selectedAnime.ID, ShouldEqual, 2)
			So(b.captions, ShouldHaveLength, 2)
			So(b.View(), ShouldContainSubstring, "B")

			Convey("Cursor keys drive the caption table", func() {
				press(b, tea.KeyMsg{Type: tea.KeyUp})
				So(b.captionsC.Cursor(), ShouldEqual, 1)
				So(b.scheduleC.Cursor(), ShouldEqual, 1)
			})

			Convey("o opens the selected caption link", func() {
				press(b, tea.KeyMsg{Type: tea.KeyDown})
				cmd := press(b, runes("o"))
				msg := cmd()
				So(opened, ShouldEqual, "https://y.example/2")
				So(msg.(linkOpenedMsg).err, ShouldBeNil)
			})

			Convey("Esc returns to the schedule with the cursor kept", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, scheduleState)
				So(b.scheduleC.Cursor(), ShouldEqual, 1)
			})

			Convey("Captions arriving after leaving the view are dropped", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				b.Update(captionsFetchedMsg{animeID: 2, captions: nil})
				So(b.captions, ShouldHaveLength, 2)
			})
		})

		Convey("A schedule refresh landing behind the captions view", func() {
			press(b, tea.KeyMsg{Type: tea.KeyEnter})
			So(b.state, ShouldEqual, captionsState)
			So(b.loading, ShouldBeTrue)

			b.Update(scheduleFetchedMsg{day: b.day, animes: client.schedules[b.day]})

			Convey("leaves the captions spinner running", func() {
				So(b.loading, ShouldBeTrue)
			})

			Convey("keeps the schedule cursor for the way back", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.scheduleC.Cursor(), ShouldEqual, 1)
			})
		})

		Convey("A schedule failure behind the captions view leaves the captions spinner running", func() {
			press(b, tea.KeyMsg{Type: tea.KeyEnter})
			b.Update(fetchFailedMsg{state: scheduleState, day: b.day, err: errors.New("boom")})
			So(b.state, ShouldEqual, captionsState)
			So(b.loading, ShouldBeTrue)
		})

		Convey("o on an anime without a link does nothing", func() {
			So(press(b, runes("o")), ShouldBeNil)
		})
	})
}
