package tui

import (
	"context"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/internal/ui"
	"github.com/anitable/anitable/open"
	"github.com/anitable/anitable/style"
	"github.com/anitable/anitable/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

type statefulBubble struct {
	ctx context.Context

	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	scheduleC table.Model
	captionsC table.Model
	spinnerC  spinner.Model
	helpC     help.Model
	notifier  *ui.Model

	client Fetcher
	day    anitime.Day
	// animes is the last successful schedule, exactly as received.
	animes []anitime.Anime
	// shown is animes after the show-ended filter, in table order.
	shown []anitime.Anime

	selectedAnime anitime.Anime
	captions      []anitime.Caption

	lastError error
	// fatal is returned from Run when ExitOnError quits the program.
	fatal error

	openURL func(string) error

	width, height int

	options *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// activeTable returns the table the cursor keys drive.
func (b *statefulBubble) activeTable() *table.Model {
	if b.state == captionsState {
		return &b.captionsC
	}
	return &b.scheduleC
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width

	// header, tabs, blank line, notifier and help
	tableHeight := lo.Max([]int{b.height - 6, 3})

	b.scheduleC.SetWidth(b.width)
	b.scheduleC.SetHeight(tableHeight)
	b.scheduleC.SetColumns(scheduleColumns(b.width))

	b.captionsC.SetWidth(b.width)
	b.captionsC.SetHeight(tableHeight)
	b.captionsC.SetColumns(captionColumns(b.width))
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(style.BorderColor).
		BorderBottom(true).
		Bold(true).
		Foreground(style.SecondaryColor)
	styles.Selected = styles.Selected.
		Foreground(style.Base).
		Background(style.AccentColor).
		Bold(true)
	t.SetStyles(styles)

	return t
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		notifier:      &ui.Model{},
		client:        options.Client,
		day:           options.Day,
		openURL:       open.Start,
		options:       options,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.scheduleC = newTable(scheduleColumns(80))
	bubble.captionsC = newTable(captionColumns(80))

	bubble.setState(scheduleState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	return &bubble
}
