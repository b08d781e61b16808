package tui

import (
	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/inline"
	"github.com/anitable/anitable/style"
	"github.com/charmbracelet/bubbles/table"
	"github.com/samber/lo"
)

const (
	airtimeWidth = 7
	genreWidth   = 15

	episodeWidth = 8
	authorWidth  = 16
	updatedWidth = 16
)

func scheduleColumns(width int) []table.Column {
	subject := lo.Max([]int{width - airtimeWidth - genreWidth - 6, 10})
	return []table.Column{
		{Title: "시각", Width: airtimeWidth},
		{Title: "제목", Width: subject},
		{Title: "장르", Width: genreWidth},
	}
}

func captionColumns(width int) []table.Column {
	link := lo.Max([]int{width - episodeWidth - authorWidth - updatedWidth - 8, 10})
	return []table.Column{
		{Title: "에피소드", Width: episodeWidth},
		{Title: "제작자", Width: authorWidth},
		{Title: "갱신일", Width: updatedWidth},
		{Title: "주소", Width: link},
	}
}

func animeRow(a anitime.Anime) table.Row {
	subject := a.Subject
	if !a.Alive {
		subject = style.Faint(subject)
	}
	return table.Row{a.Airtime(), subject, a.Genre}
}

func captionRow(c anitime.Caption) table.Row {
	return table.Row{
		inline.Episode(c),
		c.Author,
		c.UpdatedAt.Local().Format("2006-01-02 15:04"),
		c.Link,
	}
}

// visible drops ended shows unless they are configured to be shown.
func visible(animes []anitime.Anime, showEnded bool) []anitime.Anime {
	if showEnded {
		return animes
	}
	return lo.Filter(animes, func(a anitime.Anime, _ int) bool { return a.Alive })
}
