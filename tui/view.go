package tui

import (
	"fmt"
	"strings"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/constant"
	"github.com/anitable/anitable/icon"
	"github.com/anitable/anitable/style"
	"github.com/anitable/anitable/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Bold(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(style.Subtext).Padding(0, 1)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case scheduleState:
		return b.viewSchedule()
	case captionsState:
		return b.viewCaptions()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewSchedule() string {
	header := style.Title(constant.Anitable) + " " + b.status(util.Quantify(len(b.shown), "anime", "anime"))

	tabs := lo.Map(anitime.Days(), func(d anitime.Day, _ int) string {
		if d == b.day {
			return activeTabStyle.Render(d.Label())
		}
		return inactiveTabStyle.Render(d.Label())
	})

	var body string
	if len(b.shown) == 0 {
		body = b.viewEmpty("방송 정보가 없습니다")
	} else {
		body = b.scheduleC.View()
	}

	return b.renderLines([]string{
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
	})
}

func (b *statefulBubble) viewCaptions() string {
	title := lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1).Render(b.selectedAnime.Subject)
	header := title + " " + b.status(util.Quantify(len(b.captions), "caption", "captions"))

	subtitle := fmt.Sprintf("%s %s  %s", icon.Get(icon.Calendar), b.selectedAnime.Airtime(), style.Faint(b.selectedAnime.Genre))

	var body string
	if len(b.captions) == 0 {
		body = b.viewEmpty("등록된 자막이 없습니다")
	} else {
		body = b.captionsC.View()
	}

	return b.renderLines([]string{
		header,
		subtitle,
		"",
		body,
	})
}

func (b *statefulBubble) status(count string) string {
	if b.loading {
		return b.spinnerC.View() + " " + style.Faint("불러오는 중")
	}
	return style.Faint(count)
}

func (b *statefulBubble) viewEmpty(placeholder string) string {
	if b.loading {
		return ""
	}
	if b.lastError != nil {
		return wrap.String(icon.Get(icon.Fail)+" "+style.Fg(style.ErrorColor)(b.lastError.Error()), b.width)
	}
	return style.Faint(placeholder)
}

func (b *statefulBubble) renderLines(lines []string) string {
	content := strings.Join(lines, "\n")
	if h := lipgloss.Height(content); b.height > h+2 {
		content += strings.Repeat("\n", b.height-h-2)
	}
	content += "\n" + b.notifier.View()
	content += "\n" + b.helpC.View(b.keymap)

	return paddingStyle.Render(content)
}
