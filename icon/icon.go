// Package icon renders status symbols in the variant selected by icons.variant.
package icon

import (
	"github.com/anitable/anitable/key"
	"github.com/anitable/anitable/style"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Calendar
	Caption
	Link
	Airing
	Ended
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(style.ErrorColor)(""),
		plain:   style.Fg(style.ErrorColor)("X"),
		squares: style.Fg(style.ErrorColor)("■"),
	},
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(style.SuccessColor)(""),
		plain:   style.Fg(style.SuccessColor)("✓"),
		squares: style.Fg(style.SuccessColor)("■"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(style.AccentColor)(""),
		plain:   style.Fg(style.AccentColor)("..."),
		squares: style.Fg(style.AccentColor)("□"),
	},
	Calendar: {
		emoji:   "📅",
		nerd:    style.Fg(style.KeyColor)(""),
		plain:   style.Fg(style.KeyColor)("#"),
		squares: style.Fg(style.KeyColor)("▪"),
	},
	Caption: {
		emoji:   "💬",
		nerd:    style.Fg(style.SecondaryColor)(""),
		plain:   style.Fg(style.SecondaryColor)("~"),
		squares: style.Fg(style.SecondaryColor)("▫"),
	},
	Link: {
		emoji:   "🔗",
		nerd:    style.Fg(style.Sky)(""),
		plain:   style.Fg(style.Sky)("@"),
		squares: style.Fg(style.Sky)("▹"),
	},
	Airing: {
		emoji:   "📺",
		nerd:    style.Fg(style.SuccessColor)(""),
		plain:   style.Fg(style.SuccessColor)("*"),
		squares: style.Fg(style.SuccessColor)("▶"),
	},
	Ended: {
		emoji:   "🏁",
		nerd:    style.Fg(style.FaintColor)(""),
		plain:   style.Fg(style.FaintColor)("-"),
		squares: style.Fg(style.FaintColor)("□"),
	},
}

// Get renders i in the configured variant. Unknown variants render empty.
func Get(i Icon) string {
	return icons[i].get()
}
