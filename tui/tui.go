// Package tui is the interactive schedule viewer.
package tui

import (
	"context"
	"errors"

	"github.com/anitable/anitable/anitime"
	tea "github.com/charmbracelet/bubbletea"
)

// Fetcher is the part of *anitime.Client the viewer calls.
type Fetcher interface {
	Schedule(ctx context.Context, day anitime.Day) ([]anitime.Anime, error)
	Captions(ctx context.Context, animeID int) ([]anitime.Caption, error)
}

// Options configures the viewer.
type Options struct {
	Client Fetcher
	// Day is selected on startup.
	Day anitime.Day
	// ExitOnError quits on the first failed fetch and makes Run return it.
	// Otherwise the previous list stays on screen and the error is shown briefly.
	ExitOnError bool
	// ShowEnded keeps shows that are no longer airing in the table.
	ShowEnded bool
}

// Run starts the viewer and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	if options.Client == nil {
		return errors.New("tui: no client")
	}
	if !options.Day.Valid() {
		return errors.New("tui: invalid start day")
	}

	bubble := newBubble(ctx, options)
	final, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if b, ok := final.(*statefulBubble); ok && b.fatal != nil {
		return b.fatal
	}
	return nil
}
