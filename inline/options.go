package inline

import (
	"context"
	"io"

	"github.com/anitable/anitable/anitime"
)

// Source is the subset of *anitime.Client the inline mode needs.
type Source interface {
	Schedule(ctx context.Context, day anitime.Day) ([]anitime.Anime, error)
	Captions(ctx context.Context, animeID int) ([]anitime.Caption, error)
}

// Options controls what is fetched and how it is printed.
type Options struct {
	Out    io.Writer
	Source Source
	Json   bool

	// Search keeps only subjects fuzzily matching it. Empty keeps all.
	Search string
	// AliveOnly drops shows that are no longer airing.
	AliveOnly bool
}
