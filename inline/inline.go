// Package inline prints schedules and caption lists without the interactive viewer.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/icon"
	"github.com/anitable/anitable/log"
	"github.com/anitable/anitable/style"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Filter applies the Search and AliveOnly options, keeping schedule order.
func Filter(animes []anitime.Anime, options *Options) []anitime.Anime {
	return lo.Filter(animes, func(a anitime.Anime, _ int) bool {
		if options.AliveOnly && !a.Alive {
			return false
		}
		return options.Search == "" || fuzzy.MatchNormalizedFold(options.Search, a.Subject)
	})
}

// Schedule fetches and prints the table for day.
func Schedule(ctx context.Context, day anitime.Day, options *Options) error {
	out := writer(options)

	animes, err := options.Source.Schedule(ctx, day)
	if err != nil {
		return err
	}

	filtered := Filter(animes, options)
	log.WithFields(logrus.Fields{
		"day":      day.String(),
		"fetched":  len(animes),
		"filtered": len(filtered),
	}).Info("schedule fetched")

	if options.Json {
		return writeJson(out, &ScheduleOutput{
			Day:    day.String(),
			Code:   day.Code(),
			Search: options.Search,
			Result: lo.Map(filtered, func(a anitime.Anime, _ int) *Anime { return toAnime(a) }),
		})
	}

	fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Calendar), style.Title(fmt.Sprintf("%s %s", day.Label(), day)))
	for _, a := range filtered {
		printAnime(out, a)
	}
	return nil
}

// Captions fetches and prints the caption list of animeID.
func Captions(ctx context.Context, animeID int, options *Options) error {
	out := writer(options)

	captions, err := options.Source.Captions(ctx, animeID)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"anime": animeID, "fetched": len(captions)}).Info("captions fetched")

	if options.Json {
		return writeJson(out, &CaptionsOutput{
			AnimeID: animeID,
			Result:  lo.Map(captions, func(c anitime.Caption, _ int) *Caption { return toCaption(c) }),
		})
	}

	for _, c := range captions {
		fmt.Fprintf(out, "%s %s  %s  %s  %s\n",
			icon.Get(icon.Caption),
			style.Bold(Episode(c)),
			c.Author,
			style.Faint(c.UpdatedAt.Local().Format("2006-01-02 15:04")),
			style.Fg(style.Sky)(c.Link),
		)
	}
	return nil
}

// Episode renders a caption's episode number for display.
func Episode(c anitime.Caption) string {
	switch c.Episode {
	case "", "0":
		return "-"
	default:
		return c.Episode + "화"
	}
}

func printAnime(out io.Writer, a anitime.Anime) {
	line := fmt.Sprintf("%s  %s  %s", style.Fg(style.KeyColor)(a.Airtime()), a.Subject, style.Faint(a.Genre))
	if !a.Alive {
		fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Ended), style.Faint(line))
		return
	}
	fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Airing), line)
}

func writer(options *Options) io.Writer {
	if options.Out == nil {
		return os.Stdout
	}
	return options.Out
}
