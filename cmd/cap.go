package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/icon"
	"github.com/anitable/anitable/inline"
	"github.com/anitable/anitable/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(capCmd)

	capCmd.Flags().BoolP("json", "j", false, "Output as JSON")

	capCmd.SetOut(os.Stdout)
}

var capCmd = &cobra.Command{
	Use:     "cap [anime-id]",
	Short:   "Print the subtitle releases of an anime",
	Long:    "Print the subtitle releases of an anime. Without an id, pick a day and an anime interactively.",
	Example: "  anitable cap 4469\n  anitable cap --json 4469",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		var animeID int
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				handleErr(fmt.Errorf("invalid anime id %q", args[0]))
			}
			animeID = id
		} else {
			id, err := pickAnime(cmd.Context(), client)
			handleErr(err)
			animeID = id
		}

		handleErr(inline.Captions(cmd.Context(), animeID, &inline.Options{
			Out:    cmd.OutOrStdout(),
			Source: client,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
		}))
	},
}

// pickAnime asks for a day, fetches it and asks for one of its anime.
func pickAnime(ctx context.Context, client *anitime.Client) (int, error) {
	days := anitime.Days()
	today := anitime.DayOf(time.Now())

	var dayIndex int
	err := survey.AskOne(&survey.Select{
		Message: "Day",
		Options: lo.Map(days, func(d anitime.Day, _ int) string {
			return fmt.Sprintf("%s %s", d.Label(), d)
		}),
		Default: lo.IndexOf(days, today),
	}, &dayIndex)
	if err != nil {
		return 0, err
	}

	day := days[dayIndex]
	erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), day))
	animes, err := client.Schedule(ctx, day)
	erase()
	if err != nil {
		return 0, err
	}
	if len(animes) == 0 {
		return 0, errors.New("no anime on " + day.String())
	}

	var animeIndex int
	err = survey.AskOne(&survey.Select{
		Message: "Anime",
		Options: lo.Map(animes, func(a anitime.Anime, _ int) string {
			return fmt.Sprintf("%s  %s", a.Airtime(), a.Subject)
		}),
		PageSize: 15,
	}, &animeIndex)
	if err != nil {
		return 0, err
	}

	return animes[animeIndex].ID, nil
}
