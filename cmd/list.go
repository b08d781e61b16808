package cmd

import (
	"os"
	"time"

	"github.com/anitable/anitable/filesystem"
	"github.com/anitable/anitable/inline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	listCmd.Flags().StringP("search", "s", "", "Only show subjects fuzzily matching this text")
	listCmd.Flags().BoolP("alive", "a", false, "Only show anime that are still airing")
	listCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	listCmd.SetOut(os.Stdout)
}

var listCmd = &cobra.Command{
	Use:               "list [day]",
	Short:             "Print the broadcast schedule of a day",
	Long:              "Print the broadcast schedule of a day. Without an argument today's weekday is used.",
	Example:           "  anitable list sat --alive\n  anitable list new --json\n  anitable list 목 -s 칼날",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDays,
	Run: func(cmd *cobra.Command, args []string) {
		day, err := startDay(lo.FirstOr(args, ""), time.Now())
		handleErr(err)

		options := &inline.Options{
			Out:       cmd.OutOrStdout(),
			Source:    newClient(),
			Json:      lo.Must(cmd.Flags().GetBool("json")),
			Search:    lo.Must(cmd.Flags().GetString("search")),
			AliveOnly: lo.Must(cmd.Flags().GetBool("alive")),
		}

		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer file.Close()
			options.Out = file
		}

		handleErr(inline.Schedule(cmd.Context(), day, options))
	},
}
