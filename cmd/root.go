// Package cmd implements the anitable command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/constant"
	"github.com/anitable/anitable/icon"
	"github.com/anitable/anitable/key"
	"github.com/anitable/anitable/log"
	"github.com/anitable/anitable/network"
	"github.com/anitable/anitable/style"
	"github.com/anitable/anitable/tui"
	"github.com/anitable/anitable/util"
	"github.com/anitable/anitable/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("base-url", "", "Schedule service address")
	lo.Must0(viper.BindPFlag(key.ClientBaseURL, rootCmd.PersistentFlags().Lookup("base-url")))

	rootCmd.Flags().StringP("day", "d", "", "Day to open (mon, sat, etc, new, 일, 0-8...)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("day", completeDays))
	lo.Must0(viper.BindPFlag(key.TUIDefaultDay, rootCmd.Flags().Lookup("day")))

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Anitable,
	Short: "Anime broadcast schedule in your terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.AccentColor).Render("    - Anime broadcast schedule in your terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		day, err := startDay(viper.GetString(key.TUIDefaultDay), time.Now())
		handleErr(err)

		options := tui.Options{
			Client:      newClient(),
			Day:         day,
			ExitOnError: viper.GetBool(key.TUIExitOnError),
			ShowEnded:   viper.GetBool(key.TUIShowEnded),
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds a schedule client from the client.* keys.
func newClient() *anitime.Client {
	userAgent := viper.GetString(key.ClientUserAgent)
	timeout := time.Duration(viper.GetInt(key.ClientTimeout)) * time.Second

	return anitime.New(
		anitime.WithBaseURL(viper.GetString(key.ClientBaseURL)),
		anitime.WithHTTPClient(network.NewClient(timeout, userAgent)),
		anitime.WithUserAgent(userAgent),
	)
}

// startDay resolves "today" (or empty) to the weekday of now, anything else through ParseDay.
func startDay(value string, now time.Time) (anitime.Day, error) {
	if value == "" || strings.EqualFold(value, "today") {
		return anitime.DayOf(now), nil
	}
	return anitime.ParseDay(value)
}

func completeDays(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	days := lo.Map(anitime.Days(), func(d anitime.Day, _ int) string {
		return strings.ToLower(d.String())
	})
	return append(days, "today"), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
