// Package cmd implements the command-line interface for AniSubDl.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Sac-94/AniSubDl/color"
	"github.com/Sac-94/AniSubDl/constant"
	"github.com/Sac-94/AniSubDl/icon"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/style"
	"github.com/Sac-94/AniSubDl/version"
	"github.com/Sac-94/AniSubDl/wizard"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("quality", "q", "", "Quality tag appended to torrent index searches")
	lo.Must0(viper.BindPFlag(key.SearchQuality, rootCmd.PersistentFlags().Lookup("quality")))

	rootCmd.PersistentFlags().BoolP("anilist", "A", true, "Resolve series titles through Anilist")
	lo.Must0(viper.BindPFlag(key.MetadataFetchAnilist, rootCmd.PersistentFlags().Lookup("anilist")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the AniSubDl application.
var rootCmd = &cobra.Command{
	Use:   constant.AniSubDl + " [anime-dir]",
	Short: "An interactive fan-subtitle downloader for Anime Tosho",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - An interactive fan-subtitle downloader for Anime Tosho") +
		"\n\nIf no directory is provided, the last used path is loaded, else an interactive prompt asks for one.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := wizard.Options{}
		if len(args) > 0 {
			options.LibraryRoot = args[0]
		}

		handleErr(wizard.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
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

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
