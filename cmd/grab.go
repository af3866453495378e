// Package cmd implements the command-line interface for AniSubDl.
package cmd

import (
	"os"

	"github.com/Sac-94/AniSubDl/inline"
	"github.com/Sac-94/AniSubDl/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(grabCmd)

	grabCmd.Flags().StringP("series", "s", "", "Series name to search for")
	lo.Must0(grabCmd.RegisterFlagCompletionFunc("series", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	grabCmd.Flags().StringP("group", "g", "", "Release group whose subtitles to fetch")
	grabCmd.Flags().StringP("dir", "d", "", "Output directory (defaults to <saved library>/<series>)")
	grabCmd.Flags().BoolP("rename", "r", false, "Apply the episode-matched rename mapping without prompting")
	grabCmd.Flags().BoolP("json", "j", false, "Emit the run summary as JSON")
	grabCmd.Flags().Bool("json-schema", false, "Print the JSON schema of the grab output and exit")

	lo.Must0(grabCmd.MarkFlagDirname("dir"))

	grabCmd.SetOut(os.Stdout)
}

// grabCmd fetches subtitles non-interactively for scripted usage.
var grabCmd = &cobra.Command{
	Use:   "grab",
	Short: "Fetch subtitles for a series and release group without prompting",
	Example: "  anisubdl grab --series \"Frieren\" --group SubsPlease --rename\n" +
		"  anisubdl grab -s \"Frieren\" -g SubsPlease -d ~/anime/Frieren --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json-schema")) {
			handleErr(inline.WriteJsonSchema(cmd.OutOrStdout()))
			return
		}

		options := inline.Options{
			Series: lo.Must(cmd.Flags().GetString("series")),
			Group:  lo.Must(cmd.Flags().GetString("group")),
			Dir:    lo.Must(cmd.Flags().GetString("dir")),
			Rename: lo.Must(cmd.Flags().GetBool("rename")),
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Out:    cmd.OutOrStdout(),
		}

		if options.Series == "" || options.Group == "" {
			handleErr(cmd.Help())
			return
		}

		handleErr(inline.Run(&options))
	},
}
