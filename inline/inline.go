// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Sac-94/AniSubDl/anilist"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/library"
	"github.com/Sac-94/AniSubDl/query"
	"github.com/Sac-94/AniSubDl/tosho"
	"github.com/spf13/viper"
)

// Options configures a non-interactive grab.
type Options struct {
	// Series is the series name used both for searching and, when Dir is
	// empty, as the subdirectory of the saved library root.
	Series string

	// Group is the release group whose subtitles are fetched.
	Group string

	// Dir is the target directory for extracted subtitles.
	Dir string

	// Rename applies the episode-matched rename mapping without prompting.
	Rename bool

	// Json emits the run summary as a JSON document.
	Json bool

	Out   io.Writer
	Index *tosho.Client
}

// Run executes a single fetch without any interactive prompting.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	index := options.Index
	if index == nil {
		index = tosho.New()
	}

	dir, err := resolveDir(options)
	if err != nil {
		return err
	}

	_ = query.Remember(options.Series, 1)

	title := options.Series
	if viper.GetBool(key.MetadataFetchAnilist) {
		title = anilist.ResolveTitle(options.Series).OrElse(options.Series)
	}

	term := fmt.Sprintf("[%s] %s", options.Group, title)

	subtitles, err := index.FetchSubtitles(term, dir)
	if err != nil {
		return err
	}

	if len(subtitles) == 0 {
		if suggestion, ok := query.Suggest(options.Series).Get(); ok {
			fmt.Fprintf(options.Out, "No subtitles found for %q. An earlier similar search: %s\n", options.Series, suggestion)
		}
	}

	var renames []library.Rename
	if options.Rename && len(subtitles) > 0 {
		videos, err := library.Videos(dir)
		if err != nil {
			return err
		}

		renames = library.BuildRenameMap(dir, subtitles, videos)
		library.ApplyRenames(renames)
	}

	if options.Json {
		return writeJson(options.Out, options, term, dir, subtitles, renames)
	}

	for _, path := range subtitles {
		fmt.Fprintln(options.Out, path)
	}

	return nil
}

// resolveDir determines the output directory: an explicit --dir wins,
// otherwise the series subdirectory of the saved library root. The fetcher
// creates the directory when it does not exist yet.
func resolveDir(options *Options) (string, error) {
	if options.Dir != "" {
		return options.Dir, nil
	}

	root, ok := library.LoadPath().Get()
	if !ok {
		return "", fmt.Errorf("no --dir given and no saved library path")
	}

	return filepath.Join(root, options.Series), nil
}
