package wizard

import (
	"fmt"
	"path/filepath"

	"github.com/Sac-94/AniSubDl/anilist"
	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/icon"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/library"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/query"
	"github.com/Sac-94/AniSubDl/style"
	"github.com/Sac-94/AniSubDl/util"
	"github.com/spf13/viper"
)

type state int

const (
	libraryResolveState state = iota + 1
	seriesSelectState
	groupSearchState
	groupSelectState
	subsFetchState
	renameState
	quitState
)

func (w *wizard) handleLibraryResolveState() error {
	root := w.options.LibraryRoot

	if root == "" {
		if saved, ok := library.LoadPath().Get(); ok {
			root = saved
			fmt.Printf("Loaded anime directory from config: %s\n", root)
		}
	}

	if root == "" {
		answer, err := w.prompter.Input("Path to your anime directory:", nil)
		if err != nil {
			return err
		}
		root = answer
	}

	fmt.Println(style.Title("AniSubDl: Anime Tosho Subtitle Downloader"))

	isDir, err := filesystem.API().IsDir(root)
	if err != nil || !isDir {
		return fmt.Errorf("the path %q is not a valid directory", root)
	}

	if err := library.SavePath(root); err != nil {
		log.Warnf("could not save library path: %v", err)
		fmt.Printf("Warning: Could not save path to config file: %v\n", err)
	}

	w.root = root
	w.newState(seriesSelectState)
	return nil
}

func (w *wizard) handleSeriesSelectState() error {
	series, err := library.Series(w.root)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		fmt.Printf("No anime series found in %q.\n", w.root)
		w.newState(quitState)
		return nil
	}

	selected, err := w.prompter.Select("Select an anime directory:", series)
	if err != nil {
		return err
	}

	w.series = selected
	w.seriesPath = filepath.Join(w.root, selected)
	_ = query.Remember(selected, 1)

	w.newState(groupSearchState)
	return nil
}

func (w *wizard) handleGroupSearchState() error {
	erase := util.PrintErasable(fmt.Sprintf("%s Searching release groups..", icon.Get(icon.Search)))
	groups, err := w.index.ReleaseGroups(w.series)
	erase()
	if err != nil {
		return err
	}

	if len(groups) == 0 && viper.GetBool(key.MetadataFetchAnilist) {
		fmt.Println("No groups found with the directory name. Trying AniList...")

		if title, ok := anilist.ResolveTitle(w.series).Get(); ok {
			fmt.Printf("Found title: %s\n", title)
			groups, err = w.index.ReleaseGroups(title)
			if err != nil {
				return err
			}
		}
	}

	if len(groups) == 0 {
		fmt.Printf("Could not find any release groups for %q.\n", w.series)
		w.newState(quitState)
		return nil
	}

	w.groups = groups
	w.newState(groupSelectState)
	return nil
}

func (w *wizard) handleGroupSelectState() error {
	group, err := w.prompter.Select("Select a release group:", w.groups)
	if err != nil {
		return err
	}

	w.group = group

	// Fansub releases are indexed under canonical titles, so the final
	// search term prefers the Anilist title over the directory name.
	title := w.series
	if viper.GetBool(key.MetadataFetchAnilist) {
		title = anilist.ResolveTitle(w.series).OrElse(w.series)
	}

	w.searchTerm = fmt.Sprintf("[%s] %s", group, title)
	w.newState(subsFetchState)
	return nil
}

func (w *wizard) handleSubsFetchState() error {
	subtitles, err := w.index.FetchSubtitles(w.searchTerm, w.seriesPath)
	if err != nil {
		return err
	}

	if len(subtitles) == 0 {
		retry, err := w.prompter.Confirm("No subtitles found for this group. Try another one?", false)
		if err != nil {
			return err
		}

		if retry {
			w.previousState()
			return nil
		}

		w.newState(quitState)
		return nil
	}

	w.subtitles = subtitles
	w.newState(renameState)
	return nil
}

func (w *wizard) handleRenameState() error {
	fmt.Println()
	fmt.Println(style.Bold("Optional: Subtitle Renaming"))

	videos, err := library.Videos(w.seriesPath)
	if err != nil {
		return err
	}

	if len(videos) == 0 {
		fmt.Println("No video files found in the directory. Skipping renaming.")
		w.newState(quitState)
		return nil
	}

	renames := library.BuildRenameMap(w.seriesPath, w.subtitles, videos)
	if len(renames) == 0 {
		fmt.Println("Could not find any matching video files for the downloaded subtitles.")
		w.newState(quitState)
		return nil
	}

	width, _, err := util.TerminalSize()
	if err != nil {
		width = 80
	}

	fmt.Println("\nProposed renames:")
	for _, r := range renames {
		line := fmt.Sprintf("  %s  ->  %s",
			style.Faint(filepath.Base(r.From)),
			style.Bold(filepath.Base(r.To)),
		)
		fmt.Println(style.Truncate(width)(line))
	}

	apply, err := w.prompter.Confirm("Do you want to apply these renames?", false)
	if err != nil {
		return err
	}

	if apply {
		library.ApplyRenames(renames)
	} else {
		fmt.Println("Renaming cancelled.")
	}

	w.newState(quitState)
	return nil
}
