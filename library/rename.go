package library

import (
	"fmt"
	"path/filepath"

	"github.com/Sac-94/AniSubDl/episode"
	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/util"
	"github.com/samber/lo"
)

// Rename is a single proposed subtitle rename.
type Rename struct {
	From string
	To   string
}

// BuildRenameMap pairs downloaded subtitles with the video files of dir by
// matching extracted episode numbers. The first video sharing a subtitle's
// episode number wins; no further candidates are tried. A subtitle whose
// proposed target already exists on disk is excluded from the mapping.
func BuildRenameMap(dir string, subtitles []string, videos []string) []Rename {
	var renames []Rename

	for _, sub := range subtitles {
		subName := filepath.Base(sub)

		subEpisode, ok := episode.Extract(subName).Get()
		if !ok {
			log.Warnf("no episode number recognized in %q", subName)
			fmt.Printf("Could not determine episode number for: %s\n", subName)
			continue
		}

		for _, video := range videos {
			videoEpisode, ok := episode.Extract(video).Get()
			if !ok || videoEpisode != subEpisode {
				continue
			}

			target := filepath.Join(dir, util.FileStem(video)+filepath.Ext(sub))
			if exists := lo.Must(filesystem.API().Exists(target)); exists {
				log.Warnf("proposed rename target %q already exists, skipping", target)
				fmt.Printf("Warning: Proposed new name already exists, skipping: %s\n", filepath.Base(target))
				break
			}

			renames = append(renames, Rename{From: sub, To: target})
			break
		}
	}

	return renames
}

// ApplyRenames executes the proposed renames. Individual failures are logged
// and do not stop the remaining renames; no rollback is attempted.
func ApplyRenames(renames []Rename) {
	for _, r := range renames {
		if err := filesystem.API().Rename(r.From, r.To); err != nil {
			log.Errorf("rename %q: %v", r.From, err)
			fmt.Printf("Error renaming '%s': %v\n", filepath.Base(r.From), err)
			continue
		}

		fmt.Printf("Renamed to '%s'\n", filepath.Base(r.To))
	}
}
