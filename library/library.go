// Package library manages the local anime collection: the persisted root
// path, per-series directories, and the video files inside them.
package library

import (
	"path/filepath"
	"strings"

	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// SavePath persists the anime library root for subsequent runs.
// The file is overwritten wholesale; there is no versioning.
func SavePath(path string) error {
	return filesystem.API().WriteFile(where.SavedLibrary(), []byte(path), 0644)
}

// LoadPath returns the previously saved library root.
// A saved path that no longer resolves to a directory is discarded with a warning.
func LoadPath() mo.Option[string] {
	contents, err := filesystem.API().ReadFile(where.SavedLibrary())
	if err != nil {
		return mo.None[string]()
	}

	path := strings.TrimSpace(string(contents))
	if path == "" {
		return mo.None[string]()
	}

	isDir, err := filesystem.API().IsDir(path)
	if err != nil || !isDir {
		log.Warnf("saved library path %q is no longer a directory", path)
		return mo.None[string]()
	}

	return mo.Some(path)
}

// Series lists the per-series directories directly under the library root,
// sorted lexicographically.
func Series(root string) ([]string, error) {
	entries, err := filesystem.API().ReadDir(root)
	if err != nil {
		return nil, err
	}

	var series []string
	for _, entry := range entries {
		if entry.IsDir() {
			series = append(series, entry.Name())
		}
	}

	slices.Sort(series)
	return series, nil
}

// Videos lists the filenames inside dir whose extension belongs to the
// configured video extension set.
func Videos(dir string) ([]string, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	extensions := viper.GetStringSlice(key.LibraryVideoExtensions)

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if lo.Contains(extensions, ext) {
			videos = append(videos, entry.Name())
		}
	}

	return videos, nil
}
