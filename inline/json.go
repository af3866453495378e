// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/Sac-94/AniSubDl/library"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// RenameRecord documents a single applied subtitle rename.
type RenameRecord struct {
	// From is the extracted subtitle filename before renaming.
	From string `json:"from"`
	// To is the filename after matching against the local video files.
	To string `json:"to"`
}

// Output is the machine-readable summary of a grab run.
type Output struct {
	// Series is the requested series name.
	Series string `json:"series"`
	// Group is the requested release group.
	Group string `json:"group"`
	// SearchTerm is the final term sent to the torrent index.
	SearchTerm string `json:"search_term"`
	// Directory is the resolved output directory.
	Directory string `json:"directory"`
	// Subtitles holds the paths of successfully extracted subtitle files.
	Subtitles []string `json:"subtitles"`
	// Renames holds the applied rename mapping, when requested.
	Renames []RenameRecord `json:"renames,omitempty"`
}

func writeJson(out io.Writer, options *Options, term, dir string, subtitles []string, renames []library.Rename) error {
	encoder := json.NewEncoder(out)
	return encoder.Encode(&Output{
		Series:     options.Series,
		Group:      options.Group,
		SearchTerm: term,
		Directory:  dir,
		Subtitles:  subtitles,
		Renames: lo.Map(renames, func(r library.Rename, _ int) RenameRecord {
			return RenameRecord{From: filepath.Base(r.From), To: filepath.Base(r.To)}
		}),
	})
}

// WriteJsonSchema emits the JSON schema of the grab output document.
func WriteJsonSchema(out io.Writer) error {
	schema := jsonschema.Reflect(&Output{})

	contents, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}

	_, err = out.Write(append(contents, '\n'))
	return err
}
