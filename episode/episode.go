// Package episode implements episode-number recognition for release and video filenames.
//
// The grammar is an ordered alternation of delimiter patterns: an explicit
// "S<season>E" marker, the word "episode", the abbreviation "ep", or a bare
// separator character, each followed by one to three digits. The captured
// number is normalized to a two-digit, zero-padded string.
package episode

import (
	"regexp"

	"github.com/samber/mo"
)

// pattern encodes the recognition grammar. Alternatives are ordered by
// specificity so that "S01E05" resolves through the season marker rather
// than the bare separator branch.
var pattern = regexp.MustCompile(`(?i)(?:s\d+e|\bepisode[\s._-]?|\bep[\s._-]?|[\s._-])(\d{1,3})\b`)

// Extract returns the zero-padded episode number recognized in filename,
// or None when no alternative of the grammar matches.
func Extract(filename string) mo.Option[string] {
	match := pattern.FindStringSubmatch(filename)
	if match == nil {
		return mo.None[string]()
	}

	return mo.Some(pad(match[1]))
}

// pad left-pads a captured number to two digits. Three-digit captures are
// returned unchanged.
func pad(num string) string {
	if len(num) < 2 {
		return "0" + num
	}
	return num
}
