// Package anilist provides a client for the Anilist GraphQL API.
package anilist

// Anime is the subset of Anilist media metadata this tool consumes.
type Anime struct {
	// Title is the structured title metadata for the anime.
	Title struct {
		// Romaji is the romanized title of the anime.
		Romaji string `json:"romaji" jsonschema:"description=Romanized title of the anime."`
		// English is the english title of the anime.
		English string `json:"english" jsonschema:"description=English title of the anime."`
	} `json:"title"`
	// ID is the unique identifier for the anime on Anilist.
	ID int `json:"id" jsonschema:"description=ID of the anime on Anilist."`
	// SiteURL is the url of the anime on Anilist.
	SiteURL string `json:"siteUrl" jsonschema:"description=URL of the anime on Anilist."`
}

// Name returns the canonical search title of the anime. Fansub releases are
// indexed under romanized titles, so Romaji is preferred over English.
func (a *Anime) Name() string {
	if a.Title.Romaji == "" {
		return a.Title.English
	}

	return a.Title.Romaji
}
