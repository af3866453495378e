// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/network"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// apiURL is the Anilist GraphQL endpoint.
const apiURL = "https://graphql.anilist.co"

// searchResponse defines the anticipated JSON response structure for anime searches.
type searchResponse struct {
	Data struct {
		Page struct {
			Media []*Anime `json:"media"`
		} `json:"Page"`
	} `json:"data"`
}

// Search returns the anime candidates matching the given free-text term.
// Network and HTTP-status failures are logged and reported as errors; the
// caller treats them as an absent result.
func Search(term string) ([]*Anime, error) {
	log.Infof("searching anilist for %q", term)

	body := map[string]any{
		"query": searchQuery,
		"variables": map[string]any{
			"search": term,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("anilist returned status code " + strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error(err)
		return nil, err
	}

	log.Infof("got %d results from anilist", len(response.Data.Page.Media))
	return response.Data.Page.Media, nil
}

// ResolveTitle returns the canonical (romaji-preferred) title best matching
// the given search term, or None when the lookup fails or yields nothing.
// Results are cached; among multiple candidates the one closest to the term
// by edit distance wins.
func ResolveTitle(term string) mo.Option[string] {
	if cached := titleCacher.Get(term); cached.IsPresent() {
		return cached
	}

	animes, err := Search(term)
	if err != nil || len(animes) == 0 {
		return mo.None[string]()
	}

	best := lo.MinBy(animes, func(a *Anime, b *Anime) bool {
		return distance(term, a.Name()) < distance(term, b.Name())
	})

	title := best.Name()
	if title == "" {
		return mo.None[string]()
	}

	_ = titleCacher.Set(term, title)
	return mo.Some(title)
}

// distance is a case-insensitive Levenshtein distance between a search term
// and a candidate title.
func distance(term, title string) int {
	return levenshtein.Distance(strings.ToLower(term), strings.ToLower(title))
}
