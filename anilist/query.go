// Package anilist provides a client for the Anilist GraphQL API.
package anilist

// searchQuery requests a page of anime matching a free-text search string.
// Only the title fields needed for torrent index searches are selected.
const searchQuery = `
query ($search: String) {
	Page (page: 1, perPage: 10) {
		media (search: $search, type: ANIME) {
			id
			siteUrl
			title {
				romaji
				english
			}
		}
	}
}`
