package anilist

import (
	"encoding/json"
	"testing"

	"github.com/Sac-94/AniSubDl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestName(t *testing.T) {
	Convey("Anime Name", t, func() {
		var anime Anime

		Convey("Prefers the romaji title", func() {
			anime.Title.Romaji = "Shingeki no Kyojin"
			anime.Title.English = "Attack on Titan"
			So(anime.Name(), ShouldEqual, "Shingeki no Kyojin")
		})

		Convey("Falls back to the english title", func() {
			anime.Title.Romaji = ""
			anime.Title.English = "Attack on Titan"
			So(anime.Name(), ShouldEqual, "Attack on Titan")
		})
	})
}

func TestSearchResponseDecoding(t *testing.T) {
	Convey("Search response decoding", t, func() {
		payload := `{
			"data": {
				"Page": {
					"media": [
						{
							"id": 16498,
							"siteUrl": "https://anilist.co/anime/16498",
							"title": {"romaji": "Shingeki no Kyojin", "english": "Attack on Titan"}
						}
					]
				}
			}
		}`

		var response searchResponse
		So(json.Unmarshal([]byte(payload), &response), ShouldBeNil)

		media := response.Data.Page.Media
		So(media, ShouldHaveLength, 1)
		So(media[0].ID, ShouldEqual, 16498)
		So(media[0].Name(), ShouldEqual, "Shingeki no Kyojin")
	})
}

func TestDistance(t *testing.T) {
	Convey("distance", t, func() {
		Convey("Is case-insensitive", func() {
			So(distance("naruto", "NARUTO"), ShouldEqual, 0)
		})

		Convey("Ranks closer titles lower", func() {
			So(distance("naruto", "naruto shippuuden"), ShouldBeLessThan, distance("naruto", "bleach"))
		})
	})
}

func TestTitleCache(t *testing.T) {
	Convey("Title cache", t, func() {
		Convey("Returns cached resolutions without querying the API", func() {
			So(titleCacher.Set("attack on titan", "Shingeki no Kyojin"), ShouldBeNil)
			So(ResolveTitle("attack on titan").MustGet(), ShouldEqual, "Shingeki no Kyojin")
		})

		Convey("Misses on unknown terms", func() {
			So(titleCacher.Get("never seen").IsAbsent(), ShouldBeTrue)
		})
	})
}
