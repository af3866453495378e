package tosho

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ulikunitz/xz"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchQuality, "1080p")
	viper.Set(key.SearchSubtitleLabel, "English subs [eng, ASS]")
}

const searchPage = `<html><body>
<div class="home_list_entry"><div class="link"><a href="/view/1">[GroupB] Show - 01</a></div></div>
<div class="home_list_entry"><div class="link"><a href="/view/2">[GroupA] Show - 01</a></div></div>
<div class="home_list_entry"><div class="link"><a href="/view/3">[GroupA] Show - 02</a></div></div>
<div class="home_list_entry"><div class="link"><a href="/view/4">Show Special</a></div></div>
</body></html>`

func fixedPage(page string) FetchFunc {
	return func(string) ([]byte, int, error) {
		return []byte(page), http.StatusOK, nil
	}
}

func TestSearchURL(t *testing.T) {
	Convey("searchURL", t, func() {
		client := NewWithBase("https://test.local", nil)

		Convey("Appends the configured quality tag", func() {
			So(client.searchURL("Show", false), ShouldEqual, "https://test.local/search?q=Show+1080p")
		})

		Convey("Requests the attachments view when asked", func() {
			So(client.searchURL("Show", true), ShouldStartWith, "https://test.local/search?disp=attachments&q=")
		})
	})
}

func TestReleaseGroups(t *testing.T) {
	Convey("ReleaseGroups", t, func() {
		Convey("Collects bracketed group tags, deduplicated and sorted", func() {
			client := NewWithBase("https://test.local", fixedPage(searchPage))

			groups, err := client.ReleaseGroups("Show")
			So(err, ShouldBeNil)
			So(groups, ShouldResemble, []string{"GroupA", "GroupB"})
		})

		Convey("A page without entries yields no groups", func() {
			client := NewWithBase("https://test.local", fixedPage("<html><body></body></html>"))

			groups, err := client.ReleaseGroups("Show")
			So(err, ShouldBeNil)
			So(groups, ShouldBeEmpty)
		})

		Convey("A network failure yields an empty result, not an error", func() {
			client := NewWithBase("https://test.local", func(string) ([]byte, int, error) {
				return nil, 0, errors.New("connection refused")
			})

			groups, err := client.ReleaseGroups("Show")
			So(err, ShouldBeNil)
			So(groups, ShouldBeEmpty)
		})

		Convey("A non-2xx status yields an empty result, not an error", func() {
			client := NewWithBase("https://test.local", func(string) ([]byte, int, error) {
				return []byte("blocked"), http.StatusForbidden, nil
			})

			groups, err := client.ReleaseGroups("Show")
			So(err, ShouldBeNil)
			So(groups, ShouldBeEmpty)
		})
	})
}

func TestGroupOf(t *testing.T) {
	Convey("groupOf", t, func() {
		Convey("Extracts the bracketed prefix", func() {
			group, ok := groupOf("[SubsPlease] Show - 01 (1080p)")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "SubsPlease")
		})

		Convey("Rejects names without a leading bracket", func() {
			_, ok := groupOf("Show - 01 [1080p]")
			So(ok, ShouldBeFalse)
		})

		Convey("Rejects an unterminated bracket", func() {
			_, ok := groupOf("[Show - 01")
			So(ok, ShouldBeFalse)
		})
	})
}

const attachmentsPage = `<html><body>
<div class="home_list_entry">
	<div class="link"><a href="/view/1">[Group] Show - 01 (1080p).mkv</a></div>
	<div class="links">
		<a href="/storage/attach/sub1.xz">English subs [eng, ASS]</a>
		<a href="/storage/attach/all1">All attachments</a>
	</div>
</div>
<div class="home_list_entry">
	<div class="link"><a href="/view/2">[Group] Show - 02 (1080p).mkv</a></div>
	<div class="links">
		<a href="/storage/attach/sub2.xz">English subs [eng, ASS]</a>
	</div>
</div>
</body></html>`

func xzCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := lo.Must(xz.NewWriter(&buf))
	lo.Must(w.Write(data))
	lo.Must0(w.Close())
	return buf.Bytes()
}

func TestFetchSubtitles(t *testing.T) {
	Convey("FetchSubtitles", t, func() {
		fs := filesystem.API()
		content := []byte("[Script Info]\nTitle: Show\n")
		archive := xzCompress(content)

		fetch := func(url string) ([]byte, int, error) {
			if strings.Contains(url, "/search") {
				return []byte(attachmentsPage), http.StatusOK, nil
			}
			if strings.HasSuffix(url, ".xz") {
				return archive, http.StatusOK, nil
			}
			return nil, http.StatusNotFound, nil
		}

		client := NewWithBase("https://test.local", fetch)

		Convey("Downloads and extracts every labeled archive", func() {
			dir := "/subs/ok"
			subtitles, err := client.FetchSubtitles("[Group] Show", dir)
			So(err, ShouldBeNil)
			So(subtitles, ShouldResemble, []string{
				dir + "/[Group] Show - 01 (1080p).ass",
				dir + "/[Group] Show - 02 (1080p).ass",
			})

			for _, path := range subtitles {
				So(lo.Must(fs.ReadFile(path)), ShouldResemble, content)
			}
		})

		Convey("Removes archives after extraction by default", func() {
			dir := "/subs/clean"
			_, err := client.FetchSubtitles("[Group] Show", dir)
			So(err, ShouldBeNil)
			So(lo.Must(fs.Exists(dir+"/[Group] Show - 01 (1080p).ass.xz")), ShouldBeFalse)
		})

		Convey("Keeps archives when configured to", func() {
			viper.Set(key.DownloadKeepArchives, true)
			defer viper.Set(key.DownloadKeepArchives, false)

			dir := "/subs/keep"
			_, err := client.FetchSubtitles("[Group] Show", dir)
			So(err, ShouldBeNil)
			So(lo.Must(fs.Exists(dir+"/[Group] Show - 01 (1080p).ass.xz")), ShouldBeTrue)
		})

		Convey("A page without matching labels yields no subtitles", func() {
			other := NewWithBase("https://test.local", fixedPage(searchPage))

			subtitles, err := other.FetchSubtitles("[Group] Show", "/subs/none")
			So(err, ShouldBeNil)
			So(subtitles, ShouldBeEmpty)
		})

		Convey("A failed download is skipped, the rest still extract", func() {
			failing := func(url string) ([]byte, int, error) {
				if strings.Contains(url, "/search") {
					return []byte(attachmentsPage), http.StatusOK, nil
				}
				if strings.HasSuffix(url, "sub1.xz") {
					return nil, http.StatusInternalServerError, nil
				}
				return archive, http.StatusOK, nil
			}

			dir := "/subs/partial"
			subtitles, err := NewWithBase("https://test.local", failing).FetchSubtitles("[Group] Show", dir)
			So(err, ShouldBeNil)
			So(subtitles, ShouldResemble, []string{dir + "/[Group] Show - 02 (1080p).ass"})
		})

		Convey("A corrupt archive is skipped", func() {
			corrupt := func(url string) ([]byte, int, error) {
				if strings.Contains(url, "/search") {
					return []byte(attachmentsPage), http.StatusOK, nil
				}
				return []byte("not an xz stream"), http.StatusOK, nil
			}

			subtitles, err := NewWithBase("https://test.local", corrupt).FetchSubtitles("[Group] Show", "/subs/corrupt")
			So(err, ShouldBeNil)
			So(subtitles, ShouldBeEmpty)
		})
	})
}
