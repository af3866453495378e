package wizard

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/library"
	"github.com/Sac-94/AniSubDl/tosho"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ulikunitz/xz"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchQuality, "1080p")
	viper.Set(key.SearchSubtitleLabel, "English subs [eng, ASS]")
	viper.Set(key.LibraryVideoExtensions, []string{".mkv", ".mp4"})
	viper.Set(key.MetadataFetchAnilist, false)
}

// scriptPrompt replays canned answers instead of prompting the terminal.
type scriptPrompt struct {
	selects  []string
	confirms []bool
	inputs   []string
}

func (p *scriptPrompt) Select(_ string, options []string) (string, error) {
	if len(p.selects) == 0 {
		return "", errors.New("unexpected select prompt")
	}

	answer := p.selects[0]
	p.selects = p.selects[1:]

	if !lo.Contains(options, answer) {
		return "", errors.New("scripted answer not among options: " + answer)
	}

	return answer, nil
}

func (p *scriptPrompt) Confirm(string, bool) (bool, error) {
	if len(p.confirms) == 0 {
		return false, errors.New("unexpected confirm prompt")
	}

	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptPrompt) Input(string, []string) (string, error) {
	if len(p.inputs) == 0 {
		return "", errors.New("unexpected input prompt")
	}

	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

const groupsPage = `<html><body>
<div class="home_list_entry"><div class="link"><a href="/view/1">[GroupA] Naruto - 01 (1080p).mkv</a></div></div>
<div class="home_list_entry"><div class="link"><a href="/view/2">[GroupB] Naruto - 01 (1080p).mkv</a></div></div>
</body></html>`

const attachmentsPage = `<html><body>
<div class="home_list_entry">
	<div class="link"><a href="/view/1">[GroupA] Naruto - 01 (1080p).mkv</a></div>
	<div class="links"><a href="/storage/attach/sub1.xz">English subs [eng, ASS]</a></div>
</div>
</body></html>`

func stubIndex(subtitle []byte) *tosho.Client {
	var archive bytes.Buffer
	w := lo.Must(xz.NewWriter(&archive))
	lo.Must(w.Write(subtitle))
	lo.Must0(w.Close())

	return tosho.NewWithBase("https://test.local", func(url string) ([]byte, int, error) {
		switch {
		// Only GroupA carries labeled subtitle attachments.
		case strings.Contains(url, "disp=attachments") && strings.Contains(url, "GroupA"):
			return []byte(attachmentsPage), http.StatusOK, nil
		case strings.Contains(url, "disp=attachments"):
			return []byte("<html><body></body></html>"), http.StatusOK, nil
		case strings.Contains(url, "/search"):
			return []byte(groupsPage), http.StatusOK, nil
		case strings.HasSuffix(url, ".xz"):
			return archive.Bytes(), http.StatusOK, nil
		default:
			return nil, http.StatusNotFound, nil
		}
	})
}

func TestRun(t *testing.T) {
	Convey("Given a library and a stubbed torrent index", t, func() {
		fs := filesystem.API()
		content := []byte("[Script Info]\nTitle: Naruto\n")

		Convey("A full accepted run downloads, extracts and renames", func() {
			root := "/library-accept"
			So(fs.MkdirAll(root+"/Naruto", os.ModePerm), ShouldBeNil)
			So(fs.WriteFile(root+"/Naruto/Naruto - 01.mkv", []byte("v"), 0644), ShouldBeNil)

			err := Run(&Options{
				LibraryRoot: root,
				Prompter:    &scriptPrompt{selects: []string{"Naruto", "GroupA"}, confirms: []bool{true}},
				Index:       stubIndex(content),
			})
			So(err, ShouldBeNil)

			So(lo.Must(fs.ReadFile(root+"/Naruto/Naruto - 01.ass")), ShouldResemble, content)
			So(lo.Must(fs.Exists(root+"/Naruto/[GroupA] Naruto - 01 (1080p).ass")), ShouldBeFalse)

			// The library root is persisted for the next run.
			So(library.LoadPath().MustGet(), ShouldEqual, root)
		})

		Convey("A declined rename leaves the extracted names untouched", func() {
			root := "/library-decline"
			So(fs.MkdirAll(root+"/Naruto", os.ModePerm), ShouldBeNil)
			So(fs.WriteFile(root+"/Naruto/Naruto - 01.mkv", []byte("v"), 0644), ShouldBeNil)

			err := Run(&Options{
				LibraryRoot: root,
				Prompter:    &scriptPrompt{selects: []string{"Naruto", "GroupA"}, confirms: []bool{false}},
				Index:       stubIndex(content),
			})
			So(err, ShouldBeNil)

			So(lo.Must(fs.Exists(root+"/Naruto/[GroupA] Naruto - 01 (1080p).ass")), ShouldBeTrue)
			So(lo.Must(fs.Exists(root+"/Naruto/Naruto - 01.ass")), ShouldBeFalse)
		})

		Convey("A group without subtitles offers a retry with the remaining groups", func() {
			root := "/library-retry"
			So(fs.MkdirAll(root+"/Naruto", os.ModePerm), ShouldBeNil)
			So(fs.WriteFile(root+"/Naruto/Naruto - 01.mkv", []byte("v"), 0644), ShouldBeNil)

			// GroupB has no labeled attachments, so the first fetch comes
			// up empty; the scripted retry picks GroupA instead.
			err := Run(&Options{
				LibraryRoot: root,
				Prompter: &scriptPrompt{
					selects:  []string{"Naruto", "GroupB", "GroupA"},
					confirms: []bool{true, true},
				},
				Index: stubIndex(content),
			})
			So(err, ShouldBeNil)

			So(lo.Must(fs.Exists(root+"/Naruto/Naruto - 01.ass")), ShouldBeTrue)
		})

		Convey("An invalid library root fails the run", func() {
			err := Run(&Options{
				LibraryRoot: "/does-not-exist",
				Prompter:    &scriptPrompt{},
				Index:       stubIndex(content),
			})
			So(err, ShouldNotBeNil)
		})

		Convey("An empty library exits cleanly", func() {
			root := "/library-empty"
			So(fs.MkdirAll(root, os.ModePerm), ShouldBeNil)

			err := Run(&Options{
				LibraryRoot: root,
				Prompter:    &scriptPrompt{},
				Index:       stubIndex(content),
			})
			So(err, ShouldBeNil)
		})
	})
}
