package library

import (
	"os"
	"testing"

	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.LibraryVideoExtensions, []string{".mkv", ".mp4", ".avi", ".mov", ".webm"})
}

func TestSavedPath(t *testing.T) {
	Convey("Given a library root on disk", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/anime", os.ModePerm), ShouldBeNil)

		Convey("SavePath/LoadPath round-trips", func() {
			So(SavePath("/anime"), ShouldBeNil)
			So(LoadPath().MustGet(), ShouldEqual, "/anime")
		})

		Convey("LoadPath discards a path that is no longer a directory", func() {
			So(SavePath("/anime/gone"), ShouldBeNil)
			So(LoadPath().IsAbsent(), ShouldBeTrue)
		})

		Convey("LoadPath is absent when nothing was saved", func() {
			So(SavePath(""), ShouldBeNil)
			So(LoadPath().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSeries(t *testing.T) {
	Convey("Given a library with series directories", t, func() {
		fs := filesystem.API()
		root := "/library"
		So(fs.MkdirAll(root+"/Naruto", os.ModePerm), ShouldBeNil)
		So(fs.MkdirAll(root+"/Bleach", os.ModePerm), ShouldBeNil)
		So(fs.WriteFile(root+"/notes.txt", []byte("x"), 0644), ShouldBeNil)

		Convey("Series returns only directories, sorted", func() {
			series, err := Series(root)
			So(err, ShouldBeNil)
			So(series, ShouldResemble, []string{"Bleach", "Naruto"})
		})

		Convey("Series fails on a missing root", func() {
			_, err := Series("/nowhere")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestVideos(t *testing.T) {
	Convey("Given a series directory", t, func() {
		fs := filesystem.API()
		dir := "/library/Naruto"
		So(fs.MkdirAll(dir, os.ModePerm), ShouldBeNil)
		So(fs.WriteFile(dir+"/Naruto - 01.mkv", []byte("v"), 0644), ShouldBeNil)
		So(fs.WriteFile(dir+"/Naruto - 02.MP4", []byte("v"), 0644), ShouldBeNil)
		So(fs.WriteFile(dir+"/Naruto - 01.ass", []byte("s"), 0644), ShouldBeNil)
		So(fs.WriteFile(dir+"/cover.jpg", []byte("i"), 0644), ShouldBeNil)

		Convey("Videos filters by configured extensions, case-insensitively", func() {
			videos, err := Videos(dir)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos, ShouldContain, "Naruto - 01.mkv")
			So(videos, ShouldContain, "Naruto - 02.MP4")
		})
	})
}
