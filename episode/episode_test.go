package episode

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtract(t *testing.T) {
	Convey("Extract", t, func() {
		Convey("Recognizes season/episode markers", func() {
			So(Extract("Show.S01E05.mkv").MustGet(), ShouldEqual, "05")
			So(Extract("S01E23").MustGet(), ShouldEqual, "23")
		})

		Convey("Recognizes the word episode", func() {
			So(Extract("Episode 7").MustGet(), ShouldEqual, "07")
			So(Extract("My Show episode_12.mkv").MustGet(), ShouldEqual, "12")
		})

		Convey("Recognizes the ep abbreviation", func() {
			So(Extract("ep3").MustGet(), ShouldEqual, "03")
			So(Extract("Show ep.04.mkv").MustGet(), ShouldEqual, "04")
		})

		Convey("Recognizes separator-delimited numbers", func() {
			So(Extract("Show - 05").MustGet(), ShouldEqual, "05")
			So(Extract("[Group] Title - 01 (1080p).mkv").MustGet(), ShouldEqual, "01")
			So(Extract("Title_22.ass").MustGet(), ShouldEqual, "22")
		})

		Convey("Pads single digits to two", func() {
			So(Extract("Show - 5.mkv").MustGet(), ShouldEqual, "05")
		})

		Convey("Leaves three-digit numbers unchanged", func() {
			So(Extract("Show - 101.mkv").MustGet(), ShouldEqual, "101")
		})

		Convey("Returns None when nothing matches", func() {
			So(Extract("opening.mkv").IsAbsent(), ShouldBeTrue)
			So(Extract("extras").IsAbsent(), ShouldBeTrue)
		})

		Convey("Does not fire inside unrelated words", func() {
			// "Deep6" must not be read as "ep 6".
			So(Extract("Deep6.mkv").IsAbsent(), ShouldBeTrue)
		})
	})
}
