package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
		So(FileStem("archive.ass.xz"), ShouldEqual, "archive.ass")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]

		Convey("Pop on empty returns zero value", func() {
			So(s.Pop(), ShouldEqual, 0)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("Push/Pop are LIFO ordered", func() {
			s.Push(1)
			s.Push(2)
			s.Push(3)

			So(s.Len(), ShouldEqual, 3)
			So(s.Peek(), ShouldEqual, 3)
			So(s.Pop(), ShouldEqual, 3)
			So(s.Pop(), ShouldEqual, 2)
			So(s.Len(), ShouldEqual, 1)
		})

		Convey("Clear empties the stack", func() {
			s.Push(42)
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
		})
	})
}
