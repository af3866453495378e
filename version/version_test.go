package version

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseTag(t *testing.T) {
	Convey("parseTag", t, func() {
		Convey("Strips the v prefix", func() {
			So(lo.Must(parseTag("v1.2.3")), ShouldEqual, "1.2.3")
		})

		Convey("Leaves a bare version untouched", func() {
			So(lo.Must(parseTag("1.2.3")), ShouldEqual, "1.2.3")
		})

		Convey("Rejects an empty tag", func() {
			_, err := parseTag("")
			So(err, ShouldNotBeNil)
		})
	})
}
