package util

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vpcalc/vpcalc/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "value", "values"), ShouldEqual, "1 value")
		So(Quantify(0, "value", "values"), ShouldEqual, "0 values")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("session file"), ShouldEqual, "Session file")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file and a directory", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("a/b/file.json", []byte("[]"), 0644), ShouldBeNil)

		Convey("Deleting the file leaves the directory", func() {
			So(Delete("a/b/file.json"), ShouldBeNil)
			So(lo.Must(fs.Exists("a/b/file.json")), ShouldBeFalse)
			So(lo.Must(fs.DirExists("a/b")), ShouldBeTrue)
		})

		Convey("Deleting the directory removes the tree", func() {
			So(Delete("a"), ShouldBeNil)
			So(lo.Must(fs.DirExists("a")), ShouldBeFalse)
		})

		Convey("Deleting a missing path is not an error", func() {
			So(Delete("missing"), ShouldBeNil)
		})
	})
}
