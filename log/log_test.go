package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/filesystem"
	"github.com/vpcalc/vpcalc/key"
	"github.com/vpcalc/vpcalc/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("No log file is created", func() {
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldBeEmpty)
		})

		Convey("Entries are discarded", func() {
			var buf bytes.Buffer
			logrus.SetOutput(&buf)
			Warn("dropped")
			WithFields(logrus.Fields{"token": "+"}).Warn("dropped")
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		So(Setup(), ShouldBeNil)

		Convey("A daily file is opened", func() {
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldHaveLength, 1)
		})

		Convey("The configured level is applied", func() {
			So(logger.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Entries reach the writer as JSON", func() {
			var buf bytes.Buffer
			configure(&buf)
			WithFields(logrus.Fields{"token": "/"}).Warn("division by zero")
			So(buf.String(), ShouldContainSubstring, `"token":"/"`)
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			logger = discard()
		})
	})
}
