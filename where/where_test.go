package where

import (
	"os"
	"strings"
	"testing"

	"github.com/cadence-dl/cadence/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWhere(t *testing.T) {
	Convey("Path resolution", t, func() {
		filesystem.SetMemMapFs()

		Convey("Config honors the override variable", func() {
			So(os.Setenv(EnvConfigPath, "/custom/cfg"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)
			So(Config(), ShouldEqual, "/custom/cfg")
		})

		Convey("Tokens lives inside the cache directory", func() {
			So(Tokens(), ShouldStartWith, Cache())
			So(strings.HasSuffix(Tokens(), "tokens.json"), ShouldBeTrue)
		})

		Convey("Logs lives inside the config directory", func() {
			So(Logs(), ShouldStartWith, Config())
		})
	})
}
