package config

import (
	"testing"

	"github.com/cadence-dl/cadence/filesystem"
	"github.com/cadence-dl/cadence/key"
	"github.com/spf13/viper"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()

		Convey("Should apply factory defaults", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.CatalogRegion), ShouldEqual, "US")
			So(viper.GetBool(key.TokenCacheEnable), ShouldBeTrue)
			So(viper.GetString(key.MP4BoxPath), ShouldEqual, "mp4box")
		})

		Convey("Every registered field is env-exposed", func() {
			So(Setup(), ShouldBeNil)
			So(len(EnvExposed), ShouldEqual, len(Default))
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field.Env", t, func() {
		f := Default[key.CatalogRegion]
		So(f.Env(), ShouldEqual, "CADENCE_CATALOG_REGION")
	})
}
