package config

import (
	"os"
	"testing"

	"github.com/anitable/anitable/anitime"
	"github.com/anitable/anitable/filesystem"
	"github.com/anitable/anitable/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate defaults", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ClientBaseURL), ShouldEqual, anitime.DefaultBaseURL)
			So(viper.GetBool(key.TUIExitOnError), ShouldBeFalse)
			So(viper.GetInt(key.ClientTimeout), ShouldEqual, 0)
		})

		Convey("Should let the environment override the base URL", func() {
			So(os.Setenv("ANITABLE_CLIENT_BASE_URL", "http://127.0.0.1:9999"), ShouldBeNil)
			defer os.Unsetenv("ANITABLE_CLIENT_BASE_URL")

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ClientBaseURL), ShouldEqual, "http://127.0.0.1:9999")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("client.base_url"), ShouldEqual, "client_base_url")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.ClientBaseURL]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "ANITABLE_CLIENT_BASE_URL")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ClientBaseURL)
		})

		Convey("MarshalJSON should report the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"string"`)
		})
	})
}
