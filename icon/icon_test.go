package icon

import (
	"testing"

	"github.com/anitable/anitable/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		all := []Icon{Fail, Success, Progress, Calendar, Caption, Link, Airing, Ended}

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("It renders empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Get(Fail), ShouldBeEmpty)
		})

		Convey("An unregistered icon renders empty", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}
