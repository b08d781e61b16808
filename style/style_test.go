package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Render helpers", t, func() {
		Convey("Should keep the text", func() {
			So(Fg(Green)("airing"), ShouldContainSubstring, "airing")
			So(Bold("bold"), ShouldContainSubstring, "bold")
			So(Title("Schedule"), ShouldContainSubstring, "Schedule")
			So(Tag(Base, Sky)("월"), ShouldContainSubstring, "월")
		})

		Convey("Truncate should cap the width", func() {
			So(lipgloss.Width(Truncate(5)("0123456789")), ShouldBeLessThanOrEqualTo, 5)
		})
	})
}
