package anitime

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAnimeWireFormat(t *testing.T) {
	Convey("Anime", t, func() {
		Convey("Should encode back to the wire keys", func() {
			var animes []Anime
			So(json.Unmarshal([]byte(listFixture), &animes), ShouldBeNil)

			data, err := json.Marshal(animes[0])
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			So(raw["sd"], ShouldEqual, "20191013")
			So(raw["ed"], ShouldEqual, NoDate)
			So(raw["i"], ShouldEqual, float64(4469))
		})

		Convey("Airtime", func() {
			So(Anime{Time: "2330"}.Airtime(), ShouldEqual, "23:30")
			So(Anime{Time: "25"}.Airtime(), ShouldEqual, "25")
			So(Anime{}.Airtime(), ShouldEqual, "")
		})
	})

	Convey("Caption", t, func() {
		Convey("Should encode the timestamp compactly", func() {
			var captions []Caption
			So(json.Unmarshal([]byte(capFixture), &captions), ShouldBeNil)

			data, err := json.Marshal(captions[0])
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"d":"20200101120000"`)
		})
	})
}
