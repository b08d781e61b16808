package anitime

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDay(t *testing.T) {
	Convey("Day", t, func() {
		Convey("Should map every selector to its wire code", func() {
			expected := map[Day]int{
				Sunday: 0, Monday: 1, Tuesday: 2, Wednesday: 3, Thursday: 4,
				Friday: 5, Saturday: 6, Etc: 7, NewSeries: 8,
			}
			for d, code := range expected {
				So(d.Code(), ShouldEqual, code)
			}
			So(Days(), ShouldHaveLength, 9)
			So(NewSeries.String(), ShouldEqual, "New")
		})

		Convey("Should reject unknown values", func() {
			So(Day(0).Valid(), ShouldBeFalse)
			So(Day(42).Code(), ShouldEqual, -1)
			So(Day(42).String(), ShouldEqual, "Day(42)")
		})

		Convey("Should wrap when navigating", func() {
			So(NewSeries.Next(), ShouldEqual, Sunday)
			So(Sunday.Prev(), ShouldEqual, NewSeries)
			So(Saturday.Next(), ShouldEqual, Etc)
			So(Monday.Prev(), ShouldEqual, Sunday)
		})

		Convey("Should map weekdays of a time", func() {
			// 2019-10-13 was a Sunday.
			sunday := time.Date(2019, time.October, 13, 0, 0, 0, 0, time.UTC)
			So(DayOf(sunday), ShouldEqual, Sunday)
			So(DayOf(sunday.AddDate(0, 0, 6)), ShouldEqual, Saturday)
		})

		Convey("Should resolve codes", func() {
			d, ok := DayFromCode(8)
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, NewSeries)

			_, ok = DayFromCode(9)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestParseDay(t *testing.T) {
	Convey("ParseDay", t, func() {
		Convey("Should accept names, abbreviations, labels and codes", func() {
			for input, want := range map[string]Day{
				"monday": Monday,
				"Friday": Friday,
				"sat":    Saturday,
				"수":      Wednesday,
				"신작":     NewSeries,
				"7":      Etc,
				" 0 ":    Sunday,
			} {
				d, err := ParseDay(input)
				So(err, ShouldBeNil)
				So(d, ShouldEqual, want)
			}
		})

		Convey("Should suggest the closest day on a typo", func() {
			_, err := ParseDay("tuesdya")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "tuesday")
		})

		Convey("Should reject codes out of range", func() {
			_, err := ParseDay("9")
			So(err, ShouldNotBeNil)
		})
	})
}
