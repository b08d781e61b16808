package anitime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Day selects which schedule to fetch: a weekday, or one of the two special
// categories the service keeps apart from the weekly table.
type Day int

const (
	Sunday Day = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Etc
	NewSeries
)

type dayDef struct {
	code  int
	name  string
	short string
	label string
}

// dayTable is the wire mapping. Codes are fixed by the service and must not
// follow declaration order.
var dayTable = map[Day]dayDef{
	Sunday:    {code: 0, name: "Sunday", short: "sun", label: "일"},
	Monday:    {code: 1, name: "Monday", short: "mon", label: "월"},
	Tuesday:   {code: 2, name: "Tuesday", short: "tue", label: "화"},
	Wednesday: {code: 3, name: "Wednesday", short: "wed", label: "수"},
	Thursday:  {code: 4, name: "Thursday", short: "thu", label: "목"},
	Friday:    {code: 5, name: "Friday", short: "fri", label: "금"},
	Saturday:  {code: 6, name: "Saturday", short: "sat", label: "토"},
	Etc:       {code: 7, name: "Etc", short: "etc", label: "기타"},
	NewSeries: {code: 8, name: "New", short: "new", label: "신작"},
}

var tabOrder = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Etc, NewSeries}

// Days returns every selector in tab order.
func Days() []Day {
	return append([]Day(nil), tabOrder...)
}

// Valid reports whether d is one of the known selectors.
func (d Day) Valid() bool {
	_, ok := dayTable[d]
	return ok
}

// Code returns the value sent as the "w" request parameter.
func (d Day) Code() int {
	def, ok := dayTable[d]
	if !ok {
		return -1
	}
	return def.code
}

func (d Day) String() string {
	def, ok := dayTable[d]
	if !ok {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return def.name
}

// Label returns the short Korean tab title used by the service.
func (d Day) Label() string {
	return dayTable[d].label
}

func (d Day) index() int {
	return lo.IndexOf(tabOrder, d)
}

// Next returns the following selector, wrapping from NewSeries back to Sunday.
func (d Day) Next() Day {
	i := d.index()
	if i < 0 {
		return Sunday
	}
	return tabOrder[(i+1)%len(tabOrder)]
}

// Prev returns the preceding selector, wrapping from Sunday to NewSeries.
func (d Day) Prev() Day {
	i := d.index()
	if i < 0 {
		return Sunday
	}
	return tabOrder[(i-1+len(tabOrder))%len(tabOrder)]
}

// DayOf returns the weekday selector for t in its own location.
func DayOf(t time.Time) Day {
	for d, def := range dayTable {
		if def.code == int(t.Weekday()) {
			return d
		}
	}
	return Sunday
}

// DayFromCode maps a wire code back to its selector.
func DayFromCode(code int) (Day, bool) {
	for d, def := range dayTable {
		if def.code == code {
			return d, true
		}
	}
	return 0, false
}

// ParseDay accepts an English name, a three-letter abbreviation, the Korean
// label or the numeric wire code.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)

	if code, err := strconv.Atoi(s); err == nil {
		if d, ok := DayFromCode(code); ok {
			return d, nil
		}
		return 0, fmt.Errorf("day code %d out of range 0-8", code)
	}

	lower := strings.ToLower(s)
	for _, d := range tabOrder {
		def := dayTable[d]
		if lower == strings.ToLower(def.name) || lower == def.short || s == def.label {
			return d, nil
		}
	}

	closest := lo.MinBy(tabOrder, func(a, b Day) bool {
		return levenshtein.Distance(lower, strings.ToLower(a.String())) <
			levenshtein.Distance(lower, strings.ToLower(b.String()))
	})
	return 0, fmt.Errorf("unknown day %q, did you mean %s?", s, strings.ToLower(closest.String()))
}
