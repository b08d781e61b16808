package anitime

import (
	"time"

	"github.com/samber/mo"
)

const (
	dateLayout      = "20060102"
	timestampLayout = "20060102150405"

	// NoDate is the wire sentinel for an absent date.
	NoDate = "00000000"
)

// DecodeOptionalDate parses a YYYYMMDD string.
// The NoDate sentinel and anything unparsable decode to None.
func DecodeOptionalDate(s string) mo.Option[time.Time] {
	if s == NoDate {
		return mo.None[time.Time]()
	}

	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return mo.None[time.Time]()
	}

	return mo.Some(t)
}

// EncodeOptionalDate formats a date as YYYYMMDD, or NoDate when absent.
func EncodeOptionalDate(d mo.Option[time.Time]) string {
	t, ok := d.Get()
	if !ok {
		return NoDate
	}
	return t.Format(dateLayout)
}

// DecodeTimestamp parses a YYYYMMDDHHMMSS string as UTC.
// Unlike optional dates, malformed input is an error.
func DecodeTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &DecodeError{Op: "timestamp", Input: s, Err: err}
	}
	return t, nil
}

// EncodeTimestamp formats t as YYYYMMDDHHMMSS in UTC.
func EncodeTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
