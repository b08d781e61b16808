// Package anitime is a client for the Anissia broadcast-schedule service.
//
// The service answers form-encoded POST requests with JSON arrays whose keys
// are single letters and whose dates are fixed-width digit strings; this
// package maps both to plain Go values.
package anitime

import (
	"encoding/json"
	"time"

	"github.com/samber/mo"
)

// Anime is one entry of a day's broadcast table.
type Anime struct {
	ID      int
	Subject string
	Genre   string
	// Time is the broadcast time as HHMM.
	Time  string
	Link  string
	Alive bool

	StartDate mo.Option[time.Time]
	EndDate   mo.Option[time.Time]
}

type animeWire struct {
	Alive     bool   `json:"a"`
	EndDate   string `json:"ed"`
	Genre     string `json:"g"`
	ID        int    `json:"i"`
	Link      string `json:"l"`
	Subject   string `json:"s"`
	StartDate string `json:"sd"`
	Time      string `json:"t"`
}

// UnmarshalJSON decodes the service's list entry format.
func (a *Anime) UnmarshalJSON(data []byte) error {
	var w animeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*a = Anime{
		ID:        w.ID,
		Subject:   w.Subject,
		Genre:     w.Genre,
		Time:      w.Time,
		Link:      w.Link,
		Alive:     w.Alive,
		StartDate: DecodeOptionalDate(w.StartDate),
		EndDate:   DecodeOptionalDate(w.EndDate),
	}
	return nil
}

// MarshalJSON encodes a in the service's list entry format.
func (a Anime) MarshalJSON() ([]byte, error) {
	return json.Marshal(animeWire{
		Alive:     a.Alive,
		EndDate:   EncodeOptionalDate(a.EndDate),
		Genre:     a.Genre,
		ID:        a.ID,
		Link:      a.Link,
		Subject:   a.Subject,
		StartDate: EncodeOptionalDate(a.StartDate),
		Time:      a.Time,
	})
}

// Airtime renders Time as HH:MM. Values that are not four characters long
// are returned unchanged.
func (a Anime) Airtime() string {
	if len(a.Time) != 4 {
		return a.Time
	}
	return a.Time[:2] + ":" + a.Time[2:]
}

func (a Anime) String() string {
	return a.Subject
}
