package inline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/anitable/anitable/anitime"
)

// Anime is the JSON form of a schedule entry.
type Anime struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	Genre   string `json:"genre"`
	// Airtime is HH:MM.
	Airtime string `json:"airtime"`
	Link    string `json:"link"`
	Alive   bool   `json:"alive"`
	// StartDate and EndDate are YYYY-MM-DD and omitted when unknown.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ScheduleOutput is printed by `list --json`.
type ScheduleOutput struct {
	Day    string   `json:"day"`
	Code   int      `json:"code"`
	Search string   `json:"search,omitempty"`
	Result []*Anime `json:"result"`
}

// Caption is the JSON form of a subtitle release.
type Caption struct {
	Episode   string    `json:"episode"`
	Author    string    `json:"author"`
	UpdatedAt time.Time `json:"updatedAt"`
	Link      string    `json:"link"`
}

// CaptionsOutput is printed by `cap --json`.
type CaptionsOutput struct {
	AnimeID int        `json:"animeId"`
	Result  []*Caption `json:"result"`
}

const isoDate = "2006-01-02"

func toAnime(a anitime.Anime) *Anime {
	out := &Anime{
		ID:      a.ID,
		Subject: a.Subject,
		Genre:   a.Genre,
		Airtime: a.Airtime(),
		Link:    a.Link,
		Alive:   a.Alive,
	}
	if d, ok := a.StartDate.Get(); ok {
		out.StartDate = d.Format(isoDate)
	}
	if d, ok := a.EndDate.Get(); ok {
		out.EndDate = d.Format(isoDate)
	}
	return out
}

func toCaption(c anitime.Caption) *Caption {
	return &Caption{
		Episode:   c.Episode,
		Author:    c.Author,
		UpdatedAt: c.UpdatedAt,
		Link:      c.Link,
	}
}

func writeJson(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
