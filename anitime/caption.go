package anitime

import (
	"encoding/json"
	"time"
)

// Caption describes one fan-subtitle release for an anime.
type Caption struct {
	Link      string
	UpdatedAt time.Time
	Author    string
	Episode   string
}

type captionWire struct {
	Link      string `json:"a"`
	UpdatedAt string `json:"d"`
	Author    string `json:"n"`
	Episode   string `json:"s"`
}

// UnmarshalJSON decodes the service's caption entry format. The update
// timestamp is mandatory.
func (c *Caption) UnmarshalJSON(data []byte) error {
	var w captionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	updated, err := DecodeTimestamp(w.UpdatedAt)
	if err != nil {
		return err
	}

	*c = Caption{
		Link:      w.Link,
		UpdatedAt: updated,
		Author:    w.Author,
		Episode:   w.Episode,
	}
	return nil
}

// MarshalJSON encodes c in the service's caption entry format.
func (c Caption) MarshalJSON() ([]byte, error) {
	return json.Marshal(captionWire{
		Link:      c.Link,
		UpdatedAt: EncodeTimestamp(c.UpdatedAt),
		Author:    c.Author,
		Episode:   c.Episode,
	})
}
