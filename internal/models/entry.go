package models

import "time"

// Entry is one answer to a prompt, timestamped in unix seconds.
type Entry struct {
	ID        int64  `db:"id" json:"id"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
	Text      string `db:"text" json:"text"`
	PromptRef int64  `db:"prompt_ref" json:"prompt_ref"`
}

// Time returns CreatedAt as a time in loc.
func (e Entry) Time(loc *time.Location) time.Time {
	return time.Unix(e.CreatedAt, 0).In(loc)
}
