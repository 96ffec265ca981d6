package models

// Prompt is a recurring reflective question. Prompts are never deleted;
// Archived hides them from the default listing.
type Prompt struct {
	ID       int64  `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Body     string `db:"body" json:"body"`
	Archived bool   `db:"archived" json:"archived"`
}
