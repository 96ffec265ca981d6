package models

// Reminder is a short static quote shown beside the journal.
type Reminder struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Body  string `db:"body" json:"body"`
}
