package domain

import "time"

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteSummary is the trimmed shape used where the full body is not needed.
type NoteSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoteStats aggregates a user's notes activity. LatestNote is nil when the
// user has no notes yet.
type NoteStats struct {
	TotalNotes  int64        `json:"totalNotes"`
	RecentNotes int64        `json:"recentNotes"`
	LatestNote  *NoteSummary `json:"latestNote"`
}

// Pagination describes a page of a user's notes, newest first.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalNotes  int64 `json:"totalNotes"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}
