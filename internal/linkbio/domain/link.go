package domain

import "time"

// Link is a single entry on a user's public page. It belongs exclusively
// to one user; every query over links is scoped by UserID.
type Link struct {
	ID        int64
	UserID    int64
	Title     string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
