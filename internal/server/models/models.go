// Package models defines the server-side persistence models.
package models

import "time"

// User is a registered diary owner.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Entry is one stored diary answer. Title holds the YYYY-MM-DD date key;
// it is not unique per user, only ID is.
type Entry struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is a server-stored, single-use refresh token.
type RefreshToken struct {
	Token   string
	UserID  string
	Expires time.Time
}
