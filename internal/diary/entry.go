// Package diary defines the wire-level entry model shared by the client and
// the server API.
package diary

import "time"

// MaxContentRunes caps an answer's length. Enforced by the edit UI, not by
// storage.
const MaxContentRunes = 25

// Entry is one diary answer. DateKey is the YYYY-MM-DD grouping key and
// doubles as the entry's human-visible title, so it travels as "title" on
// the wire.
type Entry struct {
	ID        string    `json:"id"`
	DateKey   string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupByDate rebuilds the date-indexed view from a flat snapshot. Entries
// keep the order they arrive in; within one date that is insertion order,
// not necessarily chronological.
func GroupByDate(entries []Entry) map[string][]Entry {
	grouped := make(map[string][]Entry, len(entries))
	for _, e := range entries {
		grouped[e.DateKey] = append(grouped[e.DateKey], e)
	}
	return grouped
}
