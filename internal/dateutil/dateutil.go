// Package dateutil produces and manipulates the YYYY-MM-DD date keys that
// partition diary entries. The fixed, zero-padded layout is a wire contract:
// lexical ordering of keys matches chronological ordering, which is what the
// server's range filtering relies on.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical date key layout.
const Layout = "2006-01-02"

// Key formats t as a date key in t's location.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the date key for the current day in the local timezone.
func Today() string {
	return Key(time.Now())
}

// Parse converts a date key back into a time at midnight local time.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(Layout, key, time.Local)
}

// Valid reports whether key is a well-formed date key.
func Valid(key string) bool {
	t, err := Parse(key)
	return err == nil && Key(t) == key
}

// MonthRange returns the inclusive key range covering the given month,
// [YYYY-MM-01, YYYY-MM-31]. The upper bound is a fixed "-31" regardless of
// the month's real length: this is a string-range trick, not calendar math.
// No stored key can exceed the month's actual last day, so the loose bound
// filters exactly the right set under lexical comparison.
func MonthRange(year int, month time.Month) (from, to string) {
	from = fmt.Sprintf("%04d-%02d-01", year, int(month))
	to = fmt.Sprintf("%04d-%02d-31", year, int(month))
	return from, to
}

// Shift returns the key days away from key (negative values go back).
func Shift(key string, days int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return Key(t.AddDate(0, 0, days)), nil
}
