// Package prefs persists the user's display preferences in
// ~/.config/haru/prefs.toml. Loading is best-effort: a missing or broken
// file falls back to defaults so the app always starts.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds display preferences for the diary UI.
type Prefs struct {
	Theme     string `toml:"theme"`
	WeekStart string `toml:"week_start"` // "sunday" or "monday"
}

const (
	defaultPrefsPath = "~/.config/haru/prefs.toml"
	defaultTheme     = "spring"
	defaultWeekStart = "sunday"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, WeekStart: defaultWeekStart}
}

// FirstWeekday maps the WeekStart preference to a time.Weekday.
func (p Prefs) FirstWeekday() time.Weekday {
	if strings.EqualFold(p.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// Load reads preferences from path ("" means DefaultPath). Any failure
// degrades to defaults rather than blocking startup.
func Load(path string) Prefs {
	prefs := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return defaults()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	if strings.TrimSpace(prefs.WeekStart) == "" {
		prefs.WeekStart = defaultWeekStart
	}
	return prefs
}

// Save writes preferences to path ("" means DefaultPath), creating parent
// directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolving prefs path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("creating prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
