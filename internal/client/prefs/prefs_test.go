package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	require.Equal(t, defaultTheme, p.Theme)
	require.Equal(t, defaultWeekStart, p.WeekStart)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "prefs.toml")
	require.NoError(t, os.WriteFile(file, []byte("theme = \"ink\"\nweek_start = \"monday\"\n"), 0o644))

	p := Load(file)
	require.Equal(t, "ink", p.Theme)
	require.Equal(t, time.Monday, p.FirstWeekday())
}

func TestLoad_InvalidTOMLFallsBackToDefaults(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "prefs.toml")
	require.NoError(t, os.WriteFile(file, []byte("week_start {{{\n"), 0o644))

	p := Load(file)
	require.Equal(t, defaults(), p)
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	require.NoError(t, Save(file, Prefs{Theme: "ink", WeekStart: "monday"}))

	p := Load(file)
	require.Equal(t, "ink", p.Theme)
	require.Equal(t, "monday", p.WeekStart)
}

func TestFirstWeekday_DefaultsToSunday(t *testing.T) {
	require.Equal(t, time.Sunday, Prefs{WeekStart: "whenever"}.FirstWeekday())
}
