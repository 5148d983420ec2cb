package diary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	snapshot := []Entry{
		{ID: "a", DateKey: "2024-05-05", Content: "first"},
		{ID: "b", DateKey: "2024-05-06", Content: "other day"},
		{ID: "c", DateKey: "2024-05-05", Content: "second"},
	}

	grouped := GroupByDate(snapshot)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["2024-05-05"], 2)
	// insertion order within a date is preserved
	require.Equal(t, "a", grouped["2024-05-05"][0].ID)
	require.Equal(t, "c", grouped["2024-05-05"][1].ID)
}

func TestGroupByDate_Empty(t *testing.T) {
	require.Empty(t, GroupByDate(nil))
}
