package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuestionFor_SameDayAcrossYears(t *testing.T) {
	q := QuestionFor("2024-05-05")
	require.NotEmpty(t, q)
	require.Equal(t, q, QuestionFor("2031-05-05"))
}

func TestQuestionFor_MalformedKey(t *testing.T) {
	require.Empty(t, QuestionFor(""))
	require.Empty(t, QuestionFor("2024-5-5"))
	require.Empty(t, QuestionFor("not a key"))
}

func TestQuestionFor_CoversEveryDayOfTheYear(t *testing.T) {
	// 2024 is a leap year, so this walks all 366 month/day pairs.
	for d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		require.NotEmpty(t, QuestionFor(key), "no question for %s", key)
	}
}
