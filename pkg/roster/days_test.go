package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDays_Week(t *testing.T) {
	days := GenerateDays("2024-01-01", "2024-01-07")
	require.Len(t, days, 7)

	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Equal(t, "Mon", days[0].DayName)
	assert.Equal(t, "2024-01-07", days[6].Date)
	assert.Equal(t, "Sun", days[6].DayName)
}

func TestGenerateDays_SingleDay(t *testing.T) {
	days := GenerateDays("2024-01-01", "2024-01-01")
	require.Len(t, days, 1)
	assert.Equal(t, "2024-01-01", days[0].Date)
}

func TestGenerateDays_BusyFlagsFridaySaturday(t *testing.T) {
	days := GenerateDays("2024-01-01", "2024-01-07")
	require.Len(t, days, 7)

	busy := map[string]bool{}
	for _, d := range days {
		busy[d.DayName] = d.IsBusy
	}
	assert.True(t, busy["Fri"])
	assert.True(t, busy["Sat"])
	assert.False(t, busy["Sun"])
	assert.False(t, busy["Mon"])
	assert.False(t, busy["Thu"])
}

func TestGenerateDays_InvertedRangeIsEmpty(t *testing.T) {
	assert.Empty(t, GenerateDays("2024-01-10", "2024-01-01"))
}

func TestGenerateDays_InvalidDatesAreEmpty(t *testing.T) {
	assert.Empty(t, GenerateDays("not-a-date", "2024-01-01"))
	assert.Empty(t, GenerateDays("2024-01-01", "also-bad"))
	assert.Empty(t, GenerateDays("", ""))
}

func TestGenerateDays_CappedAt365(t *testing.T) {
	days := GenerateDays("2024-01-01", "2026-06-01")
	require.Len(t, days, MaxDays)

	assert.Equal(t, "2024-01-01", days[0].Date)
	// 2024 is a leap year: day 365 lands on Dec 30.
	assert.Equal(t, "2024-12-30", days[len(days)-1].Date)
}
