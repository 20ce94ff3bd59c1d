package calendarmonth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/reha-shift/internal/calendarmonth"
)

func TestBuild_February28Days(t *testing.T) {
	cm, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)

	assert.Len(t, cm.Days, 28)
	assert.NotEmpty(t, cm.Sundays)
	assert.Empty(t, cm.SpecialSaturdays, "saturday_is_special=false yields no special Saturdays")
	assert.Equal(t, len(cm.Days), len(cm.Weekdays)+len(cm.Sundays))
}

func TestBuild_SaturdayIsSpecial(t *testing.T) {
	cm, err := calendarmonth.Build(2026, 2, true)
	require.NoError(t, err)

	assert.Equal(t, cm.Saturdays, cm.SpecialSaturdays)
	for _, d := range cm.SpecialSaturdays {
		assert.NotContains(t, cm.Weekdays, d)
	}
}

func TestBuild_WeeksTerminateOnSaturdayOrMonthEnd(t *testing.T) {
	cm, err := calendarmonth.Build(2026, 7, false)
	require.NoError(t, err)

	total := 0
	for i, w := range cm.Weeks {
		total += len(w.Days)
		last := w.Days[len(w.Days)-1]
		first := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		weekday := first.AddDate(0, 0, last-1).Weekday()
		isFinalWeek := i == len(cm.Weeks)-1
		assert.True(t, weekday == time.Saturday || isFinalWeek)
	}
	assert.Equal(t, len(cm.Days), total)
}

func TestBuild_CrossMonthFirstWeek(t *testing.T) {
	// 2026-07-01 is a Wednesday; day 0 (2026-06-30) is a Tuesday, not a
	// Sunday, so the first week carries over from June (spec.md §4.1).
	cm, err := calendarmonth.Build(2026, 7, false)
	require.NoError(t, err)
	assert.True(t, cm.CrossMonthFirstWeek)
}

func TestBuild_InvalidMonth(t *testing.T) {
	_, err := calendarmonth.Build(2026, 13, false)
	assert.Error(t, err)
}

func TestBuild_EveryMonthHasSundays(t *testing.T) {
	// Every month, even a 28-day February, contains at least four
	// Sundays, so the calendar never yields an empty Sundays set.
	cm, err := calendarmonth.Build(2026, 2, false)
	require.NoError(t, err)
	assert.NotEmpty(t, cm.Sundays)
}
