// Package calendarmonth implements the Calendar & Week Partitioner
// (spec.md §4.1, component C1): it enumerates a month's days, classifies
// them as weekday/Saturday/Sunday, and splits them into weeks. It has
// no dependency beyond the standard library time package, the same
// style the teacher's holiday package uses for pure calendar arithmetic.
package calendarmonth

import (
	"fmt"
	"time"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// Build produces the CalendarMonth view for (year, month,
// saturdayIsSpecial) per spec.md §4.1.
func Build(year, month int, saturdayIsSpecial bool) (rostermodel.CalendarMonth, error) {
	if month < 1 || month > 12 {
		return rostermodel.CalendarMonth{}, fmt.Errorf("calendarmonth: invalid month %d", month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cm := rostermodel.CalendarMonth{
		Year:  year,
		Month: month,
	}

	for d := 1; d <= daysInMonth; d++ {
		cm.Days = append(cm.Days, d)
		weekday := first.AddDate(0, 0, d-1).Weekday()
		switch weekday {
		case time.Sunday:
			cm.Sundays = append(cm.Sundays, d)
		case time.Saturday:
			cm.Saturdays = append(cm.Saturdays, d)
		}
	}

	if saturdayIsSpecial {
		cm.SpecialSaturdays = append([]int(nil), cm.Saturdays...)
	}

	excluded := make(map[int]bool, len(cm.Sundays)+len(cm.SpecialSaturdays))
	for _, d := range cm.Sundays {
		excluded[d] = true
	}
	for _, d := range cm.SpecialSaturdays {
		excluded[d] = true
	}
	for _, d := range cm.Days {
		if !excluded[d] {
			cm.Weekdays = append(cm.Weekdays, d)
		}
	}

	cm.Weeks = partitionWeeks(cm.Days, first)

	// "day 0 of the month" is the day before the 1st (spec.md §4.1).
	dayZero := first.AddDate(0, 0, -1)
	cm.CrossMonthFirstWeek = dayZero.Weekday() != time.Sunday

	return cm, nil
}

// partitionWeeks splits days into maximal runs each terminated by a
// Saturday or the month's final day (spec.md §4.1).
func partitionWeeks(days []int, first time.Time) []rostermodel.Week {
	var weeks []rostermodel.Week
	var current []int
	for i, d := range days {
		current = append(current, d)
		weekday := first.AddDate(0, 0, d-1).Weekday()
		isLastDay := i == len(days)-1
		if weekday == time.Saturday || isLastDay {
			weeks = append(weeks, rostermodel.Week{Days: append([]int(nil), current...)})
			current = nil
		}
	}
	return weeks
}
