package improve

import (
	"math"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// moveIsSafe implements spec.md §4.5's move_is_safe predicate against
// a trial assignment that already reflects the tentative swap.
func (im *Improver) moveIsSafe(trial rostermodel.Assignment, staffIdx, widx int, week rostermodel.Week, dMax, dMin int) bool {
	s := im.staff[staffIdx]
	if s.IsPartTime() {
		return false
	}
	if s.IsManager && !im.anyOtherManagerWorks(trial, staffIdx, dMax) {
		return false
	}
	if s.RoleTag == rostermodel.RoleTagRecoveryWardPT && !im.anyOtherWithTagWorks(trial, staffIdx, dMax, rostermodel.RoleTagRecoveryWardPT) {
		return false
	}
	if s.RoleTag == rostermodel.RoleTagRecoveryWardOT && !im.anyOtherWithTagWorks(trial, staffIdx, dMax, rostermodel.RoleTagRecoveryWardOT) {
		return false
	}
	if !im.weeklyRestSatisfied(trial, staffIdx, widx, week) {
		return false
	}
	for idx := range im.staff {
		if im.hasSixDayRun(trial, idx) {
			return false
		}
	}
	return true
}

func (im *Improver) anyOtherManagerWorks(a rostermodel.Assignment, excludeIdx, day int) bool {
	for idx, s := range im.staff {
		if idx == excludeIdx || !s.IsManager {
			continue
		}
		if a.Get(idx, day) {
			return true
		}
	}
	return false
}

func (im *Improver) anyOtherWithTagWorks(a rostermodel.Assignment, excludeIdx, day int, tag rostermodel.RoleTag) bool {
	for idx, s := range im.staff {
		if idx == excludeIdx || s.RoleTag != tag {
			continue
		}
		if a.Get(idx, day) {
			return true
		}
	}
	return false
}

// weeklyRestSatisfied re-evaluates spec.md §4.4 P7's threshold check
// for one staff and week against the trial assignment, including the
// first week's cross-month carry-in.
func (im *Improver) weeklyRestSatisfied(a rostermodel.Assignment, staffIdx, widx int, week rostermodel.Week) bool {
	var fullDayRequests int64
	for _, d := range week.Days {
		role, ok := im.reqs.Role(staffIdx, d)
		if !ok {
			continue
		}
		behavior, ok := im.tax.Behavior(role)
		if !ok {
			continue
		}
		if behavior.IsFullHoliday() {
			fullDayRequests++
		}
	}
	if fullDayRequests >= 3 {
		return true
	}

	threshold := int64(1)
	if len(week.Days) == 7 {
		threshold = 3
	}

	var value int64
	for _, d := range week.Days {
		if !a.Get(staffIdx, d) {
			value += 2
		} else if role, ok := im.reqs.Role(staffIdx, d); ok {
			if behavior, ok := im.tax.Behavior(role); ok && behavior.IsHalfHoliday() {
				value++
			}
		}
	}

	if widx == 0 && im.calendar.CrossMonthFirstWeek {
		staffID := im.staff[staffIdx].ID
		value += int64(math.Round(2 * im.prevLastWeekHolidays[staffID]))
	}

	return value >= threshold
}

// hasSixDayRun reports whether staffIdx has any run of six consecutive
// assigned days anywhere in the month. moveIsSafe applies it to every
// staff row of the trial assignment, so a move is rejected whenever any
// staff has such a run after the swap.
func (im *Improver) hasSixDayRun(a rostermodel.Assignment, staffIdx int) bool {
	days := im.calendar.Days
	if len(days) < 6 {
		return false
	}
	run := 0
	for _, d := range days {
		if a.Get(staffIdx, d) {
			run++
			if run >= 6 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
