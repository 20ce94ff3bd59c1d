package output

import "github.com/tolga/reha-shift/internal/rostermodel"

// DailySummaries computes spec.md §4.7's per-day aggregates: headcount
// (half-day coefficients contribute 0.5), per-profession counts,
// manager count, role-tag counts, and (weekdays only) delivered units
// per profession.
func DailySummaries(in Input) []rostermodel.DailySummary {
	weekday := make(map[int]bool, len(in.Calendar.Weekdays))
	for _, d := range in.Calendar.Weekdays {
		weekday[d] = true
	}

	out := make([]rostermodel.DailySummary, 0, len(in.Calendar.Days))
	for _, d := range in.Calendar.Days {
		summary := rostermodel.DailySummary{
			Day:             d,
			HeadcountByProf: make(map[rostermodel.Profession]float64),
			RoleTagCounts:   make(map[rostermodel.RoleTag]int),
			IsWeekday:       weekday[d],
		}
		if summary.IsWeekday {
			summary.DeliveredUnits = make(map[rostermodel.Profession]int)
		}

		for idx, s := range in.Staff {
			if !in.Assignment.Get(idx, d) {
				continue
			}
			weight := cellWeight(in, idx, d)
			summary.HeadcountTotal += weight
			summary.HeadcountByProf[s.Profession] += weight
			if s.IsManager {
				summary.ManagerCount++
			}
			if s.RoleTag != "" && s.RoleTag != rostermodel.RoleTagNone {
				summary.RoleTagCounts[s.RoleTag]++
			}
			if summary.IsWeekday {
				units := int(float64(s.DailyUnits) * in.Requests.Coef(idx, d))
				summary.DeliveredUnits[s.Profession] += units
			}
		}

		out = append(out, summary)
	}
	return out
}

// cellWeight is 0.5 for a half-holiday role worked, else 1.0 (spec.md
// §4.7: "half-day coefficients multiply both headcount (0.5) and units").
func cellWeight(in Input, staffIdx, day int) float64 {
	role, ok := in.Requests.Role(staffIdx, day)
	if !ok {
		return 1.0
	}
	behavior, ok := in.Taxonomy.Behavior(role)
	if ok && behavior.IsHalfHoliday() {
		return 0.5
	}
	return 1.0
}

// LastWeekHolidays computes spec.md §4.7's per-staff cross-month carry
// from the final week: each full-off day counts as 1.0, each working
// day whose role is a half-holiday contributes 1 - coef.
func LastWeekHolidays(in Input) []rostermodel.StaffWeekCarry {
	if len(in.Calendar.Weeks) == 0 {
		return nil
	}
	lastWeek := in.Calendar.Weeks[len(in.Calendar.Weeks)-1]

	out := make([]rostermodel.StaffWeekCarry, 0, len(in.Staff))
	for idx, s := range in.Staff {
		var carry float64
		for _, d := range lastWeek.Days {
			if !in.Assignment.Get(idx, d) {
				carry += 1.0
				continue
			}
			role, ok := in.Requests.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := in.Taxonomy.Behavior(role)
			if ok && behavior.IsHalfHoliday() {
				carry += 1 - in.Requests.Coef(idx, d)
			}
		}
		out = append(out, rostermodel.StaffWeekCarry{StaffID: s.ID, LastWeekHolidays: carry})
	}
	return out
}
