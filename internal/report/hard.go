package report

import "github.com/tolga/reha-shift/internal/rostermodel"

// e1Violations re-checks spec.md E1 for part-time staff. A violation
// here would indicate the CP model failed to enforce the hard
// constraint; it is reported rather than assumed away.
func e1Violations(in Input) []rostermodel.Violation {
	var out []rostermodel.Violation
	for idx, s := range in.Staff {
		if !s.IsPartTime() {
			continue
		}
		for _, d := range in.Calendar.Days {
			role, ok := in.Requests.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := in.Taxonomy.Behavior(role)
			if !ok {
				continue
			}
			working := in.Assignment.Get(idx, d)
			switch {
			case behavior.IsStrictHoliday() && working:
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleE1, StaffID: s.ID, Day: d, Detail: "part-time strict holiday request was worked"})
			case behavior.IsStrictWork() && !working:
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleE1, StaffID: s.ID, Day: d, Detail: "part-time strict work request was not worked"})
			}
		}
	}
	return out
}

// h1Violations re-checks spec.md §4.4 P1's monthly holiday target.
func h1Violations(in Input) []rostermodel.Violation {
	if !in.Rules.H1.Enabled || in.Rules.H1.Weight == 0 {
		return nil
	}
	var out []rostermodel.Violation
	for idx, s := range in.Staff {
		if s.IsPartTime() {
			continue
		}
		var fullHolidays, nonCountable, halfHolidays int
		for _, d := range in.Calendar.Days {
			if !in.Assignment.Get(idx, d) {
				fullHolidays++
			}
			role, ok := in.Requests.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := in.Taxonomy.Behavior(role)
			if !ok {
				continue
			}
			if behavior.ExcludedFromMonthlyCount {
				nonCountable++
			}
			if behavior.IsHalfHoliday() {
				halfHolidays++
			}
		}
		value := 2*(fullHolidays-nonCountable) + halfHolidays
		deviation := abs(value - 18)
		if deviation == 0 {
			continue
		}
		out = append(out, rostermodel.Violation{
			Rule: rostermodel.RuleH1, StaffID: s.ID,
			Detail: "monthly holiday target deviation",
		})
	}
	return out
}

// h2Violations re-checks spec.md §4.4 P2's strict leave respect.
func h2Violations(in Input) []rostermodel.Violation {
	if !in.Rules.H2.Enabled || in.Rules.H2.Weight == 0 {
		return nil
	}
	var out []rostermodel.Violation
	for idx, s := range in.Staff {
		if s.IsPartTime() {
			continue
		}
		for _, d := range in.Calendar.Days {
			role, ok := in.Requests.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := in.Taxonomy.Behavior(role)
			if !ok {
				continue
			}
			working := in.Assignment.Get(idx, d)
			switch {
			case behavior.IsStrictHoliday() && working:
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleH2, StaffID: s.ID, Day: d, Detail: "strict holiday request was worked"})
			case behavior.IsStrictWork() && !working:
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleH2, StaffID: s.ID, Day: d, Detail: "strict work request was not worked"})
			}
		}
	}
	return out
}

// h3Violations re-checks spec.md §4.4 P3's manager presence.
func h3Violations(in Input) []rostermodel.Violation {
	if !in.Rules.H3.Enabled || in.Rules.H3.Weight == 0 {
		return nil
	}
	var managers []int
	for idx, s := range in.Staff {
		if s.IsManager {
			managers = append(managers, idx)
		}
	}
	var out []rostermodel.Violation
	for _, d := range in.Calendar.Days {
		present := false
		for _, idx := range managers {
			if in.Assignment.Get(idx, d) {
				present = true
				break
			}
		}
		if !present {
			out = append(out, rostermodel.Violation{Rule: rostermodel.RuleH3, Day: d, Detail: "no managerial staff assigned"})
		}
	}
	return out
}

// h5Violations re-checks spec.md §4.4 P4's weekend caps.
func h5Violations(in Input) []rostermodel.Violation {
	if !in.Rules.H5.Enabled || in.Rules.H5.Weight == 0 {
		return nil
	}
	var out []rostermodel.Violation
	for idx, s := range in.Staff {
		if s.IsPartTime() {
			continue
		}
		switch {
		case s.WeekendCap != nil:
			days := append(append([]int{}, in.Calendar.Sundays...), in.Calendar.SpecialSaturdays...)
			if over := maxInt(countWorked(in.Assignment, idx, days)-*s.WeekendCap); over > 0 {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleH5, StaffID: s.ID, Detail: "weekend cap exceeded"})
			}
		default:
			if s.SundayCap != nil {
				if over := maxInt(countWorked(in.Assignment, idx, in.Calendar.Sundays)-*s.SundayCap); over > 0 {
					out = append(out, rostermodel.Violation{Rule: rostermodel.RuleH5, StaffID: s.ID, Detail: "sunday cap exceeded"})
				}
			}
			if s.SaturdayCap != nil {
				if over := maxInt(countWorked(in.Assignment, idx, in.Calendar.SpecialSaturdays)-*s.SaturdayCap); over > 0 {
					out = append(out, rostermodel.Violation{Rule: rostermodel.RuleH5, StaffID: s.ID, Detail: "saturday cap exceeded"})
				}
			}
		}
	}
	return out
}

func countWorked(a rostermodel.Assignment, staffIdx int, days []int) int {
	n := 0
	for _, d := range days {
		if a.Get(staffIdx, d) {
			n++
		}
	}
	return n
}
