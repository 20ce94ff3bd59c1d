package report

import (
	"math"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

const weightP5 = 50

// p5Violations re-checks spec.md §4.4 P5's Sunday second-step discouragement.
func p5Violations(in Input) []rostermodel.Violation {
	var out []rostermodel.Violation
	for idx, s := range in.Staff {
		if s.IsPartTime() || s.SundayCap == nil || *s.SundayCap < 3 {
			continue
		}
		if over := maxInt(countWorked(in.Assignment, idx, in.Calendar.Sundays) - 2); over > 0 {
			out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS5b, StaffID: s.ID, Detail: "used Sunday headroom past two"})
		}
	}
	return out
}

// s4Violations re-checks spec.md §4.4 P6's weak leave respect.
func s4Violations(in Input) []rostermodel.Violation {
	if !in.Rules.S4.Enabled || in.Rules.S4.Weight == 0 {
		return nil
	}
	var out []rostermodel.Violation
	for idx, s := range in.Staff {
		for _, d := range in.Calendar.Days {
			role, ok := in.Requests.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := in.Taxonomy.Behavior(role)
			if !ok || !behavior.IsWeakHoliday() {
				continue
			}
			if in.Assignment.Get(idx, d) {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS4, StaffID: s.ID, Day: d, Detail: "weak holiday request was worked"})
			}
		}
	}
	return out
}

// weeklyRestViolations re-checks spec.md §4.4 P7's weekly rest threshold.
func weeklyRestViolations(in Input) []rostermodel.Violation {
	if (!in.Rules.S0.Enabled || in.Rules.S0.Weight == 0) && (!in.Rules.S2.Enabled || in.Rules.S2.Weight == 0) {
		return nil
	}
	var out []rostermodel.Violation
	for widx, w := range in.Calendar.Weeks {
		threshold := 1
		rule := rostermodel.RuleS2
		if len(w.Days) == 7 {
			threshold = 3
			rule = rostermodel.RuleS0
		}

		for idx, s := range in.Staff {
			if s.IsPartTime() {
				continue
			}
			var fullDayRequests int
			for _, d := range w.Days {
				role, ok := in.Requests.Role(idx, d)
				if !ok {
					continue
				}
				behavior, ok := in.Taxonomy.Behavior(role)
				if ok && behavior.IsFullHoliday() {
					fullDayRequests++
				}
			}
			if fullDayRequests >= 3 {
				continue
			}

			value := 0
			for _, d := range w.Days {
				if !in.Assignment.Get(idx, d) {
					value += 2
				} else if role, ok := in.Requests.Role(idx, d); ok {
					if behavior, ok := in.Taxonomy.Behavior(role); ok && behavior.IsHalfHoliday() {
						value++
					}
				}
			}
			if widx == 0 && in.Calendar.CrossMonthFirstWeek {
				value += int(math.Round(2 * in.PreviousLastWeekHolidays[s.ID]))
			}
			if value < threshold {
				out = append(out, rostermodel.Violation{Rule: rule, StaffID: s.ID, Detail: "weekly rest threshold not met"})
			}
		}
	}
	return out
}

// s1Violations re-checks spec.md §4.4 P8's weekend headcount targets.
func s1Violations(in Input) []rostermodel.Violation {
	if !in.Rules.S1a.Enabled && !in.Rules.S1b.Enabled && !in.Rules.S1c.Enabled {
		return nil
	}
	byProf := byProfession(in.Staff)
	tau := in.Rules.Tolerance

	var out []rostermodel.Violation
	check := func(d int, dayType rostermodel.DayType) {
		target := in.Targets[dayType]
		pt := countWorkedMembers(in.Assignment, byProf[rostermodel.ProfessionPT], d)
		ot := countWorkedMembers(in.Assignment, byProf[rostermodel.ProfessionOT], d)
		st := countWorkedMembers(in.Assignment, byProf[rostermodel.ProfessionST], d)

		if in.Rules.S1a.Enabled && in.Rules.S1a.Weight != 0 {
			if abs((pt+ot)-(target.PT+target.OT)) != 0 {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS1a, Day: d, Detail: "combined PT+OT weekend headcount off target"})
			}
		}
		if in.Rules.S1b.Enabled && in.Rules.S1b.Weight != 0 {
			if maxInt(abs(pt-target.PT)-tau) > 0 {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS1b, Day: d, Detail: "PT weekend headcount outside tolerance band"})
			}
			if maxInt(abs(ot-target.OT)-tau) > 0 {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS1b, Day: d, Detail: "OT weekend headcount outside tolerance band"})
			}
		}
		if in.Rules.S1c.Enabled && in.Rules.S1c.Weight != 0 {
			if abs(st-target.ST) != 0 {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS1c, Day: d, Detail: "ST weekend headcount off target"})
			}
		}
	}

	for _, d := range in.Calendar.Sundays {
		check(d, rostermodel.DayTypeSunday)
	}
	for _, d := range in.Calendar.SpecialSaturdays {
		check(d, rostermodel.DayTypeSaturday)
	}
	return out
}

func countWorkedMembers(a rostermodel.Assignment, members []int, d int) int {
	n := 0
	for _, idx := range members {
		if a.Get(idx, d) {
			n++
		}
	}
	return n
}

// s3Violations re-checks spec.md §4.4 P9's outpatient co-absence.
func s3Violations(in Input) []rostermodel.Violation {
	if !in.Rules.S3.Enabled || in.Rules.S3.Weight == 0 {
		return nil
	}
	var outpatientPT []int
	for idx, s := range in.Staff {
		if s.RoleTag == rostermodel.RoleTagOutpatientPT {
			outpatientPT = append(outpatientPT, idx)
		}
	}
	if len(outpatientPT) < 2 {
		return nil
	}
	var out []rostermodel.Violation
	for _, d := range in.Calendar.Days {
		off := 0
		for _, idx := range outpatientPT {
			if !in.Assignment.Get(idx, d) {
				off++
			}
		}
		if over := maxInt(off - 1); over > 0 {
			out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS3, Day: d, Detail: "multiple outpatient PT staff off the same day"})
		}
	}
	return out
}

// s5Violations re-checks spec.md §4.4 P10's recovery-ward coverage,
// including the hard union constraint.
func s5Violations(in Input) []rostermodel.Violation {
	var recoveryPT, recoveryOT []int
	for idx, s := range in.Staff {
		switch s.RoleTag {
		case rostermodel.RoleTagRecoveryWardPT:
			recoveryPT = append(recoveryPT, idx)
		case rostermodel.RoleTagRecoveryWardOT:
			recoveryOT = append(recoveryOT, idx)
		}
	}
	if len(recoveryPT) == 0 && len(recoveryOT) == 0 {
		return nil
	}
	softEnabled := in.Rules.S5.Enabled && in.Rules.S5.Weight != 0

	var out []rostermodel.Violation
	for _, d := range in.Calendar.Days {
		ptPresent := countWorkedMembers(in.Assignment, recoveryPT, d) > 0
		otPresent := countWorkedMembers(in.Assignment, recoveryOT, d) > 0

		if (len(recoveryPT) > 0 || len(recoveryOT) > 0) && !ptPresent && !otPresent {
			out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS5, Day: d, Detail: "no recovery-ward PT or OT assigned (hard constraint)"})
		}
		if !softEnabled {
			continue
		}
		if len(recoveryPT) > 0 && !ptPresent {
			out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS5, Day: d, Detail: "no recovery-ward PT assigned"})
		}
		if len(recoveryOT) > 0 && !otPresent {
			out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS5, Day: d, Detail: "no recovery-ward OT assigned"})
		}
	}
	return out
}

// s7Violations re-checks spec.md §4.4 P12's consecutive-workday cap.
func s7Violations(in Input) []rostermodel.Violation {
	if !in.Rules.S7.Enabled || in.Rules.S7.Weight == 0 {
		return nil
	}
	var out []rostermodel.Violation
	days := in.Calendar.Days
	if len(days) < 6 {
		return nil
	}
	for idx, s := range in.Staff {
		if s.IsPartTime() {
			continue
		}
		for start := 0; start+6 <= len(days); start++ {
			window := days[start : start+6]
			allWorked := true
			for _, d := range window {
				if !in.Assignment.Get(idx, d) {
					allWorked = false
					break
				}
			}
			if allWorked {
				out = append(out, rostermodel.Violation{Rule: rostermodel.RuleS7, StaffID: s.ID, Day: window[0], HighlightedDays: append([]int{}, window...), Detail: "six consecutive workdays"})
			}
		}
	}
	return out
}
