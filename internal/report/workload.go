package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// s6Violations re-checks spec.md §4.4 P11's per-profession workload
// leveling, mirroring the rule engine's decimal-precise apportionment
// math over the final assignment's delivered units.
func s6Violations(in Input) []rostermodel.Violation {
	weight := in.Rules.S6.Weight
	if in.Rules.S6Heavy.Enabled && in.Rules.S6Heavy.Weight != 0 {
		weight = in.Rules.S6Heavy.Weight
	}
	if !in.Rules.S6.Enabled || weight == 0 {
		return nil
	}

	byProf := byProfession(in.Staff)
	weekdaySum := func(perDay map[int]int) decimal.Decimal {
		sum := decimal.Zero
		for _, d := range in.Calendar.Weekdays {
			sum = sum.Add(decimal.NewFromInt(int64(perDay[d])))
		}
		return sum
	}

	capacity := make(map[rostermodel.Profession]decimal.Decimal, len(rostermodel.Professions))
	total := decimal.Zero
	for _, prof := range rostermodel.Professions {
		u := decimal.Zero
		for _, idx := range byProf[prof] {
			u = u.Add(staffCapacity(in, idx))
		}
		capacity[prof] = u
		total = total.Add(u)
	}
	if total.IsZero() {
		return nil
	}
	numWeekdays := decimal.NewFromInt(int64(len(in.Calendar.Weekdays)))

	var out []rostermodel.Violation
	for _, prof := range rostermodel.Professions {
		members := byProf[prof]
		if len(members) == 0 {
			continue
		}
		uJ := capacity[prof]
		rho := uJ.Div(total)
		eJ := weekdaySum(in.Events.ForProfession(prof))
		eAll := weekdaySum(in.Events.All)
		mu := uJ.Sub(eJ.Add(rho.Mul(eAll))).Div(numWeekdays)
		muRounded := mu.Round(0).IntPart()

		for _, d := range in.Calendar.Weekdays {
			delivered := int64(0)
			for _, idx := range members {
				if !in.Assignment.Get(idx, d) {
					continue
				}
				units := decimal.NewFromInt(int64(in.Staff[idx].DailyUnits)).
					Mul(decimal.NewFromFloat(in.Requests.Coef(idx, d))).
					Round(0).IntPart()
				delivered += units
			}
			epsilon := decimal.NewFromInt(int64(in.Events.ForProfession(prof)[d])).
				Add(rho.Mul(decimal.NewFromInt(int64(in.Events.All[d]))))
			residual := delivered - epsilon.Round(0).IntPart()
			deviation := residual - muRounded
			if deviation != 0 {
				out = append(out, rostermodel.Violation{
					Rule: rostermodel.RuleS6, Day: d,
					Detail: fmt.Sprintf("%s workload deviation on day %d", prof, d),
				})
			}
		}
	}
	return out
}

// staffCapacity mirrors internal/rules's u_s*(1-r_s) computation.
func staffCapacity(in Input, staffIdx int) decimal.Decimal {
	u := decimal.NewFromInt(int64(in.Staff[staffIdx].DailyUnits))
	weekdays := in.Calendar.Weekdays
	if len(weekdays) == 0 {
		return u
	}
	var leaveDays int
	for _, d := range weekdays {
		role, ok := in.Requests.Role(staffIdx, d)
		if !ok {
			continue
		}
		behavior, ok := in.Taxonomy.Behavior(role)
		if !ok {
			continue
		}
		if behavior.IsFullHoliday() || behavior.IsWeakHoliday() || behavior.ExcludedFromMonthlyCount {
			leaveDays++
		}
	}
	r := decimal.NewFromInt(int64(leaveDays)).Div(decimal.NewFromInt(int64(len(weekdays))))
	return u.Mul(decimal.NewFromInt(1).Sub(r))
}
