package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/shopspring/decimal"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

const ruleIDS6 = "S6"

// applyS6WorkloadLeveling enforces spec.md §4.4 P11 for every
// profession: capacity and apportionment ratios are pre-computed from
// staff input data with shopspring/decimal (they depend only on u_s,
// r_s, and the configured event-unit tables, never on the decision
// variables), then the per-weekday delivered-units residual is wired
// into the CP objective.
func (m *model) applyS6WorkloadLeveling() {
	weight := m.cfg.S6.Weight
	if m.cfg.S6Heavy.Enabled && m.cfg.S6Heavy.Weight != 0 {
		weight = m.cfg.S6Heavy.Weight
	}
	if !m.cfg.S6.Enabled || weight == 0 {
		return
	}

	byProf := m.staffIndexByProfession()
	weekdaySum := func(perDay map[int]int) decimal.Decimal {
		sum := decimal.Zero
		for _, d := range m.calendar.Weekdays {
			sum = sum.Add(decimal.NewFromInt(int64(perDay[d])))
		}
		return sum
	}

	capacity := make(map[rostermodel.Profession]decimal.Decimal, len(rostermodel.Professions))
	totalCapacity := decimal.Zero
	for _, prof := range rostermodel.Professions {
		u := decimal.Zero
		for _, idx := range byProf[prof] {
			u = u.Add(m.staffCapacity(idx))
		}
		capacity[prof] = u
		totalCapacity = totalCapacity.Add(u)
	}
	if totalCapacity.IsZero() {
		return
	}

	numWeekdays := decimal.NewFromInt(int64(len(m.calendar.Weekdays)))

	for _, prof := range rostermodel.Professions {
		members := byProf[prof]
		if len(members) == 0 {
			continue
		}
		uJ := capacity[prof]
		rho := uJ.Div(totalCapacity)

		eJ := weekdaySum(m.events.ForProfession(prof))
		eAll := weekdaySum(m.events.All)
		eBig := eJ.Add(rho.Mul(eAll))

		mu := uJ.Sub(eBig).Div(numWeekdays)
		muRounded := mu.Round(0).IntPart()

		maxUnitPerStaff := int64(0)
		for _, idx := range members {
			if u := int64(m.staff[idx].DailyUnits); u > maxUnitPerStaff {
				maxUnitPerStaff = u
			}
		}

		for _, d := range m.calendar.Weekdays {
			delivered := cpmodel.NewLinearExpr()
			for _, idx := range members {
				rounded := decimal.NewFromInt(int64(m.staff[idx].DailyUnits)).
					Mul(decimal.NewFromFloat(m.reqs.Coef(idx, d))).
					Round(0).IntPart()
				if rounded == 0 {
					continue
				}
				delivered = delivered.AddTerm(m.shifts[idx][d], rounded)
			}

			epsilon := decimal.NewFromInt(int64(m.events.ForProfession(prof)[d])).
				Add(rho.Mul(decimal.NewFromInt(int64(m.events.All[d]))))
			epsilonRounded := epsilon.Round(0).IntPart()

			deviation := delivered.AddConstant(-epsilonRounded - muRounded)
			bound := int64(len(members))*maxUnitPerStaff + epsilonRounded + muRounded
			if bound < 0 {
				bound = -bound
			}
			abs := m.absDeviation(fmt.Sprintf("s6_abs_%s_%d", prof, d), deviation, bound+1)
			m.addPenalty(ruleIDS6, int64(weight), abs)
		}
	}
}

// staffCapacity returns u_s * (1 - r_s): monthly unit capacity net of
// the fraction of weekdays s has a full-holiday-like request
// outstanding (full holiday, paid, special, summer, or weak holiday;
// spec.md §4.4 P11 step 1).
func (m *model) staffCapacity(staffIdx int) decimal.Decimal {
	u := decimal.NewFromInt(int64(m.staff[staffIdx].DailyUnits))
	weekdays := m.calendar.Weekdays
	if len(weekdays) == 0 {
		return u
	}
	var leaveDays int
	for _, d := range weekdays {
		role, ok := m.reqs.Role(staffIdx, d)
		if !ok {
			continue
		}
		behavior, ok := m.tax.Behavior(role)
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
