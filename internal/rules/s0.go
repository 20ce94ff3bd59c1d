package rules

import (
	"fmt"
	"math"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

const ruleIDS0 = "S0" // 7-day weeks
const ruleIDS2 = "S2" // short weeks

// applyWeeklyRest enforces spec.md §4.4 P7 for every week and regular
// staff with fewer than three full-day leave requests in that week.
func (m *model) applyWeeklyRest() {
	if (!m.cfg.S0.Enabled || m.cfg.S0.Weight == 0) && (!m.cfg.S2.Enabled || m.cfg.S2.Weight == 0) {
		return
	}

	for widx, w := range m.calendar.Weeks {
		threshold := int64(1)
		rule, weight := ruleIDS2, int64(m.cfg.S2.Weight)
		if len(w.Days) == 7 {
			threshold = 3
			rule, weight = ruleIDS0, int64(m.cfg.S0.Weight)
		}
		if weight == 0 {
			continue
		}

		for idx, s := range m.staff {
			if s.IsPartTime() {
				continue
			}

			var fullDayRequests int64
			halfHoliday := make(map[int]bool)
			for _, d := range w.Days {
				role, ok := m.reqs.Role(idx, d)
				if !ok {
					continue
				}
				behavior, ok := m.tax.Behavior(role)
				if !ok {
					continue
				}
				if behavior.IsFullHoliday() {
					fullDayRequests++
				}
				if behavior.IsHalfHoliday() {
					halfHoliday[d] = true
				}
			}
			if fullDayRequests >= 3 {
				continue
			}

			carry := int64(0)
			if widx == 0 && m.calendar.CrossMonthFirstWeek {
				carry = int64(math.Round(2 * m.prevLastWeekHolidays[s.ID]))
			}
			need := threshold - carry
			if need <= 0 {
				continue
			}

			// deficit = threshold - (value_w + carry), where
			// value_w = 2*Σ(1-x) + Σ_{half-holiday days} x, built directly
			// in negated form: -2*(1-x) = 2x - 2, and -x for half days.
			deficit := cpmodel.NewLinearExpr().AddConstant(need)
			for _, d := range w.Days {
				deficit = deficit.AddTerm(m.shifts[idx][d], 2).AddConstant(-2)
				if halfHoliday[d] {
					deficit = deficit.AddTerm(m.shifts[idx][d], -1)
				}
			}

			below := m.indicatorAtLeastOne(
				fmt.Sprintf("s0_below_%s_w%d", s.ID, widx),
				deficit,
				need,
			)
			m.addPenalty(rule, weight, below)
		}
	}
}
