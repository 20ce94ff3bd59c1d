package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

const ruleIDH1 = "H1"

// applyH1MonthlyHolidayTarget enforces spec.md §4.4 P1 for every
// regular staff member: value = 2*(FH - NC) + HH, penalty =
// w_H1 * |value - 18|.
func (m *model) applyH1MonthlyHolidayTarget() {
	if !m.cfg.H1.Enabled || m.cfg.H1.Weight == 0 {
		return
	}
	numDays := int64(len(m.calendar.Days))

	for idx, s := range m.staff {
		if s.IsPartTime() {
			continue
		}

		shifts := make([]cpmodel.BoolVar, 0, len(m.calendar.Days))
		var nonCountable, halfHolidays int64
		for _, d := range m.calendar.Days {
			shifts = append(shifts, m.shifts[idx][d])

			role, ok := m.reqs.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := m.tax.Behavior(role)
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

		// value = 2*(FH - NC) + HH = 2*FH + (HH - 2*NC), and FH = Σ(1-x)
		deviation := sumOneMinusScaled(shifts, 2).AddConstant(halfHolidays - 2*nonCountable - 18)

		bound := 2 * numDays
		abs := m.absDeviation(fmt.Sprintf("h1_abs_dev_%s", s.ID), deviation, bound)
		m.addPenalty(ruleIDH1, int64(m.cfg.H1.Weight), abs)
	}
}
