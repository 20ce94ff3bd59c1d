package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

const ruleIDH5 = "H5"

// applyH5WeekendCaps enforces spec.md §4.4 P4 for every regular staff
// with an applicable cap: a single combined weekend_cap over sundays
// plus special_saturdays, or else separate sunday_cap / saturday_cap
// penalties.
func (m *model) applyH5WeekendCaps() {
	if !m.cfg.H5.Enabled || m.cfg.H5.Weight == 0 {
		return
	}
	weight := int64(m.cfg.H5.Weight)

	for idx, s := range m.staff {
		if s.IsPartTime() {
			continue
		}
		switch {
		case s.WeekendCap != nil:
			days := append(append([]int{}, m.calendar.Sundays...), m.calendar.SpecialSaturdays...)
			m.capPenalty(ruleIDH5, weight, idx, days, *s.WeekendCap, fmt.Sprintf("h5_weekend_%s", s.ID))
		default:
			if s.SundayCap != nil {
				m.capPenalty(ruleIDH5, weight, idx, m.calendar.Sundays, *s.SundayCap, fmt.Sprintf("h5_sunday_%s", s.ID))
			}
			if s.SaturdayCap != nil {
				m.capPenalty(ruleIDH5, weight, idx, m.calendar.SpecialSaturdays, *s.SaturdayCap, fmt.Sprintf("h5_saturday_%s", s.ID))
			}
		}
	}
}

// capPenalty adds `weight * max(0, Σ_{d∈days} x[staffIdx,d] - cap)` to
// the objective, the shared shape behind P4 and P5.
func (m *model) capPenalty(rule string, weight int64, staffIdx int, days []int, cap int, name string) {
	if len(days) == 0 {
		return
	}
	shifts := make([]cpmodel.BoolVar, len(days))
	for i, d := range days {
		shifts[i] = m.shifts[staffIdx][d]
	}
	over := sumBoolsScaled(shifts, 1).AddConstant(-int64(cap))
	bound := int64(len(days))
	v := m.positivePart(name, over, bound)
	m.addPenalty(rule, weight, v)
}
