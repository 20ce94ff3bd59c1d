package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

const ruleIDS7 = "S7"

// applyS7ConsecutiveWorkdayCap enforces spec.md §4.4 P12: for every
// 6-day sliding window and every regular staff, penalize a run where
// all six days are worked.
func (m *model) applyS7ConsecutiveWorkdayCap() {
	if !m.cfg.S7.Enabled || m.cfg.S7.Weight == 0 {
		return
	}
	weight := int64(m.cfg.S7.Weight)

	days := m.calendar.Days
	if len(days) < 6 {
		return
	}

	for idx, s := range m.staff {
		if s.IsPartTime() {
			continue
		}
		for start := 0; start+6 <= len(days); start++ {
			window := days[start : start+6]
			vars := make([]cpmodel.BoolVar, len(window))
			for i, d := range window {
				vars[i] = m.shifts[idx][d]
			}
			allWorked := m.indicatorAllTrue(fmt.Sprintf("s7_run_%s_%d", s.ID, window[0]), vars)
			m.addPenalty(ruleIDS7, weight, allWorked)
		}
	}
}
