package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

const ruleIDH3 = "H3"

// applyH3ManagerPresence enforces spec.md §4.4 P3: add w_H3 for every
// day with no managerial staff assigned.
func (m *model) applyH3ManagerPresence() {
	if !m.cfg.H3.Enabled || m.cfg.H3.Weight == 0 {
		return
	}
	weight := int64(m.cfg.H3.Weight)

	var managers []int
	for idx, s := range m.staff {
		if s.IsManager {
			managers = append(managers, idx)
		}
	}

	for _, d := range m.calendar.Days {
		managersOnDay := make([]cpmodel.BoolVar, len(managers))
		for i, idx := range managers {
			managersOnDay[i] = m.shifts[idx][d]
		}
		// deficit = 1 - managerCount[d]; capped at 1, so indicatorAtLeastOne
		// applies cleanly with maxValue=1.
		deficit := sumBoolsScaled(managersOnDay, -1).AddConstant(1)
		noManager := m.indicatorAtLeastOne(fmt.Sprintf("h3_no_manager_%d", d), deficit, 1)
		m.addPenalty(ruleIDH3, weight, noManager)
	}
}
