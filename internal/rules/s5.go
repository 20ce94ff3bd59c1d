package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

const ruleIDS5 = "S5"

// applyS5RecoveryWardCoverage enforces spec.md §4.4 P10: soft penalty
// per day when no recovery-ward PT (resp. OT) is assigned, plus the
// hard constraint that at least one of the two is present daily.
func (m *model) applyS5RecoveryWardCoverage() {
	var recoveryPT, recoveryOT []int
	for idx, s := range m.staff {
		switch s.RoleTag {
		case rostermodel.RoleTagRecoveryWardPT:
			recoveryPT = append(recoveryPT, idx)
		case rostermodel.RoleTagRecoveryWardOT:
			recoveryOT = append(recoveryOT, idx)
		}
	}
	if len(recoveryPT) == 0 && len(recoveryOT) == 0 {
		return
	}

	weight := int64(m.cfg.S5.Weight)
	softEnabled := m.cfg.S5.Enabled && weight != 0

	for _, d := range m.calendar.Days {
		ptVars := shiftsOf(m, recoveryPT, d)
		otVars := shiftsOf(m, recoveryOT, d)

		if len(recoveryPT) > 0 || len(recoveryOT) > 0 {
			combined := append(append([]cpmodel.BoolVar{}, ptVars...), otVars...)
			m.b.AddAtLeastOne(combined...)
		}

		if !softEnabled {
			continue
		}
		if len(recoveryPT) > 0 {
			deficit := sumBoolsScaled(ptVars, -1).AddConstant(1)
			noPT := m.indicatorAtLeastOne(fmt.Sprintf("s5_no_pt_%d", d), deficit, 1)
			m.addPenalty(ruleIDS5, weight, noPT)
		}
		if len(recoveryOT) > 0 {
			deficit := sumBoolsScaled(otVars, -1).AddConstant(1)
			noOT := m.indicatorAtLeastOne(fmt.Sprintf("s5_no_ot_%d", d), deficit, 1)
			m.addPenalty(ruleIDS5, weight, noOT)
		}
	}
}
