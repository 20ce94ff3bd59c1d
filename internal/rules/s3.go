package rules

import (
	"fmt"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

const ruleIDS3 = "S3"

// applyS3OutpatientCoAbsence enforces spec.md §4.4 P9: for each day,
// penalize when more than one outpatient-PT staff is off simultaneously.
func (m *model) applyS3OutpatientCoAbsence() {
	if !m.cfg.S3.Enabled || m.cfg.S3.Weight == 0 {
		return
	}
	weight := int64(m.cfg.S3.Weight)

	var outpatientPT []int
	for idx, s := range m.staff {
		if s.RoleTag == rostermodel.RoleTagOutpatientPT {
			outpatientPT = append(outpatientPT, idx)
		}
	}
	if len(outpatientPT) < 2 {
		return
	}

	for _, d := range m.calendar.Days {
		offCount := sumOneMinusScaled(shiftsOf(m, outpatientPT, d), 1).AddConstant(-1)
		over := m.positivePart(fmt.Sprintf("s3_over_%d", d), offCount, int64(len(outpatientPT)))
		m.addPenalty(ruleIDS3, weight, over)
	}
}
