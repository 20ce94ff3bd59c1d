package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

const ruleIDS1a = "S1a"
const ruleIDS1b = "S1b"
const ruleIDS1c = "S1c"

// applyS1WeekendHeadcountTargets enforces spec.md §4.4 P8 for each
// Sunday and special Saturday: combined PT+OT target (S1a), per-
// profession PT/OT band with tolerance τ (S1b), and ST target (S1c).
func (m *model) applyS1WeekendHeadcountTargets() {
	if !anyEnabled(m.cfg.S1a, m.cfg.S1b, m.cfg.S1c) {
		return
	}
	byProf := m.staffIndexByProfession()

	apply := func(d int, dayType rostermodel.DayType) {
		target := m.targets[dayType]
		ptVars := shiftsOf(m, byProf[rostermodel.ProfessionPT], d)
		otVars := shiftsOf(m, byProf[rostermodel.ProfessionOT], d)
		stVars := shiftsOf(m, byProf[rostermodel.ProfessionST], d)

		if m.cfg.S1a.Enabled && m.cfg.S1a.Weight != 0 {
			combined := append(append([]cpmodel.BoolVar{}, ptVars...), otVars...)
			sum := sumBoolsScaled(combined, 1).AddConstant(-int64(target.PT + target.OT))
			abs := m.absDeviation(fmt.Sprintf("s1a_abs_%d", d), sum, int64(len(combined)+target.PT+target.OT))
			m.addPenalty(ruleIDS1a, int64(m.cfg.S1a.Weight), abs)
		}

		if m.cfg.S1b.Enabled && m.cfg.S1b.Weight != 0 {
			tau := int64(m.cfg.Tolerance)
			m.bandPenalty(ruleIDS1b, int64(m.cfg.S1b.Weight), ptVars, int64(target.PT), tau, fmt.Sprintf("s1b_pt_%d", d))
			m.bandPenalty(ruleIDS1b, int64(m.cfg.S1b.Weight), otVars, int64(target.OT), tau, fmt.Sprintf("s1b_ot_%d", d))
		}

		if m.cfg.S1c.Enabled && m.cfg.S1c.Weight != 0 {
			sum := sumBoolsScaled(stVars, 1).AddConstant(-int64(target.ST))
			abs := m.absDeviation(fmt.Sprintf("s1c_abs_%d", d), sum, int64(len(stVars)+target.ST))
			m.addPenalty(ruleIDS1c, int64(m.cfg.S1c.Weight), abs)
		}
	}

	for _, d := range m.calendar.Sundays {
		apply(d, rostermodel.DayTypeSunday)
	}
	for _, d := range m.calendar.SpecialSaturdays {
		apply(d, rostermodel.DayTypeSaturday)
	}
}

// bandPenalty adds `weight * max(0, |n - target| - tau)` where n is
// the count of vars assigned.
func (m *model) bandPenalty(rule string, weight int64, vars []cpmodel.BoolVar, target, tau int64, name string) {
	bound := int64(len(vars)) + target
	diff := sumBoolsScaled(vars, 1).AddConstant(-target)
	abs := m.absDeviation(name+"_abs", diff, bound)
	over := cpmodel.NewLinearExpr().AddTerm(abs, 1).AddConstant(-tau)
	band := m.positivePart(name+"_band", over, bound)
	m.addPenalty(rule, weight, band)
}

func shiftsOf(m *model, staffIdxs []int, d int) []cpmodel.BoolVar {
	out := make([]cpmodel.BoolVar, len(staffIdxs))
	for i, idx := range staffIdxs {
		out[i] = m.shifts[idx][d]
	}
	return out
}

func (m *model) staffIndexByProfession() map[rostermodel.Profession][]int {
	out := make(map[rostermodel.Profession][]int, len(rostermodel.Professions))
	for idx, s := range m.staff {
		out[s.Profession] = append(out[s.Profession], idx)
	}
	return out
}

func anyEnabled(settings ...rostermodel.RuleSetting) bool {
	for _, s := range settings {
		if s.Enabled && s.Weight != 0 {
			return true
		}
	}
	return false
}
