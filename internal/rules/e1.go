package rules

import "github.com/google/or-tools/ortools/sat/go/cpmodel"

// applyE1PartTimeFix enforces spec.md §4.4 E1: for every part-time
// staff and day, a strict-holiday request forces x[s,d]=0 and a
// strict-work request forces x[s,d]=1; everything else is left free.
func (m *model) applyE1PartTimeFix() {
	for idx, s := range m.staff {
		if !s.IsPartTime() {
			continue
		}
		for _, d := range m.calendar.Days {
			role, ok := m.reqs.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := m.tax.Behavior(role)
			if !ok {
				continue
			}
			switch {
			case behavior.IsStrictHoliday():
				m.b.AddEquality(m.shifts[idx][d], cpmodel.NewConstant(0))
			case behavior.IsStrictWork():
				m.b.AddEquality(m.shifts[idx][d], cpmodel.NewConstant(1))
			}
		}
	}
}
