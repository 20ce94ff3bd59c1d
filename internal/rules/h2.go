package rules

const ruleIDH2 = "H2"

// applyH2StrictLeaveRespect enforces spec.md §4.4 P2 for regular
// staff: a strict-holiday request is penalized if worked, a
// strict-work request is penalized if not worked.
func (m *model) applyH2StrictLeaveRespect() {
	if !m.cfg.H2.Enabled || m.cfg.H2.Weight == 0 {
		return
	}
	weight := int64(m.cfg.H2.Weight)

	for idx, s := range m.staff {
		if s.IsPartTime() {
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
				m.addPenalty(ruleIDH2, weight, m.shifts[idx][d])
			case behavior.IsStrictWork():
				m.addPenalty(ruleIDH2, weight, oneMinus(m.shifts[idx][d]))
			}
		}
	}
}
