package rules

const ruleIDS4 = "S4"

// applyS4WeakLeaveRespect enforces spec.md §4.4 P6: penalize working a
// day the staff requested as a weak holiday.
func (m *model) applyS4WeakLeaveRespect() {
	if !m.cfg.S4.Enabled || m.cfg.S4.Weight == 0 {
		return
	}
	weight := int64(m.cfg.S4.Weight)

	for idx := range m.staff {
		for _, d := range m.calendar.Days {
			role, ok := m.reqs.Role(idx, d)
			if !ok {
				continue
			}
			behavior, ok := m.tax.Behavior(role)
			if !ok || !behavior.IsWeakHoliday() {
				continue
			}
			m.addPenalty(ruleIDS4, weight, m.shifts[idx][d])
		}
	}
}
