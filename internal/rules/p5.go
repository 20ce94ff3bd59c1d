package rules

import "fmt"

// weightP5 is spec.md §4.4 P5's constant weight: it is not part of
// rule_config, grounded on the original prototype's literal 50
// (SPEC_FULL.md Supplemented Features).
const weightP5 = 50

const ruleIDP5 = "P5"

// applyP5SundaySecondStep enforces spec.md §4.4 P5: for regular staff
// with sunday_cap >= 3, discourage using the headroom past two
// Sundays.
func (m *model) applyP5SundaySecondStep() {
	for idx, s := range m.staff {
		if s.IsPartTime() {
			continue
		}
		if s.SundayCap == nil || *s.SundayCap < 3 {
			continue
		}
		m.capPenalty(ruleIDP5, weightP5, idx, m.calendar.Sundays, 2, fmt.Sprintf("p5_sunday_second_step_%s", s.ID))
	}
}
