// Package report implements the Violation Reporter (spec.md §4.6): it
// walks every rule in §4.4 against a finalized Assignment and emits a
// Violation record wherever the deviation is nonzero. It never mutates
// the assignment it is handed.
package report

import "github.com/tolga/reha-shift/internal/rostermodel"

// Input bundles the same per-solve data the rule engine built its
// model from, plus the final Assignment to re-evaluate against.
type Input struct {
	Staff                    []rostermodel.Staff
	Calendar                 rostermodel.CalendarMonth
	Requests                 rostermodel.ResolvedRequests
	Taxonomy                 rostermodel.Taxonomy
	Rules                    rostermodel.RuleConfig
	Targets                  rostermodel.Targets
	Events                   rostermodel.EventUnits
	PreviousLastWeekHolidays map[string]float64
	Assignment               rostermodel.Assignment
}

// Report walks every rule in document order and returns the
// accumulated, non-empty-deviation Violation records.
func Report(in Input) []rostermodel.Violation {
	var out []rostermodel.Violation
	out = append(out, e1Violations(in)...)
	out = append(out, h1Violations(in)...)
	out = append(out, h2Violations(in)...)
	out = append(out, h3Violations(in)...)
	out = append(out, h5Violations(in)...)
	out = append(out, p5Violations(in)...)
	out = append(out, s4Violations(in)...)
	out = append(out, weeklyRestViolations(in)...)
	out = append(out, s1Violations(in)...)
	out = append(out, s3Violations(in)...)
	out = append(out, s5Violations(in)...)
	out = append(out, s6Violations(in)...)
	out = append(out, s7Violations(in)...)
	return out
}

func byProfession(staff []rostermodel.Staff) map[rostermodel.Profession][]int {
	out := make(map[rostermodel.Profession][]int, len(rostermodel.Professions))
	for idx, s := range staff {
		out[s.Profession] = append(out[s.Profession], idx)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
