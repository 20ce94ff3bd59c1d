// Package request implements the Request Resolver (spec.md §4.3,
// component C3): it turns raw request cells plus the taxonomy into the
// sparse per-(staff,day) role and work-coefficient maps the rule engine
// consumes. Unknown staff ids and unknown input symbols are dropped
// silently (spec.md §4.3, §6 "Boundary behaviors") and surfaced as
// non-fatal WARN violations instead of errors, matching spec.md §7's
// RequestIgnored warning kind.
package request

import (
	"fmt"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// Resolve builds ResolvedRequests from raw cells and the taxonomy. It
// returns warning violations (rule-id WARN) for every dropped cell,
// rather than failing the solve (spec.md §7: "RequestIgnored
// (warning)").
func Resolve(staff []rostermodel.Staff, raw rostermodel.RawRequestTable, tax rostermodel.Taxonomy) (rostermodel.ResolvedRequests, []rostermodel.Violation) {
	resolved := rostermodel.NewResolvedRequests()
	var warnings []rostermodel.Violation

	staffIndex := make(map[string]int, len(staff))
	for i, s := range staff {
		staffIndex[s.ID] = i
	}

	for staffID, byDay := range raw {
		idx, ok := staffIndex[staffID]
		if !ok {
			warnings = append(warnings, rostermodel.Violation{
				Rule:   rostermodel.RuleWarn,
				Detail: fmt.Sprintf("request table references unknown staff id %q; row dropped", staffID),
			})
			continue
		}

		for day, symbol := range byDay {
			role, ok := tax.Resolve(symbol)
			if !ok {
				warnings = append(warnings, rostermodel.Violation{
					Rule:    rostermodel.RuleWarn,
					StaffID: staffID,
					Day:     day,
					Detail:  fmt.Sprintf("unknown input symbol %q for staff %q on day %d; cell ignored", symbol, staffID, day),
				})
				continue
			}

			behavior, ok := tax.Behavior(role)
			coef := 1.0
			if ok {
				coef = behavior.WorkCoef
			}
			resolved.Set(idx, day, role, coef)
		}
	}

	return resolved, warnings
}
