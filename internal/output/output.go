// Package output implements the Output Assembler (spec.md §4.7): it
// turns a finalized Assignment into display-ready schedule cells plus
// daily and per-staff summaries.
package output

import "github.com/tolga/reha-shift/internal/rostermodel"

// Input bundles what the assembler needs: the staff/calendar/request
// context and the final Assignment.
type Input struct {
	Staff      []rostermodel.Staff
	Calendar   rostermodel.CalendarMonth
	Requests   rostermodel.ResolvedRequests
	Taxonomy   rostermodel.Taxonomy
	Assignment rostermodel.Assignment
}

// ScheduleGrid computes spec.md §4.7's output symbol for every
// (staff, day).
func ScheduleGrid(in Input) []rostermodel.ScheduleCell {
	var out []rostermodel.ScheduleCell
	for idx, s := range in.Staff {
		for _, d := range in.Calendar.Days {
			out = append(out, rostermodel.ScheduleCell{
				StaffID: s.ID,
				Day:     d,
				Symbol:  cellSymbol(in, idx, d),
			})
		}
	}
	return out
}

func cellSymbol(in Input, staffIdx, day int) string {
	working := in.Assignment.Get(staffIdx, day)
	role, hasRole := in.Requests.Role(staffIdx, day)
	var behavior rostermodel.RoleBehavior
	if hasRole {
		behavior, hasRole = in.Taxonomy.Behavior(role)
	}

	if !working {
		if hasRole {
			return behavior.OutputSymbol
		}
		if def, ok := in.Taxonomy.Behavior(rostermodel.RoleHolidayDefault); ok {
			return def.OutputSymbol
		}
		return string(rostermodel.RoleHolidayDefault)
	}

	if hasRole && behavior.IsWeakHoliday() {
		if def, ok := in.Taxonomy.Behavior(rostermodel.RoleWorkFromWeak); ok {
			return def.OutputSymbol
		}
		return string(rostermodel.RoleWorkFromWeak)
	}
	if hasRole {
		return behavior.OutputSymbol
	}
	if def, ok := in.Taxonomy.Behavior(rostermodel.RoleWorkDefault); ok {
		return def.OutputSymbol
	}
	return string(rostermodel.RoleWorkDefault)
}
