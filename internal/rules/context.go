package rules

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// model is the shared build context threaded through every rule
// function (spec.md §4.4). It owns the CP model builder, the decision
// variables, and the running objective — assembled once, frozen on
// solve, and discarded after extraction (spec.md §5 "Shared-resource
// policy").
type model struct {
	b *cpmodel.CpModelBuilder

	staff    []rostermodel.Staff
	calendar rostermodel.CalendarMonth
	reqs     rostermodel.ResolvedRequests
	tax      rostermodel.Taxonomy
	cfg      rostermodel.RuleConfig
	targets  rostermodel.Targets
	events   rostermodel.EventUnits
	prevLastWeekHolidays map[string]float64

	// shifts[staffIdx][day] is x[s,d] (spec.md §4.4 decision variables).
	// day is 1-based; index 0 is unused for readability at call sites.
	shifts [][]cpmodel.BoolVar

	objective    *cpmodel.LinearExpr
	penaltyKinds []string // bookkeeping only, rule ids touched
}

// newModel allocates the boolean shift variables and the empty
// objective accumulator.
func newModel(staff []rostermodel.Staff, calendar rostermodel.CalendarMonth, reqs rostermodel.ResolvedRequests, tax rostermodel.Taxonomy, cfg rostermodel.RuleConfig, targets rostermodel.Targets, events rostermodel.EventUnits, prevLastWeekHolidays map[string]float64) *model {
	b := cpmodel.NewCpModelBuilder()

	shifts := make([][]cpmodel.BoolVar, len(staff))
	for i, s := range staff {
		shifts[i] = make([]cpmodel.BoolVar, calendar.Days[len(calendar.Days)-1]+1)
		for _, d := range calendar.Days {
			shifts[i][d] = b.NewBoolVar().WithName(staffDayName(s.ID, d))
		}
	}

	return &model{
		b:        b,
		staff:    staff,
		calendar: calendar,
		reqs:     reqs,
		tax:      tax,
		cfg:      cfg,
		targets:  targets,
		events:   events,
		prevLastWeekHolidays: prevLastWeekHolidays,
		shifts:   shifts,
		objective: cpmodel.NewLinearExpr(),
	}
}

func staffDayName(staffID string, day int) string {
	return fmt.Sprintf("shift_%s_%d", staffID, day)
}
