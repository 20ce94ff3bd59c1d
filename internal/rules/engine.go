package rules

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/tolga/reha-shift/internal/rostermodel"
)

// BuildInput bundles everything the rule engine needs to assemble a
// CP model for one solve (spec.md §4.4).
type BuildInput struct {
	Staff                    []rostermodel.Staff
	Calendar                 rostermodel.CalendarMonth
	Requests                 rostermodel.ResolvedRequests
	Taxonomy                 rostermodel.Taxonomy
	Rules                    rostermodel.RuleConfig
	Targets                  rostermodel.Targets
	Events                   rostermodel.EventUnits
	PreviousLastWeekHolidays map[string]float64
}

// Engine is the assembled CP model for a single solve: the decision
// variables, every E1/P1-P12 constraint/penalty, and the objective,
// ready to hand to the solver driver (C5).
type Engine struct {
	*model
}

// Build validates cfg/taxonomy/staff and assembles the CP model per
// spec.md §4.4, applying E1 first and then P1-P12 in the document's
// own order (spec.md §5: "apply the twelve penalty rules in a fixed
// order matching the document").
func Build(in BuildInput) (*Engine, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	m := newModel(in.Staff, in.Calendar, in.Requests, in.Taxonomy, in.Rules, in.Targets, in.Events, in.PreviousLastWeekHolidays)

	m.applyE1PartTimeFix()
	m.applyH1MonthlyHolidayTarget()
	m.applyH2StrictLeaveRespect()
	m.applyH3ManagerPresence()
	m.applyH5WeekendCaps()
	m.applyP5SundaySecondStep()
	m.applyS4WeakLeaveRespect()
	m.applyWeeklyRest()
	m.applyS1WeekendHeadcountTargets()
	m.applyS3OutpatientCoAbsence()
	m.applyS5RecoveryWardCoverage()
	m.applyS6WorkloadLeveling()
	m.applyS7ConsecutiveWorkdayCap()

	m.b.Minimize(m.objective)

	return &Engine{m}, nil
}

// Builder exposes the underlying CP-SAT builder for the solver driver.
func (e *Engine) Builder() *cpmodel.CpModelBuilder {
	return e.b
}

// Shifts exposes the decision variables, indexed [staffIdx][day], for
// extracting the final assignment after solving.
func (e *Engine) Shifts() [][]cpmodel.BoolVar {
	return e.shifts
}

// Staff exposes the staff roster in the same order used to build the
// shift matrix.
func (e *Engine) Staff() []rostermodel.Staff {
	return e.staff
}

func validate(in BuildInput) error {
	for _, w := range []rostermodel.RuleSetting{
		in.Rules.H1, in.Rules.H2, in.Rules.H3, in.Rules.H5,
		in.Rules.S0, in.Rules.S1a, in.Rules.S1b, in.Rules.S1c,
		in.Rules.S2, in.Rules.S3, in.Rules.S4, in.Rules.S5,
		in.Rules.S6, in.Rules.S6Heavy, in.Rules.S7,
	} {
		if w.Weight < 0 {
			return ErrNegativeWeight
		}
	}
	if in.Rules.Tolerance < 0 || in.Rules.TriageWeight < 0 {
		return ErrNegativeWeight
	}

	for _, reserved := range []rostermodel.Role{
		rostermodel.RoleHolidayDefault,
		rostermodel.RoleWorkDefault,
		rostermodel.RoleWorkFromWeak,
	} {
		if _, ok := in.Taxonomy.Behavior(reserved); !ok {
			return ErrMissingReservedRole
		}
	}

	for _, s := range in.Staff {
		if s.ID == "" || s.Profession == "" || s.Employment == "" {
			return ErrMissingStaffField
		}
	}

	return nil
}
