// Package roster implements the top-level orchestration engine
// (spec.md §5 "Control flow"): it wires the Calendar Partitioner (C1),
// Symbol Taxonomy (C2), Request Resolver (C3), Rule Engine (C4),
// Solver (C5), Improver (C6), Violation Reporter (C7), and Output
// Assembler (C8) into the single public Solve entry point.
package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tolga/reha-shift/internal/calendarmonth"
	"github.com/tolga/reha-shift/internal/improve"
	"github.com/tolga/reha-shift/internal/output"
	"github.com/tolga/reha-shift/internal/report"
	"github.com/tolga/reha-shift/internal/request"
	"github.com/tolga/reha-shift/internal/rostermodel"
	"github.com/tolga/reha-shift/internal/rules"
	"github.com/tolga/reha-shift/internal/solver"
)

// ErrConfiguration wraps every error raised before model assembly
// completes (spec.md §7: "ConfigurationError: abort before solving").
var ErrConfiguration = errors.New("roster: configuration error")

// Engine is the entry point a caller (CLI, service) holds for the
// lifetime of a process. It carries process-level defaults only;
// every solve is otherwise independent.
type Engine struct {
	log               zerolog.Logger
	defaultTimeLimit  time.Duration
	defaultSeed       int64
}

// New builds an Engine bound to a logger and process-level solver
// defaults (spec.md §4.4's 60s/seed contract, overridable per solve).
func New(log zerolog.Logger, defaultTimeLimit time.Duration, defaultSeed int64) *Engine {
	return &Engine{log: log, defaultTimeLimit: defaultTimeLimit, defaultSeed: defaultSeed}
}

// Solve runs one full month's roster optimization: calendar
// partitioning, request resolution, CP model assembly, solving,
// local-search improvement, violation reporting, and output assembly,
// in that dependency order (spec.md §5). A ConfigurationError aborts
// before any model is built; an infeasible/unknown CP-SAT result
// aborts after solving and skips the improver and reporter.
func (e *Engine) Solve(ctx context.Context, in rostermodel.SolveInput) (*rostermodel.SolveResult, error) {
	runID := uuid.New()
	log := e.log.With().Str("solve_id", runID.String()).Int("year", in.Year).Int("month", in.Month).Logger()
	log.Info().Msg("solve started")

	calendar, err := calendarmonth.Build(in.Year, in.Month, in.SaturdayIsSpecial)
	if err != nil {
		log.Error().Err(err).Msg("calendar partitioning failed")
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	resolved, warnings := request.Resolve(in.StaffTable, in.RequestTable, in.Taxonomy)
	for _, w := range warnings {
		log.Warn().Str("staff_id", w.StaffID).Int("day", w.Day).Str("detail", w.Detail).Msg("request cell ignored")
	}

	engine, err := rules.Build(rules.BuildInput{
		Staff:                    in.StaffTable,
		Calendar:                 calendar,
		Requests:                 resolved,
		Taxonomy:                 in.Taxonomy,
		Rules:                    in.Rules,
		Targets:                  in.Targets,
		Events:                   in.Events,
		PreviousLastWeekHolidays: in.PreviousLastWeekHolidays,
	})
	if err != nil {
		log.Error().Err(err).Msg("rule engine assembly failed")
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	timeLimit := e.defaultTimeLimit
	if in.SolverTimeLimitSeconds > 0 {
		timeLimit = time.Duration(in.SolverTimeLimitSeconds * float64(time.Second))
	}
	seed := e.defaultSeed
	if in.SolverSeed != 0 {
		seed = in.SolverSeed
	}

	solved, err := solver.Solve(ctx, log, engine, solver.Options{TimeLimit: timeLimit, Seed: seed})
	if err != nil {
		log.Error().Err(err).Str("status", string(solved.Status)).Msg("solve failed")
		return &rostermodel.SolveResult{Status: solved.Status}, err
	}

	assignment := solved.Assignment
	improver := improve.New(in.StaffTable, calendar, resolved, in.Taxonomy, in.Rules, in.PreviousLastWeekHolidays)
	assignment = improver.Run(assignment)

	violations := report.Report(report.Input{
		Staff:                    in.StaffTable,
		Calendar:                 calendar,
		Requests:                 resolved,
		Taxonomy:                 in.Taxonomy,
		Rules:                    in.Rules,
		Targets:                  in.Targets,
		Events:                   in.Events,
		PreviousLastWeekHolidays: in.PreviousLastWeekHolidays,
		Assignment:               assignment,
	})
	violations = append(violations, warnings...)

	out := output.Input{
		Staff:      in.StaffTable,
		Calendar:   calendar,
		Requests:   resolved,
		Taxonomy:   in.Taxonomy,
		Assignment: assignment,
	}

	log.Info().
		Str("status", string(solved.Status)).
		Int64("objective", solved.ObjectiveValue).
		Int("violations", len(violations)).
		Msg("solve finished")

	return &rostermodel.SolveResult{
		Status:           solved.Status,
		Assignment:       assignment,
		ScheduleGrid:     output.ScheduleGrid(out),
		LastWeekHolidays: output.LastWeekHolidays(out),
		DailySummaries:   output.DailySummaries(out),
		Violations:       violations,
		ObjectiveValue:   solved.ObjectiveValue,
	}, nil
}
