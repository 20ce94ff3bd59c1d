// Package solver drives CP-SAT over an assembled rule-engine model
// (spec.md §4.4 "Solver contract (C5)").
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/go/sat_parameters_go_proto"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/proto"

	"github.com/tolga/reha-shift/internal/rostermodel"
	"github.com/tolga/reha-shift/internal/rules"
)

// ErrInfeasible is the fatal error surfaced when CP-SAT reports
// INFEASIBLE or UNKNOWN (spec.md §5: "if it returns INFEASIBLE/UNKNOWN
// the core reports a fatal failure and neither the improver nor the
// reporter runs").
var ErrInfeasible = errors.New("solver: model is infeasible or solve status unknown")

// Options overrides the process default time budget and seed for a
// single solve (spec.md §4.4: "callers may override for reproducibility").
type Options struct {
	TimeLimit time.Duration
	Seed      int64
}

// Result is the CP-SAT solve output needed downstream: the realized
// assignment, the reported status, and the objective value.
type Result struct {
	Status         rostermodel.Status
	Assignment     rostermodel.Assignment
	ObjectiveValue int64
}

// Solve runs CP-SAT over the assembled engine and extracts the total
// assignment. ctx cancellation is not propagated into the native
// solver call (spec.md §5: the CP solver call is the sole blocking
// point, bounded by Options.TimeLimit) but is checked before starting.
func Solve(ctx context.Context, log zerolog.Logger, eng *rules.Engine, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	cpModel, err := eng.Builder().Model()
	if err != nil {
		return Result{}, err
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(opts.TimeLimit.Seconds()),
		RandomSeed:       proto.Int32(int32(opts.Seed)),
	}

	response, err := cpmodel.SolveCpModelWithParameters(cpModel, params)
	if err != nil {
		return Result{}, err
	}

	status := response.GetStatus()
	log.Debug().
		Str("status", status.String()).
		Float64("objective", response.GetObjectiveValue()).
		Msg("cp-sat solve finished")

	switch status {
	case sppb.CpSolverStatus_OPTIMAL, sppb.CpSolverStatus_FEASIBLE:
		// fall through to extraction
	default:
		return Result{Status: rostermodel.StatusInfeasible}, ErrInfeasible
	}

	staff := eng.Staff()
	shifts := eng.Shifts()
	assignment := rostermodel.NewAssignment(len(staff), dayCount(shifts))
	for idx := range staff {
		for day := 1; day < len(shifts[idx]); day++ {
			assignment.Set(idx, day, cpmodel.SolutionBooleanValue(response, shifts[idx][day]))
		}
	}

	resultStatus := rostermodel.StatusFeasible
	if status == sppb.CpSolverStatus_OPTIMAL {
		resultStatus = rostermodel.StatusOptimal
	}

	return Result{
		Status:         resultStatus,
		Assignment:     assignment,
		ObjectiveValue: int64(response.GetObjectiveValue()),
	}, nil
}

func dayCount(shifts [][]cpmodel.BoolVar) int {
	if len(shifts) == 0 {
		return 0
	}
	return len(shifts[0]) - 1
}
