// Package rehashift re-exports the roster engine's public API at the
// module root, so a caller can import the module path itself instead
// of reaching into internal/roster.
package rehashift

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tolga/reha-shift/internal/roster"
	"github.com/tolga/reha-shift/internal/rostermodel"
)

// Engine is the top-level roster engine (see internal/roster.Engine).
type Engine = roster.Engine

// ErrConfiguration is returned for every configuration-time failure
// (see internal/roster.ErrConfiguration).
var ErrConfiguration = roster.ErrConfiguration

// New builds an Engine bound to a logger and process-level solver
// defaults.
func New(log zerolog.Logger, defaultTimeLimit time.Duration, defaultSeed int64) *Engine {
	return roster.New(log, defaultTimeLimit, defaultSeed)
}

// SolveInput is the full per-solve request (see rostermodel.SolveInput).
type SolveInput = rostermodel.SolveInput

// SolveResult is the full per-solve response (see rostermodel.SolveResult).
type SolveResult = rostermodel.SolveResult

// Solve is a package-level form of Engine.Solve: it runs one solve on
// the given Engine.
func Solve(ctx context.Context, e *Engine, in SolveInput) (*SolveResult, error) {
	return e.Solve(ctx, in)
}
