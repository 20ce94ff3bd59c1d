// Command rosterctl is a JSON-in/JSON-out CLI wrapper around the
// roster engine: it reads a rostermodel.SolveInput document from
// stdin (or a file given as the first argument) and writes the
// resulting rostermodel.SolveResult to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/tolga/reha-shift/internal/config"
	"github.com/tolga/reha-shift/internal/roster"
	"github.com/tolga/reha-shift/internal/rostermodel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	logger := zerolog.New(out).Level(logLevel).With().Timestamp().Logger()

	in, err := readInput(os.Args)
	if err != nil {
		return fmt.Errorf("rosterctl: %w", err)
	}

	var input rostermodel.SolveInput
	if err := json.Unmarshal(in, &input); err != nil {
		return fmt.Errorf("rosterctl: invalid input: %w", err)
	}

	engine := roster.New(logger, cfg.SolveTimeLimit, cfg.DefaultSeed)
	result, err := engine.Solve(context.Background(), input)
	if err != nil {
		return fmt.Errorf("rosterctl: solve failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 1 {
		return os.ReadFile(args[1])
	}
	return io.ReadAll(os.Stdin)
}
