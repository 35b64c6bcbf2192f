package tool

import (
	"context"
	"log/slog"
)

// Deps contains dependencies injected into tool runners.
type Deps struct {
	// Log is the base structured logger for the run. Runners derive
	// their output capture writers from it so everything an external
	// tool prints lands in the same log stream.
	Log *slog.Logger
}

// Runner adapts one external tool to a uniform execution contract.
//
// Run returns the tool's Outcome. A non-nil error signals a
// configuration problem or an unexpected fault and aborts the run;
// ordinary tool failures (non-zero exits, findings) are never errors,
// they are Failure or PartialSuccess outcomes.
type Runner interface {
	Tool() Tool
	Run(ctx context.Context, deps *Deps) (Outcome, error)
}

// Constructor builds a Runner over the given source paths and config.
// srcPaths defaults to the current directory and cfg to an empty map
// when the caller has nothing more specific.
type Constructor func(srcPaths []string, cfg Config) Runner
