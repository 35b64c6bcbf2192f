// Package tools contains the adapter for each external code quality tool
// multilint integrates. Each adapter translates its tool's native
// invocation and exit signals into the generic runner contract.
package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/gkze/multilint/internal/tool"
	"github.com/gkze/multilint/internal/toollog"
)

// runCommand executes an external tool with stdout and stderr wired to w.
// The exit code is returned for expected tool failures; a non-nil error
// means the process could not run at all.
func runCommand(ctx context.Context, w io.Writer, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("running %s: %w", name, err)
}

// captureWriter builds the output capture writer for t, named the way
// the log stream expects ("tool.<name>").
func captureWriter(deps *tool.Deps, t tool.Tool) *toollog.Writer {
	return toollog.New(deps.Log, "tool."+string(t), slog.LevelInfo)
}

// missingTool records an absent binary and degrades it to a plain
// failure so the rest of the run proceeds.
func missingTool(w *toollog.Writer, name, installHint string) tool.Outcome {
	fmt.Fprintf(w, "%s not found. Install with: %s\n", name, installHint)
	return tool.Failure
}

// aggregate folds per-file failures into one outcome: all files failing
// is Failure, a non-empty proper subset is PartialSuccess, and zero
// failures (including zero files evaluated) is Success.
func aggregate(failed, total int) tool.Outcome {
	switch {
	case failed == 0:
		return tool.Success
	case failed == total:
		return tool.Failure
	default:
		return tool.PartialSuccess
	}
}
