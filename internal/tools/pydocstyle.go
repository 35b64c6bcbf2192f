package tools

import (
	"context"
	"log/slog"
	"os/exec"

	"github.com/gkze/multilint/internal/tool"
	"github.com/gkze/multilint/internal/toollog"
)

// Pydocstyle checks docstring conventions. It distinguishes "some
// violations" from "could not check at all" in its exit code, and it
// tries to quiet its own logging at runtime, so its output goes through
// a pinned-level writer.
type Pydocstyle struct {
	srcPaths []string
	cfg      tool.Config
}

// NewPydocstyle builds the pydocstyle adapter.
func NewPydocstyle(srcPaths []string, cfg tool.Config) tool.Runner {
	return &Pydocstyle{srcPaths: srcPaths, cfg: cfg}
}

func (p *Pydocstyle) Tool() tool.Tool { return tool.Pydocstyle }

// Run maps pydocstyle's exit codes onto outcomes: 0 is Success, 1
// (violations found) is PartialSuccess, anything else is Failure.
func (p *Pydocstyle) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	w := toollog.NewPinned(deps.Log, "tool."+string(tool.Pydocstyle), slog.LevelInfo)
	if _, err := exec.LookPath("pydocstyle"); err != nil {
		return missingTool(w, "pydocstyle", "pip install pydocstyle"), nil
	}

	code, err := runCommand(ctx, w, "pydocstyle", p.srcPaths...)
	if err != nil {
		return "", err
	}

	switch code {
	case 0:
		return tool.Success, nil
	case 1:
		return tool.PartialSuccess, nil
	default:
		return tool.Failure, nil
	}
}
