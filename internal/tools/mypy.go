package tools

import (
	"context"
	"os/exec"

	"github.com/gkze/multilint/internal/tool"
)

// Mypy statically type-checks the source paths. It reports one aggregate
// result, so the outcome is Success or Failure only.
type Mypy struct {
	srcPaths []string
	cfg      tool.Config
}

// NewMypy builds the mypy adapter.
func NewMypy(srcPaths []string, cfg tool.Config) tool.Runner {
	return &Mypy{srcPaths: srcPaths, cfg: cfg}
}

func (m *Mypy) Tool() tool.Tool { return tool.Mypy }

func (m *Mypy) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	w := captureWriter(deps, tool.Mypy)
	if _, err := exec.LookPath("mypy"); err != nil {
		return missingTool(w, "mypy", "pip install mypy"), nil
	}

	code, err := runCommand(ctx, w, "mypy", m.srcPaths...)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return tool.Failure, nil
	}
	return tool.Success, nil
}
