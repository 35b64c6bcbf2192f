package tools

import (
	"context"
	"os/exec"

	"github.com/gkze/multilint/internal/tool"
)

// Pylint lints the source paths. Like mypy it reports one aggregate
// result: Success or Failure.
type Pylint struct {
	srcPaths []string
	cfg      tool.Config
}

// NewPylint builds the pylint adapter.
func NewPylint(srcPaths []string, cfg tool.Config) tool.Runner {
	return &Pylint{srcPaths: srcPaths, cfg: cfg}
}

func (p *Pylint) Tool() tool.Tool { return tool.Pylint }

func (p *Pylint) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	w := captureWriter(deps, tool.Pylint)
	if _, err := exec.LookPath("pylint"); err != nil {
		return missingTool(w, "pylint", "pip install pylint"), nil
	}

	code, err := runCommand(ctx, w, "pylint", p.srcPaths...)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return tool.Failure, nil
	}
	return tool.Success, nil
}
