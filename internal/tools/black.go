package tools

import (
	"context"
	"os/exec"

	"github.com/gkze/multilint/internal/tool"
)

// Black is an opinionated code formatter. It reads its own settings from
// the project it formats, so the adapter only hands it paths.
type Black struct {
	srcPaths []string
	cfg      tool.Config
}

// NewBlack builds the black adapter.
func NewBlack(srcPaths []string, cfg tool.Config) tool.Runner {
	return &Black{srcPaths: srcPaths, cfg: cfg}
}

func (b *Black) Tool() tool.Tool { return tool.Black }

// Run formats the source paths in place; a non-zero exit is a plain
// Failure.
func (b *Black) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	w := captureWriter(deps, tool.Black)
	if _, err := exec.LookPath("black"); err != nil {
		return missingTool(w, "black", "pip install black"), nil
	}

	code, err := runCommand(ctx, w, "black", b.srcPaths...)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return tool.Failure, nil
	}
	return tool.Success, nil
}
