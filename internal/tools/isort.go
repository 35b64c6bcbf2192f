package tools

import (
	"context"
	"os/exec"

	"github.com/gkze/multilint/internal/tool"
)

// ISort sorts imports, one file at a time, so a run over many files can
// partially succeed: some files sorted, some failed.
type ISort struct {
	srcPaths []string
	cfg      tool.Config
}

// NewISort builds the isort adapter.
func NewISort(srcPaths []string, cfg tool.Config) tool.Runner {
	return &ISort{srcPaths: srcPaths, cfg: cfg}
}

func (i *ISort) Tool() tool.Tool { return tool.ISort }

// Run sorts each resolved Python file independently and aggregates:
// every file failing is Failure, a proper subset is PartialSuccess, and
// zero files to sort is Success.
func (i *ISort) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	w := captureWriter(deps, tool.ISort)
	if _, err := exec.LookPath("isort"); err != nil {
		return missingTool(w, "isort", "pip install isort"), nil
	}

	files, err := pythonFiles(i.srcPaths)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return tool.Success, nil
	}

	var failed []string
	for _, f := range files {
		code, err := runCommand(ctx, w, "isort", f)
		if err != nil {
			return "", err
		}
		if code != 0 {
			failed = append(failed, f)
		}
	}

	if len(failed) > 0 {
		deps.Log.Error("isort failed on some files", "logger", "tool.isort")
		for _, f := range failed {
			deps.Log.Error("isort failure", "logger", "tool.isort", "file", f)
		}
	}

	return aggregate(len(failed), len(files)), nil
}
