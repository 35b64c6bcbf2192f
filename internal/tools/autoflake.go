package tools

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/gkze/multilint/internal/tool"
)

// Autoflake removes unused imports and variables. Its config keys are
// passed straight through as long-form CLI flags: booleans become bare
// flags, everything else becomes --key=value, with underscores turned
// into dashes.
type Autoflake struct {
	srcPaths []string
	cfg      tool.Config
}

// NewAutoflake builds the autoflake adapter.
func NewAutoflake(srcPaths []string, cfg tool.Config) tool.Runner {
	return &Autoflake{srcPaths: srcPaths, cfg: cfg}
}

func (a *Autoflake) Tool() tool.Tool { return tool.Autoflake }

func (a *Autoflake) args() []string {
	keys := make([]string, 0, len(a.cfg))
	for k := range a.cfg {
		// src_paths is already folded into a.srcPaths by the orchestrator.
		if k == "src_paths" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var args []string
	for _, key := range keys {
		opt := "--" + strings.ReplaceAll(key, "_", "-")

		if b, ok := a.cfg.Bool(key); ok {
			if b {
				args = append(args, opt)
			}
			continue
		}
		args = append(args, fmt.Sprintf("%s=%v", opt, a.cfg[key]))
	}

	return append(args, a.srcPaths...)
}

// Run invokes autoflake over the source paths; a non-zero exit is a
// plain Failure.
func (a *Autoflake) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	w := captureWriter(deps, tool.Autoflake)
	if _, err := exec.LookPath("autoflake"); err != nil {
		return missingTool(w, "autoflake", "pip install autoflake"), nil
	}

	code, err := runCommand(ctx, w, "autoflake", a.args()...)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return tool.Failure, nil
	}
	return tool.Success, nil
}
