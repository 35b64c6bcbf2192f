package tools

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gkze/multilint/internal/tool"
)

var minVersionRe = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)

// Flags pyupgrade accepts as bare booleans, passed through from config.
var pyupgradeBoolFlags = []string{
	"exit_zero_even_if_changed",
	"keep_mock",
	"keep_percent_format",
	"keep_runtime_typing",
}

// Pyupgrade upgrades Python syntax to the latest supported by the
// configured minimum version. It rewrites files in place, one at a time;
// only file-typed source paths are fed to it.
type Pyupgrade struct {
	srcPaths []string
	cfg      tool.Config
}

// NewPyupgrade builds the pyupgrade adapter.
func NewPyupgrade(srcPaths []string, cfg tool.Config) tool.Runner {
	return &Pyupgrade{srcPaths: srcPaths, cfg: cfg}
}

func (p *Pyupgrade) Tool() tool.Tool { return tool.Pyupgrade }

func (p *Pyupgrade) validateConfig() error {
	v, ok := p.cfg.String("min_version")
	if ok && !minVersionRe.MatchString(v) {
		return fmt.Errorf("min_version %q is not a valid Python version", v)
	}
	return nil
}

func (p *Pyupgrade) args(file string) []string {
	var args []string

	if v, ok := p.cfg.String("min_version"); ok && strings.HasPrefix(v, "3.") {
		args = append(args, "--py"+strings.ReplaceAll(v, ".", "")+"-plus")
	}

	for _, flag := range pyupgradeBoolFlags {
		if b, ok := p.cfg.Bool(flag); ok && b {
			args = append(args, "--"+strings.ReplaceAll(flag, "_", "-"))
		}
	}

	return append(args, file)
}

// Run validates config first, then runs pyupgrade once per file. Any
// non-zero exit (pyupgrade exits 1 when it changed a file) makes the
// aggregate outcome Failure.
func (p *Pyupgrade) Run(ctx context.Context, deps *tool.Deps) (tool.Outcome, error) {
	if err := p.validateConfig(); err != nil {
		return "", err
	}

	w := captureWriter(deps, tool.Pyupgrade)
	if _, err := exec.LookPath("pyupgrade"); err != nil {
		return missingTool(w, "pyupgrade", "pip install pyupgrade"), nil
	}

	failed := false
	for _, sp := range p.srcPaths {
		info, err := os.Stat(sp)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		code, err := runCommand(ctx, w, "pyupgrade", p.args(sp)...)
		if err != nil {
			return "", err
		}
		if code != 0 {
			failed = true
		}
	}

	if failed {
		return tool.Failure, nil
	}
	return tool.Success, nil
}
