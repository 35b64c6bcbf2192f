// Package multilint sequences code quality tools over a shared set of
// source paths and aggregates their outcomes into a single run report.
package multilint

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gkze/multilint/internal/config"
	"github.com/gkze/multilint/internal/tool"
)

// DefaultToolOrder runs tools that rewrite source before tools that only
// report on it, so the checkers see the final, already-normalized files.
var DefaultToolOrder = []tool.Tool{
	tool.Pyupgrade,
	tool.Autoflake,
	tool.ISort,
	tool.Black,
	tool.Mypy,
	tool.Pylint,
	tool.Pydocstyle,
}

// Keys the orchestrator recognizes on its own config section. All other
// keys, on any section, pass through to the tool adapters untouched.
const (
	srcPathsKey  = "src_paths"
	toolOrderKey = "tool_order"
)

// Multilint drives one run: it owns the plugin registry, the effective
// source paths, and the execution order.
type Multilint struct {
	cfg      *config.File
	registry map[tool.Tool]tool.Constructor
	srcPaths []string
	order    []tool.Tool
	log      *slog.Logger
}

// New resolves configuration for a run. srcPaths, when non-empty,
// override the configured src_paths; startDir anchors the upward search
// for the config file. An absent or malformed config file is fatal here,
// as is an unknown tool name in tool_order.
func New(srcPaths []string, startDir string, registry map[tool.Tool]tool.Constructor, log *slog.Logger) (*Multilint, error) {
	cfg, err := config.Load(startDir)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	own := cfg.Tool(tool.Multilint)

	paths := srcPaths
	if len(paths) == 0 {
		paths = own.Strings(srcPathsKey)
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}
	paths, err = ExpandGlobs(paths)
	if err != nil {
		return nil, err
	}

	order := DefaultToolOrder
	if names := own.Strings(toolOrderKey); len(names) > 0 {
		order = make([]tool.Tool, 0, len(names))
		for _, name := range names {
			t, err := tool.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", toolOrderKey, err)
			}
			order = append(order, t)
		}
	}

	return &Multilint{
		cfg:      cfg,
		registry: registry,
		srcPaths: paths,
		order:    order,
		log:      log,
	}, nil
}

// ConfigPath returns the location of the resolved config file.
func (m *Multilint) ConfigPath() string { return m.cfg.Path() }

// SrcPaths returns the effective source paths for the run.
func (m *Multilint) SrcPaths() []string {
	return append([]string(nil), m.srcPaths...)
}

// ToolOrder returns the execution plan in effect.
func (m *Multilint) ToolOrder() []tool.Tool {
	return append([]tool.Tool(nil), m.order...)
}

// RunTool runs a single tool and returns its outcome. The tool's own
// configured src_paths, when present, replace the run-level set.
func (m *Multilint) RunTool(ctx context.Context, t tool.Tool) (tool.Outcome, error) {
	construct, ok := m.registry[t]
	if !ok {
		return "", fmt.Errorf("no runner registered for tool %q", t)
	}

	cfg := m.cfg.Tool(t)
	paths := m.srcPaths
	if own := cfg.Strings(srcPathsKey); len(own) > 0 {
		var err error
		paths, err = ExpandGlobs(own)
		if err != nil {
			return "", err
		}
	}

	m.log.Info("running tool", "tool", t)

	outcome, err := construct(paths, cfg).Run(ctx, &tool.Deps{Log: m.log})
	if err != nil {
		return "", fmt.Errorf("%s: %w", t, err)
	}

	m.log.Info("tool finished", "tool", t, "outcome", outcome)

	return outcome, nil
}

// RunAll runs each tool in order, strictly sequentially, accumulating a
// report. A tool failing does not stop the run; a configuration error or
// unexpected fault does. An order entry with no registered runner aborts
// before any tool executes. A nil order means the resolved plan.
func (m *Multilint) RunAll(ctx context.Context, order []tool.Tool) (*Report, error) {
	if len(order) == 0 {
		order = m.order
	}

	for _, t := range order {
		if _, ok := m.registry[t]; !ok {
			return nil, fmt.Errorf("no runner registered for tool %q", t)
		}
	}

	report := NewReport()
	for _, t := range order {
		outcome, err := m.RunTool(ctx, t)
		if err != nil {
			return nil, err
		}
		report.add(t, outcome)
	}

	return report, nil
}

// ExpandGlobs replaces glob-bearing path entries with their matches.
// Literal paths pass through unchanged, matched or not.
func ExpandGlobs(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[") {
			out = append(out, p)
			continue
		}

		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", p, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}
