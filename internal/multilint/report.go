package multilint

import "github.com/gkze/multilint/internal/tool"

// Report records exactly one outcome per tool actually run, in execution
// order. It is immutable once returned by RunAll.
type Report struct {
	order    []tool.Tool
	outcomes map[tool.Tool]tool.Outcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{outcomes: make(map[tool.Tool]tool.Outcome)}
}

func (r *Report) add(t tool.Tool, o tool.Outcome) {
	if _, ok := r.outcomes[t]; !ok {
		r.order = append(r.order, t)
	}
	r.outcomes[t] = o
}

// Tools returns the executed tools in run order.
func (r *Report) Tools() []tool.Tool {
	return append([]tool.Tool(nil), r.order...)
}

// Outcome returns the recorded outcome for t.
func (r *Report) Outcome(t tool.Tool) (tool.Outcome, bool) {
	o, ok := r.outcomes[t]
	return o, ok
}

// Len returns the number of tools recorded.
func (r *Report) Len() int { return len(r.order) }

// Success reports whether every tool succeeded outright. Any failure or
// partial success makes the whole run non-successful.
func (r *Report) Success() bool {
	for _, o := range r.outcomes {
		if o != tool.Success {
			return false
		}
	}
	return true
}

// Failed returns the tools whose outcome was not Success, in run order.
func (r *Report) Failed() []tool.Tool {
	var failed []tool.Tool
	for _, t := range r.order {
		if r.outcomes[t] != tool.Success {
			failed = append(failed, t)
		}
	}
	return failed
}
