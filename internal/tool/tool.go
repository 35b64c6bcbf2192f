// Package tool defines the identities, outcomes, and execution contract
// shared by every code quality tool multilint can run.
package tool

import "fmt"

// Tool identifies one supported code quality tool. Multilint itself is a
// member so its own settings live under the same config section layout.
type Tool string

const (
	Autoflake  Tool = "autoflake"
	Black      Tool = "black"
	ISort      Tool = "isort"
	Multilint  Tool = "multilint"
	Mypy       Tool = "mypy"
	Pydocstyle Tool = "pydocstyle"
	Pylint     Tool = "pylint"
	Pyupgrade  Tool = "pyupgrade"
)

// All returns every known tool identity in stable order.
func All() []Tool {
	return []Tool{Autoflake, Black, ISort, Multilint, Mypy, Pydocstyle, Pylint, Pyupgrade}
}

// Parse validates a tool name against the closed set of known tools.
func Parse(name string) (Tool, error) {
	for _, t := range All() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q", name)
}

// Outcome is the result of one tool invocation.
type Outcome string

const (
	// Success means the tool reported no problems.
	Success Outcome = "success"

	// PartialSuccess means a proper subset of the evaluated files failed.
	// Only tools that evaluate files independently can produce it.
	PartialSuccess Outcome = "partial success"

	// Failure means the tool reported problems for all of its input.
	Failure Outcome = "failure"
)
