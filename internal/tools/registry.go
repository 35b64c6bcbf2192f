package tools

import "github.com/gkze/multilint/internal/tool"

// Registry maps every runnable tool to its adapter constructor. Built at
// startup; the orchestrator rejects execution plan entries missing from
// it. Multilint itself has no runner, only a config section.
var Registry = map[tool.Tool]tool.Constructor{
	tool.Autoflake:  NewAutoflake,
	tool.Black:      NewBlack,
	tool.ISort:      NewISort,
	tool.Mypy:       NewMypy,
	tool.Pydocstyle: NewPydocstyle,
	tool.Pylint:     NewPylint,
	tool.Pyupgrade:  NewPyupgrade,
}
