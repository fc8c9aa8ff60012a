package progress

import (
	"fmt"
	"strings"

	"github.com/postinst/postinst/internal/store"
	"github.com/postinst/postinst/internal/tasks"
)

// Summary is a point-in-time view of install progress
type Summary struct {
	Total      int
	Done       int
	Todo       int
	GlobalTodo int
	LocalTodo  int
	// Operation is the in-flight operation type, or "" when idle
	Operation string
}

// Summarize builds a summary from the task list and the current operation
func Summarize(list []*tasks.Task, op *store.Operation) Summary {
	s := Summary{Total: len(list)}
	for _, t := range list {
		if t.Done() {
			s.Done++
			continue
		}
		s.Todo++
		if t.EffectiveScope() == tasks.ScopeLocal {
			s.LocalTodo++
		} else {
			s.GlobalTodo++
		}
	}
	if op != nil {
		s.Operation = string(op.Type)
	}
	return s
}

// Render formats the summary for CLI output
func (s Summary) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Install tasks: %d total, %d done, %d to do\n", s.Total, s.Done, s.Todo)
	if s.Todo > 0 {
		fmt.Fprintf(&sb, "  pending by scope: %d global, %d local\n", s.GlobalTodo, s.LocalTodo)
	}
	switch s.Operation {
	case "":
		sb.WriteString("No install operation in progress\n")
	case "one":
		sb.WriteString("Single-task install in progress\n")
	case "all":
		sb.WriteString("Install-all operation in progress\n")
	}
	return sb.String()
}
