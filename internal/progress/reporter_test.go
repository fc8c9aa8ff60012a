package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postinst/postinst/internal/store"
	"github.com/postinst/postinst/internal/tasks"
)

func TestSummarize(t *testing.T) {
	list := []*tasks.Task{
		{Status: tasks.StatusDone},
		{Status: tasks.StatusTodo},
		{Status: tasks.StatusTodo, Scope: tasks.ScopeLocal},
	}

	s := Summarize(list, &store.Operation{Type: store.OperationAll})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Done)
	assert.Equal(t, 2, s.Todo)
	assert.Equal(t, 1, s.GlobalTodo)
	assert.Equal(t, 1, s.LocalTodo)
	assert.Equal(t, "all", s.Operation)
}

func TestRender(t *testing.T) {
	s := Summary{Total: 2, Done: 2}
	out := s.Render()
	assert.Contains(t, out, "2 total, 2 done, 0 to do")
	assert.Contains(t, out, "No install operation in progress")

	s = Summary{Total: 2, Done: 1, Todo: 1, GlobalTodo: 1, Operation: "one"}
	out = s.Render()
	assert.Contains(t, out, "pending by scope: 1 global, 0 local")
	assert.Contains(t, out, "Single-task install in progress")
}
