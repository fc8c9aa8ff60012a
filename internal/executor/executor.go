package executor

import (
	"context"

	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/tasks"
)

// Executor performs the actual effect of one task type. The core state
// machine only needs the task's type and locator to pick the strategy;
// everything else is the executor's business.
type Executor interface {
	// Type returns the task type this executor handles
	Type() tasks.Type

	// Execute performs the task's work
	Execute(ctx context.Context, task *tasks.Task) error
}

// Registry dispatches tasks to the executor registered for their type
type Registry struct {
	executors map[tasks.Type]Executor
}

// NewRegistry creates a registry over the given executors
func NewRegistry(execs ...Executor) *Registry {
	r := &Registry{executors: make(map[tasks.Type]Executor)}
	for _, e := range execs {
		r.executors[e.Type()] = e
	}
	return r
}

// Execute runs the task through the executor for its type
func (r *Registry) Execute(ctx context.Context, task *tasks.Task) error {
	exec, ok := r.executors[task.Type]
	if !ok {
		return errors.NewUnknownTypeError(task.Package.String(), string(task.Type))
	}
	return exec.Execute(ctx, task)
}
