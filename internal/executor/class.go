package executor

import (
	"context"

	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/tasks"
)

// HandlerFunc is a named install handler invoked for "class" tasks
type HandlerFunc func(ctx context.Context, task *tasks.Task) error

// ClassExecutor dispatches "class" tasks to handlers registered under the
// task's locator name.
type ClassExecutor struct {
	handlers map[string]HandlerFunc
}

// NewClassExecutor creates an executor with no handlers registered
func NewClassExecutor() *ClassExecutor {
	return &ClassExecutor{handlers: make(map[string]HandlerFunc)}
}

// Register binds a handler name to a function
func (e *ClassExecutor) Register(name string, fn HandlerFunc) {
	e.handlers[name] = fn
}

func (e *ClassExecutor) Type() tasks.Type {
	return tasks.TypeClass
}

func (e *ClassExecutor) Execute(ctx context.Context, task *tasks.Task) error {
	fn, ok := e.handlers[task.Locator]
	if !ok {
		return errors.NewInstallError(errors.ErrorCategoryNotFound, errors.CodeNotFoundHandler,
			"No install handler registered under '"+task.Locator+"'",
			"Install task execution").
			WithContext("package", task.Package.String()).
			WithContext("handler", task.Locator).
			WithTroubleshooting(
				"Register the handler before running installs",
			)
	}
	return fn(ctx, task)
}
