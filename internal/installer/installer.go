package installer

import (
	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/logger"
	"github.com/postinst/postinst/internal/registry"
	"github.com/postinst/postinst/internal/store"
	"github.com/postinst/postinst/internal/tasks"
)

// ScreenTarget identifies the installation screen the caller should hand
// control to after an install is triggered.
const ScreenTarget = "install"

// Redirect is the outbound signal returned when an install is triggered:
// transfer control to the installation screen. SelfUpdate marks an install
// that upgrades the tool itself.
type Redirect struct {
	Target     string
	SelfUpdate bool
}

// Installer drives the install state machine. The overall state is encoded
// entirely in the operation file and the task statuses:
//
//	Idle:       no operation record exists
//	RunningOne: record type "one", task names one descriptor
//	RunningAll: record type "all"
type Installer struct {
	registry *registry.Registry
	ops      *store.OperationFile
	lock     *store.FileLock

	// selfPackage is the tool's own package name, used to flag
	// self-referential installs on the redirect.
	selfPackage string
}

// New creates an installer over the given registry and operation file
func New(reg *registry.Registry, ops *store.OperationFile, lock *store.FileLock, selfPackage string) *Installer {
	return &Installer{
		registry:    reg,
		ops:         ops,
		lock:        lock,
		selfPackage: selfPackage,
	}
}

// Install triggers a single-task install: Idle -> RunningOne. Any prior
// operation record is overwritten unconditionally.
func (i *Installer) Install(task *tasks.Task) (*Redirect, error) {
	if err := i.lock.Acquire(); err != nil {
		return nil, err
	}
	defer i.lock.Release()

	if prior, err := i.ops.Read(); err == nil && prior != nil {
		logger.Warnf("overwriting in-flight %q operation", prior.Type)
	}

	rec := store.RecordOf(task)
	if err := i.ops.Write(&store.Operation{Type: store.OperationOne, Task: &rec}); err != nil {
		return nil, err
	}

	return &Redirect{
		Target:     ScreenTarget,
		SelfUpdate: task.Package.Name == i.selfPackage,
	}, nil
}

// InstallAll triggers an install of every remaining todo task:
// Idle -> RunningAll.
func (i *Installer) InstallAll() (*Redirect, error) {
	if err := i.lock.Acquire(); err != nil {
		return nil, err
	}
	defer i.lock.Release()

	if prior, err := i.ops.Read(); err == nil && prior != nil {
		logger.Warnf("overwriting in-flight %q operation", prior.Type)
	}

	if err := i.ops.Write(&store.Operation{Type: store.OperationAll}); err != nil {
		return nil, err
	}

	selfUpdate := false
	for _, t := range i.registry.Tasks() {
		if !t.Done() && t.Package.Name == i.selfPackage {
			selfUpdate = true
			break
		}
	}

	return &Redirect{Target: ScreenTarget, SelfUpdate: selfUpdate}, nil
}

// NextTask is a pure query: it returns the task the in-flight operation
// should run next, without changing state. In RunningOne that is the
// recorded task resolved against the current list (a record that no longer
// matches anything is a not-found error); in RunningAll the first todo task
// in load order. nil with no error means there is nothing to run.
func (i *Installer) NextTask() (*tasks.Task, error) {
	op, err := i.ops.Read()
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}

	switch op.Type {
	case store.OperationOne:
		t := i.registry.Find(*op.Task)
		if t == nil {
			return nil, errors.NewTaskNotFoundError(op.Task.Package, op.Task.Type, op.Task.Locator)
		}
		return t, nil
	case store.OperationAll:
		return i.registry.FirstTodo(), nil
	default:
		return nil, errors.NewNotReadableError(i.ops.Path, nil).
			WithContext("operation_type", string(op.Type))
	}
}

// Validate marks the current step of the in-flight operation as done and
// persists the result. Called while Idle it fails with a state error.
//
// RunningOne always returns to Idle, whether or not other todo tasks
// remain. RunningAll stays running until no todo task is left, so repeated
// NextTask/Validate pairs walk every remaining task in load order.
func (i *Installer) Validate() error {
	if err := i.lock.Acquire(); err != nil {
		return err
	}
	defer i.lock.Release()

	op, err := i.ops.Read()
	if err != nil {
		return err
	}
	if op == nil {
		return errors.NewNoOperationError()
	}

	switch op.Type {
	case store.OperationOne:
		t := i.registry.Find(*op.Task)
		if t == nil {
			return errors.NewTaskNotFoundError(op.Task.Package, op.Task.Type, op.Task.Locator)
		}
		t.Status = tasks.StatusDone
		if err := i.registry.Save(); err != nil {
			return err
		}
		return i.ops.Clear()

	case store.OperationAll:
		if t := i.registry.FirstTodo(); t != nil {
			t.Status = tasks.StatusDone
			if err := i.registry.Save(); err != nil {
				return err
			}
		}
		if i.registry.FirstTodo() != nil {
			// More to do: the record stays, so the next NextTask call
			// picks the next todo task.
			return nil
		}
		return i.ops.Clear()

	default:
		return errors.NewNotReadableError(i.ops.Path, nil).
			WithContext("operation_type", string(op.Type))
	}
}
