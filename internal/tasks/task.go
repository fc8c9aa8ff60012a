package tasks

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/validation"
)

// Type selects the executor strategy for a task
type Type string

const (
	TypeFile  Type = "file"
	TypeURL   Type = "url"
	TypeClass Type = "class"
)

// Scope determines which status file a task's status is persisted to
type Scope string

const (
	// ScopeGlobal status is shared and meant to be committed
	ScopeGlobal Scope = "global"
	// ScopeLocal status is machine-specific and must not be committed
	ScopeLocal Scope = "local"
)

// Status of a task
type Status string

const (
	StatusTodo Status = "todo"
	StatusDone Status = "done"
)

// PackageRef identifies the package that declared a task
type PackageRef struct {
	Name    string
	Version string
}

func (r PackageRef) String() string {
	if r.Version == "" {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Version)
}

// Task is one declared unit of post-install work. Tasks carry no logic;
// they are rebuilt from package metadata and the status files on every
// load, so identity is structural (see Matches), never object identity.
type Task struct {
	Type        Type
	Locator     string
	Description string
	Scope       Scope
	Status      Status
	Package     PackageRef
}

// New builds a task from one install declaration of the given package.
// Each type variant requires its own locator field; a missing type,
// missing locator or unknown type is a configuration error naming the
// owning package, because a task that cannot be understood must not be
// silently dropped.
func New(pkg PackageRef, fields map[string]interface{}) (*Task, error) {
	rawType, ok := fields["type"]
	if !ok || cast.ToString(rawType) == "" {
		return nil, errors.NewMissingTypeError(pkg.String())
	}
	taskType := cast.ToString(rawType)

	locatorField, known := validation.LocatorField(taskType)
	if !known {
		return nil, errors.NewUnknownTypeError(pkg.String(), taskType)
	}

	locator := cast.ToString(fields[locatorField])
	if locator == "" {
		return nil, errors.NewMissingLocatorError(pkg.String(), taskType, locatorField)
	}

	return &Task{
		Type:        Type(taskType),
		Locator:     locator,
		Description: cast.ToString(fields["description"]),
		Scope:       Scope(cast.ToString(fields["scope"])),
		Status:      StatusTodo,
		Package:     pkg,
	}, nil
}

// EffectiveScope resolves an empty scope to global
func (t *Task) EffectiveScope() Scope {
	if t.Scope == "" {
		return ScopeGlobal
	}
	return t.Scope
}

// Done reports whether the task has been completed
func (t *Task) Done() bool {
	return t.Status == StatusDone
}

// Matches reports whether other refers to the same declared task:
// same owning package plus the same declared type, locator and scope.
func (t *Task) Matches(other *Task) bool {
	return t.Package == other.Package &&
		t.Type == other.Type &&
		t.Locator == other.Locator &&
		t.EffectiveScope() == other.EffectiveScope()
}

func (t *Task) String() string {
	return fmt.Sprintf("%s '%s' from %s", t.Type, t.Locator, t.Package)
}
