package registry

import (
	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/logger"
	"github.com/postinst/postinst/internal/manifest"
	"github.com/postinst/postinst/internal/store"
	"github.com/postinst/postinst/internal/tasks"
)

// Registry holds the ordered in-memory list of install tasks. The list is
// rebuilt from package metadata and the status files on every Load; there
// is no object identity across runs.
type Registry struct {
	store  *store.StatusStore
	tasks  []*tasks.Task
	loaded bool
}

// New creates a registry backed by the given status store
func New(st *store.StatusStore) *Registry {
	return &Registry{store: st}
}

// Load walks the dependency-ordered package list, extracts every declared
// install task (package order, then declaration order) and merges in the
// persisted status from the status files. The resulting order is the
// execution order: dependencies' tasks run before dependents' tasks.
func (r *Registry) Load(packages []manifest.Package) error {
	var list []*tasks.Task

	for _, pkg := range packages {
		raw, ok := pkg.InstallMeta()
		if !ok {
			continue
		}

		steps, err := normalizeSteps(pkg, raw)
		if err != nil {
			return err
		}

		ref := tasks.PackageRef{Name: pkg.Name, Version: pkg.Version}
		for _, step := range steps {
			t, err := tasks.New(ref, step)
			if err != nil {
				return err
			}
			list = append(list, t)
		}
	}

	if err := r.store.Apply(list); err != nil {
		return err
	}

	r.tasks = list
	r.loaded = true
	logger.Debugf("loaded %d install task(s) from %d package(s)", len(list), len(packages))
	return nil
}

// normalizeSteps accepts the two declared shapes: a single task map, or a
// list of task maps. Anything else is a configuration error naming the
// offending package.
func normalizeSteps(pkg manifest.Package, raw interface{}) ([]map[string]interface{}, error) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{v}, nil
	case []interface{}:
		steps := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			step, ok := item.(map[string]interface{})
			if !ok {
				return nil, errors.NewBadMetadataError(pkg.DisplayName())
			}
			steps = append(steps, step)
		}
		return steps, nil
	default:
		return nil, errors.NewBadMetadataError(pkg.DisplayName())
	}
}

// Tasks returns the ordered task list
func (r *Registry) Tasks() []*tasks.Task {
	return r.tasks
}

// Loaded reports whether Load has completed at least once
func (r *Registry) Loaded() bool {
	return r.loaded
}

// Save persists the current statuses. It is a no-op when the registry was
// never loaded, so a save cannot wipe the status files with an empty list.
func (r *Registry) Save() error {
	if !r.loaded {
		return nil
	}
	return r.store.Save(r.tasks)
}

// FirstTodo returns the first task in load order whose status is todo,
// or nil when everything is done.
func (r *Registry) FirstTodo() *tasks.Task {
	for _, t := range r.tasks {
		if !t.Done() {
			return t
		}
	}
	return nil
}

// Find returns the first task structurally matching the given record,
// or nil when none matches.
func (r *Registry) Find(rec store.Record) *tasks.Task {
	for _, t := range r.tasks {
		if rec.Matches(t) {
			return t
		}
	}
	return nil
}

// Counts returns the number of todo and done tasks
func (r *Registry) Counts() (todo, done int) {
	for _, t := range r.tasks {
		if t.Done() {
			done++
		} else {
			todo++
		}
	}
	return todo, done
}
