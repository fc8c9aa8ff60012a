package store

import (
	"os"
	"path/filepath"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/logger"
	"github.com/postinst/postinst/internal/tasks"
)

// Record is the flattened, serialized form of a task in a status file
type Record struct {
	Package     string `yaml:"package" json:"package"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Type        string `yaml:"type" json:"type"`
	Locator     string `yaml:"locator" json:"locator"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Scope       string `yaml:"scope,omitempty" json:"scope,omitempty"`
	Status      string `yaml:"status" json:"status"`
}

// RecordOf flattens a task into its persisted form
func RecordOf(t *tasks.Task) Record {
	return Record{
		Package:     t.Package.Name,
		Version:     t.Package.Version,
		Type:        string(t.Type),
		Locator:     t.Locator,
		Description: t.Description,
		Scope:       string(t.Scope),
		Status:      string(t.Status),
	}
}

// Matches reports whether the record refers to the given task: same owning
// package plus the same declared type, locator and scope. An empty scope
// counts as global on both sides.
func (r Record) Matches(t *tasks.Task) bool {
	scope := tasks.Scope(r.Scope)
	if scope == "" {
		scope = tasks.ScopeGlobal
	}
	return r.Package == t.Package.Name &&
		r.Version == t.Package.Version &&
		tasks.Type(r.Type) == t.Type &&
		r.Locator == t.Locator &&
		scope == t.EffectiveScope()
}

const globalHeader = `# Auto-generated by postinst. Do not edit by hand.
# Shared install task status. This file SHOULD be committed to
# version control so that task completion is visible to the team.
`

const localHeader = `# Auto-generated by postinst. Do not edit by hand.
# Machine-specific install task status. This file should NOT be
# committed to version control.
`

// StatusStore persists task status across runs in two files: a global one
// meant to be committed and a local, machine-specific one.
type StatusStore struct {
	GlobalPath string
	LocalPath  string
}

// Apply reads both status files (global first, local second so it can
// override) and copies the persisted status onto every structurally
// matching task. A missing status file is silently skipped: first run.
func (s *StatusStore) Apply(list []*tasks.Task) error {
	for _, path := range []string{s.GlobalPath, s.LocalPath} {
		records, err := readRecords(path)
		if err != nil {
			return err
		}
		for _, rec := range records {
			for _, t := range list {
				if rec.Matches(t) {
					t.Status = tasks.Status(rec.Status)
				}
			}
		}
	}
	return nil
}

// Save partitions the tasks by scope and atomically rewrites both status
// files wholesale. A scope other than global, local or empty is a
// configuration error.
func (s *StatusStore) Save(list []*tasks.Task) error {
	var global, local []Record
	for _, t := range list {
		switch t.Scope {
		case "", tasks.ScopeGlobal:
			global = append(global, RecordOf(t))
		case tasks.ScopeLocal:
			local = append(local, RecordOf(t))
		default:
			return errors.NewUnknownScopeError(t.Package.String(), string(t.Scope))
		}
	}

	if err := writeRecords(s.GlobalPath, globalHeader, global); err != nil {
		return err
	}
	return writeRecords(s.LocalPath, localHeader, local)
}

func readRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewNotReadableError(path, err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.NewNotReadableError(path, err)
	}
	return records, nil
}

func writeRecords(path, header string, records []Record) error {
	if err := ensureWritable(path); err != nil {
		return err
	}

	if records == nil {
		records = []Record{}
	}
	body, err := yaml.Marshal(records)
	if err != nil {
		return errors.NewNotWritableError(path, err)
	}

	// Write to a sibling temp file and rename into place so readers never
	// observe a half-written status file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append([]byte(header), body...), 0o644); err != nil {
		return errors.NewNotWritableError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.NewNotWritableError(path, err)
	}

	logger.Debugf("wrote %d record(s) to %s", len(records), path)
	return nil
}

// ensureWritable checks ahead of a write that the target file is writable,
// creating its directory recursively if the file does not exist yet.
func ensureWritable(path string) error {
	if _, err := os.Stat(path); err == nil {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return errors.NewNotWritableError(path, err)
		}
		f.Close()
		return nil
	}

	dir := filepath.Dir(path)
	// MkdirAll with the most permissive mode; the saved umask governs the
	// actual bits, restored right after.
	oldMask := syscall.Umask(0)
	err := os.MkdirAll(dir, 0o777)
	syscall.Umask(oldMask)
	if err != nil {
		return errors.NewNotCreatableError(path, err)
	}

	probe, err := os.CreateTemp(dir, ".postinst-probe-*")
	if err != nil {
		return errors.NewNotCreatableError(path, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
