package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/postinst/postinst/internal/config"
	"github.com/postinst/postinst/internal/executor"
	"github.com/postinst/postinst/internal/installer"
	"github.com/postinst/postinst/internal/manifest"
	"github.com/postinst/postinst/internal/registry"
	"github.com/postinst/postinst/internal/store"
	"github.com/postinst/postinst/internal/tasks"
)

// components bundles everything a command needs after loading
type components struct {
	cfg       *config.Config
	registry  *registry.Registry
	installer *installer.Installer
	ops       *store.OperationFile
}

// loadComponents builds the registry and installer from configuration and
// loads the current task list.
func loadComponents() (*components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	st := &store.StatusStore{
		GlobalPath: cfg.Status.Global,
		LocalPath:  cfg.Status.Local,
	}
	reg := registry.New(st)
	if err := reg.Load(m.Packages); err != nil {
		return nil, err
	}

	ops := &store.OperationFile{Path: cfg.Operation}
	lock := &store.FileLock{Path: cfg.LockFile}
	inst := installer.New(reg, ops, lock, cfg.SelfPackage)

	return &components{
		cfg:       cfg,
		registry:  reg,
		installer: inst,
		ops:       ops,
	}, nil
}

// resolveTaskNumber maps a 1-based task number from 'list' onto the task
// list, with a dedicated message when no tasks are declared at all.
func resolveTaskNumber(arg string, list []*tasks.Task) (*tasks.Task, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("no install tasks declared")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(list) {
		return nil, fmt.Errorf("invalid task number %q, expected 1-%d", arg, len(list))
	}
	return list[n-1], nil
}

// newExecutorRegistry wires the built-in task executors from configuration
func newExecutorRegistry(cfg *config.Config) *executor.Registry {
	return executor.NewRegistry(
		&executor.FileExecutor{
			SourceDir: cfg.Executors.FileSourceDir,
			TargetDir: cfg.Executors.FileTargetDir,
		},
		&executor.URLExecutor{
			Client: &http.Client{Timeout: cfg.Executors.URLTimeout()},
		},
		executor.NewClassExecutor(),
	)
}
