package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/manifest"
	"github.com/postinst/postinst/internal/store"
	"github.com/postinst/postinst/internal/tasks"
)

func testRegistry(t *testing.T) *Registry {
	dir := t.TempDir()
	return New(&store.StatusStore{
		GlobalPath: filepath.Join(dir, "postinst.status.yaml"),
		LocalPath:  filepath.Join(dir, "postinst.status.local.yaml"),
	})
}

func samplePackages() []manifest.Package {
	return []manifest.Package{
		{
			Name:    "acme/db",
			Version: "1.2.0",
			Extra: map[string]interface{}{
				"install": map[string]interface{}{
					"type": "file", "file": "setup.sql", "scope": "global",
				},
			},
		},
		{
			Name:    "acme/web",
			Version: "0.9.1",
			Extra: map[string]interface{}{
				"install": []interface{}{
					map[string]interface{}{"type": "url", "url": "https://example.com/register"},
					map[string]interface{}{"type": "class", "class": "SeedUsers", "scope": "local"},
				},
			},
		},
		{Name: "acme/plain", Version: "2.0.0"},
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	reg := testRegistry(t)
	require.NoError(t, reg.Load(samplePackages()))

	list := reg.Tasks()
	require.Len(t, list, 3)

	// Package order first, declaration order within a package
	assert.Equal(t, "setup.sql", list[0].Locator)
	assert.Equal(t, "acme/db", list[0].Package.Name)
	assert.Equal(t, "https://example.com/register", list[1].Locator)
	assert.Equal(t, "SeedUsers", list[2].Locator)

	for _, task := range list {
		assert.Equal(t, tasks.StatusTodo, task.Status)
	}
}

func TestLoadSingleMapIsOneTask(t *testing.T) {
	reg := testRegistry(t)
	require.NoError(t, reg.Load(samplePackages()[:1]))
	assert.Len(t, reg.Tasks(), 1)
}

func TestLoadBadMetadata(t *testing.T) {
	tests := []struct {
		name    string
		install interface{}
	}{
		{"scalar", "setup.sql"},
		{"list of scalars", []interface{}{"setup.sql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistry(t)
			pkgs := []manifest.Package{{
				Name:    "acme/bad",
				Version: "1.0.0",
				Extra:   map[string]interface{}{"install": tt.install},
			}}
			err := reg.Load(pkgs)
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), "acme/bad")
		})
	}
}

func TestLoadInvalidDeclaration(t *testing.T) {
	reg := testRegistry(t)
	pkgs := []manifest.Package{{
		Name:  "acme/bad",
		Extra: map[string]interface{}{"install": map[string]interface{}{"file": "setup.sql"}},
	}}
	err := reg.Load(pkgs)
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "acme/bad")
}

func TestSaveBeforeLoadIsNoOp(t *testing.T) {
	reg := testRegistry(t)
	assert.NoError(t, reg.Save())
	assert.False(t, reg.Loaded())
}

func TestSaveThenFreshLoadIsIdempotent(t *testing.T) {
	st := &store.StatusStore{
		GlobalPath: filepath.Join(t.TempDir(), "g.yaml"),
		LocalPath:  filepath.Join(t.TempDir(), "l.yaml"),
	}

	reg := New(st)
	require.NoError(t, reg.Load(samplePackages()))
	reg.Tasks()[1].Status = tasks.StatusDone
	require.NoError(t, reg.Save())

	// Fresh load from scratch: statuses must come back identical
	fresh := New(st)
	require.NoError(t, fresh.Load(samplePackages()))
	list := fresh.Tasks()
	assert.Equal(t, tasks.StatusTodo, list[0].Status)
	assert.Equal(t, tasks.StatusDone, list[1].Status)
	assert.Equal(t, tasks.StatusTodo, list[2].Status)

	// Saving again without changes keeps them stable
	require.NoError(t, fresh.Save())
	again := New(st)
	require.NoError(t, again.Load(samplePackages()))
	assert.Equal(t, tasks.StatusDone, again.Tasks()[1].Status)
}

func TestNeverSavedTaskLoadsAsTodo(t *testing.T) {
	st := &store.StatusStore{
		GlobalPath: filepath.Join(t.TempDir(), "g.yaml"),
		LocalPath:  filepath.Join(t.TempDir(), "l.yaml"),
	}

	reg := New(st)
	require.NoError(t, reg.Load(samplePackages()[:1]))
	reg.Tasks()[0].Status = tasks.StatusDone
	require.NoError(t, reg.Save())

	// A new package appears after the save; its task starts todo
	fresh := New(st)
	require.NoError(t, fresh.Load(samplePackages()))
	assert.Equal(t, tasks.StatusDone, fresh.Tasks()[0].Status)
	assert.Equal(t, tasks.StatusTodo, fresh.Tasks()[1].Status)
}

func TestFirstTodoAndCounts(t *testing.T) {
	reg := testRegistry(t)
	require.NoError(t, reg.Load(samplePackages()))

	first := reg.FirstTodo()
	require.NotNil(t, first)
	assert.Equal(t, "setup.sql", first.Locator)

	first.Status = tasks.StatusDone
	assert.Equal(t, "https://example.com/register", reg.FirstTodo().Locator)

	todo, done := reg.Counts()
	assert.Equal(t, 2, todo)
	assert.Equal(t, 1, done)

	for _, task := range reg.Tasks() {
		task.Status = tasks.StatusDone
	}
	assert.Nil(t, reg.FirstTodo())
}

func TestFind(t *testing.T) {
	reg := testRegistry(t)
	require.NoError(t, reg.Load(samplePackages()))

	rec := store.RecordOf(reg.Tasks()[2])
	found := reg.Find(rec)
	require.NotNil(t, found)
	assert.Same(t, reg.Tasks()[2], found)

	rec.Locator = "Gone"
	assert.Nil(t, reg.Find(rec))
}
