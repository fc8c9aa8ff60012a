package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postinst/postinst/internal/errors"
	"github.com/postinst/postinst/internal/tasks"
)

func testStore(t *testing.T) *StatusStore {
	dir := t.TempDir()
	return &StatusStore{
		GlobalPath: filepath.Join(dir, "postinst.status.yaml"),
		LocalPath:  filepath.Join(dir, "postinst.status.local.yaml"),
	}
}

func sampleTasks() []*tasks.Task {
	dbPkg := tasks.PackageRef{Name: "acme/db", Version: "1.2.0"}
	webPkg := tasks.PackageRef{Name: "acme/web", Version: "0.9.1"}
	return []*tasks.Task{
		{Type: tasks.TypeFile, Locator: "setup.sql", Scope: tasks.ScopeGlobal, Status: tasks.StatusTodo, Package: dbPkg},
		{Type: tasks.TypeURL, Locator: "https://example.com/register", Status: tasks.StatusDone, Package: webPkg},
		{Type: tasks.TypeClass, Locator: "SeedUsers", Scope: tasks.ScopeLocal, Status: tasks.StatusTodo, Package: webPkg},
	}
}

func TestSavePartitionsByScope(t *testing.T) {
	st := testStore(t)
	require.NoError(t, st.Save(sampleTasks()))

	global, err := os.ReadFile(st.GlobalPath)
	require.NoError(t, err)
	local, err := os.ReadFile(st.LocalPath)
	require.NoError(t, err)

	// Empty scope lands in the global file alongside explicit global
	assert.Contains(t, string(global), "setup.sql")
	assert.Contains(t, string(global), "https://example.com/register")
	assert.NotContains(t, string(global), "SeedUsers")
	assert.Contains(t, string(local), "SeedUsers")
}

func TestSaveWritesGuidanceHeaders(t *testing.T) {
	st := testStore(t)
	require.NoError(t, st.Save(sampleTasks()))

	global, _ := os.ReadFile(st.GlobalPath)
	local, _ := os.ReadFile(st.LocalPath)

	assert.True(t, strings.HasPrefix(string(global), "# Auto-generated"))
	assert.Contains(t, string(global), "SHOULD be committed")
	assert.Contains(t, string(local), "should NOT be")
}

func TestSaveUnknownScope(t *testing.T) {
	st := testStore(t)
	list := []*tasks.Task{
		{Type: tasks.TypeFile, Locator: "x", Scope: "shared", Status: tasks.StatusTodo,
			Package: tasks.PackageRef{Name: "acme/db"}},
	}
	err := st.Save(list)
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "shared")
}

func TestApplyRoundTrip(t *testing.T) {
	st := testStore(t)
	require.NoError(t, st.Save(sampleTasks()))

	// A freshly rebuilt list starts all-todo; Apply restores the statuses
	fresh := sampleTasks()
	for _, task := range fresh {
		task.Status = tasks.StatusTodo
	}
	require.NoError(t, st.Apply(fresh))

	assert.Equal(t, tasks.StatusTodo, fresh[0].Status)
	assert.Equal(t, tasks.StatusDone, fresh[1].Status)
	assert.Equal(t, tasks.StatusTodo, fresh[2].Status)
}

func TestApplyMissingFilesIsSilent(t *testing.T) {
	st := testStore(t)
	list := sampleTasks()
	require.NoError(t, st.Apply(list))
	assert.Equal(t, tasks.StatusTodo, list[0].Status)
}

func TestApplyLocalOverridesGlobal(t *testing.T) {
	st := testStore(t)
	task := &tasks.Task{
		Type: tasks.TypeFile, Locator: "setup.sql", Status: tasks.StatusTodo,
		Package: tasks.PackageRef{Name: "acme/db", Version: "1.2.0"},
	}

	globalRec := RecordOf(task)
	globalRec.Status = "todo"
	localRec := RecordOf(task)
	localRec.Status = "done"

	require.NoError(t, writeRecords(st.GlobalPath, globalHeader, []Record{globalRec}))
	require.NoError(t, writeRecords(st.LocalPath, localHeader, []Record{localRec}))

	require.NoError(t, st.Apply([]*tasks.Task{task}))
	assert.Equal(t, tasks.StatusDone, task.Status)
}

func TestApplyMarksEveryStructuralMatch(t *testing.T) {
	st := testStore(t)
	pkg := tasks.PackageRef{Name: "acme/db", Version: "1.2.0"}
	a := &tasks.Task{Type: tasks.TypeFile, Locator: "setup.sql", Status: tasks.StatusTodo, Package: pkg}
	b := &tasks.Task{Type: tasks.TypeFile, Locator: "setup.sql", Status: tasks.StatusTodo, Package: pkg}

	rec := RecordOf(a)
	rec.Status = "done"
	require.NoError(t, writeRecords(st.GlobalPath, globalHeader, []Record{rec}))

	require.NoError(t, st.Apply([]*tasks.Task{a, b}))
	assert.Equal(t, tasks.StatusDone, a.Status)
	assert.Equal(t, tasks.StatusDone, b.Status)
}

func TestEnsureWritableCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "status.yaml")
	require.NoError(t, ensureWritable(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureWritableFailsOnUncreatableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// blocker is a file, so a directory cannot be created beneath it
	err := ensureWritable(filepath.Join(blocker, "status.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

func TestRecordMatchesScopeDefault(t *testing.T) {
	task := &tasks.Task{
		Type: tasks.TypeFile, Locator: "setup.sql", Scope: tasks.ScopeGlobal,
		Package: tasks.PackageRef{Name: "acme/db"},
	}
	rec := Record{Package: "acme/db", Type: "file", Locator: "setup.sql", Scope: "", Status: "done"}
	assert.True(t, rec.Matches(task))
}
