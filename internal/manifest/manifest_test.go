package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `packages:
  - name: acme/db
    version: 1.2.0
    extra:
      install:
        type: file
        file: setup.sql
        scope: global
  - name: acme/web
    version: 0.9.1
    extra:
      install:
        - type: url
          url: https://example.com/register
        - type: class
          class: SeedUsers
          scope: local
  - name: acme/plain
    version: 2.0.0
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postinst.lock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Packages, 3)

	// Order is the package manager's dependency order and must survive parsing
	assert.Equal(t, "acme/db", m.Packages[0].Name)
	assert.Equal(t, "acme/web", m.Packages[1].Name)
	assert.Equal(t, "acme/plain", m.Packages[2].Name)

	raw, ok := m.Packages[0].InstallMeta()
	require.True(t, ok)
	step, ok := raw.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "file", step["type"])

	raw, ok = m.Packages[1].InstallMeta()
	require.True(t, ok)
	steps, ok := raw.([]interface{})
	require.True(t, ok)
	assert.Len(t, steps, 2)

	_, ok = m.Packages[2].InstallMeta()
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "acme/db (1.2.0)", Package{Name: "acme/db", Version: "1.2.0"}.DisplayName())
	assert.Equal(t, "acme/db", Package{Name: "acme/db"}.DisplayName())
}
