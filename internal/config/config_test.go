package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")

	contents := `
pgDsn: postgres://localhost:5432/liarspoker
debugSolo: true
log:
  level: debug
`
	assert.NoError(t, os.WriteFile(configFile, []byte(contents), 0644))
	t.Setenv("LP_CONFIG_FILE", configFile)

	assert.NoError(t, Load())
	c := Instance()
	assert.Equal(t, "postgres://localhost:5432/liarspoker", c.PGDSN)
	assert.True(t, c.DebugSolo)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "./sql", c.MigrationsPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LP_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LP_PG_DSN", "postgres://elsewhere:5432/liarspoker")

	assert.NoError(t, Load())
	assert.Equal(t, "postgres://elsewhere:5432/liarspoker", Instance().PGDSN)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LP_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, Load())
	c := Instance()
	assert.Equal(t, "", c.PGDSN)
	assert.False(t, c.DebugSolo)
	assert.Equal(t, "info", c.Log.Level)
}
