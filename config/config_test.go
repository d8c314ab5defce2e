package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// matching the behavior of (*testing.T).Chdir from Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.False(t, cfg.SerializeWriters)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JSONDB_DATA_DIR", "/tmp/dbs")
	t.Setenv("JSONDB_SERIALIZE_WRITERS", "true")
	t.Setenv("JSONDB_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/dbs", cfg.DataDir)
	assert.True(t, cfg.SerializeWriters)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsondb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: custom\nserialize_writers: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.DataDir)
	assert.True(t, cfg.SerializeWriters)
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FindsConfigFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jsondb.yaml"), []byte("data_dir: from_cwd\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from_cwd", cfg.DataDir)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsondb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: from_file\n"), 0o644))
	t.Setenv("JSONDB_DATA_DIR", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.DataDir)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}
