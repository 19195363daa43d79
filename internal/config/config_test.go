package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/internal/notebook"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "mapping.json", cfg.Migrate.MappingPath)
	assert.Equal(t, ".bak", cfg.Migrate.BackupSuffix)
	assert.Equal(t, "hrid", cfg.Migrate.ReservedPrefix)
	assert.Equal(t, "converted", cfg.Convert.OutputDir)
	assert.Equal(t, "default", cfg.Convert.Namespace)
	assert.Equal(t, notebook.DefaultOptions(), cfg.NotebookOptions())
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	content := "migrate:\n  mapping_path: renames.yaml\n  notebook_version: \"2.0\"\nconvert:\n  namespace: legacy\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "renames.yaml", cfg.Migrate.MappingPath)
	assert.Equal(t, "2.0", cfg.Migrate.NotebookVersion)
	assert.Equal(t, "1.0", cfg.Migrate.SchemaVersion)
	assert.Equal(t, "legacy", cfg.Convert.Namespace)
	assert.Equal(t, "converted", cfg.Convert.OutputDir)

	assert.Equal(t, "legacy", cfg.GeneratorConfig().Namespace)
	assert.Equal(t, "renames.yaml", cfg.NotebookOptions().TablePath)
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("convert:\n  output_dir: out\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Convert.OutputDir)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_Environment(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("SCHEMA_MIGRATOR_MIGRATE_RESERVED_PREFIX", "keep")
	t.Setenv("SCHEMA_MIGRATOR_CONVERT_OUTPUT_DIR", "ts")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "keep", cfg.Migrate.ReservedPrefix)
	assert.Equal(t, "ts", cfg.Convert.OutputDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "empty mapping path", mutate: func(c *Config) { c.Migrate.MappingPath = "" }, wantErr: "mapping_path"},
		{name: "empty backup suffix", mutate: func(c *Config) { c.Migrate.BackupSuffix = "" }, wantErr: "backup_suffix"},
		{name: "empty output dir", mutate: func(c *Config) { c.Convert.OutputDir = "" }, wantErr: "output_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+): it changes the working
// directory and restores the original one when the test finishes.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
