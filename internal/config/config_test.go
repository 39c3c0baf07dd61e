package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "raw_data", cfg.Paths.RawDataDir)
	assert.Equal(t, "public", cfg.Paths.OutputDir)
	assert.Equal(t, "metadata.json", cfg.Paths.MetadataFile)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, DefaultSources(), cfg.Pipeline.Sources)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  format: json
paths:
  raw_data_dir: data/raw
  output_dir: data/out
pipeline:
  workers: 2
  sources:
    - name: uk90
      directory: uk90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data/raw", cfg.Paths.RawDataDir)
	assert.Equal(t, "data/out", cfg.Paths.OutputDir)
	assert.Equal(t, 2, cfg.Pipeline.Workers)
	require.Len(t, cfg.Pipeline.Sources, 1)
	assert.Equal(t, "uk90", cfg.Pipeline.Sources[0].Name)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GROWTHREF_LOGGING_LEVEL", "warn")
	t.Setenv("GROWTHREF_PIPELINE_WORKERS", "8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Pipeline.Workers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"negative workers", "pipeline:\n  workers: -1\n"},
		{"source without name", "pipeline:\n  sources:\n    - directory: uk90\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultSourcesRegistry(t *testing.T) {
	sources := DefaultSources()
	byName := map[string]string{}
	for _, s := range sources {
		byName[s.Name] = s.Directory
	}
	assert.Equal(t, "cdc2000", byName["cdc2000"])
	assert.Equal(t, "trisomy21/AAP", byName["trisomy21_aap"])
	assert.Equal(t, "trisomy21/UKReference", byName["trisomy21_uk"])
	assert.Len(t, sources, 9)
}
