// Package config loads and validates pipeline configuration from an
// optional YAML file plus GROWTHREF_* environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete pipeline configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/growthref.log"`
}

// PathsConfig names the directories the pipeline reads from and writes
// to. OutputDir is the single explicit output root; no component keeps
// its own idea of where results land.
type PathsConfig struct {
	RawDataDir   string `yaml:"raw_data_dir" envconfig:"RAW_DATA_DIR" default:"raw_data" validate:"required"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"public" validate:"required"`
	MetadataFile string `yaml:"metadata_file" envconfig:"METADATA_FILE" default:"metadata.json" validate:"required"`
}

// PipelineConfig tunes the run itself.
type PipelineConfig struct {
	Workers int            `yaml:"workers" envconfig:"WORKERS" default:"4" validate:"min=1"`
	Sources []SourceConfig `yaml:"sources" validate:"dive"`
}

// SourceConfig names one statistical dataset source and the directory
// holding its files, relative to RawDataDir unless absolute.
type SourceConfig struct {
	Name      string `yaml:"name" validate:"required"`
	Directory string `yaml:"directory" validate:"required"`
}

// DefaultSources is the registry of statistical growth reference sources.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{Name: "cdc2000", Directory: "cdc2000"},
		{Name: "who2006", Directory: "who2006"},
		{Name: "uk_who", Directory: "uk-who"},
		{Name: "uk90", Directory: "uk90"},
		{Name: "trisomy21_aap", Directory: "trisomy21/AAP"},
		{Name: "trisomy21_uk", Directory: "trisomy21/UKReference"},
		{Name: "turner", Directory: "turner"},
		{Name: "bayley_pinneau", Directory: "bayley-pinneau"},
		{Name: "spirometry", Directory: "spirometry"},
	}
}

// Load builds the configuration: struct-tag defaults and environment
// first, then the YAML file (when present) on top, then validation.
func Load(configFile string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GROWTHREF", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if len(cfg.Pipeline.Sources) == 0 {
		cfg.Pipeline.Sources = DefaultSources()
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
