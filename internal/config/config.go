// Package config loads schema-migrator settings from an optional YAML file
// and SCHEMA_MIGRATOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"schema-migrator/internal/gen"
	"schema-migrator/internal/notebook"
)

// File lookup settings.
const (
	FileName  = "schema-migrator"
	EnvPrefix = "SCHEMA_MIGRATOR"
)

// Config represents the complete tool configuration.
type Config struct {
	Migrate MigrateConfig `mapstructure:"migrate" yaml:"migrate"`
	Convert ConvertConfig `mapstructure:"convert" yaml:"convert"`
}

// MigrateConfig configures notebook migration.
type MigrateConfig struct {
	MappingPath     string `mapstructure:"mapping_path" yaml:"mapping_path"`
	BackupSuffix    string `mapstructure:"backup_suffix" yaml:"backup_suffix"`
	NotebookVersion string `mapstructure:"notebook_version" yaml:"notebook_version"`
	SchemaVersion   string `mapstructure:"schema_version" yaml:"schema_version"`
	ReservedPrefix  string `mapstructure:"reserved_prefix" yaml:"reserved_prefix"`
}

// ConvertConfig configures legacy module conversion.
type ConvertConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	opts := notebook.DefaultOptions()
	gc := gen.DefaultGeneratorConfig()

	return &Config{
		Migrate: MigrateConfig{
			MappingPath:     opts.TablePath,
			BackupSuffix:    opts.BackupSuffix,
			NotebookVersion: opts.NotebookVersion,
			SchemaVersion:   opts.SchemaVersion,
			ReservedPrefix:  opts.ReservedPrefix,
		},
		Convert: ConvertConfig{
			OutputDir: gc.OutputDir,
			Namespace: gc.Namespace,
		},
	}
}

// Load reads the configuration. An explicit path must exist; with an empty
// path schema-migrator.yaml is looked up in the working directory and
// defaults are used when it is absent.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("migrate.mapping_path", def.Migrate.MappingPath)
	v.SetDefault("migrate.backup_suffix", def.Migrate.BackupSuffix)
	v.SetDefault("migrate.notebook_version", def.Migrate.NotebookVersion)
	v.SetDefault("migrate.schema_version", def.Migrate.SchemaVersion)
	v.SetDefault("migrate.reserved_prefix", def.Migrate.ReservedPrefix)
	v.SetDefault("convert.output_dir", def.Convert.OutputDir)
	v.SetDefault("convert.namespace", def.Convert.Namespace)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Migrate.MappingPath == "" {
		return errors.New("invalid config: migrate.mapping_path is empty")
	}

	if c.Migrate.BackupSuffix == "" {
		return errors.New("invalid config: migrate.backup_suffix is empty")
	}

	if c.Convert.OutputDir == "" {
		return errors.New("invalid config: convert.output_dir is empty")
	}

	return nil
}

// NotebookOptions returns the migration options for the notebook package.
func (c *Config) NotebookOptions() notebook.Options {
	return notebook.Options{
		ReservedPrefix:  c.Migrate.ReservedPrefix,
		NotebookVersion: c.Migrate.NotebookVersion,
		SchemaVersion:   c.Migrate.SchemaVersion,
		TablePath:       c.Migrate.MappingPath,
		BackupSuffix:    c.Migrate.BackupSuffix,
	}
}

// GeneratorConfig returns the code generation settings.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Namespace: c.Convert.Namespace,
		OutputDir: c.Convert.OutputDir,
	}
}
