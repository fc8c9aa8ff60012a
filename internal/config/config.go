package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds every path and knob the tool reads. Paths are
// configuration, never hardcoded in the core packages.
type Config struct {
	// Manifest is the dependency-ordered package list produced by the
	// package manager.
	Manifest string `mapstructure:"manifest"`
	// SelfPackage is this tool's own package name, used to flag
	// self-updating installs.
	SelfPackage string         `mapstructure:"self_package"`
	Status      StatusConfig   `mapstructure:"status"`
	Operation   string         `mapstructure:"operation_file"`
	LockFile    string         `mapstructure:"lock_file"`
	Executors   ExecutorConfig `mapstructure:"executors"`
}

// StatusConfig names the two status files
type StatusConfig struct {
	// Global status is shared and should be committed
	Global string `mapstructure:"global"`
	// Local status is machine-specific and should not be committed
	Local string `mapstructure:"local"`
}

// ExecutorConfig configures the built-in task executors
type ExecutorConfig struct {
	// FileSourceDir is where packages place their installable files,
	// one subdirectory per package
	FileSourceDir string `mapstructure:"file_source_dir"`
	// FileTargetDir is where file tasks copy to
	FileTargetDir string `mapstructure:"file_target_dir"`
	// URLTimeoutSeconds bounds url task fetches
	URLTimeoutSeconds int `mapstructure:"url_timeout_seconds"`
}

// URLTimeout returns the url fetch timeout as a time.Duration
func (c *ExecutorConfig) URLTimeout() time.Duration {
	return time.Duration(c.URLTimeoutSeconds) * time.Second
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Manifest:    "postinst.lock.yaml",
		SelfPackage: "postinst",
		Status: StatusConfig{
			Global: "postinst.status.yaml",
			Local:  "postinst.status.local.yaml",
		},
		Operation: ".postinst/operation.json",
		LockFile:  ".postinst/lock",
		Executors: ExecutorConfig{
			FileSourceDir:     "install",
			FileTargetDir:     ".",
			URLTimeoutSeconds: 30,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("manifest", defaults.Manifest)
	viper.SetDefault("self_package", defaults.SelfPackage)
	viper.SetDefault("status.global", defaults.Status.Global)
	viper.SetDefault("status.local", defaults.Status.Local)
	viper.SetDefault("operation_file", defaults.Operation)
	viper.SetDefault("lock_file", defaults.LockFile)
	viper.SetDefault("executors.file_source_dir", defaults.Executors.FileSourceDir)
	viper.SetDefault("executors.file_target_dir", defaults.Executors.FileTargetDir)
	viper.SetDefault("executors.url_timeout_seconds", defaults.Executors.URLTimeoutSeconds)
}

// Load reads the configuration from viper into a Config struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
