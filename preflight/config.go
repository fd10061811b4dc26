// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package preflight

import (
	"fmt"
	"os"

	"github.com/brainmark/extension-preflight/defaults"
	"github.com/brainmark/extension-preflight/logger"
)

// APISettings holds configuration for the preflight API server.
type APISettings struct {
	// The address the API server listens on.
	ListenAddress string `default:":4000" validate:"notempty"`
	// Whether to expose the pprof endpoints.
	EnableProfiler bool `default:"true"`
}

// WatchSettings holds configuration for watch mode.
type WatchSettings struct {
	// How long to wait after the last filesystem event before re-running
	// the checks.
	DebounceMilliseconds int `default:"300" validate:"range:(0,]"`
}

// Config holds information needed to run a preflight validation.
type Config struct {
	// The directory containing the extension to validate.
	TargetDirectory string `default:"." validate:"notempty"`
	// Optional path to a checklist file (JSON, TOML or YAML). When empty
	// the built-in checklist is used.
	ChecklistPath string `default:""`
	APISettings   APISettings
	WatchSettings WatchSettings
	LogSettings   logger.Settings
}

// IsValid reports whether the configuration is usable. Tag-level
// validation is handled by defaults.Validate, which also invokes this
// method.
func (c *Config) IsValid() error {
	info, err := os.Stat(c.TargetDirectory)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTargetNotFound, c.TargetDirectory)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrTargetNotFound, c.TargetDirectory)
	}
	return nil
}

// ReadConfig reads the configuration file from the given path, or from the
// default location when path is empty.
func ReadConfig(configFilePath string) (*Config, error) {
	var cfg Config

	if err := defaults.ReadFrom(configFilePath, "./config/preflight.json", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
