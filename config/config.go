// Package config loads the emulator's TOML configuration, mirroring the
// teacher's config.Config (nested struct-of-structs with `toml` tags,
// DefaultConfig, LoadConfig) for the ambient concerns this core needs
// (SPEC_FULL §3).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration document.
type Config struct {
	Execution struct {
		MemorySizeBytes uint64 `toml:"memory_size_bytes"`
		MaxInstructions uint64 `toml:"max_instructions"`
		EntryAddress    uint64 `toml:"entry_address"`
	} `toml:"execution"`

	Display struct {
		NumberFormat string `toml:"number_format"` // hex, dec
	} `toml:"display"`

	Trace struct {
		Enabled  bool `toml:"enabled"`
		Capacity int  `toml:"capacity"`
	} `toml:"trace"`
}

// DefaultConfig returns a Config populated with this core's defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.MemorySizeBytes = 1 << 20
	cfg.Execution.MaxInstructions = 1000
	cfg.Execution.EntryAddress = 0x1000

	cfg.Display.NumberFormat = "hex"

	cfg.Trace.Enabled = false
	cfg.Trace.Capacity = 4096

	return cfg
}

// LoadConfig reads and decodes a TOML file at path, starting from
// DefaultConfig so a partial file only overrides what it sets.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	return cfg, nil
}
