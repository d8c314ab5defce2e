// Package config loads engine configuration from defaults, an optional
// YAML file, and JSONDB_-prefixed environment variables, in that
// precedence order (env highest).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "JSONDB_"

// Config holds the engine settings.
type Config struct {
	// DataDir is the flat directory holding one JSON document per
	// database name.
	DataDir string `koanf:"data_dir"`

	// SerializeWriters routes every operation through a process-wide
	// per-database-name lock, so engines bound to the same name cannot
	// overwrite each other's flushes. Off by default: the reference
	// behavior is one private snapshot per engine, last writer wins.
	SerializeWriters bool `koanf:"serialize_writers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:  "data",
		LogLevel: "info",
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > jsondb.yaml > jsondb.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("jsondb.yaml"); err == nil {
		return "jsondb.yaml"
	}
	if _, err := os.Stat("jsondb.yml"); err == nil {
		return "jsondb.yml"
	}
	return ""
}

// Load builds the configuration. cfgFile may be empty, in which case
// jsondb.yaml / jsondb.yml in the working directory is used when present.
func Load(cfgFile string) (Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"data_dir":          def.DataDir,
		"serialize_writers": def.SerializeWriters,
		"log_level":         def.LogLevel,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Optional config file.
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	// 3. Environment variables: JSONDB_DATA_DIR -> data_dir.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
