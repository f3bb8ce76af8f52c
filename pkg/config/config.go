// Package config loads the optional recycler.yaml used by demo hosts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the newest config schema this build understands.
// Configs gate themselves with a version field; any v1 config loads.
const SchemaVersion = "v1.1.0"

// Physics values accepted by ListConfig.
const (
	PhysicsClamping = "clamping"
	PhysicsBouncing = "bouncing"
)

// Config represents the optional recycler.yaml configuration.
type Config struct {
	Version string      `yaml:"version,omitempty"`
	List    ListConfig  `yaml:"list"`
	Trace   TraceConfig `yaml:"trace"`
	Log     LogConfig   `yaml:"log"`
}

// ListConfig configures the demo list surface.
type ListConfig struct {
	Items   int     `yaml:"items,omitempty"`
	Columns int     `yaml:"columns,omitempty"`
	Extent  float64 `yaml:"extent,omitempty"`
	Cache   float64 `yaml:"cache,omitempty"`
	Physics string  `yaml:"physics,omitempty"`
}

// TraceConfig configures the flight recorder.
type TraceConfig struct {
	File string `yaml:"file,omitempty"`
}

// LogConfig configures host logging.
type LogConfig struct {
	File string `yaml:"file,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Items       int
	Columns     int
	ItemExtent  float64
	CacheExtent float64
	Physics     string
	TraceFile   string
	LogFile     string
}

// LoadOptional reads recycler.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "recycler.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read recycler.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse recycler.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads recycler.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if err := checkVersion(cfg.Version); err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Items:       cfg.List.Items,
		Columns:     cfg.List.Columns,
		ItemExtent:  cfg.List.Extent,
		CacheExtent: cfg.List.Cache,
		Physics:     strings.TrimSpace(cfg.List.Physics),
		TraceFile:   strings.TrimSpace(cfg.Trace.File),
		LogFile:     strings.TrimSpace(cfg.Log.File),
	}

	if resolved.Items == 0 {
		resolved.Items = 200
	}
	if resolved.Columns == 0 {
		resolved.Columns = 1
	}
	if resolved.ItemExtent == 0 {
		resolved.ItemExtent = 1
	}
	if resolved.Physics == "" {
		resolved.Physics = PhysicsClamping
	}
	if resolved.LogFile == "" {
		resolved.LogFile = "recyclerdemo.log"
	}

	if err := resolved.validate(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// checkVersion gates loading on the config's declared schema version.
// An empty version accepts the current schema.
func checkVersion(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid config version %q", version)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return fmt.Errorf("config version %s is incompatible with schema %s", version, SchemaVersion)
	}
	if semver.Compare(version, SchemaVersion) > 0 {
		return fmt.Errorf("config version %s requires a newer build (schema %s)", version, SchemaVersion)
	}
	return nil
}

func (r *Resolved) validate() error {
	if r.Items < 0 {
		return fmt.Errorf("list.items cannot be negative (got %d)", r.Items)
	}
	if r.Columns < 1 {
		return fmt.Errorf("list.columns must be at least 1 (got %d)", r.Columns)
	}
	if r.ItemExtent <= 0 {
		return fmt.Errorf("list.extent must be positive (got %v)", r.ItemExtent)
	}
	if r.CacheExtent < 0 {
		return fmt.Errorf("list.cache cannot be negative (got %v)", r.CacheExtent)
	}
	if r.Physics != PhysicsClamping && r.Physics != PhysicsBouncing {
		return fmt.Errorf("list.physics must be %q or %q (got %q)", PhysicsClamping, PhysicsBouncing, r.Physics)
	}
	return nil
}
