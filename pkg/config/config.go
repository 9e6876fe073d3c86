// Package config loads the optional lv2lint.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ormasoftchile/lv2lint/pkg/lint"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up next to a bundle and in its parents.
const FileName = "lv2lint.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the decoded lv2lint.yaml.
type Config struct {
	Show    *lint.Mask `yaml:"show,omitempty"`
	Mask    *lint.Mask `yaml:"mask,omitempty"`
	Color   string     `yaml:"color,omitempty"`
	Waivers []Waiver   `yaml:"waivers,omitempty"`

	// Path is the file the config was read from. Empty for Default().
	Path string `yaml:"-"`
}

// Waiver suppresses findings matching When.
type Waiver struct {
	Name   string `yaml:"name,omitempty"`
	When   string `yaml:"when"`
	Reason string `yaml:"reason,omitempty"`
}

// Default returns the settings used when no lv2lint.yaml exists.
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// ShowMask returns the display mask, defaulting to every severity.
func (c *Config) ShowMask() lint.Mask {
	if c == nil || c.Show == nil {
		return lint.MaskAll
	}
	return *c.Show
}

// FailureMask returns the severities that fail a port, defaulting to FAIL.
func (c *Config) FailureMask() lint.Mask {
	if c == nil || c.Mask == nil {
		return lint.MaskOf(lint.SeverityFail)
	}
	return *c.Mask
}

// LoadFile reads and parses an lv2lint.yaml file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Load decodes settings from r, rejecting unknown keys.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	switch cfg.Color {
	case "":
		cfg.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("color must be auto, always or never, got %q", cfg.Color)
	}
	for i, w := range cfg.Waivers {
		if w.When == "" {
			return nil, fmt.Errorf("waivers[%d]: when is required", i)
		}
	}
	return cfg, nil
}

// Discover walks up from startPath to find the nearest lv2lint.yaml.
// It returns Default() when none is found.
func Discover(startPath string) (*Config, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return LoadFile(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
