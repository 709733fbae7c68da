package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configurable tripline settings.
type Config struct {
	DefaultFormat   string `json:"default_format"`   // "markdown" | "json" | "ics"
	OutputDir       string `json:"output_dir"`       // where export writes files
	Timezone        string `json:"timezone"`         // IANA name used for calendar export
	DefaultStart    string `json:"default_start"`    // start time for a day's first activity
	DefaultDuration int    `json:"default_duration"` // minutes, non-flight activities
	FlightDuration  int    `json:"flight_duration"`  // minutes, flights
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		DefaultFormat:   "markdown",
		OutputDir:       ".",
		Timezone:        "Local",
		DefaultStart:    "09:00",
		DefaultDuration: 60,
		FlightDuration:  180,
	}
}

// GlobalPath returns the path of the user-level config file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tripline", "config.json"), nil
}

// LoadGlobal reads ~/.config/tripline/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// LoadProject reads .triplineconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".triplineconfig", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	apply(&result, global)
	apply(&result, project)
	return result
}

func apply(dst *Config, src *Config) {
	if src == nil {
		return
	}
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.Timezone != "" {
		dst.Timezone = src.Timezone
	}
	if src.DefaultStart != "" {
		dst.DefaultStart = src.DefaultStart
	}
	if src.DefaultDuration > 0 {
		dst.DefaultDuration = src.DefaultDuration
	}
	if src.FlightDuration > 0 {
		dst.FlightDuration = src.FlightDuration
	}
}

// Location resolves Timezone. "Local" and "" map to time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
