package trip

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError is returned when a trip file exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse trip file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsYAML reports whether path names a YAML trip file.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ReadFile loads a standalone trip file. YAML is used for .yaml/.yml
// paths, JSON otherwise.
func ReadFile(path string) (*Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Decode(data, IsYAML(path))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return t, nil
}

// Decode parses trip data as YAML or JSON.
func Decode(data []byte, asYAML bool) (*Trip, error) {
	var t Trip
	var err error
	if asYAML {
		err = yaml.Unmarshal(data, &t)
	} else {
		err = json.Unmarshal(data, &t)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// WriteFile stores t at path atomically, in the format implied by the
// extension.
func WriteFile(path string, t *Trip) error {
	var (
		data []byte
		err  error
	)
	if IsYAML(path) {
		data, err = yaml.Marshal(t)
	} else {
		data, err = json.MarshalIndent(t, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode trip: %w", err)
	}
	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("write trip file: %w", err)
	}
	return nil
}
