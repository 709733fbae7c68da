package render

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fakeyudi/tripline/internal/trip"
)

// Parser deserializes an exported trip file back into a Trip.
type Parser interface {
	Parse(data []byte) (*trip.Trip, error)
}

// JSONParser parses a JSON-encoded Trip.
type JSONParser struct{}

func (p *JSONParser) Parse(data []byte) (*trip.Trip, error) {
	t, err := trip.Decode(data, false)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON trip: %w", err)
	}
	return t, nil
}

// YAMLParser parses a YAML-encoded Trip.
type YAMLParser struct{}

func (p *YAMLParser) Parse(data []byte) (*trip.Trip, error) {
	t, err := trip.Decode(data, true)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML trip: %w", err)
	}
	return t, nil
}

// MarkdownParser parses a Markdown export by extracting the embedded base64
// JSON payload from the sentinel comments.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(data []byte) (*trip.Trip, error) {
	content := string(data)

	if !strings.Contains(content, versionSentinel) {
		return nil, fmt.Errorf("not a valid tripline file: missing version sentinel")
	}

	start := strings.Index(content, dataPrefix)
	if start == -1 {
		return nil, fmt.Errorf("not a valid tripline file: missing data payload")
	}
	start += len(dataPrefix)
	end := strings.Index(content[start:], dataSuffix)
	if end == -1 {
		return nil, fmt.Errorf("not a valid tripline file: malformed data payload")
	}
	encoded := content[start : start+end]

	jsonBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("not a valid tripline file: corrupted base64 payload: %w", err)
	}

	var t trip.Trip
	if err := json.Unmarshal(jsonBytes, &t); err != nil {
		return nil, fmt.Errorf("not a valid tripline file: failed to parse embedded JSON: %w", err)
	}
	return &t, nil
}

// ParserForPath picks a parser from the file extension. Anything that is
// not JSON or YAML is treated as a Markdown export.
func ParserForPath(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &JSONParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	}
	return &MarkdownParser{}
}
