package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedManifest wraps structural decode failures so callers can
// treat them as one category via errors.Is.
var ErrMalformedManifest = errors.New("malformed release manifest")

// Parse decodes a JSON manifest document. A manifest with zero assets is
// valid; selection against it simply finds nothing. Missing optional fields
// on an individual asset leave that asset's metadata absent rather than
// failing the parse.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}
	return &m, nil
}

// ParseYAML decodes a YAML manifest document.
func ParseYAML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}
	return &m, nil
}

// ParseFile reads and decodes a manifest from disk, picking the format by
// file extension: .yaml and .yml are YAML, everything else JSON.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return parseByExt(path, data)
}

func parseByExt(path string, data []byte) (*Manifest, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}
