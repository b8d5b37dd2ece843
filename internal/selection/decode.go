package selection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an on-disk encoding for a selection file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the decoder from the file extension.
// Anything that isn't .json is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode reads a selection from r. Unknown keys are rejected so a typo
// like "audience:" instead of "audiences:" doesn't silently drop choices.
// The result is normalized but not validated.
func Decode(r io.Reader, format Format) (Selection, error) {
	var s Selection
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Selection{}, fmt.Errorf("parsing selection JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return Selection{}, fmt.Errorf("parsing selection YAML: %w", err)
		}
	default:
		return Selection{}, fmt.Errorf("unsupported selection format %q", format)
	}
	return s.Normalize(), nil
}

// LoadFile reads and normalizes a selection file.
func LoadFile(path string) (Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Selection{}, fmt.Errorf("reading selection file: %w", err)
	}
	s, err := Decode(bytes.NewReader(data), FormatForPath(path))
	if err != nil {
		return Selection{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
