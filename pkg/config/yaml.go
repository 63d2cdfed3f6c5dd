package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a style from YAML bytes. Fields absent from the YAML keep
// their default values, so a partial file overrides selectively.
func FromYAML(data []byte) (Style, error) {
	style := Default()
	if err := yaml.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("parse style yaml: %w", err)
	}
	if err := style.Validate(); err != nil {
		return Style{}, fmt.Errorf("validate style: %w", err)
	}
	return style, nil
}

// ToYAML serializes the style with 2-space indentation.
func (s Style) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("encode style: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Load reads and validates a style file. An empty path returns Default.
func Load(path string) (Style, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}

	style, err := FromYAML(data)
	if err != nil {
		return Style{}, fmt.Errorf("load %s: %w", path, err)
	}
	return style, nil
}
