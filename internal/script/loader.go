package script

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a resolution script from the given path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse parses a YAML script. A document starting with "{" is read as JSON
// with comments and trailing commas allowed.
func Parse(data []byte) (*Script, error) {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		data = jsonc.ToJSON(data)
	}

	var s Script

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Script) {
	if s.Version == "" {
		s.Version = CurrentVersion
	}

	s.Branch = strings.TrimSpace(s.Branch)

	for _, list := range []StringOrArray{s.Reset, s.Add, s.Remove} {
		for i := range list {
			list[i] = strings.TrimSpace(list[i])
		}
	}

	for i := range s.Rename {
		s.Rename[i].Old = strings.TrimSpace(s.Rename[i].Old)
		s.Rename[i].New = strings.TrimSpace(s.Rename[i].New)
	}
}

// Marshal serializes a Script to YAML.
func Marshal(s *Script) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Script to the given path.
func WriteFile(s *Script, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal script: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write script %s: %w", path, err)
	}

	return nil
}
