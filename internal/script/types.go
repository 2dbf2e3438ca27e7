package script

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"branch-builder/internal/common"
)

// CurrentVersion is the script format version written by this package.
const CurrentVersion = "1"

// Script is a batch of resolution decisions for one branch.
type Script struct {
	Version string        `yaml:"version"`
	Branch  string        `yaml:"branch,omitempty"`
	Reset   StringOrArray `yaml:"reset,omitempty"`
	Add     StringOrArray `yaml:"add,omitempty"`
	Remove  StringOrArray `yaml:"remove,omitempty"`
	Rename  []RenameRule  `yaml:"rename,omitempty"`
}

// RenameRule maps a missing parent dimension onto a new child dimension.
type RenameRule struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// IsEmpty reports whether the script resolves nothing.
func (s *Script) IsEmpty() bool {
	return s.Branch == "" && s.Reset.IsEmpty() && s.Add.IsEmpty() && s.Remove.IsEmpty() &&
		common.IsEmpty(s.Rename)
}

// StringOrArray is a list that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes a single element as a plain string.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
