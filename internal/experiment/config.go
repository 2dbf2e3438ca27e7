// Package experiment holds the experiment configuration records a branch is
// built from, and loads them from YAML, JSON/JSONC or TOML files.
package experiment

import (
	"errors"
	"fmt"
	"slices"
)

// Metadata describes how an experiment was launched.
type Metadata struct {
	User       string `yaml:"user,omitempty" json:"user,omitempty" toml:"user,omitempty"`
	UserScript string `yaml:"user_script,omitempty" json:"user_script,omitempty" toml:"user_script,omitempty"`
	HashCommit string `yaml:"hash_commit,omitempty" json:"hash_commit,omitempty" toml:"hash_commit,omitempty"`
	// UserArgs is the ordered command line the search space is read from.
	UserArgs []string `yaml:"user_args" json:"user_args" toml:"user_args"`
}

// Config is an experiment configuration.
type Config struct {
	Name string `yaml:"name" json:"name" toml:"name"`
	// Branch names the child experiment when branching. Consumed by the
	// branch builder.
	Branch     string   `yaml:"branch,omitempty" json:"branch,omitempty" toml:"branch,omitempty"`
	Algorithms any      `yaml:"algorithms,omitempty" json:"algorithms,omitempty" toml:"algorithms,omitempty"`
	Metadata   Metadata `yaml:"metadata" json:"metadata" toml:"metadata"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid experiment configuration")

// Validate checks the fields the branch builder relies on.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}

	if slices.Contains(c.Metadata.UserArgs, "") {
		return fmt.Errorf("%w: %s: empty user argument", ErrInvalidConfig, c.Name)
	}

	return nil
}

// Clone returns a copy that shares no slices with c. Algorithms is copied
// shallowly.
func (c *Config) Clone() *Config {
	out := *c
	out.Metadata.UserArgs = slices.Clone(c.Metadata.UserArgs)

	return &out
}
