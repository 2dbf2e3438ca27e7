package space

import (
	"fmt"
	"strings"
)

// Builder constructs a Space from an experiment's user arguments.
type Builder interface {
	BuildFrom(args []string) (*Space, error)
}

// ArgBuilder is the default Builder. It reads "--name~prior" arguments and
// skips everything else.
type ArgBuilder struct{}

// BuildFrom implements Builder.
func (ArgBuilder) BuildFrom(args []string) (*Space, error) {
	s := New()

	for _, arg := range args {
		name, prior, ok := SplitArg(arg)
		if !ok {
			continue
		}

		dim, err := NewDimension(name, prior)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}

		if err := s.Register(dim); err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
	}

	return s, nil
}

// SplitArg splits a dimension argument into its name and the text after the
// "~" marker. ok is false for arguments that do not declare a dimension:
// positional values and "--key=value" arguments whose value happens to
// contain "~".
func SplitArg(arg string) (name, rest string, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", "", false
	}

	name, rest, found := strings.Cut(strings.TrimLeft(arg, "-"), "~")
	if !found || name == "" || strings.Contains(name, "=") {
		return "", "", false
	}

	return name, rest, true
}
