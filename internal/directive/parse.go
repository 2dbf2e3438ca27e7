package directive

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"branch-builder/internal/space"
)

// ErrDirectiveParse is returned for a marker that cannot be interpreted.
var ErrDirectiveParse = errors.New("malformed directive")

// Directive is one marker found in the argument list.
type Directive struct {
	Kind Kind
	// Name is the dimension the marker is attached to.
	Name string
	// Target is the new name for a rename, empty otherwise.
	Target string
	// Arg is the argument the directive was read from.
	Arg string
}

// String renders the directive in its marker form.
func (d Directive) String() string {
	return d.Name + d.Kind.Marker() + d.Target
}

// Parse scans args for directives. It returns the corrected argument list
// and the directives ordered by kind (append, drop, rename), keeping source
// order within a kind. args itself is not modified.
func Parse(args []string) ([]string, []Directive, error) {
	corrected := make([]string, 0, len(args))

	var directives []Directive

	for _, arg := range args {
		d, rewritten, keep, err := parseArg(arg)
		if err != nil {
			return nil, nil, err
		}

		if d != nil {
			directives = append(directives, *d)
		}

		if keep {
			corrected = append(corrected, rewritten)
		}
	}

	slices.SortStableFunc(directives, func(a, b Directive) int {
		return int(a.Kind) - int(b.Kind)
	})

	return corrected, directives, nil
}

// parseArg interprets a single argument. keep reports whether the
// (possibly rewritten) argument stays in the list.
func parseArg(arg string) (d *Directive, rewritten string, keep bool, err error) {
	name, rest, ok := space.SplitArg(arg)
	if !ok || rest == "" {
		return nil, arg, true, nil
	}

	kind, ok := kindOf(rest[0])
	if !ok {
		return nil, arg, true, nil
	}

	if !space.ValidName(name) {
		return nil, "", false, fmt.Errorf("%w: invalid dimension name in %q", ErrDirectiveParse, arg)
	}

	value := rest[1:]
	d = &Directive{Kind: kind, Name: name, Arg: arg}

	switch kind {
	case KindAppend:
		if value == "" {
			return nil, "", false, fmt.Errorf("%w: %q has no prior to append", ErrDirectiveParse, arg)
		}

		dashes := arg[:len(arg)-len(strings.TrimLeft(arg, "-"))]

		return d, dashes + name + "~" + value, true, nil

	case KindDrop:
		if value != "" {
			return nil, "", false, fmt.Errorf("%w: %q, drop takes no value", ErrDirectiveParse, arg)
		}

		return d, "", false, nil

	default:
		if !space.ValidName(value) {
			return nil, "", false, fmt.Errorf("%w: %q needs a target name after %s",
				ErrDirectiveParse, arg, kind.Marker())
		}

		d.Target = value

		return d, "", false, nil
	}
}
