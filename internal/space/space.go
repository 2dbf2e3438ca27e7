package space

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrInvalidArgument is returned when an argument declares a malformed dimension.
	ErrInvalidArgument = errors.New("invalid dimension argument")
	// ErrDuplicateDimension is returned when a name is declared twice in one space.
	ErrDuplicateDimension = errors.New("duplicate dimension")
)

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Space is an ordered mapping from dimension name to Dimension.
// Lookups accept names with or without the namespace prefix.
type Space struct {
	order []string
	dims  map[string]Dimension
}

// New creates an empty Space.
func New() *Space {
	return &Space{dims: make(map[string]Dimension)}
}

// Register adds a dimension, keeping declaration order.
func (s *Space) Register(dim Dimension) error {
	if _, ok := s.dims[dim.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDimension, dim.ShortName())
	}

	s.order = append(s.order, dim.Name)
	s.dims[dim.Name] = dim

	return nil
}

// Has reports whether a dimension named name exists.
func (s *Space) Has(name string) bool {
	_, ok := s.dims[WithPrefix(name)]
	return ok
}

// Get returns the dimension named name.
func (s *Space) Get(name string) (Dimension, bool) {
	dim, ok := s.dims[WithPrefix(name)]
	return dim, ok
}

// Len returns the number of dimensions.
func (s *Space) Len() int {
	return len(s.order)
}

// Names returns the namespaced dimension names in declaration order.
func (s *Space) Names() []string {
	return append([]string(nil), s.order...)
}

// All yields the dimensions in declaration order.
func (s *Space) All() iter.Seq[Dimension] {
	return func(yield func(Dimension) bool) {
		for _, name := range s.order {
			if !yield(s.dims[name]) {
				return
			}
		}
	}
}

// String renders the space as a comma separated list of its dimensions.
func (s *Space) String() string {
	parts := make([]string, 0, len(s.order))
	for dim := range s.All() {
		parts = append(parts, dim.String())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
