package space

import (
	"regexp"
	"strconv"
	"strings"
)

// Prefix is the namespace every dimension name is stored under.
const Prefix = "/"

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)
	priorPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\((.*)\)$`)
	shapePattern = regexp.MustCompile(`(?:^|,)shape=(\d+)`)
)

// Dimension is a single named hyperparameter and its prior.
// Two dimensions are equal iff all fields are equal; use == or Equal.
type Dimension struct {
	// Name is the namespaced name, e.g. "/lr".
	Name string
	// Prior is the normalized prior expression, e.g. "uniform(-10,10)".
	Prior string
	// Distribution is the prior's function name, e.g. "uniform".
	Distribution string
	// Args is the raw argument list inside the prior's parentheses.
	Args string
	// Shape is the declared shape, 0 when scalar.
	Shape int
}

// NewDimension builds a Dimension from a bare name and a prior expression.
func NewDimension(name, prior string) (Dimension, error) {
	short := TrimPrefix(name)
	if !ValidName(short) {
		return Dimension{}, invalidArgumentf("invalid dimension name %q", name)
	}

	normalized := NormalizePrior(prior)

	m := priorPattern.FindStringSubmatch(normalized)
	if m == nil {
		return Dimension{}, invalidArgumentf("invalid prior %q for dimension %q", prior, short)
	}

	dim := Dimension{
		Name:         Prefix + short,
		Prior:        normalized,
		Distribution: m[1],
		Args:         m[2],
	}

	if s := shapePattern.FindStringSubmatch(m[2]); s != nil {
		// Digits only, cannot fail.
		dim.Shape, _ = strconv.Atoi(s[1])
	}

	return dim, nil
}

// ShortName returns the name without the namespace prefix.
func (d Dimension) ShortName() string {
	return TrimPrefix(d.Name)
}

// Equal reports whether two dimensions are structurally identical.
func (d Dimension) Equal(other Dimension) bool {
	return d == other
}

// String returns the dimension in its argument form, e.g. "lr~uniform(0,1)".
func (d Dimension) String() string {
	return d.ShortName() + "~" + d.Prior
}

// ValidName reports whether name (without prefix) is a legal dimension name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// TrimPrefix strips the namespace prefix from name, if present.
func TrimPrefix(name string) string {
	return strings.TrimPrefix(name, Prefix)
}

// WithPrefix returns name under the namespace prefix.
func WithPrefix(name string) string {
	return Prefix + TrimPrefix(name)
}

// NormalizePrior removes all whitespace from a prior expression.
func NormalizePrior(prior string) string {
	return strings.Join(strings.Fields(prior), "")
}
