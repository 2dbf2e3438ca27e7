// Package conflict classifies the differences between a parent and a child
// search space.
package conflict

import (
	"slices"

	"branch-builder/internal/common"
	"branch-builder/internal/space"
)

// Status classifies a conflicting dimension.
type Status int

const (
	// StatusNew - the dimension exists only in the child space.
	StatusNew Status = iota
	// StatusChanged - the dimension exists in both spaces with different priors.
	StatusChanged
	// StatusMissing - the dimension exists only in the parent space.
	StatusMissing
)

// AllStatuses lists every status in declaration order.
var AllStatuses = []Status{StatusNew, StatusChanged, StatusMissing}

// String returns the status name used by keywords and reports.
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusChanged:
		return "changed"
	case StatusMissing:
		return "missing"
	default:
		return common.UnknownStr
	}
}

// ParseStatus parses a status name as returned by Status.String.
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if st.String() == s {
			return st, true
		}
	}

	return 0, false
}

// In reports whether s is one of allowed.
func (s Status) In(allowed []Status) bool {
	return slices.Contains(allowed, s)
}

// Conflict is a single dimension that differs between the two spaces.
type Conflict struct {
	Status Status
	// Dimension comes from the child space for new and changed conflicts,
	// from the parent space for missing ones.
	Dimension space.Dimension
	Solved    bool
}

// Name returns the dimension name without the namespace prefix.
func (c *Conflict) Name() string {
	return c.Dimension.ShortName()
}

// String returns "status:name".
func (c *Conflict) String() string {
	return c.Status.String() + ":" + c.Name()
}
