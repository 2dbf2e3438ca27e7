package branch

import (
	"fmt"
	"strings"

	"branch-builder/internal/common"
	"branch-builder/internal/conflict"
	"branch-builder/internal/space"
)

const wildcard = "*"

// keywords maps every accepted status keyword spelling to its status.
var keywords = map[string]conflict.Status{
	"anyNew":      conflict.StatusNew,
	"anyChanged":  conflict.StatusChanged,
	"anyMissing":  conflict.StatusMissing,
	"any-new":     conflict.StatusNew,
	"any-changed": conflict.StatusChanged,
	"any-missing": conflict.StatusMissing,
	"~new":        conflict.StatusNew,
	"~changed":    conflict.StatusChanged,
	"~missing":    conflict.StatusMissing,
}

// expansion describes which conflicts a names argument may reach.
type expansion struct {
	allowed []conflict.Status
	// op is the operation the names are resolved for. Wildcards and
	// keywords skip conflicts held by another kind of operation.
	op OperationKind
	// reset expands to solved conflicts too, regardless of holder.
	reset bool
}

// expand resolves a whitespace separated names argument to conflict indices.
func (b *Builder) expand(names string, exp expansion) ([]int, error) {
	tokens := strings.Fields(names)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no dimension name given", ErrConflictNotFound)
	}

	var out []int

	for _, token := range tokens {
		switch {
		case isKeyword(token):
			idxs, err := b.expandKeyword(token, exp)
			if err != nil {
				return nil, err
			}

			out = append(out, idxs...)

		case strings.Contains(token, wildcard):
			idxs, err := b.expandWildcard(token, exp)
			if err != nil {
				return nil, err
			}

			out = append(out, idxs...)

		default:
			idx, err := b.lookup(token, exp.allowed)
			if err != nil {
				return nil, err
			}

			if b.config.Expansion == ExpandLastToken {
				out = []int{idx}
			} else {
				out = append(out, idx)
			}
		}
	}

	return common.Dedupe(out), nil
}

func isKeyword(token string) bool {
	_, ok := keywords[token]
	return ok
}

func (b *Builder) expandKeyword(token string, exp expansion) ([]int, error) {
	status := keywords[token]
	if !status.In(exp.allowed) {
		return nil, fmt.Errorf("%w: keyword %q does not apply here, %s conflicts are not accepted",
			ErrConflictNotFound, token, status)
	}

	var out []int

	for i := range b.conflicts {
		c := &b.conflicts[i]
		if c.Status != status {
			continue
		}

		if !exp.reset && (c.Solved || !b.claimable(i, exp.op)) {
			continue
		}

		out = append(out, i)
	}

	return out, nil
}

func (b *Builder) expandWildcard(token string, exp expansion) ([]int, error) {
	prefix := space.TrimPrefix(strings.SplitN(token, wildcard, 2)[0])

	var out []int

	for i := range b.conflicts {
		c := &b.conflicts[i]
		if !c.Status.In(exp.allowed) || !strings.HasPrefix(c.Name(), prefix) {
			continue
		}

		if !exp.reset && !b.claimable(i, exp.op) {
			continue
		}

		out = append(out, i)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q matches no %s conflict", ErrConflictNotFound, token, statusList(exp.allowed))
	}

	return out, nil
}

// claimable reports whether conflict i is free or already held by op.
func (b *Builder) claimable(i int, op OperationKind) bool {
	kind, held := b.log.holder(i)
	return !held || kind == op
}

// lookup finds the single conflict named name with an allowed status.
func (b *Builder) lookup(name string, allowed []conflict.Status) (int, error) {
	short := space.TrimPrefix(name)
	found := -1

	for i := range b.conflicts {
		c := &b.conflicts[i]
		if c.Name() != short || !c.Status.In(allowed) {
			continue
		}

		if found >= 0 {
			return -1, fmt.Errorf("%w: %q matches both %s and %s", ErrAmbiguousConflict, short,
				b.conflicts[found].Status, c.Status)
		}

		found = i
	}

	if found < 0 {
		return -1, fmt.Errorf("%w: no %s conflict for dimension %q", ErrConflictNotFound, statusList(allowed), short)
	}

	return found, nil
}

func statusList(statuses []conflict.Status) string {
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, "/")
}
