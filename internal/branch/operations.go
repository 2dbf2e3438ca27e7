package branch

import (
	"slices"

	"branch-builder/internal/common"
)

// OperationKind is the action a resolved conflict is waiting on.
type OperationKind int

const (
	OperationAdd OperationKind = iota
	OperationRemove
	OperationRename
)

// String returns the operation name.
func (k OperationKind) String() string {
	switch k {
	case OperationAdd:
		return "add"
	case OperationRemove:
		return "remove"
	case OperationRename:
		return "rename"
	default:
		return common.UnknownStr
	}
}

// OperationLog records pending operations as indices into the builder's
// conflict set. A conflict index appears in at most one entry.
type OperationLog struct {
	add    []int
	remove []int
	rename [][2]int
	owner  map[int]OperationKind
}

func newOperationLog() *OperationLog {
	return &OperationLog{owner: make(map[int]OperationKind)}
}

// Len returns the number of entries of the given kind.
func (l *OperationLog) Len(kind OperationKind) int {
	switch kind {
	case OperationAdd:
		return len(l.add)
	case OperationRemove:
		return len(l.remove)
	case OperationRename:
		return len(l.rename)
	default:
		return 0
	}
}

// holder returns the kind of the entry holding conflict i.
func (l *OperationLog) holder(i int) (OperationKind, bool) {
	kind, ok := l.owner[i]
	return kind, ok
}

// put records an add or remove entry. Already recorded entries are left alone.
func (l *OperationLog) put(kind OperationKind, i int) {
	if _, ok := l.owner[i]; ok {
		return
	}

	switch kind {
	case OperationAdd:
		l.add = append(l.add, i)
	case OperationRemove:
		l.remove = append(l.remove, i)
	default:
		return
	}

	l.owner[i] = kind
}

// putRename records a rename pair unless both sides are already taken.
func (l *OperationLog) putRename(oldIdx, newIdx int) {
	if l.hasRename(oldIdx, newIdx) {
		return
	}

	l.rename = append(l.rename, [2]int{oldIdx, newIdx})
	l.owner[oldIdx] = OperationRename
	l.owner[newIdx] = OperationRename
}

func (l *OperationLog) hasRename(oldIdx, newIdx int) bool {
	return slices.Contains(l.rename, [2]int{oldIdx, newIdx})
}

// drop removes the entry holding conflict i and returns every conflict index
// it released: i alone, or both sides of a rename pair.
func (l *OperationLog) drop(i int) []int {
	kind, ok := l.owner[i]
	if !ok {
		return nil
	}

	released := []int{i}

	switch kind {
	case OperationAdd:
		l.add = slices.DeleteFunc(l.add, func(v int) bool { return v == i })
	case OperationRemove:
		l.remove = slices.DeleteFunc(l.remove, func(v int) bool { return v == i })
	case OperationRename:
		idx := slices.IndexFunc(l.rename, func(p [2]int) bool { return p[0] == i || p[1] == i })
		pair := l.rename[idx]
		l.rename = slices.Delete(l.rename, idx, idx+1)
		released = pair[:]
	}

	for _, r := range released {
		delete(l.owner, r)
	}

	return released
}
