package model

import (
	"sort"

	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// ProtectedSet holds member IDs that must never be removed from a group.
// It is computed once per sweep and read-only afterwards.
type ProtectedSet struct {
	ids map[types.MemberID]struct{}
}

// NewProtectedSet creates a ProtectedSet from the given IDs. Duplicates collapse.
func NewProtectedSet(ids ...types.MemberID) *ProtectedSet {
	set := &ProtectedSet{ids: make(map[types.MemberID]struct{}, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		set.ids[id] = struct{}{}
	}
	return set
}

// Contains reports whether the member is protected
func (s *ProtectedSet) Contains(id types.MemberID) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of protected members
func (s *ProtectedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the protected member IDs in sorted order
func (s *ProtectedSet) IDs() []types.MemberID {
	if s == nil {
		return nil
	}
	ids := make([]types.MemberID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
