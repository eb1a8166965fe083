package model

import (
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// Group is a handle of a group or channel the account belongs to.
// It is obtained from the messaging platform and not modified during a run.
type Group struct {
	ID          types.GroupID
	Title       string
	IsPrivate   bool
	MemberCount int
}

// Member is a single entry of a group's membership list
type Member struct {
	ID        types.MemberID
	Name      string
	IsAdmin   bool
	IsCreator bool
	IsBot     bool
}

// DisplayName returns the member name, or "Unknown" when the platform gave none
func (m *Member) DisplayName() string {
	if m.Name == "" {
		return "Unknown"
	}
	return m.Name
}

// IsPrivileged reports whether the member holds an admin or owner role
func (m *Member) IsPrivileged() bool {
	return m.IsAdmin || m.IsCreator
}

// MemberPage is one page of a paginated membership listing
type MemberPage struct {
	Members []*Member
	// Total is the member count reported by the platform, 0 if unknown
	Total int
}
