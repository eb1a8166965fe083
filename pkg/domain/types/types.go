package types

import (
	"github.com/google/uuid"
)

// GroupID represents a group (Slack conversation) identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// MemberID represents a member (Slack user) identifier
type MemberID string

// String returns the string representation
func (id MemberID) String() string {
	return string(id)
}

// SweepID represents a sweep run identifier
type SweepID string

// String returns the string representation
func (id SweepID) String() string {
	return string(id)
}

// NewSweepID creates a new SweepID using UUID v7 so that IDs sort by creation time
func NewSweepID() SweepID {
	id, err := uuid.NewV7()
	if err != nil {
		return SweepID(uuid.New().String())
	}
	return SweepID(id.String())
}
