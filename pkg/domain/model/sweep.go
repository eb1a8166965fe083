package model

import (
	"time"

	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// RemovalFailure records a member that could not be removed
type RemovalFailure struct {
	MemberID   types.MemberID
	MemberName string
	Reason     string
}

// SweepResult is the outcome of a single sweep over a group
type SweepResult struct {
	ID         types.SweepID
	GroupID    types.GroupID
	GroupTitle string
	OperatorID types.MemberID
	Status     types.SweepStatus
	Removed    int
	Total      int
	Protected  int
	Pages      int
	Failures   []RemovalFailure
	Reason     string // set when the sweep was aborted
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSweepResult creates a running sweep for the group
func NewSweepResult(group *Group, operator types.MemberID) *SweepResult {
	return &SweepResult{
		ID:         types.NewSweepID(),
		GroupID:    group.ID,
		GroupTitle: group.Title,
		OperatorID: operator,
		Status:     types.SweepStatusRunning,
		StartedAt:  time.Now(),
	}
}

// Cancelled reports whether the operator stopped the sweep before all pages were read
func (r *SweepResult) Cancelled() bool {
	return r.Status == types.SweepStatusCancelled
}

// Finish moves the sweep into a terminal status
func (r *SweepResult) Finish(status types.SweepStatus) {
	r.Status = status
	r.FinishedAt = time.Now()
}

// Duration returns how long the sweep ran
func (r *SweepResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
