package types

// SweepStatus represents the state of a sweep run
type SweepStatus string

const (
	SweepStatusRunning   SweepStatus = "running"
	SweepStatusPaused    SweepStatus = "paused"
	SweepStatusCancelled SweepStatus = "cancelled"
	SweepStatusCompleted SweepStatus = "completed"
	// SweepStatusAborted is set when the sweep stopped on an error, e.g. because
	// protection status could not be determined or a page could not be read
	SweepStatusAborted SweepStatus = "aborted"
)

// String returns the string representation of the status
func (s SweepStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s SweepStatus) IsValid() bool {
	switch s {
	case SweepStatusRunning, SweepStatusPaused, SweepStatusCancelled, SweepStatusCompleted, SweepStatusAborted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can happen from this status
func (s SweepStatus) IsTerminal() bool {
	switch s {
	case SweepStatusCancelled, SweepStatusCompleted, SweepStatusAborted:
		return true
	default:
		return false
	}
}
