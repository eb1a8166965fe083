package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Action is the operator's choice at a sweep checkpoint
type Action int

const (
	ActionContinue Action = iota
	ActionPause
	ActionCancel
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionPause:
		return "pause"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseAction parses operator input. Empty input means continue.
func ParseAction(input string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return ActionContinue, nil
	case "p", "pause":
		return ActionPause, nil
	case "c", "cancel":
		return ActionCancel, nil
	default:
		return ActionContinue, goerr.Wrap(ErrInvalidAction, "unknown action", goerr.V("input", input))
	}
}
