// Package teams partitions members into fixed-size teams while spreading each
// company's members as evenly as possible, and keeps per-team company counts
// in sync after manual edits.
package teams

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a caller-supplied value outside its domain, such as a non-positive team size.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamNotFound indicates that no team carries the requested id.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotFound indicates a member index outside the team's member list.
	ErrMemberNotFound = errors.New("member not found")
	// ErrTeamNotEmpty indicates an attempt to remove a team that still has members.
	ErrTeamNotEmpty = errors.New("team is not empty")
)

// Error represents an error that occurs while building or editing teams
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
