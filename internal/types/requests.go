package types

import (
	"github.com/go-playground/validator/v10"
)

// BuildTeamsRequest represents a request to partition members into teams.
// A nil TeamSize means the default size; a nil Seed means a fresh random source.
type BuildTeamsRequest struct {
	Members  []Member `json:"members" validate:"dive"`
	TeamSize *int     `json:"team_size,omitempty" validate:"omitempty,gt=0"`
	Seed     *uint64  `json:"seed,omitempty"`
}

// TeamsRequest carries a team list whose distributions should be recomputed,
// plus the holding pool, which is passed through unchanged.
type TeamsRequest struct {
	Teams []Team         `json:"teams" validate:"dive"`
	Pool  []PooledMember `json:"pool,omitempty" validate:"dive"`
}

// ParkMemberRequest moves the member at MemberIndex of team TeamID into the holding pool.
type ParkMemberRequest struct {
	Teams       []Team         `json:"teams" validate:"required,dive"`
	Pool        []PooledMember `json:"pool,omitempty" validate:"dive"`
	TeamID      int            `json:"team_id" validate:"required"`
	MemberIndex int            `json:"member_index" validate:"gte=0"`
}

// PlaceMemberRequest moves the pool entry at PoolIndex into team TeamID.
type PlaceMemberRequest struct {
	Teams     []Team         `json:"teams" validate:"required,dive"`
	Pool      []PooledMember `json:"pool" validate:"required,dive"`
	PoolIndex int            `json:"pool_index" validate:"gte=0"`
	TeamID    int            `json:"team_id" validate:"required"`
}

// MoveMemberRequest moves the member at MemberIndex of team FromTeam into team ToTeam.
type MoveMemberRequest struct {
	Teams       []Team `json:"teams" validate:"required,dive"`
	FromTeam    int    `json:"from_team" validate:"required"`
	MemberIndex int    `json:"member_index" validate:"gte=0"`
	ToTeam      int    `json:"to_team" validate:"required"`

	Pool []PooledMember `json:"pool,omitempty" validate:"dive"` // Passed through unchanged
}

// RemoveTeamRequest removes an empty team from the list.
type RemoveTeamRequest struct {
	Teams  []Team `json:"teams" validate:"required,dive"`
	TeamID int    `json:"team_id" validate:"required"`

	Pool []PooledMember `json:"pool,omitempty" validate:"dive"` // Passed through unchanged
}

// TeamsResponse wraps a team list and the holding pool for API responses.
type TeamsResponse struct {
	Teams []Team         `json:"teams"`
	Pool  []PooledMember `json:"pool,omitempty"`
}

// Validate validates the BuildTeamsRequest using the validator.
func (r *BuildTeamsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TeamsRequest using the validator.
func (r *TeamsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParkMemberRequest using the validator.
func (r *ParkMemberRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PlaceMemberRequest using the validator.
func (r *PlaceMemberRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MoveMemberRequest using the validator.
func (r *MoveMemberRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RemoveTeamRequest using the validator.
func (r *RemoveTeamRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
