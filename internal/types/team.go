// Package types provides type definitions for structured data used throughout the team maker.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Member is one person to be seated, identified only by name and company.
// Two members with the same name and company are still two people.
type Member struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
}

// Team is a group of members plus a per-company member count.
//
// CompanyDistribution must always agree with Members: after any change to
// Members the caller recalculates it (see teams.Recalculate).
type Team struct {
	ID                  int            `json:"id"`
	Members             []Member       `json:"members" validate:"dive"`
	CompanyDistribution map[string]int `json:"company_distribution"`
}

// Size returns the number of members seated in the team.
func (t Team) Size() int {
	return len(t.Members)
}

// PooledMember is a member parked outside every team, waiting to be placed
// again. SourceTeam is the id of the team the member was taken from.
type PooledMember struct {
	Member     Member `json:"member"`
	SourceTeam int    `json:"source_team"`
}

// DistributionResult is the output of a team build.
type DistributionResult struct {
	ID           uuid.UUID `json:"id"`
	Teams        []Team    `json:"teams"`
	TotalMembers int       `json:"total_members"` // Input record count
	Companies    []string  `json:"companies"`     // Distinct companies in first-seen order
	TeamSize     int       `json:"team_size"`

	// Unassigned lists members that could not be seated because every team
	// was at capacity. Empty in the common case.
	Unassigned []Member `json:"unassigned,omitempty"`
}

// AssignedMembers returns the number of members actually seated in a team.
func (r *DistributionResult) AssignedMembers() int {
	total := 0
	for _, team := range r.Teams {
		total += len(team.Members)
	}
	return total
}

// Roster is the document form of a member list.
type Roster struct {
	Members []Member `json:"members" validate:"dive"`
}

// Validate validates the Roster using the validator.
func (r *Roster) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
