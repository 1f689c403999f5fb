package teams

import (
	"fmt"

	"github.com/hhsaputraa/random-team-maker/internal/types"
)

// MoveMember moves the member at memberIndex of team fromTeamID to the end of
// team toTeamID and returns the recalculated team list. The input is not
// modified. Moving a member onto its own team returns the list unchanged
// (recalculated).
//
// Team capacity is not enforced: manual edits may overfill a team.
func MoveMember(list []types.Team, fromTeamID, memberIndex, toTeamID int) ([]types.Team, error) {
	from := indexOfTeam(list, fromTeamID)
	if from < 0 {
		return nil, &Error{Message: fmt.Sprintf("source team %d", fromTeamID), Cause: ErrTeamNotFound}
	}
	to := indexOfTeam(list, toTeamID)
	if to < 0 {
		return nil, &Error{Message: fmt.Sprintf("target team %d", toTeamID), Cause: ErrTeamNotFound}
	}
	if memberIndex < 0 || memberIndex >= len(list[from].Members) {
		return nil, &Error{
			Message: fmt.Sprintf("index %d in team %d (size %d)", memberIndex, fromTeamID, len(list[from].Members)),
			Cause:   ErrMemberNotFound,
		}
	}

	out := Recalculate(list)
	if from == to {
		return out, nil
	}

	moved := out[from].Members[memberIndex]
	out[from].Members = append(out[from].Members[:memberIndex], out[from].Members[memberIndex+1:]...)
	out[to].Members = append(out[to].Members, moved)

	return Recalculate(out), nil
}

// RemoveTeam drops an empty team from the list. Remaining teams keep their ids.
func RemoveTeam(list []types.Team, teamID int) ([]types.Team, error) {
	idx := indexOfTeam(list, teamID)
	if idx < 0 {
		return nil, &Error{Message: fmt.Sprintf("team %d", teamID), Cause: ErrTeamNotFound}
	}
	if n := len(list[idx].Members); n > 0 {
		return nil, &Error{Message: fmt.Sprintf("team %d has %d members", teamID, n), Cause: ErrTeamNotEmpty}
	}

	out := make([]types.Team, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return Recalculate(out), nil
}

func indexOfTeam(list []types.Team, teamID int) int {
	for i := range list {
		if list[i].ID == teamID {
			return i
		}
	}
	return -1
}
