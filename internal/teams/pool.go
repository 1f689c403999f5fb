package teams

import (
	"fmt"

	"github.com/hhsaputraa/random-team-maker/internal/types"
)

// ParkMember takes the member at memberIndex out of team teamID and appends
// it to the holding pool, remembering the team it came from. It returns the
// recalculated team list and the new pool; neither input is modified.
func ParkMember(list []types.Team, pool []types.PooledMember, teamID, memberIndex int) ([]types.Team, []types.PooledMember, error) {
	idx := indexOfTeam(list, teamID)
	if idx < 0 {
		return nil, nil, &Error{Message: fmt.Sprintf("team %d", teamID), Cause: ErrTeamNotFound}
	}
	if memberIndex < 0 || memberIndex >= len(list[idx].Members) {
		return nil, nil, &Error{
			Message: fmt.Sprintf("index %d in team %d (size %d)", memberIndex, teamID, len(list[idx].Members)),
			Cause:   ErrMemberNotFound,
		}
	}

	out := Recalculate(list)
	parked := out[idx].Members[memberIndex]
	out[idx].Members = append(out[idx].Members[:memberIndex], out[idx].Members[memberIndex+1:]...)

	newPool := make([]types.PooledMember, 0, len(pool)+1)
	newPool = append(newPool, pool...)
	newPool = append(newPool, types.PooledMember{Member: parked, SourceTeam: teamID})

	return Recalculate(out), newPool, nil
}

// PlaceMember moves the pool entry at poolIndex to the end of team teamID.
// It returns the recalculated team list and the remaining pool; neither input
// is modified. Team capacity is not enforced.
func PlaceMember(list []types.Team, pool []types.PooledMember, poolIndex, teamID int) ([]types.Team, []types.PooledMember, error) {
	idx := indexOfTeam(list, teamID)
	if idx < 0 {
		return nil, nil, &Error{Message: fmt.Sprintf("team %d", teamID), Cause: ErrTeamNotFound}
	}
	if poolIndex < 0 || poolIndex >= len(pool) {
		return nil, nil, &Error{
			Message: fmt.Sprintf("pool index %d (size %d)", poolIndex, len(pool)),
			Cause:   ErrMemberNotFound,
		}
	}

	out := Recalculate(list)
	out[idx].Members = append(out[idx].Members, pool[poolIndex].Member)

	newPool := make([]types.PooledMember, 0, len(pool)-1)
	newPool = append(newPool, pool[:poolIndex]...)
	newPool = append(newPool, pool[poolIndex+1:]...)

	return Recalculate(out), newPool, nil
}
