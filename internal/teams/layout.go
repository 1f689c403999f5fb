package teams

// DefaultTeamSize is the team size used when the caller does not choose one.
const DefaultTeamSize = 7

// Layout describes how many teams a build produces and how many members each
// may hold. All teams are full-sized except the last one, which absorbs the
// remainder when the member count is not a multiple of the team size.
type Layout struct {
	members  int
	teamSize int
}

// NewLayout returns the layout for n members split into teams of teamSize.
// teamSize must be positive.
func NewLayout(n, teamSize int) Layout {
	return Layout{members: n, teamSize: teamSize}
}

// TeamSize returns the full team size.
func (l Layout) TeamSize() int {
	return l.teamSize
}

// Remainder returns the size of the remainder team, or 0 when every team is full.
func (l Layout) Remainder() int {
	return l.members % l.teamSize
}

// NumTeams returns the number of teams, counting the remainder team if any.
func (l Layout) NumTeams() int {
	n := l.members / l.teamSize
	if l.Remainder() > 0 {
		n++
	}
	return n
}

// Capacity returns the maximum number of members team teamIndex (0-based) may hold.
func (l Layout) Capacity(teamIndex int) int {
	if l.Remainder() > 0 && teamIndex == l.NumTeams()-1 {
		return l.Remainder()
	}
	return l.teamSize
}

// TotalCapacity returns the sum of all team capacities. It equals the member count.
func (l Layout) TotalCapacity() int {
	total := 0
	for i := 0; i < l.NumTeams(); i++ {
		total += l.Capacity(i)
	}
	return total
}

// IsUndersized reports whether team teamIndex is the remainder team.
func (l Layout) IsUndersized(teamIndex int) bool {
	return l.Capacity(teamIndex) < l.teamSize
}
