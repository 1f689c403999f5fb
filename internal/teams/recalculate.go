package teams

import (
	"github.com/hhsaputraa/random-team-maker/internal/types"
)

// Recalculate rebuilds every team's CompanyDistribution from its members.
//
// The input is not modified. Only companies with at least one member in a
// team get an entry; this differs from Build, which lists every known
// company with a zero count. Callers that need the zero entries merge the
// result with ZeroFill.
func Recalculate(list []types.Team) []types.Team {
	out := make([]types.Team, len(list))
	for i, team := range list {
		members := make([]types.Member, len(team.Members))
		copy(members, team.Members)

		dist := make(map[string]int)
		for _, m := range members {
			dist[m.Company]++
		}

		out[i] = types.Team{
			ID:                  team.ID,
			Members:             members,
			CompanyDistribution: dist,
		}
	}
	return out
}

// ZeroFill returns a copy of list where every company in companies has an
// entry in each team's distribution, adding zero counts where missing.
// Existing counts are kept as they are.
func ZeroFill(list []types.Team, companies []string) []types.Team {
	out := make([]types.Team, len(list))
	for i, team := range list {
		dist := make(map[string]int, len(companies))
		for _, c := range companies {
			dist[c] = 0
		}
		for c, n := range team.CompanyDistribution {
			dist[c] = n
		}
		out[i] = types.Team{
			ID:                  team.ID,
			Members:             team.Members,
			CompanyDistribution: dist,
		}
	}
	return out
}

// Companies lists the distinct companies of all members in list, in the order
// they first appear.
func Companies(list []types.Team) []string {
	seen := make(map[string]bool)
	companies := []string{}
	for _, team := range list {
		for _, m := range team.Members {
			if !seen[m.Company] {
				seen[m.Company] = true
				companies = append(companies, m.Company)
			}
		}
	}
	return companies
}
