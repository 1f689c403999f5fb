package teams

import (
	"github.com/hhsaputraa/random-team-maker/internal/types"
)

// Summarize reports team sizes and how evenly each company is spread.
// Companies are listed in result.Companies order; undersized teams are the
// teams holding fewer than result.TeamSize members.
func Summarize(result *types.DistributionResult) types.Summary {
	summary := types.Summary{
		Teams:           len(result.Teams),
		TotalMembers:    result.TotalMembers,
		AssignedMembers: result.AssignedMembers(),
		UnassignedCount: len(result.Unassigned),
		CompanyBalances: make([]types.CompanyBalance, 0, len(result.Companies)),
	}

	for _, team := range result.Teams {
		if result.TeamSize > 0 && team.Size() < result.TeamSize {
			summary.UndersizedTeams = append(summary.UndersizedTeams, team.ID)
		}
	}

	for _, company := range result.Companies {
		balance := types.CompanyBalance{Company: company}
		for i, team := range result.Teams {
			n := countCompany(team, company)
			balance.Total += n
			if i == 0 || n < balance.Min {
				balance.Min = n
			}
			if n > balance.Max {
				balance.Max = n
			}
		}
		summary.CompanyBalances = append(summary.CompanyBalances, balance)
	}

	return summary
}

// countCompany counts from members rather than trusting CompanyDistribution,
// which may be stale after an edit.
func countCompany(team types.Team, company string) int {
	n := 0
	for _, m := range team.Members {
		if m.Company == company {
			n++
		}
	}
	return n
}
