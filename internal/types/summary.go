package types

// CompanyBalance describes how one company's members are spread over the teams.
type CompanyBalance struct {
	Company string `json:"company"`
	Total   int    `json:"total"`
	Min     int    `json:"min"` // Fewest members of this company in any team
	Max     int    `json:"max"` // Most members of this company in any team
}

// Spread is the difference between the largest and smallest per-team count.
func (b CompanyBalance) Spread() int {
	return b.Max - b.Min
}

// Summary is a compact, display-oriented view of a DistributionResult.
type Summary struct {
	Teams           int              `json:"teams"`
	TotalMembers    int              `json:"total_members"`
	AssignedMembers int              `json:"assigned_members"`
	UnassignedCount int              `json:"unassigned_count"`
	UndersizedTeams []int            `json:"undersized_teams,omitempty"`
	CompanyBalances []CompanyBalance `json:"company_balances"`
}
