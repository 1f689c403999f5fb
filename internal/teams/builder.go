package teams

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hhsaputraa/random-team-maker/internal/types"
)

// Builder partitions members into balanced teams.
//
// A Builder holds no per-build state; it is safe to reuse, and safe for
// concurrent use when its Random is.
type Builder struct {
	rng    Random
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithRandom sets the random source. Tests inject NewSeededRandom here.
func WithRandom(r Random) Option {
	return func(b *Builder) {
		b.rng = r
	}
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder. Without options it draws from the global
// math/rand/v2 generator and discards logs.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		rng:    globalRandom{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build partitions members into teams of teamSize.
//
// The algorithm:
//  1. Group members by company, keeping first-seen company order
//  2. For each company, shuffle its members and give every team up to
//     floor(companyTotal / numTeams) of them, respecting team capacity
//  3. Seat that company's leftovers one by one in the team with the fewest
//     members of the company, then the most free seats, then the lowest index
//  4. Shuffle each team's member list
//
// Members that find no free seat in step 3 are reported in Unassigned.
// Calling Build again on the same input yields a different valid partition.
func (b *Builder) Build(members []types.Member, teamSize int) (*types.DistributionResult, error) {
	if teamSize <= 0 {
		return nil, &Error{
			Message: fmt.Sprintf("team size must be positive, got %d", teamSize),
			Cause:   ErrInvalidArgument,
		}
	}

	if len(members) == 0 {
		return &types.DistributionResult{
			ID:        uuid.New(),
			Teams:     []types.Team{},
			Companies: []string{},
			TeamSize:  teamSize,
		}, nil
	}

	companies, byCompany := groupByCompany(members)
	layout := NewLayout(len(members), teamSize)
	numTeams := layout.NumTeams()

	b.logger.Debug("building teams",
		"members", len(members),
		"companies", len(companies),
		"team_size", teamSize,
		"teams", numTeams,
		"remainder", layout.Remainder())

	s := newSeating(numTeams, companies, layout.Capacity)

	var unassigned []types.Member
	for _, company := range companies {
		group := make([]types.Member, len(byCompany[company]))
		copy(group, byCompany[company])
		Shuffle(b.rng, group)

		ideal := len(group) / numTeams
		unassigned = append(unassigned, s.place(company, group, ideal)...)
	}

	for i := range s.teams {
		Shuffle(b.rng, s.teams[i].Members)
	}

	if len(unassigned) > 0 {
		b.logger.Warn("members left without a team",
			"unassigned", len(unassigned),
			"members", len(members),
			"team_size", teamSize)
	}

	return &types.DistributionResult{
		ID:           uuid.New(),
		Teams:        s.teams,
		TotalMembers: len(members),
		Companies:    companies,
		TeamSize:     teamSize,
		Unassigned:   unassigned,
	}, nil
}

// groupByCompany splits members by company. The returned company list is in
// first-seen order; each group keeps input order.
func groupByCompany(members []types.Member) ([]string, map[string][]types.Member) {
	companies := make([]string, 0)
	byCompany := make(map[string][]types.Member)
	for _, m := range members {
		if _, seen := byCompany[m.Company]; !seen {
			companies = append(companies, m.Company)
		}
		byCompany[m.Company] = append(byCompany[m.Company], m)
	}
	return companies, byCompany
}

// seating is the live assignment state shared by every company's pass.
type seating struct {
	teams    []types.Team
	capacity func(teamIndex int) int
}

func newSeating(numTeams int, companies []string, capacity func(int) int) *seating {
	list := make([]types.Team, numTeams)
	for i := range list {
		dist := make(map[string]int, len(companies))
		for _, c := range companies {
			dist[c] = 0
		}
		list[i] = types.Team{
			ID:                  i + 1,
			Members:             []types.Member{},
			CompanyDistribution: dist,
		}
	}
	return &seating{teams: list, capacity: capacity}
}

func (s *seating) freeSeats(teamIndex int) int {
	return s.capacity(teamIndex) - len(s.teams[teamIndex].Members)
}

func (s *seating) seat(teamIndex int, m types.Member) {
	team := &s.teams[teamIndex]
	team.Members = append(team.Members, m)
	team.CompanyDistribution[m.Company]++
}

// place seats one company's (already shuffled) members: first the ideal share
// per team, then the overflow. It returns the members that could not be seated.
func (s *seating) place(company string, group []types.Member, ideal int) []types.Member {
	next := 0

	for i := range s.teams {
		if next >= len(group) {
			break
		}
		take := min(ideal, s.freeSeats(i), len(group)-next)
		for ; take > 0; take-- {
			s.seat(i, group[next])
			next++
		}
	}

	for next < len(group) {
		target := s.overflowTarget(company)
		if target < 0 {
			return group[next:]
		}
		s.seat(target, group[next])
		next++
	}

	return nil
}

// overflowTarget picks the team that should receive the next leftover member
// of company, or -1 if every team is full.
func (s *seating) overflowTarget(company string) int {
	best := -1
	for i := range s.teams {
		free := s.freeSeats(i)
		if free <= 0 {
			continue
		}
		if best < 0 {
			best = i
			continue
		}

		count := s.teams[i].CompanyDistribution[company]
		bestCount := s.teams[best].CompanyDistribution[company]
		if count < bestCount || (count == bestCount && free > s.freeSeats(best)) {
			best = i
		}
	}
	return best
}
