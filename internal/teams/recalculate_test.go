package teams

import (
	"testing"

	"github.com/hhsaputraa/random-team-maker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editedTeams() []types.Team {
	return []types.Team{
		{
			ID: 1,
			Members: []types.Member{
				{Name: "Ani", Company: "Acme"},
				{Name: "Budi", Company: "Acme"},
				{Name: "Citra", Company: "Globex"},
			},
			// Stale: Budi was dragged in without updating the counts.
			CompanyDistribution: map[string]int{"Acme": 1, "Globex": 1, "Initech": 0},
		},
		{
			ID:                  2,
			Members:             []types.Member{{Name: "Dedi", Company: "Initech"}},
			CompanyDistribution: map[string]int{"Acme": 1, "Globex": 0, "Initech": 1},
		},
		{
			ID:                  3,
			Members:             []types.Member{},
			CompanyDistribution: map[string]int{"Acme": 0},
		},
	}
}

func TestRecalculate(t *testing.T) {
	got := Recalculate(editedTeams())

	require.Len(t, got, 3)
	assert.Equal(t, map[string]int{"Acme": 2, "Globex": 1}, got[0].CompanyDistribution)
	assert.Equal(t, map[string]int{"Initech": 1}, got[1].CompanyDistribution)
	assert.Empty(t, got[2].CompanyDistribution)
	assert.NotNil(t, got[2].CompanyDistribution)

	for i, team := range got {
		assert.Equal(t, i+1, team.ID)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	once := Recalculate(editedTeams())
	twice := Recalculate(once)
	assert.Equal(t, once, twice)
}

func TestRecalculate_PreservesMembers(t *testing.T) {
	input := editedTeams()
	got := Recalculate(input)

	total := 0
	for i := range got {
		assert.Equal(t, input[i].Members, got[i].Members)
		total += got[i].Size()
	}
	assert.Equal(t, 4, total)
}

func TestRecalculate_DoesNotModifyInput(t *testing.T) {
	input := editedTeams()
	got := Recalculate(input)

	got[0].Members[0].Name = "changed"
	got[0].CompanyDistribution["Acme"] = 99

	assert.Equal(t, editedTeams(), input)
}

func TestRecalculate_EmptyAndMissingMembers(t *testing.T) {
	assert.Empty(t, Recalculate(nil))

	got := Recalculate([]types.Team{{ID: 4}})
	require.Len(t, got, 1)
	assert.Empty(t, got[0].CompanyDistribution)
	assert.Empty(t, got[0].Members)
}

func TestRecalculate_AfterBuildMatchesNonZeroCounts(t *testing.T) {
	members := interleave(makeMembers("Acme", 3), makeMembers("Globex", 9))
	result, err := NewBuilder(WithRandom(NewSeededRandom(8))).Build(members, 4)
	require.NoError(t, err)

	got := Recalculate(result.Teams)
	for i, team := range got {
		for company, n := range result.Teams[i].CompanyDistribution {
			if n == 0 {
				_, ok := team.CompanyDistribution[company]
				assert.False(t, ok, "zero count for %s is not carried over", company)
			} else {
				assert.Equal(t, n, team.CompanyDistribution[company])
			}
		}
	}

	assert.Equal(t, result.Teams, ZeroFill(got, result.Companies))
}

func TestZeroFill(t *testing.T) {
	got := ZeroFill(Recalculate(editedTeams()), []string{"Acme", "Globex", "Initech"})

	assert.Equal(t, map[string]int{"Acme": 2, "Globex": 1, "Initech": 0}, got[0].CompanyDistribution)
	assert.Equal(t, map[string]int{"Acme": 0, "Globex": 0, "Initech": 1}, got[1].CompanyDistribution)
	assert.Equal(t, map[string]int{"Acme": 0, "Globex": 0, "Initech": 0}, got[2].CompanyDistribution)
}

func TestCompanies(t *testing.T) {
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, Companies(editedTeams()))
	assert.Empty(t, Companies(nil))
	assert.Empty(t, Companies([]types.Team{{ID: 1}}))
}
