package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name       string
		members    int
		teamSize   int
		numTeams   int
		remainder  int
		capacities []int
	}{
		{name: "exact multiple", members: 14, teamSize: 7, numTeams: 2, remainder: 0, capacities: []int{7, 7}},
		{name: "with remainder", members: 10, teamSize: 7, numTeams: 2, remainder: 3, capacities: []int{7, 3}},
		{name: "fewer than one team", members: 4, teamSize: 7, numTeams: 1, remainder: 4, capacities: []int{4}},
		{name: "team size one", members: 3, teamSize: 1, numTeams: 3, remainder: 0, capacities: []int{1, 1, 1}},
		{name: "no members", members: 0, teamSize: 7, numTeams: 0, remainder: 0, capacities: []int{}},
		{name: "many teams", members: 23, teamSize: 5, numTeams: 5, remainder: 3, capacities: []int{5, 5, 5, 5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := NewLayout(tt.members, tt.teamSize)

			assert.Equal(t, tt.teamSize, layout.TeamSize())
			assert.Equal(t, tt.numTeams, layout.NumTeams())
			assert.Equal(t, tt.remainder, layout.Remainder())
			assert.Equal(t, tt.members, layout.TotalCapacity())

			capacities := make([]int, 0, layout.NumTeams())
			for i := 0; i < layout.NumTeams(); i++ {
				capacities = append(capacities, layout.Capacity(i))
			}
			assert.Equal(t, tt.capacities, capacities)
		})
	}
}

func TestLayout_IsUndersized(t *testing.T) {
	layout := NewLayout(10, 7)
	assert.False(t, layout.IsUndersized(0))
	assert.True(t, layout.IsUndersized(1))

	full := NewLayout(14, 7)
	assert.False(t, full.IsUndersized(0))
	assert.False(t, full.IsUndersized(1))
}
