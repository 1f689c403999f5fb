package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hhsaputraa/random-team-maker/internal/schemas"
	"github.com/hhsaputraa/random-team-maker/internal/types"
	schemafiles "github.com/hhsaputraa/random-team-maker/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeRoster(t, dir, "Acme", 7, "Globex", 7)
	out := filepath.Join(dir, "nested", "teams.json")

	_, _, err := execute(t, "build", "--in", in, "--out", out, "--team-size", "7", "--seed", "5")
	require.NoError(t, err)

	require.NoError(t, schemas.ValidateFile(schemafiles.DistributionResult, out))

	var result types.DistributionResult
	readJSON(t, out, &result)
	assert.Equal(t, 14, result.TotalMembers)
	assert.Equal(t, 7, result.TeamSize)
	require.Len(t, result.Teams, 2)
	for _, team := range result.Teams {
		assert.Len(t, team.Members, 7)
		assert.Contains(t, []int{3, 4}, team.CompanyDistribution["Acme"])
		assert.Contains(t, []int{3, 4}, team.CompanyDistribution["Globex"])
	}
}

func TestBuildCommand_Stdout(t *testing.T) {
	in := writeRoster(t, t.TempDir(), "Acme", 3, "Globex", 2)

	stdout, _, err := execute(t, "build", "--in", in, "--team-size", "2")
	require.NoError(t, err)

	var result types.DistributionResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Teams, 3)
	assert.Equal(t, 5, result.AssignedMembers())
}

func TestBuildCommand_SeedIsReproducible(t *testing.T) {
	in := writeRoster(t, t.TempDir(), "Acme", 6, "Globex", 5, "Initech", 4)

	first, _, err := execute(t, "build", "--in", in, "--team-size", "4", "--seed", "11")
	require.NoError(t, err)
	second, _, err := execute(t, "build", "--in", in, "--team-size", "4", "--seed", "11")
	require.NoError(t, err)

	var a, b types.DistributionResult
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Equal(t, a.Teams, b.Teams)
}

func TestBuildCommand_DefaultTeamSize(t *testing.T) {
	in := writeRoster(t, t.TempDir(), "Acme", 9)

	stdout, _, err := execute(t, "build", "--in", in)
	require.NoError(t, err)

	var result types.DistributionResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 7, result.TeamSize)
	require.Len(t, result.Teams, 2)
	assert.Len(t, result.Teams[1].Members, 2)
}

func TestBuildCommand_TeamSizeFromConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeRoster(t, dir, "Acme", 7, "Globex", 7)
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("team_size: 4\nseed: 3\nlog_level: ERROR\n"), 0644))

	stdout, _, err := execute(t, "build", "--config", cfgPath, "--in", in)
	require.NoError(t, err)

	var result types.DistributionResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 4, result.TeamSize)
	assert.Len(t, result.Teams, 4)

	// The flag wins over the config file
	stdout, _, err = execute(t, "build", "--config", cfgPath, "--in", in, "--team-size", "7")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 7, result.TeamSize)
}

func TestBuildCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	roster := writeRoster(t, dir, "Acme", 3)
	badRoster := writeJSON(t, dir, "bad.json", map[string]any{
		"members": []map[string]string{{"name": "x"}},
	})
	badConfig := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("log_format: xml\n"), 0644))

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --in flag",
			args:        []string{"build"},
			errorString: "required",
		},
		{
			name:        "Input file not found",
			args:        []string{"build", "--in", filepath.Join(dir, "missing.json")},
			errorString: "failed to read input file",
		},
		{
			name:        "Roster fails schema",
			args:        []string{"build", "--in", badRoster},
			errorString: "does not validate",
		},
		{
			name:        "Zero team size",
			args:        []string{"build", "--in", roster, "--team-size", "0"},
			errorString: "team size must be positive",
		},
		{
			name:        "Invalid config",
			args:        []string{"build", "--config", badConfig, "--in", roster},
			errorString: "config error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestBuildCommand_Verbose(t *testing.T) {
	in := writeRoster(t, t.TempDir(), "Acme", 4, "Globex", 3)

	stdout, stderr, err := execute(t, "build", "--in", in, "--team-size", "4", "--verbose", "--log-level", "ERROR")
	require.NoError(t, err)

	assert.Contains(t, stderr, "TEAMS")
	assert.Contains(t, stderr, "COMPANY BALANCE")

	var result types.DistributionResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Len(t, result.Teams, 2)
}
