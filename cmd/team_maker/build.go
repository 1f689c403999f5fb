package main

import (
	"fmt"

	"github.com/hhsaputraa/random-team-maker/internal/observability"
	"github.com/hhsaputraa/random-team-maker/internal/teams"
	"github.com/hhsaputraa/random-team-maker/internal/types"
	"github.com/hhsaputraa/random-team-maker/schemas"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Split a roster into balanced teams",
	Long: `Read a roster JSON file ({"members": [{"name", "company"}]}) and split it into teams of
--team-size members, spreading each company as evenly as possible. The last team takes
the remainder when the roster does not divide evenly. Running build again on the same
roster gives a different arrangement unless --seed is set.`,
	RunE: runBuild,
}

var (
	buildInputFile  string
	buildOutputFile string
	buildTeamSize   int
	buildSeed       uint64
)

func init() {
	buildCmd.Flags().StringVarP(&buildInputFile, "in", "i", "", "Path to roster JSON file")
	buildCmd.Flags().StringVarP(&buildOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	buildCmd.Flags().IntVar(&buildTeamSize, "team-size", 0, "Members per team (default from config, else 7)")
	buildCmd.Flags().Uint64Var(&buildSeed, "seed", 0, "Random seed for a reproducible arrangement")

	if err := buildCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	var roster types.Roster
	if err := readDocument(buildInputFile, schemas.Roster, &roster); err != nil {
		return err
	}
	if err := roster.Validate(); err != nil {
		return fmt.Errorf("invalid roster: %w", err)
	}

	teamSize := appConfig.TeamSize
	if cmd.Flags().Changed("team-size") {
		teamSize = buildTeamSize
	}

	opts := []teams.Option{teams.WithLogger(logger)}
	if seed, ok := resolveSeed(cmd, buildSeed); ok {
		opts = append(opts, teams.WithRandom(teams.NewSeededRandom(seed)))
	}

	result, err := teams.NewBuilder(opts...).Build(roster.Members, teamSize)
	if err != nil {
		return fmt.Errorf("failed to build teams: %w", err)
	}

	summary := teams.Summarize(result)
	logger.Info("teams built",
		"result_id", result.ID,
		"members", summary.TotalMembers,
		"teams", summary.Teams,
		"team_size", result.TeamSize,
		"undersized_teams", summary.UndersizedTeams)
	if verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintTeams(result)
		printer.PrintSummary(summary)
	}
	if summary.UnassignedCount > 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d members could not be seated\n", summary.UnassignedCount)
	}

	return writeDocument(cmd.OutOrStdout(), buildOutputFile, schemas.DistributionResult, result)
}

// resolveSeed returns the seed from the flag when set, otherwise from config.
func resolveSeed(cmd *cobra.Command, flagValue uint64) (uint64, bool) {
	if cmd.Flags().Changed("seed") {
		return flagValue, true
	}
	if appConfig.Seed != nil {
		return *appConfig.Seed, true
	}
	return 0, false
}
