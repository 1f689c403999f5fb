package main

import (
	"fmt"

	"github.com/hhsaputraa/random-team-maker/internal/teams"
	"github.com/hhsaputraa/random-team-maker/internal/types"
	"github.com/hhsaputraa/random-team-maker/schemas"
	"github.com/spf13/cobra"
)

var recalculateCmd = &cobra.Command{
	Use:   "recalculate",
	Short: "Recompute company counts of a hand-edited team list",
	Long: `Read a teams JSON file (the output of build, or any {"teams": [...]} document), rebuild
every team's company_distribution from its members and write the team list.
Companies with no member in a team are omitted unless --zero-fill is set.`,
	RunE: runRecalculate,
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move one member to another team",
	Long:  "Move the member at --index of team --from to the end of team --to and write the recalculated team list. Team sizes are not enforced.",
	RunE:  runMove,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an empty team",
	Long:  "Remove team --team from a team list. Only empty teams can be removed; other teams keep their ids.",
	RunE:  runRemove,
}

var parkCmd = &cobra.Command{
	Use:   "park",
	Short: "Set a member aside in the holding pool",
	Long: `Take the member at --index out of team --team and append it to the document's holding
pool, recording the team it came from. The team list is recalculated.`,
	RunE: runPark,
}

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Seat a pooled member in a team",
	Long:  "Move the pool entry at --pool-index to the end of team --team and write the recalculated team list. Team sizes are not enforced.",
	RunE:  runPlace,
}

var (
	editInputFile  string
	editOutputFile string
	zeroFill       bool
	moveFrom       int
	moveIndex      int
	moveTo         int
	removeTeamID   int
	parkTeamID     int
	parkIndex      int
	placePoolIndex int
	placeTeamID    int
)

func init() {
	for _, c := range []*cobra.Command{recalculateCmd, moveCmd, removeCmd, parkCmd, placeCmd} {
		c.Flags().StringVarP(&editInputFile, "in", "i", "", "Path to teams JSON file")
		c.Flags().StringVarP(&editOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
		if err := c.MarkFlagRequired("in"); err != nil {
			panic(fmt.Sprintf("failed to mark flag as required: %v", err))
		}
	}

	recalculateCmd.Flags().BoolVar(&zeroFill, "zero-fill", false, "List every company in every team, with zero counts where absent")

	moveCmd.Flags().IntVar(&moveFrom, "from", 0, "Id of the team the member leaves")
	moveCmd.Flags().IntVar(&moveIndex, "index", 0, "Position of the member in the source team (0-based)")
	moveCmd.Flags().IntVar(&moveTo, "to", 0, "Id of the team the member joins")
	for _, name := range []string{"from", "index", "to"} {
		if err := moveCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark flag as required: %v", err))
		}
	}

	removeCmd.Flags().IntVar(&removeTeamID, "team", 0, "Id of the team to remove")
	if err := removeCmd.MarkFlagRequired("team"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	parkCmd.Flags().IntVar(&parkTeamID, "team", 0, "Id of the team the member leaves")
	parkCmd.Flags().IntVar(&parkIndex, "index", 0, "Position of the member in the team (0-based)")
	placeCmd.Flags().IntVar(&placePoolIndex, "pool-index", 0, "Position of the member in the pool (0-based)")
	placeCmd.Flags().IntVar(&placeTeamID, "team", 0, "Id of the team the member joins")
	for c, names := range map[*cobra.Command][]string{parkCmd: {"team", "index"}, placeCmd: {"pool-index", "team"}} {
		for _, name := range names {
			if err := c.MarkFlagRequired(name); err != nil {
				panic(fmt.Sprintf("failed to mark flag as required: %v", err))
			}
		}
	}

	rootCmd.AddCommand(recalculateCmd, moveCmd, removeCmd, parkCmd, placeCmd)
}

// readTeams loads the team list and holding pool from --in.
func readTeams() ([]types.Team, []types.PooledMember, error) {
	var doc types.TeamsRequest
	if err := readDocument(editInputFile, schemas.Teams, &doc); err != nil {
		return nil, nil, err
	}
	return doc.Teams, doc.Pool, nil
}

func writeTeams(cmd *cobra.Command, list []types.Team, pool []types.PooledMember) error {
	return writeDocument(cmd.OutOrStdout(), editOutputFile, schemas.Teams, types.TeamsResponse{Teams: list, Pool: pool})
}

func runRecalculate(cmd *cobra.Command, _ []string) error {
	list, pool, err := readTeams()
	if err != nil {
		return err
	}

	out := teams.Recalculate(list)
	if zeroFill {
		out = teams.ZeroFill(out, teams.Companies(out))
	}

	logger.Info("distributions recalculated", "teams", len(out))
	return writeTeams(cmd, out, pool)
}

func runMove(cmd *cobra.Command, _ []string) error {
	list, pool, err := readTeams()
	if err != nil {
		return err
	}

	out, err := teams.MoveMember(list, moveFrom, moveIndex, moveTo)
	if err != nil {
		return fmt.Errorf("failed to move member: %w", err)
	}

	logger.Info("member moved", "from", moveFrom, "index", moveIndex, "to", moveTo)
	return writeTeams(cmd, out, pool)
}

func runRemove(cmd *cobra.Command, _ []string) error {
	list, pool, err := readTeams()
	if err != nil {
		return err
	}

	out, err := teams.RemoveTeam(list, removeTeamID)
	if err != nil {
		return fmt.Errorf("failed to remove team: %w", err)
	}

	logger.Info("team removed", "team", removeTeamID, "teams", len(out))
	return writeTeams(cmd, out, pool)
}

func runPark(cmd *cobra.Command, _ []string) error {
	list, pool, err := readTeams()
	if err != nil {
		return err
	}

	out, newPool, err := teams.ParkMember(list, pool, parkTeamID, parkIndex)
	if err != nil {
		return fmt.Errorf("failed to park member: %w", err)
	}

	logger.Info("member parked", "team", parkTeamID, "index", parkIndex, "pool", len(newPool))
	return writeTeams(cmd, out, newPool)
}

func runPlace(cmd *cobra.Command, _ []string) error {
	list, pool, err := readTeams()
	if err != nil {
		return err
	}

	out, newPool, err := teams.PlaceMember(list, pool, placePoolIndex, placeTeamID)
	if err != nil {
		return fmt.Errorf("failed to place member: %w", err)
	}

	logger.Info("member placed", "pool_index", placePoolIndex, "team", placeTeamID, "pool", len(newPool))
	return writeTeams(cmd, out, newPool)
}
