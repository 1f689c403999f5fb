package main

import (
	"fmt"

	"github.com/hhsaputraa/random-team-maker/internal/observability"
	"github.com/hhsaputraa/random-team-maker/internal/simulation"
	"github.com/hhsaputraa/random-team-maker/internal/types"
	"github.com/hhsaputraa/random-team-maker/schemas"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Build a roster many times and report how balanced the teams are",
	Long: `Run build --runs times over the same roster on --workers concurrent workers and report,
per company, the mean and worst spread between its most and least represented team.
Run i uses seed --seed + i, so the report is reproducible.`,
	RunE: runSimulate,
}

var (
	simInputFile  string
	simOutputFile string
	simTeamSize   int
	simRuns       int
	simWorkers    int
	simSeed       uint64
)

func init() {
	simulateCmd.Flags().StringVarP(&simInputFile, "in", "i", "", "Path to roster JSON file")
	simulateCmd.Flags().StringVarP(&simOutputFile, "out", "o", "", "Path to output JSON report (default: stdout)")
	simulateCmd.Flags().IntVar(&simTeamSize, "team-size", 0, "Members per team (default from config, else 7)")
	simulateCmd.Flags().IntVar(&simRuns, "runs", 0, "Number of builds (default from config, else 1000)")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "Concurrent builds (default from config, else 4)")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "Base random seed")

	if err := simulateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	var roster types.Roster
	if err := readDocument(simInputFile, schemas.Roster, &roster); err != nil {
		return err
	}
	if err := roster.Validate(); err != nil {
		return fmt.Errorf("invalid roster: %w", err)
	}

	opts := simulation.Options{
		Members:  roster.Members,
		TeamSize: appConfig.TeamSize,
		Runs:     appConfig.Runs,
		Workers:  appConfig.Workers,
		Logger:   logger,
	}
	if cmd.Flags().Changed("team-size") {
		opts.TeamSize = simTeamSize
	}
	if cmd.Flags().Changed("runs") {
		opts.Runs = simRuns
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = simWorkers
	}
	if seed, ok := resolveSeed(cmd, simSeed); ok {
		opts.Seed = seed
	}

	report, err := simulation.Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintReport(report)
	}

	return writeDocument(cmd.OutOrStdout(), simOutputFile, "", report)
}
