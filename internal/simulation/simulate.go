// Package simulation repeats team builds over the same roster and reports how
// balanced the resulting partitions are, the way a user pressing "shuffle
// again" many times would see them.
package simulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hhsaputraa/random-team-maker/internal/logging"
	"github.com/hhsaputraa/random-team-maker/internal/teams"
	"github.com/hhsaputraa/random-team-maker/internal/types"
	"golang.org/x/sync/errgroup"
)

// Options controls a simulation.
type Options struct {
	Members  []types.Member
	TeamSize int
	Runs     int    // Number of builds; must be positive
	Workers  int    // Concurrent builds; values below 1 mean 1
	Seed     uint64 // Run i uses seed Seed+i, so a report is reproducible
	Logger   *slog.Logger
}

// CompanyStats aggregates one company's spread over all runs.
type CompanyStats struct {
	Company     string  `json:"company"`
	Members     int     `json:"members"`
	MeanSpread  float64 `json:"mean_spread"`
	WorstSpread int     `json:"worst_spread"`
	EvenRuns    int     `json:"even_runs"` // Runs where the spread was at most 1
}

// Report is the outcome of a simulation.
type Report struct {
	Runs            int            `json:"runs"`
	TeamSize        int            `json:"team_size"`
	Teams           int            `json:"teams"`
	RunsWithDrops   int            `json:"runs_with_drops"`
	TotalUnassigned int            `json:"total_unassigned"`
	Companies       []CompanyStats `json:"companies"`
}

// Run performs opts.Runs independent builds on a bounded pool of workers and
// aggregates their summaries. It stops early when ctx is cancelled.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d: %w", opts.Runs, teams.ErrInvalidArgument)
	}
	if opts.TeamSize <= 0 {
		return nil, fmt.Errorf("team size must be positive, got %d: %w", opts.TeamSize, teams.ErrInvalidArgument)
	}
	workers := max(opts.Workers, 1)
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	logger.Info("starting simulation",
		"runs", opts.Runs,
		"workers", workers,
		"members", len(opts.Members),
		"team_size", opts.TeamSize)

	summaries := make([]types.Summary, opts.Runs)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			builder := teams.NewBuilder(teams.WithRandom(teams.NewSeededRandom(opts.Seed + uint64(i))))
			result, err := builder.Build(opts.Members, opts.TeamSize)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			summaries[i] = teams.Summarize(result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := aggregate(summaries, opts.TeamSize)
	logger.Info("simulation finished",
		"runs", report.Runs,
		"runs_with_drops", report.RunsWithDrops)
	return report, nil
}

func aggregate(summaries []types.Summary, teamSize int) *Report {
	report := &Report{
		Runs:     len(summaries),
		TeamSize: teamSize,
	}
	if len(summaries) == 0 {
		return report
	}
	report.Teams = summaries[0].Teams

	stats := make([]CompanyStats, len(summaries[0].CompanyBalances))
	totals := make([]int, len(stats))
	for i, b := range summaries[0].CompanyBalances {
		stats[i] = CompanyStats{Company: b.Company, Members: b.Total}
	}

	for _, s := range summaries {
		if s.UnassignedCount > 0 {
			report.RunsWithDrops++
			report.TotalUnassigned += s.UnassignedCount
		}
		// Every run sees the same companies in the same order.
		for i, b := range s.CompanyBalances {
			spread := b.Spread()
			totals[i] += spread
			stats[i].WorstSpread = max(stats[i].WorstSpread, spread)
			if spread <= 1 {
				stats[i].EvenRuns++
			}
		}
	}

	for i := range stats {
		stats[i].MeanSpread = float64(totals[i]) / float64(len(summaries))
	}
	report.Companies = stats
	return report
}
