// Package experiments measures the outcome enumerator: how leg-bet
// evaluation throughput scales with parallelism. Results land as CSV files
// for plotting.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"camelup/analyzer"
	"camelup/engine"
	"camelup/experiments/metrics"
	"camelup/game"
)

// RunsPerConfig evaluations are made per parallelism setting, each from a
// different randomly seeded starting position.
const RunsPerConfig = 5

var parallelConfigs = []int{1, 2, 4, 8, 16, 32}

// RunThroughputExperiment evaluates full-leg enumerations (5 dice, 29160
// leaves each) across parallelism configs and writes per-run throughput
// records. The same seeds are reused for every config so all of them
// enumerate identical positions.
func RunThroughputExperiment() error {
	writer, err := metrics.NewWriter("parallel_throughput")
	if err != nil {
		return fmt.Errorf("failed to set up experiment output: %w", err)
	}

	seeds := make([]uint64, RunsPerConfig)
	for i := range seeds {
		seeds[i] = frand.Uint64n(1 << 62)
	}

	var records []metrics.SearchRecord
	run := 0
	for _, parallelism := range parallelConfigs {
		collector := metrics.NewCollector()
		a := analyzer.New(
			analyzer.WithParallelism(parallelism),
			analyzer.WithCollector(collector),
		)

		for _, seed := range seeds {
			g, err := game.NewGame(game.MinTeams, game.NewSeededRoller(seed))
			if err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}

			color, expected := a.BestLegBet(g)
			metric := collector.Complete()
			records = append(records, metrics.SearchRecord{Run: run, SearchMetric: metric})
			run++

			log.Info().
				Int("parallelism", parallelism).
				Uint64("seed", seed).
				Int("leaves", metric.Leaves).
				Dur("elapsed", metric.Duration).
				Stringer("best", color).
				Float64("expected", expected).
				Msg("evaluated position")
		}
	}

	return writer.WriteSearchRecords(records)
}

// RacesPerMatchup automated races are played per strength experiment.
const RacesPerMatchup = 20

// RunStrengthExperiment races one enumerator-driven bettor against three
// pure rollers and records every game, to measure whether the best-bet
// calculator actually buys an edge over guaranteed dice income.
func RunStrengthExperiment() error {
	writer, err := metrics.NewWriter("bettor_strength")
	if err != nil {
		return fmt.Errorf("failed to set up experiment output: %w", err)
	}

	a := analyzer.New(analyzer.WithParallelism(8))

	var records []metrics.GameRecord
	for i := 0; i < RacesPerMatchup; i++ {
		g, err := game.NewGame(4, game.NewRoller())
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		// The bettor plays as team A; winning records read "A" or contain it
		// on a tie.
		agents := []engine.Agent{
			engine.NewBettorAgent(a, 2.0),
			engine.NewRollerAgent(),
			engine.NewRollerAgent(),
			engine.NewRollerAgent(),
		}
		_, metric := engine.NewLocal(g, agents).Run()
		records = append(records, metrics.GameRecord{ID: i, GameMetric: metric})

		log.Info().
			Int("race", i).
			Str("winners", metric.Winners).
			Int("turns", metric.Turns).
			Int("legs", metric.Legs).
			Msg("race complete")
	}

	return writer.WriteGameRecords(records)
}
