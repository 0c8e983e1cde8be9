package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"camelup/analyzer"
	"camelup/engine"
	"camelup/experiments"
	"camelup/game"
)

type config struct {
	teams       int
	parallelism int
	threshold   float64
	experiment  bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config{
		teams:       4,
		parallelism: 8,
		threshold:   2.0,
		experiment:  true,
	}

	runRace(cfg)

	if cfg.experiment {
		if err := experiments.RunThroughputExperiment(); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		if err := experiments.RunStrengthExperiment(); err != nil {
			log.Fatal().Err(err).Msg("strength experiment failed")
		}
	}
}

// runRace plays one automated race: half the teams bet via the enumerator,
// the other half just roll for coins.
func runRace(cfg config) {
	g, err := game.NewGame(cfg.teams, game.NewRoller())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	a := analyzer.New(analyzer.WithParallelism(cfg.parallelism))
	agents := make([]engine.Agent, cfg.teams)
	for i := range agents {
		if i%2 == 0 {
			agents[i] = engine.NewBettorAgent(a, cfg.threshold)
		} else {
			agents[i] = engine.NewRollerAgent()
		}
	}

	winners, metric := engine.NewLocal(g, agents).Run()
	for name := range winners {
		log.Info().
			Stringer("team", name).
			Int("coins", g.Teams[name].Coins).
			Msg("race won")
	}
	log.Info().
		Str("winners", metric.Winners).
		Int("turns", metric.Turns).
		Int("legs", metric.Legs).
		Dur("duration", metric.Duration).
		Msg("race finished")
}
