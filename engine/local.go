package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"camelup/experiments/metrics"
	"camelup/game"
)

// Local drives a race in-process, one agent per team in turn order.
type Local struct {
	game   *game.Game
	agents map[game.TeamName]Agent
}

// NewLocal pairs agents with the game's teams in turn order. Panics if the
// counts do not match; that is a wiring error, not a game outcome.
func NewLocal(g *game.Game, agents []Agent) *Local {
	if len(agents) != len(g.Teams) {
		panic("number of agents does not match number of teams")
	}

	byTeam := make(map[game.TeamName]Agent, len(agents))
	for i, agent := range agents {
		byTeam[game.TeamName(i)] = agent
	}
	return &Local{game: g, agents: byTeam}
}

// Run plays the race to completion and returns the winning teams. An agent
// returning an illegal action forfeits its choice and rolls instead, so the
// race always makes progress.
func (e *Local) Run() (map[game.TeamName]bool, metrics.GameMetric) {
	start := time.Now()
	turns := 0
	legs := 0

	for e.game.IsPlaying() && turns < MaxTurns {
		team := e.game.ActiveTeam
		diceBefore := len(e.game.DieRemaining)

		action := e.agents[team].ChooseAction(e.game)
		if err := action.Apply(e.game); err != nil {
			log.Warn().Err(err).
				Stringer("team", team).
				Stringer("action", action).
				Msg("agent chose an invalid action, rolling instead")
			action = RollAction{}
			_ = action.Apply(e.game)
		}
		log.Debug().
			Stringer("team", team).
			Stringer("action", action).
			Msg("turn played")

		// The dice count only grows when a leg (or the race) is settled.
		if len(e.game.DieRemaining) > diceBefore {
			legs++
		}
		turns++
	}

	winners, err := e.game.Winners()
	if err != nil {
		log.Warn().Int("turns", turns).Msg("race abandoned before a camel finished")
	}

	end := time.Now()
	metric := metrics.GameMetric{
		Winners:   winnersString(winners),
		Turns:     turns,
		Legs:      legs,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	return winners, metric
}

func winnersString(winners map[game.TeamName]bool) string {
	names := lo.Map(lo.Keys(winners), func(name game.TeamName, _ int) string {
		return name.String()
	})
	sort.Strings(names)
	return strings.Join(names, "+")
}
