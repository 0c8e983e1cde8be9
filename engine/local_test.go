package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"camelup/analyzer"
	"camelup/game"
)

// stubAgent always returns the same action, legal or not.
type stubAgent struct {
	action Action
}

func (s stubAgent) ChooseAction(g *game.Game) Action { return s.action }

func TestNewLocal(t *testing.T) {
	g, err := game.NewGame(3, game.NewSeededRoller(1))
	require.NoError(t, err)

	require.Panics(t, func() { NewLocal(g, []Agent{NewRollerAgent()}) },
		"Agent count must match team count")
}

func TestLocalRun(t *testing.T) {
	t.Run("pure rollers race to completion", func(t *testing.T) {
		g, err := game.NewGame(4, game.NewSeededRoller(5))
		require.NoError(t, err)
		agents := []Agent{NewRollerAgent(), NewRollerAgent(), NewRollerAgent(), NewRollerAgent()}

		winners, metric := NewLocal(g, agents).Run()

		require.False(t, g.IsPlaying(), "Dice income alone eventually pushes a camel over the line")
		require.NotEmpty(t, winners)
		require.NotEmpty(t, metric.Winners)
		require.Greater(t, metric.Turns, 0)
		require.GreaterOrEqual(t, metric.Legs, 1, "A race takes at least one leg")
		for _, team := range g.Teams {
			require.GreaterOrEqual(t, team.Coins, game.StartingCoins,
				"Teams that only roll can never lose coins")
		}
	})

	t.Run("bettor agents race to completion", func(t *testing.T) {
		g, err := game.NewGame(2, game.NewSeededRoller(9))
		require.NoError(t, err)
		a := analyzer.New(analyzer.WithParallelism(4))
		agents := []Agent{NewBettorAgent(a, 2.0), NewRollerAgent()}

		winners, _ := NewLocal(g, agents).Run()

		require.False(t, g.IsPlaying())
		require.NotEmpty(t, winners)
	})

	t.Run("an agent stuck on an illegal action falls back to rolling", func(t *testing.T) {
		g, err := game.NewGame(2, game.NewSeededRoller(13))
		require.NoError(t, err)
		// Team A insists on betting Blue every turn; after three bets the
		// deck is empty and every further attempt is rejected.
		agents := []Agent{stubAgent{action: LegBetAction{Color: game.Blue}}, NewRollerAgent()}

		winners, metric := NewLocal(g, agents).Run()

		require.False(t, g.IsPlaying(), "The fallback roll keeps the race moving")
		require.NotEmpty(t, winners)
		require.Less(t, metric.Turns, MaxTurns)
	})
}

func TestActionStrings(t *testing.T) {
	require.Equal(t, "roll", RollAction{}.String())
	require.Equal(t, "leg bet on Green", LegBetAction{Color: game.Green}.String())
	require.Equal(t, "movement card + at spot 7", PlaceCardAction{Forward: true, Position: 7}.String())
	require.Equal(t, "overall winner bet on White", OverallBetAction{Winner: true, Color: game.White}.String())
}
