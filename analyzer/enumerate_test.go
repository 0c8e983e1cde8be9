package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"camelup/experiments/metrics"
	"camelup/game"
)

// fixedRoller places every camel on spot 0 so tests arrange the board
// themselves.
type fixedRoller struct{}

func (fixedRoller) Roll() int { return 1 }

func (fixedRoller) Pick(remaining []game.Color) game.Color { return remaining[0] }

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(2, fixedRoller{})
	require.NoError(t, err)
	return g
}

// setBoard clears the track and arranges the given stacks.
func setBoard(g *game.Game, stacks map[int]game.Stack) {
	for i := range g.Spots {
		g.Spots[i].Camels = nil
		g.Spots[i].MovementCard = nil
	}
	for pos, stack := range stacks {
		g.Spots[pos].Camels = stack
		for _, color := range stack {
			g.Camels[color].Pos = pos
		}
	}
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

func pow3(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 3
	}
	return result
}

func TestOutcomes(t *testing.T) {
	t.Run("visits every ordering times every roll", func(t *testing.T) {
		for k := 1; k <= 3; k++ {
			g := newGame(t)
			// Mid-board positions: no branch can reach the finish line, so
			// every branch runs the full k dice.
			setBoard(g, map[int]game.Stack{
				2: {game.Blue}, 4: {game.Green}, 6: {game.Orange},
				7: {game.Yellow}, 8: {game.White},
			})
			g.DieRemaining = game.Colors()[:k]

			outcomes := Outcomes(g)

			require.Len(t, outcomes, factorial(k)*pow3(k),
				"With %d dice remaining the tree has k!*3^k leaves", k)
			for _, leaf := range outcomes {
				require.Empty(t, leaf.DieRemaining, "Every leaf has exhausted its dice")
			}
		}
	})

	t.Run("never mutates the evaluated game", func(t *testing.T) {
		g := newGame(t)
		setBoard(g, map[int]game.Stack{
			3: {game.Blue, game.Green}, 5: {game.Orange},
			6: {game.Yellow}, 7: {game.White},
		})
		g.DieRemaining = []game.Color{game.Blue, game.Green}
		snapshot := g.Copy()

		Outcomes(g)

		require.Equal(t, snapshot, g, "Enumeration must fork copies, never touch the caller's state")
	})

	t.Run("a branch that finishes the race is a leaf", func(t *testing.T) {
		g := newGame(t)
		setBoard(g, map[int]game.Stack{
			14: {game.Blue},
			0:  {game.Green, game.Orange, game.Yellow, game.White},
		})
		g.DieRemaining = []game.Color{game.Blue}

		outcomes := Outcomes(g)

		require.Len(t, outcomes, 3, "One die still branches over its three faces")
		finished := 0
		for _, leaf := range outcomes {
			require.Equal(t, 15, leaf.Camels[game.Blue].Pos, "Blue reaches the last spot on every branch")
			if !leaf.IsPlaying() {
				finished++
			}
		}
		require.Equal(t, 2, finished, "Rolls of 2 and 3 overflow and end the race")
	})
}

func TestBestLegBet(t *testing.T) {
	t.Run("a camel that always wins pays its full card", func(t *testing.T) {
		g := newGame(t)
		setBoard(g, map[int]game.Stack{
			10: {game.Blue},
			0:  {game.Green, game.Orange, game.Yellow, game.White},
		})
		g.DieRemaining = []game.Color{game.Green}

		color, expected := New().BestLegBet(g)

		require.Equal(t, game.Blue, color, "Blue finishes first on every branch")
		require.Equal(t, 5.0, expected, "Certain first place pays the top card's max payoff")
	})

	t.Run("colors with an exhausted deck are never selected", func(t *testing.T) {
		g := newGame(t)
		setBoard(g, map[int]game.Stack{
			10: {game.Blue},
			0:  {game.Green, game.Orange, game.Yellow, game.White},
		})
		g.DieRemaining = []game.Color{game.Green}
		g.LegBetCards[game.Blue] = nil

		color, expected := New().BestLegBet(g)

		require.Equal(t, game.White, color,
			"With Blue unavailable the certain second place is the best remaining bet")
		require.Equal(t, 1.0, expected, "Second place always pays 1")
	})

	t.Run("fresh game yields a finite expectation on an available color", func(t *testing.T) {
		g, err := game.NewGame(4, game.NewSeededRoller(17))
		require.NoError(t, err)

		color, expected := BestLegBet(g)

		require.NotEmpty(t, g.LegBetCards[color], "The selected color must have a card to take")
		require.False(t, expected != expected, "Expected payoff must not be NaN")
		require.LessOrEqual(t, expected, 5.0, "No leg bet can pay more than the top card")
		require.GreaterOrEqual(t, expected, -1.0, "No leg bet can lose more than 1 per leaf")
	})

	t.Run("parallel evaluation matches sequential", func(t *testing.T) {
		g, err := game.NewGame(2, game.NewSeededRoller(29))
		require.NoError(t, err)
		g.DieRemaining = game.Colors()[:4]

		seqColor, seqExpected := New().BestLegBet(g)
		parColor, parExpected := New(WithParallelism(8)).BestLegBet(g)

		require.Equal(t, seqColor, parColor, "Parallelism must not change the result")
		require.Equal(t, seqExpected, parExpected, "Plain summation is order-insensitive")
	})

	t.Run("collector counts the full tree", func(t *testing.T) {
		g := newGame(t)
		setBoard(g, map[int]game.Stack{
			2: {game.Blue}, 4: {game.Green}, 6: {game.Orange},
			7: {game.Yellow}, 8: {game.White},
		})
		g.DieRemaining = []game.Color{game.Blue, game.Green}
		collector := metrics.NewCollector()

		New(WithCollector(collector)).BestLegBet(g)

		metric := collector.Complete()
		require.Equal(t, 18, metric.Leaves, "2 dice make 2!*3^2 leaves")
		require.Equal(t, 24, metric.Forks, "Every edge of the tree forks one copy: 6 at the first level, 18 below")
		require.Equal(t, 2, metric.Dice)
		require.Equal(t, 1, metric.Parallelism)
	})
}
