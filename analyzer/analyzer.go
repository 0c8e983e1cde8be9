// Package analyzer computes which camel is statistically the best leg bet
// by exhaustively enumerating every sequencing of the remaining dice. Move
// order changes final stacking and therefore final rankings, so for k dice
// the full tree of k!*3^k outcomes is explored rather than sampled.
package analyzer

import (
	"github.com/rs/zerolog/log"

	"camelup/experiments/metrics"
	"camelup/game"
)

type Option func(*Analyzer)

// WithParallelism spreads the first branching level of the enumeration over
// n goroutines. Each branch works on its own copy of the game.
func WithParallelism(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.parallelism = n
		}
	}
}

// WithCollector plugs in a metrics collector for enumeration counters.
func WithCollector(c metrics.Collector) Option {
	return func(a *Analyzer) {
		if c != nil {
			a.collector = c
		}
	}
}

// Analyzer evaluates leg-bet expectations over exhaustive outcome trees.
// The zero configuration enumerates sequentially and discards metrics.
type Analyzer struct {
	parallelism int
	collector   metrics.Collector
}

func New(options ...Option) *Analyzer {
	a := &Analyzer{
		parallelism: 1,
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// BestLegBet returns the color whose leg bet taken right now has the
// greatest expected payoff, along with that expectation. Colors with an
// exhausted leg-bet deck contribute nothing and are never selected; ties
// break by the fixed color order. The game itself is never mutated.
func (a *Analyzer) BestLegBet(g *game.Game) (game.Color, float64) {
	// The payoff of a bet is fixed by the top card at the moment the bet is
	// taken, so capture the decks before exploring.
	var topCards [game.NumCamels]*game.LegBetCard
	for _, color := range game.Colors() {
		if deck := g.LegBetCards[color]; len(deck) > 0 {
			card := deck[0]
			topCards[color] = &card
		}
	}

	a.collector.Start(a.parallelism, len(g.DieRemaining))
	result := a.tally(g, topCards)
	metric := a.collector.Complete()

	log.Debug().
		Int("dice", len(g.DieRemaining)).
		Int("leaves", result.leaves).
		Int("parallelism", a.parallelism).
		Dur("elapsed", metric.Duration).
		Msg("enumerated leg outcomes")

	best := game.Blue
	found := false
	for _, color := range game.Colors() {
		if topCards[color] == nil {
			continue
		}
		if !found || result.totals[color] > result.totals[best] {
			best = color
			found = true
		}
	}
	if !found {
		// No leg bet can be taken at all; nothing meaningful to report.
		return best, 0
	}
	return best, float64(result.totals[best]) / float64(result.leaves)
}

// BestLegBet evaluates g with a default sequential Analyzer.
func BestLegBet(g *game.Game) (game.Color, float64) {
	return New().BestLegBet(g)
}
