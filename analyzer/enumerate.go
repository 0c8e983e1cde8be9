package analyzer

import (
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"camelup/game"
)

// tally accumulates leaf statistics for one slice of the outcome tree.
type tally struct {
	totals [game.NumCamels]int
	leaves int
	forks  int
}

func (t *tally) merge(other tally) {
	for i := range t.totals {
		t.totals[i] += other.totals[i]
	}
	t.leaves += other.leaves
	t.forks += other.forks
}

// Outcomes enumerates every leaf state reachable by rolling out the
// remaining dice: for each unrolled color and each face 1-3 an independent
// copy of the game is advanced and recursed into. A branch on which a camel
// crosses the finish line is a leaf too; the race is over and no further
// dice can change the ranking.
func Outcomes(g *game.Game) []*game.Game {
	if len(g.DieRemaining) == 0 || !g.IsPlaying() {
		return []*game.Game{g}
	}
	var outcomes []*game.Game
	for _, color := range g.DieRemaining {
		for roll := 1; roll <= 3; roll++ {
			fork := g.Copy()
			fork.MoveCamel(color, roll)
			fork.DiscardDie(color)
			outcomes = append(outcomes, Outcomes(fork)...)
		}
	}
	return outcomes
}

// accumulate walks the outcome tree below g without retaining leaf states,
// scoring every leaf's ranking against the captured top cards.
func accumulate(g *game.Game, topCards [game.NumCamels]*game.LegBetCard, t *tally) {
	if len(g.DieRemaining) == 0 || !g.IsPlaying() {
		places := g.Ranking()
		for _, color := range game.Colors() {
			if card := topCards[color]; card != nil {
				t.totals[color] += card.Payoff(places[color])
			}
		}
		t.leaves++
		return
	}
	for _, color := range g.DieRemaining {
		for roll := 1; roll <= 3; roll++ {
			fork := g.Copy()
			fork.MoveCamel(color, roll)
			fork.DiscardDie(color)
			t.forks++
			accumulate(fork, topCards, t)
		}
	}
}

// tally explores the whole outcome tree under g. With parallelism above 1
// the first branching level fans out over an errgroup; branches share
// nothing after their fork, so the reduction is a plain sum.
func (a *Analyzer) tally(g *game.Game, topCards [game.NumCamels]*game.LegBetCard) tally {
	if a.parallelism <= 1 || len(g.DieRemaining) == 0 {
		var t tally
		accumulate(g, topCards, &t)
		a.collector.AddForks(t.forks)
		a.collector.AddLeaves(t.leaves)
		return t
	}

	type branch struct {
		color game.Color
		roll  int
	}
	var branches []branch
	for _, color := range g.DieRemaining {
		for roll := 1; roll <= 3; roll++ {
			branches = append(branches, branch{color: color, roll: roll})
		}
	}

	results := make([]tally, len(branches))
	grp := errgroup.Group{}
	grp.SetLimit(a.parallelism)
	for i, b := range branches {
		i, b := i, b
		grp.Go(func() error {
			fork := g.Copy()
			fork.MoveCamel(b.color, b.roll)
			fork.DiscardDie(b.color)
			t := &results[i]
			t.forks++
			accumulate(fork, topCards, t)
			a.collector.AddForks(t.forks)
			a.collector.AddLeaves(t.leaves)
			return nil
		})
	}
	_ = grp.Wait() // branches never error

	return lo.Reduce(results, func(agg tally, item tally, _ int) tally {
		agg.merge(item)
		return agg
	}, tally{})
}
