package engine

import (
	"camelup/analyzer"
	"camelup/game"
)

type rollerAgent struct{}

// NewRollerAgent returns an agent that always draws a die. The guaranteed
// coin per roll makes this the baseline policy.
func NewRollerAgent() Agent {
	return rollerAgent{}
}

func (rollerAgent) ChooseAction(g *game.Game) Action {
	return RollAction{}
}

type bettorAgent struct {
	analyzer  *analyzer.Analyzer
	threshold float64
}

// NewBettorAgent returns an agent that takes the statistically best leg bet
// whenever its expected payoff clears threshold, and rolls otherwise.
// Rolling pays a coin, so a threshold below 1 bets too eagerly.
func NewBettorAgent(a *analyzer.Analyzer, threshold float64) Agent {
	return &bettorAgent{analyzer: a, threshold: threshold}
}

func (b *bettorAgent) ChooseAction(g *game.Game) Action {
	color, expected := b.analyzer.BestLegBet(g)
	if expected >= b.threshold && g.CanBetOnLeg(color) {
		return LegBetAction{Color: color}
	}
	return RollAction{}
}
