package engine

import (
	"fmt"

	"camelup/game"
)

// Action is one of the four plays a team can make on its turn.
type Action interface {
	Apply(g *game.Game) error
	String() string
}

// RollAction draws a die from the pyramid. Always legal.
type RollAction struct{}

func (RollAction) Apply(g *game.Game) error {
	g.RollDice()
	return nil
}

func (RollAction) String() string { return "roll" }

// LegBetAction takes the top leg bet card for a color.
type LegBetAction struct {
	Color game.Color
}

func (a LegBetAction) Apply(g *game.Game) error {
	_, err := g.BetOnLeg(a.Color)
	return err
}

func (a LegBetAction) String() string {
	return fmt.Sprintf("leg bet on %s", a.Color)
}

// PlaceCardAction places the team's movement card for this leg.
type PlaceCardAction struct {
	Forward  bool
	Position int
}

func (a PlaceCardAction) Apply(g *game.Game) error {
	return g.PlaceMovementCard(a.Forward, a.Position)
}

func (a PlaceCardAction) String() string {
	direction := "-"
	if a.Forward {
		direction = "+"
	}
	return fmt.Sprintf("movement card %s at spot %d", direction, a.Position)
}

// OverallBetAction bets on the overall winner or loser of the race.
type OverallBetAction struct {
	Winner bool
	Color  game.Color
}

func (a OverallBetAction) Apply(g *game.Game) error {
	return g.MakeOverallBet(a.Winner, a.Color)
}

func (a OverallBetAction) String() string {
	kind := "loser"
	if a.Winner {
		kind = "winner"
	}
	return fmt.Sprintf("overall %s bet on %s", kind, a.Color)
}
