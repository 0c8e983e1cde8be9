package game

import (
	"fmt"

	"github.com/samber/lo"
)

// Game holds the complete race state: the track, the camels, every team's
// coins and bets, and the dice still in the pyramid this leg. All mutation
// goes through the action methods; the exported fields are for rendering
// and analysis.
type Game struct {
	Teams              map[TeamName]*Team
	ActiveTeam         TeamName
	DieRemaining       []Color // colors not yet rolled this leg, in color order
	Camels             map[Color]*Camel
	Spots              []Spot
	LegBetCards        map[Color][]LegBetCard // per color, by descending payoff
	OverallWinnerCards []OverallBetCard
	OverallLoserCards  []OverallBetCard

	roller  DieRoller
	playing bool
	winners map[TeamName]bool
}

// NewGame creates a race with numTeams teams and rolls every camel onto the
// starting spots. The roller is retained for all subsequent dice rolls.
func NewGame(numTeams int, roller DieRoller) (*Game, error) {
	if numTeams < MinTeams || numTeams > MaxTeams {
		return nil, fmt.Errorf("%d teams: %w", numTeams, ErrTeamCount)
	}

	teams := make(map[TeamName]*Team, numTeams)
	for i := 0; i < numTeams; i++ {
		name := TeamName(i)
		teams[name] = newTeam(name)
	}

	spots, camels := generateBoard(roller)

	return &Game{
		Teams:        teams,
		ActiveTeam:   TeamA,
		DieRemaining: Colors(),
		Camels:       camels,
		Spots:        spots,
		LegBetCards:  newLegBetDecks(),
		roller:       roller,
		playing:      true,
	}, nil
}

// Copy returns a deep value copy sharing no mutable state with the
// receiver. Movement card pointers are duplicated too, so a copy can clear
// or settle cards without the original noticing.
func (g *Game) Copy() *Game {
	teams := make(map[TeamName]*Team, len(g.Teams))
	for name, team := range g.Teams {
		teams[name] = team.copy()
	}

	camels := make(map[Color]*Camel, len(g.Camels))
	for color, camel := range g.Camels {
		dup := *camel
		camels[color] = &dup
	}

	spots := make([]Spot, len(g.Spots))
	for i, spot := range g.Spots {
		spots[i] = Spot{Position: spot.Position, Camels: spot.Camels.copy()}
		if spot.MovementCard != nil {
			card := *spot.MovementCard
			spots[i].MovementCard = &card
		}
	}

	legBets := make(map[Color][]LegBetCard, len(g.LegBetCards))
	for color, deck := range g.LegBetCards {
		deckCopy := make([]LegBetCard, len(deck))
		copy(deckCopy, deck)
		legBets[color] = deckCopy
	}

	var winnerCards, loserCards []OverallBetCard
	if g.OverallWinnerCards != nil {
		winnerCards = make([]OverallBetCard, len(g.OverallWinnerCards))
		copy(winnerCards, g.OverallWinnerCards)
	}
	if g.OverallLoserCards != nil {
		loserCards = make([]OverallBetCard, len(g.OverallLoserCards))
		copy(loserCards, g.OverallLoserCards)
	}

	dieRemaining := make([]Color, len(g.DieRemaining))
	copy(dieRemaining, g.DieRemaining)

	var winners map[TeamName]bool
	if g.winners != nil {
		winners = make(map[TeamName]bool, len(g.winners))
		for name := range g.winners {
			winners[name] = true
		}
	}

	return &Game{
		Teams:              teams,
		ActiveTeam:         g.ActiveTeam,
		DieRemaining:       dieRemaining,
		Camels:             camels,
		Spots:              spots,
		LegBetCards:        legBets,
		OverallWinnerCards: winnerCards,
		OverallLoserCards:  loserCards,
		roller:             g.roller,
		playing:            g.playing,
		winners:            winners,
	}
}

// IsPlaying reports whether the race is still running (no camel has crossed
// the finish line yet).
func (g *Game) IsPlaying() bool {
	return g.playing
}

// Winners returns the teams with the highest coin total. Valid only after
// the race has finished.
func (g *Game) Winners() (map[TeamName]bool, error) {
	if g.playing {
		return nil, ErrStillPlaying
	}
	return g.winners, nil
}

// MoveCamel moves the camel of the given color by delta spots, carrying
// every camel stacked on top of it. A forward move past the last spot is
// clamped onto it and ends the race. Landing on a movement card pays its
// owner a coin and cascades the move one more spot in the card's direction.
func (g *Game) MoveCamel(color Color, delta int) {
	if delta == 0 {
		return
	}
	camel := g.Camels[color]
	newPos := camel.Pos + delta

	if delta > 0 && newPos > BoardSpots {
		g.MoveCamel(color, BoardSpots-camel.Pos)
		g.finishGame()
		return
	}

	chain := g.Spots[camel.Pos].Camels.DetachFrom(color)
	for _, c := range chain {
		g.Camels[c].Pos = newPos
	}
	if delta > 0 {
		g.Spots[newPos].Camels.AppendChain(chain)
	} else {
		g.Spots[newPos].Camels.PrependChain(chain)
	}

	if card := g.Spots[newPos].MovementCard; card != nil {
		g.Teams[card.Team].Coins++
		if card.Forward {
			g.MoveCamel(color, 1)
		} else {
			g.MoveCamel(color, -1)
		}
	}
}

// Ranking maps every color to its current place, 1 (leading) through 5.
// Spots are walked from the finish line back, stacks top to bottom, so ties
// are impossible.
func (g *Game) Ranking() map[Color]int {
	places := make(map[Color]int, NumCamels)
	place := 1
	for pos := BoardSpots; pos >= 0; pos-- {
		stack := g.Spots[pos].Camels
		for i := len(stack) - 1; i >= 0; i-- {
			places[stack[i]] = place
			place++
		}
	}
	return places
}

// finishLeg settles every held leg bet against the current ranking and
// resets all per-leg state: the dice, the leg bet decks, the movement cards
// and each team's placement flag.
func (g *Game) finishLeg() {
	g.DieRemaining = Colors()

	places := g.Ranking()
	for _, team := range g.Teams {
		for _, card := range team.LegBetCards {
			team.Coins += card.Payoff(places[card.Color])
		}
		team.LegBetCards = nil
		team.PlacedMovementCard = false
	}

	g.LegBetCards = newLegBetDecks()
	for i := range g.Spots {
		g.Spots[i].MovementCard = nil
	}
}

// overallPayoffs are the payout tiles for correct overall bets, claimed in
// placement order. The physical game has exactly five tiles, independent of
// team count.
var overallPayoffs = []int{8, 5, 3, 2, 1}

// finishGame scores the final leg, settles all overall bets and computes
// the winning team(s). Irreversible.
func (g *Game) finishGame() {
	g.finishLeg()

	places := g.Ranking()
	g.settleOverallBets(g.OverallWinnerCards, places, 1)
	g.settleOverallBets(g.OverallLoserCards, places, NumCamels)

	best := lo.MaxBy(lo.Values(g.Teams), func(a, b *Team) bool {
		return a.Coins > b.Coins
	})
	g.winners = make(map[TeamName]bool)
	for name, team := range g.Teams {
		if team.Coins == best.Coins {
			g.winners[name] = true
		}
	}

	g.playing = false
}

// settleOverallBets walks cards in placement order. A correct bet (its
// color finished in targetPlace) claims the next payout tile, if any are
// left; an incorrect bet always costs its team a coin.
func (g *Game) settleOverallBets(cards []OverallBetCard, places map[Color]int, targetPlace int) {
	paid := 0
	for _, card := range cards {
		if places[card.Color] == targetPlace {
			if paid < len(overallPayoffs) {
				g.Teams[card.Team].Coins += overallPayoffs[paid]
				paid++
			}
		} else {
			g.Teams[card.Team].Coins--
		}
	}
}

// finishTurn cycles to the next team, wrapping independently of leg
// boundaries.
func (g *Game) finishTurn() {
	g.ActiveTeam = TeamName((int(g.ActiveTeam) + 1) % len(g.Teams))
}

// DiscardDie removes color from the dice remaining this leg. No-op if the
// color was already rolled. Exposed for outcome enumeration, which applies
// moves without the turn bookkeeping of RollDice.
func (g *Game) DiscardDie(color Color) {
	for i, c := range g.DieRemaining {
		if c == color {
			g.DieRemaining = append(g.DieRemaining[:i], g.DieRemaining[i+1:]...)
			return
		}
	}
}

// RollDice draws a die from the pyramid for the active team: the team earns
// a coin, a random remaining color moves by a random 1-3 roll, and the leg
// is settled once the last die is out. Returns the color and face rolled.
func (g *Game) RollDice() (Color, int) {
	g.Teams[g.ActiveTeam].Coins++

	color := g.roller.Pick(g.DieRemaining)
	g.DiscardDie(color)
	roll := g.roller.Roll()
	g.MoveCamel(color, roll)

	// A race-ending move resets the dice itself, so this only fires on a
	// normal leg end.
	if len(g.DieRemaining) == 0 {
		g.finishLeg()
	}
	g.finishTurn()
	return color, roll
}

// CanBetOnLeg reports whether any leg bet cards remain for color.
func (g *Game) CanBetOnLeg(color Color) bool {
	return len(g.LegBetCards[color]) > 0
}

// BetOnLeg takes the highest remaining leg bet card for color into the
// active team's hand and returns its max payoff.
func (g *Game) BetOnLeg(color Color) (int, error) {
	if !g.CanBetOnLeg(color) {
		return 0, fmt.Errorf("no leg bet cards remaining for %s: %w", color, ErrInvalidMove)
	}

	card := g.LegBetCards[color][0]
	g.LegBetCards[color] = g.LegBetCards[color][1:]
	g.Teams[g.ActiveTeam].LegBetCards = append(g.Teams[g.ActiveTeam].LegBetCards, card)
	g.finishTurn()
	return card.MaxPayoff, nil
}

// CanPlaceMovementCard reports whether the active team may place a movement
// card at position: once per team per leg, on an empty interior spot with
// no card on it or on either neighbor.
func (g *Game) CanPlaceMovementCard(position int) bool {
	if g.Teams[g.ActiveTeam].PlacedMovementCard {
		return false
	}
	if position < 1 || position >= BoardSpots {
		return false
	}
	if g.Spots[position-1].MovementCard != nil {
		return false
	}
	if position < BoardSpots && g.Spots[position+1].MovementCard != nil {
		return false
	}
	if g.Spots[position].MovementCard != nil {
		return false
	}
	if len(g.Spots[position].Camels) > 0 {
		return false
	}
	return true
}

// PlaceMovementCard puts the active team's movement card on position,
// pointing forward or backward.
func (g *Game) PlaceMovementCard(forward bool, position int) error {
	if !g.CanPlaceMovementCard(position) {
		return fmt.Errorf("cannot place movement card at spot %d: %w", position, ErrInvalidMove)
	}

	g.Spots[position].MovementCard = &MovementCard{Team: g.ActiveTeam, Forward: forward}
	g.Teams[g.ActiveTeam].PlacedMovementCard = true
	g.finishTurn()
	return nil
}

// CanMakeOverallBet reports whether the active team may still bet on color
// finishing the race first or last. Winner and loser bets share the one
// bet-per-color budget.
func (g *Game) CanMakeOverallBet(color Color) bool {
	return !g.Teams[g.ActiveTeam].OverallBetsMade[color]
}

// MakeOverallBet records the active team's bet that color finishes the
// whole race in first (winner) or last (loser) place.
func (g *Game) MakeOverallBet(winner bool, color Color) error {
	if !g.CanMakeOverallBet(color) {
		return fmt.Errorf("team %s already bet on %s overall: %w", g.ActiveTeam, color, ErrInvalidMove)
	}

	g.Teams[g.ActiveTeam].OverallBetsMade[color] = true
	card := OverallBetCard{Color: color, Team: g.ActiveTeam}
	if winner {
		g.OverallWinnerCards = append(g.OverallWinnerCards, card)
	} else {
		g.OverallLoserCards = append(g.OverallLoserCards, card)
	}
	g.finishTurn()
	return nil
}
