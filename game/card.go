package game

// LegBetCard represents a bet that a camel of its color wins the current
// leg. Per color the deck holds cards with max payoffs 5, 3 and 2, dealt in
// that order.
type LegBetCard struct {
	Color     Color
	MaxPayoff int
}

// Payoff returns the coin value of this card given the place (1..5) the
// camel finished the leg in.
func (c LegBetCard) Payoff(place int) int {
	switch place {
	case 1:
		return c.MaxPayoff
	case 2:
		return 1
	default:
		return -1
	}
}

// MovementCard is a one-time tile placed on an empty spot. Any camel landing
// there moves one extra spot in the card's direction and the placing team
// earns a coin.
type MovementCard struct {
	Team    TeamName
	Forward bool
}

// OverallBetCard records a bet on the overall winner or loser of the race.
// The winner and loser lists keep these in placement order; order decides
// the payout at game end.
type OverallBetCard struct {
	Color Color
	Team  TeamName
}

// newLegBetDecks deals a fresh set of leg bet cards, three per color with
// max payoffs in descending order.
func newLegBetDecks() map[Color][]LegBetCard {
	decks := make(map[Color][]LegBetCard, NumCamels)
	for _, color := range Colors() {
		for _, max := range []int{5, 3, 2} {
			decks[color] = append(decks[color], LegBetCard{Color: color, MaxPayoff: max})
		}
	}
	return decks
}
