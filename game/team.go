package game

// MaxTeams and MinTeams bound the number of teams a game can be created
// with.
const (
	MinTeams = 2
	MaxTeams = 8
)

// StartingCoins is every team's bankroll at game start.
const StartingCoins = 3

// TeamName identifies one of up to eight teams.
type TeamName int

const (
	TeamA TeamName = iota
	TeamB
	TeamC
	TeamD
	TeamE
	TeamF
	TeamG
	TeamH
)

func (t TeamName) String() string {
	return string(rune('A' + int(t)))
}

// Team holds one team's coins and per-leg / per-game betting state.
type Team struct {
	Name               TeamName
	Coins              int // can go negative
	LegBetCards        []LegBetCard
	PlacedMovementCard bool
	OverallBetsMade    map[Color]bool // winner and loser bets tracked jointly
}

func newTeam(name TeamName) *Team {
	return &Team{
		Name:            name,
		Coins:           StartingCoins,
		OverallBetsMade: make(map[Color]bool, NumCamels),
	}
}

func (t *Team) copy() *Team {
	var legBets []LegBetCard
	if t.LegBetCards != nil {
		legBets = make([]LegBetCard, len(t.LegBetCards))
		copy(legBets, t.LegBetCards)
	}

	overallBets := make(map[Color]bool, len(t.OverallBetsMade))
	for color, made := range t.OverallBetsMade {
		overallBets[color] = made
	}

	return &Team{
		Name:               t.Name,
		Coins:              t.Coins,
		LegBetCards:        legBets,
		PlacedMovementCard: t.PlacedMovementCard,
		OverallBetsMade:    overallBets,
	}
}
