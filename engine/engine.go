// Package engine runs automated races: each team is driven by an Agent that
// picks one of the four legal plays on its turn. It consumes the game
// package only through its public operations, the way any front end would.
package engine

import (
	"camelup/experiments/metrics"
	"camelup/game"
)

// MaxTurns bounds a race so a policy bug cannot spin forever. A real race
// ends far earlier; dice income alone pushes camels over the line.
const MaxTurns = 10000

// Engine runs a race till a camel crosses the finish line.
type Engine interface {
	Run() (winners map[game.TeamName]bool, metric metrics.GameMetric)
}

// Agent decides the active team's play for the current state. Agents may
// inspect the game freely but must mutate it only through the returned
// Action.
type Agent interface {
	ChooseAction(g *game.Game) Action
}
