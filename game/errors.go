package game

import "errors"

var (
	// ErrTeamCount is returned by NewGame when the team count is outside
	// [MinTeams, MaxTeams].
	ErrTeamCount = errors.New("number of teams must be between 2 and 8 inclusive")

	// ErrInvalidMove is returned when a player action violates its Can
	// predicate. The game state is left untouched.
	ErrInvalidMove = errors.New("invalid move")

	// ErrStillPlaying is returned by Winners while the race is in progress.
	ErrStillPlaying = errors.New("game is still being played")
)
