package round

import "errors"

// ErrNoPlayers is returned when a round is created without players
var ErrNoPlayers = errors.New("a round needs at least one player")

// ErrDuplicatePlayer is returned when a player appears twice in the roster
var ErrDuplicatePlayer = errors.New("player appears more than once")

// ErrPlayerNotSeated is returned when the current player is not in the roster
var ErrPlayerNotSeated = errors.New("current player needs to be in the pool of players")

// ErrNotPlayersTurn is returned when someone other than the current player plays
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrMoveKindMismatch is returned when a move is not the same kind as the move to beat
var ErrMoveKindMismatch = errors.New("move must be the same kind as the last move")

// ErrMoveTooLow is returned when a move does not beat the last move
var ErrMoveTooLow = errors.New("move does not beat the last move")
