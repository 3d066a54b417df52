package round

import (
	"encoding/json"
	"fmt"

	"bigtwo-server/pkg/move"
)

// Round is one sequence of plays among a fixed set of players
// A Round is never modified. Every accepted play returns a new Round.
type Round struct {
	players       []int64
	currentPlayer int64
	lastMove      move.Move
}

// New returns a new round
// players are in turn order. lastMove is the move to beat, normally move.Pass()
func New(players []int64, currentPlayer int64, lastMove move.Move) (Round, error) {
	if len(players) == 0 {
		return Round{}, ErrNoPlayers
	}

	seen := make(map[int64]bool, len(players))
	for _, pid := range players {
		if seen[pid] {
			return Round{}, fmt.Errorf("%w: %d", ErrDuplicatePlayer, pid)
		}

		seen[pid] = true
	}

	if !seen[currentPlayer] {
		return Round{}, fmt.Errorf("%w: %d", ErrPlayerNotSeated, currentPlayer)
	}

	return Round{
		players:       append([]int64{}, players...),
		currentPlayer: currentPlayer,
		lastMove:      lastMove,
	}, nil
}

// MustNew is like New, but panics if the round would be invalid
func MustNew(players []int64, currentPlayer int64, lastMove move.Move) Round {
	r, err := New(players, currentPlayer, lastMove)
	if err != nil {
		panic(err)
	}

	return r
}

// Players returns a copy of the players in turn order
func (r Round) Players() []int64 {
	return append([]int64{}, r.players...)
}

// CurrentPlayer returns the player who should play the next move
func (r Round) CurrentPlayer() int64 {
	return r.currentPlayer
}

// LastMove returns the move that must be beaten
func (r Round) LastMove() move.Move {
	return r.lastMove
}

// NextPlayer returns the player after the current player, wrapping around
func (r Round) NextPlayer() int64 {
	for i, pid := range r.players {
		if pid == r.currentPlayer {
			return r.players[(i+1)%len(r.players)]
		}
	}

	// New() guarantees the current player is seated
	panic(fmt.Sprintf("current player %d is not in the round", r.currentPlayer))
}

// Play plays a move in the round
// If the play is accepted, the next round is returned. Otherwise r is returned
// unchanged along with the reason the play was rejected.
func (r Round) Play(playerID int64, m move.Move) (Round, error) {
	if playerID != r.currentPlayer {
		return r, ErrNotPlayersTurn
	}

	next := Round{
		players:       r.players,
		currentPlayer: r.NextPlayer(),
		lastMove:      r.lastMove,
	}

	// a pass never becomes the move to beat
	if m.IsPass() {
		return next, nil
	}

	// nothing to beat, so any move leads
	if r.lastMove.IsPass() {
		next.lastMove = m
		return next, nil
	}

	if !move.SameKind(m, r.lastMove) {
		return r, ErrMoveKindMismatch
	}

	if !m.Beats(r.lastMove) {
		return r, ErrMoveTooLow
	}

	next.lastMove = m
	return next, nil
}

// Equal returns true if both rounds have the same players, current player and last move
func (r Round) Equal(other Round) bool {
	if r.currentPlayer != other.currentPlayer || r.lastMove != other.lastMove {
		return false
	}

	if len(r.players) != len(other.players) {
		return false
	}

	for i := range r.players {
		if r.players[i] != other.players[i] {
			return false
		}
	}

	return true
}

func (r Round) String() string {
	return fmt.Sprintf("players=%v current=%d last=%s", r.players, r.currentPlayer, r.lastMove)
}

type roundJSON struct {
	Players       []int64   `json:"players"`
	CurrentPlayer int64     `json:"currentPlayer"`
	LastMove      move.Move `json:"lastMove"`
}

// MarshalJSON encodes the round for log messages and snapshots
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(roundJSON{
		Players:       r.players,
		CurrentPlayer: r.currentPlayer,
		LastMove:      r.lastMove,
	})
}
