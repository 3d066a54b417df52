package move

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the parent of every classification error
var ErrInvalidMove = errors.New("cards do not form a valid move")

// ErrInvalidCardCount is returned when the number of cards is not 0, 1, 2, 3 or 5
var ErrInvalidCardCount = fmt.Errorf("%w: a move is 0, 1, 2, 3 or 5 cards", ErrInvalidMove)

// ErrRankMismatch is returned when a pair or prial contains more than one rank
var ErrRankMismatch = fmt.Errorf("%w: all cards must have the same rank", ErrInvalidMove)

// ErrInvalidTrick is returned when five cards do not form a trick
var ErrInvalidTrick = fmt.Errorf("%w: five cards do not form a trick", ErrInvalidMove)
