package move

import "bigtwo-server/pkg/deck"

// Compare is a total order over moves.
// Moves are ordered by kind, then by trick, then card by card in the order the cards
// were supplied. It returns -1 if a < b, 0 if a == b and 1 if a > b
func Compare(a, b Move) int {
	switch {
	case a.kind < b.kind:
		return -1
	case a.kind > b.kind:
		return 1
	case a.trick < b.trick:
		return -1
	case a.trick > b.trick:
		return 1
	}

	for i := 0; i < a.Len(); i++ {
		if cmp := deck.Compare(a.cards[i], b.cards[i]); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// SameKind returns true if both moves are of the same category
func SameKind(a, b Move) bool {
	return a.kind == b.kind
}

// Beats returns true if m is the same kind as last and ranks strictly above it
func (m Move) Beats(last Move) bool {
	return SameKind(m, last) && Compare(m, last) > 0
}
