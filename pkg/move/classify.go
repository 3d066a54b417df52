package move

import (
	"bigtwo-server/pkg/deck"
)

// Classify returns the move the cards make
// Cards are never re-ordered. A straight must be supplied in ascending rank order,
// i.e., 3h,4c,5d,6h,7s is a straight, but 4c,3h,5d,6h,7s is not.
// On error the returned move must be ignored.
func Classify(cards []deck.Card) (Move, error) {
	switch len(cards) {
	case 0:
		return Pass(), nil
	case 1:
		return NewSingle(cards[0]), nil
	case 2:
		return NewPair(cards[0], cards[1])
	case 3:
		return NewPrial(cards[0], cards[1], cards[2])
	case 5:
		trick, ok := analyzeTrick(cards)
		if !ok {
			return Move{}, ErrInvalidTrick
		}

		return newMove(KindFiveCardTrick, trick, cards), nil
	default:
		return Move{}, ErrInvalidCardCount
	}
}

// analyzeTrick determines which trick five cards form
func analyzeTrick(cards []deck.Card) (Trick, bool) {
	rankCounts := make(map[int]int)
	for _, card := range cards {
		rankCounts[card.Rank]++
	}

	switch len(rankCounts) {
	case 1:
		return FiveOfAKind, true
	case 2:
		// with two ranks, either count determines the split
		for _, count := range rankCounts {
			switch count {
			case 3, 2:
				return FullHouse, true
			case 4, 1:
				return FourOfAKind, true
			}
		}

		return NoTrick, false
	case 5:
		straight := isStraight(cards)
		flush := isFlush(cards)

		switch {
		case straight && flush:
			return StraightFlush, true
		case straight:
			return Straight, true
		case flush:
			return Flush, true
		}
	}

	return NoTrick, false
}

// isStraight checks that each card is one rank above the card before it
func isStraight(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		prevRank, ok := cards[i].PreviousRank()
		if !ok || prevRank != cards[i-1].Rank {
			return false
		}
	}

	return true
}

func isFlush(cards []deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}
