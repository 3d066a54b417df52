package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bigtwo-server/pkg/deck"
)

func classify(t *testing.T, cards string) (Move, error) {
	t.Helper()
	return Classify(deck.CardsFromString(cards))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		kind  Kind
		trick Trick
		err   error
	}{
		{"pass", "", KindPass, NoTrick, nil},
		{"single", "7s", KindSingle, NoTrick, nil},
		{"pair", "7s,7h", KindPair, NoTrick, nil},
		{"mismatched pair", "7s,8s", KindPass, NoTrick, ErrRankMismatch},
		{"prial", "9c,9d,9h", KindPrial, NoTrick, nil},
		{"mismatched prial", "9c,9d,10h", KindPass, NoTrick, ErrRankMismatch},
		{"four cards", "9c,9d,9h,9s", KindPass, NoTrick, ErrInvalidCardCount},
		{"six cards", "2c,3c,4c,5c,6c,7c", KindPass, NoTrick, ErrInvalidCardCount},
		{"five of a kind", "9c,9d,9h,9s,9s", KindFiveCardTrick, FiveOfAKind, nil},
		{"full house", "9c,9d,9h,4s,4c", KindFiveCardTrick, FullHouse, nil},
		{"full house, pair first", "4s,4c,9c,9d,9h", KindFiveCardTrick, FullHouse, nil},
		{"four of a kind", "9c,9d,9h,9s,4c", KindFiveCardTrick, FourOfAKind, nil},
		{"four of a kind, kicker first", "4c,9c,9d,9h,9s", KindFiveCardTrick, FourOfAKind, nil},
		{"straight", "3h,4c,5d,6h,7s", KindFiveCardTrick, Straight, nil},
		{"straight to the ace", "10h,11c,12d,13h,14s", KindFiveCardTrick, Straight, nil},
		{"flush", "2h,5h,9h,11h,13h", KindFiveCardTrick, Flush, nil},
		{"straight flush", "3h,4h,5h,6h,7h", KindFiveCardTrick, StraightFlush, nil},
		{"out of order straight", "4c,3h,5d,6h,7s", KindPass, NoTrick, ErrInvalidTrick},
		{"descending straight", "7s,6h,5d,4c,3h", KindPass, NoTrick, ErrInvalidTrick},
		{"out of order straight flush is a flush", "4h,3h,5h,6h,7h", KindFiveCardTrick, Flush, nil},
		{"gap", "3h,4c,5d,6h,8s", KindPass, NoTrick, ErrInvalidTrick},
		{"two pair", "3h,3c,5d,5h,8s", KindPass, NoTrick, ErrInvalidTrick},
		{"three of a kind", "3h,3c,3d,5h,8s", KindPass, NoTrick, ErrInvalidTrick},
		{"one pair", "3h,3c,4d,5h,8s", KindPass, NoTrick, ErrInvalidTrick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			m, err := classify(t, tt.cards)
			if tt.err != nil {
				a.ErrorIs(err, tt.err)
				a.ErrorIs(err, ErrInvalidMove)
				return
			}

			a.NoError(err)
			a.Equal(tt.kind, m.Kind())
			a.Equal(tt.trick, m.Trick())
			a.Equal(tt.cards, m.Cards().String(), "cards keep the supplied order")
		})
	}
}

func TestClassify_allTwoCardSets(t *testing.T) {
	cards := deck.New().Cards
	for i, c1 := range cards {
		for j, c2 := range cards {
			if i == j {
				continue
			}

			m, err := Classify([]deck.Card{c1, c2})
			if c1.Rank == c2.Rank {
				assert.NoError(t, err)
				assert.Equal(t, KindPair, m.Kind())
			} else {
				assert.ErrorIs(t, err, ErrRankMismatch)
			}
		}
	}
}

func TestClassify_straightsFromEveryRank(t *testing.T) {
	suits := []deck.Suit{deck.Clubs, deck.Diamonds, deck.Hearts, deck.Spades}
	for low := deck.LowestRank; low+4 <= deck.HighestRank; low++ {
		flush := make([]deck.Card, 5)
		mixed := make([]deck.Card, 5)
		for i := 0; i < 5; i++ {
			flush[i] = deck.Card{Rank: low + i, Suit: deck.Hearts}
			mixed[i] = deck.Card{Rank: low + i, Suit: suits[i%4]}
		}

		m, err := Classify(flush)
		assert.NoError(t, err)
		assert.Equal(t, StraightFlush, m.Trick())

		m, err = Classify(mixed)
		assert.NoError(t, err)
		assert.Equal(t, Straight, m.Trick())

		// any rotation of the input breaks the run
		rotated := append(append([]deck.Card{}, mixed[1:]...), mixed[0])
		_, err = Classify(rotated)
		assert.ErrorIs(t, err, ErrInvalidTrick)
	}
}

func TestClassify_shuffledHands(t *testing.T) {
	d := deck.New()
	d.Shuffle(1234)

	for d.CanDraw(5) {
		cards, err := d.DrawN(5)
		assert.NoError(t, err)

		m, err := Classify(cards)
		if err != nil {
			assert.ErrorIs(t, err, ErrInvalidTrick)
			continue
		}

		// whatever was found, the constructor must agree
		m2, err := NewFiveCardTrick(m.Trick(), cards)
		assert.NoError(t, err)
		assert.Equal(t, m, m2)
	}
}

func TestClassify_doesNotAliasInput(t *testing.T) {
	cards := deck.CardsFromString("7s,7h")
	m, err := Classify(cards)
	assert.NoError(t, err)

	cards[0] = deck.CardFromString("14c")
	assert.Equal(t, "7s,7h", m.Cards().String())
}
