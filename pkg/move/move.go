package move

import (
	"encoding/json"
	"fmt"
	"strings"

	"bigtwo-server/pkg/deck"
)

// Move is a set of cards played on a turn
// A Move is an immutable value. The zero value is a pass.
type Move struct {
	kind  Kind
	trick Trick
	cards [5]deck.Card
}

func newMove(kind Kind, trick Trick, cards []deck.Card) Move {
	m := Move{
		kind:  kind,
		trick: trick,
	}

	copy(m.cards[:], cards)
	return m
}

// Pass returns a move with no cards
func Pass() Move {
	return Move{}
}

// NewSingle returns a move of one card
func NewSingle(card deck.Card) Move {
	return newMove(KindSingle, NoTrick, []deck.Card{card})
}

// NewPair returns a move of two cards of the same rank
func NewPair(a, b deck.Card) (Move, error) {
	cards := []deck.Card{a, b}
	if !sameRank(cards) {
		return Move{}, ErrRankMismatch
	}

	return newMove(KindPair, NoTrick, cards), nil
}

// NewPrial returns a move of three cards of the same rank
func NewPrial(a, b, c deck.Card) (Move, error) {
	cards := []deck.Card{a, b, c}
	if !sameRank(cards) {
		return Move{}, ErrRankMismatch
	}

	return newMove(KindPrial, NoTrick, cards), nil
}

// NewFiveCardTrick returns a five card move
// The cards must form exactly the trick requested
func NewFiveCardTrick(trick Trick, cards []deck.Card) (Move, error) {
	if len(cards) != 5 {
		return Move{}, ErrInvalidCardCount
	}

	found, ok := analyzeTrick(cards)
	if !ok || found != trick {
		return Move{}, fmt.Errorf("%w: cards %s are not a %s", ErrInvalidTrick, deck.CardsToString(cards), trick)
	}

	return newMove(KindFiveCardTrick, trick, cards), nil
}

// Kind returns the category of the move
func (m Move) Kind() Kind {
	return m.kind
}

// Trick returns the trick of a five card move, or NoTrick
func (m Move) Trick() Trick {
	return m.trick
}

// Len returns the number of cards in the move
func (m Move) Len() int {
	return m.kind.Size()
}

// IsPass returns true if the move has no cards
func (m Move) IsPass() bool {
	return m.kind == KindPass
}

// Cards returns the cards in the order they were supplied
// The returned hand is a copy
func (m Move) Cards() deck.Hand {
	return deck.Hand(m.cards[:m.Len()]).Clone()
}

// String returns a readable form of the move, i.e., Pair(7♣ 7♠)
func (m Move) String() string {
	if m.IsPass() {
		return m.kind.String()
	}

	name := m.kind.String()
	if m.kind == KindFiveCardTrick {
		name = m.trick.String()
	}

	cards := make([]string, m.Len())
	for i, card := range m.cards[:m.Len()] {
		cards[i] = card.String()
	}

	return fmt.Sprintf("%s(%s)", name, strings.Join(cards, " "))
}

type moveJSON struct {
	Kind  string      `json:"kind"`
	Trick string      `json:"trick,omitempty"`
	Cards []deck.Card `json:"cards"`
}

// MarshalJSON encodes the move for log messages and snapshots
func (m Move) MarshalJSON() ([]byte, error) {
	out := moveJSON{
		Kind:  m.kind.String(),
		Cards: m.Cards(),
	}

	if m.kind == KindFiveCardTrick {
		out.Trick = m.trick.String()
	}

	return json.Marshal(out)
}

func sameRank(cards []deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Rank != cards[0].Rank {
			return false
		}
	}

	return true
}
