package move

import "fmt"

// Kind is the category of a move
// Moves of different kinds are never compared against each other by the round rules
type Kind int

// Constants for kind, weakest first
const (
	KindPass Kind = iota
	KindSingle
	KindPair
	KindPrial
	KindFiveCardTrick
)

// Size returns the number of cards a move of this kind holds
func (k Kind) Size() int {
	switch k {
	case KindPass:
		return 0
	case KindSingle:
		return 1
	case KindPair:
		return 2
	case KindPrial:
		return 3
	case KindFiveCardTrick:
		return 5
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindPass:
		return "Pass"
	case KindSingle:
		return "Single"
	case KindPair:
		return "Pair"
	case KindPrial:
		return "Prial"
	case KindFiveCardTrick:
		return "Five card trick"
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// Trick is the type of a five card trick
type Trick int

// Constants for trick, weakest first
// NoTrick is the trick of every move that is not a five card trick
const (
	NoTrick Trick = iota
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// String returns the string representation of a trick
func (t Trick) String() string {
	switch t {
	case NoTrick:
		return "None"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown trick: %d", t))
	}
}
