package declaration

import (
	"fmt"

	"liarspoker-server/pkg/deck"
)

// WildRank is the rank whose cards may stand in for any card needed to
// complete a declared hand. Wilds never satisfy the suit requirement of a
// straight flush on their own.
const WildRank = 2

// Kind identifies a hand category
type Kind string

// hand categories, weakest first
const (
	High          Kind = "HIGH"
	Pair          Kind = "PAIR"
	TwoPair       Kind = "TWO_PAIR"
	Trips         Kind = "TRIPS"
	Straight      Kind = "STRAIGHT"
	FullHouse     Kind = "FULL_HOUSE"
	Quads         Kind = "QUADS"
	StraightFlush Kind = "STRAIGHT_FLUSH"
	FiveOfAKind   Kind = "FIVE"
	SixOfAKind    Kind = "SIX"
	SevenOfAKind  Kind = "SEVEN"
	EightOfAKind  Kind = "EIGHT"
)

// Declaration is a claimed poker-style hand
// Which fields are meaningful depends on the Kind: Rank for the single-rank
// kinds, High/Low for two pair, Three/Two for a full house, and Highest for
// straights and straight flushes.
type Declaration struct {
	Kind    Kind `json:"kind"`
	Rank    int  `json:"rank,omitempty"`
	High    int  `json:"high,omitempty"`
	Low     int  `json:"low,omitempty"`
	Three   int  `json:"three,omitempty"`
	Two     int  `json:"two,omitempty"`
	Highest int  `json:"highest,omitempty"`
}

func validRank(rank int) bool {
	return rank >= 2 && rank <= deck.Ace
}

// Validate returns an error if the declaration is not a well-formed hand claim
func (d Declaration) Validate() error {
	switch d.Kind {
	case High, Pair, Trips, Quads, FiveOfAKind, SixOfAKind, SevenOfAKind, EightOfAKind:
		if !validRank(d.Rank) {
			return fmt.Errorf("invalid rank: %d", d.Rank)
		}
	case TwoPair:
		if !validRank(d.High) || !validRank(d.Low) {
			return fmt.Errorf("invalid ranks: %d and %d", d.High, d.Low)
		}

		if d.High <= d.Low {
			return fmt.Errorf("two pair must name the higher pair first")
		}
	case FullHouse:
		if !validRank(d.Three) || !validRank(d.Two) {
			return fmt.Errorf("invalid ranks: %d and %d", d.Three, d.Two)
		}

		if d.Three == d.Two {
			return fmt.Errorf("full house ranks must differ")
		}
	case Straight, StraightFlush:
		// Highest == 5 is the wheel (A-2-3-4-5)
		if d.Highest < 5 || d.Highest > deck.Ace {
			return fmt.Errorf("invalid straight top: %d", d.Highest)
		}
	default:
		return fmt.Errorf("unknown declaration kind: %s", d.Kind)
	}

	return nil
}

// Run returns the five ranks that form the declared straight, low to high.
// The wheel (Highest == 5) runs A-2-3-4-5 with the ace playing low.
func Run(highest int) []int {
	if highest == 5 {
		return []int{deck.Ace, 2, 3, 4, 5}
	}

	return []int{highest - 4, highest - 3, highest - 2, highest - 1, highest}
}
