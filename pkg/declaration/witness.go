package declaration

import (
	"fmt"

	"liarspoker-server/pkg/deck"
)

// Witness selects the concrete cards that prove a feasible declaration, for
// revealing after a bluff call. The pick is greedy: an exact rank match is
// always preferred, and a wild is consumed only when no exact match remains.
// Given the same pool order and declaration, the witness set is reproducible.
func Witness(pool []deck.Card, d Declaration) []deck.Card {
	remaining := make([]deck.Card, len(pool))
	copy(remaining, pool)

	var used []deck.Card

	takeWhere := func(pred func(deck.Card) bool) bool {
		for i, card := range remaining {
			if pred(card) {
				remaining = append(remaining[0:i], remaining[i+1:]...)
				used = append(used, card)
				return true
			}
		}

		return false
	}

	takeRank := func(rank int) bool {
		return takeWhere(func(c deck.Card) bool { return c.Rank == rank })
	}

	takeWild := func() bool {
		return takeRank(WildRank)
	}

	needRank := func(rank, n int) {
		for i := 0; i < n; i++ {
			if !takeRank(rank) {
				takeWild()
			}
		}
	}

	switch d.Kind {
	case High:
		needRank(d.Rank, 1)
	case Pair:
		needRank(d.Rank, 2)
	case Trips:
		needRank(d.Rank, 3)
	case Quads:
		needRank(d.Rank, 4)
	case FiveOfAKind:
		needRank(d.Rank, 5)
	case SixOfAKind:
		needRank(d.Rank, 6)
	case SevenOfAKind:
		needRank(d.Rank, 7)
	case EightOfAKind:
		needRank(d.Rank, 8)
	case TwoPair:
		needRank(d.High, 2)
		needRank(d.Low, 2)
	case FullHouse:
		needRank(d.Three, 3)
		needRank(d.Two, 2)
	case Straight:
		for _, rank := range Run(d.Highest) {
			if !takeRank(rank) {
				takeWild()
			}
		}
	case StraightFlush:
		run := Run(d.Highest)

		// commit to the suit holding the most of the run's natural cards
		bestSuit := deck.Suits[0]
		bestCount := -1
		for _, suit := range deck.Suits {
			count := 0
			for _, card := range pool {
				if card.Suit == suit && card.Rank != WildRank && inRun(run, card.Rank) {
					count++
				}
			}

			if count > bestCount {
				bestCount = count
				bestSuit = suit
			}
		}

		for _, rank := range run {
			r := rank
			if takeWhere(func(c deck.Card) bool { return c.Suit == bestSuit && c.Rank == r && c.Rank != WildRank }) {
				continue
			}

			if takeWhere(func(c deck.Card) bool { return c.Rank == r && c.Rank != WildRank }) {
				continue
			}

			takeWild()
		}
	default:
		panic(fmt.Sprintf("unknown declaration kind: %s", d.Kind))
	}

	return used
}

func inRun(run []int, rank int) bool {
	for _, r := range run {
		if r == rank {
			return true
		}
	}

	return false
}
