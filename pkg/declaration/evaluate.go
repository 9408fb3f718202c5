package declaration

import (
	"fmt"

	"liarspoker-server/pkg/deck"
)

// CanMake reports whether the declared hand can be assembled from the combined
// card pool. The pool is the union of every in-play hand, not any single
// player's cards. Cards of the wild rank may stand in for any needed card;
// within a multi-rank claim the wilds are shared across both ranks.
func CanMake(pool []deck.Card, d Declaration) bool {
	wilds := 0
	counts := make(map[int]int)
	for _, card := range pool {
		counts[card.Rank]++
		if card.Rank == WildRank {
			wilds++
		}
	}

	// can we produce n cards of the given rank?
	need := func(rank, n int) bool {
		if rank == WildRank {
			return wilds >= n
		}

		return counts[rank]+wilds >= n
	}

	// how many wilds are required to produce n cards of the given rank?
	needWilds := func(rank, n int) int {
		if rank == WildRank {
			return n
		}

		if short := n - counts[rank]; short > 0 {
			return short
		}

		return 0
	}

	straight := func(highest int) bool {
		have := 0
		for _, rank := range Run(highest) {
			if rank != WildRank && counts[rank] > 0 {
				have++
			}
		}

		return wilds >= 5-have
	}

	// a wild fills a rank gap in any suit, so the shortfall in each suit is
	// measured against the full wild count
	straightFlush := func(highest int) bool {
		run := Run(highest)
		for _, suit := range deck.Suits {
			inSuit := make(map[int]bool)
			for _, card := range pool {
				if card.Suit == suit && card.Rank != WildRank {
					inSuit[card.Rank] = true
				}
			}

			have := 0
			for _, rank := range run {
				if rank != WildRank && inSuit[rank] {
					have++
				}
			}

			if wilds >= 5-have {
				return true
			}
		}

		return false
	}

	switch d.Kind {
	case High:
		return need(d.Rank, 1)
	case Pair:
		return need(d.Rank, 2)
	case TwoPair:
		if d.High == d.Low {
			return false
		}

		return wilds >= needWilds(d.High, 2)+needWilds(d.Low, 2)
	case Trips:
		return need(d.Rank, 3)
	case Straight:
		return straight(d.Highest)
	case FullHouse:
		if d.Three == d.Two {
			return false
		}

		return wilds >= needWilds(d.Three, 3)+needWilds(d.Two, 2)
	case Quads:
		return need(d.Rank, 4)
	case StraightFlush:
		return straightFlush(d.Highest)
	case FiveOfAKind:
		return need(d.Rank, 5)
	case SixOfAKind:
		return need(d.Rank, 6)
	case SevenOfAKind:
		return need(d.Rank, 7)
	case EightOfAKind:
		return need(d.Rank, 8)
	}

	panic(fmt.Sprintf("unknown declaration kind: %s", d.Kind))
}
