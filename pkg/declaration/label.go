package declaration

import (
	"fmt"
	"strconv"

	"liarspoker-server/pkg/deck"
)

func rankLabel(rank int) string {
	switch rank {
	case deck.Jack:
		return "J"
	case deck.Queen:
		return "Q"
	case deck.King:
		return "K"
	case deck.Ace:
		return "A"
	}

	return strconv.Itoa(rank)
}

func plural(rank int) string {
	return rankLabel(rank) + "s"
}

func runLabel(highest int) string {
	if highest == 5 {
		return "A-5"
	}

	run := Run(highest)
	return fmt.Sprintf("%s-%s", rankLabel(run[0]), rankLabel(run[4]))
}

// Label returns a short display string for the declaration, e.g. "Pair, 10s"
func (d Declaration) Label() string {
	switch d.Kind {
	case High:
		return fmt.Sprintf("High Card, %s", rankLabel(d.Rank))
	case Pair:
		return fmt.Sprintf("Pair, %s", plural(d.Rank))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", plural(d.High), plural(d.Low))
	case Trips:
		return fmt.Sprintf("Trips, %s", plural(d.Rank))
	case Straight:
		return fmt.Sprintf("Straight, %s", runLabel(d.Highest))
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", plural(d.Three), plural(d.Two))
	case Quads:
		return fmt.Sprintf("Quads, %s", plural(d.Rank))
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s", runLabel(d.Highest))
	case FiveOfAKind:
		return fmt.Sprintf("5OAK, %s", plural(d.Rank))
	case SixOfAKind:
		return fmt.Sprintf("6OAK, %s", plural(d.Rank))
	case SevenOfAKind:
		return fmt.Sprintf("7OAK, %s", plural(d.Rank))
	case EightOfAKind:
		return fmt.Sprintf("8OAK, %s", plural(d.Rank))
	}

	panic(fmt.Sprintf("unknown declaration kind: %s", d.Kind))
}
