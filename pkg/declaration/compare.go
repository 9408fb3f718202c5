package declaration

import "fmt"

// keys returns the sort keys for a declaration: the category followed by the
// category's tiebreak ranks. Comparing keys lexicographically yields a strict
// total order over valid declarations.
func (d Declaration) keys() []int {
	switch d.Kind {
	case High:
		return []int{0, d.Rank}
	case Pair:
		return []int{1, d.Rank}
	case TwoPair:
		return []int{2, d.High, d.Low}
	case Trips:
		return []int{3, d.Rank}
	case Straight:
		return []int{4, d.Highest}
	case FullHouse:
		return []int{5, d.Three, d.Two}
	case Quads:
		return []int{6, d.Rank}
	case StraightFlush:
		return []int{7, d.Highest}
	case FiveOfAKind:
		return []int{8, d.Rank}
	case SixOfAKind:
		return []int{9, d.Rank}
	case SevenOfAKind:
		return []int{10, d.Rank}
	case EightOfAKind:
		return []int{11, d.Rank}
	}

	panic(fmt.Sprintf("unknown declaration kind: %s", d.Kind))
}

// Beats returns true if next strictly exceeds prev.
// A nil prev is beaten by anything, so the opening declaration of a round is
// always legal.
func Beats(prev *Declaration, next Declaration) bool {
	if prev == nil {
		return true
	}

	a, b := next.keys(), prev.keys()
	for i := 0; i < len(a) || i < len(b); i++ {
		ai, bi := -1, -1
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}

		if ai == bi {
			continue
		}

		return ai > bi
	}

	return false
}
