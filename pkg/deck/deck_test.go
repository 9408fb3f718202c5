package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, d.Cards[51])

	// no duplicates
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		assert.False(t, seen[card], "duplicate card: %s", card)
		seen[card] = true
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := New()
	a.Shuffle(1)

	b := New()
	b.Shuffle(1)

	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.Equal(t, int64(1), a.GetSeed())
	assert.Equal(t, 52, a.CardsLeft())

	// shuffling again with the clock must still yield a full deck
	a.Shuffle(0)
	assert.Equal(t, 52, a.CardsLeft())

	assert.PanicsWithValue(t, "seed cannot be < 0", func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	assert.True(t, d.CanDraw(52))
	assert.False(t, d.CanDraw(53))

	card, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, card)
	assert.Equal(t, 51, d.CardsLeft())

	for d.CardsLeft() > 0 {
		_, err := d.Draw()
		assert.NoError(t, err)
	}

	card, err = d.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Equal(t, Card{}, card)
}

func TestDeck_DrawHand(t *testing.T) {
	d := New()

	hand, err := d.DrawHand(5)
	assert.NoError(t, err)
	assert.Equal(t, "2c,3c,4c,5c,6c", CardsToString(hand))
	assert.Equal(t, 47, d.CardsLeft())

	hand, err = d.DrawHand(48)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, hand)
	assert.Equal(t, 47, d.CardsLeft())
}
