package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♣", Card{Rank: 2, Suit: Clubs}.String())
	assert.Equal(t, "10♢", Card{Rank: 10, Suit: Diamonds}.String())
	assert.Equal(t, "J♡", Card{Rank: Jack, Suit: Hearts}.String())
	assert.Equal(t, "Q♠", Card{Rank: Queen, Suit: Spades}.String())
	assert.Equal(t, "K♣", Card{Rank: King, Suit: Clubs}.String())
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())

	assert.Panics(t, func() {
		_ = Card{Rank: 2, Suit: "bad"}.String()
	})
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("14s").Equal(Card{Rank: Ace, Suit: Spades}))
	assert.False(t, CardFromString("14s").Equal(Card{Rank: Ace, Suit: Hearts}))
	assert.False(t, CardFromString("14s").Equal(Card{Rank: King, Suit: Spades}))
}

func TestCardFromString(t *testing.T) {
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, CardFromString("2c"))
	assert.Equal(t, Card{Rank: 13, Suit: Hearts}, CardFromString("13h"))
	assert.Equal(t, Card{Rank: 10, Suit: Diamonds}, CardFromString("10D"))

	assert.Panics(t, func() { CardFromString("1s") })
	assert.Panics(t, func() { CardFromString("15s") })
	assert.Panics(t, func() { CardFromString("5x") })
	assert.Panics(t, func() { CardFromString("") })
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,10d,14s")
	assert.Equal(t, []Card{
		{Rank: 2, Suit: Clubs},
		{Rank: 10, Suit: Diamonds},
		{Rank: 14, Suit: Spades},
	}, cards)

	assert.Equal(t, "2c,10d,14s", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))
}
