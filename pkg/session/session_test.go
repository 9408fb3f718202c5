package session

import (
	"testing"

	"liarspoker-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestSession_ActiveSeats(t *testing.T) {
	s := playingSession("alice", "bob", "carol")
	assert.Equal(t, []string{"alice", "bob", "carol"}, s.ActiveSeats())

	s.Players["bob"].Eliminated = true
	assert.Equal(t, []string{"alice", "carol"}, s.ActiveSeats())
}

func TestSession_NextActiveSeatAfter(t *testing.T) {
	s := playingSession("alice", "bob", "carol")

	assert.Equal(t, "bob", s.nextActiveSeatAfter("alice"))
	assert.Equal(t, "alice", s.nextActiveSeatAfter("carol"))

	s.Players["bob"].Eliminated = true
	assert.Equal(t, "carol", s.nextActiveSeatAfter("alice"))

	// the reference seat may itself be eliminated
	assert.Equal(t, "carol", s.nextActiveSeatAfter("bob"))

	s.Players["alice"].Eliminated = true
	s.Players["carol"].Eliminated = true
	assert.Equal(t, "", s.nextActiveSeatAfter("alice"))
}

func TestSession_NameFor(t *testing.T) {
	s := playingSession("alice", "bob")
	s.Players["alice"].Nickname = "  Alice  "

	assert.Equal(t, "Alice", s.NameFor("alice"))
	assert.Equal(t, "Player 2", s.NameFor("bob"))
	assert.Equal(t, "ghost", s.NameFor("ghost"))
}

func TestSession_Clone(t *testing.T) {
	s := playingSession("alice", "bob")
	clone := s.Clone()

	clone.Players["alice"].CardCount = 99
	clone.Seats[0] = "mallory"

	assert.Equal(t, 1, s.Players["alice"].CardCount)
	assert.Equal(t, "alice", s.Seats[0])
}

func TestSession_Redacted(t *testing.T) {
	s := playingSession("alice", "bob")
	setHands(s, map[string]string{"alice": "14s", "bob": "9c"})

	view := s.Redacted("alice")
	assert.Equal(t, "14s", deck.CardsToString(view.Players["alice"].Cards))
	assert.Nil(t, view.Players["bob"].Cards)
	assert.Nil(t, view.Deck)

	// everything is visible during a reveal
	s.Reveal = true
	view = s.Redacted("alice")
	assert.Equal(t, "9c", deck.CardsToString(view.Players["bob"].Cards))

	// and in the lobby there is nothing to hide
	s.Reveal = false
	s.Status = StatusLobby
	view = s.Redacted("")
	assert.Equal(t, "14s", deck.CardsToString(view.Players["alice"].Cards))
}
