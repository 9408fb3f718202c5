package session

import (
	"fmt"
	"strings"

	"liarspoker-server/pkg/deck"
	"liarspoker-server/pkg/declaration"
)

// random seed generator
// defined here for testing purposes
var shuffleSeed = int64(0)

func newShuffledDeck() *deck.Deck {
	d := deck.New()
	d.Shuffle(shuffleSeed)
	return d
}

// Join adds a player to the lobby, or refreshes the nickname of a player who
// is already present
func (s *Session) Join(uid, nickname string, now int64) error {
	if s.Status != StatusLobby {
		return ErrGameAlreadyStarted
	}

	if p, ok := s.Players[uid]; ok {
		if name := strings.TrimSpace(nickname); name != "" {
			p.Nickname = name
		}

		return nil
	}

	if len(s.Players) >= s.MaxPlayers {
		return ErrLobbyFull
	}

	s.Players[uid] = &Player{
		UID:       uid,
		Nickname:  strings.TrimSpace(nickname),
		JoinedAt:  now,
		CardCount: 1,
		Cards:     []deck.Card{},
	}

	return nil
}

// Leave removes a player from the lobby. Once the game has started this is a
// no-op: seating is fixed for the rest of the game.
func (s *Session) Leave(uid string) error {
	if s.Status != StatusLobby {
		return nil
	}

	delete(s.Players, uid)
	return nil
}

// ToggleReady flips the player's ready flag. When every present player is
// ready and the lobby is within its size limits, the game starts.
func (s *Session) ToggleReady(uid string, now int64) error {
	if s.Status != StatusLobby {
		return ErrGameAlreadyStarted
	}

	p, ok := s.Players[uid]
	if !ok {
		if err := s.Join(uid, "", now); err != nil {
			return err
		}

		p = s.Players[uid]
	}

	p.Ready = !p.Ready

	count := len(s.Players)
	allReady := true
	for _, player := range s.Players {
		if !player.Ready {
			allReady = false
			break
		}
	}

	soloStart := s.DebugSolo && count == 1 && p.Ready
	if soloStart || (allReady && count >= s.MinPlayers && count <= s.MaxPlayers) {
		return s.startGame()
	}

	return nil
}

// startGame fixes seating by join order, deals one card to everybody, and
// hands the opening declaration to the first seat
func (s *Session) startGame() error {
	seats := s.seatsByJoinOrder()

	d := newShuffledDeck()
	for _, uid := range seats {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		p := s.Players[uid]
		p.Cards = []deck.Card{card}
		p.CardCount = 1
		p.LastCall = ""
		p.Eliminated = false
		p.Place = 0
	}

	s.Status = StatusPlaying
	s.Seats = seats
	s.Deck = d.Cards
	s.RoundNumber = 1
	s.Turn = seats[0]
	s.MustDeclareUID = seats[0]
	s.clearResolutionState()
	s.LastDeclaration = nil
	s.LastBy = ""
	s.WinnerUID = ""

	return nil
}

// Declare records a new declaration for the turn holder. The declaration must
// strictly beat the previous one this round.
func (s *Session) Declare(uid string, decl declaration.Declaration) error {
	if s.Turn != uid {
		return ErrNotYourTurn
	}

	if s.MustDeclareUID != "" && s.MustDeclareUID != uid {
		return ErrMustDeclare
	}

	if err := decl.Validate(); err != nil {
		return UserError(err.Error())
	}

	if s.LastDeclaration != nil && !declaration.Beats(s.LastDeclaration, decl) {
		return ErrIllegalRaise
	}

	s.LastDeclaration = &decl
	s.LastBy = uid
	s.Players[uid].LastCall = decl.Label()
	s.MustDeclareUID = ""
	s.Turn = s.nextActiveSeatAfter(uid)
	s.Highlights = nil

	return nil
}

// CallBluff challenges the last declaration. The claim is judged against the
// combined hands of every active player: if the hand can be made the caller
// loses, otherwise the declarer does. The loser draws a card, possibly
// busting out, and the session waits for everybody to acknowledge the result.
func (s *Session) CallBluff(uid string) error {
	if s.Turn != uid {
		return ErrNotYourTurn
	}

	if s.LastDeclaration == nil || s.LastBy == "" {
		return ErrNothingToChallenge
	}

	pool := s.combinedPool()
	truthful := declaration.CanMake(pool, *s.LastDeclaration)

	loserUID := s.LastBy
	if truthful {
		loserUID = uid
	}

	loser := s.Players[loserUID]
	loser.CardCount++
	if loser.CardCount >= eliminationCardCount {
		loser.Eliminated = true
		loser.Place = s.eliminatedCount()
	}

	active := s.ActiveSeats()
	if len(active) == 1 {
		s.Status = StatusEnded
		s.WinnerUID = active[0]
	}

	s.Reveal = true
	s.AwaitingAck = true
	s.Acks = make(map[string]bool)
	s.Turn = ""
	s.BluffCaller = uid
	s.BluffLoser = loserUID
	s.Summary = s.resolutionSummary(uid, loserUID, truthful)

	// only a truthful declaration gets its proof highlighted
	if truthful {
		s.Highlights = declaration.Witness(pool, *s.LastDeclaration)
	} else {
		s.Highlights = nil
	}

	return nil
}

func (s *Session) eliminatedCount() int {
	count := 0
	for _, p := range s.Players {
		if p.Eliminated {
			count++
		}
	}

	return count
}

func (s *Session) resolutionSummary(callerUID, loserUID string, truthful bool) string {
	verdict := "could not be made"
	if truthful {
		verdict = "could be made"
	}

	summary := fmt.Sprintf("%s called bluff on %s, who declared %s. The hand %s. %s drew a card.",
		s.NameFor(callerUID), s.NameFor(s.LastBy), s.LastDeclaration.Label(), verdict, s.NameFor(loserUID))

	if s.Players[loserUID].Eliminated {
		summary += fmt.Sprintf(" %s is eliminated.", s.NameFor(loserUID))
	}

	if s.WinnerUID != "" {
		summary += fmt.Sprintf(" %s won the game!", s.NameFor(s.WinnerUID))
	}

	return summary
}

// Acknowledge records the player's acknowledgment of a bluff resolution.
// Re-acknowledging is a no-op, and eliminated players do not count toward
// completion. Once every active player has acknowledged, the next round
// starts, or, if the game is over, the session resets to the lobby.
func (s *Session) Acknowledge(uid string) error {
	if !s.AwaitingAck {
		return nil
	}

	if s.Acks == nil {
		s.Acks = make(map[string]bool)
	}

	s.Acks[uid] = true

	active := s.ActiveSeats()
	acked := 0
	for _, seat := range active {
		if s.Acks[seat] {
			acked++
		}
	}

	done := acked >= len(active) || (s.DebugSolo && acked >= 1)
	if !done {
		return nil
	}

	if s.Status == StatusEnded {
		s.resetToLobby()
		return nil
	}

	return s.nextRound()
}

// nextRound reshuffles and redeals hands sized to each survivor's card count.
// The loser of the just-resolved bluff call opens the round if they are still
// in the game, otherwise the next active seat after them does.
func (s *Session) nextRound() error {
	d := newShuffledDeck()
	for _, uid := range s.Seats {
		p := s.Players[uid]
		if p.Eliminated {
			p.Cards = nil
			continue
		}

		hand, err := d.DrawHand(p.CardCount)
		if err != nil {
			return err
		}

		p.Cards = hand
	}

	starter := s.BluffLoser
	if p, ok := s.Players[starter]; !ok || p.Eliminated {
		starter = s.nextActiveSeatAfter(s.BluffLoser)
	}

	s.Deck = d.Cards
	s.RoundNumber++
	s.LastDeclaration = nil
	s.LastBy = ""
	for _, uid := range s.Seats {
		s.Players[uid].LastCall = ""
	}

	s.Turn = starter
	s.MustDeclareUID = starter
	s.clearResolutionState()

	return nil
}

// resetToLobby returns an ended session to a joinable lobby
func (s *Session) resetToLobby() {
	s.Status = StatusLobby
	s.Seats = []string{}
	s.Deck = []deck.Card{}
	s.Turn = ""
	s.RoundNumber = 0
	s.LastDeclaration = nil
	s.LastBy = ""
	s.MustDeclareUID = ""
	s.WinnerUID = ""
	s.clearResolutionState()

	for _, p := range s.Players {
		p.Cards = []deck.Card{}
		p.CardCount = 1
		p.LastCall = ""
		p.Eliminated = false
		p.Place = 0
		p.Ready = false
	}
}

func (s *Session) clearResolutionState() {
	s.Reveal = false
	s.AwaitingAck = false
	s.Acks = make(map[string]bool)
	s.Summary = ""
	s.BluffCaller = ""
	s.BluffLoser = ""
	s.Highlights = nil
}
