package session

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"liarspoker-server/pkg/deck"
	"liarspoker-server/pkg/declaration"
)

// Status is the lifecycle state of a session
type Status string

// session statuses
const (
	StatusLobby   Status = "lobby"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

// lobby size limits
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// a player who reaches this many cards is out
const eliminationCardCount = 5

// Player is a participant in a session
type Player struct {
	UID        string      `json:"uid"`
	Nickname   string      `json:"nickname"`
	JoinedAt   int64       `json:"joinedAt"`
	Ready      bool        `json:"ready"`
	Eliminated bool        `json:"eliminated"`
	Place      int         `json:"place,omitempty"`
	LastCall   string      `json:"lastCall,omitempty"`
	CardCount  int         `json:"cardCount"`
	Cards      []deck.Card `json:"cards"`
}

// Session is the complete shared state of one game room.
// It is the unit of atomic mutation: every player intent is applied as a
// single all-or-nothing transition over the whole value through a Store.
type Session struct {
	Status      Status             `json:"status"`
	Code        string             `json:"code"`
	HostUID     string             `json:"hostUid"`
	CreatedAt   int64              `json:"createdAt"`
	MinPlayers  int                `json:"minPlayers"`
	MaxPlayers  int                `json:"maxPlayers"`
	DebugSolo   bool               `json:"debugSolo,omitempty"`
	Players     map[string]*Player `json:"players"`
	Seats       []string           `json:"seats"`
	Deck        []deck.Card        `json:"deck"`
	Turn        string             `json:"turn,omitempty"`
	RoundNumber int                `json:"roundNumber"`

	LastDeclaration *declaration.Declaration `json:"lastDeclaration,omitempty"`
	LastBy          string                   `json:"lastBy,omitempty"`
	MustDeclareUID  string                   `json:"mustDeclareUid,omitempty"`

	Reveal      bool            `json:"reveal,omitempty"`
	AwaitingAck bool            `json:"awaitingAck,omitempty"`
	Acks        map[string]bool `json:"acks,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	BluffCaller string          `json:"bluffCaller,omitempty"`
	BluffLoser  string          `json:"bluffLoser,omitempty"`
	WinnerUID   string          `json:"winnerUid,omitempty"`
	Highlights  []deck.Card     `json:"highlights,omitempty"`
}

// New returns a fresh session in the lobby state
func New(code, hostUID string, createdAt int64) *Session {
	return &Session{
		Status:     StatusLobby,
		Code:       code,
		HostUID:    hostUID,
		CreatedAt:  createdAt,
		MinPlayers: MinPlayers,
		MaxPlayers: MaxPlayers,
		Players:    make(map[string]*Player),
		Seats:      []string{},
		Deck:       []deck.Card{},
	}
}

// Clone returns a deep copy of the session.
// The session is a plain JSON document, so a round-trip is the simplest way
// to guarantee no shared references escape.
func (s *Session) Clone() *Session {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}

	var clone Session
	if err := json.Unmarshal(data, &clone); err != nil {
		panic(err)
	}

	return &clone
}

// ActiveSeats returns the seated players still in the game, in seating order.
// Seating order is fixed ground truth; elimination flags are the only source
// of who is active.
func (s *Session) ActiveSeats() []string {
	active := make([]string, 0, len(s.Seats))
	for _, uid := range s.Seats {
		if p, ok := s.Players[uid]; ok && !p.Eliminated {
			active = append(active, uid)
		}
	}

	return active
}

// nextActiveSeatAfter returns the first non-eliminated seat after the given
// seat, wrapping around. The reference seat itself may be eliminated.
// Returns the empty string if nobody is active.
func (s *Session) nextActiveSeatAfter(uid string) string {
	n := len(s.Seats)
	if n == 0 {
		return ""
	}

	start := -1
	for i, seat := range s.Seats {
		if seat == uid {
			start = i
			break
		}
	}

	for i := 1; i <= n; i++ {
		seat := s.Seats[(start+i+n)%n]
		if p, ok := s.Players[seat]; ok && !p.Eliminated {
			return seat
		}
	}

	return ""
}

// seatsByJoinOrder returns the present player UIDs ordered by join time
func (s *Session) seatsByJoinOrder() []string {
	uids := make([]string, 0, len(s.Players))
	for uid := range s.Players {
		uids = append(uids, uid)
	}

	sort.Slice(uids, func(i, j int) bool {
		a, b := s.Players[uids[i]], s.Players[uids[j]]
		if a.JoinedAt != b.JoinedAt {
			return a.JoinedAt < b.JoinedAt
		}

		return uids[i] < uids[j]
	})

	return uids
}

// NameFor returns a display name for a player: the trimmed nickname, or a
// positional fallback like "Player 2"
func (s *Session) NameFor(uid string) string {
	p, ok := s.Players[uid]
	if !ok {
		return uid
	}

	if name := strings.TrimSpace(p.Nickname); name != "" {
		return name
	}

	idx := 0
	for i, seat := range s.Seats {
		if seat == uid {
			idx = i
			break
		}
	}

	return fmt.Sprintf("Player %d", idx+1)
}

// combinedPool returns the union of all active players' hands in seating
// order. A bluff claim is judged against this pool, never a single hand.
func (s *Session) combinedPool() []deck.Card {
	var pool []deck.Card
	for _, uid := range s.ActiveSeats() {
		pool = append(pool, s.Players[uid].Cards...)
	}

	return pool
}
