package session

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// player-facing errors
const (
	// ErrSessionNotFound means no session exists at the requested code
	ErrSessionNotFound UserError = "session not found"

	// ErrSessionExists means a session already exists at the requested code
	ErrSessionExists UserError = "session code already in use"

	// ErrLobbyFull means the lobby already holds the maximum number of players
	ErrLobbyFull UserError = "the lobby is full"

	// ErrGameAlreadyStarted means the intent is only valid in the lobby
	ErrGameAlreadyStarted UserError = "the game has already started"

	// ErrNotYourTurn means the acting player does not hold the turn
	ErrNotYourTurn UserError = "it is not your turn"

	// ErrMustDeclare means a different player is required to open the round
	ErrMustDeclare UserError = "waiting for the required player to declare"

	// ErrIllegalRaise means the declaration does not strictly beat the previous one
	ErrIllegalRaise UserError = "declaration must beat the previous declaration"

	// ErrNothingToChallenge means a bluff was called before any declaration
	ErrNothingToChallenge UserError = "nothing to challenge: no one has declared yet"
)
