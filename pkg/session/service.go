package session

import (
	"context"
	"strings"
	"time"

	"liarspoker-server/internal/util"
	"liarspoker-server/pkg/declaration"

	"github.com/google/uuid"
)

// Publisher is notified of every committed session change
type Publisher interface {
	Publish(s *Session)
}

// Service exposes the player intents. Every intent is applied through the
// store as one atomic transition and the committed snapshot is pushed to the
// publisher.
type Service struct {
	store     Store
	publisher Publisher
	debugSolo bool
}

// NewService returns a session service. publisher may be nil.
// debugSolo lets a single ready player start and advance a game; it is a
// development affordance and must stay off in production.
func NewService(store Store, publisher Publisher, debugSolo bool) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		debugSolo: debugSolo,
	}
}

const roomCodeLength = 4
const createAttempts = 10

// CreateSession creates a new lobby. An empty code means "pick one for me";
// an empty hostUID mints a fresh id for the caller.
func (svc *Service) CreateSession(ctx context.Context, code, hostUID string) (*Session, error) {
	if hostUID == "" {
		hostUID = uuid.New().String()
	}

	if code != "" {
		s := svc.newSession(strings.ToUpper(strings.TrimSpace(code)), hostUID)
		if err := svc.store.Create(ctx, s); err != nil {
			return nil, err
		}

		return s, nil
	}

	for i := 0; i < createAttempts; i++ {
		s := svc.newSession(util.RoomCode(roomCodeLength), hostUID)
		if err := svc.store.Create(ctx, s); err != nil {
			if err == ErrSessionExists {
				continue
			}

			return nil, err
		}

		return s, nil
	}

	return nil, ErrSessionExists
}

func (svc *Service) newSession(code, hostUID string) *Session {
	s := New(code, hostUID, time.Now().UnixMilli())
	s.DebugSolo = svc.debugSolo
	return s
}

// GetSession returns the latest committed snapshot
func (svc *Service) GetSession(ctx context.Context, code string) (*Session, error) {
	return svc.store.Get(ctx, code)
}

// JoinSession adds the player to the lobby
func (svc *Service) JoinSession(ctx context.Context, code, uid, nickname string) (*Session, error) {
	now := time.Now().UnixMilli()
	return svc.apply(ctx, code, func(s *Session) error {
		return s.Join(uid, nickname, now)
	})
}

// LeaveSession removes the player from the lobby
func (svc *Service) LeaveSession(ctx context.Context, code, uid string) (*Session, error) {
	return svc.apply(ctx, code, func(s *Session) error {
		return s.Leave(uid)
	})
}

// ToggleReady flips the player's ready flag, starting the game when the whole
// lobby is ready
func (svc *Service) ToggleReady(ctx context.Context, code, uid string) (*Session, error) {
	now := time.Now().UnixMilli()
	return svc.apply(ctx, code, func(s *Session) error {
		return s.ToggleReady(uid, now)
	})
}

// Declare records a declaration for the player
func (svc *Service) Declare(ctx context.Context, code, uid string, decl declaration.Declaration) (*Session, error) {
	return svc.apply(ctx, code, func(s *Session) error {
		return s.Declare(uid, decl)
	})
}

// CallBluff challenges the last declaration
func (svc *Service) CallBluff(ctx context.Context, code, uid string) (*Session, error) {
	return svc.apply(ctx, code, func(s *Session) error {
		return s.CallBluff(uid)
	})
}

// Acknowledge records the player's acknowledgment of a bluff resolution
func (svc *Service) Acknowledge(ctx context.Context, code, uid string) (*Session, error) {
	return svc.apply(ctx, code, func(s *Session) error {
		return s.Acknowledge(uid)
	})
}

func (svc *Service) apply(ctx context.Context, code string, fn func(*Session) error) (*Session, error) {
	s, err := svc.store.Update(ctx, code, fn)
	if err != nil {
		return nil, err
	}

	if svc.publisher != nil {
		svc.publisher.Publish(s)
	}

	return s, nil
}
