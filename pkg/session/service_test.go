package session

import (
	"context"
	"regexp"
	"testing"

	"liarspoker-server/pkg/declaration"

	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	published []*Session
}

func (r *recordingPublisher) Publish(s *Session) {
	r.published = append(r.published, s)
}

func TestService_CreateSession(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, false)
	ctx := context.Background()

	s, err := svc.CreateSession(ctx, "", "")
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z2-9]{4}$`), s.Code)
	assert.NotEmpty(t, s.HostUID)
	assert.Equal(t, StatusLobby, s.Status)

	// a supplied code is honored, normalized to upper case
	s, err = svc.CreateSession(ctx, "abcd", "host-1")
	assert.NoError(t, err)
	assert.Equal(t, "ABCD", s.Code)
	assert.Equal(t, "host-1", s.HostUID)

	_, err = svc.CreateSession(ctx, "ABCD", "host-2")
	assert.Equal(t, ErrSessionExists, err)
}

func TestService_IntentFlow(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewService(NewMemoryStore(), publisher, false)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "ABCD", "alice")
	assert.NoError(t, err)

	s, err := svc.JoinSession(ctx, "ABCD", "alice", "Alice")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", s.Players["alice"].Nickname)

	_, err = svc.JoinSession(ctx, "ABCD", "bob", "Bob")
	assert.NoError(t, err)

	_, err = svc.ToggleReady(ctx, "ABCD", "alice")
	assert.NoError(t, err)
	s, err = svc.ToggleReady(ctx, "ABCD", "bob")
	assert.NoError(t, err)
	assert.Equal(t, StatusPlaying, s.Status)

	// each committed transition was pushed to the publisher
	assert.Len(t, publisher.published, 4)
	assert.Equal(t, StatusPlaying, publisher.published[3].Status)

	_, err = svc.Declare(ctx, "ABCD", "bob", declaration.Declaration{Kind: declaration.Pair, Rank: 9})
	assert.Equal(t, ErrNotYourTurn, err)

	// a rejected intent publishes nothing
	assert.Len(t, publisher.published, 4)

	s, err = svc.Declare(ctx, "ABCD", "alice", declaration.Declaration{Kind: declaration.Pair, Rank: 9})
	assert.NoError(t, err)
	assert.Equal(t, "bob", s.Turn)

	s, err = svc.CallBluff(ctx, "ABCD", "bob")
	assert.NoError(t, err)
	assert.True(t, s.AwaitingAck)

	_, err = svc.Acknowledge(ctx, "ABCD", "alice")
	assert.NoError(t, err)
	s, err = svc.Acknowledge(ctx, "ABCD", "bob")
	assert.NoError(t, err)
	assert.Equal(t, 2, s.RoundNumber)

	_, err = svc.LeaveSession(ctx, "ABCD", "bob")
	assert.NoError(t, err)

	_, err = svc.GetSession(ctx, "NOPE")
	assert.Equal(t, ErrSessionNotFound, err)
}
