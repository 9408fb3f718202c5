package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sequenceRNG struct {
	values []int
	index  int
}

func (s *sequenceRNG) Intn(n int) int {
	val := s.values[s.index%len(s.values)] % n
	s.index++
	return val
}

func TestRoomCode(t *testing.T) {
	code := RoomCode(4)
	assert.Len(t, code, 4)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(roomCodeAlphabet, c), "unexpected character: %c", c)
	}

	orig := roomCodeRNG
	defer func() { roomCodeRNG = orig }()

	roomCodeRNG = &sequenceRNG{values: []int{0, 1, 2, 3}}
	assert.Equal(t, "ABCD", RoomCode(4))
}

func TestGetenv(t *testing.T) {
	t.Setenv("ROOM_CODE_TEST_KEY", "value")
	assert.Equal(t, "value", Getenv("ROOM_CODE_TEST_KEY", "default"))
	assert.Equal(t, "default", Getenv("ROOM_CODE_TEST_KEY_MISSING", "default"))
}
