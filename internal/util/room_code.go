package util

import (
	"liarspoker-server/internal/rng"
)

// characters that read unambiguously when a code is shared aloud or on screen
const roomCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// swapped out by tests for a deterministic generator
var roomCodeRNG rng.Generator = rng.Crypto{}

// RoomCode returns a crypto-secure random room code of length n
func RoomCode(n int) string {
	code := make([]byte, n)
	for i := range code {
		code[i] = roomCodeAlphabet[roomCodeRNG.Intn(len(roomCodeAlphabet))]
	}

	return string(code)
}
