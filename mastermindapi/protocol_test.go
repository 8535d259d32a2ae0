package mastermindapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContractConstants pins the wire contract the Swift client spoke.
func TestContractConstants(t *testing.T) {
	assert.Equal(t, "/game", CreateGamePath)
	assert.Equal(t, "/guess", SubmitGuessPath)
	assert.Equal(t, "application/json", ContentTypeJSON)
	assert.Equal(t, "X-Request-ID", RequestIDHeader)
	assert.Equal(t, 4, CodeLength)
	assert.Equal(t, byte('1'), MinDigit)
	assert.Equal(t, byte('6'), MaxDigit)
}

func TestGamePath(t *testing.T) {
	assert.Equal(t, "/game/abc-123", GamePath("abc-123"))
}

func TestValidGuess(t *testing.T) {
	tests := []struct {
		guess string
		ok    bool
	}{
		{"1234", true},
		{"1111", true},
		{"6666", true},
		{"4213", true},
		{"1456", true},

		{"", false},
		{"123", false},       // too short
		{"12345", false},     // too long
		{"0123", false},      // 0 below range
		{"1237", false},      // 7 above range
		{"7777", false},      // all out of range
		{"12a4", false},      // letter
		{"12 4", false},      // embedded space
		{" 1234", false},     // whitespace is the caller's problem, not ours
		{"12.4", false},      // punctuation
		{"-123", false},      // sign
		{"١٢٣٤", false},      // non-ASCII digits
		{"12\x004", false},   // NUL byte
	}

	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.ok, ValidGuess(tt.guess), "guess %q", tt.guess)
		})
	}
}
