package mastermindapi

import "time"

// Wire contract constants for the remote Mastermind service.
const (
	// DefaultBaseURL is the public game service endpoint used when no
	// explicit endpoint is configured.
	DefaultBaseURL = "https://mastermind.darkube.app"

	// CreateGamePath is the request path for starting a new game.
	CreateGamePath = "/game"

	// SubmitGuessPath is the request path for scoring a guess.
	SubmitGuessPath = "/guess"

	// ContentTypeJSON is the media type for request and response bodies.
	ContentTypeJSON = "application/json"

	// RequestIDHeader carries a per-request UUID so client and server
	// logs can be correlated.
	RequestIDHeader = "X-Request-ID"

	// DefaultTimeout bounds each HTTP round trip. The game is turn-based
	// and human-paced, so a stuck request should fail fast rather than
	// hang the prompt.
	DefaultTimeout = 15 * time.Second

	// CodeLength is the number of digits in the secret code, and
	// therefore in every guess.
	CodeLength = 4
)

// Digit bounds for a guess. The secret code is drawn from the same range.
const (
	MinDigit byte = '1'
	MaxDigit byte = '6'
)

// GamePath returns the request path addressing one specific game.
func GamePath(gameID string) string {
	return CreateGamePath + "/" + gameID
}

// ValidGuess reports whether s is a well-formed guess: exactly CodeLength
// characters, each an ASCII digit between MinDigit and MaxDigit.
//
// Validation is local and happens before any network call; a guess that
// fails it must never reach the server.
func ValidGuess(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < MinDigit || s[i] > MaxDigit {
			return false
		}
	}
	return true
}
