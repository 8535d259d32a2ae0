package mastermindapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoGame indicates an operation that needs a live game was called with
// an empty game id. It guards against client misuse and is not part of
// the ErrorKind taxonomy, which only describes service outcomes.
var ErrNoGame = errors.New("no active game")

// ErrorKind categorizes failures of the game service contract.
type ErrorKind int

const (
	// ErrKindNetwork indicates a transport-level failure: no HTTP
	// response was obtained at all (DNS failure, connection refused,
	// timeout).
	ErrKindNetwork ErrorKind = iota
	// ErrKindInvalidResponse indicates a response that was received but
	// could not be interpreted as an HTTP response envelope. Reserved:
	// Go's http.Client reports such failures as transport errors, so
	// nothing in this package produces the kind.
	ErrKindInvalidResponse
	// ErrKindServer indicates an HTTP status outside the explicitly
	// handled set for the operation.
	ErrKindServer
	// ErrKindGameNotFound indicates a 404 on game deletion. A 404 on
	// guess submission is deliberately ErrKindAPI instead; the two
	// endpoints signal different situations.
	ErrKindGameNotFound
	// ErrKindInvalidGuess is reserved for guess-validation failures.
	// Callers validate with ValidGuess before submitting, so the kind is
	// never produced today; it stays in the taxonomy in case the server
	// grows validation rules the client cannot check locally.
	ErrKindInvalidGuess
	// ErrKindAPI indicates a structured error from the server: a 4xx or
	// 5xx status with a JSON error body. The error carries the server's
	// own message, or a per-operation default when the body has none.
	ErrKindAPI
	// ErrKindJSONDecoding indicates a 200 response whose body does not
	// match the expected schema. Distinct from ErrKindNetwork because it
	// points at a contract mismatch, not connectivity.
	ErrKindJSONDecoding
)

// GameError is the error type for every failure surfaced by the game
// service contract. Callers branch on Kind, typically via AsGameError.
type GameError struct {
	Kind    ErrorKind
	Value   string // the offending value (game id or guess), when relevant
	Message string // server-supplied or contextual message
	Status  int    // originating HTTP status, 0 when none was received
	Err     error  // wrapped transport or decode cause, may be nil
}

// Error implements the error interface.
func (e *GameError) Error() string {
	switch e.Kind {
	case ErrKindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	case ErrKindInvalidResponse:
		return "invalid response from server"
	case ErrKindServer:
		return fmt.Sprintf("server error: unexpected status %d", e.Status)
	case ErrKindGameNotFound:
		return fmt.Sprintf("game %q not found", e.Value)
	case ErrKindInvalidGuess:
		return fmt.Sprintf("invalid guess %q", e.Value)
	case ErrKindAPI:
		return e.Message
	case ErrKindJSONDecoding:
		if e.Err != nil {
			return fmt.Sprintf("could not decode server response: %v", e.Err)
		}
		return "could not decode server response"
	default:
		return fmt.Sprintf("game error: %s", e.Message)
	}
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *GameError) Unwrap() error {
	return e.Err
}

// AsGameError extracts a *GameError from err's chain. The second return
// is false when err carries no GameError.
func AsGameError(err error) (*GameError, bool) {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// Helper functions to create specific game errors. ErrKindInvalidGuess
// and ErrKindInvalidResponse have no constructors; see their kind docs.

func newNetworkError(err error) error {
	return &GameError{Kind: ErrKindNetwork, Err: err}
}

func newServerError(status int) error {
	return &GameError{Kind: ErrKindServer, Status: status}
}

func newGameNotFoundError(gameID string) error {
	return &GameError{Kind: ErrKindGameNotFound, Value: gameID, Status: http.StatusNotFound}
}

func newAPIError(status int, message string) error {
	return &GameError{Kind: ErrKindAPI, Message: message, Status: status}
}

func newJSONDecodingError(err error) error {
	return &GameError{Kind: ErrKindJSONDecoding, Err: err}
}
