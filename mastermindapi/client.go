package mastermindapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is an HTTP client for the remote Mastermind game service.
//
// It translates the three game operations (create, guess, delete) into
// HTTP requests and maps status codes and response bodies onto the
// GameError taxonomy. The client holds no game state: callers own the
// game id and the strict create -> guess ... guess -> delete ordering.
//
// Thread Safety:
// Request methods are safe for concurrent use. The configuration setters
// are not synchronized and belong in setup code, before the first request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a game service client for the given base URL.
// An empty baseURL selects DefaultBaseURL. The client starts with
// DefaultTimeout and a no-op logger.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}
}

// SetLogger routes request tracing to l. Tracing is emitted at debug
// level; the default logger discards everything.
func (c *Client) SetLogger(l zerolog.Logger) {
	c.logger = l
}

// SetTimeout overrides DefaultTimeout for subsequent requests.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// BaseURL returns the endpoint this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateGame asks the service to start a new game. It returns the opaque
// game id that identifies the session in every subsequent call.
//
// Status mapping: 200 with {"game_id": ...} succeeds; a malformed success
// body is ErrKindJSONDecoding; 500 is ErrKindAPI carrying the server's
// message ("Server error" when the body has none); anything else is
// ErrKindServer. Transport failures are ErrKindNetwork.
func (c *Client) CreateGame(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, CreateGamePath, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeGameID(resp.Body)
	case http.StatusInternalServerError:
		return "", newAPIError(resp.StatusCode, errorMessage(resp.Body, "Server error"))
	default:
		return "", newServerError(resp.StatusCode)
	}
}

// SubmitGuess asks the service to score guess against the secret code of
// game gameID and returns the resulting Score.
//
// The guess travels as-is: callers validate with ValidGuess first, and
// the server's own rejection of a guess surfaces as ErrKindAPI from the
// 400 mapping, not as ErrKindInvalidGuess.
//
// Status mapping: 200 with {"black": ..., "white": ...} succeeds; a
// malformed success body is ErrKindJSONDecoding; 400, 404 and 500 are
// ErrKindAPI with defaults "Invalid guess", "Game not found" and
// "Server error"; anything else is ErrKindServer. Transport failures are
// ErrKindNetwork.
func (c *Client) SubmitGuess(ctx context.Context, gameID, guess string) (Score, error) {
	if gameID == "" {
		return Score{}, ErrNoGame
	}
	body, err := encodeGuessRequest(gameID, guess)
	if err != nil {
		return Score{}, fmt.Errorf("encode guess request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, SubmitGuessPath, body)
	if err != nil {
		return Score{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeScore(resp.Body)
	case http.StatusBadRequest:
		return Score{}, newAPIError(resp.StatusCode, errorMessage(resp.Body, "Invalid guess"))
	case http.StatusNotFound:
		return Score{}, newAPIError(resp.StatusCode, errorMessage(resp.Body, "Game not found"))
	case http.StatusInternalServerError:
		return Score{}, newAPIError(resp.StatusCode, errorMessage(resp.Body, "Server error"))
	default:
		return Score{}, newServerError(resp.StatusCode)
	}
}

// DeleteGame releases the server-side session for gameID. Callers invoke
// it on win and on exit; in those flows it is best-effort and failures
// are theirs to ignore.
//
// Status mapping: 204 succeeds; 404 is ErrKindGameNotFound (unlike the
// guess endpoint, where 404 is ErrKindAPI); 500 is ErrKindAPI carrying
// the server's message; anything else is ErrKindServer. Transport
// failures are ErrKindNetwork.
func (c *Client) DeleteGame(ctx context.Context, gameID string) error {
	if gameID == "" {
		return ErrNoGame
	}
	resp, err := c.do(ctx, http.MethodDelete, GamePath(gameID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return newGameNotFoundError(gameID)
	case http.StatusInternalServerError:
		return newAPIError(resp.StatusCode, errorMessage(resp.Body, "Server error"))
	default:
		return newServerError(resp.StatusCode)
	}
}

// do builds and sends one request. Transport failures come back as
// ErrKindNetwork; on success the caller owns the response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, newNetworkError(err)
	}
	req.Header.Set("Accept", ContentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", ContentTypeJSON)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", req.URL.String()).
		Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return nil, newNetworkError(err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("received response")
	return resp, nil
}
