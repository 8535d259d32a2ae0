// =============================================================================
// mockserver_test.go - Mock Mastermind Service for Testing
// =============================================================================
//
// GO CONCEPT: Test Helpers (Shared Test Infrastructure)
// -----------------------------------------------------
// Go test files (*_test.go) are ONLY compiled during testing. They can
// define helper types and functions used across multiple test files in the
// same package. This file provides a mock Mastermind service that speaks
// the real HTTP contract, so session tests can play full games without a
// network.
//
// All files in the same package's test suite share the same test binary,
// so the types defined here are visible to session_test.go, main_test.go,
// and the rest.
//
// Compare with Python: pytest uses `conftest.py` files for shared test
// infrastructure. Fixtures defined there are automatically available to
// all test files in the directory. This is analogous to Go's shared
// `_test.go` helpers but with automatic dependency injection.
//
// =============================================================================

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// mockGameService is a lightweight in-process Mastermind server.
//
// It implements the three API endpoints with real scoring against a fixed
// secret code, records every request it serves, and lets a test override
// the response of any endpoint to simulate failures.
//
// GO CONCEPT: httptest.Server
// -----------------------------
// net/http/httptest spins up a real HTTP server on a random localhost port
// and hands back its URL. The client under test talks plain HTTP to it, so
// the full stack (request building, JSON codec, status mapping) is
// exercised exactly as in production.
//
// Compare with Python: the `responses` library intercepts requests at the
// library level instead; httptest keeps the real network path in play.
type mockGameService struct {
	server *httptest.Server

	// secret is the code every new game uses. Fixing it keeps the winning
	// guess deterministic for tests.
	secret string

	// mu protects everything below; the client may retry or the signal
	// handler may fire from another goroutine.
	mu     sync.Mutex
	nextID int
	games  map[string]string // game ID → secret code
	events []string          // chronological log: "create g-1", "guess g-1 1234", ...

	// Per-endpoint overrides. A zero status means "behave normally";
	// anything else is returned as-is with the paired body. guessOnce
	// limits the guess override to the next request.
	createStatus int
	createBody   string
	guessStatus  int
	guessBody    string
	guessOnce    bool
	deleteStatus int
	deleteBody   string
}

// startMockService starts a mock Mastermind service whose games all use the
// given secret code. The server is shut down when the test finishes.
func startMockService(t *testing.T, secret string) *mockGameService {
	t.Helper()

	ms := &mockGameService{
		secret: secret,
		games:  make(map[string]string),
	}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.route))
	t.Cleanup(ms.server.Close)
	return ms
}

// url returns the base URL the client should be pointed at.
func (ms *mockGameService) url() string {
	return ms.server.URL
}

// route dispatches requests to the endpoint handlers.
func (ms *mockGameService) route(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/game":
		ms.handleCreate(w)
	case r.Method == http.MethodPost && r.URL.Path == "/guess":
		ms.handleGuess(w, r)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/game/"):
		ms.handleDelete(w, strings.TrimPrefix(r.URL.Path, "/game/"))
	default:
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
	}
}

func (ms *mockGameService) handleCreate(w http.ResponseWriter) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.createStatus != 0 {
		ms.respond(w, ms.createStatus, ms.createBody)
		return
	}

	ms.nextID++
	id := fmt.Sprintf("g-%d", ms.nextID)
	ms.games[id] = ms.secret
	ms.events = append(ms.events, "create "+id)
	ms.respond(w, http.StatusOK, fmt.Sprintf(`{"game_id":%q}`, id))
}

func (ms *mockGameService) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameID string `json:"game_id"`
		Guess  string `json:"guess"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		ms.respond(w, http.StatusBadRequest, `{"error":"Invalid guess"}`)
		return
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.events = append(ms.events, "guess "+req.GameID+" "+req.Guess)

	if ms.guessStatus != 0 {
		status, body := ms.guessStatus, ms.guessBody
		if ms.guessOnce {
			ms.guessStatus, ms.guessBody, ms.guessOnce = 0, "", false
		}
		ms.respond(w, status, body)
		return
	}

	secret, ok := ms.games[req.GameID]
	if !ok {
		ms.respond(w, http.StatusNotFound, `{"error":"Game not found"}`)
		return
	}
	if len(req.Guess) != len(secret) {
		ms.respond(w, http.StatusBadRequest, `{"error":"Invalid guess"}`)
		return
	}

	black, white := scoreGuess(secret, req.Guess)
	ms.respond(w, http.StatusOK, fmt.Sprintf(`{"black":%d,"white":%d}`, black, white))
}

func (ms *mockGameService) handleDelete(w http.ResponseWriter, id string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.events = append(ms.events, "delete "+id)

	if ms.deleteStatus != 0 {
		ms.respond(w, ms.deleteStatus, ms.deleteBody)
		return
	}

	if _, ok := ms.games[id]; !ok {
		ms.respond(w, http.StatusNotFound, `{"error":"Game not found"}`)
		return
	}
	delete(ms.games, id)
	w.WriteHeader(http.StatusNoContent)
}

// respond writes a JSON response. Callers hold ms.mu.
func (ms *mockGameService) respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != "" {
		fmt.Fprint(w, body)
	}
}

// failCreate makes game creation respond with the given status and body.
func (ms *mockGameService) failCreate(status int, body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.createStatus, ms.createBody = status, body
}

// failGuess makes guess submission respond with the given status and body.
func (ms *mockGameService) failGuess(status int, body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.guessStatus, ms.guessBody, ms.guessOnce = status, body, false
}

// failNextGuess fails only the next guess; later guesses score normally.
func (ms *mockGameService) failNextGuess(status int, body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.guessStatus, ms.guessBody, ms.guessOnce = status, body, true
}

// failDelete makes game deletion respond with the given status and body.
func (ms *mockGameService) failDelete(status int, body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.deleteStatus, ms.deleteBody = status, body
}

// eventLog returns a copy of the request log in arrival order.
func (ms *mockGameService) eventLog() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]string(nil), ms.events...)
}

// countEvents returns how many logged events start with the given prefix,
// e.g. countEvents("delete") counts delete requests across all games.
func (ms *mockGameService) countEvents(prefix string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	n := 0
	for _, ev := range ms.events {
		if strings.HasPrefix(ev, prefix) {
			n++
		}
	}
	return n
}

// scoreGuess computes the Mastermind score of guess against secret. Exact
// position matches count as black pegs; the remaining digits earn one white
// peg per digit present in both, counted with multiplicity.
func scoreGuess(secret, guess string) (black, white int) {
	var secretLeft, guessLeft [10]int
	for i := 0; i < len(secret); i++ {
		if secret[i] == guess[i] {
			black++
			continue
		}
		secretLeft[secret[i]-'0']++
		guessLeft[guess[i]-'0']++
	}
	for d := 0; d < 10; d++ {
		white += min(secretLeft[d], guessLeft[d])
	}
	return black, white
}
