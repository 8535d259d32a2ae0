// =============================================================================
// session.go - Interactive Game Session
// =============================================================================
//
// The session owns one run of the program: it creates games through the API
// client, reads player input through the line editor, validates and submits
// guesses, renders scores, and drives the win/replay/exit flow.
//
// Control flow is a pair of explicit loops:
//
//   Run       one iteration per game; a replay restarts the loop
//   playGame  one iteration per input line (guess, help, or exit)
//
// The session also owns the active game ID. The ID is cleared the moment a
// delete is issued, so server-side cleanup runs at most once per game no
// matter whether it is triggered by a win, the exit command, end of input,
// or a signal.
//
// =============================================================================

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/amirhoseinsalami/MastermindGame/mastermindapi"
)

// GO CONCEPT: Typed Constants as a State Machine
// -------------------------------------------------
// The session states are a custom int type with iota-numbered constants.
// Methods on the type (prompt, String) keep state-dependent behavior next
// to the state definition instead of scattered through the loop.
//
// Compare with Swift: the original client modeled this as
//   enum GameState { case idle, awaitingGuess, scoring, won, replayPrompt, exiting }
// Swift enums are full types with methods too; Go gets the same effect with
// a named int type, at the cost of exhaustiveness checking.
//
// Compare with Python: Python would use enum.Enum with methods on the class.

// sessionState tracks where the session is in its lifecycle:
//
//	idle → awaiting-guess → scoring → awaiting-guess  (guess did not win)
//	                                → won → replay-prompt → awaiting-guess or exiting
type sessionState int

const (
	// stateIdle means no game exists yet.
	stateIdle sessionState = iota
	// stateAwaitingGuess means a game is live and the prompt is shown.
	stateAwaitingGuess
	// stateScoring means a guess is in flight to the server.
	stateScoring
	// stateWon means the last guess scored four black pegs.
	stateWon
	// stateReplayPrompt means the player is being asked to play again.
	stateReplayPrompt
	// stateExiting means the session is winding down.
	stateExiting
)

// prompt returns the input prompt shown in this state.
func (s sessionState) prompt() string {
	switch s {
	case stateReplayPrompt:
		return "play again? (y/n)> "
	default:
		return "guess> "
	}
}

// String returns the state name used in log output.
func (s sessionState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAwaitingGuess:
		return "awaiting-guess"
	case stateScoring:
		return "scoring"
	case stateWon:
		return "won"
	case stateReplayPrompt:
		return "replay-prompt"
	case stateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// shutdownTimeout bounds the best-effort delete issued when the process is
// interrupted; a hung server must not block exit.
const shutdownTimeout = 3 * time.Second

// session drives the interactive game. Create one with newSession and call
// Run; Shutdown may be called concurrently from a signal handler.
type session struct {
	client *mastermindapi.Client
	editor *LineEditor
	color  bool
	log    zerolog.Logger

	state    sessionState
	attempts int

	// GO CONCEPT: Mutexes for Cross-Goroutine State
	// ------------------------------------------------
	// The signal handler goroutine calls Shutdown while the main goroutine
	// is blocked reading input, so the game ID is read and written from two
	// goroutines. A sync.Mutex makes those accesses safe. takeGameID reads
	// and clears the ID under one lock, which is what guarantees the delete
	// request is sent at most once per game.
	//
	// Compare with Swift: the original client was single-threaded and
	// handled SIGINT with a C signal handler that could only set a flag.
	// Go's signal.Notify delivers signals on a channel to an ordinary
	// goroutine, so cleanup can run real code, but shared fields then need
	// locking.
	mu     sync.Mutex
	gameID string
}

// newSession wires a session to its API client and line editor. The colored
// flag selects between the plain and ANSI-colored renderers.
func newSession(client *mastermindapi.Client, editor *LineEditor, colored bool, log zerolog.Logger) *session {
	return &session{
		client: client,
		editor: editor,
		color:  colored,
		log:    log,
		state:  stateIdle,
	}
}

// GO CONCEPT: Explicit Loops Instead of Recursion
// --------------------------------------------------
// The Swift client handled "play again" by calling its startGame() function
// recursively from the replay handler, growing the call stack by one frame
// per game. Go has no tail-call elimination, so the idiomatic translation
// is an explicit for loop: each iteration is one game, and answering "y"
// simply lets the loop come around again.
//
// Compare with Python: the same rewrite applies; a while True loop replaces
// the recursive play_game() call.

// Run plays games until the player exits. It returns nil on a normal exit
// (the exit command, declining a replay, or end of input) and a non-nil
// error when a game could not be created, which the caller maps to a
// non-zero exit code.
func (s *session) Run(ctx context.Context) error {
	for {
		if err := s.startGame(ctx); err != nil {
			return err
		}
		if !s.playGame(ctx) {
			fmt.Println(farewellText)
			return nil
		}
		fmt.Println(gameSeparator)
	}
}

// startGame asks the server for a fresh game and resets per-game state.
func (s *session) startGame(ctx context.Context) error {
	s.transition(stateIdle)
	gameID, err := s.client.CreateGame(ctx)
	if err != nil {
		fmt.Println(renderError(renderFailure(err), s.color))
		return fmt.Errorf("create game: %w", err)
	}

	s.setGameID(gameID)
	s.attempts = 0
	s.transition(stateAwaitingGuess)
	s.log.Info().Str("game_id", gameID).Msg("game created")

	fmt.Println("New game started. Guess the 4-digit code (digits 1 to 6). Type help for instructions, exit to quit.")
	return nil
}

// playGame runs the guess loop for the current game. It returns true when
// the player won and chose to play again, false when the session should end.
func (s *session) playGame(ctx context.Context) bool {
	for {
		line, err := s.editor.GetLine(s.state.prompt())
		if err != nil {
			// Ctrl-D or exhausted piped input ends the session the same
			// way the exit command does, minus the replay prompt.
			if !errors.Is(err, io.EOF) {
				s.log.Warn().Err(err).Msg("input error")
			}
			fmt.Println()
			s.deleteCurrentGame(ctx)
			s.transition(stateExiting)
			return false
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		lower := strings.ToLower(input)
		switch {
		case lower == "exit":
			s.deleteCurrentGame(ctx)
			s.transition(stateExiting)
			return false
		case lower == "help" || strings.HasPrefix(lower, "help "):
			printHelp(strings.TrimSpace(input[len("help"):]))
			continue
		}

		// Guesses that fail local validation never reach the server and
		// do not count as an attempt.
		if !mastermindapi.ValidGuess(input) {
			fmt.Println(renderError(invalidGuessText, s.color))
			continue
		}

		// From here on the guess counts, even if the server rejects it.
		s.attempts++
		s.transition(stateScoring)
		score, err := s.client.SubmitGuess(ctx, s.currentGameID(), input)
		if err != nil {
			s.log.Debug().Err(err).Int("attempt", s.attempts).Msg("guess not scored")
			fmt.Println(renderError(renderFailure(err), s.color))
			s.transition(stateAwaitingGuess)
			continue
		}

		if score.IsWin() {
			s.transition(stateWon)
			s.log.Info().Int("attempts", s.attempts).Msg("game won")
			fmt.Println(renderWin(input, s.attempts, s.color))
			s.deleteCurrentGame(ctx)
			return s.askReplay()
		}

		s.log.Debug().Int("attempt", s.attempts).Str("score", score.String()).Msg("guess scored")
		fmt.Println("Result: " + s.formatScore(score))
		s.transition(stateAwaitingGuess)
	}
}

// askReplay asks until it gets a recognizable answer. "y"/"yes" starts a new
// game; "n", "no", and "exit" end the session; anything else prints a hint
// and asks again.
func (s *session) askReplay() bool {
	s.transition(stateReplayPrompt)
	for {
		line, err := s.editor.GetLine(s.state.prompt())
		if err != nil {
			// On a real terminal a stray Ctrl-D just re-asks. With piped
			// input there is nothing left to read, so treat end of input
			// as "no" rather than re-asking forever.
			fmt.Println()
			if s.editor.IsInteractive() {
				continue
			}
			s.transition(stateExiting)
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no", "exit":
			s.transition(stateExiting)
			return false
		default:
			fmt.Println(replayHintText)
		}
	}
}

// Shutdown releases the active game, if any. Safe to call from the signal
// handler goroutine while Run is still blocked reading input.
func (s *session) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.deleteCurrentGame(ctx)
}

// deleteCurrentGame issues a best-effort delete for the active game. The
// game ID is consumed before the request goes out, so concurrent or repeated
// calls send at most one delete per game. Failures are logged, not shown:
// the player can do nothing about a cleanup problem.
func (s *session) deleteCurrentGame(ctx context.Context) {
	id := s.takeGameID()
	if id == "" {
		return
	}
	if err := s.client.DeleteGame(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("game_id", id).Msg("failed to delete game")
		return
	}
	s.log.Debug().Str("game_id", id).Msg("game deleted")
}

// formatScore renders a score with or without color per the session setting.
func (s *session) formatScore(score mastermindapi.Score) string {
	if s.color {
		return renderScoreColored(score)
	}
	return renderScore(score)
}

// transition records a state change. The trace log of transitions is the
// cheapest way to follow a session when debugging against a live server.
func (s *session) transition(next sessionState) {
	if next == s.state {
		return
	}
	s.log.Trace().Stringer("from", s.state).Stringer("to", next).Msg("state change")
	s.state = next
}

func (s *session) setGameID(id string) {
	s.mu.Lock()
	s.gameID = id
	s.mu.Unlock()
}

func (s *session) currentGameID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameID
}

// takeGameID returns the active game ID and clears it in one critical
// section.
func (s *session) takeGameID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.gameID
	s.gameID = ""
	return id
}
