// =============================================================================
// render.go - Output Rendering (API Results → Terminal Text)
// =============================================================================
//
// This file turns values returned by the Mastermind service into the exact
// text the player sees. The numeric score from the server (black/white peg
// counts) becomes a peg string like "BBW", API failures become friendly
// one-line messages, and a win becomes a congratulation that echoes the
// winning code.
//
// Examples:
//   Score{Black: 2, White: 1}  → "BBW"
//   Score{Black: 1, White: 3}  → "BWWW"
//   Score{Black: 0, White: 0}  → "None"
//
// All user-visible phrasing lives here (and in help.go), not in the session
// loop, so the exact output format can be tested without playing a game.
//
// =============================================================================

package main

// GO CONCEPT: strings.Repeat for Building Strings
// -------------------------------------------------
// The peg string is the letter "B" repeated black-count times followed by
// "W" repeated white-count times. Go builds repeated strings with
// strings.Repeat(s, n); there is no * operator on strings.
//
// Compare with Swift: the original client used
//   String(repeating: "B", count: black) + String(repeating: "W", count: white)
//
// Compare with Python: Python overloads multiplication:
//   "B" * black + "W" * white
import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/amirhoseinsalami/MastermindGame/mastermindapi"
)

// User-visible phrases reused across the session loop. Centralizing them
// keeps the loop readable and lets tests assert on the exact wording.
const (
	blackPeg = "B"
	whitePeg = "W"

	// noPegsText is shown when a guess earns neither black nor white pegs.
	noPegsText = "None"

	// invalidGuessText is shown for input that fails local validation.
	// Locally rejected guesses are never sent to the server.
	invalidGuessText = "Guesses must be exactly 4 digits, each from 1 to 6 (for example: 1234)."

	// replayHintText is shown when the play-again answer is not recognized.
	replayHintText = "Please answer y or n."

	farewellText = "Thanks for playing Mastermind. Goodbye!"
)

// gameSeparator is printed between games when the player chooses to replay.
var gameSeparator = strings.Repeat("-", 40)

// GO CONCEPT: Package-Level Variables for Reusable Styles
// ----------------------------------------------------------
// fatih/color styles are cheap to build but there is no reason to rebuild
// them per call, so they live in package-level vars. Each is a *color.Color
// whose Sprint method wraps text in the right ANSI escape sequence. When
// color is disabled (non-TTY output, NO_COLOR, or --plain) Sprint returns
// the text unchanged, so these are always safe to call.
//
// Compare with Swift: the original client wrote raw escape sequences like
// "\u{001B}[32m" inline. The color package hides the codes and the
// should-I-colorize decision behind one API.
var (
	blackPegStyle = color.New(color.FgGreen, color.Bold)
	whitePegStyle = color.New(color.FgYellow)
	winStyle      = color.New(color.FgGreen, color.Bold)
	errorStyle    = color.New(color.FgRed)
)

// renderScore renders a score as a plain peg string: "B" per black peg, then
// "W" per white peg. A scoreless guess renders as "None" so the player gets
// explicit feedback rather than an empty line.
func renderScore(score mastermindapi.Score) string {
	if score.Black == 0 && score.White == 0 {
		return noPegsText
	}
	return strings.Repeat(blackPeg, score.Black) + strings.Repeat(whitePeg, score.White)
}

// renderScoreColored is renderScore with the black pegs in bold green and
// the white pegs in yellow. "None" stays uncolored.
func renderScoreColored(score mastermindapi.Score) string {
	if score.Black == 0 && score.White == 0 {
		return noPegsText
	}
	return blackPegStyle.Sprint(strings.Repeat(blackPeg, score.Black)) +
		whitePegStyle.Sprint(strings.Repeat(whitePeg, score.White))
}

// GO CONCEPT: Pluralization by Hand
// -----------------------------------
// Go has no built-in pluralization (no localization layer in the standard
// library). For a single English word an if statement is the idiomatic
// solution; pulling in an i18n library for one string would be overkill.
//
// Compare with Swift: the original used the same approach, a ternary:
//   let noun = attempts == 1 ? "attempt" : "attempts"
func pluralAttempts(n int) string {
	if n == 1 {
		return "1 attempt"
	}
	return fmt.Sprintf("%d attempts", n)
}

// renderWin renders the congratulation shown when a guess scores four black
// pegs. It echoes the winning code so the player sees what they solved.
func renderWin(code string, attempts int, colored bool) string {
	msg := fmt.Sprintf("Congratulations! You cracked the code %s in %s.", code, pluralAttempts(attempts))
	if colored {
		return winStyle.Sprint(msg)
	}
	return msg
}

// GO CONCEPT: Translating Error Kinds into User Messages
// ---------------------------------------------------------
// The API package reports failures as *GameError values tagged with a Kind.
// The CLI switches on the Kind to pick a human-readable message, keeping
// raw developer-facing error text out of the player's face. AsGameError
// does the errors.As unwrapping, so wrapped errors are handled too.
//
// Compare with Swift: the original switched on a MastermindError enum:
//   switch error {
//   case .networkError: print("Could not reach the game server...")
//   case .apiError(let message): print("The server reported a problem: \(message)")
//   ...
//   }
//
// Compare with Python: Python would chain isinstance checks over an
// exception hierarchy for the same dispatch.

// renderFailure maps an error from the API client to the one-line message
// shown to the player. It never returns an empty string.
func renderFailure(err error) string {
	gameErr, ok := mastermindapi.AsGameError(err)
	if !ok {
		return "Unexpected error: " + err.Error()
	}
	switch gameErr.Kind {
	case mastermindapi.ErrKindNetwork:
		return "Could not reach the game server. Check your connection and try again."
	case mastermindapi.ErrKindInvalidResponse:
		return "The server sent a response this client does not understand."
	case mastermindapi.ErrKindServer:
		return fmt.Sprintf("The server answered with an unexpected status (%d).", gameErr.Status)
	case mastermindapi.ErrKindGameNotFound:
		return "The server no longer knows about this game."
	case mastermindapi.ErrKindInvalidGuess:
		return "The server rejected that guess."
	case mastermindapi.ErrKindAPI:
		return "The server reported a problem: " + gameErr.Message
	case mastermindapi.ErrKindJSONDecoding:
		return "Could not make sense of the server's response. Please try again."
	default:
		return "Unexpected error: " + err.Error()
	}
}

// renderError prefixes a message with "Error: ", in red when colored.
// Used for both local validation failures and API failures.
func renderError(msg string, colored bool) string {
	if colored {
		return errorStyle.Sprint("Error: " + msg)
	}
	return "Error: " + msg
}
