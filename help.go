// =============================================================================
// help.go - Help System (Overview and Topic Help Text)
// =============================================================================
//
// This file implements the in-game help. At the guess prompt:
//   - "help"         — rules, scoring legend, and command summary
//   - "help <topic>" — detailed help for one topic (rules, scoring, ...)
//
// The Swift CLI printed a fixed rules blurb once at startup; the Go port
// keeps the blurb available on demand and adds per-topic lookups.
//
// =============================================================================

package main

import (
	"fmt"
	"os"
	"strings"
)

// printHelp displays the overview, or detailed help for a specific topic.
//
// GO CONCEPT: String Zero Value as "Not Set"
// ------------------------------------------
// Go has no Optional<String>; the empty string is the conventional
// "nothing given" value for a topic parameter like this one.
//
// Compare with Swift: func printHelp(topic: String?) with a nil check.
// Compare with Python: def print_help(topic: str | None = None).
func printHelp(topic string) {
	if topic == "" {
		printHelpOverview()
		return
	}

	// GO CONCEPT: Map Lookup with Comma-Ok Pattern
	// --------------------------------------------
	// Map lookups return (value, ok); ok distinguishes a missing key
	// from a key whose value is the zero value.
	//
	// Compare with Swift: if let text = helpTopics[key] { ... }
	// Compare with Python: text = help_topics.get(key)
	key := strings.ToLower(topic)
	if text, ok := helpTopics[key]; ok {
		fmt.Println(text)
		return
	}

	fmt.Fprintf(os.Stderr, "Error: No help for '%s'. Type help to see the overview.\n", topic)
}

// printHelpOverview prints the rules and command summary.
//
// GO CONCEPT: Raw String Literals for Multi-Line Text
// ---------------------------------------------------
// Backtick strings preserve formatting exactly as written, which keeps
// aligned help text readable in the source.
//
// Compare with Swift: triple-quoted strings (""") serve the same purpose.
func printHelpOverview() {
	fmt.Print(`How to play:
  The server holds a secret 4-digit code. Every digit is between 1
  and 6, and digits may repeat. Each turn you guess a code and the
  server scores it:
    B   one of your digits is correct and in the correct position
    W   one of your digits is in the code but in another position
  Four B pegs crack the code. "None" means no digit matched at all.

Commands at the guess prompt:
  <4 digits>        Submit a guess (e.g. 1356)
  help [topic]      Show this overview, or one topic
  exit              Delete the game on the server and quit

Help topics: rules, scoring, commands
`)
}

// helpTopics contains detailed help, keyed by lowercase topic name.
var helpTopics = map[string]string{
	"rules": `  rules
    The secret code has exactly 4 digits, each from 1 to 6. Digits may
    repeat, so 1224 and 5555 are both possible codes. There is no limit
    on the number of guesses; the attempt counter only counts guesses
    that were well-formed enough to be scored.`,

	"scoring": `  scoring
    The score for a guess is shown as a row of pegs:
      B   correct digit, correct position
      W   correct digit, wrong position
    Pegs never reveal which digit earned them. A score with no pegs at
    all is shown as "None". Four B pegs win the game.`,

	"commands": `  commands
    <4 digits>    Submit a guess, e.g. 2461
    help [topic]  Show the overview, or: rules, scoring, commands
    exit          Delete the server-side game and quit
    At the replay prompt, answer y/yes to start a fresh game or
    n/no/exit to leave.`,
}
