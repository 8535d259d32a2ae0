// =============================================================================
// main.go - Mastermind CLI Entry Point (Go Port)
// =============================================================================
//
// This is the main entry point for the Go port of the Mastermind command-line
// client. The game logic lives on a remote HTTP service; this program is a
// thin interactive client that creates a game, submits guesses, shows the
// black/white peg score, and deletes the game when it ends.
//
// Usage:
//
//	mastermind                         Play against the default server
//	mastermind --api-url <url>         Play against a specific server
//	mastermind --plain                 Disable colored output
//	mastermind --help                  Show help
//
// Settings can also come from the environment or a .env file:
// MASTERMIND_API_URL, MASTERMIND_HTTP_TIMEOUT, LOG_LEVEL (see config.go).
//
// =============================================================================

// GO CONCEPT: Packages
// --------------------
// Every Go source file starts with a "package" declaration. All files in
// the same directory must use the same package name. The special package
// name "main" tells the Go compiler this is an executable program (not a
// library). A "main" package must contain a func main() as the entry point.
//
// Compare to Swift: Swift uses @main on a struct or top-level code in
// main.swift. Go always uses package main + func main().
//
// Compare with Python: Python uses `if __name__ == "__main__":` as the
// entry point. Any .py file can be both a script and a module. There's
// no package-name requirement for executables.
package main

// GO CONCEPT: Imports
// -------------------
// The import block lists packages this file depends on. Go has a rich
// standard library (everything without a domain prefix) and a module
// system for external packages (with domain prefixes like "github.com/...").
//
// Standard library packages used here:
//   - "context"   — carries deadlines/cancellation across API calls
//   - "fmt"       — formatted I/O (like Swift's print(), String(format:))
//   - "os"        — operating system functions (args, exit, files, env)
//   - "os/signal" — OS signal handling (SIGINT, SIGTERM)
//   - "syscall"   — low-level OS primitives (signal constants)
//
// External packages:
//   - "github.com/fatih/color" — ANSI color output with TTY detection
//   - "github.com/rs/zerolog"  — structured diagnostic logging
//   - our own "mastermindapi"  — the HTTP client for the game service
//
// Go enforces that every import is used. If you import "fmt" but never
// call fmt.Println, the code won't compile. This keeps imports clean.
//
// Compare to Swift: similar to "import Foundation", but the original
// Mastermind client needed only Foundation (URLSession, JSONDecoder);
// here each concern gets its own small package.
//
// Compare with Python: Python's `import os` is similar. Python doesn't
// enforce unused imports at the language level, though linters like
// flake8 flag them.
import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/amirhoseinsalami/MastermindGame/mastermindapi"
)

// =============================================================================
// Version Information
// =============================================================================

// GO CONCEPT: Constants
// ---------------------
// Go's "const" declares compile-time constants. They can be grouped in a
// block with parentheses. Unlike Swift's "let" (which can hold any value
// computed at runtime), Go constants must be determinable at compile time
// and are limited to basic types: strings, numbers, and booleans.
//
// Naming convention: Go uses camelCase for private (unexported) names and
// PascalCase for public (exported) names. Since these constants start with
// lowercase letters, they are private to this package.
//
// Compare with Python: Python has no `const` keyword. By convention,
// constants use UPPER_CASE (e.g., `VERSION = "1.0.0"`), but nothing
// prevents reassignment.
const (
	// version is the current version of the Go client, kept in sync with
	// the Swift original it was ported from.
	version = "1.0.0"

	// appName is the application name.
	appName = "Mastermind"

	// copyright is the copyright notice.
	copyright = "Copyright (c) 2026"
)

// GO CONCEPT: Functions
// ---------------------
// Functions are declared with "func". The return type comes AFTER the
// parameter list (opposite of C/Java/Swift). If a function returns nothing,
// you simply omit the return type.
//
// Compare to Swift:
//   Swift: func fullTitle() -> String { return "\(appName) v\(version)" }
//   Go:    func fullTitle() string    { return fmt.Sprintf(...) }
//
// Note: Go has no string interpolation like Swift's "\(variable)". Instead
// you use fmt.Sprintf() with format verbs like %s (string), %d (integer),
// %v (default format for any value).
//
// Compare with Python:
//   Python: def full_title() -> str: return f"{APP_NAME} v{VERSION}"

// fullTitle returns the application name with version.
func fullTitle() string {
	return fmt.Sprintf("%s v%s (Go)", appName, version)
}

// GO CONCEPT: Raw String Literals
// --------------------------------
// Go has two kinds of string literals:
//   - Interpreted: "hello\nworld"  (processes escape sequences like \n, \t)
//   - Raw:         `hello\nworld`  (backticks, everything is literal)
//
// Raw strings are perfect for multi-line text — the backtick preserves
// newlines exactly as written. This is similar to Swift's multi-line
// strings (triple quotes """) but uses backticks instead.
//
// Compare with Python: Python has triple-quoted strings (`"""..."""`)
// for multi-line text.

// welcomeBanner returns the banner displayed when the game starts.
func welcomeBanner() string {
	return fmt.Sprintf(`%s - Crack the Code
%s

I picked a secret 4-digit code. Digits run from 1 to 6 and may repeat.
After each guess you get pegs: B = right digit in the right place,
W = right digit in the wrong place.

Type 'help' for instructions.
Type 'exit' to quit.
`, fullTitle(), copyright)
}

// =============================================================================
// Command-Line Arguments
// =============================================================================

// GO CONCEPT: Structs
// -------------------
// Go structs are the primary way to group related data, similar to Swift
// structs. However, Go structs are simpler:
//   - No initializers (constructors) — you use struct literals or factory
//     functions
//   - No computed properties — use methods or plain functions instead
//   - No inheritance — Go uses composition and interfaces instead
//   - Fields are public if capitalized, private if lowercase
//
// GO CONCEPT: Zero Values
// -----------------------
// In Go, every type has a "zero value" — the default when no value is
// assigned. This eliminates the need for Swift-style optionals in many
// cases:
//   - bool    → false
//   - int     → 0
//   - string  → "" (empty string)
//   - pointer → nil
//
// So instead of Swift's "var apiURL: String?" (optional), we use
// "apiURL string" and check for "" (empty) to mean "not set".
//
// Compare with Python: Python uses `None` as the universal "no value"
// sentinel, with `Optional[str]` type hints. There are no automatic
// zero values — uninitialized variables cause `NameError`.

// arguments holds the parsed command-line arguments.
type arguments struct {
	// apiURL overrides the server base URL. If empty (""), the URL comes
	// from the environment or the built-in default. In Swift this would be
	// String? (optional); in Go we use the zero value to mean "not set".
	apiURL string

	// plain disables ANSI color output even on a capable terminal.
	plain bool

	// forceColor enables ANSI color output even when stdout is not a
	// terminal (useful when piping into a pager that renders colors).
	forceColor bool

	// showHelp causes usage information to be printed and the program to exit.
	showHelp bool

	// showVersion causes version information to be printed and the program to exit.
	showVersion bool
}

// GO CONCEPT: Slices and Slice Operations
// ----------------------------------------
// Go's "slice" is the primary dynamic array type. It's a view into an
// underlying array, with a length and capacity.
//
//   os.Args         — a []string (slice of strings) containing command-line args
//   os.Args[1:]     — a new slice starting from index 1 (skips program name)
//   remaining[0]    — first element
//   remaining[1:]   — everything after the first element
//
// Compare to Swift:
//   Swift: CommandLine.arguments.dropFirst()
//   Go:    os.Args[1:]
//
// Compare with Python: `sys.argv[1:]` skips the program name; slicing
// works the same way.

// parseArguments parses command-line arguments.
//
// This is a simple hand-written parser matching the Swift client's
// behavior. There are only 5 flags and no subcommands, so a framework
// like cobra would be over-engineering.
func parseArguments() arguments {
	args := arguments{}

	// os.Args[0] is the program name, so [1:] skips it.
	remaining := os.Args[1:]

	// GO CONCEPT: For Loops
	// ---------------------
	// Go has only ONE loop keyword: "for". It replaces while, do-while,
	// and traditional for loops from other languages.
	//
	//   for i := 0; i < 10; i++ { }  — traditional C-style for
	//   for condition { }             — while loop
	//   for { }                       — infinite loop (while true)
	//   for i, v := range slice { }   — iterate over collection
	//
	// Here we use "for len(remaining) > 0" as a while loop, consuming
	// arguments one at a time from the front of the slice.
	//
	// Compare with Python: `while remaining:` is the equivalent.
	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		// GO CONCEPT: Switch Statements
		// ------------------------------
		// Go's switch is cleaner than C's: no "break" needed (cases don't
		// fall through by default). You can match multiple values in one
		// case with commas.
		//
		// Compare to Swift: very similar behavior (no implicit fallthrough).
		//
		// Compare with Python: Python 3.10+ has `match`/`case`; multiple
		// values use `case "--help" | "-h":`.
		switch arg {
		case "--plain":
			args.plain = true

		case "--color":
			args.forceColor = true

		case "--api-url":
			if len(remaining) == 0 {
				printError("--api-url requires a URL argument")
				os.Exit(1)
			}
			args.apiURL = remaining[0]
			remaining = remaining[1:]

		// Multiple values in one case — equivalent to Swift's "case "--help", "-h":"
		case "--help", "-h":
			args.showHelp = true

		case "--version", "-v":
			args.showVersion = true

		default:
			printError(fmt.Sprintf("Unknown argument: %s", arg))
			printUsage()
			os.Exit(1)
		}
	}

	return args
}

// =============================================================================
// Help and Usage
// =============================================================================

// printUsage prints usage information to stdout.
func printUsage() {
	// Using a raw string literal (backticks) for the multi-line help text.
	// fmt.Print (no "ln") prints without adding a trailing newline — the
	// raw string already includes one at the end.
	fmt.Print(`USAGE: mastermind [options]

OPTIONS:
  --api-url <url>     Play against a specific Mastermind server
  --plain             Plain output (no ANSI colors)
  --color             Force colored output even when piped
  --help, -h          Show this help
  --version, -v       Show version

ENVIRONMENT:
  MASTERMIND_API_URL       Server base URL (same as --api-url)
  MASTERMIND_HTTP_TIMEOUT  HTTP timeout in Go duration syntax (default 15s)
  LOG_LEVEL                Diagnostic log level on stderr (default disabled)

  Variables may also be placed in a .env file in the working directory.

EXAMPLES:
  mastermind                                   Play against the default server
  mastermind --plain                           Pipe-friendly output
  mastermind --api-url http://localhost:8080   Play against a local server

GAMEPLAY:
  Each guess is 4 digits, each from 1 to 6, like 1234. The reply shows one
  B per digit in the correct position and one W per correct digit in the
  wrong position; 'None' means nothing matched. Four Bs wins the game.
`)
}

// printVersion prints version information to stdout.
func printVersion() {
	fmt.Println(fullTitle())
}

// GO CONCEPT: Writing to stderr
// ------------------------------
// Go's fmt.Fprintf takes an io.Writer as first argument, letting you
// write to any destination. os.Stderr is the standard error stream.
// The game transcript goes to stdout; usage errors and diagnostics go
// to stderr so piping the transcript stays clean.
//
// Compare to Swift:
//   Swift: FileHandle.standardError.write("Error: \(msg)\n".data(using: .utf8)!)
//   Go:    fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
//
// Compare with Python: `print(f"Error: {msg}", file=sys.stderr)`.

// printError prints an error message to stderr.
func printError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// =============================================================================
// Logging
// =============================================================================

// newLogger builds the diagnostic logger. Logging is disabled by default so
// nothing interleaves with the game transcript; set LOG_LEVEL=debug (or
// trace, info, ...) to watch the HTTP traffic and state changes on stderr.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		printError(fmt.Sprintf("Unknown LOG_LEVEL %q; logging stays disabled", level))
		lvl = zerolog.Disabled
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}

// =============================================================================
// Signal Handling
// =============================================================================

// GO CONCEPT: Channels and Goroutines
// ------------------------------------
// Channels and goroutines are Go's core concurrency primitives. They're
// what makes Go unique compared to most other languages.
//
// GOROUTINE: A goroutine is a lightweight thread managed by the Go runtime.
// You start one with the "go" keyword before a function call:
//   go myFunction()          — runs myFunction concurrently
//   go func() { ... }()     — runs an anonymous function concurrently
//
// Goroutines are extremely cheap (a few KB of stack each) compared to OS
// threads. You can easily run thousands of them.
//
// CHANNEL: A channel is a typed communication pipe between goroutines.
// Think of it as a thread-safe queue.
//   ch := make(chan int)      — create an unbuffered channel of ints
//   ch <- value               — send a value (blocks if full)
//   value := <-ch             — receive a value (blocks if empty)
//
// Compare to Swift: the original client installed a C signal handler with
// signal(SIGINT, ...), which may only run async-signal-safe code, so it
// could do little more than set a flag. Go's signal.Notify delivers the
// signal to a channel read by an ordinary goroutine, which is free to run
// real cleanup code like the HTTP delete.
//
// Compare with Python: `signal.signal(signal.SIGINT, handler)` runs the
// handler between bytecode instructions on the main thread; Go's model
// is closer to a dedicated listener thread.
//
// GO CONCEPT: Function Values (First-Class Functions)
// ---------------------------------------------------
// In Go, functions are first-class values — you can assign them to
// variables, pass them as arguments, and return them from other functions.
//
// The parameter "cleanup func()" means: "a function that takes no
// arguments and returns nothing". This is similar to Swift closures:
//   Swift: func setupSignalHandler(cleanup: @escaping () -> Void)
//   Go:    func setupSignalHandler(cleanup func())

// setupSignalHandler installs handlers for SIGINT and SIGTERM so the client
// can clean up (delete the active game, save history) before exiting.
func setupSignalHandler(cleanup func()) {
	// signal.Notify requires a buffered channel so signal delivery doesn't
	// block if we're not ready to receive yet; capacity 1 is enough.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// "go func() { ... }()" launches an anonymous goroutine. It blocks on
	// "<-sigCh" until a signal arrives, then runs cleanup and exits. The
	// trailing "()" is what actually calls the anonymous function.
	go func() {
		<-sigCh                   // Block until a signal is received (the value is discarded)
		fmt.Println()             // Print a newline after ^C for clean terminal output
		fmt.Println(farewellText) // Same goodbye the exit command prints
		cleanup()                 // Run the cleanup function passed by the caller
		os.Exit(0)
	}()
}

// =============================================================================
// Main
// =============================================================================

// GO CONCEPT: The main() Function
// --------------------------------
// Every Go executable must have a func main() in package main. This is the
// program's entry point — Go calls it automatically when the program starts.
//
// When main() returns, the entire program exits — even if other goroutines
// are still running. This is different from many languages where background
// threads keep the process alive.
//
// Compare with Python: Python doesn't exit when the main function returns
// if non-daemon threads are still running; Go does.

func main() {
	// Parse arguments
	args := parseArguments()

	// Handle --help
	if args.showHelp {
		printUsage()
		return // Returning from main() exits the program with code 0
	}

	// Handle --version
	if args.showVersion {
		printVersion()
		return
	}

	// Resolve configuration: flags beat environment beats defaults.
	cfg := loadConfig()
	if args.apiURL != "" {
		cfg.apiURL = args.apiURL
	}

	logger := newLogger(cfg.logLevel)

	// Color mode: the color package auto-detects TTYs and honors NO_COLOR,
	// so by default we just follow its verdict. The flags override it both
	// ways.
	colored := !color.NoColor
	if args.plain {
		colored = false
		color.NoColor = true
	}
	if args.forceColor {
		colored = true
		color.NoColor = false
	}

	// GO CONCEPT: Pointers
	// --------------------
	// NewClient returns *mastermindapi.Client — a pointer to a Client.
	// Go pointers are simple: no pointer arithmetic, garbage collected.
	// We share one Client instance (it owns the HTTP connection pool)
	// rather than copying it around.
	//
	// Compare to Swift: Swift classes are reference types (always passed
	// by reference), so there's no need for explicit pointers. Go structs
	// are value types by default, so you use pointers when you need
	// reference semantics.
	client := mastermindapi.NewClient(cfg.apiURL)
	client.SetTimeout(cfg.httpTimeout)
	client.SetLogger(logger)

	editor := NewLineEditor()
	sess := newSession(client, editor, colored, logger)

	logger.Info().
		Str("api_url", client.BaseURL()).
		Dur("http_timeout", cfg.httpTimeout).
		Bool("color", colored).
		Msg("client configured")

	// GO CONCEPT: Closures (Anonymous Functions with Captured Variables)
	// ------------------------------------------------------------------
	// Go supports closures — anonymous functions that capture variables
	// from their surrounding scope. cleanup captures "sess" and "editor"
	// by reference, so it sees their current state whenever it runs.
	//
	// We define cleanup as a variable holding a function value so we can
	// pass it to setupSignalHandler AND call it on the normal exit path.
	// sess.Shutdown consumes the game ID, so cleanup is safe to run more
	// than once per game.
	cleanup := func() {
		sess.Shutdown() // Best-effort delete of the active game
		editor.Close()  // Save history, restore the terminal
	}

	// Install signal handlers (runs cleanup in a background goroutine when
	// SIGINT or SIGTERM is received)
	setupSignalHandler(cleanup)

	// Print welcome banner
	fmt.Print(welcomeBanner())
	fmt.Println()

	// Run the session — this blocks until the player exits, declines a
	// replay, or game creation fails.
	err := sess.Run(context.Background())

	// Clean up on normal exit. After a graceful session end there is no
	// game left to delete; this mainly closes the line editor.
	cleanup()

	if err != nil {
		logger.Error().Err(err).Msg("session ended with error")
		os.Exit(1)
	}
}
