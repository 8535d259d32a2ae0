// =============================================================================
// lineeditor.go - Line Editor with Dual-Mode Operation
// =============================================================================
//
// This file implements a dual-mode line editor for the Mastermind prompts.
// It detects whether stdin is an interactive terminal (TTY) or a pipe and
// selects the input method accordingly:
//
//   - Interactive mode: uses ergochat/readline for full line editing with
//     Emacs keybindings and persistent guess history, so a player can
//     arrow-up to a previous code and tweak one digit.
//   - Non-interactive mode: falls back to bufio.Scanner for simple
//     line-by-line reading, printing the prompt manually to stdout.
//
// The Swift CLI this program is ported from read input with a bare
// readLine(), which gives no editing, no history, and no Ctrl-R search.
// Go's ecosystem makes the upgrade nearly free: ergochat/readline is a
// pure-Go readline (forked from chzyer/readline) that needs no CGo and no
// system libedit.
//
// History is stored at ~/.mastermind_history with a 500-entry limit.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	// historyFileName is the name of the history file in the user's home
	// directory.
	historyFileName = ".mastermind_history"

	// historySize is the maximum number of history entries to retain.
	historySize = 500
)

// LineEditor wraps line editing with dual-mode operation.
//
// In interactive mode it uses ergochat/readline; in non-interactive mode
// (piped input, as in the tests) it falls back to bufio.Scanner. Callers
// read through GetLine either way and never see the difference, except
// that only one of the modes keeps history.
type LineEditor struct {
	// interactive is true when stdin is a TTY and false when stdin is
	// piped (e.g., echo "1234" | mastermind).
	interactive bool

	// rl is the readline instance used in interactive mode, nil otherwise.
	rl *readline.Instance

	// scanner reads stdin in non-interactive mode, nil otherwise.
	scanner *bufio.Scanner
}

// NewLineEditor creates a LineEditor with automatic mode detection.
//
// GO CONCEPT: TTY Detection
// -------------------------
// When stdin is a TTY, a human is typing; when it is not, input comes
// from a pipe or file. golang.org/x/term.IsTerminal() checks a file
// descriptor for terminal-ness. We cast os.Stdin.Fd() (a uintptr) to int
// because that's what IsTerminal expects.
//
// Compare with Swift: the Swift client never asked — readLine() behaves
// identically on a TTY and a pipe. The C-level check it could have used
// is isatty(STDIN_FILENO), which is exactly what x/term wraps, portably.
//
// Compare with Python: sys.stdin.isatty() does the same job, and the
// input() builtin silently degrades when stdin is not a terminal.
func NewLineEditor() *LineEditor {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &LineEditor{
			interactive: false,
			scanner:     bufio.NewScanner(os.Stdin),
		}
	}

	historyPath := filepath.Join(homeDir(), historyFileName)

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:  historyPath,
		HistoryLimit: historySize,

		// DisableAutoSaveHistory prevents readline from recording every
		// line as it is read. We call SaveToHistory() ourselves for
		// non-empty lines, so blank Enter presses don't pollute history.
		DisableAutoSaveHistory: true,

		// The prompt changes between the guess prompt and the replay
		// prompt, so it is set per-read via SetPrompt().
		Prompt: "",
	})

	if err != nil {
		// Rare (a terminal missing capabilities); degrade to piped mode
		// rather than refuse to run.
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return &LineEditor{
			interactive: false,
			scanner:     bufio.NewScanner(os.Stdin),
		}
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
	}
}

// GetLine reads one line of input with the given prompt.
//
// Returns the line without its trailing newline. Returns ("", io.EOF)
// when input is exhausted: Ctrl-D, Ctrl-C at an interactive prompt, or a
// drained pipe. Other errors are returned as-is.
//
// GO CONCEPT: Sentinel Errors
// ---------------------------
// io.EOF is a "sentinel error": a package-level error value used as a
// signal, not a failure. Callers compare with == (or errors.Is for
// wrapped errors) and branch. The session loop treats io.EOF from this
// method the way the Swift client treated readLine() returning nil —
// the difference is that Go spells the condition out in the signature,
// where Swift hid it inside an Optional.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

// getInteractiveLine reads a line through readline with editing and
// history support.
func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		// readline reports Ctrl-D as io.EOF and Ctrl-C as ErrInterrupt.
		// Both mean "the player is done typing"; normalize to io.EOF so
		// the session has a single end-of-input signal.
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}

	trimmed := strings.TrimSpace(line)
	if trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}

	return line, nil
}

// getNonInteractiveLine reads a line from piped stdin. The prompt is
// still printed so transcripts (and the tests) show where input was
// requested.
func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Print(prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return le.scanner.Text(), nil
}

// Close releases the readline instance and flushes history to disk.
// It is idempotent and a no-op in non-interactive mode.
//
// GO CONCEPT: Explicit Resource Cleanup
// -------------------------------------
// Go has no deinit (Swift) and no reliable __del__ (Python). Files and
// terminals are released by calling Close() explicitly, usually paired
// with defer at the acquisition site. Idempotency comes from the nil
// check: close once, set the field to nil, and a second Close() finds
// nothing to do.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether the editor runs in interactive (TTY)
// mode. The session uses this to decide how end-of-input at the replay
// prompt should behave: on a TTY a Ctrl-D is transient and the prompt
// repeats, while a drained pipe can never produce an answer.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}
