// =============================================================================
// help_test.go - Tests for Help System (help.go)
// =============================================================================
//
// Tests for the in-game help, covering:
//   - Overview output (rules blurb, peg legend, command summary)
//   - Topic-specific lookup (rules, scoring, commands)
//   - Case-insensitive topic matching
//   - Unknown topic error messages
//   - Topic dictionary completeness
//
// GO CONCEPT: Capturing Output for Testing
// -----------------------------------------
// The help system writes to stdout (fmt.Print) and stderr (fmt.Fprintf).
// To test output, we redirect os.Stdout to a pipe and read what was written.
// This is the same technique used in session_test.go for full-session capture.
//
// Compare with Swift: XCTest doesn't have built-in stdout capture; you'd
// either refactor to write to a configurable Writer or use pipe redirection.
//
// Compare with Python: pytest provides `capsys` fixture for stdout capture:
//   def test_help(capsys): print_help(...); captured = capsys.readouterr()
// Or use `contextlib.redirect_stdout(io.StringIO())`.
//
// =============================================================================

package main

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// Helper: Capture stdout
// =============================================================================

// captureStdout runs a function and returns everything it wrote to stdout.
//
// GO CONCEPT: Higher-Order Functions for Test Utilities
// -------------------------------------------------------
// This helper takes a function (fn func()) and captures its stdout output.
// Higher-order functions (functions that take or return other functions)
// are common in Go test utilities for wrapping behavior.
//
// Compare with Swift: Swift closures serve the same purpose:
//   func captureStdout(_ fn: () -> Void) -> String { ... }
//
// Compare with Python: Python uses context managers:
//   with redirect_stdout(io.StringIO()) as f:
//       fn()
//       return f.getvalue()
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = w

	var wg sync.WaitGroup
	var output string

	wg.Add(1)
	go func() {
		defer wg.Done()
		var buf strings.Builder
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			buf.WriteString(scanner.Text())
			buf.WriteString("\n")
		}
		output = buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = oldStdout
	wg.Wait()
	r.Close()

	return output
}

// =============================================================================
// Help Overview Tests
// =============================================================================

// TestHelpOverviewContainsLegend verifies the overview explains the peg
// legend and the win condition.
func TestHelpOverviewContainsLegend(t *testing.T) {
	output := captureStdout(t, func() {
		printHelp("")
	})

	legend := []string{
		"4-digit code",
		"B ",
		"W ",
		"correct position",
		"another position",
		"Four B pegs crack the code.",
		`"None"`,
	}
	for _, phrase := range legend {
		if !strings.Contains(output, phrase) {
			t.Errorf("help overview missing %q in output:\n%s", phrase, output)
		}
	}
}

// TestHelpOverviewContainsCommands verifies the commands the guess prompt
// accepts all appear in the overview.
func TestHelpOverviewContainsCommands(t *testing.T) {
	output := captureStdout(t, func() {
		printHelp("")
	})

	commands := []string{"<4 digits>", "help [topic]", "exit"}
	for _, cmd := range commands {
		if !strings.Contains(output, cmd) {
			t.Errorf("help overview missing %q", cmd)
		}
	}
}

// TestHelpOverviewListsAllTopics verifies every topic in the dictionary is
// advertised in the overview, so none can silently become unreachable.
func TestHelpOverviewListsAllTopics(t *testing.T) {
	output := captureStdout(t, func() {
		printHelp("")
	})

	for topic := range helpTopics {
		if !strings.Contains(output, topic) {
			t.Errorf("help overview does not mention topic %q", topic)
		}
	}
}

// =============================================================================
// Topic-Specific Help Tests
// =============================================================================

// TestHelpTopics verifies topic-specific help output.
func TestHelpTopics(t *testing.T) {
	tests := []struct {
		topic   string
		expects string
	}{
		{"rules", "each from 1 to 6"},
		{"rules", "Digits may"},
		{"scoring", "correct digit, correct position"},
		{"scoring", "Four B pegs win the game."},
		{"commands", "Submit a guess"},
		{"commands", "replay prompt"},
	}

	for _, tc := range tests {
		t.Run(tc.topic+"/"+tc.expects, func(t *testing.T) {
			output := captureStdout(t, func() {
				printHelp(tc.topic)
			})
			if !strings.Contains(output, tc.expects) {
				t.Errorf("help %s: expected %q in output, got:\n%s",
					tc.topic, tc.expects, output)
			}
		})
	}
}

// TestHelpTopicCaseInsensitive verifies case-insensitive topic lookup.
//
// GO CONCEPT: Case-Insensitive Map Lookup
// -----------------------------------------
// Go maps are case-sensitive by default. To support case-insensitive
// lookup, we normalize the key to lowercase before looking it up.
// This is done in printHelp() via strings.ToLower(topic).
//
// Compare with Swift: Swift String comparison is Unicode-aware.
// Compare with Python: dict keys are case-sensitive; use .lower() to normalize.
func TestHelpTopicCaseInsensitive(t *testing.T) {
	tests := []string{"RULES", "Rules", "rules", "SCORING", "Commands"}

	for _, topic := range tests {
		t.Run(topic, func(t *testing.T) {
			output := captureStdout(t, func() {
				printHelp(topic)
			})
			if output == "" {
				t.Errorf("case-insensitive lookup produced no output for %q", topic)
			}
			if strings.Contains(output, "No help for") {
				t.Errorf("case-insensitive lookup failed for %q", topic)
			}
		})
	}
}

// TestHelpTopicUnknown verifies error output for unknown topics.
func TestHelpTopicUnknown(t *testing.T) {
	// Capture stderr for the error message.
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create stderr pipe: %v", err)
	}
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = oldStderr })

	var wg sync.WaitGroup
	var stderrOutput string

	wg.Add(1)
	go func() {
		defer wg.Done()
		var buf strings.Builder
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			buf.WriteString(scanner.Text())
			buf.WriteString("\n")
		}
		stderrOutput = buf.String()
	}()

	// Capture stdout too; an unknown topic must not print there.
	stdout := captureStdout(t, func() {
		printHelp("nonexistent")
	})

	w.Close()
	wg.Wait()
	r.Close()

	if !strings.Contains(stderrOutput, "No help for 'nonexistent'") {
		t.Errorf("expected 'No help for' error, got:\n%s", stderrOutput)
	}
	if stdout != "" {
		t.Errorf("unknown topic wrote to stdout: %q", stdout)
	}
}

// =============================================================================
// Topic Dictionary Completeness Tests
// =============================================================================

// TestHelpTopicsComplete verifies all advertised topics have entries.
//
// GO CONCEPT: Testing Map Completeness
// -----------------------------------------------
// We define the expected keys and verify they all exist in the map.
// This catches regressions where a topic is advertised in the overview
// but its entry is forgotten.
func TestHelpTopicsComplete(t *testing.T) {
	expectedKeys := []string{"rules", "scoring", "commands"}

	for _, key := range expectedKeys {
		if _, ok := helpTopics[key]; !ok {
			t.Errorf("helpTopics missing entry for %q", key)
		}
	}
}
