package mastermindapi

import "fmt"

// Score is the server's evaluation of one guess.
//
// Black counts digits correct in both value and position; White counts
// digits present in the code but placed elsewhere. Both are non-negative
// and their sum never exceeds CodeLength. The server computes the score;
// this client only carries it.
type Score struct {
	Black int
	White int
}

// IsWin reports whether the score denotes a cracked code. Only Black
// matters: CodeLength position-correct digits win regardless of White.
func (s Score) IsWin() bool {
	return s.Black == CodeLength
}

// String renders the score compactly for diagnostics, e.g. "2B1W".
func (s Score) String() string {
	return fmt.Sprintf("%dB%dW", s.Black, s.White)
}
