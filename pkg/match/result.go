package match

import "fmt"

// Outcome represents the result of a single game.
type Outcome int

const (
	WhiteWin Outcome = iota
	BlackWin
	Draw
)

// ParseOutcome parses the result text of a PGN game. Unfinished games (*)
// and any other text are reported as not ok.
func ParseOutcome(text string) (Outcome, bool) {
	switch text {
	case "1-0":
		return WhiteWin, true
	case "0-1":
		return BlackWin, true
	case "1/2-1/2":
		return Draw, true
	default:
		return 0, false
	}
}

// String returns the PGN result text of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?-?"
	}
}

// Winner returns the side that won a game with the given Outcome.
func (outcome Outcome) Winner() (Side, bool) {
	switch outcome {
	case WhiteWin:
		return White, true
	case BlackWin:
		return Black, true
	case Draw:
		return 0, false
	}

	panic(fmt.Sprintf("match: invalid outcome %d", int(outcome)))
}
