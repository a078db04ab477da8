// Package score computes game results from final scores.
package score

// Result is the outcome of a game from the tracked team's perspective.
type Result string

const (
	// Win means the tracked team scored more than the opponent.
	Win Result = "W"
	// Loss means the tracked team scored less than the opponent.
	Loss Result = "L"
	// Tie means both teams finished level.
	Tie Result = "T"
	// OvertimeLoss is a loss decided after regulation (hockey only).
	OvertimeLoss Result = "OTL"
)

// FromScores derives the result from the tracked team's score and the
// opponent's score. It is the only way a result value is produced; the
// field is never accepted from input.
func FromScores(own, opponent int) Result {
	switch {
	case own > opponent:
		return Win
	case own < opponent:
		return Loss
	default:
		return Tie
	}
}

// String returns the stored single-letter code.
func (r Result) String() string {
	return string(r)
}

// Valid reports whether r is one of the known result codes.
func (r Result) Valid() bool {
	switch r {
	case Win, Loss, Tie, OvertimeLoss:
		return true
	}
	return false
}
