// internal/rules/verdict.go
//
// Verdict type returned by the loop validator. A Verdict is the only
// feedback the core gives about a board: it names the violated rule
// (and where) or reports progress/completion. The HTTP layer and the
// game session consume it as-is.

package rules

import "github.com/robalobadob/loopy/internal/board"

// Kind enumerates the possible validation outcomes.
type Kind int

const (
	// InProgress: no rule is violated but Unknown edges remain, so the
	// board cannot yet be judged a loop.
	InProgress Kind = iota
	// InvalidDegree: a dot has three Line-edges. Rejected even mid-play.
	InvalidDegree
	// CrossingPaths: a dot has four Line-edges (two chains crossing).
	CrossingPaths
	// InvalidClue: a clued cell exceeds its clue, or falls short with
	// no Unknown edges left around it.
	InvalidClue
	// SolvedSingleLoop: every edge decided, all clues exact, and the
	// Line-edges form exactly one simple closed loop. The win state.
	SolvedSingleLoop
	// SolvedNotSingleLoop: every edge decided but the Line-edges do
	// not form a single loop (open chains or multiple components).
	SolvedNotSingleLoop
)

func (k Kind) String() string {
	switch k {
	case InProgress:
		return "in_progress"
	case InvalidDegree:
		return "invalid_degree"
	case CrossingPaths:
		return "crossing_paths"
	case InvalidClue:
		return "invalid_clue"
	case SolvedSingleLoop:
		return "solved"
	case SolvedNotSingleLoop:
		return "not_single_loop"
	}
	return "in_progress"
}

// Verdict carries the outcome kind plus the offending dot or cell when
// one exists.
type Verdict struct {
	Kind Kind        `json:"kind"`
	Dot  *board.Dot  `json:"dot,omitempty"`  // set for degree violations
	Cell *board.Cell `json:"cell,omitempty"` // set for clue violations
}

// Rejected reports whether a move producing this verdict must be
// rolled back by the caller.
func (v Verdict) Rejected() bool {
	return v.Kind == InvalidDegree || v.Kind == CrossingPaths || v.Kind == InvalidClue
}

// Won reports the winning verdict.
func (v Verdict) Won() bool { return v.Kind == SolvedSingleLoop }

// MarshalText lets Kind render as its wire string in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
