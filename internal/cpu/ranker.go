// internal/cpu/ranker.go
//
// Greedy CPU opponent.
// Responsibilities:
//   - Enumerate the Unknown edges whose placement as Line passes the
//     degree/clue rules (the candidate set).
//   - Score each candidate: how many further deductions it triggers,
//     how close it brings bordering clues to completion, and whether
//     it extends an existing chain.
//   - Rank with a stable descending sort and return the head.
//
// The ranker never mutates the board; the session applies the chosen
// edge through the same validate-then-commit path as a human move.
// Scoring is deterministic, so an unmutated board always yields the
// same move.

package cpu

import (
	"errors"
	"sort"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/rules"
	"github.com/robalobadob/loopy/internal/solver"
)

// ErrNoLegalMove means the candidate set is empty. The caller treats
// it as a pass or stalemate, not a failure.
var ErrNoLegalMove = errors.New("cpu: no legal move")

// Candidate pairs an edge with its heuristic score. Transient; never
// persisted.
type Candidate struct {
	Edge  board.EdgeID
	Score int
}

// Ranker picks greedy moves using a solver for lookahead scoring.
type Ranker struct {
	Solver *solver.Engine
}

// New wires a ranker to the given solver engine.
func New(s *solver.Engine) *Ranker { return &Ranker{Solver: s} }

// ChooseMove returns the highest-scoring legal Line placement.
func (r *Ranker) ChooseMove(b *board.Board) (board.EdgeID, error) {
	cands := r.Candidates(b)
	if len(cands) == 0 {
		return 0, ErrNoLegalMove
	}
	// Stability matters, the sort algorithm itself does not: equal
	// scores keep enumeration order so the choice is reproducible.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score > cands[j].Score })
	return cands[0].Edge, nil
}

// Candidates enumerates and scores every legal Line placement, in
// edge-ID order.
func (r *Ranker) Candidates(b *board.Board) []Candidate {
	var out []Candidate
	for i := 0; i < b.NumEdges(); i++ {
		e := board.EdgeID(i)
		if b.State(e) != board.Unknown {
			continue
		}
		probe := b.Clone()
		probe.SetState(e, board.Line)
		if rules.Check(probe).Rejected() {
			continue
		}
		out = append(out, Candidate{Edge: e, Score: r.score(b, probe, e)})
	}
	return out
}

// score rates a tentative Line placement. probe is the board with the
// edge already placed.
func (r *Ranker) score(b, probe *board.Board, e board.EdgeID) int {
	score := 0

	// Deduction fallout: placements that force many follow-ups carve
	// the most structure out of the puzzle.
	score += 5 * len(r.Solver.Deduce(probe))

	// Clue proximity: completing a bordering clue beats inching one
	// forward.
	for _, c := range b.EdgeCells(e) {
		clue := b.Clue(c)
		if clue == board.NoClue {
			continue
		}
		switch lines := b.LineCount(c) + 1; {
		case lines == clue:
			score += 10
		case lines < clue:
			score += 2
		}
	}

	// Chain extension: prefer continuing open ends over starting new
	// fragments.
	u, v := b.Endpoints(e)
	if b.Degree(u) == 1 {
		score += 3
	}
	if b.Degree(v) == 1 {
		score += 3
	}
	return score
}
