// internal/solver/deduce.go
//
// Constraint propagation for Slitherlink boards.
// Four local rules are applied repeatedly until nothing changes:
//   (i)   a cell whose clue is already met forces its remaining
//         Unknown edges to Empty;
//   (ii)  a cell whose missing line count equals its Unknown count
//         forces those edges to Line;
//   (iii) a dot that already has two Line-edges forces its other
//         incident Unknowns to Empty;
//   (iv)  a dot with one Line-edge and a single Unknown left must
//         continue the chain through it, unless doing so would close
//         a sub-loop prematurely.
//
// Every forced assignment is a logical consequence of the clues, never
// a guess, which is what makes these usable as hints.

package solver

import (
	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/rules"
)

// Deduction is one forced edge assignment.
type Deduction struct {
	Edge  board.EdgeID    `json:"edge"`
	State board.EdgeState `json:"state"`
}

// Deduce returns every assignment forced by the four propagation rules,
// run to fixpoint. The input board is not mutated; the caller applies
// the result through its own commit path.
func (e *Engine) Deduce(b *board.Board) []Deduction {
	work := b.Clone()
	deds, _ := deduceInPlace(work)
	return deds
}

// deduceInPlace propagates on the board directly and reports ok=false
// when the rules run into a contradiction (a chain dead-ends, a clue
// becomes unreachable, or a dot would exceed degree two). The partial
// deduction list is still returned for diagnostics.
func deduceInPlace(b *board.Board) ([]Deduction, bool) {
	var deds []Deduction
	set := func(e board.EdgeID, s board.EdgeState) {
		b.SetState(e, s)
		deds = append(deds, Deduction{Edge: e, State: s})
	}

	for changed := true; changed; {
		changed = false

		// Cell rules (i) and (ii).
		for _, c := range b.Cells() {
			clue := b.Clue(c)
			if clue == board.NoClue {
				continue
			}
			lines := b.LineCount(c)
			unk := b.UnknownAround(c)
			if lines > clue || lines+unk < clue {
				return deds, false
			}
			if unk == 0 {
				continue
			}
			switch {
			case lines == clue:
				for _, ce := range b.CellEdges(c) {
					if b.State(ce) == board.Unknown {
						set(ce, board.Empty)
					}
				}
				changed = true
			case clue-lines == unk:
				for _, ce := range b.CellEdges(c) {
					if b.State(ce) == board.Unknown {
						set(ce, board.Line)
					}
				}
				changed = true
			}
		}

		// Dot rules (iii) and (iv).
		for _, d := range b.Dots() {
			deg := b.Degree(d)
			unk := b.UnknownDegree(d)
			if deg > 2 {
				return deds, false
			}
			if deg == 1 && unk == 0 {
				// open chain with nowhere to go
				return deds, false
			}
			if unk == 0 {
				continue
			}
			if deg == 2 {
				for _, ie := range b.IncidentEdges(d) {
					if b.State(ie) == board.Unknown {
						set(ie, board.Empty)
					}
				}
				changed = true
				continue
			}
			if deg == 1 && unk == 1 {
				for _, ie := range b.IncidentEdges(d) {
					if b.State(ie) != board.Unknown {
						continue
					}
					if prematureClosure(b, ie) {
						break
					}
					set(ie, board.Line)
					changed = true
					break
				}
			}
		}
	}
	return deds, true
}

// prematureClosure reports whether turning e into a Line would close a
// sub-loop before the board is finished. The one exception is the final
// closing move: if every other Unknown could be Empty and the result is
// the winning single loop, the closure is the solution itself.
func prematureClosure(b *board.Board, e board.EdgeID) bool {
	u, v := b.Endpoints(e)
	if !connectedByLines(b, u, v) {
		return false
	}
	probe := b.Clone()
	probe.SetState(e, board.Line)
	for i := 0; i < probe.NumEdges(); i++ {
		if probe.State(board.EdgeID(i)) == board.Unknown {
			probe.SetState(board.EdgeID(i), board.Empty)
		}
	}
	return !rules.Check(probe).Won()
}

// connectedByLines walks Line-edges from u and reports whether v is
// reachable.
func connectedByLines(b *board.Board, u, v board.Dot) bool {
	if u == v {
		return true
	}
	visited := map[board.Dot]bool{u: true}
	queue := []board.Dot{u}
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		for _, ie := range b.IncidentEdges(d) {
			if b.State(ie) != board.Line {
				continue
			}
			a, bb := b.Endpoints(ie)
			next := a
			if next == d {
				next = bb
			}
			if next == v {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
