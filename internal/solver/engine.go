// internal/solver/engine.go
//
// Solver engine for Slitherlink boards.
// Responsibilities:
//   - HasUniqueSolution: proves a clue set admits exactly one loop, by
//     propagation plus bounded depth-first search counting solutions
//     up to two.
//   - NextHint: the next logically forced move. A direct deduction wins
//     when one exists; otherwise a one-level lookahead keeps only an
//     edge whose opposite state deduces to a contradiction.
//
// Both are total over structurally valid boards: "no result" comes
// back as a bool, never as an error. The search runs over an explicit
// choice stack with a node budget; overrunning the budget reads as
// "not proven unique", which the generator treats as a retry signal.

package solver

import (
	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/rules"
)

// defaultMaxNodes bounds search work per query. Generous for the 7×7
// grid; Easy boards rarely need more than a few hundred nodes.
const defaultMaxNodes = 200000

// Engine performs deduction and bounded search over boards.
type Engine struct {
	// MaxNodes caps the number of search-tree nodes expanded per
	// HasUniqueSolution call. Zero means the default.
	MaxNodes int
}

// New returns an engine with the default search budget.
func New() *Engine { return &Engine{MaxNodes: defaultMaxNodes} }

func (e *Engine) budget() int {
	if e.MaxNodes > 0 {
		return e.MaxNodes
	}
	return defaultMaxNodes
}

// HasUniqueSolution reports whether exactly one full assignment of the
// board's Unknown edges yields a single closed loop satisfying every
// clue. Exhausting the node budget reports false.
func (e *Engine) HasUniqueSolution(b *board.Board) bool {
	work := b.Clone()
	if _, ok := deduceInPlace(work); !ok {
		return false
	}
	nodes := e.budget()
	count, overrun := countSolutions(work, 2, &nodes)
	return count == 1 && !overrun
}

// NextHint returns the next forced move. Direct deductions win; when
// none exist, each Unknown edge is probed with its opposite state and
// the first edge whose opposite provably fails is returned. ok=false
// means nothing is forced: already fully constrained, the board needs
// a guess (which generator-produced boards never do), or the committed
// position is contradictory, in which case no single move can be
// trusted and no hint is offered.
func (e *Engine) NextHint(b *board.Board) (Deduction, bool) {
	work := b.Clone()
	deds, ok := deduceInPlace(work)
	if !ok {
		return Deduction{}, false
	}
	if len(deds) > 0 {
		return deds[0], true
	}
	for i := 0; i < b.NumEdges(); i++ {
		edge := board.EdgeID(i)
		if b.State(edge) != board.Unknown {
			continue
		}
		for _, want := range [2]board.EdgeState{board.Line, board.Empty} {
			opposite := board.Empty
			if want == board.Empty {
				opposite = board.Line
			}
			probe := b.Clone()
			probe.SetState(edge, opposite)
			if rules.Check(probe).Rejected() {
				return Deduction{Edge: edge, State: want}, true
			}
			if _, ok := deduceInPlace(probe); !ok {
				return Deduction{Edge: edge, State: want}, true
			}
		}
	}
	return Deduction{}, false
}

// choice is one frame of the explicit search stack: the board snapshot
// before branching, the edge being decided, and how many of the two
// states were already tried.
type choice struct {
	snap  *board.Board
	edge  board.EdgeID
	tried int
}

var branchStates = [2]board.EdgeState{board.Line, board.Empty}

// countSolutions explores assignments of the remaining Unknown edges
// depth-first, re-deducing after every branch, and counts complete
// single-loop solutions up to limit. overrun is true when the node
// budget ran out before the space was exhausted.
func countSolutions(b *board.Board, limit int, nodes *int) (count int, overrun bool) {
	if b.UnknownEdges() == 0 {
		if rules.Check(b).Won() {
			return 1, false
		}
		return 0, false
	}

	stack := []*choice{{snap: b, edge: firstUnknown(b)}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		if fr.tried >= len(branchStates) {
			stack = stack[:len(stack)-1]
			continue
		}
		st := branchStates[fr.tried]
		fr.tried++

		*nodes--
		if *nodes < 0 {
			return count, true
		}

		work := fr.snap.Clone()
		work.SetState(fr.edge, st)
		if _, ok := deduceInPlace(work); !ok {
			continue
		}
		if work.UnknownEdges() == 0 {
			if rules.Check(work).Won() {
				count++
				if count >= limit {
					return count, false
				}
			}
			continue
		}
		stack = append(stack, &choice{snap: work, edge: firstUnknown(work)})
	}
	return count, false
}

// firstUnknown picks the branching edge: the first Unknown edge that
// borders a clued cell, falling back to the first Unknown anywhere.
// Branching near clues lets deduction prune earlier.
func firstUnknown(b *board.Board) board.EdgeID {
	fallback := board.EdgeID(-1)
	for i := 0; i < b.NumEdges(); i++ {
		e := board.EdgeID(i)
		if b.State(e) != board.Unknown {
			continue
		}
		if fallback < 0 {
			fallback = e
		}
		for _, c := range b.EdgeCells(e) {
			if b.Clue(c) != board.NoClue {
				return e
			}
		}
	}
	return fallback
}
