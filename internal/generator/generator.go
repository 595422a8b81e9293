// internal/generator/generator.go
//
// Puzzle generator.
// Responsibilities:
//   - Grow a random simple closed loop on the dot grid by a
//     self-avoiding walk with backtracking (explicit choice stack,
//     bounded steps; restart on failure to close).
//   - Derive every cell's clue from the loop. All clues are published;
//     clue removal is the classic source of ambiguity and is not done.
//   - Prove the clue set admits exactly one loop via the solver before
//     shipping the board. Non-unique clue sets trigger a fresh walk.
//
// Generation is deterministic per seed. When the attempt budget runs
// out, ErrGenerationFailed is returned and the caller retries with a
// different seed; an unsolvable or ambiguous board is never emitted.

package generator

import (
	"errors"
	"math/rand"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/solver"
)

// ErrGenerationFailed signals an exhausted walk-attempt budget.
// Retryable with a new seed, never surfaced to the player.
var ErrGenerationFailed = errors.New("generator: attempt budget exhausted")

const (
	// maxAttempts bounds full walk+uniqueness cycles per Generate call.
	maxAttempts = 64
	// maxWalkSteps bounds stack operations within a single walk.
	maxWalkSteps = 4096
)

// Puzzle is a generated board plus its (server-side only) solution.
type Puzzle struct {
	Board    *board.Board
	Solution []board.EdgeID // the generating loop, in walk order
	Seed     int64
	Size     board.Size
}

// Generator builds solvable puzzles using a solver for uniqueness
// proofs.
type Generator struct {
	Solver *solver.Engine
}

// New wires a generator to the given solver engine.
func New(s *solver.Engine) *Generator { return &Generator{Solver: s} }

// minLoopLen is the smallest accepted loop per size class. Short loops
// make degenerate puzzles (a single cell ringed by four lines).
func minLoopLen(size board.Size) int {
	switch size {
	case board.Medium:
		return 10
	case board.Hard:
		return 14
	}
	return 8 // Easy
}

// Generate builds a puzzle for the size class, deterministic per seed.
// The returned board has all edges Unknown and a clue in every cell.
func (g *Generator) Generate(size board.Size, seed int64) (*Puzzle, error) {
	rng := rand.New(rand.NewSource(seed))
	for attempt := 0; attempt < maxAttempts; attempt++ {
		loop, ok := randomLoop(rng, size, minLoopLen(size))
		if !ok {
			continue
		}
		b := clueBoard(size, loop)
		if !g.Solver.HasUniqueSolution(b) {
			continue
		}
		return &Puzzle{Board: b, Solution: loop, Seed: seed, Size: size}, nil
	}
	return nil, ErrGenerationFailed
}

// clueBoard builds a fresh board whose every cell is clued by the
// number of loop edges bordering it. Edge states stay Unknown.
func clueBoard(size board.Size, loop []board.EdgeID) *board.Board {
	b := board.New(size)
	inLoop := make(map[board.EdgeID]bool, len(loop))
	for _, e := range loop {
		inLoop[e] = true
	}
	for _, c := range b.Cells() {
		n := 0
		for _, e := range b.CellEdges(c) {
			if inLoop[e] {
				n++
			}
		}
		b.SetClue(c, n)
	}
	return b
}

// SolutionBoard reconstructs the fully solved board: loop edges Line,
// everything else Empty. Used by tests and the reveal debug route.
func (p *Puzzle) SolutionBoard() *board.Board {
	b := p.Board.Clone()
	inLoop := make(map[board.EdgeID]bool, len(p.Solution))
	for _, e := range p.Solution {
		inLoop[e] = true
	}
	for i := 0; i < b.NumEdges(); i++ {
		e := board.EdgeID(i)
		if inLoop[e] {
			b.SetState(e, board.Line)
		} else {
			b.SetState(e, board.Empty)
		}
	}
	return b
}
