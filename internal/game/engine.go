// internal/game/engine.go
//
// Core game engine for a single Loopy session.
// Responsibilities:
//   - Create new sessions by running the generator (seeded or random).
//   - Apply edge moves through validate-then-commit-or-rollback: a
//     toggle that the validator rejects leaves the board untouched.
//   - Serve hints, run the CPU turn through the same commit path,
//     track turns, undo/redo, win and stalemate.
//
// Notes:
//   - The board is exclusively owned by the session; moves are applied
//     strictly sequentially, never concurrently.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	mrand "math/rand"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/cpu"
	"github.com/robalobadob/loopy/internal/generator"
	"github.com/robalobadob/loopy/internal/rules"
	"github.com/robalobadob/loopy/internal/solver"
)

// The engines are stateless; one set serves every session.
var (
	eng    = solver.New()
	gen    = generator.New(eng)
	ranker = cpu.New(eng)
)

var (
	// ErrFinished rejects moves on a completed game.
	ErrFinished = errors.New("game finished")
	// ErrNotYourTurn rejects out-of-turn moves in vs_cpu mode.
	ErrNotYourTurn = errors.New("not your turn")
)

// New constructs a session. seed 0 picks a fresh random seed. The
// generator's failure (attempt budget exhausted) is retried here with
// derived seeds a few times before giving up to the caller.
func New(mode Mode, size board.Size, seed int64) (*Game, error) {
	if seed == 0 {
		seed = mrand.Int63()
	}
	var p *generator.Puzzle
	var err error
	s := seed
	for tries := 0; tries < 4; tries++ {
		p, err = gen.Generate(size, s)
		if err == nil {
			break
		}
		s = s*6364136223846793005 + 1442695040888963407 // next derived seed
	}
	if err != nil {
		return nil, err
	}
	if mode != ModeVsCPU {
		mode = ModeSolo
	}
	return &Game{
		ID:     randomID(),
		Mode:   mode,
		Size:   size,
		Seed:   seed,
		Puzzle: p,
		Board:  p.Board.Clone(),
		Turn:   TurnHuman,
	}, nil
}

// ApplyMove sets an edge to the proposed state, validates, and commits
// or rolls back. The returned Verdict tells the caller what happened;
// on a rejection the edge keeps its prior state and nothing else
// changes (no partial apply).
func (g *Game) ApplyMove(e board.EdgeID, to board.EdgeState) (rules.Verdict, error) {
	return g.applyMove(e, to, TurnHuman)
}

func (g *Game) applyMove(e board.EdgeID, to board.EdgeState, by Turn) (rules.Verdict, error) {
	if g.Finished {
		return rules.Verdict{}, ErrFinished
	}
	if int(e) < 0 || int(e) >= g.Board.NumEdges() {
		return rules.Verdict{}, errors.New("edge out of range")
	}
	if g.Mode == ModeVsCPU && g.Turn != by {
		return rules.Verdict{}, ErrNotYourTurn
	}

	prev := g.Board.State(e)
	g.Board.SetState(e, to)
	v := rules.Check(g.Board)
	if v.Rejected() {
		g.Board.SetState(e, prev) // rollback, the move never happened
		return v, nil
	}

	g.undo = append(g.undo, Move{Edge: e, From: prev, To: to, By: by})
	g.redo = g.redo[:0]
	g.Moves++

	if v.Won() {
		g.Finished, g.Won = true, true
		return v, nil
	}
	g.checkStalemate()
	if !g.Finished {
		g.switchTurn()
	}
	return v, nil
}

// Hint returns the next logically forced move, if any.
func (g *Game) Hint() (solver.Deduction, bool) {
	if g.Finished {
		return solver.Deduction{}, false
	}
	d, ok := eng.NextHint(g.Board)
	if ok {
		g.Hints++
	}
	return d, ok
}

// AITurn computes the CPU's move and commits it through the same path
// as a human move. cpu.ErrNoLegalMove ends the game as a stalemate.
func (g *Game) AITurn() (board.EdgeID, rules.Verdict, error) {
	if g.Finished {
		return 0, rules.Verdict{}, ErrFinished
	}
	e, err := ranker.ChooseMove(g.Board)
	if err != nil {
		if errors.Is(err, cpu.ErrNoLegalMove) {
			g.Finished, g.Stalemate = true, true
		}
		return 0, rules.Verdict{}, err
	}
	v, err := g.applyMove(e, board.Line, TurnCPU)
	return e, v, err
}

// Undo reverts the last committed move. Reports false when there is
// nothing to undo.
func (g *Game) Undo() bool {
	if len(g.undo) == 0 || g.Finished {
		return false
	}
	m := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]
	g.Board.SetState(m.Edge, m.From)
	g.redo = append(g.redo, m)
	g.Moves--
	g.switchTurn()
	return true
}

// Redo re-applies the last undone move.
func (g *Game) Redo() bool {
	if len(g.redo) == 0 || g.Finished {
		return false
	}
	m := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]
	g.Board.SetState(m.Edge, m.To)
	g.undo = append(g.undo, m)
	g.Moves++
	g.switchTurn()
	return true
}

// checkStalemate ends the game when no legal Line placement remains
// and no deduction can make progress either.
func (g *Game) checkStalemate() {
	if _, err := ranker.ChooseMove(g.Board); err == nil {
		return
	}
	if _, ok := eng.NextHint(g.Board); ok {
		return
	}
	g.Finished, g.Stalemate = true, true
}

// switchTurn flips the active player in vs_cpu mode.
func (g *Game) switchTurn() {
	if g.Mode != ModeVsCPU {
		return
	}
	if g.Turn == TurnHuman {
		g.Turn = TurnCPU
	} else {
		g.Turn = TurnHuman
	}
}

// State reports a coarse string representation of the session state.
func (g *Game) State() string {
	switch {
	case g.Won:
		return "won"
	case g.Stalemate:
		return "stalemate"
	case g.Finished:
		return "finished"
	}
	return "playing"
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
