// internal/game/types.go
//
// Core type definitions for a Loopy game session.
// Defines:
//   - Mode: solo play vs. alternating turns against the CPU.
//   - Turn: whose move it is.
//   - Move: one committed edge transition, kept for undo/redo.
//   - Game: state for a single in-progress or finished session.

package game

import (
	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/generator"
)

// Mode selects how turns work.
// Possible values:
//   - "solo":   the human plays alone; hints and AI are advisory.
//   - "vs_cpu": human and CPU alternate; the CPU commits real moves.
type Mode string

const (
	ModeSolo  Mode = "solo"
	ModeVsCPU Mode = "vs_cpu"
)

// Turn identifies the active player in vs_cpu mode.
type Turn string

const (
	TurnHuman Turn = "human"
	TurnCPU   Turn = "cpu"
)

// Move records one committed edge transition for the undo/redo stacks.
type Move struct {
	Edge board.EdgeID    `json:"edge"`
	From board.EdgeState `json:"from"`
	To   board.EdgeState `json:"to"`
	By   Turn            `json:"by"`
}

// Game holds the state of a single Loopy session.
type Game struct {
	ID        string            // Unique session identifier (random hex string).
	Mode      Mode              // solo or vs_cpu.
	Size      board.Size        // Size class the puzzle was generated for.
	Seed      int64             // Generation seed, for replay.
	Puzzle    *generator.Puzzle // Clues + server-side solution.
	Board     *board.Board      // Live playing board, mutated move by move.
	Turn      Turn              // Active player (vs_cpu only).
	Moves     int               // Committed move count.
	Hints     int               // Hints requested so far.
	Finished  bool              // True once the game is over.
	Won       bool              // True when finished with the single loop.
	Stalemate bool              // True when finished with no legal move left.

	undo []Move
	redo []Move
}
