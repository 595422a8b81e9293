package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/rules"
)

// solutionSet returns the generated loop as a set.
func solutionSet(g *Game) map[board.EdgeID]bool {
	in := make(map[board.EdgeID]bool, len(g.Puzzle.Solution))
	for _, e := range g.Puzzle.Solution {
		in[e] = true
	}
	return in
}

// playSolution commits the full solution through ApplyMove: first the
// empties, then the loop. Every intermediate verdict must be accepted.
func playSolution(t *testing.T, g *Game) {
	t.Helper()
	in := solutionSet(g)
	for i := 0; i < g.Board.NumEdges(); i++ {
		e := board.EdgeID(i)
		if in[e] {
			continue
		}
		v, err := g.ApplyMove(e, board.Empty)
		require.NoError(t, err)
		require.False(t, v.Rejected(), "empty on edge %d", e)
	}
	for _, e := range g.Puzzle.Solution {
		v, err := g.ApplyMove(e, board.Line)
		require.NoError(t, err)
		require.False(t, v.Rejected(), "line on edge %d", e)
	}
}

func TestNewDeterministicPerSeed(t *testing.T) {
	g1, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)
	g2, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	require.NotEqual(t, g1.ID, g2.ID, "session ids are always fresh")
	require.Equal(t, g1.Puzzle.Solution, g2.Puzzle.Solution)
	for _, c := range g1.Board.Cells() {
		require.Equal(t, g1.Board.Clue(c), g2.Board.Clue(c))
	}
}

func TestNewRandomSeed(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 0)
	require.NoError(t, err)
	require.NotZero(t, g.Seed, "seed 0 means pick one")
	require.Equal(t, "playing", g.State())
	require.Equal(t, TurnHuman, g.Turn)
}

func TestNewNormalizesMode(t *testing.T) {
	g, err := New(Mode("banana"), board.Easy, 7)
	require.NoError(t, err)
	require.Equal(t, ModeSolo, g.Mode)
}

func TestPlayThroughToWin(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	playSolution(t, g)

	require.True(t, g.Won)
	require.True(t, g.Finished)
	require.Equal(t, "won", g.State())
	require.Equal(t, g.Board.NumEdges(), g.Moves)

	_, err = g.ApplyMove(0, board.Empty)
	require.ErrorIs(t, err, ErrFinished)
	require.False(t, g.Undo(), "no undo after the game ended")
}

func TestRejectedMoveRollsBack(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	// Everything decided except one loop edge: marking it Empty
	// starves a bordering clue and must be rejected without a trace.
	in := solutionSet(g)
	var last board.EdgeID = -1
	for i := 0; i < g.Board.NumEdges(); i++ {
		e := board.EdgeID(i)
		if !in[e] {
			_, err := g.ApplyMove(e, board.Empty)
			require.NoError(t, err)
		}
	}
	for _, e := range g.Puzzle.Solution {
		if last < 0 {
			last = e
			continue
		}
		_, err := g.ApplyMove(e, board.Line)
		require.NoError(t, err)
	}

	moves := g.Moves
	v, err := g.ApplyMove(last, board.Empty)
	require.NoError(t, err)
	require.True(t, v.Rejected())
	require.Equal(t, board.Unknown, g.Board.State(last), "rejected move leaves the edge untouched")
	require.Equal(t, moves, g.Moves, "rejected move is not recorded")
	require.False(t, g.Finished)

	v, err = g.ApplyMove(last, board.Line)
	require.NoError(t, err)
	require.True(t, v.Won())
	require.True(t, g.Won)
}

func TestThirdLineAtDotRejected(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	// Find a loop dot with a spare non-loop incident edge: committing
	// its two loop edges and then the spare makes degree 3.
	in := solutionSet(g)
	for _, d := range g.Board.Dots() {
		incident := g.Board.IncidentEdges(d)
		var loopEdges, spare []board.EdgeID
		for _, e := range incident {
			if in[e] {
				loopEdges = append(loopEdges, e)
			} else {
				spare = append(spare, e)
			}
		}
		if len(loopEdges) != 2 || len(spare) == 0 {
			continue
		}

		for _, e := range loopEdges {
			v, err := g.ApplyMove(e, board.Line)
			require.NoError(t, err)
			require.False(t, v.Rejected())
		}
		moves := g.Moves
		v, err := g.ApplyMove(spare[0], board.Line)
		require.NoError(t, err)
		require.Equal(t, rules.InvalidDegree, v.Kind)
		require.Equal(t, d, *v.Dot)
		require.Equal(t, board.Unknown, g.Board.State(spare[0]), "rejected edge keeps its prior state")
		require.Equal(t, moves, g.Moves)
		return
	}
	t.Fatal("no loop dot with a spare incident edge")
}

func TestUndoRedo(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	in := solutionSet(g)
	var e board.EdgeID = -1
	for i := 0; i < g.Board.NumEdges(); i++ {
		if !in[board.EdgeID(i)] {
			e = board.EdgeID(i)
			break
		}
	}
	require.GreaterOrEqual(t, int(e), 0)

	_, err = g.ApplyMove(e, board.Empty)
	require.NoError(t, err)
	require.Equal(t, 1, g.Moves)

	require.True(t, g.Undo())
	require.Equal(t, board.Unknown, g.Board.State(e))
	require.Equal(t, 0, g.Moves)
	require.False(t, g.Undo(), "nothing left to undo")

	require.True(t, g.Redo())
	require.Equal(t, board.Empty, g.Board.State(e))
	require.Equal(t, 1, g.Moves)
	require.False(t, g.Redo(), "nothing left to redo")
}

func TestNewMoveClearsRedo(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	in := solutionSet(g)
	var picked []board.EdgeID
	for i := 0; i < g.Board.NumEdges() && len(picked) < 2; i++ {
		if !in[board.EdgeID(i)] {
			picked = append(picked, board.EdgeID(i))
		}
	}
	require.Len(t, picked, 2)

	_, err = g.ApplyMove(picked[0], board.Empty)
	require.NoError(t, err)
	require.True(t, g.Undo())
	_, err = g.ApplyMove(picked[1], board.Empty)
	require.NoError(t, err)
	require.False(t, g.Redo(), "a fresh move invalidates the redo stack")
}

func TestHintIsConsistentWithSolution(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	in := solutionSet(g)
	d, ok := g.Hint()
	if !ok {
		t.Skip("no forced move on the opening board for this seed")
	}
	require.Equal(t, 1, g.Hints)
	if in[d.Edge] {
		require.Equal(t, board.Line, d.State)
	} else {
		require.Equal(t, board.Empty, d.State)
	}
	v, err := g.ApplyMove(d.Edge, d.State)
	require.NoError(t, err)
	require.False(t, v.Rejected())
}

func TestVsCPUTurnGating(t *testing.T) {
	g, err := New(ModeVsCPU, board.Easy, 7)
	require.NoError(t, err)
	require.Equal(t, TurnHuman, g.Turn)

	// A solution edge is always a legal human move.
	e := g.Puzzle.Solution[0]
	v, err := g.ApplyMove(e, board.Line)
	require.NoError(t, err)
	require.False(t, v.Rejected())
	require.Equal(t, TurnCPU, g.Turn)

	_, err = g.ApplyMove(g.Puzzle.Solution[1], board.Line)
	require.ErrorIs(t, err, ErrNotYourTurn)

	moved, _, err := g.AITurn()
	require.NoError(t, err)
	require.Equal(t, board.Line, g.Board.State(moved))
	require.Equal(t, TurnHuman, g.Turn)

	_, _, err = g.AITurn()
	require.ErrorIs(t, err, ErrNotYourTurn, "cpu cannot move twice in a row")
}

func TestStateString(t *testing.T) {
	g, err := New(ModeSolo, board.Easy, 7)
	require.NoError(t, err)
	require.Equal(t, "playing", g.State())
	playSolution(t, g)
	require.Equal(t, "won", g.State())
}
