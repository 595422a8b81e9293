package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/rules"
	"github.com/robalobadob/loopy/internal/solver"
)

func TestRandomLoopIsSimpleAndClosed(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for attempt := 0; attempt < 8; attempt++ {
		loop, ok := randomLoop(rng, board.Easy, minLoopLen(board.Easy))
		if !ok {
			continue
		}
		require.GreaterOrEqual(t, len(loop), minLoopLen(board.Easy))

		// No edge repeats, and every touched dot has degree exactly 2.
		b := board.New(board.Easy)
		seen := map[board.EdgeID]bool{}
		for _, e := range loop {
			require.False(t, seen[e], "edge %d repeated", e)
			seen[e] = true
			b.SetState(e, board.Line)
		}
		for _, d := range b.Dots() {
			deg := b.Degree(d)
			require.True(t, deg == 0 || deg == 2, "dot %v degree %d", d, deg)
		}
		return
	}
	t.Fatal("no walk closed in 8 attempts")
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := New(solver.New())
	p1, err := g.Generate(board.Easy, 42)
	require.NoError(t, err)
	p2, err := g.Generate(board.Easy, 42)
	require.NoError(t, err)

	require.Equal(t, p1.Solution, p2.Solution)
	for _, c := range p1.Board.Cells() {
		require.Equal(t, p1.Board.Clue(c), p2.Board.Clue(c), "cell %v", c)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	g := New(solver.New())
	p1, err := g.Generate(board.Easy, 1)
	require.NoError(t, err)
	p2, err := g.Generate(board.Easy, 2)
	require.NoError(t, err)
	require.NotEqual(t, p1.Solution, p2.Solution)
}

func TestGenerateAllSizes(t *testing.T) {
	g := New(solver.New())
	for _, size := range []board.Size{board.Easy, board.Medium, board.Hard} {
		p, err := g.Generate(size, 7)
		require.NoError(t, err, size.String())

		require.Equal(t, size, p.Size)
		require.Equal(t, size.Grid(), p.Board.Grid())
		require.GreaterOrEqual(t, len(p.Solution), minLoopLen(size))
		require.Equal(t, p.Board.NumEdges(), p.Board.UnknownEdges(), "fresh board is fully undecided")

		// Every cell is clued, and no clue exceeds 3: a simple loop of
		// length >= 8 can never ring a single cell.
		for _, c := range p.Board.Cells() {
			clue := p.Board.Clue(c)
			require.GreaterOrEqual(t, clue, 0, "cell %v", c)
			require.LessOrEqual(t, clue, 3, "cell %v", c)
		}

		require.True(t, rules.Check(p.SolutionBoard()).Won(), "solution must win on %s", size)
	}
}

func TestSolutionBoardLeavesPuzzleIntact(t *testing.T) {
	g := New(solver.New())
	p, err := g.Generate(board.Easy, 9)
	require.NoError(t, err)

	_ = p.SolutionBoard()
	require.Equal(t, p.Board.NumEdges(), p.Board.UnknownEdges())
}

func TestGeneratedPuzzleIsUnique(t *testing.T) {
	eng := solver.New()
	g := New(eng)
	p, err := g.Generate(board.Easy, 3)
	require.NoError(t, err)
	require.True(t, eng.HasUniqueSolution(p.Board))
}
