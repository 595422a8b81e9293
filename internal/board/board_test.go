package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeGrid(t *testing.T) {
	require.Equal(t, 4, Easy.Grid())
	require.Equal(t, 5, Medium.Grid())
	require.Equal(t, 7, Hard.Grid())
}

func TestParseSize(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Size
	}{
		{"", Easy},
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
	} {
		got, err := ParseSize(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseSize("gigantic")
	require.Error(t, err)
}

func TestNumEdges(t *testing.T) {
	// An n×n grid has (n+1)*n horizontal and n*(n+1) vertical edges.
	require.Equal(t, 40, New(Easy).NumEdges())
	require.Equal(t, 60, New(Medium).NumEdges())
	require.Equal(t, 112, New(Hard).NumEdges())
}

func TestEndpointsRoundTrip(t *testing.T) {
	b := New(Medium)
	for i := 0; i < b.NumEdges(); i++ {
		e := EdgeID(i)
		u, v := b.Endpoints(e)
		got, ok := b.EdgeBetween(u, v)
		require.True(t, ok, "edge %d endpoints %v %v", i, u, v)
		require.Equal(t, e, got)

		// swapped endpoints resolve to the same edge
		got, ok = b.EdgeBetween(v, u)
		require.True(t, ok)
		require.Equal(t, e, got)
	}
}

func TestEdgeBetweenRejectsNonNeighbors(t *testing.T) {
	b := New(Easy)
	_, ok := b.EdgeBetween(Dot{0, 0}, Dot{0, 2})
	require.False(t, ok, "distance-two dots share no edge")
	_, ok = b.EdgeBetween(Dot{0, 0}, Dot{1, 1})
	require.False(t, ok, "diagonal dots share no edge")
	_, ok = b.EdgeBetween(Dot{-1, 0}, Dot{0, 0})
	require.False(t, ok, "out-of-range dot")
}

func TestIncidentEdges(t *testing.T) {
	b := New(Easy)
	require.Len(t, b.IncidentEdges(Dot{0, 0}), 2, "corner dot")
	require.Len(t, b.IncidentEdges(Dot{0, 1}), 3, "border dot")
	require.Len(t, b.IncidentEdges(Dot{1, 1}), 4, "interior dot")
	require.Len(t, b.IncidentEdges(Dot{4, 4}), 2, "far corner dot")
}

func TestCellEdgesAndEdgeCellsAgree(t *testing.T) {
	b := New(Easy)
	for _, c := range b.Cells() {
		for _, e := range b.CellEdges(c) {
			require.Contains(t, b.EdgeCells(e), c, "cell %v edge %d", c, e)
		}
	}
	// border edges touch one cell, interior edges two
	require.Len(t, b.EdgeCells(b.HorizontalEdge(0, 0)), 1)
	require.Len(t, b.EdgeCells(b.HorizontalEdge(1, 1)), 2)
	require.Len(t, b.EdgeCells(b.VerticalEdge(0, 0)), 1)
	require.Len(t, b.EdgeCells(b.VerticalEdge(1, 2)), 2)
}

func TestCounting(t *testing.T) {
	b := New(Easy)
	d := Dot{1, 1}
	c := Cell{0, 0}

	require.Equal(t, 0, b.Degree(d))
	require.Equal(t, 4, b.UnknownDegree(d))
	require.Equal(t, 0, b.LineCount(c))
	require.Equal(t, 4, b.UnknownAround(c))

	b.SetState(b.HorizontalEdge(1, 0), Line)
	b.SetState(b.HorizontalEdge(1, 1), Line)
	b.SetState(b.VerticalEdge(0, 1), Empty)

	require.Equal(t, 2, b.Degree(d))
	require.Equal(t, 1, b.UnknownDegree(d))
	require.Equal(t, 1, b.LineCount(c), "bottom edge of (0,0) is a line")
	require.Equal(t, 2, b.UnknownAround(c))
	require.Equal(t, 2, len(b.LineEdges()))
	require.Equal(t, b.NumEdges()-3, b.UnknownEdges())
}

func TestClues(t *testing.T) {
	b := New(Easy)
	c := Cell{2, 3}
	require.Equal(t, NoClue, b.Clue(c))
	b.SetClue(c, 3)
	require.Equal(t, 3, b.Clue(c))
	require.Equal(t, NoClue, b.Clue(Cell{2, 2}), "neighbor untouched")
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(Easy)
	b.SetState(0, Line)
	b.SetClue(Cell{1, 1}, 2)

	nb := b.Clone()
	require.Equal(t, Line, nb.State(0))
	require.Equal(t, 2, nb.Clue(Cell{1, 1}))

	nb.SetState(0, Empty)
	nb.SetClue(Cell{1, 1}, 0)
	require.Equal(t, Line, b.State(0), "original state untouched")
	require.Equal(t, 2, b.Clue(Cell{1, 1}), "original clue untouched")
}

func TestEdgeStateString(t *testing.T) {
	require.Equal(t, "unknown", Unknown.String())
	require.Equal(t, "line", Line.String())
	require.Equal(t, "empty", Empty.String())
}
