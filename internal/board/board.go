// internal/board/board.go
//
// Graph model of a Slitherlink board.
// Responsibilities:
//   - Fixed grid topology for a size class: dots (vertices), edges
//     (segments between adjacent dots) and cells (faces with clues).
//   - Dense integer edge indexing with canonical (horizontal-first)
//     ordering, so edge state lives in a flat slice.
//   - Structural queries: incident edges of a dot, bordering edges of
//     a cell, line degree, per-cell line counts.
//
// Notes:
//   - This is a dumb structural layer. SetState performs no rule
//     validation; the rules and solver packages are layered on top and
//     tested against it independently.
//   - Mutation is in-place; Clone gives solver/cpu a scratch copy.

package board

// EdgeState is the tri-state of a single edge.
type EdgeState uint8

const (
	Unknown EdgeState = iota // untouched, may become Line or Empty
	Line                     // part of the player's loop
	Empty                    // marked as definitely not in the loop
)

// String reports the wire representation used by the HTTP layer.
func (s EdgeState) String() string {
	switch s {
	case Line:
		return "line"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Dot is a grid vertex. A board of N×N cells has (N+1)×(N+1) dots.
type Dot struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is a grid face bounded by four edges.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// EdgeID indexes an edge. Horizontal edges come first, row by row,
// then vertical edges. See HorizontalEdge / VerticalEdge.
type EdgeID int

// NoClue marks a cell without a numeric constraint.
const NoClue = -1

// Board owns all edge states and cell clues for one puzzle instance.
type Board struct {
	size   Size
	n      int // cells per side
	states []EdgeState
	clues  []int8 // per cell, NoClue when absent
}

// New constructs an empty board (all edges Unknown, no clues) for the
// given size class.
func New(size Size) *Board {
	n := size.Grid()
	b := &Board{
		size:   size,
		n:      n,
		states: make([]EdgeState, (n+1)*n+n*(n+1)),
		clues:  make([]int8, n*n),
	}
	for i := range b.clues {
		b.clues[i] = NoClue
	}
	return b
}

// Size returns the board's size class.
func (b *Board) Size() Size { return b.size }

// Grid returns the number of cells per side.
func (b *Board) Grid() int { return b.n }

// NumEdges returns the total edge count.
func (b *Board) NumEdges() int { return len(b.states) }

// numHorizontal is the count of horizontal edges; vertical EdgeIDs
// start right after them.
func (b *Board) numHorizontal() int { return (b.n + 1) * b.n }

// HorizontalEdge returns the edge between dots (r,c) and (r,c+1).
// Valid for r in [0,n], c in [0,n).
func (b *Board) HorizontalEdge(r, c int) EdgeID {
	return EdgeID(r*b.n + c)
}

// VerticalEdge returns the edge between dots (r,c) and (r+1,c).
// Valid for r in [0,n), c in [0,n].
func (b *Board) VerticalEdge(r, c int) EdgeID {
	return EdgeID(b.numHorizontal() + r*(b.n+1) + c)
}

// Endpoints returns the two dots an edge connects, in canonical order
// (top/left endpoint first).
func (b *Board) Endpoints(e EdgeID) (Dot, Dot) {
	h := b.numHorizontal()
	if int(e) < h {
		r, c := int(e)/b.n, int(e)%b.n
		return Dot{r, c}, Dot{r, c + 1}
	}
	v := int(e) - h
	r, c := v/(b.n+1), v%(b.n+1)
	return Dot{r, c}, Dot{r + 1, c}
}

// EdgeBetween resolves two adjacent dots to their edge. ok is false
// when the dots are out of range or not unit-distance neighbors.
func (b *Board) EdgeBetween(u, v Dot) (EdgeID, bool) {
	// canonicalize: u is the top/left endpoint
	if v.Row < u.Row || (v.Row == u.Row && v.Col < u.Col) {
		u, v = v, u
	}
	if u.Row < 0 || u.Col < 0 || v.Row > b.n || v.Col > b.n {
		return 0, false
	}
	switch {
	case u.Row == v.Row && v.Col == u.Col+1:
		if u.Col >= b.n {
			return 0, false
		}
		return b.HorizontalEdge(u.Row, u.Col), true
	case u.Col == v.Col && v.Row == u.Row+1:
		if u.Row >= b.n {
			return 0, false
		}
		return b.VerticalEdge(u.Row, u.Col), true
	}
	return 0, false
}

// Dots enumerates every grid vertex in row-major order.
func (b *Board) Dots() []Dot {
	out := make([]Dot, 0, (b.n+1)*(b.n+1))
	for r := 0; r <= b.n; r++ {
		for c := 0; c <= b.n; c++ {
			out = append(out, Dot{r, c})
		}
	}
	return out
}

// Cells enumerates every grid face in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, b.n*b.n)
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			out = append(out, Cell{r, c})
		}
	}
	return out
}

// IncidentEdges returns the 2–4 edges touching a dot. Corner dots have
// two, border dots three, interior dots four.
func (b *Board) IncidentEdges(d Dot) []EdgeID {
	out := make([]EdgeID, 0, 4)
	if d.Col > 0 {
		out = append(out, b.HorizontalEdge(d.Row, d.Col-1)) // left
	}
	if d.Col < b.n {
		out = append(out, b.HorizontalEdge(d.Row, d.Col)) // right
	}
	if d.Row > 0 {
		out = append(out, b.VerticalEdge(d.Row-1, d.Col)) // up
	}
	if d.Row < b.n {
		out = append(out, b.VerticalEdge(d.Row, d.Col)) // down
	}
	return out
}

// CellEdges returns the four edges bordering a cell: top, bottom,
// left, right.
func (b *Board) CellEdges(c Cell) [4]EdgeID {
	return [4]EdgeID{
		b.HorizontalEdge(c.Row, c.Col),
		b.HorizontalEdge(c.Row+1, c.Col),
		b.VerticalEdge(c.Row, c.Col),
		b.VerticalEdge(c.Row, c.Col+1),
	}
}

// EdgeCells returns the one or two cells an edge borders. Border edges
// touch a single cell.
func (b *Board) EdgeCells(e EdgeID) []Cell {
	h := b.numHorizontal()
	out := make([]Cell, 0, 2)
	if int(e) < h {
		r, c := int(e)/b.n, int(e)%b.n
		if r > 0 {
			out = append(out, Cell{r - 1, c})
		}
		if r < b.n {
			out = append(out, Cell{r, c})
		}
		return out
	}
	v := int(e) - h
	r, c := v/(b.n+1), v%(b.n+1)
	if c > 0 {
		out = append(out, Cell{r, c - 1})
	}
	if c < b.n {
		out = append(out, Cell{r, c})
	}
	return out
}

// State reads an edge's current state.
func (b *Board) State(e EdgeID) EdgeState { return b.states[e] }

// SetState writes an edge's state. Caller-gated: no validation here.
func (b *Board) SetState(e EdgeID, s EdgeState) { b.states[e] = s }

// Degree counts the Line-edges incident to a dot.
func (b *Board) Degree(d Dot) int {
	return b.countIncident(d, Line)
}

// UnknownDegree counts the Unknown edges incident to a dot.
func (b *Board) UnknownDegree(d Dot) int {
	return b.countIncident(d, Unknown)
}

func (b *Board) countIncident(d Dot, s EdgeState) int {
	n := 0
	for _, e := range b.IncidentEdges(d) {
		if b.states[e] == s {
			n++
		}
	}
	return n
}

// LineCount counts the Line-edges bordering a cell.
func (b *Board) LineCount(c Cell) int {
	return b.countAround(c, Line)
}

// UnknownAround counts the Unknown edges bordering a cell.
func (b *Board) UnknownAround(c Cell) int {
	return b.countAround(c, Unknown)
}

func (b *Board) countAround(c Cell, s EdgeState) int {
	n := 0
	for _, e := range b.CellEdges(c) {
		if b.states[e] == s {
			n++
		}
	}
	return n
}

// Clue returns a cell's clue, or NoClue.
func (b *Board) Clue(c Cell) int {
	return int(b.clues[c.Row*b.n+c.Col])
}

// SetClue assigns a clue (0–3) to a cell. Used by the generator.
func (b *Board) SetClue(c Cell, v int) {
	b.clues[c.Row*b.n+c.Col] = int8(v)
}

// UnknownEdges counts Unknown edges across the whole board.
func (b *Board) UnknownEdges() int {
	n := 0
	for _, s := range b.states {
		if s == Unknown {
			n++
		}
	}
	return n
}

// LineEdges returns the IDs of all edges currently in state Line.
func (b *Board) LineEdges() []EdgeID {
	out := []EdgeID{}
	for i, s := range b.states {
		if s == Line {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

// Clone deep-copies edge states and clues. Topology is immutable and
// shared implicitly through the size class.
func (b *Board) Clone() *Board {
	nb := &Board{
		size:   b.size,
		n:      b.n,
		states: make([]EdgeState, len(b.states)),
		clues:  make([]int8, len(b.clues)),
	}
	copy(nb.states, b.states)
	copy(nb.clues, b.clues)
	return nb
}
