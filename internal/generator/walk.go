// internal/generator/walk.go
//
// Self-avoiding random walk that produces a simple closed loop on the
// dot grid. The walk keeps an explicit stack of choice points (visited
// dot + shuffled untried neighbors) instead of recursing, so memory is
// bounded and the step budget is trivial to enforce.

package generator

import (
	"math/rand"

	"github.com/robalobadob/loopy/internal/board"
)

// walkFrame is one choice point: a dot on the current path and the
// shuffled neighbors not yet tried from it.
type walkFrame struct {
	dot     board.Dot
	options []board.Dot
	next    int
}

// randomLoop attempts one self-avoiding walk on the size class's dot
// grid and returns the loop's edges when the walk closes back on its
// start with length >= minLen. ok=false when the walk dead-ends
// completely or exceeds the step budget.
func randomLoop(rng *rand.Rand, size board.Size, minLen int) ([]board.EdgeID, bool) {
	b := board.New(size) // topology only; no state is ever set
	n := b.Grid()

	start := board.Dot{Row: rng.Intn(n + 1), Col: rng.Intn(n + 1)}
	visited := map[board.Dot]bool{start: true}
	stack := []*walkFrame{newFrame(rng, start, n)}

	for steps := 0; len(stack) > 0; steps++ {
		if steps > maxWalkSteps {
			return nil, false
		}
		fr := stack[len(stack)-1]
		if fr.next >= len(fr.options) {
			// dead end: unwind this choice point
			stack = stack[:len(stack)-1]
			delete(visited, fr.dot)
			continue
		}
		cand := fr.options[fr.next]
		fr.next++

		if cand == start && len(stack) >= minLen {
			return pathEdges(b, stack, start), true
		}
		if visited[cand] {
			continue
		}
		visited[cand] = true
		stack = append(stack, newFrame(rng, cand, n))
	}
	return nil, false
}

// newFrame builds a choice point with the dot's in-range neighbors in
// random order.
func newFrame(rng *rand.Rand, d board.Dot, n int) *walkFrame {
	opts := make([]board.Dot, 0, 4)
	for _, nb := range [4]board.Dot{
		{Row: d.Row - 1, Col: d.Col},
		{Row: d.Row + 1, Col: d.Col},
		{Row: d.Row, Col: d.Col - 1},
		{Row: d.Row, Col: d.Col + 1},
	} {
		if nb.Row >= 0 && nb.Row <= n && nb.Col >= 0 && nb.Col <= n {
			opts = append(opts, nb)
		}
	}
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return &walkFrame{dot: d, options: opts}
}

// pathEdges converts the walk stack plus the closing step into edge
// IDs.
func pathEdges(b *board.Board, stack []*walkFrame, start board.Dot) []board.EdgeID {
	out := make([]board.EdgeID, 0, len(stack))
	for i := 1; i < len(stack); i++ {
		e, _ := b.EdgeBetween(stack[i-1].dot, stack[i].dot)
		out = append(out, e)
	}
	closing, _ := b.EdgeBetween(stack[len(stack)-1].dot, start)
	out = append(out, closing)
	return out
}
