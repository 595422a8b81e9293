// internal/rules/validator.go
//
// Loop validator for Slitherlink boards.
// Responsibilities:
//   - Degree scan: no dot may touch more than two Line-edges.
//   - Clue scan: a clued cell may never exceed its clue; falling short
//     is rejected only once no Unknown edges remain around the cell.
//   - Closure scan: once every edge is decided, the Line-edges must
//     form exactly one simple closed loop with all clues exact.
//
// The validator is a pure function of the board: calling Check twice
// on an unmutated board yields the same verdict. It runs after every
// player or CPU toggle; the game session rolls the edge back whenever
// the verdict is a rejection.

package rules

import "github.com/robalobadob/loopy/internal/board"

// Check validates the board in spec order: degrees, clues, progress,
// closure. See the Verdict kinds for the possible outcomes.
func Check(b *board.Board) Verdict {
	// 1. Degree scan. Three lines at a dot is a hard violation; four
	// means two chains cross there.
	for _, d := range b.Dots() {
		switch deg := b.Degree(d); {
		case deg == 3:
			dd := d
			return Verdict{Kind: InvalidDegree, Dot: &dd}
		case deg > 3:
			dd := d
			return Verdict{Kind: CrossingPaths, Dot: &dd}
		}
	}

	// 2. Clue scan: over-count, or deduced-impossible (the cell fell
	// short and has no Unknown edges left to make up the difference).
	// An under-count with Unknowns remaining is still in progress.
	for _, c := range b.Cells() {
		clue := b.Clue(c)
		if clue == board.NoClue {
			continue
		}
		lines := b.LineCount(c)
		if lines > clue || (b.UnknownAround(c) == 0 && lines < clue) {
			cc := c
			return Verdict{Kind: InvalidClue, Cell: &cc}
		}
	}

	// 3. A partial board cannot yet be judged a loop.
	if b.UnknownEdges() > 0 {
		return Verdict{Kind: InProgress}
	}

	// 4. Closure scan over the Line subgraph.
	return checkClosure(b)
}

// checkClosure walks the Line subgraph from one endpoint and verifies
// a single component in which every visited dot has degree exactly 2,
// then double-checks clue equality.
func checkClosure(b *board.Board) Verdict {
	lines := b.LineEdges()
	if len(lines) == 0 {
		return Verdict{Kind: SolvedNotSingleLoop}
	}

	start, _ := b.Endpoints(lines[0])
	visited := map[board.Dot]bool{start: true}
	queue := []board.Dot{start}
	reached := 0
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		if b.Degree(d) != 2 {
			return Verdict{Kind: SolvedNotSingleLoop}
		}
		for _, e := range b.IncidentEdges(d) {
			if b.State(e) != board.Line {
				continue
			}
			reached++
			u, v := b.Endpoints(e)
			next := u
			if next == d {
				next = v
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	// Every line edge is counted once from each endpoint.
	if reached != 2*len(lines) {
		return Verdict{Kind: SolvedNotSingleLoop}
	}

	// Clue equality. The clue scan above already rules this out, kept
	// as a defensive double-check on the win path.
	for _, c := range b.Cells() {
		if clue := b.Clue(c); clue != board.NoClue && b.LineCount(c) != clue {
			return Verdict{Kind: SolvedNotSingleLoop}
		}
	}
	return Verdict{Kind: SolvedSingleLoop}
}
