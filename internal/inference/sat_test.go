package inference

import (
	"testing"

	"github.com/cliplay/msolve/internal/board"
)

func TestSATInferNoConstraintsReturnsNil(t *testing.T) {
	b := board.New(3, 3, nil)
	safe, mines := SATInfer(b)
	if safe != nil || mines != nil {
		t.Fatalf("safe=%v mines=%v, want nil,nil with no revealed tiles", safe, mines)
	}
}

func TestSATInferSingleNeighborIsMine(t *testing.T) {
	b := board.New(1, 2, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(0, 1)

	safe, mines := SATInfer(b)
	if len(safe) != 0 {
		t.Fatalf("safe = %v, want none", safe)
	}
	if !containsCoord(mines, board.Coordinate{Row: 0, Col: 0}) {
		t.Fatalf("expected (0,0) certified as mine, got %v", mines)
	}
}

func TestSATInferAgreesWithSubsetCase(t *testing.T) {
	// Same layout as the CSP subset test: SAT enumeration should reach
	// the same conclusion (A and C safe) by brute force instead of
	// the pairwise-subset shortcut.
	b := board.New(2, 3, []board.Coordinate{{Row: 1, Col: 1}})
	b.Reveal(0, 0)
	b.Reveal(0, 1)
	b.Reveal(0, 2)

	a := board.Coordinate{Row: 1, Col: 0}
	c := board.Coordinate{Row: 1, Col: 2}

	safe, _ := SATInfer(b)
	if !containsCoord(safe, a) || !containsCoord(safe, c) {
		t.Errorf("SAT safe = %v, want to include %v and %v", safe, a, c)
	}
}

func TestSolveComponentSkipsOversizedComponent(t *testing.T) {
	comp := Component{}
	for i := 0; i < MaxComponentSize+1; i++ {
		comp[board.Coordinate{Row: 0, Col: i}] = true
	}
	safe, mines := solveComponent(comp, nil)
	if len(safe) != 0 || len(mines) != 0 {
		t.Fatalf("expected no inference from an oversized component, got safe=%v mines=%v", safe, mines)
	}
}
