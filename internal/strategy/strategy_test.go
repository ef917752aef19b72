package strategy

import (
	"math/rand"
	"testing"

	"github.com/cliplay/msolve/internal/board"
	"github.com/cliplay/msolve/internal/expansion"
)

func TestStepGameOver(t *testing.T) {
	b := board.New(1, 1, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(0, 0)

	action, cells := Step(b, Default, rand.New(rand.NewSource(1)))
	if action != ActionGameOver || cells != nil {
		t.Fatalf("Step() = %v,%v, want game_over,nil", action, cells)
	}
}

func TestStepPrioritizesCSPRevealSafeOverGuessing(t *testing.T) {
	// The only mine is flagged already: CSP resolves the rest of the
	// revealed tile's unknown neighbors as safe, which must win over
	// every later-priority module.
	b := board.New(3, 3, []board.Coordinate{{Row: 2, Col: 2}})
	b.Flag(2, 2)
	b.Reveal(1, 1)

	action, cells := Step(b, Default, rand.New(rand.NewSource(1)))
	if action != ActionRevealSafe {
		t.Fatalf("action = %v, want reveal_safe", action)
	}
	if len(cells) == 0 {
		t.Fatal("expected at least one safe cell")
	}
}

func TestStepFlagsMinesWhenCSPCertifiesThem(t *testing.T) {
	b := board.New(1, 2, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(0, 1)

	action, cells := Step(b, Default, rand.New(rand.NewSource(1)))
	if action != ActionFlagMines {
		t.Fatalf("action = %v, want flag_mines", action)
	}
	if len(cells) != 1 || cells[0] != (board.Coordinate{Row: 0, Col: 0}) {
		t.Fatalf("cells = %v, want [(0,0)]", cells)
	}
}

func TestStepFallsBackToGuessWithAllModulesDisabled(t *testing.T) {
	b := board.New(3, 3, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(1, 1)

	cfg := Config{Expansion: expansion.BFS} // every module toggle false
	action, cells := Step(b, cfg, rand.New(rand.NewSource(1)))
	if action != ActionGuess {
		t.Fatalf("action = %v, want guess", action)
	}
	if len(cells) != 1 {
		t.Fatalf("cells = %v, want exactly one fallback guess", cells)
	}
}

func TestStepNoneWhenNoCellsRemain(t *testing.T) {
	b := board.New(1, 1, nil)
	b.Reveal(0, 0)

	action, cells := Step(b, Default, rand.New(rand.NewSource(1)))
	if action != ActionNone || len(cells) != 0 {
		t.Fatalf("Step() = %v,%v, want none,[]", action, cells)
	}
}

func TestSolveStepRevealSafeExpandsZeros(t *testing.T) {
	b := board.New(5, 5, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(4, 4) // zero, far from the mine

	ok, err := SolveStep(b, ActionRevealSafe, []board.Coordinate{{Row: 4, Col: 3}}, Default)
	if err != nil {
		t.Fatalf("SolveStep returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected SolveStep to report success")
	}
	if !b.IsRevealed(3, 3) {
		t.Error("expected zero expansion to have revealed neighboring cells")
	}
}

func TestSolveStepFlagMines(t *testing.T) {
	b := board.New(1, 2, []board.Coordinate{{Row: 0, Col: 0}})
	ok, err := SolveStep(b, ActionFlagMines, []board.Coordinate{{Row: 0, Col: 0}}, Default)
	if err != nil {
		t.Fatalf("SolveStep returned error: %v", err)
	}
	if !ok || !b.IsFlagged(0, 0) {
		t.Fatal("expected (0,0) to be flagged")
	}
}

func TestSolveStepStopsAtGameOver(t *testing.T) {
	b := board.New(1, 2, []board.Coordinate{{Row: 0, Col: 0}})
	ok, err := SolveStep(b, ActionGuess, []board.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Default)
	if err != nil {
		t.Fatalf("SolveStep returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected the mine reveal itself to count as success")
	}
	if b.IsRevealed(0, 1) {
		t.Error("expected SolveStep to stop acting once the game ended on the mine")
	}
}
