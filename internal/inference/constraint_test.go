package inference

import (
	"testing"

	"github.com/cliplay/msolve/internal/board"
)

func TestExtractConstraintsSkipsSatisfiedAndMineTiles(t *testing.T) {
	b := board.New(3, 3, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(0, 1) // value 1, adjacent to the single mine
	b.Reveal(1, 1)
	b.Reveal(0, 0) // the mine itself; (1,0) is still an unknown neighbor

	constraints := ExtractConstraints(b)
	for _, c := range constraints {
		if len(c.Unknown) == 0 {
			t.Errorf("constraint at %v has no unknown neighbors and should have been skipped", c.Center)
		}
		if c.Center == (board.Coordinate{Row: 0, Col: 0}) {
			t.Errorf("revealed mine tile at %v should not produce a constraint", c.Center)
		}
	}
}

func TestExtractConstraintsRequiredClampedByFlags(t *testing.T) {
	b := board.New(3, 3, []board.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	b.Flag(0, 0)
	b.Reveal(1, 1) // value 2, one flagged neighbor -> required should be 1

	constraints := ExtractConstraints(b)
	found := false
	for _, c := range constraints {
		if c.Center == (board.Coordinate{Row: 1, Col: 1}) {
			found = true
			if c.Required != 1 {
				t.Errorf("Required = %d, want 1", c.Required)
			}
		}
	}
	if !found {
		t.Fatal("expected a constraint centered at (1,1)")
	}
}
