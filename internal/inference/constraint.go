// Package inference implements the deterministic and probabilistic
// reasoning layers that drive cell selection: constraint extraction,
// component decomposition, a CSP propagator, a bounded SAT-style
// enumerator, a Monte-Carlo sampler, and a heuristic probability
// fallback.
package inference

import "github.com/cliplay/msolve/internal/board"

// Constraint states that exactly Required mines lie among Unknown,
// the unrevealed neighbors of Center.
type Constraint struct {
	Center   board.Coordinate
	Unknown  []board.Coordinate
	Required int
}

// ExtractConstraints builds one Constraint per revealed, non-zero,
// non-mine tile that still has unknown neighbors, clamping the
// required count to [0,len(Unknown)] to absorb any flagging
// inconsistency.
func ExtractConstraints(b *board.Board) []Constraint {
	var constraints []Constraint
	for _, cell := range b.RevealedCells() {
		value := b.GetTile(cell.Row, cell.Col)
		if value <= 0 || value == board.Mine {
			continue
		}

		neighbors := b.Neighbors(cell.Row, cell.Col)
		flagged := 0
		var unknown []board.Coordinate
		for _, n := range neighbors {
			switch {
			case b.IsFlagged(n.Row, n.Col):
				flagged++
			case b.IsUnknown(n.Row, n.Col):
				unknown = append(unknown, n)
			}
		}
		if len(unknown) == 0 {
			continue
		}

		required := int(value) - flagged
		if required < 0 {
			required = 0
		} else if required > len(unknown) {
			required = len(unknown)
		}

		constraints = append(constraints, Constraint{
			Center:   cell,
			Unknown:  unknown,
			Required: required,
		})
	}
	return constraints
}

func coordinateSet(cells []board.Coordinate) map[board.Coordinate]bool {
	set := make(map[board.Coordinate]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}
