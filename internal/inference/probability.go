package inference

import (
	"math"

	"github.com/cliplay/msolve/internal/board"
)

// estimatedMineDensity is the prior used when a board's total mine
// count is unknown.
const estimatedMineDensity = 0.15

// ComputeLocalProbabilities derives a per-cell mine probability from
// each revealed tile's own constraint, combining overlapping
// constraints on the same cell with a running weighted average
// (order-dependent: see DESIGN.md's Open Question note on this).
func ComputeLocalProbabilities(b *board.Board) map[board.Coordinate]float64 {
	probabilities := make(map[board.Coordinate]float64)
	constraintCounts := make(map[board.Coordinate]int)

	for _, cell := range b.RevealedCells() {
		value := b.GetTile(cell.Row, cell.Col)
		if value < 0 || value == board.Mine {
			continue
		}

		neighbors := b.Neighbors(cell.Row, cell.Col)
		flagged := 0
		var unknown []board.Coordinate
		for _, n := range neighbors {
			if b.IsFlagged(n.Row, n.Col) {
				flagged++
			} else if b.IsUnknown(n.Row, n.Col) {
				unknown = append(unknown, n)
			}
		}
		if len(unknown) == 0 {
			continue
		}

		remaining := int(value) - flagged
		switch {
		case remaining == 0:
			for _, n := range unknown {
				probabilities[n] = 0.0
				constraintCounts[n]++
			}
		case remaining == len(unknown):
			for _, n := range unknown {
				probabilities[n] = 1.0
				constraintCounts[n]++
			}
		default:
			localProb := float64(remaining) / float64(len(unknown))
			for _, n := range unknown {
				if oldCount, ok := constraintCounts[n]; ok {
					oldProb := probabilities[n]
					probabilities[n] = (oldProb*float64(oldCount) + localProb) / float64(oldCount+1)
					constraintCounts[n] = oldCount + 1
				} else {
					probabilities[n] = localProb
					constraintCounts[n] = 1
				}
			}
		}
	}
	return probabilities
}

// ComputeGlobalProbability is the board-wide mine density used to
// seed cells with no local constraint: exact remaining/unknown when
// the total mine count is known, otherwise a 15% density prior.
func ComputeGlobalProbability(b *board.Board) float64 {
	unknown := b.UnknownCells()
	if len(unknown) == 0 {
		return 0.0
	}

	if remaining, ok := b.RemainingMines(); ok {
		return math.Min(1.0, float64(remaining)/float64(len(unknown)))
	}

	totalCells := b.Rows() * b.Cols()
	estimatedTotalMines := int(float64(totalCells) * estimatedMineDensity)
	estimatedRemaining := estimatedTotalMines - b.FlaggedCount()
	if estimatedRemaining < 0 {
		estimatedRemaining = 0
	}
	return math.Min(1.0, float64(estimatedRemaining)/float64(len(unknown)))
}

// ComputeAllProbabilities assigns every unknown cell a mine
// probability: its local constraint value where one exists, the
// global prior otherwise.
func ComputeAllProbabilities(b *board.Board) map[board.Coordinate]float64 {
	local := ComputeLocalProbabilities(b)
	global := ComputeGlobalProbability(b)

	probabilities := make(map[board.Coordinate]float64)
	for _, cell := range b.UnknownCells() {
		if p, ok := local[cell]; ok {
			probabilities[cell] = p
		} else {
			probabilities[cell] = global
		}
	}
	return probabilities
}

// ProbabilityChooseCell picks the unknown cell with the lowest mine
// probability, breaking ties by distance to the board center, and
// falling back to the first unknown cell when no probabilities could
// be computed at all.
func ProbabilityChooseCell(b *board.Board) (board.Coordinate, bool) {
	unknown := b.UnknownCells()
	if len(unknown) == 0 {
		return board.Coordinate{}, false
	}

	probabilities := ComputeAllProbabilities(b)
	if len(probabilities) == 0 {
		return unknown[0], true
	}

	minProb := math.Inf(1)
	for _, p := range probabilities {
		if p < minProb {
			minProb = p
		}
	}

	var safest []board.Coordinate
	for _, cell := range unknown {
		if probabilities[cell] == minProb {
			safest = append(safest, cell)
		}
	}
	if len(safest) == 1 {
		return safest[0], true
	}

	centerRow := float64(b.Rows()) / 2.0
	centerCol := float64(b.Cols()) / 2.0
	best := safest[0]
	bestDist := distanceToCenter(best, centerRow, centerCol)
	for _, cell := range safest[1:] {
		d := distanceToCenter(cell, centerRow, centerCol)
		if d < bestDist {
			best, bestDist = cell, d
		}
	}
	return best, true
}

func distanceToCenter(cell board.Coordinate, centerRow, centerCol float64) float64 {
	dr := float64(cell.Row) - centerRow
	dc := float64(cell.Col) - centerCol
	return math.Sqrt(dr*dr + dc*dc)
}
