package inference

import "github.com/cliplay/msolve/internal/board"

// CSPInfer performs single-constraint and pairwise-subset propagation
// over the board's current constraints: a constraint
// with Required==0 marks its unknowns safe, one with Required==len
// marks them all mines, and whenever one constraint's unknowns are a
// subset of another's, the difference in required counts over the
// extra cells resolves them the same way.
func CSPInfer(b *board.Board) (safe, mines []board.Coordinate) {
	constraints := ExtractConstraints(b)

	safeSet := make(map[board.Coordinate]bool)
	mineSet := make(map[board.Coordinate]bool)

	for _, c := range constraints {
		if len(c.Unknown) == 0 {
			continue
		}
		if c.Required == 0 {
			for _, cell := range c.Unknown {
				safeSet[cell] = true
			}
		} else if c.Required == len(c.Unknown) {
			for _, cell := range c.Unknown {
				mineSet[cell] = true
			}
		}
	}

	subsetSafe, subsetMines := inferFromSubsetRelationships(constraints)
	for cell := range subsetSafe {
		safeSet[cell] = true
	}
	for cell := range subsetMines {
		mineSet[cell] = true
	}

	return setToSlice(safeSet), setToSlice(mineSet)
}

func inferFromSubsetRelationships(constraints []Constraint) (safe, mines map[board.Coordinate]bool) {
	safe = make(map[board.Coordinate]bool)
	mines = make(map[board.Coordinate]bool)

	var nonEmpty []Constraint
	for _, c := range constraints {
		if len(c.Unknown) > 0 {
			nonEmpty = append(nonEmpty, c)
		}
	}

	for i := 0; i < len(nonEmpty); i++ {
		for j := i + 1; j < len(nonEmpty); j++ {
			subsetImplications(nonEmpty[i], nonEmpty[j], safe, mines)
			subsetImplications(nonEmpty[j], nonEmpty[i], safe, mines)
		}
	}
	return safe, mines
}

// subsetImplications infers cells when smaller's unknown set is a
// strict subset of larger's: the extra cells are all safe if the gap
// between required counts is zero, all mines if it equals the number
// of extra cells.
func subsetImplications(smaller, larger Constraint, safe, mines map[board.Coordinate]bool) {
	smallSet := coordinateSet(smaller.Unknown)
	largeSet := coordinateSet(larger.Unknown)
	if len(smallSet) == 0 || len(largeSet) == 0 || sameSet(smallSet, largeSet) {
		return
	}
	if !isSubset(smallSet, largeSet) {
		return
	}

	var extra []board.Coordinate
	for cell := range largeSet {
		if !smallSet[cell] {
			extra = append(extra, cell)
		}
	}
	if len(extra) == 0 {
		return
	}

	requiredDiff := larger.Required - smaller.Required
	if requiredDiff < 0 || requiredDiff > len(extra) {
		return
	}
	if requiredDiff == 0 {
		for _, cell := range extra {
			safe[cell] = true
		}
	} else if requiredDiff == len(extra) {
		for _, cell := range extra {
			mines[cell] = true
		}
	}
}

func isSubset(small, large map[board.Coordinate]bool) bool {
	for cell := range small {
		if !large[cell] {
			return false
		}
	}
	return true
}

func sameSet(a, b map[board.Coordinate]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for cell := range a {
		if !b[cell] {
			return false
		}
	}
	return true
}

func setToSlice(set map[board.Coordinate]bool) []board.Coordinate {
	out := make([]board.Coordinate, 0, len(set))
	for cell := range set {
		out = append(out, cell)
	}
	return out
}
