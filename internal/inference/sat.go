package inference

import (
	"sort"

	"github.com/cliplay/msolve/internal/board"
)

// Bounds on the bounded-enumeration SAT-style engine:
// components larger than MaxComponentSize are skipped outright, and a
// component's DFS search aborts once it has produced MaxEnumerations
// assignments or every cell's observed value set has collapsed to
// {0,1} (no further enumeration can narrow it further).
const (
	MaxComponentSize = 18
	MaxEnumerations  = 200_000
)

// SATInfer enumerates every satisfying 0/1 assignment of each
// constraint component (bounded by MaxComponentSize/MaxEnumerations)
// and reports the cells that are 1 (mine) or 0 (safe) in every
// satisfying assignment found.
func SATInfer(b *board.Board) (safe, mines []board.Coordinate) {
	constraints := ExtractConstraints(b)
	if len(constraints) == 0 {
		return nil, nil
	}

	components := BuildComponents(constraints)
	safeSet := make(map[board.Coordinate]bool)
	mineSet := make(map[board.Coordinate]bool)

	for _, comp := range components {
		compSafe, compMines := solveComponent(comp, constraints)
		for cell := range compSafe {
			safeSet[cell] = true
		}
		for cell := range compMines {
			mineSet[cell] = true
		}
	}

	return setToSlice(safeSet), setToSlice(mineSet)
}

func solveComponent(comp Component, constraints []Constraint) (safe, mines map[board.Coordinate]bool) {
	safe = make(map[board.Coordinate]bool)
	mines = make(map[board.Coordinate]bool)
	if len(comp) == 0 || len(comp) > MaxComponentSize {
		return safe, mines
	}

	relevant := constraintsForComponent(comp, constraints)
	if len(relevant) == 0 {
		return safe, mines
	}

	cells := componentCells(comp)
	membership := make(map[board.Coordinate][]int)
	required := make([]int, len(relevant))
	unassigned := make([]int, len(relevant))
	for idx, c := range relevant {
		required[idx] = clamp(c.Required, len(c.Unknown))
		unassigned[idx] = len(c.Unknown)
		for _, cell := range c.Unknown {
			membership[cell] = append(membership[cell], idx)
		}
	}

	ordered := make([]board.Coordinate, len(cells))
	copy(ordered, cells)
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := len(membership[ordered[i]]), len(membership[ordered[j]])
		if di != dj {
			return di > dj
		}
		if ordered[i].Row != ordered[j].Row {
			return ordered[i].Row < ordered[j].Row
		}
		return ordered[i].Col < ordered[j].Col
	})

	cellValues := make([]map[int]bool, len(ordered))
	for i := range cellValues {
		cellValues[i] = make(map[int]bool, 2)
	}
	current := make([]int, len(ordered))
	assignmentCount := 0
	abort := false

	var dfs func(index int)
	dfs = func(index int) {
		if abort {
			return
		}
		if index == len(ordered) {
			assignmentCount++
			for i, v := range current {
				cellValues[i][v] = true
			}
			if assignmentCount >= MaxEnumerations || allCollapsed(cellValues) {
				abort = true
			}
			return
		}

		cell := ordered[index]
		participating := membership[cell]
		for _, value := range [2]int{0, 1} {
			current[index] = value
			feasible := true
			var touched []int
			for _, ci := range participating {
				unassigned[ci]--
				if value == 1 {
					required[ci]--
				}
				touched = append(touched, ci)
				if required[ci] < 0 || required[ci] > unassigned[ci] {
					feasible = false
					break
				}
			}
			if feasible {
				dfs(index + 1)
			}
			for _, ci := range touched {
				unassigned[ci]++
				if value == 1 {
					required[ci]++
				}
			}
			if abort {
				return
			}
		}
		current[index] = 0
	}
	dfs(0)

	if assignmentCount == 0 {
		return safe, mines
	}

	for i, cell := range ordered {
		values := cellValues[i]
		if len(values) == 1 {
			if values[1] {
				mines[cell] = true
			} else {
				safe[cell] = true
			}
		}
	}
	return safe, mines
}

func clamp(value, max int) int {
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}

func allCollapsed(cellValues []map[int]bool) bool {
	for _, v := range cellValues {
		if len(v) != 2 {
			return false
		}
	}
	return true
}
