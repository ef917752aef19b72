package inference

import (
	"math"
	"math/rand"
	"sort"

	"github.com/cliplay/msolve/internal/board"
)

// DefaultSamples is the target number of feasible assignments sampled
// per component.
const DefaultSamples = 256

// ComputeProbabilities samples feasible 0/1 assignments per component
// and returns each cell's observed mine frequency. Oversized
// components (beyond MaxComponentSize) have their sample budget
// scaled down proportionally rather than being skipped outright.
func ComputeProbabilities(b *board.Board, samples int, rng *rand.Rand) map[board.Coordinate]float64 {
	if samples <= 0 {
		samples = DefaultSamples
	}
	constraints := ExtractConstraints(b)
	components := BuildComponents(constraints)

	probabilities := make(map[board.Coordinate]float64)
	for _, comp := range components {
		if len(comp) == 0 {
			continue
		}
		relevant := constraintsForComponent(comp, constraints)
		if len(relevant) == 0 {
			continue
		}
		componentSamples := samples
		if len(comp) > MaxComponentSize {
			scale := float64(MaxComponentSize) / float64(len(comp))
			componentSamples = int(math.Max(32, float64(samples)*scale))
		}
		probs := sampleComponent(componentCells(comp), relevant, componentSamples, rng)
		for cell, p := range probs {
			probabilities[cell] = p
		}
	}
	return probabilities
}

func sampleComponent(cells []board.Coordinate, constraints []Constraint, samples int, rng *rand.Rand) map[board.Coordinate]float64 {
	if len(cells) == 0 || len(constraints) == 0 {
		return nil
	}

	counts := make(map[board.Coordinate]int, len(cells))
	for _, c := range cells {
		counts[c] = 0
	}

	attempts := 0
	successes := 0
	maxAttempts := samples * 5
	for successes < samples && attempts < maxAttempts {
		assignment := randomAssignment(cells, constraints, rng)
		attempts++
		if assignment == nil {
			continue
		}
		successes++
		for cell, value := range assignment {
			counts[cell] += value
		}
	}
	if successes == 0 {
		return nil
	}

	out := make(map[board.Coordinate]float64, len(cells))
	for _, c := range cells {
		out[c] = float64(counts[c]) / float64(successes)
	}
	return out
}

// randomAssignment searches, via randomized DFS, for one feasible 0/1
// assignment of cells that satisfies every constraint. Cell order is
// randomized within degree order, and each cell tries its two values
// in a shuffled order, so repeated calls sample different feasible
// points rather than always finding the same one.
func randomAssignment(cells []board.Coordinate, constraints []Constraint, rng *rand.Rand) map[board.Coordinate]int {
	if len(cells) == 0 {
		return map[board.Coordinate]int{}
	}

	membership := make(map[board.Coordinate][]int)
	required := make([]int, len(constraints))
	unassigned := make([]int, len(constraints))
	for idx, c := range constraints {
		required[idx] = c.Required
		unassigned[idx] = len(c.Unknown)
		for _, cell := range c.Unknown {
			membership[cell] = append(membership[cell], idx)
		}
	}

	jitter := make(map[board.Coordinate]float64, len(cells))
	for _, c := range cells {
		jitter[c] = rng.Float64()
	}
	ordered := make([]board.Coordinate, len(cells))
	copy(ordered, cells)
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := len(membership[ordered[i]]), len(membership[ordered[j]])
		if di != dj {
			return di > dj
		}
		return jitter[ordered[i]] < jitter[ordered[j]]
	})

	assignment := make(map[board.Coordinate]int, len(ordered))

	var assign func(index int) bool
	assign = func(index int) bool {
		if index == len(ordered) {
			for _, r := range required {
				if r != 0 {
					return false
				}
			}
			return true
		}

		cell := ordered[index]
		participating := membership[cell]
		choices := [2]int{0, 1}
		if rng.Intn(2) == 1 {
			choices[0], choices[1] = choices[1], choices[0]
		}
		for _, value := range choices {
			assignment[cell] = value
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
			if feasible && assign(index+1) {
				return true
			}
			delete(assignment, cell)
			for _, ci := range touched {
				unassigned[ci]++
				if value == 1 {
					required[ci]++
				}
			}
		}
		return false
	}

	if assign(0) {
		return assignment
	}
	return nil
}

// MonteCarloChooseCell returns the unknown cell with the lowest
// sampled mine frequency, breaking ties by row then column, or false
// if no component produced any feasible assignment.
func MonteCarloChooseCell(b *board.Board, rng *rand.Rand) (board.Coordinate, bool) {
	probabilities := ComputeProbabilities(b, DefaultSamples, rng)
	if len(probabilities) == 0 {
		return board.Coordinate{}, false
	}

	minProb := math.Inf(1)
	for _, p := range probabilities {
		if p < minProb {
			minProb = p
		}
	}

	var best board.Coordinate
	found := false
	for cell, p := range probabilities {
		if math.Abs(p-minProb) >= 1e-6 {
			continue
		}
		if !found || cell.Row < best.Row || (cell.Row == best.Row && cell.Col < best.Col) {
			best = cell
			found = true
		}
	}
	return best, found
}
