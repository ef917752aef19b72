package inference

import (
	"math/rand"
	"testing"

	"github.com/cliplay/msolve/internal/board"
)

func TestComputeProbabilitiesSingleMineNeighbor(t *testing.T) {
	b := board.New(1, 2, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(0, 1)

	rng := rand.New(rand.NewSource(1))
	probs := ComputeProbabilities(b, 64, rng)
	p, ok := probs[board.Coordinate{Row: 0, Col: 0}]
	if !ok {
		t.Fatal("expected a sampled probability for the only unknown cell")
	}
	if p != 1.0 {
		t.Errorf("probability = %v, want 1.0 (every feasible assignment makes it a mine)", p)
	}
}

func TestSampleComponentPrefersFeasibleAssignmentsOnly(t *testing.T) {
	// A={certain mine}, B={certain safe}, modeled as two constraints
	// that share A: {A}=1 and {A,B}=1 (since A alone already
	// satisfies the second constraint, B must be 0 in every feasible
	// assignment).
	a := board.Coordinate{Row: 0, Col: 0}
	bCell := board.Coordinate{Row: 0, Col: 1}
	constraints := []Constraint{
		{Center: board.Coordinate{Row: 9, Col: 9}, Unknown: []board.Coordinate{a}, Required: 1},
		{Center: board.Coordinate{Row: 9, Col: 8}, Unknown: []board.Coordinate{a, bCell}, Required: 1},
	}
	rng := rand.New(rand.NewSource(3))
	probs := sampleComponent([]board.Coordinate{a, bCell}, constraints, 64, rng)
	if probs[a] != 1.0 {
		t.Errorf("probability[A] = %v, want 1.0", probs[a])
	}
	if probs[bCell] != 0.0 {
		t.Errorf("probability[B] = %v, want 0.0", probs[bCell])
	}
}

func TestMonteCarloChooseCellNoConstraintsReturnsFalse(t *testing.T) {
	b := board.New(3, 3, nil)
	rng := rand.New(rand.NewSource(1))
	if _, ok := MonteCarloChooseCell(b, rng); ok {
		t.Fatal("expected no chosen cell when there are no constraints at all")
	}
}
