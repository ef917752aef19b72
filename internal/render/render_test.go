package render

import (
	"strings"
	"testing"

	"github.com/cliplay/msolve/internal/board"
)

func TestBoardViewShowsHiddenFlaggedAndNumbers(t *testing.T) {
	b := board.New(2, 2, []board.Coordinate{{Row: 0, Col: 0}})
	b.Reveal(1, 1)
	b.Flag(0, 0)

	out := BoardView(b)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "F") {
		t.Errorf("expected flagged cell marker in row 0, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "1") {
		t.Errorf("expected revealed count in row 1, got %q", lines[1])
	}
}

func TestBoardViewHiddenCellUsesDots(t *testing.T) {
	b := board.New(1, 1, nil)
	out := BoardView(b)
	if !strings.Contains(out, ".") {
		t.Errorf("expected a hidden-cell marker, got %q", out)
	}
}

func TestProbabilityHeatmapRendersPercentagesForUnknownCells(t *testing.T) {
	b := board.New(1, 2, []board.Coordinate{{Row: 0, Col: 1}})
	probs := map[board.Coordinate]float64{
		{Row: 0, Col: 0}: 0.0,
		{Row: 0, Col: 1}: 1.0,
	}
	out := ProbabilityHeatmap(b, probs)
	if !strings.Contains(out, "0%") {
		t.Errorf("expected a 0%% cell, got %q", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("expected a 100%% cell, got %q", out)
	}
}

func TestProbabilityHeatmapFallsBackToHiddenMarkerWhenUnscored(t *testing.T) {
	b := board.New(1, 1, nil)
	out := ProbabilityHeatmap(b, map[board.Coordinate]float64{})
	if !strings.Contains(out, ".") {
		t.Errorf("expected a hidden-cell marker for an unscored cell, got %q", out)
	}
}

func TestHeatColorClampsOutOfRangeProbabilities(t *testing.T) {
	below := heatColor(-0.5)
	floor := heatColor(0)
	if below != floor {
		t.Errorf("heatColor(-0.5) = %v, want clamp to heatColor(0) = %v", below, floor)
	}
	above := heatColor(1.5)
	ceil := heatColor(1)
	if above != ceil {
		t.Errorf("heatColor(1.5) = %v, want clamp to heatColor(1) = %v", above, ceil)
	}
}

func TestReportIncludesTitleAndBothViews(t *testing.T) {
	b := board.New(1, 1, nil)
	out := Report("iteration 1", b, map[board.Coordinate]float64{{Row: 0, Col: 0}: 0.2})
	if !strings.Contains(out, "iteration 1") {
		t.Errorf("expected title in report, got %q", out)
	}
	if !strings.Contains(out, "20%") {
		t.Errorf("expected heatmap percentage in report, got %q", out)
	}
}
