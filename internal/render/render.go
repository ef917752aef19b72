// Package render prints a static, non-interactive snapshot of a board
// and of the probability surface the inference layer computes over
// it. It never reads input or loops; cmd/msolve calls it once per
// solver iteration and writes the result straight to stdout.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cliplay/msolve/internal/board"
)

var (
	hiddenStyle  = lipgloss.NewStyle().Width(3).Foreground(lipgloss.Color("242"))
	flaggedStyle = lipgloss.NewStyle().Width(3).Foreground(lipgloss.Color("#FF0000")).Bold(true)
	mineStyle    = lipgloss.NewStyle().Width(3).Foreground(lipgloss.Color("#FF0000")).Bold(true)
	blankStyle   = lipgloss.NewStyle().Width(3)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// numberColor is the classic Minesweeper digit palette.
func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

// BoardView renders the current board state as a styled grid: hidden
// cells as " . ", flagged cells as " F ", revealed numbers in the
// classic per-digit color, and a revealed mine as " * ".
func BoardView(b *board.Board) string {
	var rows []string
	for r := 0; r < b.Rows(); r++ {
		var cells []string
		for c := 0; c < b.Cols(); c++ {
			cells = append(cells, renderCell(b, r, c))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func renderCell(b *board.Board, r, c int) string {
	switch t := b.GetTile(r, c); t {
	case board.Unknown:
		return hiddenStyle.Render(" . ")
	case board.Flagged:
		return flaggedStyle.Render(" F ")
	case board.Mine:
		return mineStyle.Render(" * ")
	case 0:
		return blankStyle.Render("   ")
	default:
		style := lipgloss.NewStyle().Width(3).Foreground(numberColor(int(t)))
		return style.Render(fmt.Sprintf(" %d ", t))
	}
}

// safeColor and mineColor anchor the heatmap's two-color ramp.
var (
	safeColor = colorful.Color{R: 0.0, G: 0.64, B: 0.13} // #00A321, a green brighter than numberColor(2)'s #008200
	mineColor = colorful.Color{R: 1.0, G: 0.0, B: 0.0}    // matches mineStyle's red
)

// heatColor interpolates from safeColor to mineColor by p in [0,1]
// using an HSV blend, which go-colorful recommends over a flat RGB mix
// for perceptually smoother ramps.
func heatColor(p float64) lipgloss.Color {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	blended := safeColor.BlendHsv(mineColor, p)
	return lipgloss.Color(blended.Hex())
}

// ProbabilityHeatmap renders the board with every unknown cell
// colored by its estimated mine probability: green near 0, red near
// 1, printed as a percentage. Revealed and flagged cells render the
// same as BoardView so the heatmap can be read alongside the board.
func ProbabilityHeatmap(b *board.Board, probabilities map[board.Coordinate]float64) string {
	var rows []string
	for r := 0; r < b.Rows(); r++ {
		var cells []string
		for c := 0; c < b.Cols(); c++ {
			coord := board.Coordinate{Row: r, Col: c}
			if !b.IsUnknown(r, c) {
				cells = append(cells, renderCell(b, r, c))
				continue
			}
			p, ok := probabilities[coord]
			if !ok {
				cells = append(cells, hiddenStyle.Render(" . "))
				continue
			}
			style := lipgloss.NewStyle().Width(5).Foreground(heatColor(p))
			cells = append(cells, style.Render(fmt.Sprintf(" %2.0f%%", p*100)))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

// Report stitches a titled board view, a probability heatmap, and a
// one-line legend into the block cmd/msolve prints once per
// iteration.
func Report(title string, b *board.Board, probabilities map[board.Coordinate]float64) string {
	sections := []string{
		titleStyle.Render(title),
		BoardView(b),
		"",
		legendStyle.Render("probabilities (green = safe, red = mine):"),
		ProbabilityHeatmap(b, probabilities),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
