// Package board models the Minesweeper grid the solver reasons about:
// tile state, mine placement (including lazy, first-click-safe
// placement), and the mutators the inference layers and the strategy
// coordinator drive.
package board

import (
	"errors"
	"math/rand"
)

// Tile classifies a single grid position. Unknown and Flagged are
// sentinels; any value in [0,8] is a revealed mine count and Mine (9)
// marks a revealed bomb that ended the game.
type Tile int8

const (
	Unknown Tile = -1
	Flagged Tile = -2
	Mine    Tile = 9
)

// ErrMineDensityInfeasible is raised when deferred mine placement has
// fewer candidate cells than mines to place, even after relaxing the
// first-click safe zone down to the clicked cell alone.
var ErrMineDensityInfeasible = errors.New("board: not enough cells to place mines while respecting first-click safety")

// Coordinate identifies a grid cell, row-major.
type Coordinate struct {
	Row, Col int
}

// Board is a rectangular Minesweeper grid. It owns tile state, the
// set of mine locations, and the bookkeeping (revealed/flagged
// counts, game-over state).
type Board struct {
	rows, cols int
	tiles      [][]Tile
	mines      map[Coordinate]bool

	revealedCount int
	flaggedCount  int
	gameOver      bool
	hitMineAt     Coordinate
	hasHitMine    bool

	totalMines    *int
	minesPlaced   bool
	firstRevealed bool

	// firstClickSafe gates relocateFirstClickMines: only a board built
	// by NewDeferred (a freshly generated game) relocates a mine out
	// from under the first reveal. Explicitly-placed boards (New,
	// NewWithUnknownTotal, and anything loaded from a file) keep
	// whatever mines they were given, even if the first reveal hits
	// one - the caller specified that layout on purpose.
	firstClickSafe bool

	rng *rand.Rand
}

// New creates a board with mines already placed at the given
// coordinates, for boards whose full mine layout is known up front
// (tests in particular); LoadFromFile uses NewWithUnknownTotal.
// The first reveal never relocates these mines; see firstClickSafe.
func New(rows, cols int, mines []Coordinate) *Board {
	total := len(mines)
	b := newEmpty(rows, cols, &total)
	b.mines = make(map[Coordinate]bool, len(mines))
	for _, m := range mines {
		b.mines[m] = true
	}
	b.minesPlaced = true
	return b
}

// NewWithUnknownTotal is like New but leaves the mine total
// undeclared, the way a board reconstructed from a partial file
// without a header mine count would be: RemainingMines and the
// probability module's global fallback then fall back to a density
// prior instead of an exact count.
func NewWithUnknownTotal(rows, cols int, mines []Coordinate) *Board {
	b := newEmpty(rows, cols, nil)
	b.mines = make(map[Coordinate]bool, len(mines))
	for _, m := range mines {
		b.mines[m] = true
	}
	b.minesPlaced = true
	return b
}

// NewDeferred creates a board that places totalMines mines lazily, on
// the first Reveal, honoring first-click safety.
func NewDeferred(rows, cols, totalMines int, seed int64) *Board {
	tm := totalMines
	b := newEmpty(rows, cols, &tm)
	b.mines = make(map[Coordinate]bool)
	b.minesPlaced = false
	b.firstClickSafe = true
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

func newEmpty(rows, cols int, totalMines *int) *Board {
	tiles := make([][]Tile, rows)
	for r := range tiles {
		tiles[r] = make([]Tile, cols)
		for c := range tiles[r] {
			tiles[r][c] = Unknown
		}
	}
	return &Board{
		rows:       rows,
		cols:       cols,
		tiles:      tiles,
		totalMines: totalMines,
		rng:        rand.New(rand.NewSource(1)),
	}
}

// Rows and Cols report the grid dimensions.
func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// Neighbors returns the up-to-8 in-bounds coordinates adjacent to
// (r,c), diagonals included.
func (b *Board) Neighbors(r, c int) []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if b.inBounds(nr, nc) {
				out = append(out, Coordinate{nr, nc})
			}
		}
	}
	return out
}

// GameOver reports whether a mine has been uncovered.
func (b *Board) GameOver() bool { return b.gameOver }

// HitMineAt returns the coordinate of the uncovered mine and whether
// one has in fact been hit.
func (b *Board) HitMineAt() (Coordinate, bool) { return b.hitMineAt, b.hasHitMine }

// GetTile returns the tile state at (r,c), or Unknown if out of
// bounds.
func (b *Board) GetTile(r, c int) Tile {
	if !b.inBounds(r, c) {
		return Unknown
	}
	return b.tiles[r][c]
}

func (b *Board) IsRevealed(r, c int) bool {
	t := b.GetTile(r, c)
	return t != Unknown && t != Flagged
}

func (b *Board) IsFlagged(r, c int) bool { return b.GetTile(r, c) == Flagged }
func (b *Board) IsUnknown(r, c int) bool { return b.GetTile(r, c) == Unknown }

// RevealedCells returns every revealed coordinate (including a mine
// hit, if any).
func (b *Board) RevealedCells() []Coordinate {
	var out []Coordinate
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.IsRevealed(r, c) {
				out = append(out, Coordinate{r, c})
			}
		}
	}
	return out
}

// UnknownCells returns every unrevealed, unflagged coordinate.
func (b *Board) UnknownCells() []Coordinate {
	var out []Coordinate
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.IsUnknown(r, c) {
				out = append(out, Coordinate{r, c})
			}
		}
	}
	return out
}

func (b *Board) FlaggedCount() int { return b.flaggedCount }

// TotalMines returns the declared mine count, if known.
func (b *Board) TotalMines() (int, bool) {
	if b.totalMines == nil {
		return 0, false
	}
	return *b.totalMines, true
}

// RemainingMines returns max(0, total-flagged) when the total mine
// count is known.
func (b *Board) RemainingMines() (int, bool) {
	total, ok := b.TotalMines()
	if !ok {
		return 0, false
	}
	remaining := total - b.flaggedCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// IsFinished reports whether every non-mine cell has been revealed
// and the game did not end on a mine.
func (b *Board) IsFinished() bool {
	return !b.gameOver && b.revealedCount+len(b.mines) == b.rows*b.cols
}

// Reveal uncovers (r,c). It returns false without effect when the
// coordinate is out of bounds or not Unknown. On the very first
// reveal of a deferred board, mines are placed now, excluding the
// safe zone around (r,c). If the first reveal would still hit a mine
// and the board is first-click-safe (NewDeferred only), that mine is
// relocated out of the safe zone first; explicitly-placed boards keep
// their given layout even on a first-reveal mine hit.
func (b *Board) Reveal(r, c int) (bool, error) {
	if !b.inBounds(r, c) {
		return false, nil
	}
	if b.tiles[r][c] != Unknown {
		return false, nil
	}

	if !b.minesPlaced {
		if err := b.placeMinesDeferred(r, c); err != nil {
			return false, err
		}
	}

	first := !b.firstRevealed
	if first && b.firstClickSafe && b.mines[Coordinate{r, c}] {
		b.relocateFirstClickMines(r, c)
	}

	if b.mines[Coordinate{r, c}] {
		b.tiles[r][c] = Mine
		b.revealedCount++
		b.gameOver = true
		b.hitMineAt = Coordinate{r, c}
		b.hasHitMine = true
		b.firstRevealed = true
		return true, nil
	}

	b.tiles[r][c] = Tile(b.countAdjacentMines(r, c))
	b.revealedCount++
	b.firstRevealed = true
	return true, nil
}

// Flag marks an Unknown tile as Flagged. Returns false if the tile
// was not Unknown.
func (b *Board) Flag(r, c int) bool {
	if !b.inBounds(r, c) || b.tiles[r][c] != Unknown {
		return false
	}
	b.tiles[r][c] = Flagged
	b.flaggedCount++
	return true
}

// Unflag reverts a Flagged tile to Unknown. Returns false if the tile
// was not Flagged.
func (b *Board) Unflag(r, c int) bool {
	if !b.inBounds(r, c) || b.tiles[r][c] != Flagged {
		return false
	}
	b.tiles[r][c] = Unknown
	b.flaggedCount--
	return true
}

func (b *Board) countAdjacentMines(r, c int) int {
	count := 0
	for _, n := range b.Neighbors(r, c) {
		if b.mines[n] {
			count++
		}
	}
	return count
}

func (b *Board) safeZone(r, c int) map[Coordinate]bool {
	zone := map[Coordinate]bool{{r, c}: true}
	for _, n := range b.Neighbors(r, c) {
		zone[n] = true
	}
	return zone
}

// placeMinesDeferred samples totalMines cells without replacement
// from all cells outside the safe zone around the first click. If
// density forces it, the safe zone is relaxed to just the clicked
// cell; if that still is not enough room, placement fails.
func (b *Board) placeMinesDeferred(r, c int) error {
	total, ok := b.TotalMines()
	if !ok {
		return ErrMineDensityInfeasible
	}

	zone := b.safeZone(r, c)
	candidates := b.cellsOutside(zone)
	if len(candidates) < total {
		zone = map[Coordinate]bool{{r, c}: true}
		candidates = b.cellsOutside(zone)
	}
	if len(candidates) < total {
		return ErrMineDensityInfeasible
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	b.mines = make(map[Coordinate]bool, total)
	for _, cell := range candidates[:total] {
		b.mines[cell] = true
	}
	b.minesPlaced = true
	return nil
}

func (b *Board) cellsOutside(exclude map[Coordinate]bool) []Coordinate {
	out := make([]Coordinate, 0, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := Coordinate{r, c}
			if !exclude[cell] {
				out = append(out, cell)
			}
		}
	}
	return out
}

// relocateFirstClickMines moves any mine sitting in the safe zone
// around (r,c) out to a cell outside it, relaxing to just the
// clicked cell if density requires. If even the relaxed zone leaves
// too few mine-free cells to receive the displaced mines, the layout
// is left untouched.
func (b *Board) relocateFirstClickMines(r, c int) {
	zone := b.safeZone(r, c)
	inZone := make([]Coordinate, 0)
	for m := range b.mines {
		if zone[m] {
			inZone = append(inZone, m)
		}
	}
	if len(inZone) == 0 {
		return
	}

	candidates := b.cellsOutsideMines(zone)
	if len(candidates) < len(inZone) {
		zone = map[Coordinate]bool{{r, c}: true}
		inZone = inZone[:0]
		for m := range b.mines {
			if zone[m] {
				inZone = append(inZone, m)
			}
		}
		candidates = b.cellsOutsideMines(zone)
	}
	if len(candidates) < len(inZone) {
		return
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, m := range inZone {
		delete(b.mines, m)
	}
	for i := range inZone {
		b.mines[candidates[i]] = true
	}
}

func (b *Board) cellsOutsideMines(exclude map[Coordinate]bool) []Coordinate {
	out := make([]Coordinate, 0, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := Coordinate{r, c}
			if exclude[cell] || b.mines[cell] {
				continue
			}
			out = append(out, cell)
		}
	}
	return out
}
