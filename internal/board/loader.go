package board

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// LoadFromFile parses an ASCII board description.
//
// The first non-empty line may be a header "ROWS COLS [MINES]"; when
// its first token is not a decimal integer, dimensions are inferred
// from the remaining lines. Each following line is a board row, with
// cells either whitespace-separated or concatenated one rune each:
// '.'/space is unknown, '*'/'M'/'m' is a mine, and '0'-'8' is a
// revealed number populated directly (without recomputing it from
// mine positions). Short or extra rows are tolerated; missing cells
// default to unknown. An empty file yields a zero-dimension board.
//
// When the header declares MINES explicitly, that becomes the
// board's known total mine count; otherwise the total is left
// undeclared, since the visible '*' tokens may not be every mine on
// the field (cells still marked unknown could hide more).
func LoadFromFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return NewWithUnknownTotal(0, 0, nil), nil
	}

	header := strings.Fields(lines[0])
	var rows, cols, start, declaredMines int
	haveDeclaredMines := false
	if len(header) >= 2 {
		if r, err := strconv.Atoi(header[0]); err == nil {
			c, _ := strconv.Atoi(header[1])
			rows, cols, start = r, c, 1
			if len(header) >= 3 {
				if m, err := strconv.Atoi(header[2]); err == nil {
					declaredMines, haveDeclaredMines = m, true
				}
			}
		}
	}
	if start == 0 {
		rows = len(lines)
		for _, l := range lines {
			if n := len(cellTokens(l)); n > cols {
				cols = n
			}
		}
	}

	b := NewWithUnknownTotal(rows, cols, nil)
	b.minesPlaced = true

	bodyLines := lines[start:]
	for i, line := range bodyLines {
		if i >= rows {
			break
		}
		tokens := cellTokens(line)
		for j, tok := range tokens {
			if j >= cols {
				break
			}
			switch {
			case tok == "*" || tok == "M" || tok == "m":
				b.mines[Coordinate{i, j}] = true
			case len(tok) == 1 && tok[0] >= '0' && tok[0] <= '8':
				v, _ := strconv.Atoi(tok)
				b.tiles[i][j] = Tile(v)
				b.revealedCount++
			}
		}
	}
	if haveDeclaredMines {
		b.totalMines = &declaredMines
	}
	return b, nil
}

// cellTokens splits a board row into per-cell tokens, honoring
// whitespace-separated cells and falling back to one rune per cell
// when the line carries no spaces.
func cellTokens(line string) []string {
	fields := strings.Fields(line)
	if len(fields) > 1 {
		return fields
	}
	if len(fields) == 1 && len(fields[0]) == 1 {
		return fields
	}
	runes := []rune(line)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
