// Package expansion implements the flood-fill that follows a safe
// reveal: once a zero tile is uncovered, its connected region of
// zeros, and the numbered frontier around it, are revealed
// automatically.
package expansion

import "github.com/cliplay/msolve/internal/board"

// Mode selects the traversal order used to walk the zero region. The
// two produce the same set of revealed cells; they differ only in
// which tiles are visited first.
type Mode string

const (
	BFS Mode = "bfs"
	DFS Mode = "dfs"
)

// Reveal expands from (r,c) using the given traversal mode. It is a
// no-op unless the game is still running and (r,c) is in bounds,
// unflagged, and already revealed as a zero.
func Reveal(b *board.Board, r, c int, mode Mode) []board.Coordinate {
	if mode == DFS {
		return dfsReveal(b, r, c)
	}
	return bfsReveal(b, r, c)
}

func startsZeroExpansion(b *board.Board, r, c int) ([]board.Coordinate, bool) {
	var revealed []board.Coordinate
	if b.GameOver() {
		return nil, false
	}
	if r < 0 || r >= b.Rows() || c < 0 || c >= b.Cols() {
		return nil, false
	}
	if b.IsFlagged(r, c) {
		return nil, false
	}
	if b.GetTile(r, c) != 0 {
		return nil, false
	}
	if b.IsUnknown(r, c) {
		if ok, _ := b.Reveal(r, c); ok {
			revealed = append(revealed, board.Coordinate{Row: r, Col: c})
		}
	}
	return revealed, true
}

// bfsReveal expands the zero region level by level via an explicit
// queue.
func bfsReveal(b *board.Board, r, c int) []board.Coordinate {
	revealed, ok := startsZeroExpansion(b, r, c)
	if !ok {
		return revealed
	}

	visited := map[board.Coordinate]bool{{Row: r, Col: c}: true}
	var queue []board.Coordinate
	for _, n := range b.Neighbors(r, c) {
		if b.IsUnknown(n.Row, n.Col) && !visited[n] {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		if b.GameOver() {
			break
		}
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if !b.IsUnknown(cur.Row, cur.Col) {
			continue
		}
		ok, _ := b.Reveal(cur.Row, cur.Col)
		if !ok {
			continue
		}
		if b.GameOver() {
			break
		}
		revealed = append(revealed, cur)

		value := b.GetTile(cur.Row, cur.Col)
		if value == board.Mine {
			continue
		}
		if value == 0 {
			for _, n := range b.Neighbors(cur.Row, cur.Col) {
				if b.IsUnknown(n.Row, n.Col) && !visited[n] {
					queue = append(queue, n)
				}
			}
		}
	}
	return revealed
}

// dfsReveal expands the zero region via an explicit stack.
func dfsReveal(b *board.Board, r, c int) []board.Coordinate {
	revealed, ok := startsZeroExpansion(b, r, c)
	if !ok {
		return revealed
	}

	visited := map[board.Coordinate]bool{{Row: r, Col: c}: true}
	stack := []board.Coordinate{{Row: r, Col: c}}

	for len(stack) > 0 && !b.GameOver() {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range b.Neighbors(cur.Row, cur.Col) {
			if visited[n] || b.IsFlagged(n.Row, n.Col) {
				continue
			}
			visited[n] = true
			if !b.IsUnknown(n.Row, n.Col) {
				continue
			}
			ok, _ := b.Reveal(n.Row, n.Col)
			if !ok {
				continue
			}
			revealed = append(revealed, n)
			if b.GetTile(n.Row, n.Col) == 0 {
				stack = append(stack, n)
			}
		}
	}
	return revealed
}
