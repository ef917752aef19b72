package inference

import "github.com/cliplay/msolve/internal/board"

// Component is a set of unknown cells that co-occur in at least one
// shared constraint - the unit the SAT engine and the Monte-Carlo
// sampler each reason over independently.
type Component map[board.Coordinate]bool

// BuildComponents groups the unknown cells of constraints by
// "appears together in a constraint" adjacency, not spatial adjacency,
// via a BFS flood over that adjacency graph.
func BuildComponents(constraints []Constraint) []Component {
	adjacency := make(map[board.Coordinate]map[board.Coordinate]bool)
	for _, c := range constraints {
		for _, a := range c.Unknown {
			if adjacency[a] == nil {
				adjacency[a] = make(map[board.Coordinate]bool)
			}
		}
		for i, a := range c.Unknown {
			for _, bCell := range c.Unknown[i+1:] {
				adjacency[a][bCell] = true
				adjacency[bCell][a] = true
			}
		}
	}

	visited := make(map[board.Coordinate]bool)
	var components []Component
	for cell := range adjacency {
		if visited[cell] {
			continue
		}
		block := Component{}
		queue := []board.Coordinate{cell}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if visited[current] {
				continue
			}
			visited[current] = true
			block[current] = true
			for neighbor := range adjacency[current] {
				if !visited[neighbor] {
					queue = append(queue, neighbor)
				}
			}
		}
		components = append(components, block)
	}
	return components
}

// constraintsForComponent returns the constraints overlapping comp,
// restricted to the cells they share with it.
func constraintsForComponent(comp Component, constraints []Constraint) []Constraint {
	var relevant []Constraint
	for _, c := range constraints {
		var overlap []board.Coordinate
		for _, cell := range c.Unknown {
			if comp[cell] {
				overlap = append(overlap, cell)
			}
		}
		if len(overlap) > 0 {
			relevant = append(relevant, Constraint{Center: c.Center, Unknown: overlap, Required: c.Required})
		}
	}
	return relevant
}

func componentCells(comp Component) []board.Coordinate {
	out := make([]board.Coordinate, 0, len(comp))
	for c := range comp {
		out = append(out, c)
	}
	return out
}
