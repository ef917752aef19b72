// Package strategy coordinates the inference layers into the fixed
// priority chain that picks the solver's next action:
// CSP, then SAT, then Monte Carlo, then heuristic probability, then a
// last-resort guess.
package strategy

import (
	"math/rand"

	"github.com/cliplay/msolve/internal/board"
	"github.com/cliplay/msolve/internal/expansion"
	"github.com/cliplay/msolve/internal/inference"
)

// Action names the kind of move a Step produced.
type Action string

const (
	ActionRevealSafe Action = "reveal_safe"
	ActionFlagMines  Action = "flag_mines"
	ActionGuess      Action = "guess"
	ActionGameOver   Action = "game_over"
	ActionNone       Action = "none"
)

// Config toggles which inference modules participate in a Step, and
// selects the expansion traversal used after a safe reveal.
type Config struct {
	UseCSP         bool
	UseSAT         bool
	UseProbability bool
	UseMonteCarlo  bool
	Expansion      expansion.Mode
}

// Default matches the original solver's all-modules-on configuration.
var Default = Config{
	UseCSP:         true,
	UseSAT:         true,
	UseProbability: true,
	UseMonteCarlo:  true,
	Expansion:      expansion.BFS,
}

// Step decides the next action without mutating the board. It tries
// each enabled inference layer in priority order and stops at the
// first one that produces a result.
func Step(b *board.Board, cfg Config, rng *rand.Rand) (Action, []board.Coordinate) {
	if b.GameOver() {
		return ActionGameOver, nil
	}

	if cfg.UseCSP {
		safe, mines := inference.CSPInfer(b)
		if len(safe) > 0 {
			return ActionRevealSafe, safe
		}
		if len(mines) > 0 {
			return ActionFlagMines, mines
		}
	}

	if cfg.UseSAT {
		safe, mines := inference.SATInfer(b)
		if len(safe) > 0 {
			return ActionRevealSafe, safe
		}
		if len(mines) > 0 {
			return ActionFlagMines, mines
		}
	}

	if cfg.UseMonteCarlo {
		if cell, ok := inference.MonteCarloChooseCell(b, rng); ok {
			return ActionGuess, []board.Coordinate{cell}
		}
	}

	if cfg.UseProbability {
		if cell, ok := inference.ProbabilityChooseCell(b); ok {
			return ActionGuess, []board.Coordinate{cell}
		}
	}

	unknown := b.UnknownCells()
	if len(unknown) > 0 {
		return ActionGuess, []board.Coordinate{unknown[0]}
	}

	return ActionNone, nil
}

// SolveStep applies the action Step produced, expanding any zero
// reveals through the configured traversal. It returns whether any
// cell mutation actually took effect.
func SolveStep(b *board.Board, action Action, cells []board.Coordinate, cfg Config) (bool, error) {
	if b.GameOver() {
		return false, nil
	}

	success := false
	switch action {
	case ActionRevealSafe, ActionGuess:
		for _, cell := range cells {
			if b.GameOver() {
				break
			}
			ok, err := b.Reveal(cell.Row, cell.Col)
			if err != nil {
				return success, err
			}
			if !ok {
				continue
			}
			success = true
			if b.GameOver() {
				break
			}
			if b.GetTile(cell.Row, cell.Col) == 0 {
				expansion.Reveal(b, cell.Row, cell.Col, cfg.Expansion)
			}
		}
	case ActionFlagMines:
		for _, cell := range cells {
			if b.GameOver() {
				break
			}
			if b.Flag(cell.Row, cell.Col) {
				success = true
			}
		}
	}
	return success, nil
}
