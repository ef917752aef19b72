// Command msolve is a batch driver over the solver core: it loads or
// generates one board, runs strategy.Step/SolveStep to completion,
// prints a rendered report per iteration, and records the outcome to
// history. It is deliberately thin and non-interactive - no input
// loop, no TUI - the solver core in internal/board, internal/inference,
// internal/expansion and internal/strategy does the actual reasoning.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cliplay/msolve/internal/board"
	"github.com/cliplay/msolve/internal/config"
	"github.com/cliplay/msolve/internal/history"
	"github.com/cliplay/msolve/internal/inference"
	"github.com/cliplay/msolve/internal/render"
	"github.com/cliplay/msolve/internal/solverlog"
	"github.com/cliplay/msolve/internal/strategy"
)

func main() {
	var (
		boardPath  = flag.String("board", "", "path to a board file (see internal/board.LoadFromFile); if empty, a random board is generated")
		difficulty = flag.String("difficulty", "beginner", "board difficulty when -board is not set: beginner, intermediate, expert")
		preset     = flag.String("preset", "", "strategy preset name (full, full-nomc, csp, csp-sat, csp-prob, prob-only, sat-only, optional :bfs/:dfs suffix); defaults to the persisted config")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "random seed for board generation, guessing and sampling")
		maxIter    = flag.Int("max-iterations", 10000, "iteration cap before the run is declared stuck")
		quiet      = flag.Bool("quiet", false, "suppress the per-iteration board/heatmap report")
		logLevel   = flag.String("log-level", "info", "debug, info, warn, or error")
		logJSON    = flag.Bool("log-json", false, "emit logs as JSON instead of text")
		noHistory  = flag.Bool("no-history", false, "skip recording this run to the history store")
	)
	flag.Parse()

	solverlog.Init(*logLevel, *logJSON)

	cfgStore, err := config.Load()
	if err != nil {
		solverlog.Warn("failed to load config, using defaults", "error", err)
	}

	presetName := *preset
	if presetName == "" {
		presetName = cfgStore.Config.DefaultPreset
	}
	stratCfg, err := config.ResolvePreset(presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "msolve: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	b, boardKey, err := loadOrGenerateBoard(*boardPath, *difficulty, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "msolve: %v\n", err)
		os.Exit(1)
	}

	solverlog.Info("starting run", "board", boardKey, "preset", presetName, "rows", b.Rows(), "cols", b.Cols())

	start := time.Now()
	iterations := 0
	for iterations < *maxIter {
		action, cells := strategy.Step(b, stratCfg, rng)
		if action == strategy.ActionNone || action == strategy.ActionGameOver {
			break
		}

		changed, err := strategy.SolveStep(b, action, cells, stratCfg)
		if err != nil {
			solverlog.Error("solve step failed", "error", err, "iteration", iterations)
			break
		}
		iterations++

		if !*quiet {
			probs := inference.ComputeAllProbabilities(b)
			title := fmt.Sprintf("iteration %d: %s", iterations, action)
			fmt.Println(render.Report(title, b, probs))
			fmt.Println()
		}

		if b.GameOver() || b.IsFinished() || !changed {
			break
		}
	}
	duration := time.Since(start)

	result := runResult(b)
	fmt.Printf("result: %s  iterations: %d  revealed: %d  flagged: %d  unknown: %d  duration: %s\n",
		result, iterations, len(b.RevealedCells()), b.FlaggedCount(), len(b.UnknownCells()), duration)

	if !*noHistory {
		recordOutcome(boardKey, presetName, result, iterations, b, duration)
	}
}

func loadOrGenerateBoard(path, difficultyName string, seed int64) (*board.Board, string, error) {
	if path != "" {
		b, err := board.LoadFromFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("loading board %s: %w", path, err)
		}
		return b, path, nil
	}

	diff, err := config.ResolveDifficulty(difficultyName)
	if err != nil {
		return nil, "", err
	}
	b := board.NewDeferred(diff.Rows, diff.Cols, diff.Mines, seed)
	return b, fmt.Sprintf("random:%s", difficultyName), nil
}

func runResult(b *board.Board) string {
	switch {
	case b.GameOver():
		return "mine_hit"
	case b.IsFinished():
		return "solved"
	default:
		return "stuck"
	}
}

func recordOutcome(boardKey, presetName, result string, iterations int, b *board.Board, duration time.Duration) {
	h, err := history.Load()
	if err != nil {
		solverlog.Warn("failed to load history, starting fresh", "error", err)
	}
	h.Record(fmt.Sprintf("%s|%s", boardKey, presetName), history.Outcome{
		Result:     result,
		Iterations: iterations,
		Revealed:   len(b.RevealedCells()),
		Flagged:    b.FlaggedCount(),
		Unknown:    len(b.UnknownCells()),
		DurationMS: duration.Milliseconds(),
	})
	if err := h.Save(); err != nil {
		solverlog.Error("failed to save history", "error", err)
	}
}
