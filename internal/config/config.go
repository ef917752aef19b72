// Package config persists a default board/strategy shape for
// cmd/msolve as JSON, and resolves named strategy presets and
// difficulty presets by name.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cliplay/msolve/internal/expansion"
	"github.com/cliplay/msolve/internal/strategy"
)

// Config stores cmd/msolve's persisted defaults.
type Config struct {
	DefaultPreset string `json:"default_preset"`
	DefaultBoard  string `json:"default_board"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPreset: "full",
		DefaultBoard:  "",
	}
}

// Store manages settings persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads settings from the default location, then applies any
// MSOLVE_* overrides from a .env file in the working directory.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads settings from a specific path. If path is empty, uses
// ~/.msolve/config.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c := DefaultConfig()
			return &Store{Config: c}, err
		}
		path = filepath.Join(home, ".msolve", "config.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			s.applyEnvOverrides()
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	s.applyEnvOverrides()
	return s, nil
}

// applyEnvOverrides layers MSOLVE_DEFAULT_PRESET / MSOLVE_DEFAULT_BOARD
// from a .env file (if present) over the loaded config, the way
// rias-glitch-telegram-webapp's config package layers environment
// variables over defaults.
func (s *Store) applyEnvOverrides() {
	env, err := godotenv.Read()
	if err != nil {
		return
	}
	if v, ok := env["MSOLVE_DEFAULT_PRESET"]; ok && v != "" {
		s.Config.DefaultPreset = v
	}
	if v, ok := env["MSOLVE_DEFAULT_BOARD"]; ok && v != "" {
		s.Config.DefaultBoard = v
	}
	s.normalize()
}

// Save writes the settings to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *Store) normalize() {
	if _, err := ResolvePreset(s.Config.DefaultPreset); err != nil {
		s.Config.DefaultPreset = "full"
	}
}

// presets mirrors the original CLI's STRATEGY_PRESETS table.
var presets = map[string]strategy.Config{
	"full":       strategy.Default,
	"full-nomc":  {UseCSP: true, UseSAT: true, UseProbability: true, UseMonteCarlo: false, Expansion: expansion.BFS},
	"csp":        {UseCSP: true, UseSAT: false, UseProbability: false, UseMonteCarlo: false, Expansion: expansion.BFS},
	"csp-sat":    {UseCSP: true, UseSAT: true, UseProbability: false, UseMonteCarlo: false, Expansion: expansion.BFS},
	"csp-prob":   {UseCSP: true, UseSAT: false, UseProbability: true, UseMonteCarlo: false, Expansion: expansion.BFS},
	"prob-only":  {UseCSP: false, UseSAT: false, UseProbability: true, UseMonteCarlo: false, Expansion: expansion.BFS},
	"sat-only":   {UseCSP: false, UseSAT: true, UseProbability: false, UseMonteCarlo: false, Expansion: expansion.BFS},
}

// PresetNames lists every recognized base preset name, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolvePreset parses a preset spec of the form "<base>[:bfs|:dfs]"
// into a strategy.Config, mirroring the original CLI's
// build_strategy_configs.
func ResolvePreset(spec string) (strategy.Config, error) {
	base, suffix, hasSuffix := strings.Cut(spec, ":")

	cfg, ok := presets[base]
	if !ok {
		return strategy.Config{}, fmt.Errorf("config: unknown strategy preset %q (available: %s)", base, strings.Join(PresetNames(), ", "))
	}

	if hasSuffix {
		switch strings.ToLower(suffix) {
		case "bfs":
			cfg.Expansion = expansion.BFS
		case "dfs":
			cfg.Expansion = expansion.DFS
		default:
			return strategy.Config{}, fmt.Errorf("config: invalid expansion suffix %q, use bfs or dfs", suffix)
		}
	}
	return cfg, nil
}

// Difficulty is a named board-generation preset.
type Difficulty struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

var difficulties = map[string]Difficulty{
	"beginner":     {Name: "beginner", Rows: 9, Cols: 9, Mines: 10},
	"intermediate": {Name: "intermediate", Rows: 16, Cols: 16, Mines: 40},
	"expert":       {Name: "expert", Rows: 16, Cols: 30, Mines: 99},
}

// ResolveDifficulty looks up a named board-generation preset.
func ResolveDifficulty(name string) (Difficulty, error) {
	d, ok := difficulties[name]
	if !ok {
		return Difficulty{}, fmt.Errorf("config: unknown difficulty %q", name)
	}
	return d, nil
}
