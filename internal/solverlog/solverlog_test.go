package solverlog

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetInitializesLazily(t *testing.T) {
	defaultLogger = nil
	if Get() == nil {
		t.Fatal("expected Get() to lazily initialize a logger")
	}
}

func TestInitSelectsHandler(t *testing.T) {
	Init("debug", true)
	if !Get().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled after Init(\"debug\", true)")
	}
	if _, ok := Get().Handler().(*slog.JSONHandler); !ok {
		t.Errorf("handler = %T, want *slog.JSONHandler after Init(\"debug\", true)", Get().Handler())
	}
}
