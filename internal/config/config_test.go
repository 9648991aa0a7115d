package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chesscore.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
addr: "127.0.0.1:9000"
in_memory: true
log_badger: true
start_fen: "4k3/8/8/8/8/8/8/4K3 b"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Addr:      "127.0.0.1:9000",
		InMemory:  true,
		LogBadger: true,
		StartFEN:  "4k3/8/8/8/8/8/8/4K3 b",
	}
	if cfg != want {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "data_dir: /tmp/chesscore\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
	if cfg.DataDir != "/tmp/chesscore" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "addr: [", "yaml"},
		{"empty addr", "addr: \"\"\n", "addr"},
		{"storage conflict", "in_memory: true\ndata_dir: /tmp/x\n", "mutually exclusive"},
		{"bad fen", "start_fen: \"8/8/8\"\n", "start_fen"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error %q does not mention %q", err, tc.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateWrapsFENError(t *testing.T) {
	cfg := Default()
	cfg.StartFEN = "xyz"
	if err := cfg.Validate(); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("Expected ErrInvalidFEN, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.InMemory = true
	b, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), "in_memory: true") {
		t.Errorf("Unexpected YAML:\n%s", b)
	}

	got, err := Load(writeFile(t, string(b)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Round trip = %+v, want %+v", got, cfg)
	}
}
