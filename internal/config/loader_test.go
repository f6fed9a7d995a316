package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no local configs, the embedded YAML applies.
	t.Setenv("HOME", t.TempDir()) // neutralize any real ~/.flaptty
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 360 || cfg.Board.Height != 640 {
		t.Errorf("default board = %dx%d, expected 360x640", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Physics.Impulse != -9 {
		t.Errorf("default impulse = %d, expected -9", cfg.Physics.Impulse)
	}
	if cfg.Timing.TickRate != 60 || cfg.Timing.SpawnEveryMs != 1500 {
		t.Errorf("default timing = %d/%dms, expected 60/1500ms", cfg.Timing.TickRate, cfg.Timing.SpawnEveryMs)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	custom := []byte("board:\n  width: 100\n  height: 200\nphysics:\n  gravity: 2\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 100 || cfg.Board.Height != 200 {
		t.Errorf("custom board = %dx%d, expected 100x200", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Physics.Gravity != 2 {
		t.Errorf("custom gravity = %d, expected 2", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestSimParams(t *testing.T) {
	p := Default().SimParams()

	if p.BoardW != 360 || p.BoardH != 640 {
		t.Errorf("params board = %dx%d, expected 360x640", p.BoardW, p.BoardH)
	}
	if p.GapHeight() != 160 {
		t.Errorf("gap height = %d, expected 160", p.GapHeight())
	}
	if p.AvatarX != 45 || p.AvatarW != 34 || p.AvatarH != 24 {
		t.Errorf("avatar params = %d/%dx%d, expected 45/34x24", p.AvatarX, p.AvatarW, p.AvatarH)
	}
}
