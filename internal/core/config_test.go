package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig size = %dx%d, want 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Seed != 0 {
		t.Errorf("DefaultConfig seed = %d, want 0", cfg.Seed)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := RuntimeConfig{Seed: 42}
	if got := cfg.ResolveSeed(); got != 42 {
		t.Errorf("ResolveSeed() = %d, want 42", got)
	}

	cfg.Seed = 0
	if got := cfg.ResolveSeed(); got == 0 {
		t.Error("ResolveSeed() with zero seed should use the clock")
	}
}
