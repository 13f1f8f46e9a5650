package gamify

import (
	"math"
	"testing"
)

func TestXPForNextLevel(t *testing.T) {
	cfg := DefaultLevelConfig()

	if got := XPForNextLevel(cfg, 1); got != 100 {
		t.Errorf("XPForNextLevel(1) = %d, want 100", got)
	}
	if got := XPForNextLevel(cfg, 2); got != 241 {
		t.Errorf("XPForNextLevel(2) = %d, want 241", got)
	}
	if got := XPForNextLevel(cfg, cfg.MaxLevel); got != NoNextLevel {
		t.Errorf("XPForNextLevel(max) = %d, want NoNextLevel", got)
	}

	// Thresholds grow strictly with level.
	prev := 0
	for l := 1; l < cfg.MaxLevel; l++ {
		cur := XPForNextLevel(cfg, l)
		if cur <= prev {
			t.Fatalf("threshold for level %d (%d) not above level %d (%d)", l, cur, l-1, prev)
		}
		prev = cur
	}
}

func TestLevelFromTotalXP(t *testing.T) {
	cfg := DefaultLevelConfig()

	cases := []struct {
		totalXP   int
		wantLevel int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{100 + 240, 2},
		{100 + 241, 3},
	}
	for _, tc := range cases {
		info := LevelFromTotalXP(cfg, tc.totalXP)
		if info.Level != tc.wantLevel {
			t.Errorf("LevelFromTotalXP(%d).Level = %d, want %d", tc.totalXP, info.Level, tc.wantLevel)
		}
	}
}

func TestLevelFromTotalXPRoundTrip(t *testing.T) {
	cfg := DefaultLevelConfig()

	for _, totalXP := range []int{0, 50, 100, 500, 12345, 1 << 20} {
		info := LevelFromTotalXP(cfg, totalXP)
		if info.TotalXP != totalXP {
			t.Errorf("TotalXP = %d, want %d", info.TotalXP, totalXP)
		}
		if info.Level < 1 || info.Level > cfg.MaxLevel {
			t.Errorf("level %d out of range for totalXP %d", info.Level, totalXP)
		}
		if info.CurrentXP < 0 {
			t.Errorf("negative CurrentXP %d for totalXP %d", info.CurrentXP, totalXP)
		}
		if info.Level < cfg.MaxLevel && info.CurrentXP >= info.XPToNextLevel {
			t.Errorf("CurrentXP %d not below threshold %d at level %d", info.CurrentXP, info.XPToNextLevel, info.Level)
		}
	}
}

func TestAddXP(t *testing.T) {
	cfg := DefaultLevelConfig()

	info := NewLevelInfo(cfg)
	info, up, newLevel := AddXP(cfg, info, 50)
	if up || info.Level != 1 || info.CurrentXP != 50 {
		t.Errorf("after +50: leveledUp=%v level=%d currentXP=%d", up, info.Level, info.CurrentXP)
	}

	info, up, newLevel = AddXP(cfg, info, 60)
	if !up || newLevel != 2 {
		t.Errorf("after +60: leveledUp=%v newLevel=%d, want level up to 2", up, newLevel)
	}
	if info.CurrentXP != 10 {
		t.Errorf("CurrentXP = %d, want 10 carried into level 2", info.CurrentXP)
	}

	// Negative gains are ignored.
	before := info
	info, up, _ = AddXP(cfg, info, -100)
	if up || info != before {
		t.Errorf("negative gain changed state: %+v", info)
	}
}

func TestAddXPAtMaxLevel(t *testing.T) {
	cfg := DefaultLevelConfig()

	info := LevelFromTotalXP(cfg, math.MaxInt32)
	if info.Level != cfg.MaxLevel {
		t.Fatalf("level = %d, want max %d", info.Level, cfg.MaxLevel)
	}
	if info.XPToNextLevel != 0 {
		t.Errorf("XPToNextLevel = %d, want 0 at max", info.XPToNextLevel)
	}

	got, up, _ := AddXP(cfg, info, 1000)
	if up {
		t.Error("leveled up past max level")
	}
	if got.Level != cfg.MaxLevel {
		t.Errorf("level = %d after gain at max, want %d", got.Level, cfg.MaxLevel)
	}
}
