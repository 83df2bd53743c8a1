package vx

import "testing"

func TestDispatchInitialized(t *testing.T) {
	if CurrentName() == "" {
		t.Error("CurrentName is empty; dispatch init did not run")
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth = %d, want >= 16", CurrentWidth())
	}
	if CurrentLevel().String() == "unknown" {
		t.Errorf("CurrentLevel = %d has no name", CurrentLevel())
	}
	if CurrentLevel().String() != CurrentName() {
		t.Errorf("level %q and name %q disagree", CurrentLevel().String(), CurrentName())
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()

	if got := MaxLanes[uint8](); got != width {
		t.Errorf("MaxLanes[uint8] = %d, want %d", got, width)
	}
	if got := MaxLanes[uint64](); got != width/8 {
		t.Errorf("MaxLanes[uint64] = %d, want %d", got, width/8)
	}
	if got := MaxLanes[float32](); got != width/4 {
		t.Errorf("MaxLanes[float32] = %d, want %d", got, width/4)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("val="+tt.val, func(t *testing.T) {
			t.Setenv("VECDIST_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
