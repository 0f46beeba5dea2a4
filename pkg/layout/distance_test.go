package layout

import (
	"testing"
)

func TestDistanceForScoreMonotone(t *testing.T) {
	cfg := DefaultForceConfig()

	prev := cfg.DistanceForScore(0)
	for s := 1.0; s <= 100; s++ {
		d := cfg.DistanceForScore(s)
		if d > prev {
			t.Fatalf("Distance increased from score %f: %f > %f", s, d, prev)
		}
		prev = d
	}
}

func TestDistanceForScoreScenario(t *testing.T) {
	cfg := DefaultForceConfig()

	// the 80-compatibility pair must sit on a shorter spring than the 40 pair
	if cfg.DistanceForScore(80) >= cfg.DistanceForScore(40) {
		t.Errorf("DistanceForScore(80) = %f not below DistanceForScore(40) = %f",
			cfg.DistanceForScore(80), cfg.DistanceForScore(40))
	}
}

func TestDistanceForScoreBounds(t *testing.T) {
	cfg := DefaultForceConfig()

	if d := cfg.DistanceForScore(100); d != cfg.BaseDistance {
		t.Errorf("Perfect compatibility distance = %f, want base %f", d, cfg.BaseDistance)
	}
	if d := cfg.DistanceForScore(0); d != cfg.BaseDistance+cfg.Spread {
		t.Errorf("Zero compatibility distance = %f, want %f", d, cfg.BaseDistance+cfg.Spread)
	}

	// out-of-range scores are clamped, never extrapolated
	if cfg.DistanceForScore(250) != cfg.DistanceForScore(100) {
		t.Error("Score above 100 not clamped")
	}
	if cfg.DistanceForScore(-10) != cfg.DistanceForScore(0) {
		t.Error("Score below 0 not clamped")
	}
}

func TestDistanceForScoreAlwaysPositive(t *testing.T) {
	cfg := DefaultForceConfig()
	for s := -50.0; s <= 150; s += 5 {
		if d := cfg.DistanceForScore(s); d <= 0 {
			t.Fatalf("DistanceForScore(%f) = %f, want > 0", s, d)
		}
	}
}

func TestDistanceExponentExaggeratesMidrange(t *testing.T) {
	cfg := DefaultForceConfig()

	// with exponent > 1 a 10-point gap moves the target further at the low
	// end of the scale than at the high end
	lowGap := cfg.DistanceForScore(30) - cfg.DistanceForScore(40)
	highGap := cfg.DistanceForScore(80) - cfg.DistanceForScore(90)
	if lowGap <= highGap {
		t.Errorf("Expected low-score gap %f to exceed high-score gap %f", lowGap, highGap)
	}
}
