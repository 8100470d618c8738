package orientation

import (
	"math"
	"slices"
	"testing"
)

func TestCompensateTilt(t *testing.T) {
	tests := []struct {
		name  string
		ideal float64
		slope float64
		want  float64
	}{
		{"flat ground", 35, 0, 35},
		{"rising ground", 35, 15, 20},
		{"falling ground", 35, -10, 45},
		{"slope exceeds ideal", 10, 20, 0},
		{"clamped to vertical", 85, -20, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompensateTilt(tt.ideal, tt.slope); got != tt.want {
				t.Errorf("CompensateTilt(%v, %v) = %v, want %v", tt.ideal, tt.slope, got, tt.want)
			}
		})
	}
}

func TestCompensateTiltZeroSlopeIsIdentity(t *testing.T) {
	for ideal := 0.0; ideal <= 90; ideal += 0.5 {
		if got := CompensateTilt(ideal, 0); got != ideal {
			t.Errorf("CompensateTilt(%v, 0) = %v", ideal, got)
		}
	}
}

func TestCompensateTiltRoundTrip(t *testing.T) {
	for _, slope := range []float64{-30, -5, 0, 12.5, 40} {
		for ideal := 0.0; ideal <= 90; ideal += 5 {
			panel := CompensateTilt(ideal, slope)
			if panel < 0 || panel > 90 {
				t.Fatalf("CompensateTilt(%v, %v) = %v outside [0, 90]", ideal, slope, panel)
			}
			if panel > 0 && panel < 90 {
				if got := EffectiveTilt(panel, slope); math.Abs(got-ideal) > 1e-12 {
					t.Errorf("EffectiveTilt(CompensateTilt(%v, %v)) = %v", ideal, slope, got)
				}
			}
		}
	}
}

func TestFeasibleTilts(t *testing.T) {
	tests := []struct {
		name  string
		step  float64
		slope float64
		count int
		first float64
		last  float64
	}{
		{"flat", 5, 0, 19, 0, 90},
		{"rising 15", 5, 15, 16, 0, 75},
		{"falling 10", 5, -10, 17, 10, 90},
		{"coarse", 30, 0, 4, 0, 90},
		{"fine", 0.5, 0, 181, 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeasibleTilts(tt.step, tt.slope)
			if len(got) != tt.count {
				t.Fatalf("len(FeasibleTilts(%v, %v)) = %d, want %d", tt.step, tt.slope, len(got), tt.count)
			}
			if got[0] != tt.first || got[len(got)-1] != tt.last {
				t.Errorf("FeasibleTilts range = [%v, %v], want [%v, %v]", got[0], got[len(got)-1], tt.first, tt.last)
			}
			if !slices.IsSorted(got) {
				t.Errorf("FeasibleTilts not ascending: %v", got)
			}
			if len(slices.Compact(slices.Clone(got))) != len(got) {
				t.Errorf("FeasibleTilts has duplicates: %v", got)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	if got := steps(0, 10, 5, true); !slices.Equal(got, []float64{0, 5, 10}) {
		t.Errorf("closed steps = %v", got)
	}
	if got := steps(300, 360, 30, false); !slices.Equal(got, []float64{300, 330}) {
		t.Errorf("open steps = %v", got)
	}
	got := steps(0, 90, 0.1, true)
	if len(got) != 901 {
		t.Errorf("len(steps(0, 90, 0.1)) = %d, want 901", len(got))
	}
}
