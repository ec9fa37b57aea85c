package geometry_test

import (
	"testing"

	"github.com/stripdeck/stripdeck/internal/geometry"
)

func TestNewFractionReduces(t *testing.T) {
	tests := []struct {
		num, den         int
		wantNum, wantDen int
	}{
		{1, 2, 1, 2},
		{2, 4, 1, 2},
		{6, 9, 2, 3},
		{10, 5, 2, 1},
		{0, 7, 0, 1},
		{-2, 4, -1, 2},
		{-6, 9, -2, 3},
		{7, 7, 1, 1},
	}

	for _, tt := range tests {
		f := geometry.NewFraction(tt.num, tt.den)
		if f.Num() != tt.wantNum || f.Den() != tt.wantDen {
			t.Errorf("NewFraction(%d, %d) = %s, want %d/%d",
				tt.num, tt.den, f, tt.wantNum, tt.wantDen)
		}
	}
}

func TestNewFractionPanicsOnBadDenominator(t *testing.T) {
	for _, den := range []int{0, -1, -100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewFraction(1, %d) did not panic", den)
				}
			}()
			geometry.NewFraction(1, den)
		}()
	}
}

func TestFractionEqual(t *testing.T) {
	if !geometry.NewFraction(2, 4).Equal(geometry.NewFraction(1, 2)) {
		t.Error("2/4 should equal 1/2 after reduction")
	}
	if geometry.NewFraction(1, 3).Equal(geometry.NewFraction(1, 2)) {
		t.Error("1/3 should not equal 1/2")
	}
}

func TestFractionZeroValue(t *testing.T) {
	var f geometry.Fraction
	if f.Den() != 1 {
		t.Errorf("zero value denominator = %d, want 1", f.Den())
	}
	if f.Float() != 0 {
		t.Errorf("zero value ratio = %f, want 0", f.Float())
	}
}

func TestFractionResolve(t *testing.T) {
	tests := []struct {
		frac      geometry.Fraction
		container float64
		want      float64
	}{
		{geometry.NewFraction(1, 2), 1000, 500},
		{geometry.NewFraction(1, 3), 900, 300},
		{geometry.NewFraction(2, 3), 900, 600},
		{geometry.NewFraction(1, 1), 640, 640},
		{geometry.NewFraction(1, 4), 800, 200},
	}

	for _, tt := range tests {
		got := tt.frac.Resolve(tt.container)
		if got != tt.want {
			t.Errorf("%s of %f = %f, want %f", tt.frac, tt.container, got, tt.want)
		}
		// Resolution is a pure function of its inputs.
		if again := tt.frac.Resolve(tt.container); again != got {
			t.Errorf("%s resolve not idempotent: %f then %f", tt.frac, got, again)
		}
	}
}

func TestSnapToPreset(t *testing.T) {
	tests := []struct {
		name      string
		raw       float64
		container float64
		wantFrac  geometry.Fraction
		wantOK    bool
	}{
		{"exact third", 300, 900, geometry.NewFraction(1, 3), true},
		{"near third", 310, 900, geometry.NewFraction(1, 3), true},
		{"tolerance boundary", 320, 900, geometry.NewFraction(1, 3), true},
		{"past tolerance", 325, 900, geometry.Fraction{}, false},
		{"near half", 495, 1000, geometry.NewFraction(1, 2), true},
		{"near full", 995, 1000, geometry.NewFraction(1, 1), true},
		{"between presets", 560, 1000, geometry.Fraction{}, false},
		{"degenerate container", 100, 0, geometry.Fraction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frac, ok := geometry.SnapToPreset(tt.raw, tt.container, geometry.DefaultSnapTolerance)
			if ok != tt.wantOK {
				t.Fatalf("SnapToPreset(%f, %f) ok = %v, want %v", tt.raw, tt.container, ok, tt.wantOK)
			}
			if ok && !frac.Equal(tt.wantFrac) {
				t.Errorf("SnapToPreset(%f, %f) = %s, want %s", tt.raw, tt.container, frac, tt.wantFrac)
			}
		})
	}
}

func TestSnapToPresetPicksClosest(t *testing.T) {
	// 440 of 1000 sits between 1/3 (333.33) and 1/2 (500); closest is 1/2
	// at distance 60, outside tolerance.
	if _, ok := geometry.SnapToPreset(440, 1000, geometry.DefaultSnapTolerance); ok {
		t.Error("440/1000 should not snap to any preset")
	}
	// 490 is 10 away from 1/2: snaps.
	frac, ok := geometry.SnapToPreset(490, 1000, geometry.DefaultSnapTolerance)
	if !ok || !frac.Equal(geometry.NewFraction(1, 2)) {
		t.Errorf("490/1000 = %s (ok=%v), want 1/2", frac, ok)
	}
}
