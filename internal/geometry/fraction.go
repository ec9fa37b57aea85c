// Package geometry provides the exact-rational width system and
// pixel-grid snapping used by the strip layout engine.
package geometry

import "fmt"

// Fraction is an exact rational number, always stored in lowest terms.
// The zero value is 0/1. Immutable; all operations return new values.
type Fraction struct {
	num int
	den int
}

// NewFraction constructs a reduced fraction. The denominator must be
// positive; a non-positive denominator is a programming error and panics.
func NewFraction(num, den int) Fraction {
	if den <= 0 {
		panic(fmt.Sprintf("geometry: fraction denominator must be positive, got %d/%d", num, den))
	}
	g := gcd(abs(num), den)
	return Fraction{num: num / g, den: den / g}
}

// Num returns the reduced numerator.
func (f Fraction) Num() int {
	return f.num
}

// Den returns the reduced denominator. Never zero: the zero value
// normalizes to a denominator of 1.
func (f Fraction) Den() int {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// Float returns the fraction as a floating ratio.
func (f Fraction) Float() float64 {
	return float64(f.num) / float64(f.Den())
}

// Resolve returns the pixel width this fraction yields for the given
// container width.
func (f Fraction) Resolve(containerWidth float64) float64 {
	return f.Float() * containerWidth
}

// Equal reports whether two fractions have the same reduced form.
func (f Fraction) Equal(other Fraction) bool {
	return f.num == other.num && f.Den() == other.Den()
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.Den())
}

// WidthPresets is the fixed catalog of fractions a manually resized tile
// snaps to. Kept small so common layouts (halves, thirds) stay exact.
var WidthPresets = []Fraction{
	NewFraction(1, 5),
	NewFraction(1, 4),
	NewFraction(1, 3),
	NewFraction(1, 2),
	NewFraction(2, 3),
	NewFraction(3, 4),
	NewFraction(1, 1),
}

// DefaultSnapTolerance is the maximum pixel distance between a raw width
// and a preset width for the preset to win.
const DefaultSnapTolerance = 20.0

// SnapToPreset finds the preset whose resolved width is closest to the
// raw width. If that distance is within tolerance the preset is returned
// with ok=true; otherwise ok=false and the caller keeps the raw width.
func SnapToPreset(rawWidth, containerWidth, tolerance float64) (Fraction, bool) {
	if containerWidth <= 0 {
		return Fraction{}, false
	}
	best := WidthPresets[0]
	bestDist := distance(rawWidth, best.Resolve(containerWidth))
	for _, p := range WidthPresets[1:] {
		if d := distance(rawWidth, p.Resolve(containerWidth)); d < bestDist {
			best, bestDist = p, d
		}
	}
	if bestDist <= tolerance {
		return best, true
	}
	return Fraction{}, false
}

func distance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
