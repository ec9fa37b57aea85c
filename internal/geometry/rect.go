package geometry

import "math"

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MinX returns the left edge.
func (r Rect) MinX() float64 {
	return r.X
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// IntersectsX reports whether the rectangle's horizontal band overlaps
// the band [minX, maxX). Zero-width overlap does not count.
func (r Rect) IntersectsX(minX, maxX float64) bool {
	return r.MinX() < maxX && r.MaxX() > minX
}

// Snap quantizes a coordinate to the physical pixel grid for the given
// display scale factor. Idempotent: snapping a snapped value is a no-op.
func Snap(v, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	return math.Round(v*scale) / scale
}

// SnapRect snaps a rectangle's origin and size independently so all
// edges land on physical pixel boundaries.
func SnapRect(r Rect, scale float64) Rect {
	return Rect{
		X:      Snap(r.X, scale),
		Y:      Snap(r.Y, scale),
		Width:  Snap(r.Width, scale),
		Height: Snap(r.Height, scale),
	}
}
