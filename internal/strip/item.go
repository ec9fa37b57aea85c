// Package strip defines the data model of the tile strip: items, their
// declared widths, and the workspace state that orders them.
package strip

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stripdeck/stripdeck/internal/geometry"
)

// Category tags an item for pooling and styling. The set is open: new
// categories can be introduced without touching the layout or
// virtualization engines.
type Category string

const (
	// CategoryNote is a free-form note tile.
	CategoryNote Category = "note"
	// CategoryTask is a task/idea session tile.
	CategoryTask Category = "task"
	// CategoryTerminal is a tile owning a live shell session.
	CategoryTerminal Category = "terminal"
)

// WidthSpec declares how wide a tile wants to be: either a fraction of
// the viewport width or a fixed pixel length.
type WidthSpec struct {
	frac    geometry.Fraction
	fixed   float64
	isFixed bool
}

// Proportional declares a width as a fraction of the container width.
func Proportional(f geometry.Fraction) WidthSpec {
	return WidthSpec{frac: f}
}

// Fixed declares a width as a literal pixel length.
func Fixed(px float64) WidthSpec {
	return WidthSpec{fixed: px, isFixed: true}
}

// Resolve returns the effective pixel width for the given container
// width.
func (w WidthSpec) Resolve(containerWidth float64) float64 {
	if w.isFixed {
		return w.fixed
	}
	return w.frac.Resolve(containerWidth)
}

// IsFixed reports whether the spec is a literal length rather than a
// fraction.
func (w WidthSpec) IsFixed() bool {
	return w.isFixed
}

// Fraction returns the proportional fraction. Only meaningful when
// IsFixed is false.
func (w WidthSpec) Fraction() geometry.Fraction {
	return w.frac
}

func (w WidthSpec) String() string {
	if w.isFixed {
		return fmt.Sprintf("fixed(%g)", w.fixed)
	}
	return fmt.Sprintf("proportional(%s)", w.frac)
}

// Snapped converts a raw effective width back into a WidthSpec: a preset
// fraction when the width lands within tolerance of one, a Fixed width
// otherwise. Used after manual resize so common layouts stay exact.
func Snapped(rawWidth, containerWidth float64) WidthSpec {
	if frac, ok := geometry.SnapToPreset(rawWidth, containerWidth, geometry.DefaultSnapTolerance); ok {
		return Proportional(frac)
	}
	return Fixed(rawWidth)
}

// Item is one addressable unit of the strip. Its index is derived from
// its position in the workspace sequence, never stored here.
type Item struct {
	ID       string
	Title    string
	Body     string
	Category Category
	Width    WidthSpec

	// KeepAliveWhenCold exempts the item's view from suspension and
	// pooling while offscreen. Set for items owning a long-lived
	// background session.
	KeepAliveWhenCold bool
}

// NewItem creates an item with a fresh unique identity and the default
// width for its category. Terminal items keep their sessions alive while
// cold.
func NewItem(category Category, title string) *Item {
	return &Item{
		ID:                uuid.New().String(),
		Title:             title,
		Category:          category,
		Width:             Proportional(geometry.NewFraction(1, 3)),
		KeepAliveWhenCold: category == CategoryTerminal,
	}
}
