// Package layout turns the ordered item sequence plus scroll state into
// pixel-accurate tile rectangles, and classifies each tile into a
// visibility zone. Everything here is pure: no I/O, no side effects,
// identical inputs produce identical output.
package layout

import (
	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/strip"
)

// TileFrame is the placement computed for one item on one pass. Frames
// are produced fresh every pass; only the item ID carries identity.
type TileFrame struct {
	ItemID string
	Index  int
	Rect   geometry.Rect
}

// Options fix the geometric constants of the strip.
type Options struct {
	// Gap is the horizontal space between adjacent tiles.
	Gap float64
	// TopMargin and BottomMargin are subtracted from the viewport
	// height; every tile gets the same resulting height.
	TopMargin    float64
	BottomMargin float64
	// Scale is the display's physical pixel scale factor. Zero or
	// negative falls back to 1.
	Scale float64
}

// Engine lays out the strip. It holds only immutable options and is safe
// to share.
type Engine struct {
	opts Options
}

// NewEngine returns a layout engine with the given options.
func NewEngine(opts Options) *Engine {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return &Engine{opts: opts}
}

// Layout places each item left to right at its resolved width, separated
// by the fixed gap, translated by -scrollOffset, and snaps every
// rectangle to the physical pixel grid. Output order matches input
// order; x-origins are monotonically non-decreasing.
//
// The focused index is deliberately not an input: whatever policy maps
// focus to a scroll offset lives in the caller.
func (e *Engine) Layout(items []*strip.Item, scrollOffset, viewportWidth, viewportHeight float64) []TileFrame {
	frames := make([]TileFrame, len(items))

	height := viewportHeight - e.opts.TopMargin - e.opts.BottomMargin
	if height < 0 {
		height = 0
	}

	x := -scrollOffset
	for i, item := range items {
		width := item.Width.Resolve(viewportWidth)
		if width < 0 {
			width = 0
		}
		rect := geometry.Rect{
			X:      x,
			Y:      e.opts.TopMargin,
			Width:  width,
			Height: height,
		}
		frames[i] = TileFrame{
			ItemID: item.ID,
			Index:  i,
			Rect:   geometry.SnapRect(rect, e.opts.Scale),
		}
		x += width + e.opts.Gap
	}

	return frames
}

// ContentWidth returns the total unscrolled width of the strip: the sum
// of resolved tile widths plus the gaps between them. Used by scroll
// clamping policies.
func (e *Engine) ContentWidth(items []*strip.Item, viewportWidth float64) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, item := range items {
		w := item.Width.Resolve(viewportWidth)
		if w > 0 {
			total += w
		}
	}
	return total + e.opts.Gap*float64(len(items)-1)
}

// Options returns the engine's geometric constants.
func (e *Engine) Options() Options {
	return e.opts
}
