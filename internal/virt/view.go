// Package virt drives the lifecycle of the expensive, stateful views
// bound to strip tiles: materialization, throttling, suspension, and
// pooled recycling, keyed off the zone classification of each pass.
package virt

import (
	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/strip"
)

// ContentView is the capability set every concrete tile view implements.
// A view is bound to at most one item at a time; the engine owns all
// lifecycle transitions and guarantees the call order:
//
//	ResetForReuse → ConfigureWithItem → SetFontSize → SetFrame →
//	(attach) → Activate | Throttle ... Suspend → (detach)
//
// Views may own background work (a PTY session, a long-running task);
// the engine treats that as opaque and never waits on it.
type ContentView interface {
	// Activate puts the view in full-rate rendering mode.
	Activate()
	// Throttle keeps the view materialized at a reduced update rate.
	Throttle()
	// Suspend stops the view's work before it is pooled or dropped.
	Suspend()
	// ResetForReuse clears all item binding so the view can be
	// reconfigured. Called before pooling and again before rebinding.
	ResetForReuse()
	// ConfigureWithItem binds the view to an item's full data.
	ConfigureWithItem(item *strip.Item)
	// SetFontSize applies the category's resolved font size.
	SetFontSize(size float64)
	// SetFrame positions the view at its tile rectangle.
	SetFrame(frame geometry.Rect)
	// Frame returns the view's current on-screen rectangle.
	Frame() geometry.Rect
	// Category returns the pooling category the view was built for. A
	// view never serves a different category.
	Category() strip.Category
	// Render returns the view's current visual content. Called by the
	// rendering surface, never by the engine.
	Render() string
}

// Surface is the rendering target views attach to and detach from. The
// engine mutates the surface's child set only inside an update pass.
type Surface interface {
	Attach(view ContentView)
	Detach(view ContentView)
}

// Factory constructs a brand-new view for an item, used only on a pool
// miss. The returned view is unconfigured; the engine runs the full
// binding sequence on it.
type Factory func(item *strip.Item, frame geometry.Rect) ContentView

// FontResolver maps a category to its font size. Supplied by the caller
// as a pure function.
type FontResolver func(category strip.Category) float64
