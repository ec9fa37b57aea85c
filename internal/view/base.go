// Package view provides the concrete content views bound to strip
// tiles: notes, task sessions, and live terminals. All views satisfy
// virt.ContentView; the virtualization engine owns their lifecycle.
package view

import (
	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/strip"
)

type mode int

const (
	modeIdle mode = iota
	modeActive
	modeThrottled
	modeSuspended
)

// base carries the state every content view shares: item binding, frame,
// font size, and render mode. Concrete views embed it and override the
// lifecycle hooks they care about.
type base struct {
	category strip.Category
	item     *strip.Item
	frame    geometry.Rect
	fontSize float64
	mode     mode
	focused  bool
}

func (b *base) Activate()      { b.mode = modeActive }
func (b *base) Throttle()      { b.mode = modeThrottled }
func (b *base) Suspend()       { b.mode = modeSuspended }
func (b *base) ResetForReuse() { b.item = nil; b.mode = modeIdle; b.focused = false }

func (b *base) ConfigureWithItem(item *strip.Item) { b.item = item }
func (b *base) SetFontSize(size float64)           { b.fontSize = size }
func (b *base) SetFrame(frame geometry.Rect)       { b.frame = frame }
func (b *base) Frame() geometry.Rect               { return b.frame }
func (b *base) Category() strip.Category           { return b.category }

// SetFocused marks the view as holding keyboard focus. Purely visual;
// called by the app, not the engine.
func (b *base) SetFocused(focused bool) { b.focused = focused }

// Item returns the currently bound item, nil while pooled.
func (b *base) Item() *strip.Item { return b.item }

func (b *base) throttled() bool { return b.mode == modeThrottled }

// innerSize returns the content box inside the tile border, clamped to
// zero.
func (b *base) innerSize() (w, h int) {
	w = int(b.frame.Width) - 2
	h = int(b.frame.Height) - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
