// Package app is the bubbletea front end: it owns the workspace, runs a
// layout and virtualization pass per frame, and renders the attached
// views onto a layered canvas.
package app

import (
	"io"

	log "charm.land/log/v2"

	"github.com/stripdeck/stripdeck/internal/config"
	"github.com/stripdeck/stripdeck/internal/layout"
	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/view"
	"github.com/stripdeck/stripdeck/internal/virt"
)

// Deck is the top-level bubbletea model.
type Deck struct {
	Workspace *strip.Workspace
	Layout    *layout.Engine
	Virt      *virt.Engine
	Canvas    *TileSurface

	Width  int
	Height int

	Config    *config.Config
	ShowStats bool

	logger *log.Logger

	// ConfigUpdates delivers live config reloads; nil disables watching.
	ConfigUpdates <-chan *config.Config
}

// NewDeck builds the model. The logger may be nil.
func NewDeck(cfg *config.Config, logger *log.Logger) *Deck {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Deck{
		Workspace: strip.NewWorkspace(),
		Layout: layout.NewEngine(layout.Options{
			Gap:          config.TileGap,
			TopMargin:    config.TopMargin,
			BottomMargin: config.BottomMargin,
			Scale:        1,
		}),
		Virt:   virt.NewEngine(view.NewFactory(cfg), cfg.Strip.PoolSize),
		Canvas: NewTileSurface(),
		Config: cfg,
		logger: logger,
	}
}

// Pass runs one layout plus virtualization pass against the current
// workspace and viewport. Called after every mutation and on each tick.
func (d *Deck) Pass() {
	if d.Width <= 0 || d.Height <= 0 {
		return
	}
	w, h := float64(d.Width), float64(d.Height)
	frames := d.Layout.Layout(d.Workspace.Items(), d.Workspace.Scroll(), w, h)
	d.Virt.Update(frames, w, d.Workspace.Items(), d.Canvas, d.Config.FontSizeFor)

	focusedID := ""
	if item := d.Workspace.FocusedItem(); item != nil {
		focusedID = item.ID
	}
	for _, v := range d.Canvas.Views() {
		if f, ok := v.(interface{ SetFocused(bool) }); ok {
			id := ""
			if item := itemOf(v); item != nil {
				id = item.ID
			}
			f.SetFocused(id != "" && id == focusedID)
		}
	}
}

// itemOf extracts the bound item from views that expose it.
func itemOf(v virt.ContentView) *strip.Item {
	if b, ok := v.(interface{ Item() *strip.Item }); ok {
		return b.Item()
	}
	return nil
}

// ScrollToFocused scrolls the minimum distance that brings the focused
// tile fully into view, clamped to the scrollable range.
func (d *Deck) ScrollToFocused() {
	item := d.Workspace.FocusedItem()
	if item == nil || d.Width <= 0 {
		return
	}
	w, h := float64(d.Width), float64(d.Height)

	// Absolute tile positions, independent of the current scroll.
	frames := d.Layout.Layout(d.Workspace.Items(), 0, w, h)
	var minX, maxX float64
	found := false
	for _, frame := range frames {
		if frame.ItemID == item.ID {
			minX, maxX = frame.Rect.MinX(), frame.Rect.MaxX()
			found = true
			break
		}
	}
	if !found {
		return
	}

	scroll := d.Workspace.Scroll()
	if minX < scroll {
		scroll = minX
	} else if maxX > scroll+w {
		scroll = maxX - w
	}
	d.Workspace.SetScroll(d.clampScroll(scroll))
}

// ScrollBy shifts the strip, clamped to the scrollable range.
func (d *Deck) ScrollBy(delta float64) {
	d.Workspace.SetScroll(d.clampScroll(d.Workspace.Scroll() + delta))
}

func (d *Deck) clampScroll(offset float64) float64 {
	maxScroll := d.Layout.ContentWidth(d.Workspace.Items(), float64(d.Width)) - float64(d.Width)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if offset > maxScroll {
		offset = maxScroll
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// AddItem appends an item after the focused tile, focuses it, and
// scrolls it into view.
func (d *Deck) AddItem(category strip.Category, title string) *strip.Item {
	item := strip.NewItem(category, title)
	d.Workspace.InsertAfter(d.Workspace.Focused(), item)
	d.logger.Debug("added item", "id", item.ID, "category", item.Category)
	d.ScrollToFocused()
	d.Pass()
	return item
}

// CloseFocused removes the focused item and tears its view down. The
// view is never pooled: the item is gone for good.
func (d *Deck) CloseFocused() {
	item := d.Workspace.FocusedItem()
	if item == nil {
		return
	}
	d.Workspace.Remove(item.ID)
	d.Virt.RemoveView(item.ID, d.Canvas)
	d.logger.Debug("closed item", "id", item.ID)
	d.Pass()
}

// ResizeFocused grows or shrinks the focused tile by delta logical
// pixels, then snaps the result to the nearest width preset when one is
// within tolerance.
func (d *Deck) ResizeFocused(delta float64) {
	item := d.Workspace.FocusedItem()
	if item == nil || d.Width <= 0 {
		return
	}
	w := float64(d.Width)
	raw := item.Width.Resolve(w) + delta
	if raw < config.MinTileWidth {
		raw = config.MinTileWidth
	}
	if raw > w {
		raw = w
	}
	item.Width = strip.Snapped(raw, w)
	d.Pass()
}

// TileSurface is the Surface implementation views attach to: an ordered
// set of views the renderer turns into canvas layers.
type TileSurface struct {
	views []virt.ContentView
}

// NewTileSurface creates an empty surface.
func NewTileSurface() *TileSurface {
	return &TileSurface{}
}

// Attach adds a view to the surface. Idempotent.
func (s *TileSurface) Attach(v virt.ContentView) {
	for _, existing := range s.views {
		if existing == v {
			return
		}
	}
	s.views = append(s.views, v)
}

// Detach removes a view from the surface. Unknown views are ignored.
func (s *TileSurface) Detach(v virt.ContentView) {
	for i, existing := range s.views {
		if existing == v {
			s.views = append(s.views[:i], s.views[i+1:]...)
			return
		}
	}
}

// Views returns the attached views in attach order.
func (s *TileSurface) Views() []virt.ContentView {
	return s.views
}

// Len returns the attached view count.
func (s *TileSurface) Len() int {
	return len(s.views)
}
