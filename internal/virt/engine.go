package virt

import (
	"github.com/stripdeck/stripdeck/internal/layout"
	"github.com/stripdeck/stripdeck/internal/strip"
)

// Stats counts pool and lifecycle traffic since the engine was created.
// Surfaced in the debug overlay.
type Stats struct {
	PoolHits   int
	PoolMisses int
	Suspended  int
	Pooled     int
	Dropped    int
}

// Engine orchestrates content-view lifecycles: it consumes the frames of
// a layout pass, classifies them into zones, and drives every view
// through the materialize/throttle/suspend/pool state machine.
//
// Invariants the engine maintains:
//   - an item has at most one bound view at any time;
//   - a view is never simultaneously attached to the surface and present
//     in the pool;
//   - Activate/Throttle/Suspend/ResetForReuse are only ever called in the
//     order the state machine implies.
//
// All methods must be called from the single UI goroutine; the engine
// holds no locks.
type Engine struct {
	factory Factory
	pool    *Pool

	// active maps item ID to its bound view. Views of keep-alive items
	// stay here while cold; everything else leaves on suspension.
	active map[string]ContentView
	// attached tracks which active item IDs currently sit on the
	// surface. Keep-alive views are active but detached while cold.
	attached map[string]bool

	stats Stats
}

// NewEngine creates a virtualization engine using the factory on pool
// misses and a pool bounded at maxPoolPerCategory views per category.
func NewEngine(factory Factory, maxPoolPerCategory int) *Engine {
	return &Engine{
		factory:  factory,
		pool:     NewPool(maxPoolPerCategory),
		active:   make(map[string]ContentView),
		attached: make(map[string]bool),
	}
}

// Update runs one virtualization pass over the current frames. Live and
// warm tiles get a bound, attached view (recycled or freshly built);
// tiles that went cold are suspended and pooled, except keep-alive items
// whose views are merely detached and retain all internal state.
//
// The pass is synchronous and atomic from the caller's point of view: by
// the time Update returns, every view is positioned at its new rectangle
// and the surface's child set matches the live/warm set exactly.
func (e *Engine) Update(
	frames []layout.TileFrame,
	viewportWidth float64,
	items []*strip.Item,
	surface Surface,
	fontSize FontResolver,
) {
	zones := layout.ClassifyZones(frames, viewportWidth)

	byID := make(map[string]*strip.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	wanted := make(map[string]struct{}, len(frames))
	for i, frame := range frames {
		if zones[i] == layout.ZoneCold {
			continue
		}
		item := byID[frame.ItemID]
		if item == nil {
			continue
		}
		wanted[frame.ItemID] = struct{}{}

		view, bound := e.active[frame.ItemID]
		if bound {
			view.SetFrame(frame.Rect)
			if !e.attached[frame.ItemID] {
				// A keep-alive view returning from cold: reattach
				// without touching its preserved state.
				surface.Attach(view)
				e.attached[frame.ItemID] = true
			}
		} else {
			view = e.materialize(item, frame, fontSize)
			surface.Attach(view)
			e.active[frame.ItemID] = view
			e.attached[frame.ItemID] = true
		}

		if zones[i] == layout.ZoneLive {
			view.Activate()
		} else {
			view.Throttle()
		}
	}

	for id, view := range e.active {
		if _, stillWanted := wanted[id]; stillWanted {
			continue
		}

		item := byID[id]
		if item != nil && item.KeepAliveWhenCold {
			// Offscreen but owning a long-lived session: leave the
			// view bound, just take it off the surface.
			if e.attached[id] {
				surface.Detach(view)
				e.attached[id] = false
			}
			continue
		}

		e.retire(id, view, surface)
		if item != nil {
			// Normal cold transition: recycle under the view's own
			// category.
			if e.pool.Enqueue(view.Category(), view) {
				e.stats.Pooled++
			} else {
				e.stats.Dropped++
			}
		} else {
			// Item vanished from the workspace without an explicit
			// RemoveView: treat as deletion, never pool.
			e.stats.Dropped++
		}
	}
}

// materialize produces a configured, positioned view for an item, trying
// the pool first.
func (e *Engine) materialize(item *strip.Item, frame layout.TileFrame, fontSize FontResolver) ContentView {
	view, hit := e.pool.Dequeue(item.Category)
	if hit {
		e.stats.PoolHits++
	} else {
		e.stats.PoolMisses++
		view = e.factory(item, frame.Rect)
	}
	view.ResetForReuse()
	view.ConfigureWithItem(item)
	view.SetFontSize(fontSize(item.Category))
	view.SetFrame(frame.Rect)
	return view
}

// retire suspends a view, removes it from the surface, and unbinds it
// from its item. The caller decides whether it is pooled or dropped.
func (e *Engine) retire(id string, view ContentView, surface Surface) {
	view.Suspend()
	if e.attached[id] {
		surface.Detach(view)
	}
	delete(e.active, id)
	delete(e.attached, id)
	view.ResetForReuse()
	e.stats.Suspended++
}

// ViewFor returns the view currently bound to an item, or nil.
func (e *Engine) ViewFor(itemID string) ContentView {
	return e.active[itemID]
}

// Attached reports whether the item's view currently sits on the
// surface.
func (e *Engine) Attached(itemID string) bool {
	return e.attached[itemID]
}

// RemoveView force-tears-down the view of a deleted item: suspend,
// detach, drop. Never pooled — the item no longer exists to be
// reattached. No-op when the item has no bound view.
func (e *Engine) RemoveView(itemID string, surface Surface) {
	view, ok := e.active[itemID]
	if !ok {
		return
	}
	e.retire(itemID, view, surface)
	e.stats.Dropped++
}

// ActiveCount returns the number of items with a bound view, including
// detached keep-alive views.
func (e *Engine) ActiveCount() int {
	return len(e.active)
}

// PoolSize returns the pooled view count for a category.
func (e *Engine) PoolSize(category strip.Category) int {
	return e.pool.Size(category)
}

// Stats returns lifecycle counters for the debug overlay.
func (e *Engine) Stats() Stats {
	return e.stats
}
