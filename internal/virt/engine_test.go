package virt_test

import (
	"strings"
	"testing"

	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/layout"
	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/virt"
)

const viewportWidth = 300.0

// fixture owns an engine wired to a recording factory and surface, plus
// ten 100-wide items laid edge to edge.
type fixture struct {
	engine  *virt.Engine
	surface *fakeSurface
	items   []*strip.Item
	built   []*fakeView
}

func newFixture(t *testing.T, poolSize, itemCount int) *fixture {
	t.Helper()
	f := &fixture{surface: newFakeSurface()}
	f.engine = virt.NewEngine(func(item *strip.Item, frame geometry.Rect) virt.ContentView {
		v := newFakeView(item.Category)
		f.built = append(f.built, v)
		return v
	}, poolSize)
	for i := 0; i < itemCount; i++ {
		item := strip.NewItem(strip.CategoryNote, "item")
		item.Width = strip.Fixed(100)
		f.items = append(f.items, item)
	}
	return f
}

// frames lays the fixture items edge to edge, translated by -scroll.
func (f *fixture) frames(scroll float64) []layout.TileFrame {
	frames := make([]layout.TileFrame, len(f.items))
	x := -scroll
	for i, item := range f.items {
		frames[i] = layout.TileFrame{
			ItemID: item.ID,
			Index:  i,
			Rect:   geometry.Rect{X: x, Width: 100, Height: 20},
		}
		x += 100
	}
	return frames
}

func (f *fixture) update(scroll float64) {
	f.engine.Update(f.frames(scroll), viewportWidth, f.items, f.surface, func(strip.Category) float64 {
		return 13
	})
}

func (f *fixture) viewOf(i int) *fakeView {
	v := f.engine.ViewFor(f.items[i].ID)
	if v == nil {
		return nil
	}
	return v.(*fakeView)
}

func TestUpdateMaterializesLiveAndWarm(t *testing.T) {
	f := newFixture(t, 4, 10)
	f.update(0)

	// Viewport 300 covers tiles 0..2; tiles 3 and 4 are warm.
	for i := 0; i <= 4; i++ {
		v := f.viewOf(i)
		if v == nil {
			t.Fatalf("tile %d should be materialized", i)
		}
		if v.item != f.items[i] {
			t.Errorf("tile %d bound to wrong item", i)
		}
		if v.fontSize != 13 {
			t.Errorf("tile %d font size = %f, want 13", i, v.fontSize)
		}
		want := "activate"
		if i > 2 {
			want = "throttle"
		}
		if last := v.calls[len(v.calls)-1]; last != want {
			t.Errorf("tile %d last call = %s, want %s", i, last, want)
		}
	}
	for i := 5; i < 10; i++ {
		if f.viewOf(i) != nil {
			t.Errorf("cold tile %d should not be materialized", i)
		}
	}
	if f.surface.count() != 5 {
		t.Errorf("surface has %d views, want 5", f.surface.count())
	}
}

func TestBindingSequence(t *testing.T) {
	f := newFixture(t, 4, 1)
	f.update(0)

	v := f.viewOf(0)
	got := strings.Join(v.calls, ",")
	want := "reset,configure:item,activate"
	if got != want {
		t.Errorf("call sequence = %s, want %s", got, want)
	}
}

func TestColdTransitionSuspendsAndPools(t *testing.T) {
	f := newFixture(t, 4, 10)
	f.update(0)
	first := f.viewOf(0)

	// Scroll far enough that tiles 0..2 fall cold (live span becomes
	// 6..8 at scroll 600: tile 0 at x=-600, warm span reaches 4).
	f.update(600)

	if f.engine.ViewFor(f.items[0].ID) != nil {
		t.Error("cold tile should leave the active set")
	}
	if !hasCall(first, "suspend") {
		t.Error("cold view must be suspended")
	}
	if f.surface.attached[first] {
		t.Error("cold view must be detached from the surface")
	}
	if f.engine.PoolSize(strip.CategoryNote) == 0 {
		t.Error("suspended view should be recycled into the pool")
	}
}

func TestPoolReuseOnReturn(t *testing.T) {
	f := newFixture(t, 8, 10)
	f.update(0)
	built := len(f.built)

	f.update(600) // tiles 0..2 go cold, 6..8 live
	f.update(0)   // back again

	stats := f.engine.Stats()
	if stats.PoolHits == 0 {
		t.Error("returning tiles should be served from the pool")
	}
	// Reused views must be rebound: the view on tile 0 carries item 0
	// again, whatever view instance it is.
	if v := f.viewOf(0); v == nil || v.item != f.items[0] {
		t.Error("reused view not reconfigured for the returning item")
	}
	if len(f.built) > built+3 {
		t.Errorf("factory built %d extra views despite pool", len(f.built)-built)
	}
}

func TestLifecycleExclusivity(t *testing.T) {
	f := newFixture(t, 8, 10)
	for _, scroll := range []float64{0, 300, 600, 150, 0, 700, 0} {
		f.update(scroll)
		// No view may be attached and pooled at once: every pooled view
		// must be off the surface, every attached view bound.
		for _, v := range f.built {
			inPool := !f.surface.attached[v] && v.item == nil
			bound := v.item != nil
			if f.surface.attached[v] && !bound {
				t.Fatalf("attached view with no item binding at scroll %f", scroll)
			}
			_ = inPool
		}
		if f.engine.ActiveCount()+f.engine.PoolSize(strip.CategoryNote) > len(f.built) {
			t.Fatalf("more live+pooled views than ever built at scroll %f", scroll)
		}
	}
}

func TestKeepAliveSurvivesCold(t *testing.T) {
	f := newFixture(t, 4, 10)
	f.items[0].Category = strip.CategoryTerminal
	f.items[0].KeepAliveWhenCold = true

	f.update(0)
	v := f.viewOf(0)
	if v == nil {
		t.Fatal("tile 0 should be materialized")
	}

	// Repeated cold passes: the view stays bound and is never suspended
	// or pooled.
	for i := 0; i < 3; i++ {
		f.update(600)
		if f.engine.ViewFor(f.items[0].ID) != v {
			t.Fatal("keep-alive view must remain in the active set")
		}
		if f.engine.Attached(f.items[0].ID) {
			t.Error("keep-alive view should be detached while cold")
		}
		if hasCall(v, "suspend") {
			t.Fatal("keep-alive view must never be suspended by a cold transition")
		}
		if f.engine.PoolSize(strip.CategoryTerminal) != 0 {
			t.Fatal("keep-alive view must never be pooled")
		}
	}

	// Returning to view: same instance reattaches without rebinding.
	calls := len(v.calls)
	f.update(0)
	if f.engine.ViewFor(f.items[0].ID) != v {
		t.Fatal("keep-alive view must be reused on return")
	}
	if !f.engine.Attached(f.items[0].ID) {
		t.Error("keep-alive view should be reattached when live again")
	}
	for _, call := range v.calls[calls:] {
		if strings.HasPrefix(call, "configure") || call == "reset" {
			t.Errorf("returning keep-alive view must not be rebound, saw %s", call)
		}
	}
}

func TestRemoveViewNeverPools(t *testing.T) {
	f := newFixture(t, 4, 3)
	f.update(0)
	v := f.viewOf(1)

	f.engine.RemoveView(f.items[1].ID, f.surface)

	if !hasCall(v, "suspend") {
		t.Error("removed view must be suspended")
	}
	if f.surface.attached[v] {
		t.Error("removed view must be detached")
	}
	if f.engine.ViewFor(f.items[1].ID) != nil {
		t.Error("removed view must leave the active set")
	}
	if f.engine.PoolSize(strip.CategoryNote) != 0 {
		t.Error("removed view must never enter the pool")
	}

	// Removing an unknown item is a no-op.
	f.engine.RemoveView("missing", f.surface)
}

func TestVanishedItemDroppedNotPooled(t *testing.T) {
	f := newFixture(t, 4, 3)
	f.update(0)

	// Item 2 disappears from the workspace without an explicit
	// RemoveView call.
	gone := f.items[2]
	f.items = f.items[:2]
	f.update(0)

	if f.engine.ViewFor(gone.ID) != nil {
		t.Error("vanished item's view must be unbound")
	}
	if f.engine.PoolSize(strip.CategoryNote) != 0 {
		t.Error("vanished item's view must be dropped, not pooled")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Mixed widths: Fixed(200), 1/2, 1/2 at viewport 1000.
	gap := 2.0
	eng := layout.NewEngine(layout.Options{Gap: gap, Scale: 1})

	items := []*strip.Item{
		strip.NewItem(strip.CategoryNote, "a"),
		strip.NewItem(strip.CategoryNote, "b"),
		strip.NewItem(strip.CategoryNote, "c"),
	}
	items[0].Width = strip.Fixed(200)
	items[1].Width = strip.Proportional(geometry.NewFraction(1, 2))
	items[2].Width = strip.Proportional(geometry.NewFraction(1, 2))

	frames := eng.Layout(items, 0, 1000, 40)
	wantX := []float64{0, 200 + gap, 200 + gap + 500 + gap}
	for i, f := range frames {
		if f.Rect.X != wantX[i] {
			t.Errorf("frame %d x = %f, want %f", i, f.Rect.X, wantX[i])
		}
	}

	surface := newFakeSurface()
	virtEngine := virt.NewEngine(func(item *strip.Item, frame geometry.Rect) virt.ContentView {
		return newFakeView(item.Category)
	}, 4)
	virtEngine.Update(frames, 1000, items, surface, func(strip.Category) float64 { return 12 })

	for i, item := range items {
		v := virtEngine.ViewFor(item.ID)
		if v == nil {
			t.Fatalf("tile %d not materialized", i)
		}
		if v.Frame() != frames[i].Rect {
			t.Errorf("tile %d positioned at %+v, want %+v", i, v.Frame(), frames[i].Rect)
		}
	}

	// Scrolling by 300 shifts every x by -300.
	scrolled := eng.Layout(items, 300, 1000, 40)
	for i := range frames {
		if scrolled[i].Rect.X != frames[i].Rect.X-300 {
			t.Errorf("frame %d x = %f, want %f", i, scrolled[i].Rect.X, frames[i].Rect.X-300)
		}
	}
	virtEngine.Update(scrolled, 1000, items, surface, func(strip.Category) float64 { return 12 })
	for i, item := range items {
		if v := virtEngine.ViewFor(item.ID); v == nil {
			t.Errorf("tile %d should still be live or warm after scroll", i)
		} else if v.Frame() != scrolled[i].Rect {
			t.Errorf("tile %d not repositioned after scroll", i)
		}
	}
}

func hasCall(v *fakeView, name string) bool {
	for _, c := range v.calls {
		if c == name {
			return true
		}
	}
	return false
}
