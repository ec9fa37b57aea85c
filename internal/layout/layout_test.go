package layout_test

import (
	"testing"

	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/layout"
	"github.com/stripdeck/stripdeck/internal/strip"
)

const testGap = 2.0

func newTestEngine() *layout.Engine {
	return layout.NewEngine(layout.Options{
		Gap:          testGap,
		TopMargin:    1,
		BottomMargin: 1,
		Scale:        1,
	})
}

func makeItems(specs ...strip.WidthSpec) []*strip.Item {
	items := make([]*strip.Item, len(specs))
	for i, spec := range specs {
		item := strip.NewItem(strip.CategoryNote, "item")
		item.Width = spec
		items[i] = item
	}
	return items
}

func TestLayoutPlacement(t *testing.T) {
	items := makeItems(
		strip.Fixed(200),
		strip.Proportional(geometry.NewFraction(1, 2)),
		strip.Proportional(geometry.NewFraction(1, 2)),
	)
	eng := newTestEngine()

	frames := eng.Layout(items, 0, 1000, 40)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}

	wantX := []float64{0, 200 + testGap, 200 + testGap + 500 + testGap}
	wantW := []float64{200, 500, 500}
	for i, f := range frames {
		if f.Rect.X != wantX[i] {
			t.Errorf("frame %d x = %f, want %f", i, f.Rect.X, wantX[i])
		}
		if f.Rect.Width != wantW[i] {
			t.Errorf("frame %d width = %f, want %f", i, f.Rect.Width, wantW[i])
		}
		if f.Rect.Y != 1 || f.Rect.Height != 38 {
			t.Errorf("frame %d vertical band = (%f, %f), want (1, 38)", i, f.Rect.Y, f.Rect.Height)
		}
		if f.Index != i || f.ItemID != items[i].ID {
			t.Errorf("frame %d identity mismatch", i)
		}
	}
}

func TestLayoutScrollTranslation(t *testing.T) {
	items := makeItems(strip.Fixed(200), strip.Fixed(300), strip.Fixed(400))
	eng := newTestEngine()

	base := eng.Layout(items, 0, 1000, 40)
	scrolled := eng.Layout(items, 300, 1000, 40)

	for i := range base {
		wantX := base[i].Rect.X - 300
		if scrolled[i].Rect.X != wantX {
			t.Errorf("frame %d x = %f, want %f", i, scrolled[i].Rect.X, wantX)
		}
		if scrolled[i].Rect.Width != base[i].Rect.Width {
			t.Errorf("frame %d width changed under scroll", i)
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	items := makeItems(
		strip.Proportional(geometry.NewFraction(1, 3)),
		strip.Fixed(123.4),
		strip.Proportional(geometry.NewFraction(2, 3)),
	)
	eng := newTestEngine()

	a := eng.Layout(items, 57.5, 901, 33)
	b := eng.Layout(items, 57.5, 901, 33)
	if len(a) != len(b) {
		t.Fatal("frame counts differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("frame %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLayoutOrdering(t *testing.T) {
	items := makeItems(
		strip.Fixed(10), strip.Fixed(0), strip.Fixed(500),
		strip.Proportional(geometry.NewFraction(1, 5)), strip.Fixed(42),
	)
	eng := newTestEngine()

	frames := eng.Layout(items, -77, 640, 20)
	for i := 1; i < len(frames); i++ {
		if frames[i].Rect.X < frames[i-1].Rect.X {
			t.Errorf("x-origins not monotonic at %d: %f after %f",
				i, frames[i].Rect.X, frames[i-1].Rect.X)
		}
	}
}

func TestLayoutSnapsToPixelGrid(t *testing.T) {
	// 1/3 of 1000 is 333.33...; at scale 2 edges must land on half
	// pixels.
	items := makeItems(strip.Proportional(geometry.NewFraction(1, 3)))
	eng := layout.NewEngine(layout.Options{Gap: testGap, Scale: 2})

	frames := eng.Layout(items, 0, 1000, 40)
	r := frames[0].Rect
	snapped := geometry.SnapRect(r, 2)
	if r != snapped {
		t.Errorf("frame not on pixel grid: %+v", r)
	}
	if r.Width != 333.5 {
		t.Errorf("width = %f, want 333.5", r.Width)
	}
}

func TestLayoutEmptyAndDegenerate(t *testing.T) {
	eng := newTestEngine()

	if frames := eng.Layout(nil, 0, 1000, 40); len(frames) != 0 {
		t.Errorf("nil items produced %d frames", len(frames))
	}

	// A viewport shorter than the margins clamps the tile height to
	// zero instead of going negative.
	items := makeItems(strip.Fixed(100))
	frames := eng.Layout(items, 0, 1000, 1)
	if frames[0].Rect.Height != 0 {
		t.Errorf("height = %f, want 0", frames[0].Rect.Height)
	}
}

func TestContentWidth(t *testing.T) {
	eng := newTestEngine()
	items := makeItems(strip.Fixed(200), strip.Fixed(300))

	if got := eng.ContentWidth(items, 1000); got != 200+300+testGap {
		t.Errorf("content width = %f, want %f", got, 200+300+testGap)
	}
	if got := eng.ContentWidth(nil, 1000); got != 0 {
		t.Errorf("empty content width = %f, want 0", got)
	}
}
