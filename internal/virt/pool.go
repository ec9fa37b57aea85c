package virt

import "github.com/stripdeck/stripdeck/internal/strip"

// Pool is a bounded, category-keyed cache of detached, reset views
// available for reuse. Views in the pool hold no reference to any item,
// and a view created for one category is never handed out for another.
type Pool struct {
	maxPerCategory int
	views          map[strip.Category][]ContentView
}

// NewPool creates a pool holding at most maxPerCategory views per
// category. A non-positive capacity disables pooling entirely.
func NewPool(maxPerCategory int) *Pool {
	return &Pool{
		maxPerCategory: maxPerCategory,
		views:          make(map[strip.Category][]ContentView),
	}
}

// Dequeue pops the most recently enqueued view for the category. ok is
// false when the category is empty; the caller then constructs a new
// view.
func (p *Pool) Dequeue(category strip.Category) (view ContentView, ok bool) {
	list := p.views[category]
	if len(list) == 0 {
		return nil, false
	}
	view = list[len(list)-1]
	list[len(list)-1] = nil
	p.views[category] = list[:len(list)-1]
	return view, true
}

// Enqueue pushes a detached, reset view into the category's list. When
// the category is at capacity the view is dropped and Enqueue returns
// false.
func (p *Pool) Enqueue(category strip.Category, view ContentView) bool {
	if len(p.views[category]) >= p.maxPerCategory {
		return false
	}
	p.views[category] = append(p.views[category], view)
	return true
}

// Size returns the number of pooled views for a category.
func (p *Pool) Size(category strip.Category) int {
	return len(p.views[category])
}

// Total returns the number of pooled views across all categories.
func (p *Pool) Total() int {
	n := 0
	for _, list := range p.views {
		n += len(list)
	}
	return n
}
