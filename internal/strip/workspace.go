package strip

// Workspace is the ordered sequence of items plus focus and scroll
// state. It is owned by the application; the layout and virtualization
// engines receive it read-only per pass and never mutate it. All
// mutation happens between passes on the UI goroutine.
type Workspace struct {
	items   []*Item
	focused int // index into items, -1 when nothing is focused
	scroll  float64
}

// NewWorkspace returns an empty workspace with no focus.
func NewWorkspace() *Workspace {
	return &Workspace{focused: -1}
}

// Items returns the ordered item slice. Callers must not reorder it.
func (w *Workspace) Items() []*Item {
	return w.items
}

// Len returns the number of items.
func (w *Workspace) Len() int {
	return len(w.items)
}

// Append adds an item at the right end of the strip and focuses it.
func (w *Workspace) Append(item *Item) {
	w.items = append(w.items, item)
	w.focused = len(w.items) - 1
}

// InsertAfter places an item immediately after the given index and
// focuses it. An out-of-range index appends.
func (w *Workspace) InsertAfter(index int, item *Item) {
	if index < 0 || index >= len(w.items)-1 {
		w.Append(item)
		return
	}
	w.items = append(w.items[:index+2], w.items[index+1:]...)
	w.items[index+1] = item
	w.focused = index + 1
}

// Remove deletes the item with the given ID, returning it. When the
// removed item was focused, focus keeps its index and lands on the item
// that slides into the gap, clamping to the new tail; focus clears when
// the strip empties.
func (w *Workspace) Remove(id string) *Item {
	idx := w.IndexOf(id)
	if idx < 0 {
		return nil
	}
	item := w.items[idx]
	w.items = append(w.items[:idx], w.items[idx+1:]...)
	switch {
	case len(w.items) == 0:
		w.focused = -1
	case w.focused > idx:
		w.focused--
	case w.focused >= len(w.items):
		w.focused = len(w.items) - 1
	}
	return item
}

// IndexOf returns the ordinal position of an item, or -1.
func (w *Workspace) IndexOf(id string) int {
	for i, item := range w.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// ItemAt returns the item at an index, or nil when out of range.
func (w *Workspace) ItemAt(index int) *Item {
	if index < 0 || index >= len(w.items) {
		return nil
	}
	return w.items[index]
}

// Focused returns the focused index, -1 when nothing is focused.
func (w *Workspace) Focused() int {
	return w.focused
}

// FocusedItem returns the focused item, or nil.
func (w *Workspace) FocusedItem() *Item {
	return w.ItemAt(w.focused)
}

// SetFocused clamps and sets the focused index. Negative values clear
// focus.
func (w *Workspace) SetFocused(index int) {
	if index < 0 || len(w.items) == 0 {
		w.focused = -1
		return
	}
	if index >= len(w.items) {
		index = len(w.items) - 1
	}
	w.focused = index
}

// FocusNext advances focus rightward, stopping at the last item.
func (w *Workspace) FocusNext() {
	if len(w.items) == 0 {
		return
	}
	if w.focused < len(w.items)-1 {
		w.focused++
	}
}

// FocusPrev moves focus leftward, stopping at the first item.
func (w *Workspace) FocusPrev() {
	if len(w.items) == 0 {
		return
	}
	if w.focused > 0 {
		w.focused--
	} else if w.focused < 0 {
		w.focused = 0
	}
}

// Scroll returns the current scroll offset. Positive offsets shift
// content leftward.
func (w *Workspace) Scroll() float64 {
	return w.scroll
}

// SetScroll replaces the scroll offset.
func (w *Workspace) SetScroll(offset float64) {
	w.scroll = offset
}

// ScrollBy shifts the scroll offset by delta.
func (w *Workspace) ScrollBy(delta float64) {
	w.scroll += delta
}
