package view

import (
	"github.com/stripdeck/stripdeck/internal/config"
	"github.com/stripdeck/stripdeck/internal/geometry"
	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/virt"
)

// NewFactory returns the view factory used on pool misses, dispatching
// on the item's category. Unknown categories fall back to a note view.
func NewFactory(cfg *config.Config) virt.Factory {
	return func(item *strip.Item, _ geometry.Rect) virt.ContentView {
		switch item.Category {
		case strip.CategoryTask:
			return NewTaskView()
		case strip.CategoryTerminal:
			return NewTerminalView(cfg.Terminal.Shell, cfg.Terminal.TailLines)
		default:
			return NewNoteView()
		}
	}
}
