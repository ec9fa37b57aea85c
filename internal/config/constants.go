// Package config holds the fixed geometric constants of the strip and
// the user-editable configuration file.
package config

import "time"

// Strip geometry. Logical pixels; the TUI front end runs at scale 1 so
// one pixel is one terminal cell.
const (
	// TileGap is the horizontal space between adjacent tiles.
	TileGap = 2.0
	// TopMargin and BottomMargin frame the strip vertically; the
	// status bar lives in the bottom margin.
	TopMargin    = 1.0
	BottomMargin = 2.0
)

// Virtualization.
const (
	// DefaultPoolSize bounds how many recycled views each category
	// keeps.
	DefaultPoolSize = 4
	// ScrollStep is how far one key press or wheel tick scrolls.
	ScrollStep = 10.0
	// ResizeStep is how much one resize key press changes a tile's
	// width before preset snapping.
	ResizeStep = 5.0
	// MinTileWidth is the narrowest a manual resize can make a tile.
	MinTileWidth = 12.0
)

// Frame pacing.
const (
	// NormalFPS drives the main tick loop.
	NormalFPS = 30
	// TickInterval is the period of the refresh tick.
	TickInterval = time.Second / NormalFPS
)

// Z-index bands for canvas layers.
const (
	ZIndexTiles   = 10
	ZIndexStatus  = 100
	ZIndexOverlay = 200
)
