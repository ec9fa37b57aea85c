// Package theme centralizes lipgloss styling for tiles and chrome. Two
// built-in palettes ship with the app; every other theme name is
// resolved through the bubbletint registry.
package theme

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/stripdeck/stripdeck/internal/strip"
)

// Palette is the color set one theme provides.
type Palette struct {
	Border        color.Color
	FocusedBorder color.Color
	ThrottledDim  color.Color
	Title         color.Color
	Body          color.Color
	StatusBarBg   color.Color
	StatusBarFg   color.Color
	Accent        color.Color
}

var palettes = map[string]Palette{
	"default": {
		Border:        lipgloss.Color("240"),
		FocusedBorder: lipgloss.Color("62"),
		ThrottledDim:  lipgloss.Color("238"),
		Title:         lipgloss.Color("252"),
		Body:          lipgloss.Color("250"),
		StatusBarBg:   lipgloss.Color("236"),
		StatusBarFg:   lipgloss.Color("250"),
		Accent:        lipgloss.Color("212"),
	},
	"mono": {
		Border:        lipgloss.Color("240"),
		FocusedBorder: lipgloss.Color("255"),
		ThrottledDim:  lipgloss.Color("237"),
		Title:         lipgloss.Color("255"),
		Body:          lipgloss.Color("248"),
		StatusBarBg:   lipgloss.Color("235"),
		StatusBarFg:   lipgloss.Color("248"),
		Accent:        lipgloss.Color("255"),
	},
}

var (
	current      = palettes["default"]
	registryOnce sync.Once
)

// Set switches the active palette. Built-in palette names win; any
// other name is looked up in the tint registry. Unknown names keep the
// current palette.
func Set(name string) {
	if p, ok := palettes[name]; ok {
		current = p
		return
	}
	registryOnce.Do(func() { tint.NewDefaultRegistry() })
	if tint.SetTintID(name) {
		current = fromTint(tint.Current())
	}
}

// fromTint maps a terminal color scheme onto the palette slots.
func fromTint(t *tint.Tint) Palette {
	return Palette{
		Border:        t.BrightBlack,
		FocusedBorder: t.BrightCyan,
		ThrottledDim:  t.BrightBlack,
		Title:         t.BrightWhite,
		Body:          t.Fg,
		StatusBarBg:   t.Black,
		StatusBarFg:   t.Fg,
		Accent:        t.BrightPurple,
	}
}

// Current returns the active palette.
func Current() Palette {
	return current
}

// TileStyle returns the bordered box style for a tile. Focused tiles get
// the accent border; throttled tiles are dimmed.
func TileStyle(focused, throttled bool) lipgloss.Style {
	border := current.Border
	if focused {
		border = current.FocusedBorder
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
	if throttled {
		s = s.Foreground(current.ThrottledDim)
	}
	return s
}

// TitleEmphasisSize is the font size at which tile titles render bold.
// Independent of the configured default font sizes: changing those must
// not silently flip title emphasis.
const TitleEmphasisSize = 13.0

// TitleStyle styles a tile's title line. Font size maps to emphasis
// tiers: sizes at or above TitleEmphasisSize get bold.
func TitleStyle(fontSize float64) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(current.Title)
	if fontSize >= TitleEmphasisSize {
		s = s.Bold(true)
	}
	return s
}

// BodyStyle styles tile body text.
func BodyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Body)
}

// StatusBarStyle styles the bottom status line.
func StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(current.StatusBarBg).
		Foreground(current.StatusBarFg).
		Padding(0, 1)
}

// AccentStyle highlights interactive hints.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Accent).Bold(true)
}

// CategoryIcon returns the glyph shown in a tile's title bar.
func CategoryIcon(category strip.Category) string {
	switch category {
	case strip.CategoryNote:
		return "✎"
	case strip.CategoryTask:
		return "◆"
	case strip.CategoryTerminal:
		return ">_"
	default:
		return "·"
	}
}
