package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/stripdeck/stripdeck/internal/config"
	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/theme"
)

// View composites the attached tile views, status bar, and optional
// stats overlay onto a layered canvas.
func (d *Deck) View() tea.View {
	var v tea.View
	v.SetContent(lipgloss.Sprint(d.renderCanvas().Render()))
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (d *Deck) renderCanvas() *lipgloss.Compositor {
	canvas := lipgloss.NewCompositor()
	layers := make([]*lipgloss.Layer, 0, d.Canvas.Len()+2)

	for i, tile := range d.Canvas.Views() {
		frame := tile.Frame()
		// Warm views sit fully outside the viewport; keep them attached
		// but skip painting them.
		if frame.MaxX() <= 0 || frame.MinX() >= float64(d.Width) {
			continue
		}
		id := fmt.Sprintf("tile-%d", i)
		if item := itemOf(tile); item != nil {
			id = item.ID
		}
		layers = append(layers, lipgloss.NewLayer(tile.Render()).
			X(int(frame.MinX())).
			Y(int(frame.Y)).
			Z(config.ZIndexTiles).
			ID(id))
	}

	layers = append(layers, lipgloss.NewLayer(d.renderStatusBar()).
		X(0).
		Y(d.Height-1).
		Z(config.ZIndexStatus).
		ID("status"))

	if d.ShowStats {
		layers = append(layers, lipgloss.NewLayer(d.renderStats()).
			X(1).
			Y(1).
			Z(config.ZIndexOverlay).
			ID("stats"))
	}

	canvas.AddLayers(layers...)
	return canvas
}

func (d *Deck) renderStatusBar() string {
	left := fmt.Sprintf("%d tiles", d.Workspace.Len())
	if item := d.Workspace.FocusedItem(); item != nil {
		left = fmt.Sprintf("%d/%d  %s %s",
			d.Workspace.Focused()+1, d.Workspace.Len(),
			theme.CategoryIcon(item.Category), item.Title)
	}
	if overflow := d.Layout.ContentWidth(d.Workspace.Items(), float64(d.Width)) - float64(d.Width); overflow > 0 {
		left += fmt.Sprintf("  [%d%%]", int(d.Workspace.Scroll()/overflow*100))
	}

	hints := theme.AccentStyle().Render("n") + " note  " +
		theme.AccentStyle().Render("a") + " tasks  " +
		theme.AccentStyle().Render("t") + " term  " +
		theme.AccentStyle().Render("x") + " close  " +
		theme.AccentStyle().Render("q") + " quit"

	bar := theme.StatusBarStyle().Width(d.Width)
	gap := d.Width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 1 {
		return bar.Render(left)
	}
	return bar.Render(left + strings.Repeat(" ", gap) + hints)
}

func (d *Deck) renderStats() string {
	stats := d.Virt.Stats()
	lines := []string{
		fmt.Sprintf("active views  %d", d.Virt.ActiveCount()),
		fmt.Sprintf("attached      %d", d.Canvas.Len()),
		fmt.Sprintf("pool hit/miss %d/%d", stats.PoolHits, stats.PoolMisses),
		fmt.Sprintf("pooled        %d", stats.Pooled),
		fmt.Sprintf("suspended     %d", stats.Suspended),
		fmt.Sprintf("dropped       %d", stats.Dropped),
	}
	for _, cat := range []strip.Category{strip.CategoryNote, strip.CategoryTask, strip.CategoryTerminal} {
		lines = append(lines, fmt.Sprintf("pool[%s] %d", cat, d.Virt.PoolSize(cat)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().Accent).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
