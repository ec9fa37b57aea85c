package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/stripdeck/stripdeck/internal/config"
	"github.com/stripdeck/stripdeck/internal/strip"
	"github.com/stripdeck/stripdeck/internal/theme"
)

// Init starts the tick loop and, when a watcher is wired, the config
// reload listener.
func (d *Deck) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd()}
	if d.ConfigUpdates != nil {
		cmds = append(cmds, WaitForConfigCmd(d.ConfigUpdates))
	}
	return tea.Batch(cmds...)
}

// Update handles keyboard, mouse, resize, tick, and config events.
func (d *Deck) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		// Terminal tiles accumulate PTY output between frames; the pass
		// repositions nothing but the render picks up fresh content.
		d.Pass()
		return d, TickCmd()

	case tea.KeyPressMsg:
		return d.handleKey(msg)

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			d.ScrollBy(-config.ScrollStep)
		case tea.MouseWheelDown:
			d.ScrollBy(config.ScrollStep)
		}
		d.Pass()
		return d, nil

	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		// Re-clamp: a wider viewport can make the old offset overshoot.
		d.Workspace.SetScroll(d.clampScroll(d.Workspace.Scroll()))
		d.Pass()
		return d, nil

	case ConfigReloadedMsg:
		d.Config = msg.Config
		theme.Set(msg.Config.Appearance.Theme)
		d.logger.Debug("config reloaded")
		d.Pass()
		return d, WaitForConfigCmd(d.ConfigUpdates)
	}

	return d, nil
}

func (d *Deck) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return d, tea.Quit

	case "tab", "right":
		d.Workspace.FocusNext()
		d.ScrollToFocused()
		d.Pass()

	case "shift+tab", "left":
		d.Workspace.FocusPrev()
		d.ScrollToFocused()
		d.Pass()

	case "h":
		d.ScrollBy(-config.ScrollStep)
		d.Pass()

	case "l":
		d.ScrollBy(config.ScrollStep)
		d.Pass()

	case "home":
		d.Workspace.SetScroll(0)
		d.Pass()

	case "end":
		d.Workspace.SetScroll(d.clampScroll(
			d.Layout.ContentWidth(d.Workspace.Items(), float64(d.Width))))
		d.Pass()

	case "n":
		d.AddItem(strip.CategoryNote, "note")

	case "a":
		d.AddItem(strip.CategoryTask, "tasks")

	case "t":
		d.AddItem(strip.CategoryTerminal, "terminal")

	case "x":
		d.CloseFocused()

	case "+", "=":
		d.ResizeFocused(config.ResizeStep)

	case "-", "_":
		d.ResizeFocused(-config.ResizeStep)

	case "s":
		d.ShowStats = !d.ShowStats
	}

	return d, nil
}
