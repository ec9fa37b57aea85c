package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/stripdeck/stripdeck/internal/config"
)

// TickerMsg drives the periodic refresh of live tiles.
type TickerMsg time.Time

// ConfigReloadedMsg carries a freshly loaded config from the file
// watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// TickCmd schedules the next refresh tick.
func TickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// WaitForConfigCmd waits for the next config reload. Returns nil when
// the watcher channel closes, which stops the listen loop.
func WaitForConfigCmd(updates <-chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
