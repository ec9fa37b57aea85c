package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	charmlog "charm.land/log/v2"
	"github.com/adrg/xdg"
	"golang.org/x/term"

	"github.com/stripdeck/stripdeck/internal/app"
	"github.com/stripdeck/stripdeck/internal/config"
	"github.com/stripdeck/stripdeck/internal/theme"
)

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stripdeck must run in a terminal")
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}
	if themeName != "" {
		userConfig.Appearance.Theme = themeName
	}
	theme.Set(userConfig.Appearance.Theme)

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	deck := app.NewDeck(userConfig, logger)

	stop := make(chan struct{})
	defer close(stop)
	if updates, err := config.Watch(stop); err == nil {
		deck.ConfigUpdates = updates
	} else {
		logger.Debug("config watcher unavailable", "err", err)
	}

	p := tea.NewProgram(
		deck,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// newLogger returns a file-backed debug logger when --debug is set, and
// a discarding one otherwise. Logging to stdout would corrupt the TUI.
func newLogger() (*charmlog.Logger, func(), error) {
	if !debugMode {
		return charmlog.New(io.Discard), func() {}, nil
	}

	path, err := xdg.StateFile("stripdeck/debug.log")
	if err != nil {
		return nil, nil, fmt.Errorf("resolving log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := charmlog.New(f)
	logger.SetLevel(charmlog.DebugLevel)
	logger.Debug("stripdeck starting", "version", version)
	return logger, func() { _ = f.Close() }, nil
}
