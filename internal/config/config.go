package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/stripdeck/stripdeck/internal/strip"
)

// Config is the user-editable configuration, stored as TOML under the
// XDG config directory.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Strip      StripConfig      `toml:"strip"`
	Terminal   TerminalConfig   `toml:"terminal"`
}

// AppearanceConfig controls theming and per-category font sizing.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
	// FontSizes maps a category name to its font size. Views interpret
	// the size as a styling tier; unknown categories fall back to
	// DefaultFontSize.
	FontSizes       map[string]float64 `toml:"font_sizes"`
	DefaultFontSize float64            `toml:"default_font_size"`
}

// StripConfig controls virtualization behavior.
type StripConfig struct {
	PoolSize int `toml:"pool_size"`
}

// TerminalConfig controls terminal tile sessions.
type TerminalConfig struct {
	// Shell overrides $SHELL for new terminal tiles.
	Shell string `toml:"shell"`
	// TailLines is how many output lines a terminal tile retains.
	TailLines int `toml:"tail_lines"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Theme: "default",
			FontSizes: map[string]float64{
				string(strip.CategoryNote):     13,
				string(strip.CategoryTask):     12,
				string(strip.CategoryTerminal): 12,
			},
			DefaultFontSize: 13,
		},
		Strip: StripConfig{
			PoolSize: DefaultPoolSize,
		},
		Terminal: TerminalConfig{
			TailLines: 500,
		},
	}
}

// FontSizeFor resolves a category's font size. Pure; handed to the
// virtualization engine as its font resolver.
func (c *Config) FontSizeFor(category strip.Category) float64 {
	if size, ok := c.Appearance.FontSizes[string(category)]; ok && size > 0 {
		return size
	}
	if c.Appearance.DefaultFontSize > 0 {
		return c.Appearance.DefaultFontSize
	}
	return DefaultConfig().Appearance.DefaultFontSize
}

// GetConfigPath returns the config file location under the XDG config
// directory, creating parent directories as needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("stripdeck/config.toml")
}

// LoadUserConfig reads the user config, merging it over the defaults. A
// missing file is not an error: defaults are returned.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a config file, merging it over the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Strip.PoolSize < 0 {
		cfg.Strip.PoolSize = 0
	}
	return cfg, nil
}

// Save writes the config as TOML to the standard location.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Watch reports config file changes on the returned channel until stop
// is closed. Each event carries the freshly loaded config; parse errors
// are skipped so a half-saved file never clobbers a running session.
func Watch(stop <-chan struct{}) (<-chan *Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting config watcher: %w", err)
	}
	// Watch the directory: editors replace the file, which drops a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching config dir: %w", err)
	}

	updates := make(chan *Config, 1)
	go func() {
		defer close(updates)
		defer watcher.Close() //nolint:errcheck
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFromPath(path)
				if err != nil {
					continue
				}
				select {
				case updates <- cfg:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return updates, nil
}
