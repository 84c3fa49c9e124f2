package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Manager provides thread-safe, read-only access to the live configuration.
// The file is never written by the server; external edits are picked up by
// WatchConfig and applied only when they validate.
type Manager interface {
	// GetConfig returns the current configuration
	GetConfig() *Config

	// ReloadConfig reads the file again and swaps it in when valid
	ReloadConfig() error

	// WatchConfig reloads on file changes until ctx is cancelled
	WatchConfig(ctx context.Context) error

	// Close releases the file watcher
	Close() error
}

type manager struct {
	mu         sync.RWMutex
	config     *Config
	configPath string
	onReload   []func(*Config)

	watcher   *fsnotify.Watcher
	watcherMu sync.Mutex
}

// ManagerOption customizes a Manager
type ManagerOption func(*manager)

// WithReloadHook registers a callback invoked after a successful reload
func WithReloadHook(hook func(*Config)) ManagerOption {
	return func(m *manager) {
		m.onReload = append(m.onReload, hook)
	}
}

// NewManager loads the configuration at configPath and returns a Manager for it.
func NewManager(configPath string, opts ...ManagerOption) (Manager, error) {
	m := &manager{configPath: configPath}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.ReloadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load initial configuration: %w", err)
	}

	return m, nil
}

// NewStaticManager wraps an already loaded configuration. Reloads are no-ops.
func NewStaticManager(cfg *Config) Manager {
	return &manager{config: cfg}
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) ReloadConfig() error {
	if m.configPath == "" {
		return nil
	}

	newConfig, err := LoadConfig(WithConfigPath(m.configPath))
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.config = newConfig
	m.mu.Unlock()

	for _, hook := range m.onReload {
		hook(newConfig)
	}

	slog.Info("Configuration loaded", "path", m.configPath)
	return nil
}

func (m *manager) WatchConfig(ctx context.Context) error {
	if m.configPath == "" {
		<-ctx.Done()
		return nil
	}

	m.watcherMu.Lock()
	if m.watcher != nil {
		m.watcherMu.Unlock()
		return fmt.Errorf("config watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		m.watcherMu.Unlock()
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	m.watcher = watcher
	m.watcherMu.Unlock()

	// Editors and volume mounts replace the file by rename, which drops a
	// watch on the file itself. Watch the directory and filter by name.
	dir, name := filepath.Split(filepath.Clean(m.configPath))
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	slog.Info("Watching configuration file", "path", m.configPath)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping config file watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := m.ReloadConfig(); err != nil {
					// keep serving the last good configuration
					slog.Error("Failed to reload configuration", "path", m.configPath, "error", err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", "error", err)
		}
	}
}

func (m *manager) Close() error {
	m.watcherMu.Lock()
	defer m.watcherMu.Unlock()

	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
		m.watcher = nil
	}

	return nil
}
