// Package prefs remembers small bits of browser state between runs.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const writeDelay = 2 * time.Second

// Prefs is the state kept in the prefs file
type Prefs struct {
	LastMount string `json:"last_mount,omitempty"`
}

// Manager owns one prefs file. Changes are written after writeDelay of
// quiet, or on Close.
type Manager struct {
	file  string
	delay time.Duration

	mu      sync.Mutex
	state   Prefs
	pending bool
	timer   *time.Timer
}

// NewManager creates a manager backed by the given file
func NewManager(file string) *Manager {
	return &Manager{file: file, delay: writeDelay}
}

// DefaultPath returns the default prefs file path
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mountinfo-prefs.json"
	}
	return filepath.Join(home, ".mountinfo", "prefs.json")
}

// Load reads the prefs file. A missing file leaves the defaults.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse %s: %w", m.file, err)
	}
	m.mu.Lock()
	m.state = p
	m.mu.Unlock()
	return nil
}

// LastMount returns the remembered mount path
func (m *Manager) LastMount() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LastMount
}

// SetLastMount records the highlighted mount
func (m *Manager) SetLastMount(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.LastMount == path {
		return
	}
	m.state.LastMount = path
	m.schedule()
}

// schedule marks the state pending and restarts the write timer. Caller
// holds mu.
func (m *Manager) schedule() {
	m.pending = true
	if m.timer != nil {
		m.timer.Reset(m.delay)
		return
	}
	m.timer = time.AfterFunc(m.delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		_ = m.flushLocked()
	})
}

// Close stops the timer and writes anything still pending
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	return m.flushLocked()
}

// flushLocked writes the state if it changed since the last write. The file
// is replaced by rename so readers never see a partial write. Caller holds mu.
func (m *Manager) flushLocked() error {
	if !m.pending {
		return nil
	}
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(m.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.file); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	m.pending = false
	return nil
}
