package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app, cmd
}

// loadedApp returns an app sized and populated through its own loader
func loadedApp(t *testing.T, load Loader) App {
	t.Helper()
	a := NewApp(load, false)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 30})
	a, _ = update(t, a, a.enumerate()())
	return a
}

func TestAppLoadsMounts(t *testing.T) {
	calls := 0
	a := NewApp(func() ([]mounts.MountInfo, error) {
		calls++
		return sampleMounts(), nil
	}, false)
	assert.True(t, a.loading)
	assert.NotNil(t, a.Init())
	assert.Equal(t, "Loading...", a.View())

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 30})
	msg := a.enumerate()()
	require.IsType(t, mountsLoadedMsg{}, msg)
	a, _ = update(t, a, msg)

	assert.Equal(t, 1, calls)
	assert.False(t, a.loading)
	assert.NoError(t, a.err)
	assert.Equal(t, 3, a.list.Len())
	assert.Equal(t, "/", a.list.SelectedMount().Path)

	view := a.View()
	assert.Contains(t, view, "MOUNTINFO")
	assert.Contains(t, view, "/home")
	assert.NotContains(t, view, "/proc")
}

func TestAppLoadError(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) {
		return nil, errors.New("boom")
	})
	assert.False(t, a.loading)
	assert.EqualError(t, a.err, "boom")
	assert.Contains(t, a.View(), "Error: boom")

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NoError(t, a.err)
}

func TestAppNavigationKeys(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) { return sampleMounts(), nil })

	a, _ = update(t, a, runes("j"))
	assert.Equal(t, "/home", a.list.SelectedMount().Path)
	assert.Equal(t, "/home", a.details.mount.Path)

	a, _ = update(t, a, runes("G"))
	assert.Equal(t, "/mnt/usb", a.list.SelectedMount().Path)
	a, _ = update(t, a, runes("g"))
	assert.Equal(t, "/", a.list.SelectedMount().Path)
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "/home", a.list.SelectedMount().Path)
}

func TestAppToggleDummy(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) { return sampleMounts(), nil })

	a, _ = update(t, a, runes("a"))
	assert.Equal(t, 5, a.list.Len())
	assert.Equal(t, 0, a.header.hidden)
	assert.Contains(t, a.View(), "/proc")

	a, _ = update(t, a, runes("a"))
	assert.Equal(t, 3, a.list.Len())
	assert.Equal(t, 2, a.header.hidden)
}

func TestAppRefresh(t *testing.T) {
	calls := 0
	a := loadedApp(t, func() ([]mounts.MountInfo, error) {
		calls++
		if calls == 1 {
			return sampleMounts(), nil
		}
		return []mounts.MountInfo{{Path: "/"}}, nil
	})

	a, cmd := update(t, a, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, a.loading)

	// A second refresh while loading is ignored
	_, again := update(t, a, runes("r"))
	assert.Nil(t, again)

	a, _ = update(t, a, cmd())
	assert.Equal(t, 2, calls)
	assert.False(t, a.loading)
	assert.Equal(t, 1, a.list.Len())
}

func TestAppHelpOverlay(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) { return sampleMounts(), nil })

	a, _ = update(t, a, runes("?"))
	require.True(t, a.help.IsVisible())
	view := a.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "NAVIGATION")

	// Navigation is swallowed while the overlay is open
	a, _ = update(t, a, runes("j"))
	assert.Equal(t, "/", a.list.SelectedMount().Path)

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, a.help.IsVisible())
}

func TestAppQuit(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) { return nil, nil })
	_, cmd := update(t, a, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppOpenWithoutSelection(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) { return nil, nil })
	_, cmd := update(t, a, runes("o"))
	assert.Nil(t, cmd)
}

func TestAppOpenFailure(t *testing.T) {
	a := loadedApp(t, func() ([]mounts.MountInfo, error) { return sampleMounts(), nil })
	a, _ = update(t, a, openedMsg{path: "/", err: errors.New("no file manager")})
	assert.EqualError(t, a.err, "open /: no file manager")
}

func TestAppLayout(t *testing.T) {
	a := NewApp(func() ([]mounts.MountInfo, error) { return nil, nil }, false)

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.Equal(t, 40, a.details.width)
	assert.Equal(t, 60, a.list.width)

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Zero(t, a.details.width)
	assert.Equal(t, 60, a.list.width)
}

func TestAppRememberSelection(t *testing.T) {
	var selected []string
	a := NewApp(func() ([]mounts.MountInfo, error) { return sampleMounts(), nil }, false).
		RememberSelection("/home", func(path string) { selected = append(selected, path) })

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 30})
	a, _ = update(t, a, a.enumerate()())
	assert.Equal(t, "/home", a.list.SelectedMount().Path)

	a, _ = update(t, a, runes("k"))
	assert.Equal(t, []string{"/home", "/"}, selected)

	// A refresh keeps the current selection instead of restoring again
	a, _ = update(t, a, a.enumerate()())
	assert.Equal(t, "/", a.list.SelectedMount().Path)
}
