package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/mountinfo/internal/logging"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
)

// Loader enumerates mounts. The app calls it on start and on every refresh.
type Loader func() ([]mounts.MountInfo, error)

// mountsLoadedMsg is sent when an enumeration finishes
type mountsLoadedMsg struct {
	infos []mounts.MountInfo
	err   error
	took  time.Duration
}

// openedMsg reports the result of opening a file manager
type openedMsg struct {
	path string
	err  error
}

// minListWidth keeps the list usable before the details panel takes space
const minListWidth = 40

// App is the main application model
type App struct {
	// Components
	header  Header
	list    MountList
	details DetailsPanel
	help    HelpOverlay
	helpBar help.Model

	// State
	keys    KeyMap
	load    Loader
	loading bool
	err     error

	// Selection memory
	restorePath string
	onSelect    func(path string)

	// Dimensions
	width  int
	height int
}

// NewApp creates a new application instance
func NewApp(load Loader, showDummy bool) App {
	keys := DefaultKeyMap()
	app := App{
		header:  NewHeader(),
		list:    NewMountList(nil, showDummy),
		details: NewDetailsPanel(),
		help:    NewHelpOverlay(keys),
		helpBar: help.New(),
		keys:    keys,
		load:    load,
		loading: true,
	}
	app.header.SetLoading(true, "")
	return app
}

// RememberSelection highlights path after the first load and reports every
// later selection change to onSelect
func (a App) RememberSelection(path string, onSelect func(path string)) App {
	a.restorePath = path
	a.onSelect = onSelect
	return a
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("MOUNTINFO"), a.enumerate())
}

// enumerate runs the loader off the UI goroutine
func (a App) enumerate() tea.Cmd {
	load := a.load
	return func() tea.Msg {
		start := time.Now()
		infos, err := load()
		took := time.Since(start)
		logging.Enum.Printf("enumerated %d mounts in %v (err=%v)", len(infos), took, err)
		return mountsLoadedMsg{infos: infos, err: err, took: took}
	}
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case mountsLoadedMsg:
		a.loading = false
		a.err = msg.err
		if msg.err != nil {
			logging.Debug.Printf("[UI] Enumeration failed: %v", msg.err)
			a.header.SetLoading(false, "")
			return a, nil
		}
		a.list.SetMounts(msg.infos)
		if a.restorePath != "" {
			a.list.SelectPath(a.restorePath)
			a.restorePath = ""
		}
		a.header.SetLoading(false, msg.took.Round(time.Millisecond).String())
		a.syncSelection()
		return a, nil

	case openedMsg:
		if msg.err != nil {
			logging.Debug.Printf("[UI] Failed to open %s: %v", msg.path, msg.err)
			a.err = fmt.Errorf("open %s: %w", msg.path, msg.err)
		}
		return a, nil
	}

	return a, nil
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay takes precedence
	if a.help.IsVisible() {
		if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Back) {
			a.help.SetVisible(false)
		} else if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
		return a, nil

	case key.Matches(msg, a.keys.Back):
		a.err = nil
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.list.MoveUp()
	case key.Matches(msg, a.keys.Down):
		a.list.MoveDown()
	case key.Matches(msg, a.keys.Top):
		a.list.GoToTop()
	case key.Matches(msg, a.keys.Bottom):
		a.list.GoToBottom()
	case key.Matches(msg, a.keys.PageUp):
		a.list.PageUp()
	case key.Matches(msg, a.keys.PageDown):
		a.list.PageDown()

	case key.Matches(msg, a.keys.ToggleDummy):
		a.list.SetShowDummy(!a.list.ShowDummy())

	case key.Matches(msg, a.keys.Refresh):
		if a.loading {
			return a, nil
		}
		a.loading = true
		a.header.SetLoading(true, "")
		return a, a.enumerate()

	case key.Matches(msg, a.keys.Open):
		return a, a.openSelected()

	default:
		return a, nil
	}

	a.syncSelection()
	return a, nil
}

// syncSelection pushes the highlighted mount to header and details
func (a *App) syncSelection() {
	m := a.list.SelectedMount()
	a.header.SetMount(m)
	a.header.SetCounts(a.list.Len(), a.list.Hidden())
	a.details.SetMount(m)
	if m != nil && a.onSelect != nil {
		a.onSelect(m.Path)
	}
}

// openSelected opens the highlighted mount in the platform file manager
func (a App) openSelected() tea.Cmd {
	m := a.list.SelectedMount()
	if m == nil {
		return nil
	}
	path := m.Path
	return func() tea.Msg {
		logging.Debug.Printf("[UI] Opening %s", path)
		return openedMsg{path: path, err: openInFileManager(path)}
	}
}

// updateLayout splits the screen between list and details
func (a *App) updateLayout() {
	a.header.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
	a.helpBar.Width = a.width

	panelHeight := max(a.height-2, 3) // header + help bar
	if a.err != nil {
		panelHeight = max(panelHeight-1, 3)
	}

	listWidth := a.width
	detailsWidth := 0
	if a.width >= minListWidth*2 {
		detailsWidth = a.width * 2 / 5
		listWidth = a.width - detailsWidth
	}
	a.list.SetSize(listWidth, panelHeight)
	a.details.SetSize(detailsWidth, panelHeight)
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.help.IsVisible() {
		return a.help.View()
	}

	var sections []string
	sections = append(sections, a.header.View())

	if a.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(ColorDanger).
			Padding(0, 1)
		sections = append(sections, errStyle.Render(fmt.Sprintf("Error: %v", a.err)))
	}

	// Recompute sizes for the error line without mutating the model
	layout := a
	layout.updateLayout()

	panels := layout.list.View()
	if layout.details.width > 0 {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, panels, layout.details.View())
	}
	sections = append(sections, panels)
	sections = append(sections, HelpStyle.Render(a.helpBar.View(a.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
