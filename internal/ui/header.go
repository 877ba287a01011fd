package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
)

const headerProgressBarWidth = 20 // Width of disk usage progress bar

// Header shows the app name, mount counts and usage of the highlighted mount
type Header struct {
	mount    *mounts.MountInfo
	shown    int
	hidden   int
	width    int
	loading  bool
	loadedIn string
}

// NewHeader creates a new header component
func NewHeader() Header {
	return Header{}
}

// SetCounts sets how many mounts are listed and how many are filtered out
func (h *Header) SetCounts(shown, hidden int) {
	h.shown = shown
	h.hidden = hidden
}

// SetMount sets the mount whose usage is shown
func (h *Header) SetMount(m *mounts.MountInfo) {
	h.mount = m
}

// SetLoading sets the enumeration state
func (h *Header) SetLoading(loading bool, took string) {
	h.loading = loading
	h.loadedIn = took
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// View renders the header
func (h Header) View() string {
	appName := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C084FC")). // soft violet
		Bold(true).
		Render("MOUNTINFO")

	var counts string
	switch {
	case h.loading:
		counts = StatsStyle.Render("enumerating…")
	case h.hidden > 0:
		counts = StatsStyle.Render(fmt.Sprintf("%d mounts", h.shown)) +
			lipgloss.NewStyle().Foreground(ColorMuted).Render(fmt.Sprintf(" (+%d pseudo)", h.hidden))
	default:
		counts = StatsStyle.Render(fmt.Sprintf("%d mounts", h.shown))
	}
	if h.loadedIn != "" && !h.loading {
		counts += lipgloss.NewStyle().Foreground(ColorMuted).Render(" in " + h.loadedIn)
	}

	var stats, statsCompact string
	if m := h.mount; m != nil && m.HasCapacity() && !h.loading {
		usedPct := m.UsedPercent()
		filled := int(usedPct / 100 * float64(headerProgressBarWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", headerProgressBarWidth-filled)

		stats = StatsStyle.Render(fmt.Sprintf("Used: %s / %s  ", FormatSize(m.UsedBytes()), FormatSize(*m.Size))) +
			lipgloss.NewStyle().Foreground(UsageColor(usedPct)).Render("["+bar+"]") +
			StatsStyle.Render(fmt.Sprintf(" %.0f%%", usedPct))
		statsCompact = StatsStyle.Render(fmt.Sprintf("Used: %s / %s", FormatSize(m.UsedBytes()), FormatSize(*m.Size)))
	}

	sep := lipgloss.NewStyle().Foreground(ColorBorder).Render(" │ ")
	left := appName + sep + counts
	leftWidth := lipgloss.Width(left)

	// For narrow terminals, progressively hide elements
	if h.width < leftWidth+lipgloss.Width(stats)+2 {
		stats = statsCompact
	}
	if h.width < leftWidth+lipgloss.Width(stats)+2 {
		stats = ""
	}

	gap := max(h.width-leftWidth-lipgloss.Width(stats)-2, 1)
	line := left + strings.Repeat(" ", gap) + stats

	return HeaderStyle.MaxHeight(1).Render(line)
}
