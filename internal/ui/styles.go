package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSuccess   = lipgloss.Color("#73F59F")
	ColorWarning   = lipgloss.Color("#F5A623")
	ColorDanger    = lipgloss.Color("#F56565")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#3F3F46")
	ColorText      = lipgloss.Color("#E4E4E7")

	// Usage levels
	ColorUsageLow  = lipgloss.Color("#86EFAC") // light green
	ColorUsageMid  = lipgloss.Color("#FDE047") // yellow
	ColorUsageHigh = lipgloss.Color("#FCA5A5") // light red
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F1F23")).
			Padding(0, 1)

	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Mount list
	ListPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ListItemSelected = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	ListItemDummy = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Details panel
	DetailsPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	DetailsLabel = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(10)

	// Help bar
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Badges
	ReadOnlyBadge = lipgloss.NewStyle().
			Background(ColorWarning).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Bold(true)

	DummyBadge = lipgloss.NewStyle().
			Background(ColorBorder).
			Foreground(lipgloss.Color("#A1A1AA")).
			Padding(0, 1)
)

// UsageColor picks a color for a usage percentage
func UsageColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 90:
		return ColorUsageHigh
	case pct >= 70:
		return ColorUsageMid
	default:
		return ColorUsageLow
	}
}

// FormatSize formats bytes to human readable string
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1fTB", float64(bytes)/TB)
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// FormatOptional formats an optional byte count, "-" when absent
func FormatOptional(bytes *uint64) string {
	if bytes == nil {
		return "-"
	}
	return FormatSize(*bytes)
}
