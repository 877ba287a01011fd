package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
)

const usageBarWidth = 12 // Width of per-mount usage bar

// MountList displays the mounts and tracks the highlighted one
type MountList struct {
	all       []mounts.MountInfo
	visible   []mounts.MountInfo
	showDummy bool
	selected  int
	offset    int
	width     int
	height    int
	focused   bool
}

// NewMountList creates a new mount list component
func NewMountList(infos []mounts.MountInfo, showDummy bool) MountList {
	l := MountList{showDummy: showDummy, focused: true}
	l.SetMounts(infos)
	return l
}

// SetMounts replaces the listed mounts, keeping the selection on the same
// path when it is still present
func (l *MountList) SetMounts(infos []mounts.MountInfo) {
	prev := ""
	if m := l.SelectedMount(); m != nil {
		prev = m.Path
	}
	l.all = infos
	l.filter()

	l.selected = 0
	l.SelectPath(prev)
}

// SelectPath highlights the first listed mount at path and reports whether
// one was found
func (l *MountList) SelectPath(path string) bool {
	found := false
	for i, m := range l.visible {
		if m.Path == path {
			l.selected = i
			found = true
			break
		}
	}
	l.clampOffset()
	return found
}

// SetShowDummy toggles whether pseudo filesystems are listed
func (l *MountList) SetShowDummy(show bool) {
	if l.showDummy == show {
		return
	}
	l.showDummy = show
	l.SetMounts(l.all)
}

// ShowDummy reports whether pseudo filesystems are listed
func (l MountList) ShowDummy() bool {
	return l.showDummy
}

func (l *MountList) filter() {
	l.visible = make([]mounts.MountInfo, 0, len(l.all))
	for _, m := range l.all {
		if m.Dummy && !l.showDummy {
			continue
		}
		l.visible = append(l.visible, m)
	}
}

// Len returns the number of listed mounts
func (l MountList) Len() int {
	return len(l.visible)
}

// Hidden returns how many pseudo filesystems are filtered out
func (l MountList) Hidden() int {
	return len(l.all) - len(l.visible)
}

// Selected returns the index of the highlighted mount
func (l MountList) Selected() int {
	return l.selected
}

// SelectedMount returns the highlighted mount
func (l MountList) SelectedMount() *mounts.MountInfo {
	if l.selected >= 0 && l.selected < len(l.visible) {
		return &l.visible[l.selected]
	}
	return nil
}

// SetSize sets the panel dimensions including border
func (l *MountList) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.clampOffset()
}

// SetFocused sets whether the list has keyboard focus
func (l *MountList) SetFocused(focused bool) {
	l.focused = focused
}

// MoveUp moves selection up
func (l *MountList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
	l.clampOffset()
}

// MoveDown moves selection down
func (l *MountList) MoveDown() {
	if l.selected < len(l.visible)-1 {
		l.selected++
	}
	l.clampOffset()
}

// GoToTop selects the first mount
func (l *MountList) GoToTop() {
	l.selected = 0
	l.clampOffset()
}

// GoToBottom selects the last mount
func (l *MountList) GoToBottom() {
	l.selected = max(len(l.visible)-1, 0)
	l.clampOffset()
}

// PageUp moves selection up by one screen
func (l *MountList) PageUp() {
	l.selected = max(l.selected-l.rows(), 0)
	l.clampOffset()
}

// PageDown moves selection down by one screen
func (l *MountList) PageDown() {
	l.selected = min(l.selected+l.rows(), max(len(l.visible)-1, 0))
	l.clampOffset()
}

// rows is the number of list lines that fit inside the border
func (l MountList) rows() int {
	return max(l.height-2, 1)
}

func (l *MountList) clampOffset() {
	rows := l.rows()
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+rows {
		l.offset = l.selected - rows + 1
	}
	l.offset = max(min(l.offset, len(l.visible)-rows), 0)
}

// View renders the mount list panel
func (l MountList) View() string {
	inner := max(l.width-4, 10) // border + padding

	var content strings.Builder
	if len(l.visible) == 0 {
		content.WriteString(ListItemDummy.Render("no mounts to show"))
	}

	end := min(l.offset+l.rows(), len(l.visible))
	for i := l.offset; i < end; i++ {
		line := renderMountLine(l.visible[i], inner)
		switch {
		case i == l.selected && l.focused:
			line = ListItemSelected.Width(inner).Render(line)
		case l.visible[i].Dummy:
			line = ListItemDummy.Render(line)
		default:
			line = ListItemStyle.Render(line)
		}
		content.WriteString(line)
		if i < end-1 {
			content.WriteString("\n")
		}
	}

	style := ListPanelStyle
	if l.focused {
		style = style.BorderForeground(ColorPrimary)
	}
	return style.Width(l.width - 2).Height(l.height - 2).Render(content.String())
}

// renderMountLine lays out path on the left and usage on the right
func renderMountLine(m mounts.MountInfo, width int) string {
	var right string
	if m.HasCapacity() {
		pct := m.UsedPercent()
		filled := int(pct / 100 * float64(usageBarWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", usageBarWidth-filled)
		right = fmt.Sprintf("%8s %s %3.0f%%", FormatSize(*m.Size), bar, pct)
	} else {
		right = fmt.Sprintf("%8s %s", "-", strings.Repeat(" ", usageBarWidth+5))
	}

	pathWidth := max(width-lipgloss.Width(right)-1, 4)
	path := truncateLeft(m.Path, pathWidth)
	gap := max(width-lipgloss.Width(path)-lipgloss.Width(right), 1)
	return path + strings.Repeat(" ", gap) + right
}

// truncateLeft shortens s from the left so the tail of a path stays visible
func truncateLeft(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[1:]
	}
	return "…" + string(r)
}
