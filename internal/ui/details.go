package ui

import (
	"fmt"
	"strings"

	"github.com/lumipallolabs/mountinfo/internal/mounts"
)

// DetailsPanel shows every field of the highlighted mount
type DetailsPanel struct {
	mount  *mounts.MountInfo
	width  int
	height int
}

// NewDetailsPanel creates an empty details panel
func NewDetailsPanel() DetailsPanel {
	return DetailsPanel{}
}

// SetMount sets the mount to describe; nil clears the panel
func (d *DetailsPanel) SetMount(m *mounts.MountInfo) {
	d.mount = m
}

// SetSize sets the panel dimensions including border
func (d *DetailsPanel) SetSize(w, h int) {
	d.width = w
	d.height = h
}

// View renders the details panel
func (d DetailsPanel) View() string {
	style := DetailsPanelStyle.Width(max(d.width-2, 1)).Height(max(d.height-2, 1))
	if d.mount == nil {
		return style.Render(ListItemDummy.Render("nothing selected"))
	}
	return style.Render(describe(*d.mount))
}

func describe(m mounts.MountInfo) string {
	lines := []string{
		field("Path", m.Path),
		field("Device", orDash(m.Device)),
		field("Label", orDash(m.Label())),
		field("Format", orDash(m.FormatName())),
		field("Size", FormatOptional(m.Size)),
		field("Free", FormatOptional(m.Free)),
		field("Avail", FormatOptional(m.Avail)),
	}
	if m.HasCapacity() {
		lines = append(lines, field("Used", fmt.Sprintf("%s (%.1f%%)", FormatSize(m.UsedBytes()), m.UsedPercent())))
	}

	var badges []string
	switch {
	case m.ReadOnly == nil:
		badges = append(badges, ListItemDummy.Render("access unknown"))
	case m.IsReadOnly():
		badges = append(badges, ReadOnlyBadge.Render("READ-ONLY"))
	}
	if m.Dummy {
		badges = append(badges, DummyBadge.Render("pseudo"))
	}
	if len(badges) > 0 {
		lines = append(lines, "", strings.Join(badges, " "))
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	return DetailsLabel.Render(label) + StatsStyle.Render(value)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
