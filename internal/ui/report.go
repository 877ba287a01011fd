package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/lumipallolabs/mountinfo/internal/snapshot"
	"gopkg.in/yaml.v3"
)

var reportHeaders = []string{"PATH", "FORMAT", "SIZE", "USED", "AVAIL", "USE%", "FLAGS"}

// FilterDummy drops pseudo filesystems unless all is set
func FilterDummy(infos []mounts.MountInfo, all bool) []mounts.MountInfo {
	if all {
		return infos
	}
	out := make([]mounts.MountInfo, 0, len(infos))
	for _, m := range infos {
		if !m.Dummy {
			out = append(out, m)
		}
	}
	return out
}

// reportRow turns a mount into table cells
func reportRow(m mounts.MountInfo) []string {
	used, pct := "-", "-"
	if m.HasCapacity() {
		used = FormatSize(m.UsedBytes())
		pct = fmt.Sprintf("%.0f%%", m.UsedPercent())
	}

	var flags []string
	switch {
	case m.ReadOnly == nil:
		flags = append(flags, "?")
	case m.IsReadOnly():
		flags = append(flags, "ro")
	default:
		flags = append(flags, "rw")
	}
	if m.Dummy {
		flags = append(flags, "pseudo")
	}

	path := m.Path
	if label := m.Label(); label != "" {
		path += " (" + label + ")"
	}
	return []string{
		path,
		orDash(m.FormatName()),
		FormatOptional(m.Size),
		used,
		FormatOptional(m.Avail),
		pct,
		strings.Join(flags, ","),
	}
}

// RenderTable writes a bordered table of mounts
func RenderTable(w io.Writer, infos []mounts.MountInfo) error {
	rows := make([][]string, 0, len(infos))
	for _, m := range infos {
		rows = append(rows, reportRow(m))
	}

	headerStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	mutedStyle := cellStyle.Foreground(ColorMuted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(reportHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(infos) && infos[row].Dummy {
				return mutedStyle
			}
			if col == 5 && row >= 0 && row < len(infos) && infos[row].HasCapacity() {
				return cellStyle.Foreground(UsageColor(infos[row].UsedPercent()))
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// RenderJSON writes mounts as an indented JSON array
func RenderJSON(w io.Writer, infos []mounts.MountInfo) error {
	if infos == nil {
		infos = []mounts.MountInfo{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

// RenderYAML writes mounts as a YAML sequence
func RenderYAML(w io.Writer, infos []mounts.MountInfo) error {
	if infos == nil {
		infos = []mounts.MountInfo{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(infos); err != nil {
		return err
	}
	return enc.Close()
}

// RenderPlain writes tab separated lines: path, format, size, avail
func RenderPlain(w io.Writer, infos []mounts.MountInfo) error {
	for _, m := range infos {
		size, avail := "-", "-"
		if m.Size != nil {
			size = fmt.Sprint(*m.Size)
		}
		if m.Avail != nil {
			avail = fmt.Sprint(*m.Avail)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Path, orDash(m.FormatName()), size, avail); err != nil {
			return err
		}
	}
	return nil
}

// RenderPaths writes one path per line
func RenderPaths(w io.Writer, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// RenderDiff writes a table of changes since a snapshot
func RenderDiff(w io.Writer, changes []snapshot.Change) error {
	if len(changes) == 0 {
		_, err := fmt.Fprintln(w, "no changes")
		return err
	}

	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{c.Path, c.Kind.String(), FormatSize(c.PrevUsed), FormatSize(c.Used), formatDelta(c.Delta())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers("PATH", "CHANGE", "BEFORE", "NOW", "DELTA").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(changes) {
				return cellStyle
			}
			switch changes[row].Kind {
			case snapshot.Added, snapshot.Grew:
				return cellStyle.Foreground(ColorUsageHigh)
			case snapshot.Removed, snapshot.Shrunk:
				return cellStyle.Foreground(ColorUsageLow)
			}
			return cellStyle.Foreground(ColorMuted)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// formatDelta renders a signed byte count
func formatDelta(d int64) string {
	switch {
	case d > 0:
		return "+" + FormatSize(uint64(d))
	case d < 0:
		return "-" + FormatSize(uint64(-d))
	}
	return "0B"
}
