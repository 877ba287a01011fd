package snapshot

import "github.com/lumipallolabs/mountinfo/internal/mounts"

// ChangeKind classifies how a mount differs from the previous snapshot
type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Added
	Removed
	Grew
	Shrunk
)

func (k ChangeKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Grew:
		return "grew"
	case Shrunk:
		return "shrunk"
	}
	return "unknown"
}

// Change describes one mount path across two enumerations. Used and
// PrevUsed are zero when the side lacks capacity data.
type Change struct {
	Path     string
	Kind     ChangeKind
	Used     uint64
	PrevUsed uint64
}

// Delta returns the change in used bytes, positive when usage grew
func (c Change) Delta() int64 {
	return int64(c.Used) - int64(c.PrevUsed)
}

// mountKey identifies the n-th mount stacked on a path. Mount tables list
// overmounts on the same path, so the path alone is not unique.
type mountKey struct {
	path string
	n    int
}

// keyed pairs each mount with its occurrence-indexed key, in input order
func keyed(infos []mounts.MountInfo) []mountKey {
	counts := make(map[string]int, len(infos))
	keys := make([]mountKey, len(infos))
	for i, m := range infos {
		keys[i] = mountKey{path: m.Path, n: counts[m.Path]}
		counts[m.Path]++
	}
	return keys
}

// Diff compares current against previous. The n-th mount on a path is
// matched with the n-th mount on that path in previous. Current mounts come
// first in their own order, followed by removed ones in previous order.
func Diff(current, previous []mounts.MountInfo) []Change {
	prevKeys := keyed(previous)
	prevMap := make(map[mountKey]mounts.MountInfo, len(previous))
	for i, m := range previous {
		prevMap[prevKeys[i]] = m
	}

	seen := make(map[mountKey]bool, len(current))
	changes := make([]Change, 0, len(current))
	for i, key := range keyed(current) {
		m := current[i]
		seen[key] = true
		c := Change{Path: m.Path, Used: m.UsedBytes()}

		prev, exists := prevMap[key]
		if !exists {
			c.Kind = Added
			changes = append(changes, c)
			continue
		}
		c.PrevUsed = prev.UsedBytes()
		switch {
		case !m.HasCapacity() || !prev.HasCapacity():
			c.Kind = Unchanged
		case c.Used > c.PrevUsed:
			c.Kind = Grew
		case c.Used < c.PrevUsed:
			c.Kind = Shrunk
		}
		changes = append(changes, c)
	}

	for i, key := range prevKeys {
		if seen[key] {
			continue
		}
		changes = append(changes, Change{Path: key.path, Kind: Removed, PrevUsed: previous[i].UsedBytes()})
	}
	return changes
}

// Changed drops unchanged entries
func Changed(changes []Change) []Change {
	out := make([]Change, 0, len(changes))
	for _, c := range changes {
		if c.Kind != Unchanged {
			out = append(out, c)
		}
	}
	return out
}
