package snapshot

import (
	"testing"

	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/stretchr/testify/assert"
)

func mount(path string, size, free uint64) mounts.MountInfo {
	return mounts.MountInfo{Path: path, Size: u64(size), Free: u64(free)}
}

func TestDiff(t *testing.T) {
	previous := []mounts.MountInfo{
		mount("/", 1000, 600),
		mount("/home", 1000, 100),
		mount("/mnt/old", 500, 500),
		{Path: "/proc", Dummy: true},
	}
	current := []mounts.MountInfo{
		mount("/", 1000, 500),     // grew by 100
		mount("/home", 1000, 300), // shrunk by 200
		mount("/mnt/usb", 64, 32), // new
		{Path: "/proc", Dummy: true},
	}

	changes := Diff(current, previous)
	assert.Equal(t, []Change{
		{Path: "/", Kind: Grew, Used: 500, PrevUsed: 400},
		{Path: "/home", Kind: Shrunk, Used: 700, PrevUsed: 900},
		{Path: "/mnt/usb", Kind: Added, Used: 32},
		{Path: "/proc", Kind: Unchanged},
		{Path: "/mnt/old", Kind: Removed},
	}, changes)

	assert.Equal(t, int64(100), changes[0].Delta())
	assert.Equal(t, int64(-200), changes[1].Delta())
	assert.Len(t, Changed(changes), 4)
}

func TestDiffNoPrevious(t *testing.T) {
	changes := Diff([]mounts.MountInfo{mount("/", 10, 5)}, nil)
	assert.Equal(t, []Change{{Path: "/", Kind: Added, Used: 5}}, changes)
}

func TestDiffIdentical(t *testing.T) {
	infos := []mounts.MountInfo{mount("/", 10, 5), mount("/data", 20, 20)}
	assert.Empty(t, Changed(Diff(infos, infos)))
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "grew", Grew.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "unknown", ChangeKind(42).String())
}

func TestDiffStackedMounts(t *testing.T) {
	stacked := []mounts.MountInfo{
		mount("/mnt", 100, 90), // used 10
		mount("/mnt", 100, 10), // used 90
	}
	changes := Diff(stacked, stacked)
	assert.Equal(t, []Change{
		{Path: "/mnt", Kind: Unchanged, Used: 10, PrevUsed: 10},
		{Path: "/mnt", Kind: Unchanged, Used: 90, PrevUsed: 90},
	}, changes)
	assert.Empty(t, Changed(changes))

	// Unmounting the upper mount removes the second occurrence only
	changes = Diff(stacked[:1], stacked)
	assert.Equal(t, []Change{
		{Path: "/mnt", Kind: Unchanged, Used: 10, PrevUsed: 10},
		{Path: "/mnt", Kind: Removed, PrevUsed: 90},
	}, changes)

	// A new mount stacked on top is reported as added
	changes = Diff(append(stacked, mount("/mnt", 50, 50)), stacked)
	assert.Len(t, Changed(changes), 1)
	assert.Equal(t, Change{Path: "/mnt", Kind: Added}, changes[2])
}
