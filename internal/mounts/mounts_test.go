//go:build linux || darwin || windows

package mounts

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mib = 1 << 20

func isRoot(path string) bool {
	if runtime.GOOS == "windows" {
		return len(path) == 3 && path[1] == ':' && path[2] == '\\'
	}
	return path == "/"
}

func TestPathsContainsRoot(t *testing.T) {
	paths, err := Paths()
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	found := false
	for _, p := range paths {
		assert.NotEmpty(t, p)
		if isRoot(p) {
			found = true
		}
	}
	assert.True(t, found, "no root path in %v", paths)
}

func TestInfosRootCapacity(t *testing.T) {
	infos, err := Infos()
	require.NoError(t, err)
	require.NotEmpty(t, infos)

	var root *MountInfo
	for i := range infos {
		info := infos[i]
		assert.NotEmpty(t, info.Path)
		if !isRoot(info.Path) {
			continue
		}
		// the last root entry is the one visible to the process
		root = &infos[i]
		if info.Size != nil && info.Avail != nil {
			assert.LessOrEqual(t, *info.Avail, *info.Size)
		}
		if info.Size != nil && info.Free != nil {
			assert.LessOrEqual(t, *info.Free, *info.Size)
		}
	}
	require.NotNil(t, root, "no root entry")
	require.NotNil(t, root.Size)
	assert.Greater(t, *root.Size, uint64(mib))
}

func TestPathsMatchInfos(t *testing.T) {
	paths, err := Paths()
	require.NoError(t, err)
	infos, err := Infos()
	require.NoError(t, err)

	infoPaths := make([]string, 0, len(infos))
	for _, info := range infos {
		infoPaths = append(infoPaths, info.Path)
	}
	assert.ElementsMatch(t, paths, infoPaths)
}

func TestRepeatedCallsAgree(t *testing.T) {
	first, err := Paths()
	require.NoError(t, err)
	second, err := Paths()
	require.NoError(t, err)
	assert.ElementsMatch(t, first, second)
}
