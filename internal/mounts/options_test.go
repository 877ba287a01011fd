package mounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := newConfig(nil)
	assert.Equal(t, DefaultMountTable, cfg.mountTable)
	for _, typ := range []string{"proc", "sysfs", "cgroup2", "devpts", "autofs"} {
		assert.True(t, cfg.isPseudo(typ), typ)
	}
	for _, typ := range []string{"ext4", "xfs", "btrfs", "tmpfs", "nfs4", ""} {
		assert.False(t, cfg.isPseudo(typ), typ)
	}
}

func TestWithMountTable(t *testing.T) {
	assert.Equal(t, "/tmp/mounts", newConfig([]Option{WithMountTable("/tmp/mounts")}).mountTable)
	assert.Equal(t, DefaultMountTable, newConfig([]Option{WithMountTable("")}).mountTable)
}

func TestWithPseudoTypesReplaces(t *testing.T) {
	cfg := newConfig([]Option{WithPseudoTypes("overlay")})
	assert.True(t, cfg.isPseudo("overlay"))
	assert.False(t, cfg.isPseudo("proc"))
}

func TestWithExtraPseudoTypesExtends(t *testing.T) {
	cfg := newConfig([]Option{WithExtraPseudoTypes("squashfs", "fuse.gvfsd-fuse")})
	assert.True(t, cfg.isPseudo("squashfs"))
	assert.True(t, cfg.isPseudo("fuse.gvfsd-fuse"))
	assert.True(t, cfg.isPseudo("proc"))
}

func TestConfigsAreIndependent(t *testing.T) {
	a := newConfig([]Option{WithExtraPseudoTypes("squashfs")})
	b := newConfig(nil)
	assert.True(t, a.isPseudo("squashfs"))
	assert.False(t, b.isPseudo("squashfs"))
	assert.NotContains(t, DefaultPseudoTypes, "squashfs")
}
