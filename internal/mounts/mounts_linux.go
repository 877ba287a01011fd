//go:build linux

package mounts

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

var errNulInPath = errors.New("mount path contains NUL")

// walkTable opens the configured mount table and feeds its entries to fn
func walkTable(cfg *config, fn func(tableEntry) error) error {
	f, err := os.Open(cfg.mountTable)
	if err != nil {
		return newError(KindIO, cfg.mountTable, err)
	}
	defer f.Close()

	return parseMountTable(f, fn)
}

func paths(cfg *config) ([]string, error) {
	var out []string
	err := walkTable(cfg, func(e tableEntry) error {
		out = append(out, e.path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func infos(cfg *config) ([]MountInfo, error) {
	var out []MountInfo
	err := walkTable(cfg, func(e tableEntry) error {
		info, err := statMount(e, cfg.isPseudo(e.fstype))
		if err != nil {
			return err
		}
		out = append(out, info)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// statMount fills capacity and flags for one table entry. Total size is
// counted in fragments, free and available space in blocks.
func statMount(e tableEntry, dummy bool) (MountInfo, error) {
	if strings.IndexByte(e.path, 0) >= 0 {
		return MountInfo{}, newError(KindPathParse, e.path, errNulInPath)
	}

	var st unix.Statfs_t
	if err := unix.Statfs(e.path, &st); err != nil {
		return MountInfo{}, newError(KindStat, e.path, err)
	}

	bsize := uint64(st.Bsize)
	frsize := uint64(st.Frsize)
	if frsize == 0 {
		// kernels before 2.6 leave f_frsize unset
		frsize = bsize
	}
	info := MountInfo{
		Path:     e.path,
		Device:   e.device,
		Avail:    ptr(scaleBlocks(st.Bavail, bsize)),
		Free:     ptr(scaleBlocks(st.Bfree, bsize)),
		Size:     ptr(scaleBlocks(st.Blocks, frsize)),
		ReadOnly: ptr(uint64(st.Flags)&unix.ST_RDONLY != 0),
		Dummy:    dummy,
	}
	if e.fstype != "" {
		info.Format = ptr(e.fstype)
	}
	return info, nil
}
