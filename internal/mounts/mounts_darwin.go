//go:build darwin

package mounts

import (
	"golang.org/x/sys/unix"
)

// getfsstat lists the mounted filesystems. The first call sizes the buffer;
// mounts may change before the second one, so only the records it reports
// filled are used.
func getfsstat() ([]unix.Statfs_t, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, newError(KindGetMntInfo, "", err)
	}
	if n <= 0 {
		return nil, nil
	}

	buf := make([]unix.Statfs_t, n)
	filled, err := unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, newError(KindGetMntInfo, "", err)
	}
	return buf[:min(filled, len(buf))], nil
}

func paths(_ *config) ([]string, error) {
	stats, err := getfsstat()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(stats))
	for i := range stats {
		p, err := decodeUTF8(stats[i].Mntonname[:])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// infos never marks an entry dummy: getfsstat only reports real mounts
func infos(_ *config) ([]MountInfo, error) {
	stats, err := getfsstat()
	if err != nil {
		return nil, err
	}
	out := make([]MountInfo, 0, len(stats))
	for i := range stats {
		info, err := recordInfo(&stats[i])
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func recordInfo(st *unix.Statfs_t) (MountInfo, error) {
	path, err := decodeUTF8(st.Mntonname[:])
	if err != nil {
		return MountInfo{}, err
	}
	fstype, err := decodeUTF8(st.Fstypename[:])
	if err != nil {
		return MountInfo{}, err
	}
	device, err := decodeUTF8(st.Mntfromname[:])
	if err != nil {
		return MountInfo{}, err
	}

	bsize := uint64(st.Bsize)
	return MountInfo{
		Path:     path,
		Device:   device,
		Avail:    ptr(scaleBlocks(st.Bavail, bsize)),
		Free:     ptr(scaleBlocks(st.Bfree, bsize)),
		Size:     ptr(scaleBlocks(st.Blocks, bsize)),
		Format:   ptr(fstype),
		ReadOnly: ptr(st.Flags&unix.MNT_RDONLY != 0),
	}, nil
}
