//go:build windows

package mounts

import (
	"errors"

	"golang.org/x/sys/windows"
)

// volumeNameLen fits a volume GUID path and the first attempt at a list of
// mount paths.
const volumeNameLen = windows.MAX_PATH + 1

// volumeMount is one mount path of a volume, kept in both encodings
type volumeMount struct {
	volume string
	path   string
	pathW  []uint16 // NUL-terminated
}

// walkVolumes calls fn for every mount path of every volume, in the order
// the volume manager returns them. The find handle is closed on every exit.
func walkVolumes(fn func(volumeMount) error) error {
	var name [volumeNameLen]uint16
	h, err := windows.FindFirstVolume(&name[0], uint32(len(name)))
	if err != nil {
		return newError(KindVolumeIter, "", err)
	}
	defer windows.FindVolumeClose(h)

	for {
		if err := walkVolumePaths(name[:], fn); err != nil {
			return err
		}

		err := windows.FindNextVolume(h, &name[0], uint32(len(name)))
		if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
			return nil
		}
		if err != nil {
			return newError(KindVolumeIter, "", err)
		}
	}
}

func walkVolumePaths(nameBuf []uint16, fn func(volumeMount) error) error {
	volume, err := decodeUTF16(wideString(nameBuf))
	if err != nil {
		return err
	}

	list, err := queryGrowable(volumeNameLen, windows.ERROR_MORE_DATA, func(buf []uint16, need *uint32) error {
		return windows.GetVolumePathNamesForVolumeName(&nameBuf[0], &buf[0], uint32(len(buf)), need)
	})
	if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
		// the volume went away between the two calls
		return nil
	}
	if err != nil {
		return newError(KindMountIter, volume, err)
	}

	for _, p := range splitMultiString(list) {
		path, err := decodeUTF16(p)
		if err != nil {
			return err
		}
		pathW := make([]uint16, len(p)+1)
		copy(pathW, p)
		if err := fn(volumeMount{volume: volume, path: path, pathW: pathW}); err != nil {
			return err
		}
	}
	return nil
}

func paths(_ *config) ([]string, error) {
	var out []string
	err := walkVolumes(func(m volumeMount) error {
		out = append(out, m.path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func infos(_ *config) ([]MountInfo, error) {
	var out []MountInfo
	err := walkVolumes(func(m volumeMount) error {
		info, err := describeMount(m, nativeQueries)
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

// volumeQueries are the per-path lookups describeMount makes
type volumeQueries struct {
	freeSpace  func(path *uint16, avail, total, free *uint64) error
	volumeInfo func(path *uint16, label []uint16, flags *uint32, fsName []uint16) error
}

var nativeQueries = volumeQueries{
	freeSpace: windows.GetDiskFreeSpaceEx,
	volumeInfo: func(path *uint16, label []uint16, flags *uint32, fsName []uint16) error {
		var nameMax uint32
		return windows.GetVolumeInformation(path,
			&label[0], uint32(len(label)),
			nil, &nameMax, flags,
			&fsName[0], uint32(len(fsName)))
	},
}

// describeMount queries capacity and volume information for one mount
// path. Either query may fail without failing the call; the entry then keeps
// nil fields and stays dummy unless the other query succeeded.
func describeMount(m volumeMount, q volumeQueries) (MountInfo, error) {
	info := MountInfo{
		Path:   m.path,
		Device: m.volume,
		Dummy:  true,
	}

	var avail, total, free uint64
	if err := q.freeSpace(&m.pathW[0], &avail, &total, &free); err == nil {
		info.Avail = ptr(avail)
		info.Free = ptr(free)
		info.Size = ptr(total)
		info.Dummy = false
	}

	var (
		label  [volumeNameLen]uint16
		fsName [volumeNameLen]uint16
		flags  uint32
	)
	if err := q.volumeInfo(&m.pathW[0], label[:], &flags, fsName[:]); err == nil {
		name, err := decodeUTF16(wideString(label[:]))
		if err != nil {
			return MountInfo{}, err
		}
		format, err := decodeUTF16(wideString(fsName[:]))
		if err != nil {
			return MountInfo{}, err
		}
		info.Name = ptr(name)
		info.Format = ptr(format)
		info.ReadOnly = ptr(flags&windows.FILE_READ_ONLY_VOLUME != 0)
		info.Dummy = false
	}
	return info, nil
}
