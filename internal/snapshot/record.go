package snapshot

import (
	"time"

	"github.com/lumipallolabs/mountinfo/internal/mounts"
)

// gob drops zero values, so a pointer to 0 would come back nil. Records keep
// presence in a bitmask instead.
const (
	hasAvail uint8 = 1 << iota
	hasFree
	hasSize
	hasName
	hasFormat
	hasReadOnly
)

type snapshotFile struct {
	Taken  time.Time
	Mounts []record
}

type record struct {
	Path     string
	Device   string
	Avail    uint64
	Free     uint64
	Size     uint64
	Name     string
	Format   string
	ReadOnly bool
	Dummy    bool
	Present  uint8
}

func toRecord(m mounts.MountInfo) record {
	r := record{Path: m.Path, Device: m.Device, Dummy: m.Dummy}
	if m.Avail != nil {
		r.Avail, r.Present = *m.Avail, r.Present|hasAvail
	}
	if m.Free != nil {
		r.Free, r.Present = *m.Free, r.Present|hasFree
	}
	if m.Size != nil {
		r.Size, r.Present = *m.Size, r.Present|hasSize
	}
	if m.Name != nil {
		r.Name, r.Present = *m.Name, r.Present|hasName
	}
	if m.Format != nil {
		r.Format, r.Present = *m.Format, r.Present|hasFormat
	}
	if m.ReadOnly != nil {
		r.ReadOnly, r.Present = *m.ReadOnly, r.Present|hasReadOnly
	}
	return r
}

func (r record) toMountInfo() mounts.MountInfo {
	m := mounts.MountInfo{Path: r.Path, Device: r.Device, Dummy: r.Dummy}
	if r.Present&hasAvail != 0 {
		v := r.Avail
		m.Avail = &v
	}
	if r.Present&hasFree != 0 {
		v := r.Free
		m.Free = &v
	}
	if r.Present&hasSize != 0 {
		v := r.Size
		m.Size = &v
	}
	if r.Present&hasName != 0 {
		v := r.Name
		m.Name = &v
	}
	if r.Present&hasFormat != 0 {
		v := r.Format
		m.Format = &v
	}
	if r.Present&hasReadOnly != 0 {
		v := r.ReadOnly
		m.ReadOnly = &v
	}
	return m
}
