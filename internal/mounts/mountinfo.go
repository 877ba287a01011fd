package mounts

import "math/bits"

// MountInfo describes one mounted filesystem, or on Windows one mount path
// of a volume. Optional fields are nil when the platform does not report
// them or the query for them failed.
type MountInfo struct {
	Path   string `json:"path" yaml:"path"`
	Device string `json:"device,omitempty" yaml:"device,omitempty"`

	Avail *uint64 `json:"avail,omitempty" yaml:"avail,omitempty"` // bytes available to the caller
	Free  *uint64 `json:"free,omitempty" yaml:"free,omitempty"`   // free bytes including reserved blocks
	Size  *uint64 `json:"size,omitempty" yaml:"size,omitempty"`

	Name     *string `json:"name,omitempty" yaml:"name,omitempty"` // volume label
	Format   *string `json:"format,omitempty" yaml:"format,omitempty"`
	ReadOnly *bool   `json:"readonly,omitempty" yaml:"readonly,omitempty"`

	// Dummy marks pseudo filesystems that hold no persistent storage.
	Dummy bool `json:"dummy" yaml:"dummy"`
}

// HasCapacity reports whether size information is present
func (m MountInfo) HasCapacity() bool {
	return m.Size != nil && m.Free != nil
}

// UsedBytes returns bytes used on this filesystem
func (m MountInfo) UsedBytes() uint64 {
	if !m.HasCapacity() || *m.Free > *m.Size {
		return 0
	}
	return *m.Size - *m.Free
}

// UsedPercent returns percentage of the filesystem used
func (m MountInfo) UsedPercent() float64 {
	if !m.HasCapacity() || *m.Size == 0 {
		return 0
	}
	return float64(m.UsedBytes()) / float64(*m.Size) * 100
}

// IsReadOnly reports a known read-only mount; unknown counts as writable
func (m MountInfo) IsReadOnly() bool {
	return m.ReadOnly != nil && *m.ReadOnly
}

// FormatName returns the filesystem type or "" when unknown
func (m MountInfo) FormatName() string {
	if m.Format == nil {
		return ""
	}
	return *m.Format
}

// Label returns the volume label or "" when unknown
func (m MountInfo) Label() string {
	if m.Name == nil {
		return ""
	}
	return *m.Name
}

func ptr[T any](v T) *T {
	return &v
}

// scaleBlocks multiplies a block count by a block size, saturating at the
// maximum uint64 instead of wrapping.
func scaleBlocks(blocks, size uint64) uint64 {
	hi, lo := bits.Mul64(blocks, size)
	if hi != 0 {
		return ^uint64(0)
	}
	return lo
}
