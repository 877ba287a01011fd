// Package snapshot stores enumeration results on disk so later runs can
// report how mounts changed in between.
package snapshot

import (
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/lumipallolabs/mountinfo/internal/mounts"
)

const (
	filePrefix = "mounts_"
	fileSuffix = ".gob.gz"
	timeLayout = "2006-01-02_150405.000000000"
)

// ErrNoSnapshot is returned when the store holds no snapshot yet
var ErrNoSnapshot = errors.New("no snapshot found")

// Snapshot is one saved enumeration
type Snapshot struct {
	Taken  time.Time
	Mounts []mounts.MountInfo
}

// Store handles saving and loading snapshots in a directory
type Store struct {
	dir string
}

// New creates a store in the given directory
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default snapshot directory
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mountinfo", "snapshots")
	}
	return filepath.Join(home, ".mountinfo", "snapshots")
}

// Save writes infos as a snapshot taken at the given time and returns the
// file path. An existing snapshot with the same timestamp is never replaced.
func (s *Store) Save(infos []mounts.MountInfo, taken time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(s.dir, filePrefix+taken.Format(timeLayout)+fileSuffix)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	records := make([]record, len(infos))
	for i, m := range infos {
		records[i] = toRecord(m)
	}
	if err := gob.NewEncoder(gzWriter).Encode(snapshotFile{Taken: taken, Mounts: records}); err != nil {
		gzWriter.Close()
		return "", fmt.Errorf("encode: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return "", fmt.Errorf("flush: %w", err)
	}
	return path, nil
}

// LoadLatest loads the most recent snapshot
func (s *Store) LoadLatest() (*Snapshot, error) {
	files, err := s.files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSnapshot
	}
	return load(files[len(files)-1])
}

// Prune removes all but the newest keep snapshots
func (s *Store) Prune(keep int) (int, error) {
	files, err := s.files()
	if err != nil {
		return 0, err
	}
	removed := 0
	for len(files)-removed > max(keep, 0) {
		if err := os.Remove(files[removed]); err != nil {
			return removed, fmt.Errorf("remove %s: %w", files[removed], err)
		}
		removed++
	}
	return removed, nil
}

// files lists snapshot files oldest first; names sort by timestamp
func (s *Store) files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer gzReader.Close()

	var sf snapshotFile
	if err := gob.NewDecoder(gzReader).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	snap := &Snapshot{Taken: sf.Taken, Mounts: make([]mounts.MountInfo, len(sf.Mounts))}
	for i, r := range sf.Mounts {
		snap.Mounts[i] = r.toMountInfo()
	}
	return snap, nil
}
