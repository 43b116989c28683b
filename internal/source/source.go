package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrNotFound reports that the source file does not exist.
var ErrNotFound = errors.New("source not found")

// Snapshot is one read of the source file.
type Snapshot struct {
	Data    []byte
	ModTime time.Time
	Size    int64
	Digest  uint64
}

// Marker identifies the content of a snapshot. Two reads with equal markers
// carry the same bytes, whatever their modification times.
type Marker struct {
	Size   int64
	Digest uint64
}

// Marker returns the content marker of the snapshot.
func (s Snapshot) Marker() Marker {
	return Marker{Size: s.Size, Digest: s.Digest}
}

// Read loads the whole file at path.
func Read(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Snapshot{}, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return Snapshot{}, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return Snapshot{}, fmt.Errorf("read source: %s is a directory", path)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read source: %w", err)
	}
	return Snapshot{
		Data:    data,
		ModTime: info.ModTime(),
		Size:    int64(len(data)),
		Digest:  xxhash.Sum64(data),
	}, nil
}
