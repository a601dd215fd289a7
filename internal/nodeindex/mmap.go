package nodeindex

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// An entry is lat and lon as fixed-point int32 (value * 1e7), 8 bytes total,
// stored at offset nodeID * 8.
const (
	entrySize = 8
	maxNodeID = 10_000_000_000
)

// MmapIndex maps OSM node IDs to coordinates through a sparse memory-mapped
// file. Lookup is O(1) by offset; disk usage follows the number of nodes
// actually written, not the 80 GB address space.
type MmapIndex struct {
	file *os.File
	data mmap.MMap
	size int64
}

// NewMmapIndex creates the backing file and maps it for writing.
func NewMmapIndex(path string) (*MmapIndex, error) {
	size := int64(maxNodeID) * entrySize

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create index file: %w", err)
	}

	// Sparse on any reasonable filesystem.
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size index file: %w", err)
	}

	data, err := mmap.MapRegion(f, int(size), mmap.RDWR, 0, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to map index file: %w", err)
	}

	return &MmapIndex{file: f, data: data, size: size}, nil
}

// Put stores a node's coordinates. Out-of-range IDs are ignored.
func (m *MmapIndex) Put(nodeID int64, lat, lon float64) {
	if nodeID < 0 || nodeID >= maxNodeID {
		return
	}
	offset := nodeID * entrySize
	binary.LittleEndian.PutUint32(m.data[offset:], uint32(int32(lat*1e7)))
	binary.LittleEndian.PutUint32(m.data[offset+4:], uint32(int32(lon*1e7)))
}

// Get retrieves a node's coordinates. ok is false when the node was never
// written. A node at exactly (0,0) is indistinguishable from an unwritten
// entry; that point is in the Atlantic and the miss is accepted.
func (m *MmapIndex) Get(nodeID int64) (lat, lon float64, ok bool) {
	if nodeID < 0 || nodeID >= maxNodeID {
		return 0, 0, false
	}
	offset := nodeID * entrySize

	latInt := int32(binary.LittleEndian.Uint32(m.data[offset:]))
	lonInt := int32(binary.LittleEndian.Uint32(m.data[offset+4:]))
	if latInt == 0 && lonInt == 0 {
		return 0, 0, false
	}
	return float64(latInt) / 1e7, float64(lonInt) / 1e7, true
}

// Close unmaps the index and closes its backing file.
func (m *MmapIndex) Close() error {
	if err := m.data.Unmap(); err != nil {
		m.file.Close()
		return err
	}
	return m.file.Close()
}
