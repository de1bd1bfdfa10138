// Package store defines the block-store abstraction geff-go is
// parameterized over, plus an in-process reference implementation
// (MemStore) used by this module's own tests and suitable as a drop-in
// backing for callers that do not need an on-disk Zarr/N5 binding.
//
// geff-go never speaks directly to a filesystem or a particular chunked
// array format; every group, dataset, attribute, and block access goes
// through the Store interface, so a Zarr v2 driver and an N5 driver are
// both consumed identically.
package store

import (
	"strings"

	"github.com/live-image-tracking-tools/geff-go/format"
)

// DatasetAttrs describes the shape and typing of one dataset, as recorded
// at create_dataset time and returned verbatim by DatasetAttributes.
type DatasetAttrs struct {
	Dimensions  []int
	BlockSize   []int
	ElementType format.ElementType
	Compression format.CompressionType
}

// Block is one grid cell's worth of raw, element-typed bytes. Size is the
// block's actual extent along each dimension — short at the trailing edge
// of a dataset, full-sized elsewhere. Data holds Size's element count times
// ElementType.Size() bytes, laid out in the block's own column-major order.
// Data is always the decompressed, on-the-wire representation; compression
// is applied and removed by the Store implementation, never seen by a
// caller of ReadBlock/WriteBlock.
type Block struct {
	Size []int
	Data []byte
}

// Store is the block-store surface geff-go consumes. Implementations back
// it with Zarr v2, N5, an in-memory map (MemStore), or anything else that
// can satisfy chunked attribute and block access.
//
// A Store handle is opened at the start of one public library operation
// and closed on every return path, including failures. Two concurrent
// operations against the same group are undefined behavior; operations
// against different groups are independent.
type Store interface {
	// Open acquires whatever resources the backing needs (file handles,
	// connections). It must be called before any other method.
	Open() error
	// Close releases resources acquired by Open. It is safe to call
	// exactly once per Open, on every return path.
	Close() error

	// GroupExists reports whether a group exists at path.
	GroupExists(path string) bool
	// DatasetExists reports whether a dataset exists at path.
	DatasetExists(path string) bool

	// Attributes returns every attribute stored on the group or dataset
	// at path, keyed by name.
	Attributes(path string) (map[string]any, error)
	// GetAttribute fetches one attribute. The second return value is
	// false when the key is absent (not an error).
	GetAttribute(path, key string) (any, bool, error)
	// SetAttribute sets one attribute, creating the group if necessary.
	SetAttribute(path, key string, value any) error

	// DatasetAttributes returns the shape/type/compression a dataset was
	// created with.
	DatasetAttributes(path string) (DatasetAttrs, error)
	// CreateDataset creates a new dataset at path with the given attrs,
	// replacing any dataset already there.
	CreateDataset(path string, attrs DatasetAttrs) error

	// ReadBlock fetches one grid cell of a dataset.
	ReadBlock(path string, attrs DatasetAttrs, gridCoord []int) (Block, error)
	// WriteBlock stores one grid cell of a dataset.
	WriteBlock(path string, attrs DatasetAttrs, gridCoord []int, block Block) error
}

// NormalizePath normalizes a store path to forward slashes with any
// leading slash stripped, per the store contract both Zarr v2 and N5
// bindings are expected to honor identically.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")

	return strings.TrimPrefix(path, "/")
}
