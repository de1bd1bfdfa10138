package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/live-image-tracking-tools/geff-go/compress"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/internal/hash"
)

// storedBlock is a block as MemStore keeps it at rest: compressed bytes
// plus the block's declared extent, so compression stays invisible to
// ReadBlock/WriteBlock callers.
type storedBlock struct {
	size       []int
	compressed []byte
}

// groupEntry holds one group's attributes and datasets.
type groupEntry struct {
	attributes map[string]any
	datasets   map[string]*datasetEntry
}

// datasetEntry holds one dataset's declared attrs and its blocks, keyed by
// a hash of the dataset path and grid coordinate.
type datasetEntry struct {
	attrs  DatasetAttrs
	blocks map[uint64]storedBlock
}

// MemStore is an in-process Store backed by maps, guarded by a single
// mutex per the synchronous, single-writer concurrency model geff-go
// assumes of any backing store. It applies real compression/decompression
// around each block via package compress, so round-tripping through
// MemStore exercises the same codec path a Zarr v2 or N5 binding would.
type MemStore struct {
	mu     sync.Mutex
	opened bool
	groups map[string]*groupEntry
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{groups: make(map[string]*groupEntry)}
}

// Open marks the store ready for use. MemStore holds no external
// resources; Open and Close only set an internal flag, and the other
// methods do not check it, so they also work on a store that is not open.
func (s *MemStore) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opened = true

	return nil
}

// Close marks the store no longer in use.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opened = false

	return nil
}

func (s *MemStore) group(path string) *groupEntry {
	path = groupPath(path)

	g, ok := s.groups[path]
	if !ok {
		g = &groupEntry{attributes: make(map[string]any), datasets: make(map[string]*datasetEntry)}
		s.groups[path] = g
	}

	return g
}

// groupPath derives the owning group path for a dataset path: everything
// up to (and not including) the final path segment.
func groupPath(path string) string {
	path = NormalizePath(path)
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}

	return ""
}

// GroupExists reports whether any attribute or dataset has ever been
// recorded under path.
func (s *MemStore) GroupExists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = NormalizePath(path)
	g, ok := s.groups[path]

	return ok && (len(g.attributes) > 0 || len(g.datasets) > 0)
}

// DatasetExists reports whether a dataset has been created at path.
func (s *MemStore) DatasetExists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = NormalizePath(path)
	g := s.groups[groupPath(path)]
	if g == nil {
		return false
	}
	_, ok := g.datasets[datasetName(path)]

	return ok
}

func datasetName(path string) string {
	path = NormalizePath(path)
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}

	return path
}

// Attributes returns a copy of every attribute stored at path.
func (s *MemStore) Attributes(path string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = NormalizePath(path)
	g, ok := s.groups[path]
	if !ok {
		return map[string]any{}, nil
	}

	out := make(map[string]any, len(g.attributes))
	for k, v := range g.attributes {
		out[k] = v
	}

	return out, nil
}

// GetAttribute fetches one attribute. ok is false when the key is absent.
func (s *MemStore) GetAttribute(path, key string) (value any, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = NormalizePath(path)
	g, exists := s.groups[path]
	if !exists {
		return nil, false, nil
	}

	v, ok := g.attributes[key]

	return v, ok, nil
}

// SetAttribute sets one attribute, creating the group entry if needed.
func (s *MemStore) SetAttribute(path, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = NormalizePath(path)
	g, ok := s.groups[path]
	if !ok {
		g = &groupEntry{attributes: make(map[string]any), datasets: make(map[string]*datasetEntry)}
		s.groups[path] = g
	}
	g.attributes[key] = value

	return nil
}

// DatasetAttributes returns the attrs a dataset was created with.
func (s *MemStore) DatasetAttributes(path string) (DatasetAttrs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = NormalizePath(path)
	g := s.groups[groupPath(path)]
	if g == nil {
		return DatasetAttrs{}, errs.NotFound(path)
	}

	d, ok := g.datasets[datasetName(path)]
	if !ok {
		return DatasetAttrs{}, errs.NotFound(path)
	}

	return d.attrs, nil
}

// CreateDataset creates (or replaces) a dataset at path.
func (s *MemStore) CreateDataset(path string, attrs DatasetAttrs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.group(path)
	g.datasets[datasetName(path)] = &datasetEntry{
		attrs:  attrs,
		blocks: make(map[uint64]storedBlock),
	}

	return nil
}

// ReadBlock fetches and decompresses one grid cell of a dataset.
func (s *MemStore) ReadBlock(path string, attrs DatasetAttrs, gridCoord []int) (Block, error) {
	s.mu.Lock()
	d, err := s.datasetLocked(path)
	if err != nil {
		s.mu.Unlock()

		return Block{}, err
	}
	sb, ok := d.blocks[blockKey(path, gridCoord)]
	s.mu.Unlock()

	if !ok {
		return Block{}, errs.BlockIOError(path, gridCoord, errs.NotFound("block"))
	}

	codec, err := compress.GetCodec(attrs.Compression)
	if err != nil {
		return Block{}, errs.BlockIOError(path, gridCoord, err)
	}

	data, err := codec.Decompress(sb.compressed)
	if err != nil {
		return Block{}, errs.BlockIOError(path, gridCoord, err)
	}

	return Block{Size: sb.size, Data: data}, nil
}

// WriteBlock compresses and stores one grid cell of a dataset.
func (s *MemStore) WriteBlock(path string, attrs DatasetAttrs, gridCoord []int, block Block) error {
	codec, err := compress.GetCodec(attrs.Compression)
	if err != nil {
		return errs.BlockIOError(path, gridCoord, err)
	}

	compressed, err := codec.Compress(block.Data)
	if err != nil {
		return errs.BlockIOError(path, gridCoord, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.datasetLocked(path)
	if err != nil {
		return err
	}

	size := make([]int, len(block.Size))
	copy(size, block.Size)
	d.blocks[blockKey(path, gridCoord)] = storedBlock{size: size, compressed: compressed}

	return nil
}

// datasetLocked looks up a dataset entry. Callers must hold s.mu.
func (s *MemStore) datasetLocked(path string) (*datasetEntry, error) {
	path = NormalizePath(path)
	g := s.groups[groupPath(path)]
	if g == nil {
		return nil, errs.MissingRequiredDataset(path)
	}

	d, ok := g.datasets[datasetName(path)]
	if !ok {
		return nil, errs.MissingRequiredDataset(path)
	}

	return d, nil
}

// blockKey derives a stable map key for one dataset's grid cell.
func blockKey(path string, gridCoord []int) uint64 {
	var b strings.Builder
	b.WriteString(NormalizePath(path))

	for _, c := range gridCoord {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(c))
	}

	return hash.ID(b.String())
}
