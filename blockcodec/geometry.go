// Package blockcodec implements the dense-buffer ↔ chunked-store shuttle:
// block grid geometry, block/region intersection, element-type coercion,
// and the flattened view used by matrix-shaped node/edge properties.
//
// Everything here is generic over the store it runs against — the node
// and edge codecs (package graph) are the only callers that know about
// specific dataset paths.
package blockcodec

import "github.com/live-image-tracking-tools/geff-go/errs"

// Region is a half-open rectangular region of a dataset: the interval
// along dimension i is [Offset[i], Offset[i]+Extent[i]).
type Region struct {
	Offset []int
	Extent []int
}

// FullRegion returns the region covering an entire dataset of the given
// dimensions.
func FullRegion(dims []int) Region {
	offset := make([]int, len(dims))
	extent := make([]int, len(dims))
	copy(extent, dims)

	return Region{Offset: offset, Extent: extent}
}

// BlockCounts returns, for each dimension, ⌈dims[i]/blockSize[i]⌉ — the
// number of blocks along that dimension.
func BlockCounts(dims, blockSize []int) []int {
	counts := make([]int, len(dims))
	for i := range dims {
		counts[i] = ceilDiv(dims[i], blockSize[i])
	}

	return counts
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}

	return (a + b - 1) / b
}

// BlockOffset returns the dataset-space offset of the block at gridCoord.
func BlockOffset(blockSize, gridCoord []int) []int {
	offset := make([]int, len(gridCoord))
	for i := range gridCoord {
		offset[i] = gridCoord[i] * blockSize[i]
	}

	return offset
}

// BlockExtent returns the actual extent of the block at gridCoord — equal
// to blockSize except at the trailing edge of a dimension, where the
// dataset's short extent is returned instead of a padded full block.
func BlockExtent(dims, blockSize, gridCoord []int) []int {
	extent := make([]int, len(gridCoord))
	for i := range gridCoord {
		remaining := dims[i] - gridCoord[i]*blockSize[i]
		if remaining > blockSize[i] {
			remaining = blockSize[i]
		}
		extent[i] = remaining
	}

	return extent
}

// IterateGrid calls fn once per grid coordinate in lexicographic order
// (the first axis varies slowest), stopping and propagating the first
// error fn returns. This order is the one the codec's write/read passes
// rely on for deterministic block sequencing.
func IterateGrid(counts []int, fn func(coord []int) error) error {
	if len(counts) == 0 {
		return fn(nil)
	}
	for _, c := range counts {
		if c == 0 {
			return nil
		}
	}

	coord := make([]int, len(counts))
	for {
		if err := fn(append([]int(nil), coord...)); err != nil {
			return err
		}

		axis := len(counts) - 1
		for axis >= 0 {
			coord[axis]++
			if coord[axis] < counts[axis] {
				break
			}
			coord[axis] = 0
			axis--
		}
		if axis < 0 {
			return nil
		}
	}
}

// Intersect returns the overlap of a and b and whether it is non-empty.
// Both regions must share a rank.
func Intersect(a, b Region) (Region, bool) {
	if len(a.Offset) != len(b.Offset) {
		return Region{}, false
	}

	offset := make([]int, len(a.Offset))
	extent := make([]int, len(a.Offset))

	for i := range a.Offset {
		lo := max(a.Offset[i], b.Offset[i])
		hi := min(a.Offset[i]+a.Extent[i], b.Offset[i]+b.Extent[i])
		if hi <= lo {
			return Region{}, false
		}
		offset[i] = lo
		extent[i] = hi - lo
	}

	return Region{Offset: offset, Extent: extent}, true
}

// ColumnMajorStrides returns the column-major strides for shape: stride[0]
// = 1, stride[i] = stride[i-1] * shape[i-1].
func ColumnMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	if len(shape) == 0 {
		return strides
	}
	strides[0] = 1
	for i := 1; i < len(shape); i++ {
		strides[i] = strides[i-1] * shape[i-1]
	}

	return strides
}

// LinearOffset computes the column-major linear offset of indices into a
// buffer with the given strides.
func LinearOffset(strides, indices []int) int {
	offset := 0
	for i, idx := range indices {
		offset += idx * strides[i]
	}

	return offset
}

// validateRank fails with RankMismatch if got != want.
func validateRank(path string, want, got int) error {
	if want != got {
		return errs.RankMismatch(path, want, got)
	}

	return nil
}
