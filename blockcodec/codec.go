package blockcodec

import (
	"github.com/live-image-tracking-tools/geff-go/endian"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/format"
	"github.com/live-image-tracking-tools/geff-go/store"
)

// wireEngine is the byte order every block the codec writes or reads uses.
// geff-go always writes native little-endian; a store backing a
// big-endian host is free to use the engine it prefers internally, but
// the wire bytes this package produces are little-endian.
var wireEngine = endian.GetLittleEndianEngine()

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}

// copyElements copies an extent-shaped region of elemSize-byte elements
// from src (addressed by srcStrides, offset by srcBase) into dst
// (addressed by dstStrides, offset by dstBase).
func copyElements(elemSize int, extent, srcStrides, srcBase []int, src []byte, dstStrides, dstBase []int, dst []byte) error {
	return IterateGrid(extent, func(local []int) error {
		srcIdx := make([]int, len(local))
		dstIdx := make([]int, len(local))
		for i := range local {
			srcIdx[i] = srcBase[i] + local[i]
			dstIdx[i] = dstBase[i] + local[i]
		}

		srcOff := LinearOffset(srcStrides, srcIdx) * elemSize
		dstOff := LinearOffset(dstStrides, dstIdx) * elemSize
		copy(dst[dstOff:dstOff+elemSize], src[srcOff:srcOff+elemSize])

		return nil
	})
}

// WriteFull creates a dataset at path and writes buf — a dense,
// column-major buffer of et-typed elements shaped exactly dims — as a
// grid of blockSize-shaped blocks, in lexicographic grid order.
func WriteFull(s store.Store, path string, dims, blockSize []int, et format.ElementType, compression format.CompressionType, buf []byte) error {
	attrs := store.DatasetAttrs{Dimensions: dims, BlockSize: blockSize, ElementType: et, Compression: compression}
	if err := s.CreateDataset(path, attrs); err != nil {
		return err
	}

	elemSize := et.Size()
	srcStrides := ColumnMajorStrides(dims)
	counts := BlockCounts(dims, blockSize)

	return IterateGrid(counts, func(coord []int) error {
		blockOffset := BlockOffset(blockSize, coord)
		blockExtent := BlockExtent(dims, blockSize, coord)
		blockBuf := make([]byte, product(blockExtent)*elemSize)
		dstStrides := ColumnMajorStrides(blockExtent)
		zero := make([]int, len(coord))

		if err := copyElements(elemSize, blockExtent, srcStrides, blockOffset, buf, dstStrides, zero, blockBuf); err != nil {
			return errs.BlockIOError(path, coord, err)
		}

		if err := s.WriteBlock(path, attrs, coord, store.Block{Size: blockExtent, Data: blockBuf}); err != nil {
			return errs.BlockIOError(path, coord, err)
		}

		return nil
	})
}

// ReadFull reads the entire dataset at path, coercing each element from
// its on-disk type to dstType, and returns the dense column-major buffer
// together with the dataset's dimensions.
func ReadFull(s store.Store, path string, dstType format.ElementType) ([]byte, []int, error) {
	if !s.DatasetExists(path) {
		return nil, nil, errs.NotFound(path)
	}

	attrs, err := s.DatasetAttributes(path)
	if err != nil {
		return nil, nil, err
	}

	buf, err := ReadRegion(s, path, attrs, FullRegion(attrs.Dimensions), dstType)
	if err != nil {
		return nil, nil, err
	}

	return buf, attrs.Dimensions, nil
}

// ReadRegion reads a (possibly partial) region of a dataset whose attrs
// have already been fetched, coercing each element to dstType. The
// returned buffer is sized to region.Extent.
func ReadRegion(s store.Store, path string, attrs store.DatasetAttrs, region Region, dstType format.ElementType) ([]byte, error) {
	if err := validateRank(path, len(attrs.Dimensions), len(region.Offset)); err != nil {
		return nil, err
	}

	elemSize := dstType.Size()
	dest := make([]byte, product(region.Extent)*elemSize)
	dstStrides := ColumnMajorStrides(region.Extent)
	counts := BlockCounts(attrs.Dimensions, attrs.BlockSize)

	err := IterateGrid(counts, func(coord []int) error {
		blockOffset := BlockOffset(attrs.BlockSize, coord)
		blockExtent := BlockExtent(attrs.Dimensions, attrs.BlockSize, coord)
		blockRegion := Region{Offset: blockOffset, Extent: blockExtent}

		inter, ok := Intersect(blockRegion, region)
		if !ok {
			return nil
		}

		block, err := s.ReadBlock(path, attrs, coord)
		if err != nil {
			return errs.BlockIOError(path, coord, err)
		}

		blockData := block.Data
		if attrs.ElementType != dstType {
			blockData, err = CoerceBuffer(wireEngine, block.Data, attrs.ElementType, dstType, product(block.Size))
			if err != nil {
				return err
			}
		}

		srcStrides := ColumnMajorStrides(blockExtent)
		srcBase := make([]int, len(inter.Offset))
		dstBase := make([]int, len(inter.Offset))
		for i := range inter.Offset {
			srcBase[i] = inter.Offset[i] - blockOffset[i]
			dstBase[i] = inter.Offset[i] - region.Offset[i]
		}

		return copyElements(elemSize, inter.Extent, srcStrides, srcBase, blockData, dstStrides, dstBase, dest)
	})
	if err != nil {
		return nil, err
	}

	return dest, nil
}
