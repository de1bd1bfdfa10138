package graph

import (
	"math"
	"strings"

	"github.com/live-image-tracking-tools/geff-go/endian"
)

var wireEngine = endian.GetLittleEndianEngine()

// join concatenates a group path and a dataset path relative to it.
func join(group, sub string) string {
	group = strings.TrimSuffix(group, "/")
	if group == "" {
		return sub
	}

	return group + "/" + sub
}

// blockShape returns the block size for a dataset of the given shape,
// holding every dimension but longDim whole and chunking longDim by
// chunkSize — the convention §4.5/§4.6 describe for matrix-shaped
// properties (e.g. [4, chunk_size] for a [4,N] color array).
func blockShape(shape []int, chunkSize, longDim int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	out[longDim] = chunkSize

	return out
}

func encodeInt32(vals []int32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		wireEngine.PutUint32(buf[i*4:], uint32(v))
	}

	return buf
}

func decodeInt32(buf []byte) []int32 {
	out := make([]int32, len(buf)/4)
	for i := range out {
		out[i] = int32(wireEngine.Uint32(buf[i*4:]))
	}

	return out
}

func encodeFloat64(vals []float64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		wireEngine.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	return buf
}

func decodeFloat64(buf []byte) []float64 {
	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(wireEngine.Uint64(buf[i*8:]))
	}

	return out
}

// packMatrixF64 lays out an (n x rows) table in the on-disk [rows, n]
// column-major convention: element (row r, node j) lands at r + rows*j,
// so Row(j) over the resulting Flattened view recovers node j's values.
func packMatrixF64(n, rows int, get func(node, row int) float64) []float64 {
	buf := make([]float64, rows*n)
	for j := 0; j < n; j++ {
		for r := 0; r < rows; r++ {
			buf[r+rows*j] = get(j, r)
		}
	}

	return buf
}

// packMatrixI32 is packMatrixF64's int32 counterpart, used for edges/ids.
func packMatrixI32(n, rows int, get func(item, row int) int32) []int32 {
	buf := make([]int32, rows*n)
	for j := 0; j < n; j++ {
		for r := 0; r < rows; r++ {
			buf[r+rows*j] = get(j, r)
		}
	}

	return buf
}
