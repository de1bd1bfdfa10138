package graph

import (
	"math"

	"github.com/live-image-tracking-tools/geff-go/blockcodec"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/format"
	"github.com/live-image-tracking-tools/geff-go/internal/pool"
	"github.com/live-image-tracking-tools/geff-go/store"
)

const (
	pathNodeIDs          = "nodes/ids"
	pathNodeT            = "nodes/props/t/values"
	pathNodeX            = "nodes/props/x/values"
	pathNodeY            = "nodes/props/y/values"
	pathNodeZ            = "nodes/props/z/values"
	pathNodeColor        = "nodes/props/color/values"
	pathNodeTrackID      = "nodes/props/track_id/values"
	pathNodeRadius       = "nodes/props/radius/values"
	pathNodeCovariance2D = "nodes/props/covariance2d/values"
	pathNodeCovariance3D = "nodes/props/covariance3d/values"
	pathPolygonSlices    = "nodes/props/polygon/slices"
	pathPolygonValues    = "nodes/props/polygon/values"
)

// WriteNodes projects nodes into the column datasets under groupPath,
// using chunkSize as the block extent along the record axis. Polygon
// tables are written only if at least one node carries a polygon.
func WriteNodes(s store.Store, groupPath string, nodes []Node, chunkSize int, compression format.CompressionType) error {
	n := len(nodes)

	ids := make([]int32, n)
	ts := make([]int32, n)
	trackIDs := make([]int32, n)

	xs, releaseXs := pool.GetFloat64Slice(n)
	defer releaseXs()
	ys, releaseYs := pool.GetFloat64Slice(n)
	defer releaseYs()
	zs, releaseZs := pool.GetFloat64Slice(n)
	defer releaseZs()
	radii, releaseRadii := pool.GetFloat64Slice(n)
	defer releaseRadii()

	for i, node := range nodes {
		ids[i] = node.ID
		ts[i] = node.T
		xs[i] = node.X
		ys[i] = node.Y
		zs[i] = node.Z
		trackIDs[i] = node.SegmentID
		radii[i] = node.Radius
	}

	writes := []struct {
		path string
		et   format.ElementType
		dims []int
		long int
		data []byte
	}{
		{join(groupPath, pathNodeIDs), format.Int32, []int{n}, 0, encodeInt32(ids)},
		{join(groupPath, pathNodeT), format.Int32, []int{n}, 0, encodeInt32(ts)},
		{join(groupPath, pathNodeX), format.Float64, []int{n}, 0, encodeFloat64(xs)},
		{join(groupPath, pathNodeY), format.Float64, []int{n}, 0, encodeFloat64(ys)},
		{join(groupPath, pathNodeZ), format.Float64, []int{n}, 0, encodeFloat64(zs)},
		{join(groupPath, pathNodeTrackID), format.Int32, []int{n}, 0, encodeInt32(trackIDs)},
		{join(groupPath, pathNodeRadius), format.Float64, []int{n}, 0, encodeFloat64(radii)},
		{
			join(groupPath, pathNodeColor), format.Float64, []int{4, n}, 1,
			encodeFloat64(packMatrixF64(n, 4, func(j, r int) float64 { return nodes[j].Color[r] })),
		},
		{
			join(groupPath, pathNodeCovariance2D), format.Float64, []int{4, n}, 1,
			encodeFloat64(packMatrixF64(n, 4, func(j, r int) float64 { return nodes[j].Covariance2D[r] })),
		},
		{
			join(groupPath, pathNodeCovariance3D), format.Float64, []int{6, n}, 1,
			encodeFloat64(packMatrixF64(n, 6, func(j, r int) float64 { return nodes[j].Covariance3D[r] })),
		},
	}

	for _, w := range writes {
		blockSize := blockShape(w.dims, chunkSize, w.long)
		if err := blockcodec.WriteFull(s, w.path, w.dims, blockSize, w.et, compression, w.data); err != nil {
			return err
		}
	}

	return writePolygons(s, groupPath, nodes, chunkSize, compression)
}

// writePolygons writes the polygon slice/value tables as [2,N]/[2,V]
// column-major matrices (small dimension leading), the same convention
// edges/ids uses, so they can be read back with Flattened.Row.
func writePolygons(s store.Store, groupPath string, nodes []Node, chunkSize int, compression format.CompressionType) error {
	hasAny := false
	for _, node := range nodes {
		if node.HasPolygon() {
			hasAny = true

			break
		}
	}
	if !hasAny {
		return nil
	}

	n := len(nodes)
	starts := make([]int32, n)
	ends := make([]int32, n)
	var xs, ys []float64

	prefix := 0
	for i, node := range nodes {
		starts[i] = int32(prefix)
		ends[i] = int32(prefix + len(node.PolygonX))
		xs = append(xs, node.PolygonX...)
		ys = append(ys, node.PolygonY...)
		prefix += len(node.PolygonX)
	}

	sliceDims := []int{2, n}
	sliceBlock := blockShape(sliceDims, chunkSize, 1)
	slices := packMatrixI32(n, 2, func(i, row int) int32 {
		if row == 0 {
			return starts[i]
		}

		return ends[i]
	})
	if err := blockcodec.WriteFull(s, join(groupPath, pathPolygonSlices), sliceDims, sliceBlock, format.Int32, compression, encodeInt32(slices)); err != nil {
		return err
	}

	v := len(xs)
	valueDims := []int{2, v}
	valueBlock := blockShape(valueDims, chunkSize, 1)
	values := packMatrixF64(v, 2, func(k, row int) float64 {
		if row == 0 {
			return xs[k]
		}

		return ys[k]
	})

	return blockcodec.WriteFull(s, join(groupPath, pathPolygonValues), valueDims, valueBlock, format.Float64, compression, encodeFloat64(values))
}

// ReadNodes reads the node table under groupPath. nodes/ids is the only
// required dataset; every other column, if absent, contributes its
// documented default to every node rather than failing.
func ReadNodes(s store.Store, groupPath string) ([]Node, error) {
	idsPath := join(groupPath, pathNodeIDs)
	if !s.DatasetExists(idsPath) {
		return nil, errs.MissingRequiredDataset(idsPath)
	}

	idBytes, dims, err := blockcodec.ReadFull(s, idsPath, format.Int32)
	if err != nil {
		return nil, err
	}
	if err := validateRank(idsPath, 1, len(dims)); err != nil {
		return nil, err
	}
	n := dims[0]
	ids := decodeInt32(idBytes)

	ts, err := readOptionalInt32Column(s, join(groupPath, pathNodeT), n, 0)
	if err != nil {
		return nil, err
	}
	xs, err := readOptionalFloat64Column(s, join(groupPath, pathNodeX), n, math.NaN())
	if err != nil {
		return nil, err
	}
	ys, err := readOptionalFloat64Column(s, join(groupPath, pathNodeY), n, math.NaN())
	if err != nil {
		return nil, err
	}
	zs, err := readOptionalFloat64Column(s, join(groupPath, pathNodeZ), n, math.NaN())
	if err != nil {
		return nil, err
	}
	trackIDs, err := readOptionalInt32Column(s, join(groupPath, pathNodeTrackID), n, DefaultSegmentID)
	if err != nil {
		return nil, err
	}
	radii, err := readOptionalFloat64Column(s, join(groupPath, pathNodeRadius), n, DefaultRadius)
	if err != nil {
		return nil, err
	}
	colors, err := readOptionalMatrixF64(s, join(groupPath, pathNodeColor), n, 4, DefaultColor[:])
	if err != nil {
		return nil, err
	}
	cov2d, err := readOptionalMatrixF64(s, join(groupPath, pathNodeCovariance2D), n, 4, DefaultCovariance2D[:])
	if err != nil {
		return nil, err
	}
	cov3d, err := readOptionalMatrixF64(s, join(groupPath, pathNodeCovariance3D), n, 6, DefaultCovariance3D[:])
	if err != nil {
		return nil, err
	}

	polyX, polyY, err := readPolygons(s, groupPath, n)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		node := Node{
			ID:        ids[i],
			T:         ts[i],
			X:         xs[i],
			Y:         ys[i],
			Z:         zs[i],
			SegmentID: trackIDs[i],
			Radius:    radii[i],
		}
		copy(node.Color[:], colors[i])
		copy(node.Covariance2D[:], cov2d[i])
		copy(node.Covariance3D[:], cov3d[i])
		if polyX != nil && len(polyX[i]) > 0 {
			node.PolygonX = polyX[i]
			node.PolygonY = polyY[i]
		}
		nodes[i] = node
	}

	return nodes, nil
}

func validateRank(path string, want, got int) error {
	if want != got {
		return errs.RankMismatch(path, want, got)
	}

	return nil
}

func readOptionalInt32Column(s store.Store, path string, n int, def int32) ([]int32, error) {
	if !s.DatasetExists(path) {
		out := make([]int32, n)
		for i := range out {
			out[i] = def
		}

		return out, nil
	}

	buf, dims, err := blockcodec.ReadFull(s, path, format.Int32)
	if err != nil {
		return nil, err
	}
	if err := validateRank(path, 1, len(dims)); err != nil {
		return nil, err
	}
	if dims[0] != n {
		return nil, errs.LengthMismatch(path, n, dims[0])
	}

	return decodeInt32(buf), nil
}

func readOptionalFloat64Column(s store.Store, path string, n int, def float64) ([]float64, error) {
	if !s.DatasetExists(path) {
		out := make([]float64, n)
		for i := range out {
			out[i] = def
		}

		return out, nil
	}

	buf, dims, err := blockcodec.ReadFull(s, path, format.Float64)
	if err != nil {
		return nil, err
	}
	if err := validateRank(path, 1, len(dims)); err != nil {
		return nil, err
	}
	if dims[0] != n {
		return nil, errs.LengthMismatch(path, n, dims[0])
	}

	return decodeFloat64(buf), nil
}

// readOptionalMatrixF64 reads a [rows, n] on-disk matrix, returning one
// slice of length rows per node. If the dataset is absent, every node
// gets a copy of def.
func readOptionalMatrixF64(s store.Store, path string, n, rows int, def []float64) ([][]float64, error) {
	out := make([][]float64, n)

	if !s.DatasetExists(path) {
		for i := range out {
			cp := make([]float64, rows)
			copy(cp, def)
			out[i] = cp
		}

		return out, nil
	}

	buf, dims, err := blockcodec.ReadFull(s, path, format.Float64)
	if err != nil {
		return nil, err
	}
	if err := validateRank(path, 2, len(dims)); err != nil {
		return nil, err
	}
	if dims[0] != rows || dims[1] != n {
		return nil, errs.LengthMismatch(path, n, dims[1])
	}

	f := blockcodec.NewFlattened(decodeFloat64(buf), dims)
	for j := 0; j < n; j++ {
		out[j] = f.Row(j)
	}

	return out, nil
}

// readPolygons reads the [2,N] slices table and [2,V] values table back
// (start/end on row 0/1, x/y on row 0/1), matching writePolygons' layout.
func readPolygons(s store.Store, groupPath string, n int) (polyX, polyY [][]float64, err error) {
	slicesPath := join(groupPath, pathPolygonSlices)
	if !s.DatasetExists(slicesPath) {
		return nil, nil, nil
	}

	sliceBytes, sliceDims, err := blockcodec.ReadFull(s, slicesPath, format.Int32)
	if err != nil {
		return nil, nil, err
	}
	if err := validateRank(slicesPath, 2, len(sliceDims)); err != nil {
		return nil, nil, err
	}
	if sliceDims[0] != 2 || sliceDims[1] != n {
		return nil, nil, errs.LengthMismatch(slicesPath, n, sliceDims[1])
	}

	slicesFlat := blockcodec.NewFlattened(decodeInt32(sliceBytes), sliceDims)

	valuesPath := join(groupPath, pathPolygonValues)
	if !s.DatasetExists(valuesPath) {
		return nil, nil, errs.MissingRequiredDataset(valuesPath)
	}

	valueBytes, valueDims, err := blockcodec.ReadFull(s, valuesPath, format.Float64)
	if err != nil {
		return nil, nil, err
	}
	if err := validateRank(valuesPath, 2, len(valueDims)); err != nil {
		return nil, nil, err
	}
	if valueDims[0] != 2 {
		return nil, nil, errs.RankMismatch(valuesPath, 2, valueDims[0])
	}

	valuesFlat := blockcodec.NewFlattened(decodeFloat64(valueBytes), valueDims)

	polyX = make([][]float64, n)
	polyY = make([][]float64, n)
	for i := 0; i < n; i++ {
		row := slicesFlat.Row(i)
		start, end := int(row[0]), int(row[1])
		xs := make([]float64, 0, end-start)
		ys := make([]float64, 0, end-start)
		for v := start; v < end; v++ {
			vertex := valuesFlat.Row(v)
			xs = append(xs, vertex[0])
			ys = append(ys, vertex[1])
		}
		polyX[i] = xs
		polyY[i] = ys
	}

	return polyX, polyY, nil
}
