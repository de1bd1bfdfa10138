package graph

import (
	"github.com/live-image-tracking-tools/geff-go/blockcodec"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/format"
	"github.com/live-image-tracking-tools/geff-go/store"
)

const (
	pathEdgeIDs      = "edges/ids"
	pathEdgeDistance = "edges/props/distance/values"
	pathEdgeScore    = "edges/props/score/values"
)

// WriteEdges projects edges into edges/ids (2×E, row 0 source, row 1
// target) and the two optional f64 property columns.
func WriteEdges(s store.Store, groupPath string, edges []Edge, chunkSize int, compression format.CompressionType) error {
	e := len(edges)

	idsDims := []int{2, e}
	idsBlock := blockShape(idsDims, chunkSize, 1)
	ids := packMatrixI32(e, 2, func(i, row int) int32 {
		if row == 0 {
			return edges[i].SourceNodeID
		}

		return edges[i].TargetNodeID
	})
	if err := blockcodec.WriteFull(s, join(groupPath, pathEdgeIDs), idsDims, idsBlock, format.Int32, compression, encodeInt32(ids)); err != nil {
		return err
	}

	distances := make([]float64, e)
	scores := make([]float64, e)
	for i, edge := range edges {
		distances[i] = edge.Distance
		scores[i] = edge.Score
	}

	colDims := []int{e}
	colBlock := blockShape(colDims, chunkSize, 0)
	if err := blockcodec.WriteFull(s, join(groupPath, pathEdgeDistance), colDims, colBlock, format.Float64, compression, encodeFloat64(distances)); err != nil {
		return err
	}

	return blockcodec.WriteFull(s, join(groupPath, pathEdgeScore), colDims, colBlock, format.Float64, compression, encodeFloat64(scores))
}

// ReadEdges reads the edge table under groupPath. edges/ids is required;
// the distance and score columns, if absent, default to -1 for every
// edge. Each edge's ID is assigned as its sequential position.
func ReadEdges(s store.Store, groupPath string) ([]Edge, error) {
	idsPath := join(groupPath, pathEdgeIDs)
	if !s.DatasetExists(idsPath) {
		return nil, errs.MissingRequiredDataset(idsPath)
	}

	idBytes, dims, err := blockcodec.ReadFull(s, idsPath, format.Int32)
	if err != nil {
		return nil, err
	}
	if err := validateRank(idsPath, 2, len(dims)); err != nil {
		return nil, err
	}
	if dims[0] != 2 {
		return nil, errs.RankMismatch(idsPath, 2, dims[0])
	}
	e := dims[1]

	idsFlat := blockcodec.NewFlattened(decodeInt32(idBytes), dims)

	distances, err := readOptionalFloat64Column(s, join(groupPath, pathEdgeDistance), e, DefaultDistance)
	if err != nil {
		return nil, err
	}
	scores, err := readOptionalFloat64Column(s, join(groupPath, pathEdgeScore), e, DefaultScore)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, e)
	for i := 0; i < e; i++ {
		row := idsFlat.Row(i)
		edges[i] = Edge{
			ID:           int32(i),
			SourceNodeID: row[0],
			TargetNodeID: row[1],
			Score:        scores[i],
			Distance:     distances[i],
		}
	}

	return edges, nil
}
