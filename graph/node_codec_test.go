package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/live-image-tracking-tools/geff-go/blockcodec"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/format"
	"github.com/live-image-tracking-tools/geff-go/store"
)

func newOpenStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemStore()
	require.NoError(t, s.Open())
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	return s
}

func sampleNodes() []Node {
	n0 := NewNode(0, 0, 10.5, 20.3, 5.0)
	n0.Color = [4]float64{1, 0, 0, 1}
	n0.Covariance2D = [4]float64{1, 0.2, 0.2, 1.5}

	n1 := NewNode(1, 1, 11.5, 21.3, 6.0)
	n1.SegmentID = 1

	return []Node{n0, n1}
}

func TestWriteReadNodes_RoundTrip(t *testing.T) {
	s := newOpenStore(t)
	want := sampleNodes()

	require.NoError(t, WriteNodes(s, "graph", want, 1000, format.CompressionNone))

	got, err := ReadNodes(s, "graph")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestWriteReadNodes_ChunkBoundary(t *testing.T) {
	s := newOpenStore(t)

	nodes := make([]Node, 15)
	for i := range nodes {
		nodes[i] = NewNode(int32(i), int32(i), float64(i), float64(i), float64(i))
	}

	require.NoError(t, WriteNodes(s, "graph", nodes, 4, format.CompressionNone))

	got, err := ReadNodes(s, "graph")
	require.NoError(t, err)
	require.Len(t, got, 15)
	for i, node := range got {
		require.Equal(t, int32(i), node.ID)
	}
}

// TestReadNodes_MissingOptionalColumn_UsesDefault writes only nodes/ids
// directly (bypassing WriteNodes) to simulate a group whose writer never
// emitted the radius column, then checks the read path fills the default
// without error.
func TestReadNodes_MissingOptionalColumn_UsesDefault(t *testing.T) {
	s := newOpenStore(t)

	ids := []int32{0, 1, 2}
	idsDims := []int{3}
	require.NoError(t, blockcodec.WriteFull(s, "graph/nodes/ids", idsDims, idsDims, format.Int32, format.CompressionNone, encodeInt32(ids)))

	got, err := ReadNodes(s, "graph")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, node := range got {
		require.Equal(t, DefaultRadius, node.Radius)
		require.Equal(t, DefaultSegmentID, node.SegmentID)
		require.Equal(t, DefaultColor, node.Color)
		require.True(t, math.IsNaN(node.X))
		require.Nil(t, node.PolygonX)
	}
}

func TestReadNodes_LengthMismatch(t *testing.T) {
	s := newOpenStore(t)
	nodes := sampleNodes()
	require.NoError(t, WriteNodes(s, "graph", nodes, 1000, format.CompressionNone))

	// Tamper: truncate x to N-1 while ids still reports N.
	truncated := encodeFloat64([]float64{nodes[0].X})
	require.NoError(t, blockcodec.WriteFull(s, "graph/nodes/props/x/values", []int{1}, []int{1}, format.Float64, format.CompressionNone, truncated))

	_, err := ReadNodes(s, "graph")
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestReadNodes_MissingIDs(t *testing.T) {
	s := newOpenStore(t)

	_, err := ReadNodes(s, "graph")
	require.ErrorIs(t, err, errs.ErrMissingRequiredDataset)
}

func TestWriteReadNodes_WithPolygon(t *testing.T) {
	s := newOpenStore(t)

	n0 := NewNode(0, 0, 0, 0, 0)
	n0.PolygonX = []float64{0, 1, 1}
	n0.PolygonY = []float64{0, 0, 1}

	n1 := NewNode(1, 0, 1, 1, 0)
	n1.PolygonX = []float64{2, 3}
	n1.PolygonY = []float64{2, 3}

	nodes := []Node{n0, n1}
	require.NoError(t, WriteNodes(s, "graph", nodes, 1000, format.CompressionNone))

	got, err := ReadNodes(s, "graph")
	require.NoError(t, err)
	require.Equal(t, nodes[0].PolygonX, got[0].PolygonX)
	require.Equal(t, nodes[0].PolygonY, got[0].PolygonY)
	require.Equal(t, nodes[1].PolygonX, got[1].PolygonX)
	require.Equal(t, nodes[1].PolygonY, got[1].PolygonY)
}

func TestWriteReadNodes_NoPolygon_NoPolygonDatasets(t *testing.T) {
	s := newOpenStore(t)
	nodes := sampleNodes()

	require.NoError(t, WriteNodes(s, "graph", nodes, 1000, format.CompressionNone))

	require.False(t, s.DatasetExists("graph/nodes/props/polygon/slices"))
	require.False(t, s.DatasetExists("graph/nodes/props/polygon/values"))
}
