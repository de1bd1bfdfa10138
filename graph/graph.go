// Package graph holds the in-memory cell-tracking graph model — Node,
// Edge, and the Graph snapshot that ties them to a version and axis list
// — plus the codecs that project them to and from the chunked column
// datasets a store holds.
package graph

import "github.com/live-image-tracking-tools/geff-go/axis"

// Default field values used when a node property is absent on disk.
var (
	DefaultColor        = [4]float64{1, 1, 1, 1}
	DefaultRadius       = 1.0
	DefaultCovariance2D = [4]float64{1, 0, 0, 1}
	DefaultCovariance3D = [6]float64{1, 0, 0, 1, 0, 1}
)

// DefaultSegmentID marks a node with no track/segment assignment.
const DefaultSegmentID int32 = -1

// DefaultScore and DefaultDistance are the edge property defaults.
const (
	DefaultScore    = -1.0
	DefaultDistance = -1.0
)

// Node is one record of the node table: a tracked object's identity,
// position, and shape at one time point.
type Node struct {
	ID           int32
	T            int32
	X, Y, Z      float64
	Color        [4]float64
	SegmentID    int32
	Radius       float64
	Covariance2D [4]float64
	Covariance3D [6]float64

	// PolygonX, PolygonY hold the (0.4) polygon outline, equal length.
	// Nil when the node carries no polygon.
	PolygonX []float64
	PolygonY []float64
}

// NewNode returns a Node with every optional field set to its documented
// default.
func NewNode(id, t int32, x, y, z float64) Node {
	return Node{
		ID:           id,
		T:            t,
		X:            x,
		Y:            y,
		Z:            z,
		Color:        DefaultColor,
		SegmentID:    DefaultSegmentID,
		Radius:       DefaultRadius,
		Covariance2D: DefaultCovariance2D,
		Covariance3D: DefaultCovariance3D,
	}
}

// HasPolygon reports whether the node carries a (0.4) polygon outline.
func (n Node) HasPolygon() bool {
	return len(n.PolygonX) > 0
}

// Edge is one record of the edge table: a directed (or, if the graph is
// undirected, symmetric) relationship between two node identifiers.
type Edge struct {
	ID           int32
	SourceNodeID int32
	TargetNodeID int32
	Score        float64
	Distance     float64
}

// NewEdge returns an Edge with Score and Distance set to their defaults.
func NewEdge(id, source, target int32) Edge {
	return Edge{ID: id, SourceNodeID: source, TargetNodeID: target, Score: DefaultScore, Distance: DefaultDistance}
}

// IsValid reports whether both endpoints are non-negative node ids.
func (e Edge) IsValid() bool {
	return e.SourceNodeID >= 0 && e.TargetNodeID >= 0
}

// IsSelfLoop reports whether the edge's endpoints are identical.
func (e Edge) IsSelfLoop() bool {
	return e.SourceNodeID == e.TargetNodeID
}

// Graph is the complete in-memory snapshot of one tracked group: its
// schema version, directedness, axis list, and order-preserving node and
// edge lists. The i-th Node is the i-th entry of every on-disk node
// column, and likewise for edges.
type Graph struct {
	Version  string
	Directed bool
	Axes     []axis.Axis
	Nodes    []Node
	Edges    []Edge
}
