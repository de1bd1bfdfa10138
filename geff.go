// Package geff reads and writes cell-tracking graphs to and from the
// Graph Exchange File Format: a chunked, versioned schema over a generic
// block store. It wires together the version gate, axis model, metadata
// codec, and node/edge codecs behind three entry points: ReadGraph,
// WriteGraph, and ReadMetadata.
package geff

import (
	"github.com/live-image-tracking-tools/geff-go/graph"
	"github.com/live-image-tracking-tools/geff-go/internal/options"
	"github.com/live-image-tracking-tools/geff-go/metadata"
	"github.com/live-image-tracking-tools/geff-go/store"
)

// Graph is the in-memory snapshot callers read and write.
type Graph = graph.Graph

// Node and Edge re-export the record types callers build graphs from.
type (
	Node = graph.Node
	Edge = graph.Edge
)

// ReadGraph opens groupPath on s and returns its full snapshot: metadata,
// nodes, and edges, read in that order, so an unsupported or missing
// version fails before any node or edge dataset is opened. (WriteGraph
// writes in the reverse order, metadata last.)
func ReadGraph(s store.Store, groupPath string) (Graph, error) {
	if err := s.Open(); err != nil {
		return Graph{}, err
	}
	defer s.Close()

	m, err := metadata.Read(s, groupPath)
	if err != nil {
		return Graph{}, err
	}

	nodes, err := graph.ReadNodes(s, groupPath)
	if err != nil {
		return Graph{}, err
	}

	edges, err := graph.ReadEdges(s, groupPath)
	if err != nil {
		return Graph{}, err
	}

	return Graph{
		Version:  m.Version,
		Directed: m.Directed,
		Axes:     m.Axes,
		Nodes:    nodes,
		Edges:    edges,
	}, nil
}

// ReadMetadata opens groupPath on s and returns only its metadata,
// without touching the node or edge datasets.
func ReadMetadata(s store.Store, groupPath string) (metadata.Metadata, error) {
	if err := s.Open(); err != nil {
		return metadata.Metadata{}, err
	}
	defer s.Close()

	return metadata.Read(s, groupPath)
}

// WriteGraph writes g to groupPath on s. Nodes and edges are written
// first, metadata last, so a reader that successfully observes the
// version marker can assume the rest of the group is populated. Writing
// is not transactional: a failure partway through leaves groupPath
// partially populated and WriteGraph does not attempt to clean up.
func WriteGraph(s store.Store, groupPath string, g Graph, opts ...WriteOption) error {
	cfg := newWriteConfig()
	if err := options.Apply[*writeConfig](cfg, opts...); err != nil {
		return err
	}

	m := metadata.Metadata{Version: cfg.version, Directed: g.Directed, Axes: g.Axes}
	if err := m.Validate(); err != nil {
		return err
	}

	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	if err := graph.WriteNodes(s, groupPath, g.Nodes, cfg.chunkSize, cfg.compression); err != nil {
		return err
	}

	if err := graph.WriteEdges(s, groupPath, g.Edges, cfg.chunkSize, cfg.compression); err != nil {
		return err
	}

	return metadata.Write(s, groupPath, m)
}
