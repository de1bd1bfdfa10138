package geff

import (
	"github.com/live-image-tracking-tools/geff-go/format"
	"github.com/live-image-tracking-tools/geff-go/internal/options"
	"github.com/live-image-tracking-tools/geff-go/version"
)

// DefaultChunkSize is the block extent along the record axis when a
// caller does not request one explicitly.
const DefaultChunkSize = 1000

type writeConfig struct {
	chunkSize   int
	version     string
	compression format.CompressionType
}

func newWriteConfig() *writeConfig {
	return &writeConfig{
		chunkSize:   DefaultChunkSize,
		version:     version.Default,
		compression: format.CompressionZstd,
	}
}

// WriteOption configures WriteGraph.
type WriteOption = options.Option[*writeConfig]

// WithChunkSize sets the block extent used along the record axis of every
// dataset WriteGraph emits.
func WithChunkSize(n int) WriteOption {
	return options.NoError(func(c *writeConfig) { c.chunkSize = n })
}

// WithVersion overrides the geff_version string WriteGraph stamps on the
// group's metadata.
func WithVersion(v string) WriteOption {
	return options.NoError(func(c *writeConfig) { c.version = v })
}

// WithCompression selects the compression algorithm applied to every
// array dataset WriteGraph creates.
func WithCompression(ct format.CompressionType) WriteOption {
	return options.NoError(func(c *writeConfig) { c.compression = ct })
}
