// Package compress provides compression and decompression codecs for
// per-block bytes written by a geff-go store implementation.
//
// # Overview
//
// The GEFF codec layer (package blockcodec) treats compression as an opaque
// handle chosen when a dataset is created (spec §4.1, §6) — it never touches
// compressed bytes itself. The store applies the chosen codec around each
// block's bytes on write, and reverses it on read. This package supplies the
// codecs a store can choose from:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, the default "Blosc" stand-in
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Selecting a codec
//
// Use CreateCodec or GetCodec with a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(blockBytes)
//	original, err := codec.Decompress(compressed)
//
// # Thread Safety
//
// All codec implementations in this package are stateless and safe for
// concurrent use.
package compress
