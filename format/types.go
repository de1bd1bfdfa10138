// Package format defines the small value-type enums shared across geff-go:
// the on-disk element types a dataset may declare, and the compression
// algorithms a store may apply to a block.
package format

// ElementType identifies the on-disk scalar type of a dataset's elements.
type ElementType uint8

// Supported element types. String and Object are accepted for rank/shape
// bookkeeping but are never targets of numeric coercion.
const (
	Int8 ElementType = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	String
	Object
)

// String implements fmt.Stringer.
func (e ElementType) String() string {
	switch e {
	case Int8:
		return "i8"
	case Uint8:
		return "u8"
	case Int16:
		return "i16"
	case Uint16:
		return "u16"
	case Int32:
		return "i32"
	case Uint32:
		return "u32"
	case Int64:
		return "i64"
	case Uint64:
		return "u64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case String:
		return "string"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the element type participates in numeric coercion.
func (e ElementType) IsNumeric() bool {
	switch e {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, Float32, Float64:
		return true
	default:
		return false
	}
}

// Size returns the size in bytes of one element, or 0 for String/Object
// (variable-length types not sized by this package).
func (e ElementType) Size() int {
	switch e {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// CompressionType identifies the compression algorithm applied to a block by
// the store. The block codec treats this as an opaque handle; only the
// store (package store) and package compress interpret it.
type CompressionType uint8

const (
	// CompressionNone applies no compression.
	CompressionNone CompressionType = iota + 1
	// CompressionZstd applies Zstandard compression, the default "Blosc" stand-in.
	CompressionZstd
	// CompressionS2 applies S2 (Snappy-family) compression.
	CompressionS2
	// CompressionLZ4 applies LZ4 compression.
	CompressionLZ4
)

// String implements fmt.Stringer.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
