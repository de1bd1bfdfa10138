package blockcodec

import (
	"math"

	"github.com/live-image-tracking-tools/geff-go/endian"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/format"
)

// number is the set of Go native types the coercion dispatch table
// converts between. Conversion between any two of these uses Go's own
// numeric conversion rules, which already give the behavior the element
// coercion contract requires: narrowing integer conversions truncate
// C-style, float-to-int conversions truncate toward zero, widening
// conversions are exact, and an unsigned-to-signed conversion of the same
// width keeps the value only when it fits the signed range (larger values
// wrap).
type number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

func convertTo[T number](v any) T {
	switch x := v.(type) {
	case int8:
		return T(x)
	case uint8:
		return T(x)
	case int16:
		return T(x)
	case uint16:
		return T(x)
	case int32:
		return T(x)
	case uint32:
		return T(x)
	case int64:
		return T(x)
	case uint64:
		return T(x)
	case float32:
		return T(x)
	case float64:
		return T(x)
	default:
		var zero T

		return zero
	}
}

// decodeNative reads the idx-th element of et out of buf using engine's
// byte order, returning it as the matching Go native numeric type.
func decodeNative(engine endian.EndianEngine, buf []byte, et format.ElementType, idx int) (any, error) {
	switch et {
	case format.Int8:
		return int8(buf[idx]), nil
	case format.Uint8:
		return buf[idx], nil
	case format.Int16:
		return int16(engine.Uint16(buf[idx*2:])), nil
	case format.Uint16:
		return engine.Uint16(buf[idx*2:]), nil
	case format.Int32:
		return int32(engine.Uint32(buf[idx*4:])), nil
	case format.Uint32:
		return engine.Uint32(buf[idx*4:]), nil
	case format.Int64:
		return int64(engine.Uint64(buf[idx*8:])), nil
	case format.Uint64:
		return engine.Uint64(buf[idx*8:]), nil
	case format.Float32:
		return math.Float32frombits(engine.Uint32(buf[idx*4:])), nil
	case format.Float64:
		return math.Float64frombits(engine.Uint64(buf[idx*8:])), nil
	default:
		return nil, errs.TypeMismatch("", et, et)
	}
}

// encodeNative writes v, a Go native numeric type matching et, into the
// idx-th slot of buf using engine's byte order.
func encodeNative(engine endian.EndianEngine, buf []byte, et format.ElementType, idx int, v any) error {
	switch et {
	case format.Int8:
		buf[idx] = byte(convertTo[int8](v))
	case format.Uint8:
		buf[idx] = convertTo[uint8](v)
	case format.Int16:
		engine.PutUint16(buf[idx*2:], uint16(convertTo[int16](v)))
	case format.Uint16:
		engine.PutUint16(buf[idx*2:], convertTo[uint16](v))
	case format.Int32:
		engine.PutUint32(buf[idx*4:], uint32(convertTo[int32](v)))
	case format.Uint32:
		engine.PutUint32(buf[idx*4:], convertTo[uint32](v))
	case format.Int64:
		engine.PutUint64(buf[idx*8:], uint64(convertTo[int64](v)))
	case format.Uint64:
		engine.PutUint64(buf[idx*8:], convertTo[uint64](v))
	case format.Float32:
		engine.PutUint32(buf[idx*4:], math.Float32bits(convertTo[float32](v)))
	case format.Float64:
		engine.PutUint64(buf[idx*8:], math.Float64bits(convertTo[float64](v)))
	default:
		return errs.TypeMismatch("", et, et)
	}

	return nil
}

// coerceElement converts the native value read as srcType into dstType's
// native representation. String and Object never participate in numeric
// coercion; any combination involving them fails with TypeMismatch.
func coerceElement(v any, srcType, dstType format.ElementType) (any, error) {
	if !srcType.IsNumeric() || !dstType.IsNumeric() {
		return nil, errs.TypeMismatch("", dstType, srcType)
	}

	switch dstType {
	case format.Int8:
		return convertTo[int8](v), nil
	case format.Uint8:
		return convertTo[uint8](v), nil
	case format.Int16:
		return convertTo[int16](v), nil
	case format.Uint16:
		return convertTo[uint16](v), nil
	case format.Int32:
		return convertTo[int32](v), nil
	case format.Uint32:
		return convertTo[uint32](v), nil
	case format.Int64:
		return convertTo[int64](v), nil
	case format.Uint64:
		return convertTo[uint64](v), nil
	case format.Float32:
		return convertTo[float32](v), nil
	case format.Float64:
		return convertTo[float64](v), nil
	default:
		return nil, errs.TypeMismatch("", dstType, srcType)
	}
}

// CoerceBuffer reads count elements of srcType out of src and returns a
// newly allocated buffer of count elements of dstType, applying the
// element coercion rules documented on the block codec.
func CoerceBuffer(engine endian.EndianEngine, src []byte, srcType format.ElementType, dstType format.ElementType, count int) ([]byte, error) {
	if srcType == dstType {
		out := make([]byte, len(src))
		copy(out, src)

		return out, nil
	}

	dst := make([]byte, count*dstType.Size())

	for i := 0; i < count; i++ {
		native, err := decodeNative(engine, src, srcType, i)
		if err != nil {
			return nil, err
		}

		coerced, err := coerceElement(native, srcType, dstType)
		if err != nil {
			return nil, err
		}

		if err := encodeNative(engine, dst, dstType, i, coerced); err != nil {
			return nil, err
		}
	}

	return dst, nil
}
