package blockcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/live-image-tracking-tools/geff-go/format"
)

func TestCoerceBuffer_Widening_Int32ToFloat64(t *testing.T) {
	src := make([]byte, 4*3)
	wireEngine.PutUint32(src[0:], uint32(int32(-5)))
	wireEngine.PutUint32(src[4:], uint32(int32(0)))
	wireEngine.PutUint32(src[8:], uint32(int32(42)))

	dst, err := CoerceBuffer(wireEngine, src, format.Int32, format.Float64, 3)
	require.NoError(t, err)
	require.Equal(t, -5.0, math.Float64frombits(wireEngine.Uint64(dst[0:])))
	require.Equal(t, 0.0, math.Float64frombits(wireEngine.Uint64(dst[8:])))
	require.Equal(t, 42.0, math.Float64frombits(wireEngine.Uint64(dst[16:])))
}

func TestCoerceBuffer_Narrowing_Int64ToInt32Truncates(t *testing.T) {
	src := make([]byte, 8)
	var big int64 = (1 << 33) + 7 // low 32 bits == 7
	wireEngine.PutUint64(src, uint64(big))

	dst, err := CoerceBuffer(wireEngine, src, format.Int64, format.Int32, 1)
	require.NoError(t, err)
	require.Equal(t, int32(7), int32(wireEngine.Uint32(dst)))
}

func TestCoerceBuffer_Narrowing_Float64ToInt32Truncates(t *testing.T) {
	src := make([]byte, 8)
	wireEngine.PutUint64(src, math.Float64bits(7.9))

	dst, err := CoerceBuffer(wireEngine, src, format.Float64, format.Int32, 1)
	require.NoError(t, err)
	require.Equal(t, int32(7), int32(wireEngine.Uint32(dst)))
}

func TestCoerceBuffer_UnsignedToSigned_SameWidth(t *testing.T) {
	src := make([]byte, 4)
	wireEngine.PutUint32(src, 200)

	dst, err := CoerceBuffer(wireEngine, src, format.Uint32, format.Int32, 1)
	require.NoError(t, err)
	require.Equal(t, int32(200), int32(wireEngine.Uint32(dst)))
}

func TestCoerceBuffer_SameType_IsCopy(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	dst, err := CoerceBuffer(wireEngine, src, format.Int32, format.Int32, 1)
	require.NoError(t, err)
	require.Equal(t, src, dst)
}

func TestCoerceBuffer_StringTargetFails(t *testing.T) {
	src := make([]byte, 4)
	_, err := CoerceBuffer(wireEngine, src, format.Int32, format.String, 1)
	require.Error(t, err)
}
