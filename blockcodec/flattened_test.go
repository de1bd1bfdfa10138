package blockcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattened_AtColumnMajor(t *testing.T) {
	// shape [2,3]; column-major data: column 0 = {0,1}, column 1 = {2,3}, column 2 = {4,5}
	data := []float64{0, 1, 2, 3, 4, 5}
	f := NewFlattened(data, []int{2, 3})

	require.Equal(t, 0.0, f.At(0, 0))
	require.Equal(t, 1.0, f.At(1, 0))
	require.Equal(t, 2.0, f.At(0, 1))
	require.Equal(t, 5.0, f.At(1, 2))
}

func TestFlattened_Row(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5}
	f := NewFlattened(data, []int{2, 3})

	require.Equal(t, []float64{0, 1}, f.Row(0))
	require.Equal(t, []float64{2, 3}, f.Row(1))
	require.Equal(t, []float64{4, 5}, f.Row(2))
}

func TestFlattened_Size(t *testing.T) {
	f := NewFlattened([]int32{1, 2, 3, 4}, []int{2, 2})
	require.Equal(t, []int{2, 2}, f.Size())
}
