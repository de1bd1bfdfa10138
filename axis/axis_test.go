package axis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithBounds_RejectsInverted(t *testing.T) {
	_, err := NewWithBounds("x", KindSpace, "micrometers", 10, 5)
	require.Error(t, err)
}

func TestNewWithBounds_Accepts(t *testing.T) {
	a, err := NewWithBounds("x", KindSpace, "micrometers", 0, 100)
	require.NoError(t, err)
	require.True(t, a.HasBounds())
	require.Equal(t, 0.0, *a.Min)
	require.Equal(t, 100.0, *a.Max)
}

func TestValidate_UnknownName(t *testing.T) {
	a := New("w", KindSpace, "pixels")
	require.Error(t, a.Validate())
}

func TestValidate_TimeMustBeTimeKind(t *testing.T) {
	a := New("t", KindSpace, "seconds")
	require.Error(t, a.Validate())

	a = New("t", KindTime, "seconds")
	require.NoError(t, a.Validate())
}

func TestValidate_SpaceNamesMustBeSpaceKind(t *testing.T) {
	for _, name := range []string{"x", "y", "z"} {
		a := New(name, KindTime, "micrometers")
		require.Error(t, a.Validate())

		a = New(name, KindSpace, "micrometers")
		require.NoError(t, a.Validate())
	}
}

func TestValidate_UnsetTypeSkipsClassCheck(t *testing.T) {
	a := New("x", "", "micrometers")
	require.NoError(t, a.Validate())
}

func TestValidate_InvertedBounds(t *testing.T) {
	min, max := 10.0, 5.0
	a := Axis{Name: "x", Type: KindSpace, Unit: "pixels", Min: &min, Max: &max}
	require.Error(t, a.Validate())
}

func TestClassifyName(t *testing.T) {
	k, ok := ClassifyName("t")
	require.True(t, ok)
	require.Equal(t, KindTime, k)

	_, ok = ClassifyName("w")
	require.False(t, ok)
}
