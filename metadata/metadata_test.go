package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/live-image-tracking-tools/geff-go/axis"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/store"
)

func newOpenStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemStore()
	require.NoError(t, s.Open())
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	return s
}

func sampleAxes(t *testing.T) []axis.Axis {
	t.Helper()
	tAxis, err := axis.NewWithBounds("t", axis.KindTime, "seconds", 0, 10)
	require.NoError(t, err)
	xAxis, err := axis.NewWithBounds("x", axis.KindSpace, "micrometers", 0, 100)
	require.NoError(t, err)

	return []axis.Axis{tAxis, xAxis}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	s := newOpenStore(t)

	want := Metadata{Version: "0.3.0", Directed: true, Axes: sampleAxes(t)}
	require.NoError(t, Write(s, "graph", want))

	got, err := Read(s, "graph")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestWrite_OmitsEmptyAxes(t *testing.T) {
	s := newOpenStore(t)

	require.NoError(t, Write(s, "graph", Metadata{Version: "0.3.0", Directed: false}))

	raw, ok, err := s.GetAttribute("graph", "geff")
	require.NoError(t, err)
	require.True(t, ok)

	m, ok := raw.(map[string]any)
	require.True(t, ok)
	_, hasAxes := m["axes"]
	require.False(t, hasAxes)
}

func TestRead_MissingVersion(t *testing.T) {
	s := newOpenStore(t)

	require.NoError(t, s.SetAttribute("graph", "geff", map[string]any{"directed": true}))

	_, err := Read(s, "graph")
	require.ErrorIs(t, err, errs.ErrMissingVersion)
}

func TestRead_UnsupportedVersion(t *testing.T) {
	s := newOpenStore(t)

	require.NoError(t, s.SetAttribute("graph", "geff", map[string]any{
		"geff_version": "1.0",
		"directed":     true,
	}))

	_, err := Read(s, "graph")
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestRead_MissingDirected(t *testing.T) {
	s := newOpenStore(t)

	require.NoError(t, s.SetAttribute("graph", "geff", map[string]any{"geff_version": "0.3.0"}))

	_, err := Read(s, "graph")
	require.ErrorIs(t, err, errs.ErrMissingRequiredAttribute)
}

func TestRead_LegacyLayout(t *testing.T) {
	s := newOpenStore(t)

	require.NoError(t, s.SetAttribute("graph", "geff_version", "0.1"))
	require.NoError(t, s.SetAttribute("graph", "directed", true))
	require.NoError(t, s.SetAttribute("graph", "axis_names", []string{"t", "x"}))
	require.NoError(t, s.SetAttribute("graph", "axis_units", []string{"seconds", "micrometers"}))
	require.NoError(t, s.SetAttribute("graph", "roi_min", []float64{0, 0}))
	require.NoError(t, s.SetAttribute("graph", "roi_max", []float64{10, 100}))

	got, err := Read(s, "graph")
	require.NoError(t, err)
	require.Equal(t, "0.1", got.Version)
	require.True(t, got.Directed)
	require.Len(t, got.Axes, 2)
	require.Equal(t, "t", got.Axes[0].Name)
	require.Equal(t, axis.KindTime, got.Axes[0].Type)
	require.Equal(t, "x", got.Axes[1].Name)
	require.Equal(t, axis.KindSpace, got.Axes[1].Type)
}

func TestValidate_RejectsBadAxis(t *testing.T) {
	m := Metadata{Version: "0.3.0", Directed: true, Axes: []axis.Axis{axis.New("w", axis.KindSpace, "pixels")}}
	require.Error(t, m.Validate())
}
