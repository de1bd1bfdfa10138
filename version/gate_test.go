package version

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/live-image-tracking-tools/geff-go/errs"
)

func TestParse_Accepted(t *testing.T) {
	tests := []struct {
		raw       string
		wantMajor int
		wantMinor int
	}{
		{"0.2", 0, 2},
		{"0.3.0", 0, 3},
		{"0.2.2.dev20+g611e7a2.d20250719", 0, 2},
		{"0.3.0-alpha.1", 0, 3},
		{"0.1", 0, 1},
		{"0.4", 0, 4},
		// Parses fine under the grammar even though neither is supported —
		// the grammar only recognizes shape, not the supported set.
		{"1.0", 1, 0},
		{"0.5", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Parse(tt.raw)
			require.NoError(t, err)
			major, minor := v.MajorMinor()
			require.Equal(t, tt.wantMajor, major)
			require.Equal(t, tt.wantMinor, minor)
			require.Equal(t, tt.raw, v.String())
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	tests := []string{"invalid", "0.1..x", ""}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
		})
	}
}

func TestParse_EmptyIsMissingVersion(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, errs.ErrMissingVersion)
}

func TestParse_MalformedVersion(t *testing.T) {
	_, err := Parse("invalid")
	require.ErrorIs(t, err, errs.ErrMalformedVersion)
}

func TestIsSupported(t *testing.T) {
	require.True(t, IsSupported("0.2"))
	require.True(t, IsSupported("0.3.0"))
	require.True(t, IsSupported("0.1"))
	require.True(t, IsSupported("0.4"))
	require.False(t, IsSupported("1.0"))
	require.False(t, IsSupported("0.5"))
	require.False(t, IsSupported("invalid"))
}

func TestIsSupported_Idempotence(t *testing.T) {
	// Stripping only build metadata must not change the supported verdict.
	withBuild := "0.2.2.dev20+g611e7a2.d20250719"
	stripped := "0.2.2.dev20"
	require.Equal(t, IsSupported(withBuild), IsSupported(stripped))
}

func TestMajorMinor(t *testing.T) {
	major, minor, err := MajorMinor("0.3.0")
	require.NoError(t, err)
	require.Equal(t, 0, major)
	require.Equal(t, 3, minor)

	_, _, err = MajorMinor("not-a-version")
	require.Error(t, err)
}

func TestValidate_UnsupportedVersion(t *testing.T) {
	_, err := Validate("1.0")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)

	_, err = Validate("0.5")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestValidate_MalformedVersion(t *testing.T) {
	_, err := Validate("invalid")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrMalformedVersion)
}

func TestValidate_Supported(t *testing.T) {
	v, err := Validate("0.3.0")
	require.NoError(t, err)
	major, minor := v.MajorMinor()
	require.Equal(t, 0, major)
	require.Equal(t, 3, minor)
}
