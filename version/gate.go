// Package version implements the GEFF version gate: parsing, validating, and
// comparing the geff_version string stored in a group's metadata document.
//
// Downstream codecs (package metadata, package graph) must branch only on
// MajorMinor — never on patch, identifier, or build metadata — per the
// GEFF schema's compatibility contract.
package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/live-image-tracking-tools/geff-go/errs"
)

// supportedMinors is the set of minor versions accepted under major version
// 0. 2 and 3 are the core supported set; 1 (legacy) and 4 (polygon
// extension) are optional revisions this implementation also accepts.
var supportedMinors = map[int]struct{}{
	1: {},
	2: {},
	3: {},
	4: {},
}

const supportedMajor = 0

// versionPattern matches "major.minor(.patch)?(.identifier)?([+-]build)*".
// Major and minor are parsed as plain digit sequences — whether a given
// major.minor pair is actually *supported* is a separate question answered
// by IsSupported/Validate, not by the grammar itself. This lets an
// out-of-range major (e.g. "1.0") parse successfully and fail later with
// UnsupportedVersion rather than MalformedVersion, matching the end-to-end
// "geff_version = 1.0" scenario in the codec's test suite.
//
// Examples accepted: "0.2", "0.3.0", "0.2.2.dev20+g611e7a2.d20250719",
// "0.3.0-alpha.1", "1.0" (parses, later rejected as unsupported).
// Rejected (fail to parse): "invalid", "0.1..x".
var versionPattern = regexp.MustCompile(
	`^(\d+)\.(\d+)(?:\.(\d+))?(?:\.([A-Za-z0-9]+))?([+-][A-Za-z0-9]+(?:\.[A-Za-z0-9]+)*)*$`,
)

// Version is a parsed GEFF version string.
type Version struct {
	Raw   string
	Major int
	Minor int
}

// String returns the original version string.
func (v Version) String() string {
	return v.Raw
}

// MajorMinor returns the (major, minor) pair codecs should branch on.
func (v Version) MajorMinor() (int, int) {
	return v.Major, v.Minor
}

// Parse parses a GEFF version string.
//
// Returns errs.ErrMalformedVersion if the string does not match the
// accepted grammar, or errs.ErrMissingVersion if the string is empty.
// A successful parse does not imply the version is supported — call
// Validate or IsSupported for that.
func Parse(raw string) (Version, error) {
	if raw == "" {
		return Version{}, errs.ErrMissingVersion
	}

	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", errs.ErrMalformedVersion, raw)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", errs.ErrMalformedVersion, raw)
	}

	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", errs.ErrMalformedVersion, raw)
	}

	return Version{Raw: raw, Major: major, Minor: minor}, nil
}

// IsSupported reports whether a parsed version's major.minor is in the
// supported set. A version that fails to parse is never supported.
func IsSupported(raw string) bool {
	v, err := Parse(raw)
	if err != nil {
		return false
	}

	return isSupportedPair(v.Major, v.Minor)
}

func isSupportedPair(major, minor int) bool {
	if major != supportedMajor {
		return false
	}
	_, ok := supportedMinors[minor]

	return ok
}

// MajorMinor parses raw and returns its (major, minor) pair. It returns an
// error under the same conditions as Parse.
func MajorMinor(raw string) (int, int, error) {
	v, err := Parse(raw)
	if err != nil {
		return 0, 0, err
	}

	return v.Major, v.Minor, nil
}

// Validate parses raw and fails with errs.ErrUnsupportedVersion if its
// major.minor is not in the supported set. This is the entry point the
// metadata codec uses on read: a version that parses but is unsupported
// must not proceed to opening any node or edge dataset.
func Validate(raw string) (Version, error) {
	v, err := Parse(raw)
	if err != nil {
		return Version{}, err
	}

	if !isSupportedPair(v.Major, v.Minor) {
		return Version{}, fmt.Errorf("%w: %q", errs.ErrUnsupportedVersion, raw)
	}

	return v, nil
}

// Default is the version this library writes when the caller does not
// request a specific one.
const Default = "0.3.0"
