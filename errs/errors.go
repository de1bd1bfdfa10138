// Package errs defines the sentinel error values returned by geff-go.
//
// Every error kind named in the GEFF codec design is represented here so
// callers can use errors.Is to distinguish failure modes. Parameterized
// kinds (those that carry a path, a coordinate, or an expected/actual pair)
// are exposed as constructor functions that wrap one of the sentinels below
// with fmt.Errorf and %w, so errors.Is still matches the sentinel.
package errs

import (
	"errors"
	"fmt"
)

// Version errors.
var (
	// ErrMissingVersion is returned when a metadata document has no version marker.
	ErrMissingVersion = errors.New("geff: missing version")
	// ErrMalformedVersion is returned when a version string does not parse.
	ErrMalformedVersion = errors.New("geff: malformed version")
	// ErrUnsupportedVersion is returned when a version parses but its major.minor is not supported.
	ErrUnsupportedVersion = errors.New("geff: unsupported version")
)

// Metadata errors.
var (
	// ErrMissingRequiredAttribute is returned when a required metadata attribute is absent.
	ErrMissingRequiredAttribute = errors.New("geff: missing required attribute")
	// ErrInvalidAxis is returned when an axis record fails validation.
	ErrInvalidAxis = errors.New("geff: invalid axis")
)

// Dataset/block errors.
var (
	// ErrMissingRequiredDataset is returned when a required dataset is absent.
	ErrMissingRequiredDataset = errors.New("geff: missing required dataset")
	// ErrLengthMismatch is returned when a column's length disagrees with the record count.
	ErrLengthMismatch = errors.New("geff: length mismatch")
	// ErrRankMismatch is returned when a dataset has an unexpected rank.
	ErrRankMismatch = errors.New("geff: rank mismatch")
	// ErrTypeMismatch is returned when an element-type coercion has no defined rule.
	ErrTypeMismatch = errors.New("geff: type mismatch")
	// ErrBlockIO is returned when the underlying store fails a block read or write.
	ErrBlockIO = errors.New("geff: block I/O error")
	// ErrNotFound is returned when a dataset or group does not exist.
	ErrNotFound = errors.New("geff: not found")
)

// Argument errors.
var (
	// ErrInvalidArgument is returned for caller-supplied values that fail validation
	// (e.g. a color array that is not length 4).
	ErrInvalidArgument = errors.New("geff: invalid argument")
)

// MissingRequiredAttribute wraps ErrMissingRequiredAttribute with the attribute name.
func MissingRequiredAttribute(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredAttribute, name)
}

// MissingRequiredDataset wraps ErrMissingRequiredDataset with the dataset path.
func MissingRequiredDataset(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredDataset, path)
}

// LengthMismatch wraps ErrLengthMismatch with the dataset path and the expected/actual lengths.
func LengthMismatch(path string, expected, actual int) error {
	return fmt.Errorf("%w: %s expected=%d actual=%d", ErrLengthMismatch, path, expected, actual)
}

// RankMismatch wraps ErrRankMismatch with the dataset path and the expected/actual ranks.
func RankMismatch(path string, expected, actual int) error {
	return fmt.Errorf("%w: %s expected=%d actual=%d", ErrRankMismatch, path, expected, actual)
}

// TypeMismatch wraps ErrTypeMismatch with the dataset path and the requested/actual element types.
func TypeMismatch(path string, requested, actual fmt.Stringer) error {
	return fmt.Errorf("%w: %s requested=%s actual=%s", ErrTypeMismatch, path, requested, actual)
}

// BlockIOError wraps ErrBlockIO with the dataset path, the block coordinate, and the cause.
func BlockIOError(path string, blockCoord []int, cause error) error {
	return fmt.Errorf("%w: %s block=%v: %w", ErrBlockIO, path, blockCoord, cause)
}

// InvalidAxis wraps ErrInvalidAxis with a reason.
func InvalidAxis(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAxis, reason)
}

// InvalidArgument wraps ErrInvalidArgument with a reason.
func InvalidArgument(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, reason)
}

// NotFound wraps ErrNotFound with the path that could not be found.
func NotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}
