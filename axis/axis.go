// Package axis describes a single spatial or temporal axis of a GEFF graph,
// as read from or written to a group's metadata document.
package axis

import (
	"fmt"

	"github.com/live-image-tracking-tools/geff-go/errs"
)

// Kind is the conventional class of an axis.
type Kind string

const (
	KindTime  Kind = "time"
	KindSpace Kind = "space"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// allowedNames is the set of axis names the schema recognizes.
var allowedNames = map[string]Kind{
	"t": KindTime,
	"x": KindSpace,
	"y": KindSpace,
	"z": KindSpace,
}

// Axis is a structured description of one dimension of a tracked graph:
// its conventional name, class, unit, and optional bounds.
type Axis struct {
	Name string
	Type Kind
	Unit string
	Min  *float64
	Max  *float64
}

// New constructs an Axis with no bounds. It does not validate; call
// Validate (or use NewWithBounds, which validates bounds eagerly) before
// relying on the result.
func New(name string, kind Kind, unit string) Axis {
	return Axis{Name: name, Type: kind, Unit: unit}
}

// NewWithBounds constructs an Axis with a [min, max] range, rejecting
// min > max.
func NewWithBounds(name string, kind Kind, unit string, min, max float64) (Axis, error) {
	if min > max {
		return Axis{}, errs.InvalidAxis(fmt.Sprintf("axis %q: min %v > max %v", name, min, max))
	}

	return Axis{Name: name, Type: kind, Unit: unit, Min: &min, Max: &max}, nil
}

// HasBounds reports whether both Min and Max are set.
func (a Axis) HasBounds() bool {
	return a.Min != nil && a.Max != nil
}

// Validate checks that the axis's name is in the allowed set, that its
// bounds (if both present) are ordered, and that its declared type matches
// the name's conventional class whenever both are set.
func (a Axis) Validate() error {
	conventional, known := allowedNames[a.Name]
	if !known {
		return errs.InvalidAxis(fmt.Sprintf("axis name %q is not one of t, x, y, z", a.Name))
	}

	if a.Type != "" && a.Type != conventional {
		return errs.InvalidAxis(fmt.Sprintf("axis %q declares type %q, expected %q", a.Name, a.Type, conventional))
	}

	if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
		return errs.InvalidAxis(fmt.Sprintf("axis %q: min %v > max %v", a.Name, *a.Min, *a.Max))
	}

	return nil
}

// ClassifyName returns the conventional Kind for a recognized axis name.
// Used when reconstructing legacy (0.1) metadata, which carries axis names
// but no explicit type.
func ClassifyName(name string) (Kind, bool) {
	k, ok := allowedNames[name]

	return k, ok
}
