package metadata

import (
	"github.com/live-image-tracking-tools/geff-go/axis"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/version"
)

// Metadata is the record stored under a group's "geff" attribute
// (0.2+) or, for legacy groups, at the group's attribute root (0.1).
type Metadata struct {
	Version  string
	Directed bool
	Axes     []axis.Axis
}

// Validate checks the version string against the version gate and every
// axis against its own rules.
func (m Metadata) Validate() error {
	if _, err := version.Validate(m.Version); err != nil {
		return err
	}

	for _, a := range m.Axes {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// toValue builds the Value tree this Metadata serializes to. Axes are
// omitted entirely when the list is empty, per the write contract.
func (m Metadata) toValue() Value {
	fields := map[string]Value{
		"geff_version": String(m.Version),
		"directed":     Bool(m.Directed),
	}

	if len(m.Axes) > 0 {
		items := make([]Value, len(m.Axes))
		for i, a := range m.Axes {
			items[i] = axisToValue(a)
		}
		fields["axes"] = List(items...)
	}

	return Map(fields)
}

func axisToValue(a axis.Axis) Value {
	fields := map[string]Value{
		"name": String(a.Name),
		"unit": String(a.Unit),
	}
	if a.Type != "" {
		fields["type"] = String(string(a.Type))
	}
	if a.Min != nil {
		fields["min"] = Float(*a.Min)
	}
	if a.Max != nil {
		fields["max"] = Float(*a.Max)
	}

	return Map(fields)
}

// fromValue assembles a Metadata from a "geff"-keyed Value tree. A missing
// geff_version produces ErrMissingVersion (via version.Validate), a
// missing directed produces MissingRequiredAttribute, and axes are parsed
// only when present.
func fromValue(v Value) (Metadata, error) {
	versionStr := ""
	if f, ok := v.Field("geff_version"); ok {
		versionStr, _ = f.AsString()
	}

	if _, err := version.Validate(versionStr); err != nil {
		return Metadata{}, err
	}

	directedField, ok := v.Field("directed")
	if !ok {
		return Metadata{}, errs.MissingRequiredAttribute("directed")
	}
	directed, ok := directedField.AsBool()
	if !ok {
		return Metadata{}, errs.MissingRequiredAttribute("directed")
	}

	var axes []axis.Axis
	if axesField, ok := v.Field("axes"); ok {
		items, _ := axesField.AsList()
		axes = make([]axis.Axis, len(items))
		for i, item := range items {
			a, err := axisFromValue(item)
			if err != nil {
				return Metadata{}, err
			}
			axes[i] = a
		}
	}

	m := Metadata{Version: versionStr, Directed: directed, Axes: axes}
	if err := m.Validate(); err != nil {
		return Metadata{}, err
	}

	return m, nil
}

func axisFromValue(v Value) (axis.Axis, error) {
	name, _ := fieldString(v, "name")
	unit, _ := fieldString(v, "unit")
	typeStr, _ := fieldString(v, "type")

	a := axis.Axis{Name: name, Type: axis.Kind(typeStr), Unit: unit}

	if f, ok := v.Field("min"); ok {
		if fv, ok := f.AsFloat(); ok {
			a.Min = &fv
		}
	}
	if f, ok := v.Field("max"); ok {
		if fv, ok := f.AsFloat(); ok {
			a.Max = &fv
		}
	}

	return a, nil
}

func fieldString(v Value, key string) (string, bool) {
	f, ok := v.Field(key)
	if !ok {
		return "", false
	}

	return f.AsString()
}
