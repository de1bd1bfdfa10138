package metadata

import (
	"github.com/live-image-tracking-tools/geff-go/axis"
	"github.com/live-image-tracking-tools/geff-go/errs"
	"github.com/live-image-tracking-tools/geff-go/store"
	"github.com/live-image-tracking-tools/geff-go/version"
)

// readLegacy reconstructs Metadata from the 0.1 layout: geff_version and
// directed live at the group's attribute root alongside flat axis_names,
// axis_units, roi_min, roi_max arrays that are zipped back into axis
// records, classifying each axis's type from its name.
func readLegacy(s store.Store, groupPath string) (Metadata, error) {
	versionStr := ""
	if raw, ok, err := s.GetAttribute(groupPath, "geff_version"); err != nil {
		return Metadata{}, err
	} else if ok {
		versionStr, _ = raw.(string)
	}

	if _, err := version.Validate(versionStr); err != nil {
		return Metadata{}, err
	}

	directedRaw, ok, err := s.GetAttribute(groupPath, "directed")
	if err != nil {
		return Metadata{}, err
	}
	if !ok {
		return Metadata{}, errs.MissingRequiredAttribute("directed")
	}
	directed, ok := directedRaw.(bool)
	if !ok {
		return Metadata{}, errs.MissingRequiredAttribute("directed")
	}

	axes, err := readLegacyAxes(s, groupPath)
	if err != nil {
		return Metadata{}, err
	}

	m := Metadata{Version: versionStr, Directed: directed, Axes: axes}
	if err := m.Validate(); err != nil {
		return Metadata{}, err
	}

	return m, nil
}

func readLegacyAxes(s store.Store, groupPath string) ([]axis.Axis, error) {
	namesRaw, ok, err := s.GetAttribute(groupPath, "axis_names")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	names, ok := toStringSlice(namesRaw)
	if !ok {
		return nil, errs.InvalidArgument("legacy axis_names is not a string list")
	}

	units, err := fetchStringSlice(s, groupPath, "axis_units", len(names))
	if err != nil {
		return nil, err
	}
	mins, err := fetchFloatSlice(s, groupPath, "roi_min", len(names))
	if err != nil {
		return nil, err
	}
	maxs, err := fetchFloatSlice(s, groupPath, "roi_max", len(names))
	if err != nil {
		return nil, err
	}

	axes := make([]axis.Axis, len(names))
	for i, name := range names {
		kind, _ := axis.ClassifyName(name)
		min, max := mins[i], maxs[i]
		axes[i] = axis.Axis{Name: name, Type: kind, Unit: units[i], Min: &min, Max: &max}
	}

	return axes, nil
}

func fetchStringSlice(s store.Store, groupPath, key string, want int) ([]string, error) {
	raw, ok, err := s.GetAttribute(groupPath, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return make([]string, want), nil
	}
	vals, ok := toStringSlice(raw)
	if !ok || len(vals) != want {
		return nil, errs.LengthMismatch(key, want, len(vals))
	}

	return vals, nil
}

func fetchFloatSlice(s store.Store, groupPath, key string, want int) ([]float64, error) {
	raw, ok, err := s.GetAttribute(groupPath, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return make([]float64, want), nil
	}
	vals, ok := toFloatSlice(raw)
	if !ok || len(vals) != want {
		return nil, errs.LengthMismatch(key, want, len(vals))
	}

	return vals, nil
}

func toStringSlice(raw any) ([]string, bool) {
	switch x := raw.(type) {
	case []string:
		return x, true
	case []any:
		out := make([]string, len(x))
		for i, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}

		return out, true
	default:
		return nil, false
	}
}

func toFloatSlice(raw any) ([]float64, bool) {
	switch x := raw.(type) {
	case []float64:
		return x, true
	case []any:
		out := make([]float64, len(x))
		for i, item := range x {
			switch v := item.(type) {
			case float64:
				out[i] = v
			case int:
				out[i] = float64(v)
			default:
				return nil, false
			}
		}

		return out, true
	default:
		return nil, false
	}
}
