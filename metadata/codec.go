package metadata

import (
	"github.com/live-image-tracking-tools/geff-go/store"
)

// attributeKey is the top-level attribute under which 0.2+ metadata is
// stored; 0.1 groups instead carry the same fields at the attribute root
// (see legacy.go).
const attributeKey = "geff"

// Read fetches and validates a group's metadata. It tries the modern
// (0.2+) "geff"-keyed document first and falls back to the legacy 0.1
// root layout when that key is absent.
func Read(s store.Store, groupPath string) (Metadata, error) {
	raw, ok, err := s.GetAttribute(groupPath, attributeKey)
	if err != nil {
		return Metadata{}, err
	}
	if !ok {
		return readLegacy(s, groupPath)
	}

	v, err := FromNative(raw)
	if err != nil {
		return Metadata{}, err
	}

	return fromValue(v)
}

// Write validates m and writes it under the group's "geff" attribute key.
func Write(s store.Store, groupPath string, m Metadata) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return s.SetAttribute(groupPath, attributeKey, m.toValue().ToNative())
}
