package domain

import (
	"iter"
	"slices"
)

// PropertyMap holds property values for one artifact. Keys are iterated in sorted
// order so emitted descriptors are byte-stable across runs.
type PropertyMap struct {
	values map[string]string
}

// NewPropertyMap creates an empty PropertyMap.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[string]string)}
}

// Set stores a value, overwriting any previous value for key.
func (m *PropertyMap) Set(key, value string) {
	m.values[key] = value
}

// Get returns the value stored for key.
func (m *PropertyMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of properties.
func (m *PropertyMap) Len() int {
	return len(m.values)
}

// Keys returns the property names in sorted order.
func (m *PropertyMap) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All returns an iterator over the properties in sorted key order.
func (m *PropertyMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
