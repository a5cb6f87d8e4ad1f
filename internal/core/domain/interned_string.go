package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Artifact names are compared on every dependency lookup across the registry,
// so they are interned to make equality a pointer comparison.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	return is.h.Value()
}

// IsZero reports whether the handle was never set.
func (is InternedString) IsZero() bool {
	return is == InternedString{}
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.h.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
