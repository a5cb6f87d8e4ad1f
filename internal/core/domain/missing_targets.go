package domain

// MissingTargets accumulates namespaced references resolved into other export sets.
// Their descriptors may not exist yet, so consumers check for them when loading.
type MissingTargets struct {
	names []string
}

// Add records a reference. Duplicates are kept until Unique is called.
func (m *MissingTargets) Add(name string) {
	m.names = append(m.names, name)
}

// Merge appends every reference of other.
func (m *MissingTargets) Merge(other *MissingTargets) {
	m.names = append(m.names, other.names...)
}

// Len returns the number of recorded references, duplicates included.
func (m *MissingTargets) Len() int {
	return len(m.names)
}

// Unique returns the references in first-seen order without duplicates.
func (m *MissingTargets) Unique() []string {
	seen := make(map[string]struct{}, len(m.names))
	out := make([]string, 0, len(m.names))
	for _, n := range m.names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
