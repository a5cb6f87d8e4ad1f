package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry is the arena of every artifact, export set and installation known to a build.
// It is populated once by the planning phase and then treated as a read-only snapshot;
// generation passes running in parallel share it without locking.
type Registry struct {
	artifacts     map[InternedString]*Artifact
	sets          []ExportSet
	setIndex      map[string]ExportSetID
	installations []Installation
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		artifacts: make(map[InternedString]*Artifact),
		setIndex:  make(map[string]ExportSetID),
	}
}

// AddArtifact registers an artifact.
// It returns an error if an artifact with the same name already exists.
func (r *Registry) AddArtifact(a *Artifact) error {
	if _, exists := r.artifacts[a.Name]; exists {
		return zerr.With(ErrArtifactAlreadyExists, "artifact", a.Name.String())
	}
	r.artifacts[a.Name] = a
	return nil
}

// Artifact looks up a registered artifact by name.
func (r *Registry) Artifact(name string) (*Artifact, bool) {
	a, ok := r.artifacts[NewInternedString(name)]
	return a, ok
}

// AddExportSet registers an empty export set and returns its id.
func (r *Registry) AddExportSet(name string) (ExportSetID, error) {
	if _, exists := r.setIndex[name]; exists {
		return 0, zerr.With(ErrExportSetAlreadyExists, "export_set", name)
	}
	id := ExportSetID(len(r.sets))
	r.sets = append(r.sets, ExportSet{Name: name})
	r.setIndex[name] = id
	return id, nil
}

// AddTargetExport appends an artifact entry to an export set.
// The same artifact may be appended twice; generation rejects such sets.
func (r *Registry) AddTargetExport(id ExportSetID, te TargetExport) error {
	set := r.ExportSet(id)
	if set == nil {
		return zerr.With(ErrUnknownExportSet, "export_set_id", int(id))
	}
	if te.Artifact == nil {
		return zerr.With(ErrUnknownArtifact, "export_set", set.Name)
	}
	if _, ok := r.artifacts[te.Artifact.Name]; !ok {
		return zerr.With(zerr.With(ErrUnknownArtifact, "export_set", set.Name), "artifact", te.Artifact.Name.String())
	}
	set.Targets = append(set.Targets, te)
	return nil
}

// AddInstallation registers an installation of an existing export set.
func (r *Registry) AddInstallation(inst Installation) (InstallationID, error) {
	if r.ExportSet(inst.ExportSet) == nil {
		return 0, zerr.With(ErrUnknownExportSet, "export_set_id", int(inst.ExportSet))
	}
	if inst.FileName == "" {
		return 0, zerr.With(ErrMissingFileName, "export_set", r.sets[inst.ExportSet].Name)
	}
	if inst.Destination == "" {
		return 0, zerr.With(ErrMissingDestination, "export_set", r.sets[inst.ExportSet].Name)
	}
	id := InstallationID(len(r.installations))
	r.installations = append(r.installations, inst)
	return id, nil
}

// ExportSet returns the export set with the given id, or nil.
func (r *Registry) ExportSet(id ExportSetID) *ExportSet {
	if id < 0 || int(id) >= len(r.sets) {
		return nil
	}
	return &r.sets[id]
}

// ExportSetByName returns the id of the named export set.
func (r *Registry) ExportSetByName(name string) (ExportSetID, bool) {
	id, ok := r.setIndex[name]
	return id, ok
}

// Installation returns the installation with the given id, or nil.
func (r *Registry) Installation(id InstallationID) *Installation {
	if id < 0 || int(id) >= len(r.installations) {
		return nil
	}
	return &r.installations[id]
}

// ExportSets returns an iterator over all export sets in registration order.
func (r *Registry) ExportSets() iter.Seq2[ExportSetID, *ExportSet] {
	return func(yield func(ExportSetID, *ExportSet) bool) {
		for i := range r.sets {
			if !yield(ExportSetID(i), &r.sets[i]) {
				return
			}
		}
	}
}

// Installations returns an iterator over all installations in registration order.
func (r *Registry) Installations() iter.Seq2[InstallationID, *Installation] {
	return func(yield func(InstallationID, *Installation) bool) {
		for i := range r.installations {
			if !yield(InstallationID(i), &r.installations[i]) {
				return
			}
		}
	}
}

// InstallationsOf returns an iterator over the installations of one export set.
func (r *Registry) InstallationsOf(set ExportSetID) iter.Seq2[InstallationID, *Installation] {
	return func(yield func(InstallationID, *Installation) bool) {
		for i := range r.installations {
			if r.installations[i].ExportSet != set {
				continue
			}
			if !yield(InstallationID(i), &r.installations[i]) {
				return
			}
		}
	}
}

// NumInstallations returns the number of registered installations.
func (r *Registry) NumInstallations() int {
	return len(r.installations)
}
