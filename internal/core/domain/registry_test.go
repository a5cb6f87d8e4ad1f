package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/core/domain"
)

func newArtifact(name string) *domain.Artifact {
	return &domain.Artifact{Name: domain.NewInternedString(name), Type: domain.StaticLibrary}
}

func TestRegistry_Artifacts(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.AddArtifact(newArtifact("core")))

	err := r.AddArtifact(newArtifact("core"))
	require.ErrorContains(t, err, domain.ErrArtifactAlreadyExists.Error())

	a, ok := r.Artifact("core")
	require.True(t, ok)
	assert.Equal(t, "core", a.Name.String())

	_, ok = r.Artifact("util")
	assert.False(t, ok)
}

func TestRegistry_ExportSets(t *testing.T) {
	r := domain.NewRegistry()
	core := newArtifact("core")
	require.NoError(t, r.AddArtifact(core))

	id, err := r.AddExportSet("CoreTargets")
	require.NoError(t, err)

	_, err = r.AddExportSet("CoreTargets")
	require.ErrorContains(t, err, domain.ErrExportSetAlreadyExists.Error())

	require.NoError(t, r.AddTargetExport(id, domain.TargetExport{Artifact: core}))
	// Duplicates are accepted here and rejected at generation time.
	require.NoError(t, r.AddTargetExport(id, domain.TargetExport{Artifact: core}))

	err = r.AddTargetExport(id, domain.TargetExport{Artifact: newArtifact("util")})
	require.ErrorContains(t, err, domain.ErrUnknownArtifact.Error())

	err = r.AddTargetExport(id, domain.TargetExport{})
	require.ErrorContains(t, err, domain.ErrUnknownArtifact.Error())

	err = r.AddTargetExport(domain.ExportSetID(7), domain.TargetExport{Artifact: core})
	require.ErrorContains(t, err, domain.ErrUnknownExportSet.Error())

	set := r.ExportSet(id)
	require.NotNil(t, set)
	assert.Len(t, set.Targets, 2)
	assert.True(t, set.Contains(core.Name))
	assert.False(t, set.Contains(domain.NewInternedString("util")))

	byName, ok := r.ExportSetByName("CoreTargets")
	assert.True(t, ok)
	assert.Equal(t, id, byName)

	assert.Nil(t, r.ExportSet(-1))
	assert.Nil(t, r.ExportSet(1))
}

func TestRegistry_Installations(t *testing.T) {
	r := domain.NewRegistry()
	core, err := r.AddExportSet("CoreTargets")
	require.NoError(t, err)
	util, err := r.AddExportSet("UtilTargets")
	require.NoError(t, err)

	add := func(set domain.ExportSetID, dest string) domain.InstallationID {
		t.Helper()
		id, err := r.AddInstallation(domain.Installation{ExportSet: set, Destination: dest, FileName: "Targets.cmake"})
		require.NoError(t, err)
		return id
	}
	first := add(core, "lib/cmake/core")
	add(util, "lib/cmake/util")
	third := add(core, "share/core")

	var ofCore []domain.InstallationID
	for id := range r.InstallationsOf(core) {
		ofCore = append(ofCore, id)
	}
	assert.Equal(t, []domain.InstallationID{first, third}, ofCore)
	assert.Equal(t, 3, r.NumInstallations())
	assert.Equal(t, "share/core", r.Installation(third).Destination)
	assert.Nil(t, r.Installation(3))

	var sets []string
	for _, set := range r.ExportSets() {
		sets = append(sets, set.Name)
		break
	}
	assert.Equal(t, []string{"CoreTargets"}, sets)

	tests := []struct {
		name string
		inst domain.Installation
		want error
	}{
		{name: "unknown set", inst: domain.Installation{ExportSet: 5, Destination: "lib", FileName: "T.cmake"}, want: domain.ErrUnknownExportSet},
		{name: "missing file name", inst: domain.Installation{ExportSet: core, Destination: "lib"}, want: domain.ErrMissingFileName},
		{name: "missing destination", inst: domain.Installation{ExportSet: core, FileName: "T.cmake"}, want: domain.ErrMissingDestination},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.AddInstallation(tt.inst)
			require.ErrorContains(t, err, tt.want.Error())
		})
	}
}
