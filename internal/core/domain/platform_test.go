package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/core/domain"
)

func TestParsePlatform(t *testing.T) {
	p, err := domain.ParsePlatform("")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformLinux, p)

	p, err = domain.ParsePlatform("Darwin")
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformDarwin, p)
	assert.True(t, p.IsApple())
	assert.False(t, p.IsDLL())

	p, err = domain.ParsePlatform("cygwin")
	require.NoError(t, err)
	assert.True(t, p.IsDLL())

	_, err = domain.ParsePlatform("plan9")
	require.ErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestPlatform_DefaultAffixes(t *testing.T) {
	tests := []struct {
		platform domain.Platform
		typ      domain.ArtifactType
		want     domain.Affixes
	}{
		{domain.PlatformLinux, domain.SharedLibrary, domain.Affixes{Prefix: "lib", Suffix: ".so"}},
		{domain.PlatformLinux, domain.Executable, domain.Affixes{}},
		{domain.PlatformDarwin, domain.SharedLibrary, domain.Affixes{Prefix: "lib", Suffix: ".dylib"}},
		{domain.PlatformDarwin, domain.ModuleLibrary, domain.Affixes{Prefix: "lib", Suffix: ".so"}},
		{domain.PlatformWindows, domain.StaticLibrary, domain.Affixes{Suffix: ".lib"}},
		{domain.PlatformWindows, domain.Executable, domain.Affixes{Suffix: ".exe"}},
		{domain.PlatformCygwin, domain.SharedLibrary, domain.Affixes{Prefix: "cyg", Suffix: ".dll"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform)+"/"+tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.platform.DefaultAffixes(tt.typ))
		})
	}

	assert.Equal(t, domain.Affixes{Suffix: ".lib"}, domain.PlatformWindows.DefaultImportAffixes())
	assert.Equal(t, domain.Affixes{}, domain.PlatformLinux.DefaultImportAffixes())
}

func TestParseArtifactType(t *testing.T) {
	for _, s := range []string{"executable", "exe", "static", "shared", "module"} {
		_, err := domain.ParseArtifactType(s)
		require.NoError(t, err, s)
	}

	typ, err := domain.ParseArtifactType("Shared")
	require.NoError(t, err)
	assert.Equal(t, domain.SharedLibrary, typ)

	_, err = domain.ParseArtifactType("object")
	require.ErrorIs(t, err, domain.ErrInvalidArtifactType)
}

func TestParseBundleLayout(t *testing.T) {
	tests := []struct {
		layout  string
		typ     domain.ArtifactType
		want    domain.BundleLayout
		wantErr bool
	}{
		{layout: "", typ: domain.StaticLibrary, want: domain.LayoutPlain},
		{layout: "plain", typ: domain.Executable, want: domain.LayoutPlain},
		{layout: "framework", typ: domain.SharedLibrary, want: domain.LayoutFramework},
		{layout: "bundle", typ: domain.ModuleLibrary, want: domain.LayoutBundle},
		{layout: "app", typ: domain.Executable, want: domain.LayoutApp},
		{layout: "framework", typ: domain.StaticLibrary, wantErr: true},
		{layout: "app", typ: domain.SharedLibrary, wantErr: true},
		{layout: "dmg", typ: domain.Executable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.layout+"/"+tt.typ.String(), func(t *testing.T) {
			got, err := domain.ParseBundleLayout(tt.layout, tt.typ)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidLayout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArtifact_BundleExt(t *testing.T) {
	a := &domain.Artifact{Name: domain.NewInternedString("plugin"), Type: domain.ModuleLibrary}
	assert.Equal(t, "bundle", a.BundleExt())
	a.BundleExtension = "plugin"
	assert.Equal(t, "plugin", a.BundleExt())
}
