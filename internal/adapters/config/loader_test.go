package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/adapters/config"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const yamlPlan = `
version: "1"
platform: linux
configurations: [Debug, Release]
artifacts:
  - name: core
    type: shared
    version: "1.2.3"
    soversion: "1"
    postfixes:
      debug: _d
    properties:
      INTERFACE_INCLUDE_DIRECTORIES: "$<INSTALL_INTERFACE:include>"
    link:
      implementation: [zlib]
  - name: tool
    type: executable
    prefix: "x-"
exportSets:
  - name: CoreTargets
    targets:
      - artifact: core
        library:
          destination: lib
        archive:
          destination: lib
          configurations: [Release]
      - artifact: tool
        runtime:
          destination: bin
installations:
  - exportSet: CoreTargets
    namespace: "Core::"
    destination: lib/cmake/core
    fileName: CoreTargets.cmake
`

func writePlan(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writePlan(t, dir, domain.PlanFileName, yamlPlan)

	plan, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformLinux, plan.Platform)
	assert.Equal(t, []string{"Debug", "Release"}, plan.Configurations)
	assert.Equal(t, filepath.Join(dir, domain.DefaultOutputDir), plan.OutputDir)

	core, ok := plan.Registry.Artifact("core")
	require.True(t, ok)
	assert.Equal(t, domain.SharedLibrary, core.Type)
	assert.Equal(t, "lib", core.Prefix)
	assert.Equal(t, ".so", core.Suffix)
	assert.Equal(t, "_d", core.Postfixes["DEBUG"])
	assert.Equal(t, []string{"zlib"}, core.LinkImplementation)
	assert.Equal(t, "libcore_d.so.1.2.3", core.FileName("Debug", domain.NameReal, plan.Platform))

	tool, ok := plan.Registry.Artifact("tool")
	require.True(t, ok)
	assert.Equal(t, "x-", tool.Prefix)

	setID, ok := plan.Registry.ExportSetByName("CoreTargets")
	require.True(t, ok)
	set := plan.Registry.ExportSet(setID)
	require.Len(t, set.Targets, 2)
	require.NotNil(t, set.Targets[0].Library)
	assert.Equal(t, domain.InstallLibrary, set.Targets[0].Library.Kind)
	assert.Equal(t, []string{"Release"}, set.Targets[0].Archive.Configurations)
	assert.Nil(t, set.Targets[0].Runtime)
	assert.Equal(t, domain.InstallRuntime, set.Targets[1].Runtime.Kind)

	require.Equal(t, 1, plan.Registry.NumInstallations())
	inst := plan.Registry.Installation(0)
	assert.Equal(t, setID, inst.ExportSet)
	assert.Equal(t, "Core::", inst.Namespace)
	assert.Equal(t, "CoreTargets.cmake", inst.FileName)
}

func TestLoad_JSONC(t *testing.T) {
	dir := t.TempDir()
	path := writePlan(t, dir, domain.PlanFileNameJSONC, `{
  // Windows build
  "platform": "windows",
  "outputDir": "/tmp/export",
  "artifacts": [
    {"name": "core", "type": "shared"},
  ],
  "exportSets": [
    {"name": "CoreTargets", "targets": [
      {"artifact": "core", "runtime": {"destination": "bin"}, "archive": {"destination": "lib", "importLibrary": true}},
    ]},
  ],
  "installations": [
    {"exportSet": "CoreTargets", "destination": "cmake", "fileName": "CoreTargets.cmake"},
  ],
}`)

	plan, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformWindows, plan.Platform)
	assert.Equal(t, "/tmp/export", plan.OutputDir)

	core, ok := plan.Registry.Artifact("core")
	require.True(t, ok)
	assert.Equal(t, ".dll", core.Suffix)
	assert.Equal(t, ".lib", core.ImportSuffix)

	setID, _ := plan.Registry.ExportSetByName("CoreTargets")
	assert.True(t, plan.Registry.ExportSet(setID).Targets[0].Archive.ImportLibrary)
}

func TestLoad_Discovery(t *testing.T) {
	root := t.TempDir()
	writePlan(t, root, domain.PlanFileName, yamlPlan)
	nested := filepath.Join(root, "src", "core")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	plan, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, domain.DefaultOutputDir), plan.OutputDir)
	assert.Equal(t, 1, plan.Registry.NumInstallations())
}

func TestLoad_DiscoveryPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writePlan(t, dir, domain.PlanFileName, yamlPlan)
	writePlan(t, dir, domain.PlanFileNameJSONC, `{"platform": "windows"}`)

	plan, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformLinux, plan.Platform)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	require.ErrorContains(t, err, domain.ErrPlanNotFound.Error())
}

func TestLoad_WarnsAboutUninstalledSet(t *testing.T) {
	dir := t.TempDir()
	path := writePlan(t, dir, domain.PlanFileName, `
artifacts:
  - name: core
    type: static
exportSets:
  - name: Orphan
    targets:
      - artifact: core
        archive:
          destination: lib
`)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(`export set "Orphan" has no installation and is not generated`).Times(1)

	_, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantKey string
		wantVal any
	}{
		{
			name:    "invalid yaml",
			content: "artifacts: [",
			wantErr: domain.ErrPlanParseFailed,
		},
		{
			name:    "invalid platform",
			content: "platform: amiga",
			wantErr: domain.ErrInvalidPlatform,
			wantKey: "platform",
			wantVal: "amiga",
		},
		{
			name: "invalid type",
			content: `
artifacts:
  - name: core
    type: object`,
			wantErr: domain.ErrInvalidArtifactType,
			wantKey: "artifact",
			wantVal: "core",
		},
		{
			name: "layout does not fit type",
			content: `
artifacts:
  - name: core
    type: static
    layout: framework`,
			wantErr: domain.ErrInvalidLayout,
			wantKey: "layout",
			wantVal: "framework",
		},
		{
			name: "duplicate artifact",
			content: `
artifacts:
  - name: core
    type: static
  - name: core
    type: shared`,
			wantErr: domain.ErrArtifactAlreadyExists,
			wantKey: "artifact",
			wantVal: "core",
		},
		{
			name: "unknown artifact",
			content: `
exportSets:
  - name: CoreTargets
    targets:
      - artifact: ghost`,
			wantErr: domain.ErrUnknownArtifact,
			wantKey: "artifact",
			wantVal: "ghost",
		},
		{
			name: "installer without destination",
			content: `
artifacts:
  - name: core
    type: static
exportSets:
  - name: CoreTargets
    targets:
      - artifact: core
        archive: {}`,
			wantErr: domain.ErrMissingDestination,
			wantKey: "installer",
			wantVal: "archive",
		},
		{
			name: "unknown export set",
			content: `
installations:
  - exportSet: Ghost
    destination: lib
    fileName: GhostTargets.cmake`,
			wantErr: domain.ErrUnknownExportSet,
			wantKey: "export_set",
			wantVal: "Ghost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePlan(t, t.TempDir(), domain.PlanFileName, tt.content)

			_, err := newLoader(t).Load(path)
			require.ErrorContains(t, err, tt.wantErr.Error())

			if tt.wantKey == "" {
				return
			}
			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.wantVal, zErr.Metadata()[tt.wantKey])
		})
	}
}
