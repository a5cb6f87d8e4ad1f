package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/exportgen/internal/core/domain"
)

func TestAppliesToConfig(t *testing.T) {
	assert.True(t, domain.AppliesToConfig(nil, ""))
	assert.True(t, domain.AppliesToConfig(nil, "Release"))
	assert.True(t, domain.AppliesToConfig([]string{"Release"}, "release"))
	assert.False(t, domain.AppliesToConfig([]string{"Release"}, "Debug"))
	assert.False(t, domain.AppliesToConfig([]string{"Release"}, ""))
}

func TestConfigNames(t *testing.T) {
	tests := []struct {
		config string
		label  string
		suffix string
	}{
		{config: "", label: "noconfig", suffix: "_NOCONFIG"},
		{config: "Release", label: "release", suffix: "_RELEASE"},
		{config: "RelWithDebInfo", label: "relwithdebinfo", suffix: "_RELWITHDEBINFO"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, domain.ConfigLabel(tt.config))
			assert.Equal(t, tt.suffix, domain.PropertySuffix(tt.config))
		})
	}
}

func TestIsAbsolutePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/usr/lib/cmake", want: true},
		{path: `\\server\share`, want: true},
		{path: "~/cmake", want: true},
		{path: "C:/Program Files", want: true},
		{path: `c:\cmake`, want: true},
		{path: "C:", want: false},
		{path: "C:cmake", want: false},
		{path: "1:/cmake", want: false},
		{path: "lib/cmake/core", want: false},
		{path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsAbsolutePath(tt.path))
		})
	}
}

func TestInstallsForConfig(t *testing.T) {
	var missing *domain.Installer
	assert.False(t, missing.InstallsForConfig("Release"))

	in := &domain.Installer{Destination: "lib", Configurations: []string{"Debug"}}
	assert.True(t, in.InstallsForConfig("DEBUG"))
	assert.False(t, in.InstallsForConfig("Release"))

	inst := &domain.Installation{Configurations: []string{"Release"}}
	assert.True(t, inst.InstallsForConfig("Release"))
	assert.False(t, inst.InstallsForConfig("Debug"))
}
