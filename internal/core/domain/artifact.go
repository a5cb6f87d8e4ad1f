package domain

import "strings"

// ArtifactType is the kind of binary an artifact produces.
type ArtifactType uint8

const (
	// Executable is a runnable program.
	Executable ArtifactType = iota
	// StaticLibrary is an archive linked at build time.
	StaticLibrary
	// SharedLibrary is a dynamically linked library.
	SharedLibrary
	// ModuleLibrary is a dynamically loaded plugin that is never linked against.
	ModuleLibrary
)

// ParseArtifactType converts a plan value to an ArtifactType.
func ParseArtifactType(s string) (ArtifactType, error) {
	switch strings.ToLower(s) {
	case "executable", "exe":
		return Executable, nil
	case "static":
		return StaticLibrary, nil
	case "shared":
		return SharedLibrary, nil
	case "module":
		return ModuleLibrary, nil
	default:
		return 0, ErrInvalidArtifactType
	}
}

// String returns the plan spelling of the type.
func (t ArtifactType) String() string {
	switch t {
	case StaticLibrary:
		return "static"
	case SharedLibrary:
		return "shared"
	case ModuleLibrary:
		return "module"
	default:
		return "executable"
	}
}

// BundleLayout is the Apple packaging layout of an artifact.
type BundleLayout uint8

const (
	// LayoutPlain installs a single file.
	LayoutPlain BundleLayout = iota
	// LayoutFramework installs a shared library as <name>.framework/<name>.
	LayoutFramework
	// LayoutBundle installs a module as <name>.<ext>/<name>.
	LayoutBundle
	// LayoutApp installs an executable as <name>.app/Contents/MacOS/<name>.
	LayoutApp
)

// ParseBundleLayout converts a plan value to a BundleLayout and checks it fits the artifact type.
func ParseBundleLayout(s string, t ArtifactType) (BundleLayout, error) {
	var layout BundleLayout
	switch strings.ToLower(s) {
	case "", "plain":
		return LayoutPlain, nil
	case "framework":
		layout = LayoutFramework
	case "bundle":
		layout = LayoutBundle
	case "app":
		layout = LayoutApp
	default:
		return 0, ErrInvalidLayout
	}

	switch {
	case layout == LayoutFramework && t == SharedLibrary,
		layout == LayoutBundle && t == ModuleLibrary,
		layout == LayoutApp && t == Executable:
		return layout, nil
	default:
		return 0, ErrInvalidLayout
	}
}

// Artifact is one buildable unit eligible for export, as seen by the build that produced it.
type Artifact struct {
	Name   InternedString
	Type   ArtifactType
	Layout BundleLayout

	// OutputName is the base file name; the artifact name is used when empty.
	OutputName   string
	Prefix       string
	Suffix       string
	ImportPrefix string
	ImportSuffix string

	Version   string
	SOVersion string
	NoSOName  bool
	// InstallNameDir is the directory part of the Apple install name.
	InstallNameDir string
	// BundleExtension is the loadable bundle extension; DefaultBundleExtension when empty.
	BundleExtension string
	// Postfixes maps an upper-cased configuration to the postfix appended to OutputName.
	Postfixes map[string]string

	// ExecutableWithExports marks executables that plugins link against.
	ExecutableWithExports bool
	// Imported artifacts come from another package and are never namespaced.
	Imported bool

	// Properties holds build-time property values, which may contain generator expressions.
	Properties map[string]string

	// LinkImplementation names the libraries the artifact links against when built.
	LinkImplementation []string
	// LinkLanguages lists the languages a static archive needs from its consumer's linker.
	LinkLanguages []string
	// LinkDependentLibraries lists shared libraries the runtime loader must find.
	LinkDependentLibraries []string
	// LinkMultiplicity is the repeat count for cyclic static archive groups.
	LinkMultiplicity int
}

// Property returns a build-time property and whether it is set.
func (a *Artifact) Property(name string) (string, bool) {
	v, ok := a.Properties[name]
	return v, ok
}

// BaseName returns the output name with the configuration postfix applied.
func (a *Artifact) BaseName(config string) string {
	name := a.OutputName
	if name == "" {
		name = a.Name.String()
	}
	return name + a.Postfixes[strings.ToUpper(config)]
}

// BundleExt returns the loadable bundle extension.
func (a *Artifact) BundleExt() string {
	if a.BundleExtension == "" {
		return DefaultBundleExtension
	}
	return a.BundleExtension
}

// LayoutOn returns the packaging layout used on platform p.
// Bundle layouts only exist on Apple platforms; elsewhere the artifact is a plain file.
func (a *Artifact) LayoutOn(p Platform) BundleLayout {
	if !p.IsApple() {
		return LayoutPlain
	}
	return a.Layout
}

// IsLibrary reports whether the artifact is a static, shared or module library.
func (a *Artifact) IsLibrary() bool {
	return a.Type != Executable
}
