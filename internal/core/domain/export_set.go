package domain

// InstallerKind identifies which install rule of an artifact a descriptor came from.
type InstallerKind uint8

const (
	// InstallArchive installs static archives and DLL import libraries.
	InstallArchive InstallerKind = iota
	// InstallLibrary installs shared and module libraries.
	InstallLibrary
	// InstallRuntime installs executables and DLLs.
	InstallRuntime
	// InstallFramework installs Apple frameworks.
	InstallFramework
	// InstallBundle installs Apple application bundles.
	InstallBundle
)

// String returns the install rule keyword.
func (k InstallerKind) String() string {
	switch k {
	case InstallArchive:
		return "archive"
	case InstallLibrary:
		return "library"
	case InstallRuntime:
		return "runtime"
	case InstallFramework:
		return "framework"
	default:
		return "bundle"
	}
}

// Installer describes where one install rule places an artifact's file.
type Installer struct {
	Kind        InstallerKind
	Destination string
	// Configurations restricts the rule; empty means every configuration.
	Configurations []string
	// ImportLibrary is set when the rule installs the linkable stub of a DLL.
	ImportLibrary bool
}

// InstallsForConfig reports whether the rule installs anything for config.
func (i *Installer) InstallsForConfig(config string) bool {
	return i != nil && AppliesToConfig(i.Configurations, config)
}

// TargetExport is one artifact entry of an export set with its install rules.
type TargetExport struct {
	Artifact  *Artifact
	Archive   *Installer
	Library   *Installer
	Runtime   *Installer
	Framework *Installer
	Bundle    *Installer
}

// Installers returns the five install rules in resolution order. Missing rules are nil.
func (te *TargetExport) Installers() [5]*Installer {
	return [5]*Installer{te.Archive, te.Library, te.Runtime, te.Framework, te.Bundle}
}

// ExportSetID indexes an export set in the registry arena.
type ExportSetID int

// ExportSet is a named, ordered group of artifacts exposed together to consumers.
type ExportSet struct {
	Name    string
	Targets []TargetExport
}

// Contains reports whether the set has an artifact of the given name.
func (s *ExportSet) Contains(name InternedString) bool {
	for i := range s.Targets {
		if s.Targets[i].Artifact.Name == name {
			return true
		}
	}
	return false
}

// InstallationID indexes an installation in the registry arena.
type InstallationID int

// Installation is one physical placement of an export set's descriptor.
type Installation struct {
	ExportSet ExportSetID
	// Namespace is prepended to every exported artifact name.
	Namespace string
	// Destination is where the descriptor files are installed, absolute or prefix-relative.
	Destination string
	// FileName is the main descriptor name, e.g. "FooTargets.cmake".
	FileName string
	// Configurations restricts which configurations get a descriptor; empty means all.
	Configurations []string
}

// InstallsForConfig reports whether the installation emits a descriptor for config.
func (i *Installation) InstallsForConfig(config string) bool {
	return AppliesToConfig(i.Configurations, config)
}
