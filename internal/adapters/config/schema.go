package config

// Planfile represents the structure of the exportgen.yaml and exportgen.jsonc plan files.
type Planfile struct {
	Version        string            `yaml:"version" json:"version"`
	Platform       string            `yaml:"platform" json:"platform"`
	Configurations []string          `yaml:"configurations" json:"configurations"`
	OutputDir      string            `yaml:"outputDir" json:"outputDir"`
	Artifacts      []ArtifactDTO     `yaml:"artifacts" json:"artifacts"`
	ExportSets     []ExportSetDTO    `yaml:"exportSets" json:"exportSets"`
	Installations  []InstallationDTO `yaml:"installations" json:"installations"`
}

// ArtifactDTO represents an artifact definition in the plan.
// Nil affixes fall back to the platform defaults.
type ArtifactDTO struct {
	Name            string            `yaml:"name" json:"name"`
	Type            string            `yaml:"type" json:"type"`
	Layout          string            `yaml:"layout" json:"layout"`
	OutputName      string            `yaml:"outputName" json:"outputName"`
	Prefix          *string           `yaml:"prefix" json:"prefix"`
	Suffix          *string           `yaml:"suffix" json:"suffix"`
	ImportPrefix    *string           `yaml:"importPrefix" json:"importPrefix"`
	ImportSuffix    *string           `yaml:"importSuffix" json:"importSuffix"`
	Version         string            `yaml:"version" json:"version"`
	SOVersion       string            `yaml:"soversion" json:"soversion"`
	NoSOName        bool              `yaml:"noSoname" json:"noSoname"`
	InstallNameDir  string            `yaml:"installNameDir" json:"installNameDir"`
	BundleExtension string            `yaml:"bundleExtension" json:"bundleExtension"`
	Postfixes       map[string]string `yaml:"postfixes" json:"postfixes"`
	ExportsSymbols  bool              `yaml:"executableWithExports" json:"executableWithExports"`
	Imported        bool              `yaml:"imported" json:"imported"`
	Properties      map[string]string `yaml:"properties" json:"properties"`
	Link            LinkDTO           `yaml:"link" json:"link"`
}

// LinkDTO represents the link information of an artifact.
type LinkDTO struct {
	Implementation     []string `yaml:"implementation" json:"implementation"`
	Languages          []string `yaml:"languages" json:"languages"`
	DependentLibraries []string `yaml:"dependentLibraries" json:"dependentLibraries"`
	Multiplicity       int      `yaml:"multiplicity" json:"multiplicity"`
}

// ExportSetDTO represents an export set definition in the plan.
type ExportSetDTO struct {
	Name    string      `yaml:"name" json:"name"`
	Targets []TargetDTO `yaml:"targets" json:"targets"`
}

// TargetDTO represents one artifact entry of an export set with its install rules.
type TargetDTO struct {
	Artifact  string        `yaml:"artifact" json:"artifact"`
	Archive   *InstallerDTO `yaml:"archive" json:"archive"`
	Library   *InstallerDTO `yaml:"library" json:"library"`
	Runtime   *InstallerDTO `yaml:"runtime" json:"runtime"`
	Framework *InstallerDTO `yaml:"framework" json:"framework"`
	Bundle    *InstallerDTO `yaml:"bundle" json:"bundle"`
}

// InstallerDTO represents an install rule.
type InstallerDTO struct {
	Destination    string   `yaml:"destination" json:"destination"`
	Configurations []string `yaml:"configurations" json:"configurations"`
	ImportLibrary  bool     `yaml:"importLibrary" json:"importLibrary"`
}

// InstallationDTO represents an installation of an export set's descriptor.
type InstallationDTO struct {
	ExportSet      string   `yaml:"exportSet" json:"exportSet"`
	Namespace      string   `yaml:"namespace" json:"namespace"`
	Destination    string   `yaml:"destination" json:"destination"`
	FileName       string   `yaml:"fileName" json:"fileName"`
	Configurations []string `yaml:"configurations" json:"configurations"`
}
