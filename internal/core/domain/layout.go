package domain

import "path/filepath"

const (
	// ToolDirName is the name of the internal state directory.
	ToolDirName = ".exportgen"

	// ManifestFileName is the name of the generation manifest inside the state directory.
	ManifestFileName = "manifest.json"

	// PlanFileName is the name of the YAML install plan.
	PlanFileName = "exportgen.yaml"

	// PlanFileNameJSONC is the name of the JSONC install plan.
	PlanFileNameJSONC = "exportgen.jsonc"

	// DefaultOutputDir is the staging directory used when the plan does not set one.
	DefaultOutputDir = "build/export"

	// DefaultBundleExtension is the loadable bundle extension used when an artifact sets none.
	DefaultBundleExtension = "bundle"

	// NoConfigLabel names the per-configuration descriptor of an unconfigured build.
	NoConfigLabel = "noconfig"

	// ImportPrefixVar is the variable holding the installation prefix at consumption time.
	ImportPrefixVar = "_IMPORT_PREFIX"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultManifestPath returns the default path of the generation manifest.
// It joins .exportgen and manifest.json.
func DefaultManifestPath() string {
	return filepath.Join(ToolDirName, ManifestFileName)
}
