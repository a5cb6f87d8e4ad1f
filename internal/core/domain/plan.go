package domain

import "path"

// Plan is a fully populated install plan: the registry snapshot plus the
// build-wide settings every generation pass shares.
type Plan struct {
	Platform Platform
	// Configurations lists the build configurations in generation order.
	// An empty list generates the single unconfigured descriptor.
	Configurations []string
	// OutputDir is the root of the staging directories descriptors are written to.
	OutputDir string
	Registry  *Registry
}

// GenerationResult records what one generation pass produced for an installation.
type GenerationResult struct {
	ExportSet   string `json:"export_set"`
	Namespace   string `json:"namespace"`
	Destination string `json:"destination"`
	// StagingDir is the directory the descriptor files were written to.
	StagingDir string `json:"staging_dir"`
	MainFile   string `json:"main_file"`
	// ConfigFiles maps a configuration label to its per-configuration descriptor path.
	ConfigFiles map[string]string `json:"config_files"`
	// MissingTargets lists deferred cross-set references in first-seen order.
	MissingTargets []string `json:"missing_targets,omitempty"`
	// Hashes maps a written file path to the hex xxhash of its content.
	Hashes map[string]string `json:"hashes"`
}

// Key identifies the installed main descriptor the result belongs to.
func (r *GenerationResult) Key() string {
	return path.Join(r.Destination, path.Base(r.MainFile))
}
