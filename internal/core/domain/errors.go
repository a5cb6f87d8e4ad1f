package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateArtifact is returned when an export set lists the same artifact more than once.
	ErrDuplicateArtifact = zerr.New("export set includes artifact more than once")

	// ErrStreamOpenFailed is returned when a descriptor file cannot be opened for writing.
	ErrStreamOpenFailed = zerr.New("cannot write to file")

	// ErrStreamWriteFailed is returned when writing or closing a descriptor file fails.
	ErrStreamWriteFailed = zerr.New("failed to write descriptor file")

	// ErrDependencyNotExported is returned when an exported artifact requires an artifact
	// that is not part of any export set.
	ErrDependencyNotExported = zerr.New("required artifact is not in any export set")

	// ErrAmbiguousDependency is returned when a required artifact is exported under more than
	// one namespace by other export sets.
	ErrAmbiguousDependency = zerr.New("required artifact is exported under more than one namespace")

	// ErrPrefixConflict is returned when an installation with an absolute destination
	// references an artifact installed to a relative destination.
	ErrPrefixConflict = zerr.New("absolute export destination references artifact with relative destination")

	// ErrUnbalancedExpression is returned when a generator expression is missing its closing bracket.
	ErrUnbalancedExpression = zerr.New("unbalanced generator expression")

	// ErrInvalidTargetNameExpression is returned when a $<TARGET_NAME:...> expression is
	// incomplete, not a literal, or does not name a reachable artifact.
	ErrInvalidTargetNameExpression = zerr.New("invalid $<TARGET_NAME:...> expression")

	// ErrInstallationNotFound is returned when an installation id is not part of the registry.
	ErrInstallationNotFound = zerr.New("installation not found")

	// ErrExportSetAlreadyExists is returned when two export sets share a name.
	ErrExportSetAlreadyExists = zerr.New("export set already exists")

	// ErrArtifactAlreadyExists is returned when two artifacts share a name.
	ErrArtifactAlreadyExists = zerr.New("artifact already exists")

	// ErrUnknownExportSet is returned when an installation or filter names an undefined export set.
	ErrUnknownExportSet = zerr.New("unknown export set")

	// ErrUnknownArtifact is returned when an export set references an undefined artifact.
	ErrUnknownArtifact = zerr.New("unknown artifact")

	// ErrInvalidArtifactType is returned when an artifact type is not recognised.
	ErrInvalidArtifactType = zerr.New("invalid artifact type, expected 'static', 'shared', 'module' or 'executable'")

	// ErrInvalidLayout is returned when a packaging layout is unknown or does not fit the artifact type.
	ErrInvalidLayout = zerr.New("invalid packaging layout")

	// ErrInvalidPlatform is returned when the plan names an unsupported platform.
	ErrInvalidPlatform = zerr.New("invalid platform, expected 'linux', 'darwin', 'windows' or 'cygwin'")

	// ErrMissingFileName is returned when an installation does not name its descriptor file.
	ErrMissingFileName = zerr.New("installation is missing a descriptor file name")

	// ErrMissingDestination is returned when an installer or installation has no destination.
	ErrMissingDestination = zerr.New("missing destination")

	// ErrPlanNotFound is returned when no plan file can be discovered.
	ErrPlanNotFound = zerr.New("could not find exportgen.yaml or exportgen.jsonc")

	// ErrPlanReadFailed is returned when the plan file cannot be read.
	ErrPlanReadFailed = zerr.New("failed to read plan file")

	// ErrPlanParseFailed is returned when the plan file cannot be parsed.
	ErrPlanParseFailed = zerr.New("failed to parse plan file")

	// ErrGenerationFailed is returned when one or more installations failed to generate.
	ErrGenerationFailed = zerr.New("descriptor generation failed")

	// ErrUnresolvedMissingTarget is returned by eager validation when a deferred reference
	// is not exported by any installation of the plan.
	ErrUnresolvedMissingTarget = zerr.New("referenced target is not provided by any installation")

	// ErrStoreCreateFailed is returned when the manifest store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create manifest store directory")

	// ErrStoreReadFailed is returned when the manifest cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read manifest")

	// ErrStoreUnmarshalFailed is returned when the manifest cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal manifest")

	// ErrStoreMarshalFailed is returned when the manifest cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrStoreWriteFailed is returned when the manifest cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write manifest")
)
