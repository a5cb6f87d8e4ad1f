// Package config provides the install plan loader for exportgen.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.PlanLoader for YAML and JSONC plan files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the plan at path. A directory is searched upwards for a plan file.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	planPath := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if planPath, err = findPlan(path); err != nil {
			return nil, err
		}
	}

	var planfile Planfile
	if err := readAndUnmarshal(planPath, &planfile); err != nil {
		return nil, err
	}
	return l.buildPlan(&planfile, filepath.Dir(planPath))
}

// findPlan walks from dir to the filesystem root and returns the first plan file.
// The YAML plan wins over the JSONC one in the same directory.
func findPlan(dir string) (string, error) {
	currentDir := dir
	for {
		for _, name := range []string{domain.PlanFileName, domain.PlanFileNameJSONC} {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrPlanNotFound, "cwd", dir)
}

// readAndUnmarshal reads a plan file and decodes it by extension.
func readAndUnmarshal(planPath string, target *Planfile) error {
	// #nosec G304 -- planPath is provided by the user
	data, err := os.ReadFile(planPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlanReadFailed.Error()), "path", planPath)
	}

	switch strings.ToLower(filepath.Ext(planPath)) {
	case ".jsonc", ".json":
		err = json.Unmarshal(jsonc.ToJSON(data), target)
	default:
		err = yaml.Unmarshal(data, target)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPlanParseFailed.Error()), "path", planPath)
	}
	return nil
}

func (l *Loader) buildPlan(planfile *Planfile, planDir string) (*domain.Plan, error) {
	platform, err := domain.ParsePlatform(planfile.Platform)
	if err != nil {
		return nil, zerr.With(err, "platform", planfile.Platform)
	}

	registry := domain.NewRegistry()
	for i := range planfile.Artifacts {
		a, err := buildArtifact(&planfile.Artifacts[i], platform)
		if err != nil {
			return nil, err
		}
		if err := registry.AddArtifact(a); err != nil {
			return nil, err
		}
	}

	for i := range planfile.ExportSets {
		if err := addExportSet(registry, &planfile.ExportSets[i]); err != nil {
			return nil, err
		}
	}

	for i := range planfile.Installations {
		dto := &planfile.Installations[i]
		setID, ok := registry.ExportSetByName(dto.ExportSet)
		if !ok {
			return nil, zerr.With(domain.ErrUnknownExportSet, "export_set", dto.ExportSet)
		}
		if _, err := registry.AddInstallation(domain.Installation{
			ExportSet:      setID,
			Namespace:      dto.Namespace,
			Destination:    dto.Destination,
			FileName:       dto.FileName,
			Configurations: dto.Configurations,
		}); err != nil {
			return nil, err
		}
	}

	for id, set := range registry.ExportSets() {
		if !hasInstallation(registry, id) {
			l.Logger.Warn(fmt.Sprintf("export set %q has no installation and is not generated", set.Name))
		}
	}

	return &domain.Plan{
		Platform:       platform,
		Configurations: planfile.Configurations,
		OutputDir:      resolveOutputDir(planDir, planfile.OutputDir),
		Registry:       registry,
	}, nil
}

func buildArtifact(dto *ArtifactDTO, platform domain.Platform) (*domain.Artifact, error) {
	if dto.Name == "" {
		return nil, zerr.With(domain.ErrUnknownArtifact, "reason", "artifact without name")
	}
	typ, err := domain.ParseArtifactType(dto.Type)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "artifact", dto.Name), "type", dto.Type)
	}
	layout, err := domain.ParseBundleLayout(dto.Layout, typ)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "artifact", dto.Name), "layout", dto.Layout)
	}

	affixes := platform.DefaultAffixes(typ)
	importAffixes := platform.DefaultImportAffixes()

	return &domain.Artifact{
		Name:                   domain.NewInternedString(dto.Name),
		Type:                   typ,
		Layout:                 layout,
		OutputName:             dto.OutputName,
		Prefix:                 orDefault(dto.Prefix, affixes.Prefix),
		Suffix:                 orDefault(dto.Suffix, affixes.Suffix),
		ImportPrefix:           orDefault(dto.ImportPrefix, importAffixes.Prefix),
		ImportSuffix:           orDefault(dto.ImportSuffix, importAffixes.Suffix),
		Version:                dto.Version,
		SOVersion:              dto.SOVersion,
		NoSOName:               dto.NoSOName,
		InstallNameDir:         dto.InstallNameDir,
		BundleExtension:        dto.BundleExtension,
		Postfixes:              upperKeys(dto.Postfixes),
		ExecutableWithExports:  dto.ExportsSymbols,
		Imported:               dto.Imported,
		Properties:             dto.Properties,
		LinkImplementation:     dto.Link.Implementation,
		LinkLanguages:          dto.Link.Languages,
		LinkDependentLibraries: dto.Link.DependentLibraries,
		LinkMultiplicity:       dto.Link.Multiplicity,
	}, nil
}

func addExportSet(registry *domain.Registry, dto *ExportSetDTO) error {
	id, err := registry.AddExportSet(dto.Name)
	if err != nil {
		return err
	}
	for i := range dto.Targets {
		t := &dto.Targets[i]
		a, ok := registry.Artifact(t.Artifact)
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnknownArtifact, "export_set", dto.Name), "artifact", t.Artifact)
		}

		te := domain.TargetExport{Artifact: a}
		rules := []struct {
			dto  *InstallerDTO
			kind domain.InstallerKind
			dst  **domain.Installer
		}{
			{t.Archive, domain.InstallArchive, &te.Archive},
			{t.Library, domain.InstallLibrary, &te.Library},
			{t.Runtime, domain.InstallRuntime, &te.Runtime},
			{t.Framework, domain.InstallFramework, &te.Framework},
			{t.Bundle, domain.InstallBundle, &te.Bundle},
		}
		for _, rule := range rules {
			if rule.dto == nil {
				continue
			}
			if rule.dto.Destination == "" {
				return zerr.With(zerr.With(zerr.With(domain.ErrMissingDestination,
					"export_set", dto.Name),
					"artifact", t.Artifact),
					"installer", rule.kind.String())
			}
			*rule.dst = &domain.Installer{
				Kind:           rule.kind,
				Destination:    rule.dto.Destination,
				Configurations: rule.dto.Configurations,
				ImportLibrary:  rule.dto.ImportLibrary,
			}
		}

		if err := registry.AddTargetExport(id, te); err != nil {
			return err
		}
	}
	return nil
}

func hasInstallation(registry *domain.Registry, id domain.ExportSetID) bool {
	for range registry.InstallationsOf(id) {
		return true
	}
	return false
}

func resolveOutputDir(planDir, configured string) string {
	if configured == "" {
		configured = domain.DefaultOutputDir
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(planDir, configured)
}

func orDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// upperKeys keys configuration postfixes the way Artifact.BaseName looks them up.
func upperKeys(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	res := make(map[string]string, len(m))
	for k, v := range m {
		res[strings.ToUpper(k)] = v
	}
	return res
}
