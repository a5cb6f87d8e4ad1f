// Package exporter generates the import descriptors of installed export sets.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request holds the build-wide inputs of one generation pass.
type Request struct {
	Platform domain.Platform
	// Configurations are generated in order. Empty generates the unconfigured descriptor.
	Configurations []string
	// StagingDir receives the generated files.
	StagingDir string
}

// Generator produces the main and per-configuration descriptors of installations.
// A Generator holds no per-pass state and may run passes concurrently as long as
// the registry is not mutated.
type Generator struct {
	evaluator ports.ExpressionEvaluator
	opener    ports.StreamOpener
}

// New creates a new Generator.
func New(evaluator ports.ExpressionEvaluator, opener ports.StreamOpener) *Generator {
	return &Generator{
		evaluator: evaluator,
		opener:    opener,
	}
}

// StagingDir returns the directory descriptors for destination are written to below outputDir.
func StagingDir(outputDir, destination string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%016x", xxhash.Sum64String(destination)))
}

// pass is the state of one installation's generation.
type pass struct {
	gen      *Generator
	registry *domain.Registry
	inst     *domain.Installation
	set      *domain.ExportSet
	req      Request

	base string
	ext  string

	deps    *dependencyResolver
	missing domain.MissingTargets
	result  *domain.GenerationResult
}

// Generate writes the descriptors of one installation.
//
// A duplicate artifact fails the pass before anything is written. Failures of
// single configurations or artifacts are joined into the returned error while the
// remaining output is still generated; the result is non-nil whenever the main
// descriptor was written.
func (g *Generator) Generate(
	ctx context.Context,
	registry *domain.Registry,
	id domain.InstallationID,
	req Request,
) (*domain.GenerationResult, error) {
	inst := registry.Installation(id)
	if inst == nil {
		return nil, zerr.With(domain.ErrInstallationNotFound, "installation_id", int(id))
	}
	set := registry.ExportSet(inst.ExportSet)
	if set == nil {
		return nil, zerr.With(domain.ErrUnknownExportSet, "export_set_id", int(inst.ExportSet))
	}

	exported, err := collectTargets(set)
	if err != nil {
		return nil, err
	}

	ext := path.Ext(inst.FileName)
	p := &pass{
		gen:      g,
		registry: registry,
		inst:     inst,
		set:      set,
		req:      req,
		base:     strings.TrimSuffix(inst.FileName, ext),
		ext:      ext,
		deps: &dependencyResolver{
			registry:  registry,
			exportSet: set.Name,
			namespace: inst.Namespace,
			exported:  exported,
		},
		result: &domain.GenerationResult{
			ExportSet:   set.Name,
			Namespace:   inst.Namespace,
			Destination: inst.Destination,
			StagingDir:  req.StagingDir,
			MainFile:    filepath.Join(req.StagingDir, inst.FileName),
			ConfigFiles: make(map[string]string),
			Hashes:      make(map[string]string),
		},
	}
	return p.run(ctx)
}

// collectTargets returns the artifacts of set, failing on the first repeated one.
func collectTargets(set *domain.ExportSet) (map[domain.InternedString]struct{}, error) {
	exported := make(map[domain.InternedString]struct{}, len(set.Targets))
	for i := range set.Targets {
		name := set.Targets[i].Artifact.Name
		if _, dup := exported[name]; dup {
			return nil, zerr.With(zerr.With(domain.ErrDuplicateArtifact,
				"export_set", set.Name),
				"artifact", name.String())
		}
		exported[name] = struct{}{}
	}
	return exported, nil
}

func (p *pass) run(ctx context.Context) (*domain.GenerationResult, error) {
	var b strings.Builder
	var errs error

	writeMainPrologue(&b)

	expected := make([]string, 0, len(p.set.Targets))
	for i := range p.set.Targets {
		expected = append(expected, p.targetName(p.set.Targets[i].Artifact))
	}
	writeExpectedTargets(&b, expected)

	populator := &interfacePopulator{
		evaluator: p.gen.evaluator,
		registry:  p.registry,
		deps:      p.deps,
	}
	for i := range p.set.Targets {
		a := p.set.Targets[i].Artifact
		name := p.targetName(a)
		writeCreateTarget(&b, name, a, p.req.Platform)

		props, err := populator.populate(a, &p.missing)
		errs = errors.Join(errs, err)
		writeInterfaceProperties(&b, name, props)
	}

	writeConfigLoader(&b, p.base+"-*"+p.ext)
	writeFileCheckLoop(&b)

	for _, config := range uniqueConfigs(p.req.Configurations) {
		if err := ctx.Err(); err != nil {
			errs = errors.Join(errs, err)
			break
		}
		errs = errors.Join(errs, p.generateConfig(ctx, config))
	}

	p.result.MissingTargets = p.missing.Unique()
	writeMissingTargetsCheck(&b, p.result.MissingTargets)
	writeMainEpilogue(&b)

	if err := p.writeFile(p.result.MainFile, b.String()); err != nil {
		return nil, errors.Join(errs, err)
	}
	return p.result, errs
}

// uniqueConfigs drops configurations that only differ in case from an earlier
// one, since they share a descriptor file. Empty yields the unconfigured build.
func uniqueConfigs(configs []string) []string {
	if len(configs) == 0 {
		return []string{""}
	}
	out := make([]string, 0, len(configs))
	seen := make(map[string]struct{}, len(configs))
	for _, config := range configs {
		label := domain.ConfigLabel(config)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, config)
	}
	return out
}

// targetName returns the name consumers use for an artifact of this installation.
func (p *pass) targetName(a *domain.Artifact) string {
	return p.inst.Namespace + a.Name.String()
}

// writeFile writes content through the stream opener and records its hash.
func (p *pass) writeFile(file, content string) error {
	w, err := p.gen.opener.OpenForWrite(file)
	if err != nil {
		return errors.Join(domain.ErrStreamOpenFailed, zerr.With(err, "path", file))
	}
	if _, err := io.WriteString(w, content); err != nil {
		_ = w.Close()
		return errors.Join(domain.ErrStreamWriteFailed, zerr.With(err, "path", file))
	}
	if err := w.Close(); err != nil {
		return errors.Join(domain.ErrStreamWriteFailed, zerr.With(err, "path", file))
	}
	p.result.Hashes[file] = fmt.Sprintf("%016x", xxhash.Sum64String(content))
	return nil
}
