// Package app implements the application layer for exportgen.
package app

import (
	"context"
	"errors"
	"fmt"
	"path"
	"runtime"
	"slices"

	"go.trai.ch/exportgen/internal/adapters/fs"        //nolint:depguard // Dry runs write to memory
	"go.trai.ch/exportgen/internal/adapters/telemetry" //nolint:depguard // Fallback when no recorder is wired
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/exportgen/internal/engine/exporter"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.PlanLoader
	evaluator ports.ExpressionEvaluator
	generator *exporter.Generator
	store     ports.ManifestStore
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance. A nil telemetry records nothing.
func New(
	loader ports.PlanLoader,
	evaluator ports.ExpressionEvaluator,
	generator *exporter.Generator,
	store ports.ManifestStore,
	log ports.Logger,
	tel ports.Telemetry,
) *App {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &App{
		loader:    loader,
		evaluator: evaluator,
		generator: generator,
		store:     store,
		logger:    log,
		telemetry: tel,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// Plan is the plan file, or a directory to discover it from.
	Plan string
	// ExportSets restricts generation to the named export sets. Empty generates all.
	ExportSets []string
	// Jobs limits the installations generated concurrently. Zero uses the CPU count.
	Jobs int
	// FailFast stops starting new installations after the first failure.
	FailFast bool
	// DryRun generates into memory; nothing is written or recorded.
	DryRun bool
}

// Generate writes the descriptors of every selected installation of the plan.
// Results are returned in installation order; failed installations are skipped.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) ([]domain.GenerationResult, error) {
	plan, err := a.loadPlan(opts.Plan)
	if err != nil {
		return nil, err
	}

	gen := a.generator
	if opts.DryRun {
		gen = exporter.New(a.evaluator, fs.NewMemoryOpener())
	}

	results, err := a.generate(ctx, plan, gen, opts)
	if opts.DryRun {
		return results, err
	}

	var storeErrs error
	for i := range results {
		storeErrs = errors.Join(storeErrs, a.store.Put(results[i]))
	}
	if storeErrs != nil {
		err = errors.Join(err, zerr.Wrap(storeErrs, "failed to record generation results"))
	}
	return results, err
}

// Check generates the selected installations in memory and verifies that each
// deferred reference to another export set is provided by one of them.
func (a *App) Check(ctx context.Context, opts GenerateOptions) error {
	plan, err := a.loadPlan(opts.Plan)
	if err != nil {
		return err
	}

	gen := exporter.New(a.evaluator, fs.NewMemoryOpener())
	opts.DryRun = true
	results, err := a.generate(ctx, plan, gen, opts)
	if err != nil {
		return err
	}

	provided := providedTargets(plan.Registry, results)
	var errs error
	for i := range results {
		for _, name := range results[i].MissingTargets {
			if _, ok := provided[name]; ok {
				continue
			}
			errs = errors.Join(errs, zerr.With(zerr.With(domain.ErrUnresolvedMissingTarget,
				"export_set", results[i].ExportSet),
				"target", name))
		}
	}
	if errs != nil {
		return errs
	}

	a.logger.Info(fmt.Sprintf("checked %d installations", len(results)))
	return nil
}

// Files returns the recorded generation results, optionally restricted to export sets.
func (a *App) Files(_ context.Context, exportSets []string) ([]domain.GenerationResult, error) {
	results, err := a.store.List()
	if err != nil {
		return nil, err
	}
	if len(exportSets) == 0 {
		return results, nil
	}
	return slices.DeleteFunc(results, func(r domain.GenerationResult) bool {
		return !slices.Contains(exportSets, r.ExportSet)
	}), nil
}

func (a *App) loadPlan(planPath string) (*domain.Plan, error) {
	if planPath == "" {
		planPath = "."
	}
	plan, err := a.loader.Load(planPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load plan")
	}
	return plan, nil
}

// generate runs the selected installations of plan concurrently.
func (a *App) generate(
	ctx context.Context,
	plan *domain.Plan,
	gen *exporter.Generator,
	opts GenerateOptions,
) ([]domain.GenerationResult, error) {
	ids, err := selectInstallations(plan.Registry, opts.ExportSets)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		a.logger.Warn("no installations to generate")
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g := &errgroup.Group{}
	gctx := ctx
	if opts.FailFast {
		g, gctx = errgroup.WithContext(ctx)
	}
	g.SetLimit(jobs)

	results := make([]*domain.GenerationResult, len(ids))
	errs := make([]error, len(ids))
	skipped := make([]bool, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			if gctx.Err() != nil {
				skipped[i] = true
				return nil
			}
			results[i], errs[i] = a.generateOne(gctx, plan, gen, id)
			if opts.FailFast {
				return errs[i]
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.GenerationResult, 0, len(ids))
	var failed error
	numSkipped := 0
	for i := range ids {
		if skipped[i] {
			numSkipped++
			continue
		}
		if errs[i] != nil {
			a.logger.Error(errs[i])
			failed = errors.Join(failed, errs[i])
		}
		if results[i] != nil {
			out = append(out, *results[i])
		}
	}
	if numSkipped > 0 {
		a.logger.Warn(fmt.Sprintf("skipped %d installations", numSkipped))
		failed = errors.Join(failed, ctx.Err())
	}
	if failed != nil {
		return out, errors.Join(domain.ErrGenerationFailed, failed)
	}

	if !opts.DryRun {
		a.logger.Info(fmt.Sprintf("generated %d installations", len(out)))
	}
	return out, nil
}

func (a *App) generateOne(
	ctx context.Context,
	plan *domain.Plan,
	gen *exporter.Generator,
	id domain.InstallationID,
) (*domain.GenerationResult, error) {
	inst := plan.Registry.Installation(id)
	set := plan.Registry.ExportSet(inst.ExportSet)

	ctx, vertex := a.telemetry.Record(ctx, "export "+set.Name+" to "+path.Join(inst.Destination, inst.FileName))
	result, err := gen.Generate(ctx, plan.Registry, id, exporter.Request{
		Platform:       plan.Platform,
		Configurations: plan.Configurations,
		StagingDir:     exporter.StagingDir(plan.OutputDir, inst.Destination),
	})
	vertex.Complete(err)
	return result, err
}

// selectInstallations returns the installations of the named export sets, or all
// installations when names is empty.
func selectInstallations(registry *domain.Registry, names []string) ([]domain.InstallationID, error) {
	for _, name := range names {
		if _, ok := registry.ExportSetByName(name); !ok {
			return nil, zerr.With(domain.ErrUnknownExportSet, "export_set", name)
		}
	}

	var ids []domain.InstallationID
	for id, inst := range registry.Installations() {
		if len(names) > 0 && !slices.Contains(names, registry.ExportSet(inst.ExportSet).Name) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// providedTargets returns every namespaced name the generated results export.
func providedTargets(registry *domain.Registry, results []domain.GenerationResult) map[string]struct{} {
	provided := make(map[string]struct{})
	for i := range results {
		id, ok := registry.ExportSetByName(results[i].ExportSet)
		if !ok {
			continue
		}
		set := registry.ExportSet(id)
		for j := range set.Targets {
			provided[results[i].Namespace+set.Targets[j].Artifact.Name.String()] = struct{}{}
		}
	}
	return provided
}
