package exporter

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
)

// generateConfig writes the descriptor of one configuration. Installations that do
// not apply to config are skipped. A prefix conflict or a failed open leaves the
// configuration without a descriptor; the other configurations are unaffected.
func (p *pass) generateConfig(ctx context.Context, config string) error {
	if !p.inst.InstallsForConfig(config) {
		return nil
	}

	label := domain.ConfigLabel(config)
	file := filepath.Join(p.req.StagingDir, p.base+"-"+label+p.ext)
	suffix := domain.PropertySuffix(config)

	state := &importPrefixState{}
	loc := &locationResolver{
		platform:    p.req.Platform,
		exportSet:   p.set.Name,
		installDest: p.inst.Destination,
		state:       state,
	}

	var missing domain.MissingTargets
	var body strings.Builder
	var errs error
	for i := range p.set.Targets {
		te := &p.set.Targets[i]
		a := te.Artifact

		props := domain.NewPropertyMap()
		locations := make(map[string]struct{})
		for _, in := range te.Installers() {
			if err := loc.resolve(a, in, config, suffix, props, locations); err != nil {
				return errors.Join(errs, err)
			}
		}
		// The artifact is not installed for this configuration.
		if props.Len() == 0 {
			continue
		}

		errs = errors.Join(errs,
			p.setDetailProperties(a, config, suffix, props, &missing),
			p.setLinkInterface(a, config, suffix, props, &missing),
		)

		name := p.targetName(a)
		writeImportProperties(&body, name, config, props)
		writeFileChecks(&body, name, props, slices.Sorted(maps.Keys(locations)))
	}

	var b strings.Builder
	writeConfigHeader(&b, config)
	if state.used {
		writePrefixPreamble(&b, prefixWalks(p.inst.Destination))
	}
	b.WriteString(body.String())
	if state.used {
		writePrefixCleanup(&b)
	}
	writeFooter(&b)

	if err := p.writeFile(file, b.String()); err != nil {
		return errors.Join(errs, err)
	}
	p.result.ConfigFiles[label] = file
	p.missing.Merge(&missing)

	if v := ports.VertexFromContext(ctx); v != nil {
		v.Log(domain.LogLevelDebug, "generated "+file)
	}
	return errs
}

// setDetailProperties adds the soname and link metadata of a.
func (p *pass) setDetailProperties(
	a *domain.Artifact,
	config, suffix string,
	props *domain.PropertyMap,
	missing *domain.MissingTargets,
) error {
	platform := p.req.Platform
	if (a.Type == domain.SharedLibrary || a.Type == domain.ModuleLibrary) && !platform.IsDLL() {
		if a.HasSOName(platform) {
			props.Set("IMPORTED_SONAME"+suffix, a.SOName(config, platform))
		} else {
			props.Set("IMPORTED_NO_SONAME"+suffix, "TRUE")
		}
	}

	if !hasLinkInterface(a) {
		return nil
	}
	errs := errors.Join(
		p.setLinkProperty(a, "IMPORTED_LINK_INTERFACE_LANGUAGES"+suffix, a.LinkLanguages, props, missing),
		p.setLinkProperty(a, "IMPORTED_LINK_DEPENDENT_LIBRARIES"+suffix, a.LinkDependentLibraries, props, missing),
	)
	if a.LinkMultiplicity > 0 {
		props.Set("IMPORTED_LINK_INTERFACE_MULTIPLICITY"+suffix, strconv.Itoa(a.LinkMultiplicity))
	}
	return errs
}

func (p *pass) setLinkProperty(
	a *domain.Artifact,
	key string,
	libs []string,
	props *domain.PropertyMap,
	missing *domain.MissingTargets,
) error {
	if len(libs) == 0 {
		return nil
	}
	value, err := p.deps.resolveList(a, strings.Join(libs, ";"), missing)
	if err != nil {
		return err
	}
	props.Set(key, value)
	return nil
}

// setLinkInterface adds the libraries consumers of a must also link. The
// configuration-specific declaration wins over the generic one. A resolution
// failure leaves the property unset.
func (p *pass) setLinkInterface(
	a *domain.Artifact,
	config, suffix string,
	props *domain.PropertyMap,
	missing *domain.MissingTargets,
) error {
	if !hasLinkInterface(a) {
		return nil
	}
	input, ok := a.Property("LINK_INTERFACE_LIBRARIES" + suffix)
	if !ok {
		if input, ok = a.Property("LINK_INTERFACE_LIBRARIES"); !ok {
			return nil
		}
	}

	key := "IMPORTED_LINK_INTERFACE_LIBRARIES" + suffix
	if input == "" {
		props.Set(key, "")
		return nil
	}

	value, err := p.gen.evaluator.Evaluate(input, domain.InstallInterface, a)
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	if value, err = p.deps.resolveList(a, value, missing); err != nil {
		return err
	}
	props.Set(key, value)
	return nil
}

// hasLinkInterface reports whether consumers link against a.
func hasLinkInterface(a *domain.Artifact) bool {
	return a.IsLibrary() || a.ExecutableWithExports
}
