package exporter

import (
	"errors"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// compatibleInterfaceProperties list property names whose values consumers must agree on.
var compatibleInterfaceProperties = []string{
	"COMPATIBLE_INTERFACE_BOOL",
	"COMPATIBLE_INTERFACE_STRING",
	"COMPATIBLE_INTERFACE_NUMBER_MIN",
	"COMPATIBLE_INTERFACE_NUMBER_MAX",
}

// interfacePopulator derives the install-time usage requirements of an artifact.
type interfacePopulator struct {
	evaluator ports.ExpressionEvaluator
	registry  *domain.Registry
	deps      *dependencyResolver
}

// populate returns the interface properties of a, declared once in the main descriptor.
func (p *interfacePopulator) populate(a *domain.Artifact, missing *domain.MissingTargets) (*domain.PropertyMap, error) {
	props := domain.NewPropertyMap()

	errs := errors.Join(
		p.populateEvaluated("INTERFACE_INCLUDE_DIRECTORIES", a, props, missing),
		p.populateEvaluated("INTERFACE_COMPILE_DEFINITIONS", a, props, missing),
	)
	copyProperty("INTERFACE_POSITION_INDEPENDENT_CODE", a, props)
	p.populateCompatible(a, props)

	return props, errs
}

// populateEvaluated copies a build-time property in its install-interface form.
// An empty value is kept empty; a value that evaluates to nothing is dropped.
func (p *interfacePopulator) populateEvaluated(
	name string,
	a *domain.Artifact,
	props *domain.PropertyMap,
	missing *domain.MissingTargets,
) error {
	input, ok := a.Property(name)
	if !ok {
		return nil
	}
	if input == "" {
		props.Set(name, "")
		return nil
	}

	value, err := p.evaluator.Evaluate(input, domain.InstallInterface, a)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to evaluate interface property"),
			"artifact", a.Name.String()),
			"property", name)
	}
	if value == "" {
		return nil
	}

	value, err = p.deps.resolveExpressions(a, value, missing)
	if err != nil {
		return err
	}
	props.Set(name, value)
	return nil
}

// populateCompatible copies the compatibility declarations of a and the interface
// values of every property they, or a's link dependencies, declare.
func (p *interfacePopulator) populateCompatible(a *domain.Artifact, props *domain.PropertyMap) {
	for _, name := range compatibleInterfaceProperties {
		copyProperty(name, a, props)
	}

	names := make(map[string]struct{})
	collectCompatibleNames(a, names)
	for _, dep := range a.LinkImplementation {
		if d, ok := p.registry.Artifact(dep); ok {
			collectCompatibleNames(d, names)
		}
	}
	for name := range names {
		copyProperty("INTERFACE_"+name, a, props)
	}
}

func collectCompatibleNames(a *domain.Artifact, names map[string]struct{}) {
	for _, prop := range compatibleInterfaceProperties {
		v, ok := a.Property(prop)
		if !ok {
			continue
		}
		for _, name := range splitList(v) {
			if name != "" {
				names[name] = struct{}{}
			}
		}
	}
}

func copyProperty(name string, a *domain.Artifact, props *domain.PropertyMap) {
	if v, ok := a.Property(name); ok {
		props.Set(name, v)
	}
}
