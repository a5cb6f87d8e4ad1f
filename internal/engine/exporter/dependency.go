package exporter

import (
	"errors"
	"strings"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	targetPropertyOpen = "$<TARGET_PROPERTY:"
	targetNameOpen     = "$<TARGET_NAME:"
	expressionOpen     = "$<"
)

// dependencyResolver rewrites artifact references into the names consumers of the
// installed package see.
type dependencyResolver struct {
	registry  *domain.Registry
	exportSet string
	namespace string
	// exported holds the artifacts of the export set being generated.
	exported map[domain.InternedString]struct{}
}

// resolve returns the consumer-facing reference for name. found is false when
// name is not a registry artifact, in which case it is returned unchanged.
// References into other export sets are recorded in missing.
func (r *dependencyResolver) resolve(
	depender *domain.Artifact,
	name string,
	missing *domain.MissingTargets,
) (ref string, found bool, err error) {
	dep, ok := r.registry.Artifact(name)
	if !ok {
		return name, false, nil
	}
	if dep.Imported {
		return name, true, nil
	}
	if _, ok := r.exported[dep.Name]; ok {
		return r.namespace + name, true, nil
	}

	namespaces := r.findNamespaces(dep.Name)
	if len(namespaces) != 1 {
		return name, true, r.missingTargetError(depender, name, len(namespaces))
	}
	ref = namespaces[0] + name
	missing.Add(ref)
	return ref, true, nil
}

// findNamespaces collects the distinct namespaces under which any installation of
// any export set containing name exports it.
func (r *dependencyResolver) findNamespaces(name domain.InternedString) []string {
	var namespaces []string
	seen := make(map[string]struct{})
	for id, set := range r.registry.ExportSets() {
		if !set.Contains(name) {
			continue
		}
		for _, inst := range r.registry.InstallationsOf(id) {
			if _, ok := seen[inst.Namespace]; ok {
				continue
			}
			seen[inst.Namespace] = struct{}{}
			namespaces = append(namespaces, inst.Namespace)
		}
	}
	return namespaces
}

func (r *dependencyResolver) missingTargetError(depender *domain.Artifact, name string, occurrences int) error {
	sentinel := domain.ErrDependencyNotExported
	if occurrences > 1 {
		sentinel = domain.ErrAmbiguousDependency
	}
	err := zerr.With(sentinel, "export_set", r.exportSet)
	err = zerr.With(err, "artifact", depender.Name.String())
	err = zerr.With(err, "dependency", name)
	return zerr.With(err, "occurrences", occurrences)
}

// resolveList resolves every entry of a ';' separated list. Plain entries are
// treated as artifact names; entries holding expressions have the artifact
// references inside them resolved.
func (r *dependencyResolver) resolveList(
	depender *domain.Artifact,
	list string,
	missing *domain.MissingTargets,
) (string, error) {
	parts := splitList(list)
	var errs error
	for i, part := range parts {
		var err error
		if strings.Contains(part, expressionOpen) {
			parts[i], err = r.resolveExpressions(depender, part, missing)
		} else {
			parts[i], _, err = r.resolve(depender, part, missing)
		}
		errs = errors.Join(errs, err)
	}
	return strings.Join(parts, ";"), errs
}

// resolveExpressions namespaces the artifacts named by $<TARGET_PROPERTY:tgt,prop>
// and replaces $<TARGET_NAME:tgt> by the namespaced name.
func (r *dependencyResolver) resolveExpressions(
	depender *domain.Artifact,
	input string,
	missing *domain.MissingTargets,
) (string, error) {
	var errs error

	lastPos := 0
	for {
		pos := indexFrom(input, targetPropertyOpen, lastPos)
		if pos < 0 {
			break
		}
		nameStart := pos + len(targetPropertyOpen)
		closePos := indexFrom(input, ">", nameStart)
		commaPos := indexFrom(input, ",", nameStart)
		nextOpen := indexFrom(input, expressionOpen, nameStart)
		// Implied target, incomplete or non-literal names are left to the consumer.
		if commaPos < 0 || closePos < 0 || closePos < commaPos || (nextOpen >= 0 && nextOpen < commaPos) {
			lastPos = nameStart
			continue
		}
		name := input[nameStart:commaPos]
		ref, _, err := r.resolve(depender, name, missing)
		errs = errors.Join(errs, err)
		input = input[:nameStart] + ref + input[commaPos:]
		lastPos = nameStart + len(ref) + 1
	}

	lastPos = 0
	for {
		pos := indexFrom(input, targetNameOpen, lastPos)
		if pos < 0 {
			break
		}
		nameStart := pos + len(targetNameOpen)
		endPos := indexFrom(input, ">", nameStart)
		if endPos < 0 {
			return input, errors.Join(errs, r.targetNameError(depender, "expression incomplete"))
		}
		name := input[nameStart:endPos]
		if strings.Contains(name, expressionOpen) {
			return input, errors.Join(errs, r.targetNameError(depender, "parameter must be a literal"))
		}
		ref, found, err := r.resolve(depender, name, missing)
		if !found {
			return input, errors.Join(errs, r.targetNameError(depender, "parameter must be a reachable target"))
		}
		errs = errors.Join(errs, err)
		input = input[:pos] + ref + input[endPos+1:]
		lastPos = pos + len(ref)
	}

	return input, errs
}

func (r *dependencyResolver) targetNameError(depender *domain.Artifact, reason string) error {
	err := zerr.With(domain.ErrInvalidTargetNameExpression, "export_set", r.exportSet)
	err = zerr.With(err, "artifact", depender.Name.String())
	return zerr.With(err, "reason", reason)
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// splitList splits a ';' separated list, keeping separators nested inside
// generator expressions with their entry.
func splitList(list string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(list); i++ {
		switch {
		case list[i] == '$' && i+1 < len(list) && list[i+1] == '<':
			depth++
			i++
		case list[i] == '>' && depth > 0:
			depth--
		case list[i] == ';' && depth == 0:
			parts = append(parts, list[start:i])
			start = i + 1
		}
	}
	return append(parts, list[start:])
}
