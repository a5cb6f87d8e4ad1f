// Package genex implements the install-time preprocessing of generator expressions.
package genex

import (
	"strings"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	buildInterfaceOpen   = "$<BUILD_INTERFACE:"
	installInterfaceOpen = "$<INSTALL_INTERFACE:"
)

// Evaluator strips the interface guards of generator expressions.
// Other expressions are consumer-side and are kept verbatim.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate keeps the content guarded for ctx, drops the content guarded for the
// other context and removes the empty list entries left behind.
func (e *Evaluator) Evaluate(expr string, ctx domain.EvalContext, artifact *domain.Artifact) (string, error) {
	out, err := strip(expr, ctx)
	if err != nil {
		name := ""
		if artifact != nil {
			name = artifact.Name.String()
		}
		return "", zerr.With(zerr.With(err, "artifact", name), "expression", expr)
	}
	return stripEmptyListElements(out), nil
}

func strip(input string, ctx domain.EvalContext) (string, error) {
	var b strings.Builder
	for {
		pos, install := nextInterface(input)
		if pos < 0 {
			b.WriteString(input)
			return b.String(), nil
		}
		b.WriteString(input[:pos])

		open := buildInterfaceOpen
		if install {
			open = installInterfaceOpen
		}
		contentStart := pos + len(open)
		end := closingBracket(input, contentStart)
		if end < 0 {
			return "", domain.ErrUnbalancedExpression
		}

		if install == (ctx == domain.InstallInterface) {
			kept, err := strip(input[contentStart:end], ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(kept)
		}
		input = input[end+1:]
	}
}

// nextInterface returns the position of the first interface guard in input and
// whether it is the install guard.
func nextInterface(input string) (int, bool) {
	build := strings.Index(input, buildInterfaceOpen)
	install := strings.Index(input, installInterfaceOpen)
	switch {
	case build < 0:
		return install, install >= 0
	case install < 0 || build < install:
		return build, false
	default:
		return install, true
	}
}

// closingBracket returns the index of the '>' closing an expression whose content
// starts at start, skipping nested expressions.
func closingBracket(input string, start int) int {
	depth := 1
	for i := start; i < len(input); i++ {
		switch {
		case input[i] == '$' && i+1 < len(input) && input[i+1] == '<':
			depth++
			i++
		case input[i] == '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func stripEmptyListElements(input string) string {
	if !strings.Contains(input, ";") {
		return input
	}
	parts := strings.Split(input, ";")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ";")
}
