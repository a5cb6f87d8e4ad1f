package domain

import "strings"

// EvalContext selects which interface branch of a generator expression survives evaluation.
type EvalContext uint8

const (
	// BuildInterface keeps $<BUILD_INTERFACE:...> content and drops install-only content.
	BuildInterface EvalContext = iota
	// InstallInterface keeps $<INSTALL_INTERFACE:...> content and drops build-tree content.
	InstallInterface
)

// String returns a readable name for the context.
func (c EvalContext) String() string {
	if c == InstallInterface {
		return "install-interface"
	}
	return "build-interface"
}

// AppliesToConfig reports whether a rule restricted to configs covers config.
// An empty restriction covers every configuration, including the unconfigured one.
func AppliesToConfig(configs []string, config string) bool {
	if len(configs) == 0 {
		return true
	}
	for _, c := range configs {
		if strings.EqualFold(c, config) {
			return true
		}
	}
	return false
}

// ConfigLabel returns the lower-cased configuration used in descriptor file names.
func ConfigLabel(config string) string {
	if config == "" {
		return NoConfigLabel
	}
	return strings.ToLower(config)
}

// ConfigUpper returns the upper-cased configuration used in property names.
func ConfigUpper(config string) string {
	if config == "" {
		return strings.ToUpper(NoConfigLabel)
	}
	return strings.ToUpper(config)
}

// PropertySuffix returns the per-configuration property suffix, e.g. "_RELEASE".
func PropertySuffix(config string) string {
	return "_" + ConfigUpper(config)
}

// IsAbsolutePath reports whether p is absolute on any supported platform.
// Drive-letter and UNC forms count as absolute regardless of the host OS.
func IsAbsolutePath(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' || p[0] == '\\' || p[0] == '~' {
		return true
	}
	return len(p) >= 3 && isASCIILetter(p[0]) && p[1] == ':' && (p[2] == '/' || p[2] == '\\')
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
