package domain

import "strings"

// Platform identifies the target operating system of the installed artifacts.
type Platform string

const (
	// PlatformLinux is an ELF platform with sonames.
	PlatformLinux Platform = "linux"
	// PlatformDarwin is an Apple platform with install names and bundle layouts.
	PlatformDarwin Platform = "darwin"
	// PlatformWindows is a DLL platform with import libraries.
	PlatformWindows Platform = "windows"
	// PlatformCygwin is a DLL platform with unix-style naming.
	PlatformCygwin Platform = "cygwin"
)

// ParsePlatform converts a plan value to a Platform. Empty selects linux.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(s)); p {
	case "":
		return PlatformLinux, nil
	case PlatformLinux, PlatformDarwin, PlatformWindows, PlatformCygwin:
		return p, nil
	default:
		return "", ErrInvalidPlatform
	}
}

// IsDLL reports whether shared libraries are DLLs linked through import libraries.
func (p Platform) IsDLL() bool {
	return p == PlatformWindows || p == PlatformCygwin
}

// IsApple reports whether the platform supports frameworks, bundles and install names.
func (p Platform) IsApple() bool {
	return p == PlatformDarwin
}

// Affixes holds the default file name prefix and suffix of an artifact type.
type Affixes struct {
	Prefix string
	Suffix string
}

// DefaultAffixes returns the file name prefix and suffix the platform uses for t.
func (p Platform) DefaultAffixes(t ArtifactType) Affixes {
	switch p {
	case PlatformWindows:
		switch t {
		case StaticLibrary:
			return Affixes{Suffix: ".lib"}
		case SharedLibrary, ModuleLibrary:
			return Affixes{Suffix: ".dll"}
		default:
			return Affixes{Suffix: ".exe"}
		}
	case PlatformCygwin:
		switch t {
		case StaticLibrary:
			return Affixes{Prefix: "lib", Suffix: ".a"}
		case SharedLibrary, ModuleLibrary:
			return Affixes{Prefix: "cyg", Suffix: ".dll"}
		default:
			return Affixes{Suffix: ".exe"}
		}
	case PlatformDarwin:
		switch t {
		case StaticLibrary:
			return Affixes{Prefix: "lib", Suffix: ".a"}
		case SharedLibrary:
			return Affixes{Prefix: "lib", Suffix: ".dylib"}
		case ModuleLibrary:
			return Affixes{Prefix: "lib", Suffix: ".so"}
		default:
			return Affixes{}
		}
	default:
		switch t {
		case StaticLibrary:
			return Affixes{Prefix: "lib", Suffix: ".a"}
		case SharedLibrary, ModuleLibrary:
			return Affixes{Prefix: "lib", Suffix: ".so"}
		default:
			return Affixes{}
		}
	}
}

// DefaultImportAffixes returns the prefix and suffix of import libraries on DLL platforms.
func (p Platform) DefaultImportAffixes() Affixes {
	switch p {
	case PlatformWindows:
		return Affixes{Suffix: ".lib"}
	case PlatformCygwin:
		return Affixes{Prefix: "lib", Suffix: ".dll.a"}
	default:
		return Affixes{}
	}
}
