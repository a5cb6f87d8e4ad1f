package domain

// NameKind selects which of an artifact's installed file names is wanted.
type NameKind uint8

const (
	// NameNormal is the name consumers link against (libfoo.so).
	NameNormal NameKind = iota
	// NameReal is the versioned file actually installed (libfoo.so.1.2).
	NameReal
	// NameSO is the runtime soname (libfoo.so.1).
	NameSO
	// NameImplib is the import library of a DLL (foo.lib).
	NameImplib
)

// FileName returns the installed file name of the artifact for one configuration.
// Bundle layouts return the bare base name; the location resolver adds the
// layout directories around it.
func (a *Artifact) FileName(config string, kind NameKind, p Platform) string {
	base := a.BaseName(config)
	if kind == NameImplib {
		return a.ImportPrefix + base + a.ImportSuffix
	}

	if a.LayoutOn(p) != LayoutPlain {
		return base
	}

	name := a.Prefix + base + a.Suffix
	switch a.Type {
	case Executable:
		if kind == NameReal && a.Version != "" && !p.IsDLL() {
			return name + "-" + a.Version
		}
		return name
	case SharedLibrary:
		return a.sharedName(base, name, kind, p)
	default:
		return name
	}
}

func (a *Artifact) sharedName(base, name string, kind NameKind, p Platform) string {
	if p.IsDLL() || kind == NameNormal {
		return name
	}

	version, soVersion := a.Version, a.SOVersion
	if version == "" {
		version = soVersion
	}
	if soVersion == "" {
		soVersion = version
	}
	if soVersion == "" {
		return name
	}

	v := version
	if kind == NameSO {
		v = soVersion
	}
	if p.IsApple() {
		// Apple puts the version before the suffix: libfoo.1.dylib.
		return a.Prefix + base + "." + v + a.Suffix
	}
	return name + "." + v
}

// HasSOName reports whether the installed library records a soname or install name.
func (a *Artifact) HasSOName(p Platform) bool {
	return a.Type == SharedLibrary && !a.NoSOName && !p.IsDLL()
}

// SOName returns the soname for a configuration, prefixed by the install name
// directory on Apple platforms.
func (a *Artifact) SOName(config string, p Platform) string {
	soName := a.FileName(config, NameSO, p)
	if !p.IsApple() || a.InstallNameDir == "" {
		return soName
	}
	dir := a.InstallNameDir
	if dir[len(dir)-1] != '/' {
		dir += "/"
	}
	return dir + soName
}
