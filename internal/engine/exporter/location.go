package exporter

import (
	"path"
	"strings"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// importPrefixState records whether the descriptor of the current configuration
// references the installation prefix. It must be reset for every configuration.
type importPrefixState struct {
	used bool
}

// locationResolver computes the installed location properties of artifacts.
type locationResolver struct {
	platform    domain.Platform
	exportSet   string
	installDest string
	state       *importPrefixState
}

// resolve adds the location property of one installer to props when the installer
// covers config. The property key is also added to locations for the existence check.
func (r *locationResolver) resolve(
	a *domain.Artifact,
	in *domain.Installer,
	config, suffix string,
	props *domain.PropertyMap,
	locations map[string]struct{},
) error {
	if !in.InstallsForConfig(config) {
		return nil
	}

	var value string
	if !domain.IsAbsolutePath(in.Destination) {
		if domain.IsAbsolutePath(r.installDest) {
			return zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrPrefixConflict,
				"export_set", r.exportSet),
				"artifact", a.Name.String()),
				"export_destination", r.installDest),
				"artifact_destination", in.Destination)
		}
		r.state.used = true
		value = "${" + domain.ImportPrefixVar + "}/"
	}
	value += in.Destination + "/"

	var key string
	if in.ImportLibrary {
		key = "IMPORTED_IMPLIB" + suffix
		value += a.FileName(config, domain.NameImplib, r.platform)
	} else {
		key = "IMPORTED_LOCATION" + suffix
		value += r.installedPath(a, config)
	}

	props.Set(key, value)
	locations[key] = struct{}{}
	return nil
}

// installedPath returns the path of the loadable file below the installer destination.
func (r *locationResolver) installedPath(a *domain.Artifact, config string) string {
	name := a.FileName(config, domain.NameNormal, r.platform)
	switch a.LayoutOn(r.platform) {
	case domain.LayoutFramework:
		return name + ".framework/" + name
	case domain.LayoutBundle:
		return name + "." + a.BundleExt() + "/" + name
	case domain.LayoutApp:
		return name + ".app/Contents/MacOS/" + name
	default:
		return a.FileName(config, domain.NameReal, r.platform)
	}
}

// prefixWalks returns how many parent steps lead from the descriptor directory
// back to the installation prefix.
func prefixWalks(dest string) int {
	clean := path.Clean(strings.ReplaceAll(dest, `\`, "/"))
	if clean == "." {
		return 0
	}
	return strings.Count(clean, "/") + 1
}
