package exporter

import (
	"strings"

	"go.trai.ch/exportgen/internal/build"
	"go.trai.ch/exportgen/internal/core/domain"
)

const ruleLine = "#----------------------------------------------------------------\n"

func writeMainPrologue(b *strings.Builder) {
	b.WriteString("# Generated by exportgen " + build.Version + "\n\n")
	b.WriteString("if(\"${CMAKE_MAJOR_VERSION}.${CMAKE_MINOR_VERSION}\" LESS 2.5)\n" +
		"   message(FATAL_ERROR \"CMake >= 2.6.0 required\")\n" +
		"endif()\n")
	b.WriteString("cmake_policy(PUSH)\n" +
		"cmake_policy(VERSION 2.6)\n")
	b.WriteString(ruleLine + "# Generated CMake target import file.\n" + ruleLine + "\n")
	writeVersionCode(b)
}

func writeMainEpilogue(b *strings.Builder) {
	writeFooter(b)
	b.WriteString("cmake_policy(POP)\n")
}

func writeConfigHeader(b *strings.Builder, config string) {
	b.WriteString(ruleLine)
	b.WriteString("# Generated CMake target import file for configuration \"" + config + "\".\n")
	b.WriteString(ruleLine + "\n")
	writeVersionCode(b)
}

func writeVersionCode(b *strings.Builder) {
	b.WriteString("# Commands may need to know the format version.\n" +
		"set(CMAKE_IMPORT_FILE_VERSION 1)\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("# Commands beyond this point should not need to know the version.\n" +
		"set(CMAKE_IMPORT_FILE_VERSION)\n")
}

// writeExpectedTargets guards against a second inclusion re-creating targets that already exist.
func writeExpectedTargets(b *strings.Builder, names []string) {
	b.WriteString("# Protect against multiple inclusion, which would fail when already imported targets are added once more.\n" +
		"set(_targetsDefined)\n" +
		"set(_targetsNotDefined)\n" +
		"set(_expectedTargets)\n" +
		"foreach(_expectedTarget " + strings.Join(names, " ") + ")\n" +
		"  list(APPEND _expectedTargets ${_expectedTarget})\n" +
		"  if(NOT TARGET ${_expectedTarget})\n" +
		"    list(APPEND _targetsNotDefined ${_expectedTarget})\n" +
		"  endif()\n" +
		"  if(TARGET ${_expectedTarget})\n" +
		"    list(APPEND _targetsDefined ${_expectedTarget})\n" +
		"  endif()\n" +
		"endforeach()\n" +
		"if(\"${_targetsDefined}\" STREQUAL \"${_expectedTargets}\")\n" +
		"  set(CMAKE_IMPORT_FILE_VERSION)\n" +
		"  cmake_policy(POP)\n" +
		"  return()\n" +
		"endif()\n" +
		"if(NOT \"${_targetsDefined}\" STREQUAL \"\")\n" +
		"  message(FATAL_ERROR \"Some (but not all) targets in this export set were already defined.\\n" +
		"Targets Defined: ${_targetsDefined}\\nTargets not yet defined: ${_targetsNotDefined}\\n\")\n" +
		"endif()\n" +
		"unset(_targetsDefined)\n" +
		"unset(_targetsNotDefined)\n" +
		"unset(_expectedTargets)\n" +
		"\n\n")
}

func writeCreateTarget(b *strings.Builder, name string, a *domain.Artifact, p domain.Platform) {
	b.WriteString("# Create imported target " + name + "\n")
	switch a.Type {
	case domain.Executable:
		b.WriteString("add_executable(" + name + " IMPORTED)\n")
	case domain.StaticLibrary:
		b.WriteString("add_library(" + name + " STATIC IMPORTED)\n")
	case domain.SharedLibrary:
		b.WriteString("add_library(" + name + " SHARED IMPORTED)\n")
	case domain.ModuleLibrary:
		b.WriteString("add_library(" + name + " MODULE IMPORTED)\n")
	}

	if a.Type == domain.Executable && a.ExecutableWithExports {
		b.WriteString("set_property(TARGET " + name + " PROPERTY ENABLE_EXPORTS 1)\n")
	}
	switch a.LayoutOn(p) {
	case domain.LayoutFramework:
		b.WriteString("set_property(TARGET " + name + " PROPERTY FRAMEWORK 1)\n")
	case domain.LayoutApp:
		b.WriteString("set_property(TARGET " + name + " PROPERTY MACOSX_BUNDLE 1)\n")
	case domain.LayoutBundle:
		b.WriteString("set_property(TARGET " + name + " PROPERTY BUNDLE 1)\n")
	case domain.LayoutPlain:
	}
	b.WriteString("\n")
}

func writeInterfaceProperties(b *strings.Builder, name string, props *domain.PropertyMap) {
	if props.Len() == 0 {
		return
	}
	b.WriteString("set_target_properties(" + name + " PROPERTIES\n")
	for k, v := range props.All() {
		b.WriteString("  " + k + " \"" + v + "\"\n")
	}
	b.WriteString(")\n\n")
}

func writeConfigLoader(b *strings.Builder, glob string) {
	b.WriteString("# Load information for each installed configuration.\n" +
		"get_filename_component(_DIR \"${CMAKE_CURRENT_LIST_FILE}\" PATH)\n" +
		"file(GLOB CONFIG_FILES \"${_DIR}/" + glob + "\")\n" +
		"foreach(f ${CONFIG_FILES})\n" +
		"  include(${f})\n" +
		"endforeach()\n" +
		"\n")
}

// writeFileCheckLoop verifies at consumption time that every file the
// per-configuration descriptors registered exists on disk.
func writeFileCheckLoop(b *strings.Builder) {
	b.WriteString("# Loop over all imported files and verify that they actually exist\n" +
		"foreach(target ${_IMPORT_CHECK_TARGETS} )\n" +
		"  foreach(file ${_IMPORT_CHECK_FILES_FOR_${target}} )\n" +
		"    if(NOT EXISTS \"${file}\" )\n" +
		"      message(FATAL_ERROR \"The imported target \\\"${target}\\\" references the file\n" +
		"   \\\"${file}\\\"\n" +
		"but this file does not exist.  Possible reasons include:\n" +
		"* The file was deleted, renamed, or moved to another location.\n" +
		"* An install or uninstall procedure did not complete successfully.\n" +
		"* The installation package was faulty and contained\n" +
		"   \\\"${CMAKE_CURRENT_LIST_FILE}\\\"\n" +
		"but not all the files it references.\n" +
		"\")\n" +
		"    endif()\n" +
		"  endforeach()\n" +
		"  unset(_IMPORT_CHECK_FILES_FOR_${target})\n" +
		"endforeach()\n" +
		"unset(_IMPORT_CHECK_TARGETS)\n" +
		"\n")
}

// writePrefixPreamble derives the installation prefix from the descriptor's own
// location: one step to its directory, then one per component of destination.
func writePrefixPreamble(b *strings.Builder, walks int) {
	b.WriteString("# Compute the installation prefix relative to this file.\n" +
		"get_filename_component(" + domain.ImportPrefixVar + " \"${CMAKE_CURRENT_LIST_FILE}\" PATH)\n")
	for range walks {
		b.WriteString("get_filename_component(" + domain.ImportPrefixVar + " \"${" + domain.ImportPrefixVar + "}\" PATH)\n")
	}
	b.WriteString("\n")
}

func writePrefixCleanup(b *strings.Builder) {
	b.WriteString("# Cleanup temporary variables.\n" +
		"set(" + domain.ImportPrefixVar + ")\n" +
		"\n")
}

func writeImportProperties(b *strings.Builder, name, config string, props *domain.PropertyMap) {
	b.WriteString("# Import target \"" + name + "\" for configuration \"" + config + "\"\n")
	b.WriteString("set_property(TARGET " + name + " APPEND PROPERTY IMPORTED_CONFIGURATIONS " +
		domain.ConfigUpper(config) + ")\n")
	b.WriteString("set_target_properties(" + name + " PROPERTIES\n")
	for k, v := range props.All() {
		b.WriteString("  " + k + " \"" + v + "\"\n")
	}
	b.WriteString("  )\n\n")
}

// writeFileChecks registers the files named by the location properties in locations.
func writeFileChecks(b *strings.Builder, name string, props *domain.PropertyMap, locations []string) {
	b.WriteString("list(APPEND _IMPORT_CHECK_TARGETS " + name + " )\n")
	b.WriteString("list(APPEND _IMPORT_CHECK_FILES_FOR_" + name + " ")
	for _, key := range locations {
		if v, ok := props.Get(key); ok {
			b.WriteString("\"" + v + "\" ")
		}
	}
	b.WriteString(")\n\n")
}

func writeMissingTargetsCheck(b *strings.Builder, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteString("# Make sure the targets which have been exported in some other \n" +
		"# export set exist.\n")
	for _, n := range names {
		b.WriteString("if(NOT TARGET \"" + n + "\" )\n" +
			"  if(CMAKE_FIND_PACKAGE_NAME)\n" +
			"    set( ${CMAKE_FIND_PACKAGE_NAME}_FOUND FALSE)\n" +
			"    set( ${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE \"Required target " + n + " not found!\")\n" +
			"  else()\n" +
			"    message(FATAL_ERROR \"Required target " + n + " not found!\")\n" +
			"  endif()\n" +
			"endif()\n")
	}
	b.WriteString("\n")
}
