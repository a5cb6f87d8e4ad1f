package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer matches the Metadata() method provided by zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr links contribute their own
// message and metadata; the first standard error ends the walk with its full text.
// Links without a message only carry metadata, which moves to the next entry.
// Joined errors are flattened in order.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any
	current := err
	for current != nil {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}
		var metadata map[string]any
		if md, ok := current.(metadataer); ok {
			metadata = md.Metadata()
		}
		next := errors.Unwrap(current)
		if m.Message() == "" && next != nil {
			pending = mergeMetadata(pending, metadata)
			current = next
			continue
		}
		entries = append(entries, errorEntry{message: m.Message(), metadata: mergeMetadata(pending, metadata)})
		pending = nil
		current = next
	}
	return entries
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as the main error followed by its causes.
// Metadata keys are printed in sorted order below the message they belong to.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")

		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s=%v", indent, key, entry.metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
