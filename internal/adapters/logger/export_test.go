// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryMessage returns the message of the i-th collected entry.
func EntryMessage(entries []errorEntry, i int) string { return entries[i].message }

// EntryMetadata returns the metadata of the i-th collected entry.
func EntryMetadata(entries []errorEntry, i int) map[string]any { return entries[i].metadata }
