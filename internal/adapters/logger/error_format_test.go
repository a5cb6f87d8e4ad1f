package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.With(zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"), "k", "v")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 3)
	assert.Equal(t, "outer", logger.EntryMessage(entries, 0))
	assert.Equal(t, "v", logger.EntryMetadata(entries, 0)["k"])
	assert.Equal(t, "middle", logger.EntryMessage(entries, 1))
	assert.Equal(t, "root cause", logger.EntryMessage(entries, 2))
	assert.Nil(t, logger.EntryMetadata(entries, 2))
}

func TestCollectErrorEntries_Joined(t *testing.T) {
	err := errors.Join(zerr.New("first"), zerr.New("second"))

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 2)
	assert.Equal(t, "first", logger.EntryMessage(entries, 0))
	assert.Equal(t, "second", logger.EntryMessage(entries, 1))
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("prefix conflict"), "b", 2), "a", "x")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	assert.Equal(t, "Error: prefix conflict\n       a=x\n       b=2", got)
}

func TestFormatErrorEntries_Multiline(t *testing.T) {
	err := zerr.Wrap(errors.New("yaml: unmarshal errors:\n  line 3: bad"), "failed to parse plan")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: failed to parse plan\n" +
		"\n" +
		"  Caused by:\n" +
		"    → yaml: unmarshal errors:\n" +
		"        line 3: bad"
	assert.Equal(t, want, got)
}

func TestFormatErrorEntries_Empty(t *testing.T) {
	assert.Empty(t, logger.FormatErrorEntries(nil))
}

func TestFormatErrorEntries_MetadataOnlyLink(t *testing.T) {
	err := errors.Join(
		zerr.New("failed to open output stream"),
		zerr.With(errors.New("read-only file system"), "path", "/stage/CoreTargets.cmake"),
	)

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: failed to open output stream\n" +
		"\n" +
		"  Caused by:\n" +
		"    → read-only file system\n" +
		"      path=/stage/CoreTargets.cmake"
	assert.Equal(t, want, got)
}
