package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/adapters/telemetry/progrock"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordAttachesVertex(t *testing.T) {
	recorder := progrock.New()

	ctx, v := recorder.Record(t.Context(), "Export core")

	require.NotNil(t, v)
	assert.Same(t, v, ports.VertexFromContext(ctx))
}

func TestRecorder_SameNameDistinctVertices(t *testing.T) {
	recorder := progrock.New()

	_, first := recorder.Record(t.Context(), "Export core")
	_, second := recorder.Record(t.Context(), "Export core")

	assert.NotSame(t, first, second)
}

func TestVertex_Lifecycle(t *testing.T) {
	recorder := progrock.New()
	_, v := recorder.Record(t.Context(), "Export core")

	v.Log(domain.LogLevelDebug, "generated lib/cmake/core-targets.cmake")
	v.Log(domain.LogLevelError, "prefix conflict")
	v.Complete(errors.New("failed"))

	assert.NoError(t, recorder.Close())
}
