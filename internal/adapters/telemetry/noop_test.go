package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/adapters/telemetry"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(t.Context(), "generate")
	require.NotNil(t, v)
	assert.Equal(t, v, ports.VertexFromContext(ctx))

	v.Log(domain.LogLevelInfo, "ignored")
	v.Complete(errors.New("ignored"))

	assert.NoError(t, tel.Close())
}
