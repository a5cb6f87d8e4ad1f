package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("core")
	is2 := domain.NewInternedString("core")
	other := domain.NewInternedString("util")

	assert.Equal(t, is1, is2)
	assert.NotEqual(t, is1, other)
	assert.Equal(t, "core", is1.String())
}

func TestInternedString_IsZero(t *testing.T) {
	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.False(t, domain.NewInternedString("core").IsZero())
}

func TestInternedStringJSON(t *testing.T) {
	type artifactRef struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(artifactRef{Name: domain.NewInternedString("core")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"core"}`, string(data))

	var decoded artifactRef
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.NewInternedString("core"), decoded.Name)
}

func TestInternedString_MapKey(t *testing.T) {
	m := map[domain.InternedString]int{
		domain.NewInternedString("core"): 1,
	}
	assert.Equal(t, 1, m[domain.NewInternedString("core")])
	_, ok := m[domain.NewInternedString("util")]
	assert.False(t, ok)
}
