package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/exportgen/internal/core/domain"
)

func TestPropertyMap(t *testing.T) {
	m := domain.NewPropertyMap()
	m.Set("IMPORTED_SONAME_RELEASE", "libcore.so.1")
	m.Set("IMPORTED_LOCATION_RELEASE", "${_IMPORT_PREFIX}/lib/libcore.so.1.2.3")
	m.Set("IMPORTED_SONAME_RELEASE", "libcore.so.2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"IMPORTED_LOCATION_RELEASE", "IMPORTED_SONAME_RELEASE"}, m.Keys())

	v, ok := m.Get("IMPORTED_SONAME_RELEASE")
	assert.True(t, ok)
	assert.Equal(t, "libcore.so.2", v)

	_, ok = m.Get("IMPORTED_IMPLIB_RELEASE")
	assert.False(t, ok)

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []string{"IMPORTED_LOCATION_RELEASE"}, keys)
}

func TestMissingTargets(t *testing.T) {
	var a, b domain.MissingTargets
	a.Add("Util::util")
	a.Add("Net::net")
	b.Add("Util::util")
	b.Add("Log::log")

	a.Merge(&b)

	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []string{"Util::util", "Net::net", "Log::log"}, a.Unique())
}
