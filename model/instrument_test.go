package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryStopsAtEmptyName(t *testing.T) {
	names := []string{"Piano", "Organ", ""}
	r := NewRegistry(func(i int) string {
		if i >= len(names) {
			return "unreachable"
		}
		return names[i]
	}, 128)

	assert := assert.New(t)
	assert.Equal(2, r.Len())
	inst, ok := r.Get(1)
	assert.True(ok)
	assert.Equal(Instrument{Index: 1, Name: "Organ"}, inst)
	_, ok = r.Get(2)
	assert.False(ok)
	_, ok = r.Get(-1)
	assert.False(ok)
}

func TestRegistryRespectsMax(t *testing.T) {
	r := NewRegistry(func(int) string { return "x" }, 4)
	assert.Equal(t, 4, r.Len())
	assert.Len(t, r.All(), 4)
}
