package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRandomGenerator(t *testing.T) {
	g := RandomGenerator{}
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNilGenerator(t *testing.T) {
	g := NilGenerator{}
	assert.Equal(t, uuid.Nil, g.NewID())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", g.NewID().String())
}
