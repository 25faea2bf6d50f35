package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialEncoding(t *testing.T) {
	m := NewMaterial(18, 1)
	assert.Equal(t, Material(18<<4|1), m)
	assert.Equal(t, 18, m.ID())
	assert.Equal(t, 1, m.Meta())

	// Metadata is masked to four bits.
	assert.Equal(t, 0, NewMaterial(17, 16).Meta())
}

func TestPosHelpers(t *testing.T) {
	p := Pos{1, 2, 3}
	assert.Equal(t, Pos{2, 4, 6}, p.Add(1, 2, 3))
	assert.Equal(t, Pos{1, 7, 3}, p.Up(5))
	assert.Equal(t, Pos{1, 1, 3}, p.Down())
}
