package qlt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()
	assert.Equal(t, 4, s.HeaderRows)
	assert.Equal(t, 10, s.MinFields)
	// 10 mandatory fields plus nine extra (x,y,z) groups
	require.Len(t, s.Keys, 37)
	require.Len(t, s.Types, 37)
	assert.Equal(t, "Use", s.Keys[0])
	assert.Equal(t, "z", s.Keys[9])
	assert.Equal(t, "x2", s.Keys[10])
	assert.Equal(t, "z10", s.Keys[36])
}

func TestSchemaKey(t *testing.T) {
	s := DefaultSchema()
	assert.Equal(t, "Diam", s.Key(2))
	assert.Equal(t, "col40", s.Key(40))
}
